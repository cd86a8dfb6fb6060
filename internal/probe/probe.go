// Package probe answers point-in-time questions about the host: is there a
// usable network, is location enabled and permitted, and where is the device.
package probe

import (
	"context"
	"sync/atomic"
)

type Position struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

type ConnectivityProbe interface {
	IsAvailable(ctx context.Context) bool
}

// LocationProbe reports location service state and the last known position.
// LastKnownPosition returns a nil position without error when none is known.
type LocationProbe interface {
	IsEnabled() bool
	HasPermission() bool
	LastKnownPosition(ctx context.Context) (*Position, error)
}

type PositionSource interface {
	Position(ctx context.Context) (*Position, error)
}

// Permission is the location permission grant, flipped by the permission prompt.
type Permission struct {
	granted atomic.Bool
}

func NewPermission(granted bool) *Permission {
	p := &Permission{}
	p.granted.Store(granted)
	return p
}

func (p *Permission) Grant() {
	p.granted.Store(true)
}

func (p *Permission) Deny() {
	p.granted.Store(false)
}

func (p *Permission) Granted() bool {
	return p.granted.Load()
}

type DeviceLocation struct {
	enabled    bool
	permission *Permission
	source     PositionSource
}

func NewDeviceLocation(enabled bool, permission *Permission, source PositionSource) *DeviceLocation {
	return &DeviceLocation{
		enabled:    enabled,
		permission: permission,
		source:     source,
	}
}

func (d *DeviceLocation) IsEnabled() bool {
	return d.enabled && d.source != nil
}

func (d *DeviceLocation) HasPermission() bool {
	return d.permission != nil && d.permission.Granted()
}

func (d *DeviceLocation) LastKnownPosition(ctx context.Context) (*Position, error) {
	if d.source == nil {
		return nil, nil
	}
	return d.source.Position(ctx)
}

// StaticPosition is a fixed, configured position. A nil position means none is known.
type StaticPosition struct {
	position *Position
}

func NewStaticPosition(position *Position) *StaticPosition {
	return &StaticPosition{position: position}
}

func (s *StaticPosition) Position(ctx context.Context) (*Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.position == nil {
		return nil, nil
	}
	p := *s.position
	return &p, nil
}
