package probe

import (
	"context"

	"github.com/rs/zerolog/log"
	psnet "github.com/shirou/gopsutil/v3/net"
)

type interfaceLister func(ctx context.Context) (psnet.InterfaceStatList, error)

// HostConnectivity reports a usable network when any non-loopback interface is up
// and has at least one address.
type HostConnectivity struct {
	interfaces interfaceLister
}

func NewHostConnectivity() *HostConnectivity {
	return &HostConnectivity{interfaces: psnet.InterfacesWithContext}
}

func (h *HostConnectivity) IsAvailable(ctx context.Context) bool {
	ifaces, err := h.interfaces(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to list network interfaces")
		return false
	}

	for _, iface := range ifaces {
		if hasFlag(iface.Flags, "loopback") || !hasFlag(iface.Flags, "up") {
			continue
		}
		if len(iface.Addrs) > 0 {
			return true
		}
	}

	return false
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}
