package probe_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"ulascansenturk/zila-weather/internal/probe"

	psnet "github.com/shirou/gopsutil/v3/net"
	"github.com/stretchr/testify/suite"
)

type ProbeTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *ProbeTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *ProbeTestSuite) TestConnectivityWithActiveInterface() {
	connectivity := probe.NewHostConnectivityForTesting(func(ctx context.Context) (psnet.InterfaceStatList, error) {
		return psnet.InterfaceStatList{
			{Name: "lo", Flags: []string{"up", "loopback"}, Addrs: psnet.InterfaceAddrList{{Addr: "127.0.0.1/8"}}},
			{Name: "wlan0", Flags: []string{"up", "broadcast", "multicast"}, Addrs: psnet.InterfaceAddrList{{Addr: "192.168.1.20/24"}}},
		}, nil
	})

	s.True(connectivity.IsAvailable(s.ctx))
}

func (s *ProbeTestSuite) TestConnectivityOnlyLoopback() {
	connectivity := probe.NewHostConnectivityForTesting(func(ctx context.Context) (psnet.InterfaceStatList, error) {
		return psnet.InterfaceStatList{
			{Name: "lo", Flags: []string{"up", "loopback"}, Addrs: psnet.InterfaceAddrList{{Addr: "127.0.0.1/8"}}},
		}, nil
	})

	s.False(connectivity.IsAvailable(s.ctx))
}

func (s *ProbeTestSuite) TestConnectivityInterfaceDownOrWithoutAddress() {
	connectivity := probe.NewHostConnectivityForTesting(func(ctx context.Context) (psnet.InterfaceStatList, error) {
		return psnet.InterfaceStatList{
			{Name: "eth0", Flags: []string{"broadcast"}, Addrs: psnet.InterfaceAddrList{{Addr: "10.0.0.2/24"}}},
			{Name: "wlan0", Flags: []string{"up", "broadcast"}},
		}, nil
	})

	s.False(connectivity.IsAvailable(s.ctx))
}

func (s *ProbeTestSuite) TestConnectivityListError() {
	connectivity := probe.NewHostConnectivityForTesting(func(ctx context.Context) (psnet.InterfaceStatList, error) {
		return nil, errors.New("permission denied")
	})

	s.False(connectivity.IsAvailable(s.ctx))
}

func (s *ProbeTestSuite) TestPermission() {
	permission := probe.NewPermission(false)
	s.False(permission.Granted())

	permission.Grant()
	s.True(permission.Granted())

	permission.Deny()
	s.False(permission.Granted())
}

func (s *ProbeTestSuite) TestDeviceLocationWithStaticPosition() {
	permission := probe.NewPermission(true)
	location := probe.NewDeviceLocation(true, permission, probe.NewStaticPosition(&probe.Position{Latitude: 23.81, Longitude: 90.41}))

	s.True(location.IsEnabled())
	s.True(location.HasPermission())

	position, err := location.LastKnownPosition(s.ctx)
	s.NoError(err)
	s.Require().NotNil(position)
	s.Equal(23.81, position.Latitude)
	s.Equal(90.41, position.Longitude)
}

func (s *ProbeTestSuite) TestDeviceLocationWithoutKnownPosition() {
	location := probe.NewDeviceLocation(true, probe.NewPermission(true), probe.NewStaticPosition(nil))

	position, err := location.LastKnownPosition(s.ctx)
	s.NoError(err)
	s.Nil(position)
}

func (s *ProbeTestSuite) TestDeviceLocationDisabled() {
	s.False(probe.NewDeviceLocation(false, probe.NewPermission(true), probe.NewStaticPosition(nil)).IsEnabled())
	s.False(probe.NewDeviceLocation(true, probe.NewPermission(true), nil).IsEnabled())
	s.False(probe.NewDeviceLocation(true, nil, nil).HasPermission())
}

func (s *ProbeTestSuite) TestStaticPositionCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := probe.NewStaticPosition(&probe.Position{}).Position(ctx)
	s.ErrorIs(err, context.Canceled)
}

func (s *ProbeTestSuite) TestIPPositionSuccess() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"lat":    22.3569,
			"lon":    91.7832,
		})
	}))
	defer server.Close()

	position, err := probe.NewIPPosition(server.URL, time.Second).Position(s.ctx)

	s.NoError(err)
	s.Require().NotNil(position)
	s.Equal(22.3569, position.Latitude)
	s.Equal(91.7832, position.Longitude)
}

func (s *ProbeTestSuite) TestIPPositionUnresolved() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "fail",
			"message": "private range",
		})
	}))
	defer server.Close()

	position, err := probe.NewIPPosition(server.URL, time.Second).Position(s.ctx)

	s.NoError(err)
	s.Nil(position)
}

func (s *ProbeTestSuite) TestIPPositionServerError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := probe.NewIPPosition(server.URL, time.Second).Position(s.ctx)

	s.Error(err)
	s.Contains(err.Error(), "status code: 503")
}

func (s *ProbeTestSuite) TestIPPositionMalformedJSON() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{malformed json"))
	}))
	defer server.Close()

	_, err := probe.NewIPPosition(server.URL, time.Second).Position(s.ctx)

	s.Error(err)
	s.Contains(err.Error(), "malformed JSON")
}

func (s *ProbeTestSuite) TestIPPositionUnreachable() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := probe.NewIPPosition(url, time.Second).Position(s.ctx)

	s.Error(err)
	s.Contains(err.Error(), "location request failed")
	s.NotContains(err.Error(), url)
}

func TestProbeTestSuite(t *testing.T) {
	suite.Run(t, new(ProbeTestSuite))
}
