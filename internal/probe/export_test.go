package probe

import (
	"context"

	psnet "github.com/shirou/gopsutil/v3/net"
)

func NewHostConnectivityForTesting(lister func(ctx context.Context) (psnet.InterfaceStatList, error)) *HostConnectivity {
	return &HostConnectivity{interfaces: lister}
}
