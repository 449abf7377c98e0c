package grpc

import (
	"net"

	"liyu1981.xyz/battery-tracking-service/pkg/inventory"
)

type InventoryServer struct {
	Inventory        *inventory.Inventory
	RateLimiterStore *inventory.RateLimiterStore
}

var _ InventoryServiceServer = (*InventoryServer)(nil)

func (s *InventoryServer) CheckClientLimiter(clientKey string) bool {
	return s.RateLimiterStore.Allow(clientKey)
}

// peerKey drops the port so every connection from one host shares a limiter.
func peerKey(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	if host, _, err := net.SplitHostPort(addr.String()); err == nil {
		return host
	}
	return addr.String()
}
