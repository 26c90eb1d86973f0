package config

import (
	"fmt"
	"net"
	"net/netip"
	"strconv"
)

// resolveAddr turns a host:port string into a concrete address.
//
// A literal IPv4/IPv6 host is combined with the port directly. Otherwise the
// host goes through a blocking system lookup and the first returned address
// wins, keeping the selection deterministic. There is no timeout; a slow
// resolver stalls startup.
func resolveAddr(s string) (netip.AddrPort, error) {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("invalid address %q: %w", s, err)
	}

	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("invalid port in address %q: %w", s, err)
	}

	if ip, err := netip.ParseAddr(host); err == nil {
		return netip.AddrPortFrom(ip.Unmap(), uint16(port)), nil
	}

	addrs, err := net.LookupHost(host)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("resolving host %q: %w", host, err)
	}
	if len(addrs) == 0 {
		return netip.AddrPort{}, fmt.Errorf("no addresses found for host %q", host)
	}

	ip, err := netip.ParseAddr(addrs[0])
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("resolver returned invalid address %q for host %q: %w", addrs[0], host, err)
	}

	return netip.AddrPortFrom(ip.Unmap(), uint16(port)), nil
}
