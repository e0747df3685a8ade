// Package fetch - guard.go restricts outbound connections to publicly routable addresses.
package fetch

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"syscall"
)

// ErrBlockedAddress is returned when BlockPrivateHosts is set and a URL
// resolves to a loopback, private, link-local or otherwise internal address.
var ErrBlockedAddress = errors.New("address is not publicly routable")

// sharedAddressSpace is the carrier-grade NAT range, which netip does not treat as private.
var sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10")

// IsPublicAddr reports whether ip is a publicly routable unicast address.
func IsPublicAddr(ip netip.Addr) bool {
	ip = ip.Unmap()
	switch {
	case !ip.IsValid(),
		ip.IsUnspecified(),
		ip.IsLoopback(),
		ip.IsPrivate(),
		ip.IsLinkLocalUnicast(),
		ip.IsLinkLocalMulticast(),
		ip.IsInterfaceLocalMulticast(),
		ip.IsMulticast(),
		sharedAddressSpace.Contains(ip):
		return false
	}
	return true
}

// publicOnly is a net.Dialer Control hook. It runs after name resolution, so
// it sees the address actually dialed, including on redirects.
func publicOnly(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	ip, err := netip.ParseAddr(host)
	if err != nil || !IsPublicAddr(ip) {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, host)
	}
	return nil
}

func newHTTPClient(opts *Options) *http.Client {
	if !opts.BlockPrivateHosts {
		return &http.Client{Timeout: opts.Timeout}
	}

	dialer := &net.Dialer{Timeout: opts.Timeout, Control: publicOnly}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	// A proxy would make the dial target the proxy, not the requested host.
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext
	return &http.Client{Timeout: opts.Timeout, Transport: transport}
}
