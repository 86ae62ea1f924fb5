package sysloggen

import "golang.org/x/sys/unix"

// setFreebind allows the socket to bind to an address that is not assigned
// to any local interface.
func setFreebind(fd uintptr, ipv6 bool) error {
	if ipv6 {
		return unix.SetsockoptInt(int(fd), unix.SOL_IPV6, unix.IPV6_FREEBIND, 1)
	}
	return unix.SetsockoptInt(int(fd), unix.SOL_IP, unix.IP_FREEBIND, 1)
}
