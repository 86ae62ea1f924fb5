//go:build !linux
// +build !linux

package sysloggen

import "errors"

func setFreebind(fd uintptr, ipv6 bool) error {
	return errors.New("freebind is not supported on this platform")
}
