package sysloggen

import (
	"context"
	"fmt"
	"net"
	"sync"
	"syscall"

	"github.com/go-log/log"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

// PacketListener acquires UDP handles.
type PacketListener interface {
	ListenPacket(ctx context.Context, network, address string) (net.PacketConn, error)
}

var freebindWarning sync.Once

// netListener acquires real sockets. A handle bound to an explicit address gets
// the freebind option, so the address does not have to be assigned locally.
type netListener struct{}

// NetListener returns the PacketListener backed by the operating system.
func NetListener() PacketListener {
	return &netListener{}
}

func (l *netListener) ListenPacket(ctx context.Context, network, address string) (net.PacketConn, error) {
	var lc net.ListenConfig
	if host, _, _ := net.SplitHostPort(address); host != "" {
		lc.Control = freebindControl
	}
	return lc.ListenPacket(ctx, network, address)
}

func freebindControl(network, address string, c syscall.RawConn) error {
	var serr error
	if err := c.Control(func(fd uintptr) {
		serr = setFreebind(fd, network == "udp6")
	}); err != nil {
		return err
	}
	if serr != nil {
		// binding may still succeed for locally assigned addresses
		if Debug {
			log.Logf("[sender] could not set freebind for %s: %s", address, serr)
		} else {
			freebindWarning.Do(func() {
				log.Logf("[sender] warning: could not set freebind: %s", serr)
			})
		}
	}
	return nil
}

// Sender transmits one record per UDP handle.
// The handle is acquired, optionally bound to the source address, used for a
// single datagram and released, so every datagram may carry a different source.
type Sender struct {
	Listener PacketListener
	Output   Output
	TTL      int // IP TTL or IPv6 hop limit, 0 keeps the OS default
}

// Send transmits rec to dst from src. An empty src leaves the source to the OS.
// It returns the number of bytes written. The error wraps ErrInvalidSource,
// ErrSocket or ErrTransmit.
func (s *Sender) Send(ctx context.Context, rec Record, dst *net.UDPAddr, src string) (int, error) {
	network := udpNetwork(dst.IP)

	laddr := ":0"
	if src != "" {
		ip := net.ParseIP(src)
		if ip == nil || udpNetwork(ip) != network {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSource, src)
		}
		laddr = net.JoinHostPort(ip.String(), "0")
	}

	conn, err := s.listener().ListenPacket(ctx, network, laddr)
	if err != nil {
		if src != "" {
			return 0, fmt.Errorf("%w: could not bind socket to source IP %s: %v", ErrSocket, src, err)
		}
		return 0, fmt.Errorf("%w: could not create socket: %v", ErrSocket, err)
	}
	defer conn.Close()

	if s.TTL > 0 {
		if err := setTTL(conn, network, s.TTL); err != nil && Debug {
			log.Logf("[sender] could not set TTL %d: %s", s.TTL, err)
		}
	}

	b := rec.Bytes()
	if out := s.Output; out != nil {
		out.WriteRecord(b)
	}
	n, err := conn.WriteTo(b, dst)
	if err != nil {
		return n, fmt.Errorf("%w: %s -> %s: %v", ErrTransmit, conn.LocalAddr(), dst, err)
	}
	return n, nil
}

func (s *Sender) listener() PacketListener {
	if s.Listener == nil {
		return NetListener()
	}
	return s.Listener
}

func udpNetwork(ip net.IP) string {
	if ip.To4() != nil {
		return "udp4"
	}
	return "udp6"
}

func setTTL(conn net.PacketConn, network string, ttl int) error {
	if network == "udp6" {
		return ipv6.NewPacketConn(conn).SetHopLimit(ttl)
	}
	return ipv4.NewPacketConn(conn).SetTTL(ttl)
}
