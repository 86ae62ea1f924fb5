package sysloggen

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
)

func init() {
	// SetLogger(NewLogLogger())
	// Debug = true
}

// udpTestCollector is a UDP server for test. It keeps every datagram it receives.
type udpTestCollector struct {
	ln     net.PacketConn
	mu     sync.Mutex // guards msgs and closed
	msgs   [][]byte
	closed bool
	done   chan struct{}
}

func newUDPTestCollector() *udpTestCollector {
	laddr, _ := net.ResolveUDPAddr("udp", "127.0.0.1:0")
	ln, err := net.ListenUDP("udp", laddr)
	if err != nil {
		panic(fmt.Sprintf("udptest: failed to listen on a port: %v", err))
	}
	ln.SetReadBuffer(4 * 1024 * 1024)
	return &udpTestCollector{
		ln:   ln,
		done: make(chan struct{}),
	}
}

func (s *udpTestCollector) Start() {
	go s.serve()
}

func (s *udpTestCollector) serve() {
	defer close(s.done)
	for {
		data := make([]byte, 2048)
		n, _, err := s.ln.ReadFrom(data)
		if err != nil {
			return
		}
		s.mu.Lock()
		s.msgs = append(s.msgs, data[:n])
		s.mu.Unlock()
	}
}

func (s *udpTestCollector) Addr() *net.UDPAddr {
	return s.ln.LocalAddr().(*net.UDPAddr)
}

// Messages returns a copy of the datagrams received so far.
func (s *udpTestCollector) Messages() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.msgs...)
}

func (s *udpTestCollector) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	err := s.ln.Close()
	s.closed = true
	s.mu.Unlock()

	<-s.done
	return err
}

// fakeListener hands out fakeConns and counts handle usage.
type fakeListener struct {
	opens     int64
	closes    int64
	writes    int64
	addrs     sync.Map // local address -> count
	listenErr error
	writeErr  error
}

func (l *fakeListener) ListenPacket(ctx context.Context, network, address string) (net.PacketConn, error) {
	if l.listenErr != nil {
		return nil, l.listenErr
	}
	atomic.AddInt64(&l.opens, 1)
	v, _ := l.addrs.LoadOrStore(address, new(int64))
	atomic.AddInt64(v.(*int64), 1)
	return &fakeConn{l: l, network: network, address: address}, nil
}

func (l *fakeListener) count(address string) int64 {
	v, ok := l.addrs.Load(address)
	if !ok {
		return 0
	}
	return atomic.LoadInt64(v.(*int64))
}

type fakeConn struct {
	net.PacketConn
	l       *fakeListener
	network string
	address string
}

func (c *fakeConn) WriteTo(b []byte, addr net.Addr) (int, error) {
	if c.l.writeErr != nil {
		return 0, c.l.writeErr
	}
	atomic.AddInt64(&c.l.writes, 1)
	return len(b), nil
}

func (c *fakeConn) LocalAddr() net.Addr {
	addr, _ := net.ResolveUDPAddr(c.network, c.address)
	return addr
}

func (c *fakeConn) Close() error {
	atomic.AddInt64(&c.l.closes, 1)
	return nil
}
