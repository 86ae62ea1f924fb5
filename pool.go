package sysloggen

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/go-log/log"
	"github.com/pkg/errors"
)

// PoolKind identifies one of the content pools.
type PoolKind int

const (
	MessagePool PoolKind = iota
	HostnamePool
	SourcePool
)

func (k PoolKind) String() string {
	switch k {
	case MessagePool:
		return "message"
	case HostnamePool:
		return "host"
	case SourcePool:
		return "source IP"
	default:
		return "unknown"
	}
}

// fallback describes what is used instead of an empty pool.
func (k PoolKind) fallback() string {
	switch k {
	case MessagePool:
		return "will generate random messages"
	case HostnamePool:
		return "will use '" + DefaultHostname + "' as hostname"
	case SourcePool:
		return "will use OS-assigned source IP"
	default:
		return ""
	}
}

// ContentPools holds the candidate message bodies, hostnames and source addresses.
// A pool is never modified after it is created, so it can be shared by all workers
// without locking. An empty pool means the default behavior is used.
type ContentPools struct {
	messages  []string
	hostnames []string
	sources   []string
}

// NewContentPools creates the pools from copies of the given lists.
func NewContentPools(messages, hostnames, sources []string) *ContentPools {
	return &ContentPools{
		messages:  clone(messages),
		hostnames: clone(hostnames),
		sources:   clone(sources),
	}
}

func clone(ss []string) []string {
	if len(ss) == 0 {
		return nil
	}
	return append([]string(nil), ss...)
}

// Messages returns the message body pool.
func (p *ContentPools) Messages() []string {
	if p == nil {
		return nil
	}
	return p.messages
}

// Hostnames returns the hostname pool.
func (p *ContentPools) Hostnames() []string {
	if p == nil {
		return nil
	}
	return p.hostnames
}

// Sources returns the source address pool.
func (p *ContentPools) Sources() []string {
	if p == nil {
		return nil
	}
	return p.sources
}

// PoolPaths are the locations of the three pools. An empty path leaves the pool empty.
type PoolPaths struct {
	Messages  string
	Hostnames string
	Sources   string
}

// LoadPools loads all pools from paths.
// An empty file is not an error: a warning is logged and the pool falls back to its default.
func LoadPools(ctx context.Context, paths PoolPaths) (*ContentPools, error) {
	pools := &ContentPools{}
	for _, item := range []struct {
		kind PoolKind
		path string
		dst  *[]string
	}{
		{MessagePool, paths.Messages, &pools.messages},
		{HostnamePool, paths.Hostnames, &pools.hostnames},
		{SourcePool, paths.Sources, &pools.sources},
	} {
		if item.path == "" {
			continue
		}
		ss, err := LoadPool(ctx, item.kind, item.path)
		if err != nil {
			return nil, err
		}
		if len(ss) == 0 {
			log.Logf("[pool] warning: %s file %s is empty, %s", item.kind, item.path, item.kind.fallback())
		}
		*item.dst = ss
	}
	return pools, nil
}

// LoadPool reads the entries of one pool from path.
// A path with the redis:// scheme is read from a Redis list, anything else is a file.
func LoadPool(ctx context.Context, kind PoolKind, path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	if strings.HasPrefix(path, redisScheme) {
		return loadRedisPool(ctx, kind, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s file", kind)
	}
	defer f.Close()

	ss, err := ReadLines(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s file %s", kind, path)
	}
	return ss, nil
}

// ReadLines splits r into newline-terminated lines.
// Only the '\n' terminator is removed: blank lines are kept as empty entries and
// a final line without a terminator is kept as well.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
