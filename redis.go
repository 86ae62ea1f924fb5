package sysloggen

import (
	"context"
	"net/url"
	"time"

	"github.com/go-log/log"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisScheme = "redis://"

// RedisTimeout bounds the whole load of one Redis pool.
var RedisTimeout = 10 * time.Second

// parseRedisPool splits a pool location of the form
//
//	redis://[user:pass@]host:port[/db]?key=<list>
//
// into client options and the list key.
func parseRedisPool(path string) (*redis.Options, string, error) {
	u, err := url.Parse(path)
	if err != nil {
		return nil, "", err
	}
	q := u.Query()
	key := q.Get("key")
	if key == "" {
		return nil, "", errors.New("missing list key (?key=)")
	}
	q.Del("key")
	u.RawQuery = q.Encode()

	opts, err := redis.ParseURL(u.String())
	if err != nil {
		return nil, "", err
	}
	return opts, key, nil
}

// loadRedisPool reads every element of a Redis list, in list order.
func loadRedisPool(ctx context.Context, kind PoolKind, path string) ([]string, error) {
	opts, key, err := parseRedisPool(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s pool location %s", kind, path)
	}

	ctx, cancel := context.WithTimeout(ctx, RedisTimeout)
	defer cancel()

	rdb := redis.NewClient(opts)
	defer rdb.Close()

	ss, err := rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s list %s from %s", kind, key, opts.Addr)
	}
	if Debug {
		log.Logf("[pool] %s: %d entries from redis %s/%s", kind, len(ss), opts.Addr, key)
	}
	return ss, nil
}
