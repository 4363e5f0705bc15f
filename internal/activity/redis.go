package activity

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/redis.v5"
)

const keyPrefix = "activity:"

// Recording runs inline with the request, so an unreachable server has to
// fail fast.
const (
	dialTimeout = 250 * time.Millisecond
	ioTimeout   = 250 * time.Millisecond
	poolTimeout = 500 * time.Millisecond
)

// Redis keeps each user's history in a capped Redis list.
type Redis struct {
	client *redis.Client
	depth  int
}

// NewRedis connects to the Redis server at addr (host:port).
func NewRedis(addr string, depth int) *Redis {
	return &Redis{
		client: redis.NewClient(redisOptions(addr)),
		depth:  depth,
	}
}

func redisOptions(addr string) *redis.Options {
	return &redis.Options{
		Addr:         addr,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
		PoolTimeout:  poolTimeout,
		MaxRetries:   0,
	}
}

func (r *Redis) key(username string) string {
	return keyPrefix + username
}

func (r *Redis) Record(ctx context.Context, username, method, route string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	value, err := encodeEntry(Entry{Method: method, Route: route})
	if err != nil {
		return err
	}

	key := r.key(username)
	if err := r.client.LPush(key, value).Err(); err != nil {
		return fmt.Errorf("lpush %s: %w", key, err)
	}
	if err := r.client.LTrim(key, 0, int64(r.depth-1)).Err(); err != nil {
		return fmt.Errorf("ltrim %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Recent(ctx context.Context, username string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := r.key(username)
	raw, err := r.client.LRange(key, 0, int64(r.depth-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", key, err)
	}
	return decodeEntries(raw)
}

func (r *Redis) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.client.Ping().Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}

var _ Recorder = (*Redis)(nil)
