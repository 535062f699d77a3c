package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/jsonml/pkg/codec"
	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/aretw0/jsonml/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "jsonml:tables:"
	// metaField is written into every table hash so empty tables still exist.
	// Token names never start with a colon, so it cannot collide.
	metaField = ":saved_at"
	// neverExpires scores index entries of tables saved without a TTL.
	neverExpires float64 = 1 << 62
)

var _ ports.TableStore = (*Store)(nil)

// Store implements ports.TableStore on Redis.
// Each table is a hash of token name to JSON encoded value stored at
// <prefix>table:<name>, and a sorted set at <prefix>index scored by expiry
// (unix millis) tracks the table names.
type Store struct {
	client backend.UniversalClient
	prefix string
	ttl    time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix sets the key prefix. Defaults to "jsonml:tables:".
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithTTL expires stored tables after ttl. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// New connects to the Redis server at addr.
func New(addr string, opts ...Option) *Store {
	return NewFromClient(backend.NewClient(&backend.Options{Addr: addr}), opts...)
}

// NewFromClient wraps an existing client.
func NewFromClient(client backend.UniversalClient, opts ...Option) *Store {
	s := &Store{
		client: client,
		prefix: defaultPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Table hashes live under their own "table:" namespace so no table name can
// address the index.
func (s *Store) key(name string) string { return s.prefix + "table:" + name }
func (s *Store) indexKey() string       { return s.prefix + "index" }

// Save replaces the table stored under name.
func (s *Store) Save(ctx context.Context, name string, tokens map[domain.Token]any) error {
	fields := make(map[string]any, len(tokens)+1)
	for token, value := range tokens {
		data, err := codec.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode token %q: %w", token, err)
		}
		fields[string(token)] = string(data)
	}
	now := time.Now()
	fields[metaField] = strconv.FormatInt(now.Unix(), 10)

	score := neverExpires
	if s.ttl > 0 {
		score = float64(now.Add(s.ttl).UnixMilli())
	}

	key := s.key(name)
	_, err := s.client.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		pipe.ZAdd(ctx, s.indexKey(), backend.Z{Score: score, Member: name})
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis error saving table %q: %w", name, err)
	}
	return nil
}

// Load retrieves the table stored under name.
func (s *Store) Load(ctx context.Context, name string) (map[domain.Token]any, error) {
	fields, err := s.client.HGetAll(ctx, s.key(name)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error loading table %q: %w", name, err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrTableNotFound
	}

	tokens := make(map[domain.Token]any, len(fields))
	for field, raw := range fields {
		if strings.HasPrefix(field, ":") {
			continue
		}
		value, err := codec.DecodeJSON([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("corrupt token %q in table %q: %w", field, name, err)
		}
		tokens[domain.Token(field)] = value
	}
	return tokens, nil
}

// Delete removes the table stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
		pipe.Del(ctx, s.key(name))
		pipe.ZRem(ctx, s.indexKey(), name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis error deleting table %q: %w", name, err)
	}
	return nil
}

// List returns the names of all live tables. Expired entries are pruned from
// the index first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", now).Err(); err != nil {
		return nil, fmt.Errorf("redis error pruning index: %w", err)
	}

	names, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error listing tables: %w", err)
	}
	return names, nil
}
