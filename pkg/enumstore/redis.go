package enumstore

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/enumkit/pkg/enum"
)

const (
	defaultRedisPrefix     = "enum:overrides:"
	defaultRedisMaxRetries = 10
)

// RedisStore keeps one hash per enumeration: field = member, value = JSON
// encoded record.
type RedisStore struct {
	client     redis.UniversalClient
	prefix     string
	maxRetries int
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix changes the hash key prefix (default "enum:overrides:").
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithMaxRetries bounds optimistic transaction retries in Save.
func WithMaxRetries(n int) RedisOption {
	return func(s *RedisStore) {
		if n > 0 {
			s.maxRetries = n
		}
	}
}

func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client:     client,
		prefix:     defaultRedisPrefix,
		maxRetries: defaultRedisMaxRetries,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(enumName string) string {
	return s.prefix + enumName
}

func (s *RedisStore) Load(ctx context.Context, enumName string) (map[string]enum.Data, error) {
	if strings.TrimSpace(enumName) == "" {
		return nil, ErrEmptyEnumName
	}

	fields, err := s.client.HGetAll(ctx, s.key(enumName)).Result()
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	out := make(map[string]enum.Data, len(fields))
	for member, raw := range fields {
		rec, err := decodeRecord([]byte(raw))
		if err != nil {
			return nil, err
		}
		out[member] = rec
	}
	return out, nil
}

func (s *RedisStore) Save(ctx context.Context, enumName, member string, data enum.Data) error {
	if err := validateKey(enumName, member); err != nil {
		return err
	}
	key := s.key(enumName)

	txf := func(tx *redis.Tx) error {
		raw, err := tx.HGet(ctx, key, member).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		rec := enum.Data{}
		if len(raw) > 0 {
			if rec, err = decodeRecord(raw); err != nil {
				return err
			}
		}
		for k, v := range data {
			rec[k] = v
		}

		encoded, err := json.Marshal(rec)
		if err != nil {
			return errors.Join(ErrInvalidRecord, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, member, encoded)
			return nil
		})
		return err
	}

	for range s.maxRetries {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if errors.Is(err, ErrInvalidRecord) {
			return err
		}
		return errors.Join(ErrStoreUnavailable, err)
	}
	return ErrTooManyRetries
}

func (s *RedisStore) Delete(ctx context.Context, enumName, member string) error {
	if err := validateKey(enumName, member); err != nil {
		return err
	}
	if err := s.client.HDel(ctx, s.key(enumName), member).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func decodeRecord(raw []byte) (enum.Data, error) {
	var rec enum.Data
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, errors.Join(ErrInvalidRecord, err)
	}
	if rec == nil {
		rec = enum.Data{}
	}
	return rec, nil
}
