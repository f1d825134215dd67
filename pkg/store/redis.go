package store

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisStore is the key-value alternative to FileStore: one string key per kind.
type RedisStore struct {
	rdb    redis.Cmdable
	prefix string
}

func NewRedisStore(rdb redis.Cmdable, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) key(kind Kind) string {
	return fmt.Sprintf("%s:%s", s.prefix, kind)
}

func (s *RedisStore) Read(ctx context.Context, kind Kind) ([]byte, error) {
	if !kind.Valid() {
		return nil, errors.Errorf("unknown record kind %q", kind)
	}
	data, err := s.rdb.Get(ctx, s.key(kind)).Bytes()
	if err == redis.Nil {
		if err := s.rdb.SetNX(ctx, s.key(kind), emptyArray, 0).Err(); err != nil {
			return nil, errors.Wrapf(err, "create %s", s.key(kind))
		}
		return emptyArray, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", s.key(kind))
	}
	return data, nil
}

func (s *RedisStore) Write(ctx context.Context, kind Kind, data []byte) error {
	if !kind.Valid() {
		return errors.Errorf("unknown record kind %q", kind)
	}
	if err := s.rdb.Set(ctx, s.key(kind), data, 0).Err(); err != nil {
		return errors.Wrapf(err, "write %s", s.key(kind))
	}
	return nil
}
