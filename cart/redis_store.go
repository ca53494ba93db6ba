package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sebitservices/SaborHub-sub000/errs"
)

const cartTTL = 12 * time.Hour

// RedisStore keeps one JSON cart per table key so a waiter can resume an
// unconfirmed cart from any node. Carts expire after cartTTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func cartKey(tableID string) string {
	return "cart:" + tableID
}

func (s *RedisStore) Load(ctx context.Context, tableID string) (*Cart, error) {
	data, err := s.client.Get(ctx, cartKey(tableID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, &errs.ExternalStoreError{Op: "cart load", Err: err}
	}
	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, &errs.ExternalStoreError{Op: "cart decode", Err: err}
	}
	return &c, nil
}

func (s *RedisStore) Save(ctx context.Context, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return &errs.ExternalStoreError{Op: "cart encode", Err: err}
	}
	if err := s.client.Set(ctx, cartKey(c.Table_id), data, cartTTL).Err(); err != nil {
		return &errs.ExternalStoreError{Op: "cart save", Err: err}
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, tableID string) error {
	if err := s.client.Del(ctx, cartKey(tableID)).Err(); err != nil {
		return &errs.ExternalStoreError{Op: "cart clear", Err: err}
	}
	return nil
}
