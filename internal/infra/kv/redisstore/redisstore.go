// Package redisstore implements the key-value store port on Redis. Change
// events ride a pub/sub channel so every node sees writes from its peers.
package redisstore

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"brewhub/config"
	"brewhub/internal/domain/repository"
	"brewhub/internal/errors"
)

// changeChannel carries the key of every mutated entry.
const changeChannel = "brewhub:changes"

// Store persists values as plain Redis strings without expiry.
type Store struct {
	client *redis.Client
}

// New connects to Redis using the configured address and verifies the
// connection with a ping.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	return &Store{client: client}, nil
}

// Get returns the value stored under key, or repository.ErrKeyNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to read key")
	}

	return value, nil
}

// Set replaces the value stored under key and announces the change.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to write key")
	}

	// Peers that miss the announcement catch up on their next read.
	if err := s.client.Publish(ctx, changeChannel, key).Err(); err != nil {
		return errors.Wrap(err, "failed to publish change")
	}

	return nil
}

// Delete removes the key and announces the change.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "failed to delete key")
	}

	if err := s.client.Publish(ctx, changeChannel, key).Err(); err != nil {
		return errors.Wrap(err, "failed to publish change")
	}

	return nil
}

// Watch subscribes to the change channel until ctx is done.
func (s *Store) Watch(ctx context.Context) (<-chan repository.KVEvent, error) {
	sub := s.client.Subscribe(ctx, changeChannel)

	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()

		return nil, errors.Wrap(err, "failed to subscribe to change channel")
	}

	events := make(chan repository.KVEvent, 16)

	go func() {
		defer close(events)
		defer func() { _ = sub.Close() }()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				select {
				case events <- repository.KVEvent{Key: msg.Payload}:
				default:
				}
			}
		}
	}()

	return events, nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
