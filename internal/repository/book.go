package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrBookMiss = errors.New("position not in book")

// MoveBook caches search results per position and search depth.
type MoveBook interface {
	Get(ctx context.Context, key string) (int, error)
	Put(ctx context.Context, key string, column int) error
}

type bookEntry struct {
	Column int `json:"column"`
}

type dbBook struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveBook - ttl of zero keeps entries forever.
func NewMoveBook(client *redis.Client, ttl time.Duration) MoveBook {
	return &dbBook{
		client: client,
		ttl:    ttl,
	}
}

// BookKey - key for a position searched at depth on behalf of turn.
func BookKey(position string, depth int, turn fmt.Stringer) string {
	return fmt.Sprintf("%s:d%d:%s", position, depth, turn)
}

func (that *dbBook) Get(ctx context.Context, key string) (int, error) {
	response, err := that.client.Get(ctx, "book:"+key).Result()

	if errors.Is(err, redis.Nil) {
		return 0, ErrBookMiss
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get book entry: %w", err)
	}

	var entry bookEntry
	if err = json.Unmarshal([]byte(response), &entry); err != nil {
		return 0, fmt.Errorf("failed to unmarshal book entry: %w", err)
	}

	return entry.Column, nil
}

func (that *dbBook) Put(ctx context.Context, key string, column int) error {
	entryJSON, err := json.Marshal(bookEntry{Column: column})
	if err != nil {
		return fmt.Errorf("could not marshal book entry: %w", err)
	}

	if err = that.client.Set(ctx, "book:"+key, entryJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set book entry: %w", err)
	}

	return nil
}
