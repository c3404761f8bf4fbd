// Package rankstore keeps the maze download leaderboard in a Redis
// sorted set.
package rankstore

import (
	"context"
	"errors"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/beka-birhanu/maze-registry/service/i"
)

const (
	defaultKey        = "mazes:downloads"
	defaultMaxEntries = 1024
)

// RedisLeaderboard implements i.Leaderboard on a Redis sorted set keyed
// by maze ID with the download count as score.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	key    string

	// maxEntries bounds the sorted set; the least-downloaded members are
	// trimmed once the board grows past it.
	maxEntries int64
}

// Options configures a RedisLeaderboard.
type Options struct {
	// Key is the sorted set key.
	Key string

	// MaxEntries bounds the number of ranked mazes kept.
	MaxEntries int64
}

// NewRedisLeaderboard creates a leaderboard with the provided Redis
// client and options. A nil options pointer selects the defaults.
func NewRedisLeaderboard(client *redis.Client, opts *Options) (*RedisLeaderboard, error) {
	if client == nil {
		return nil, errors.New("nil redis client")
	}

	if opts == nil {
		opts = &Options{}
	}
	if opts.Key == "" {
		opts.Key = defaultKey
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = defaultMaxEntries
	}

	board := &RedisLeaderboard{
		client:     client,
		key:        opts.Key,
		maxEntries: opts.MaxEntries,
	}
	pool := goredis.NewPool(board.client)
	board.locker = redsync.New(pool)
	return board, nil
}

// RecordDownload increments the download count of a maze and trims the
// board if it grew past its bound.
func (b *RedisLeaderboard) RecordDownload(ctx context.Context, mazeID uuid.UUID) error {
	if err := b.client.ZIncrBy(ctx, b.key, 1, mazeID.String()).Err(); err != nil {
		return err
	}

	if b.client.ZCard(ctx, b.key).Val() > b.maxEntries {
		return b.trim(ctx)
	}
	return nil
}

// trim drops the least-downloaded members down to the bound. The mutex
// keeps concurrent trims from each removing a full batch.
func (b *RedisLeaderboard) trim(ctx context.Context) error {
	mutex := b.locker.NewMutex(b.key + ":trim_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	card := b.client.ZCard(ctx, b.key).Val()
	if card <= b.maxEntries {
		return nil
	}
	return b.client.ZRemRangeByRank(ctx, b.key, 0, card-b.maxEntries-1).Err()
}

// Top returns up to amount mazes ordered by descending downloads.
func (b *RedisLeaderboard) Top(ctx context.Context, amount int64) ([]i.RankedMaze, error) {
	if amount <= 0 {
		return nil, nil
	}

	members, err := b.client.ZRevRangeWithScores(ctx, b.key, 0, amount-1).Result()
	if err != nil {
		return nil, err
	}

	var entries []i.RankedMaze
	for _, member := range members {
		id, err := uuid.Parse(member.Member.(string))
		if err != nil {
			// Skip foreign members rather than failing the whole board.
			continue
		}
		entries = append(entries, i.RankedMaze{
			MazeID:    id,
			Downloads: int64(member.Score),
		})
	}
	return entries, nil
}

// Forget drops a maze from the board.
func (b *RedisLeaderboard) Forget(ctx context.Context, mazeID uuid.UUID) error {
	return b.client.ZRem(ctx, b.key, mazeID.String()).Err()
}
