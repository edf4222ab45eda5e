package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/forgo/muster/internal/model"
)

// GuildStore is the guild-record store contract the rest of the service
// consumes. Both the SurrealDB repository and the cache decorator satisfy it.
type GuildStore interface {
	Get(ctx context.Context, guildID string) (*model.GuildRecord, error)
	Upsert(ctx context.Context, record *model.GuildRecord) error
}

const guildKeyPrefix = "muster:guild:"

func guildKey(guildID string) string {
	return guildKeyPrefix + guildID
}

// CachedGuildRepository wraps a GuildStore with a Redis read-through cache.
// Guild records are read on nearly every interactive callback, so a short TTL
// cuts the document store out of the hot path. Writes go to the inner store
// first and then refresh the cache; a cache failure never fails the request.
//
// The cache is only coherent under the same at-most-one-writer-per-guild
// assumption the store itself makes.
type CachedGuildRepository struct {
	inner  GuildStore
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// NewCachedGuildRepository creates a caching decorator around inner.
func NewCachedGuildRepository(inner GuildStore, client *redis.Client, ttl time.Duration, log *slog.Logger) *CachedGuildRepository {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CachedGuildRepository{inner: inner, client: client, ttl: ttl, log: log}
}

// Get returns the cached record when present, falling back to the inner
// store on a miss or any cache error.
func (r *CachedGuildRepository) Get(ctx context.Context, guildID string) (*model.GuildRecord, error) {
	payload, err := r.client.Get(ctx, guildKey(guildID)).Bytes()
	if err == nil {
		var record model.GuildRecord
		if err := json.Unmarshal(payload, &record); err == nil {
			record.AttachGroups()
			return &record, nil
		}
		// Corrupt entry; drop it and fall through to the store.
		r.invalidate(ctx, guildID)
	} else if err != redis.Nil {
		r.log.Warn("guild cache read failed", slog.String("guild_id", guildID), slog.String("error", err.Error()))
	}

	record, err := r.inner.Get(ctx, guildID)
	if err != nil || record == nil {
		return record, err
	}
	r.store(ctx, record)
	return record, nil
}

// Upsert writes through to the inner store, then refreshes the cache entry.
func (r *CachedGuildRepository) Upsert(ctx context.Context, record *model.GuildRecord) error {
	if err := r.inner.Upsert(ctx, record); err != nil {
		return err
	}
	r.store(ctx, record)
	return nil
}

func (r *CachedGuildRepository) store(ctx context.Context, record *model.GuildRecord) {
	payload, err := json.Marshal(record)
	if err != nil {
		r.invalidate(ctx, record.ID)
		return
	}
	if err := r.client.Set(ctx, guildKey(record.ID), payload, r.ttl).Err(); err != nil {
		r.log.Warn("guild cache write failed", slog.String("guild_id", record.ID), slog.String("error", err.Error()))
	}
}

func (r *CachedGuildRepository) invalidate(ctx context.Context, guildID string) {
	if err := r.client.Del(ctx, guildKey(guildID)).Err(); err != nil {
		r.log.Warn("guild cache invalidation failed", slog.String("guild_id", guildID), slog.String("error", err.Error()))
	}
}

// Flush removes every cached guild record. Used by operational tooling after
// out-of-band data fixes.
func (r *CachedGuildRepository) Flush(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, guildKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cache key: %w", err)
		}
	}
	return iter.Err()
}
