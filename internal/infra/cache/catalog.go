package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const catalogKeyPrefix = "catalog:"

// CachedCatalogReadStore serves the public listings from redis and reloads them from the
// wrapped store on a miss. Redis failures never fail a read.
type CachedCatalogReadStore struct {
	next   queries.CatalogReadStore
	client *redis.Client
	ttl    time.Duration
}

func NewCachedCatalogReadStore(next queries.CatalogReadStore, client *redis.Client, ttl time.Duration) *CachedCatalogReadStore {
	return &CachedCatalogReadStore{next: next, client: client, ttl: ttl}
}

func (s *CachedCatalogReadStore) ListActiveServices(ctx context.Context) ([]queries.ServiceView, error) {
	return cached(ctx, s, "services", s.next.ListActiveServices)
}

func (s *CachedCatalogReadStore) ListActiveMasters(ctx context.Context) ([]queries.PublicMasterView, error) {
	return cached(ctx, s, "masters", s.next.ListActiveMasters)
}

func (s *CachedCatalogReadStore) ListCategories(ctx context.Context) ([]queries.CategoryView, error) {
	return cached(ctx, s, "categories", s.next.ListCategories)
}

func (s *CachedCatalogReadStore) ListPublishedReviews(ctx context.Context, limit int) ([]queries.ReviewView, error) {
	return cached(ctx, s, "reviews:"+strconv.Itoa(limit), func(ctx context.Context) ([]queries.ReviewView, error) {
		return s.next.ListPublishedReviews(ctx, limit)
	})
}

func (s *CachedCatalogReadStore) ListCurrentPromotions(ctx context.Context, today time.Time) ([]queries.PromotionView, error) {
	return cached(ctx, s, "promotions:"+today.Format(time.DateOnly), func(ctx context.Context) ([]queries.PromotionView, error) {
		return s.next.ListCurrentPromotions(ctx, today)
	})
}

func (s *CachedCatalogReadStore) ListVisibleGallery(ctx context.Context) ([]queries.GalleryView, error) {
	return cached(ctx, s, "gallery", s.next.ListVisibleGallery)
}

// Invalidate drops every cached listing.
func (s *CachedCatalogReadStore) Invalidate(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, catalogKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func cached[T any](ctx context.Context, s *CachedCatalogReadStore, name string, load func(context.Context) ([]T, error)) ([]T, error) {
	key := catalogKeyPrefix + name

	raw, err := s.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var items []T
		if jerr := json.Unmarshal(raw, &items); jerr == nil {
			return items, nil
		}
		slog.WarnContext(ctx, "dropping undecodable catalog cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		slog.WarnContext(ctx, "catalog cache read failed", "key", key, "error", err.Error())
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if raw, jerr := json.Marshal(items); jerr == nil {
		if serr := s.client.Set(ctx, key, raw, s.ttl).Err(); serr != nil {
			slog.WarnContext(ctx, "catalog cache write failed", "key", key, "error", serr.Error())
		}
	}
	return items, nil
}

// NoopCatalogCache is wired when redis is disabled.
type NoopCatalogCache struct{}

func (NoopCatalogCache) Invalidate(context.Context) error { return nil }
