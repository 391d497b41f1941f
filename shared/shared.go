package shared

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/repository"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins a resource prefix and its discriminating parts.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + cacheKeySeparator + strings.Join(parts, cacheKeySeparator)
}

// InvalidateCaches drops every key under the given prefixes. Failures are logged, not returned.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := c.Clear(ctx, prefix+constant.Asterix); err != nil {
			log.Warn().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
		}
	}
}

// SaveCache stores value under key. Failures are logged, not returned.
func SaveCache(ctx context.Context, c cache.RedisCache, key string, value any, ttl int) {
	if err := c.Save(ctx, key, value, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to save cache")
	}
}

// LoadCache reports whether key was found and decoded into value.
func LoadCache(ctx context.Context, c cache.RedisCache, key string, value any) bool {
	err := c.Get(ctx, key, value)
	if err == nil {
		log.Debug().Str("key", key).Msg("cache hit")

		return true
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("key", key).Msg("failed to read cache")
	}

	return false
}

// FilterByField matches records whose column equals value.
func FilterByField(field string, value any) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
			},
		},
	}
}

// Actor returns the login stored by the auth middleware, or guest for anonymous calls.
func Actor(ctx context.Context) string {
	if login, ok := ctx.Value(constant.ContextKeyUserLogin).(string); ok && login != "" {
		return login
	}

	return constant.ContextGuest
}

// Exists checks whether a referenced record is present.
type Exists func(ctx context.Context, id string) (bool, error)

type existChecker interface {
	Exist(ctx context.Context, filter dto.FilterGroup) (bool, error)
}

// ExistsByID adapts a store to an Exists lookup on its primary key.
func ExistsByID(store existChecker) Exists {
	return func(ctx context.Context, id string) (bool, error) {
		return store.Exist(ctx, FilterByField(constant.FieldID, id)) //nolint:wrapcheck
	}
}

// StoreFailure maps the entity store sentinels onto HTTP failures. Other errors pass through.
func StoreFailure(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return failure.NotFound(entity + " not found")
	case errors.Is(err, repository.ErrDuplicate):
		return failure.BadRequestFromString(entity + " already exists")
	default:
		return err
	}
}

// EnsureReference rejects a non-empty id that does not resolve. It is a no-op when enforce is false.
func EnsureReference(ctx context.Context, enforce bool, entity, id string, exists Exists) error {
	if !enforce || id == "" {
		return nil
	}

	found, err := exists(ctx, id)
	if err != nil {
		return fmt.Errorf("checking %s reference: %w", entity, err)
	}

	if !found {
		return failure.BadRequestFromString(entity + " does not exist") //nolint:wrapcheck
	}

	return nil
}
