package shared

import (
	"context"
	"errors"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"reflect"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the prefix and parts into a redis key, skipping empty parts.
func BuildCacheKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part == constant.Empty {
			continue
		}

		key = append(key, part)
	}

	return strings.Join(key, cacheKeySeparator)
}

// InvalidateCaches bumps the generation of prefix, then drops the prefix key and everything
// stored under it. Saves guarded by an older generation are refused from then on.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if _, err := redisCache.NextGeneration(ctx, generationKey(prefix)); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to bump cache generation")
	}

	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}

	if err := redisCache.Delete(ctx, prefix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
	}
}

// CacheGeneration reads the generation of prefix. Take it before querying the database
// and hand it to SaveCache.
func CacheGeneration(ctx context.Context, redisCache cache.RedisCache, prefix string) (int64, error) {
	return redisCache.Generation(ctx, generationKey(prefix))
}

// SaveCache stores value under key unless prefix was invalidated after generation was read,
// so a read that raced a write never outlives it in the cache.
func SaveCache(ctx context.Context, redisCache cache.RedisCache, prefix, key string, value any, ttl int, generation int64) {
	err := redisCache.SaveIfGeneration(ctx, key, value, ttl, generationKey(prefix), generation)

	switch {
	case err == nil:
	case errors.Is(err, cache.ErrStaleGeneration):
		log.Debug().Str("key", key).Int64("generation", generation).Msg("skipping cache save after invalidation")
	default:
		log.Error().Err(err).Str("key", key).Msg("failed to save cache")
	}
}

func generationKey(prefix string) string {
	return BuildCacheKey(constant.CachePrefixGeneration, prefix)
}

// TransformFields maps every `db` tagged field of a struct to its value, nil and zero
// values included, so an update overwrites each column. Fields tagged `update:"-"` are left out.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}

	typ := val.Type()

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := typ.Field(index)

		fieldName := field.Tag.Get("db")
		if fieldName == "" || fieldName == "-" || field.Tag.Get("update") == "-" {
			continue
		}

		updatedFields[fieldName] = val.Field(index).Interface()
	}

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
