package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Salon-api/internal/infrastructure/cache"
)

// ListCache caché de listados compartida por los casos de uso de catálogo.
// Un fallo de la caché nunca corta la petición: se lee de la DB y se registra un warning.
type ListCache struct {
	store cache.Cache
	ttl   time.Duration
}

// NewListCache construye la caché; store nil equivale a sin caché.
func NewListCache(store cache.Cache, ttl time.Duration) ListCache {
	if store == nil {
		store = cache.NewNoop()
	}
	return ListCache{store: store, ttl: ttl}
}

func cachedList[T any](ctx context.Context, lc ListCache, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if raw, ok, err := lc.store.Get(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("leer caché de listado")
	} else if ok {
		var out []T
		if err := json.Unmarshal(raw, &out); err == nil {
			return out, nil
		}
	}

	out, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(out); err == nil {
		if err := lc.store.Set(ctx, key, raw, lc.ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("guardar caché de listado")
		}
	}
	return out, nil
}

func (lc ListCache) invalidate(ctx context.Context, key string) {
	if err := lc.store.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("invalidar caché de listado")
	}
}
