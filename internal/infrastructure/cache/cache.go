// Package cache guarda los listados de catálogo (clientes, maestros, servicios)
// serializados en JSON. Las escrituras invalidan la clave del listado afectado.
package cache

import (
	"context"
	"time"
)

// Claves de los listados cacheados.
const (
	KeyClients  = "salon:clients"
	KeyMasters  = "salon:masters"
	KeyServices = "salon:services"
)

// Cache almacén clave/valor con TTL.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// NoopCache no guarda nada; se usa cuando no hay Redis configurado.
type NoopCache struct{}

// NewNoop construye la caché vacía.
func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (n *NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (n *NoopCache) Delete(ctx context.Context, key string) error {
	return nil
}
