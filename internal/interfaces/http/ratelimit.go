package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/Salon-api/internal/application/dto"
)

const limiterIdleTTL = 3 * time.Minute

type visitor struct {
	lim  *rate.Limiter
	seen time.Time
}

// LoginLimiter limita los intentos de login por IP (token bucket).
type LoginLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	r         rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewLoginLimiter rps <= 0 desactiva el límite.
func NewLoginLimiter(rps float64, burst int) *LoginLimiter {
	if burst < 1 {
		burst = 1
	}
	return &LoginLimiter{
		visitors: make(map[string]*visitor),
		r:        rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

func (l *LoginLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	// Las entradas inactivas se purgan en el propio acceso, sin goroutine aparte.
	if now.Sub(l.lastSweep) > time.Minute {
		for k, v := range l.visitors {
			if now.Sub(v.seen) > limiterIdleTTL {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}
	if v, ok := l.visitors[ip]; ok {
		v.seen = now
		return v.lim
	}
	lim := rate.NewLimiter(l.r, l.burst)
	l.visitors[ip] = &visitor{lim: lim, seen: now}
	return lim
}

// Handler middleware Fiber: 429 cuando la IP agota su cupo.
func (l *LoginLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if l == nil || l.r <= 0 {
			return c.Next()
		}
		if !l.get(c.IP()).AllowN(l.now(), 1) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "TOO_MANY_REQUESTS", Message: "demasiados intentos, espere un momento"})
		}
		return c.Next()
	}
}
