// @title                       Salon API
// @version                     1.0
// @description                 API de gestión del salón de uñas: clientes, maestros, servicios, citas y pagos.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/Salon-api/docs"
	"github.com/jhoicas/Salon-api/internal/application/auth"
	"github.com/jhoicas/Salon-api/internal/application/scheduling"
	"github.com/jhoicas/Salon-api/internal/application/usecase"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/domain/repository"
	"github.com/jhoicas/Salon-api/internal/infrastructure/cache"
	"github.com/jhoicas/Salon-api/internal/infrastructure/memory"
	"github.com/jhoicas/Salon-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Salon-api/internal/interfaces/http"
	"github.com/jhoicas/Salon-api/pkg/config"
	"github.com/jhoicas/Salon-api/pkg/logger"
)

// repos conjunto de repositorios del driver elegido.
type repos struct {
	roles        repository.RoleRepository
	users        repository.UserRepository
	clients      repository.ClientRepository
	masters      repository.MasterRepository
	services     repository.ServiceRepository
	appointments repository.AppointmentRepository
	tx           scheduling.TxRunner
	close        func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	r, err := openStorage(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer r.close()

	if err := r.roles.EnsureDefaults(ctx, entity.DefaultRoles()); err != nil {
		log.Fatal().Err(err).Msg("sembrar roles")
	}

	authUC := auth.NewAuthUseCase(r.users, r.roles, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if cfg.Bootstrap.Enabled() {
		u, created, err := authUC.UpsertUser(ctx, cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword, entity.RoleAdmin)
		if err != nil {
			log.Fatal().Err(err).Msg("crear administrador de arranque")
		}
		log.Info().Str("username", u.Username).Bool("created", created).Msg("administrador de arranque listo")
	}

	var listStore cache.Cache = cache.NewNoop()
	if cfg.Redis.Enabled() {
		rc := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis no disponible, listados sin caché")
			_ = rc.Close()
		} else {
			defer rc.Close()
			listStore = rc
		}
	}
	lc := usecase.NewListCache(listStore, cfg.Redis.TTL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: httpRouter.LocalRequestID,
	}))
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI: http://localhost:<port>/docs
	if cfg.Docs.Enabled {
		app.Get("/swagger.json", func(c *fiber.Ctx) error {
			c.Type("json")
			return c.SendString(docs.SwaggerInfo.ReadDoc())
		})
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Salon API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ClientUC:      usecase.NewClientUseCase(r.clients, lc),
		MasterUC:      usecase.NewMasterUseCase(r.masters, lc),
		ServiceUC:     usecase.NewServiceUseCase(r.services, lc),
		AppointmentUC: scheduling.NewAppointmentUseCase(r.tx, r.appointments),
		PaymentUC:     scheduling.NewPaymentUseCase(r.tx),
		JWTSecret:     cfg.JWT.Secret,
		LoginLimiter:  httpRouter.NewLoginLimiter(cfg.RateLimit.LoginPerSecond, cfg.RateLimit.LoginBurst),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStorage abre PostgreSQL (creando el esquema si falta) o el almacén en memoria.
func openStorage(ctx context.Context, cfg config.DBConfig) (*repos, error) {
	if cfg.Driver == config.StorageMemory {
		store := memory.NewStore()
		return &repos{
			roles:        memory.NewRoleRepository(store),
			users:        memory.NewUserRepository(store),
			clients:      memory.NewClientRepository(store),
			masters:      memory.NewMasterRepository(store),
			services:     memory.NewServiceRepository(store),
			appointments: memory.NewAppointmentRepository(store),
			tx:           memory.NewTxRunner(store),
			close:        func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &repos{
		roles:        postgres.NewRoleRepository(pool),
		users:        postgres.NewUserRepository(pool),
		clients:      postgres.NewClientRepository(pool),
		masters:      postgres.NewMasterRepository(pool),
		services:     postgres.NewServiceRepository(pool),
		appointments: postgres.NewAppointmentRepository(pool),
		tx:           postgres.NewTxRunner(pool),
		close:        pool.Close,
	}, nil
}
