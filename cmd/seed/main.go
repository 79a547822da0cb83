// seed crea un usuario (o restablece su password y rol) en PostgreSQL.
// No existe endpoint de registro: es la forma de dar de alta logins.
//
// Uso: go run ./cmd/seed --username admin --password secreto --role 1
// Lee la conexión de las mismas variables que el API (DATABASE_URL, DB_HOST, ...).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/jhoicas/Salon-api/internal/application/auth"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
	"github.com/jhoicas/Salon-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Salon-api/pkg/config"
	"github.com/jhoicas/Salon-api/pkg/logger"
)

func main() {
	username := flag.StringP("username", "u", "", "nombre de usuario")
	password := flag.StringP("password", "p", "", "password en claro (se guarda con bcrypt)")
	roleID := flag.IntP("role", "r", entity.RoleViewer, "rol: 1 Administrador, 2 Trabajador, 3 Usuario")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "--username y --password son requeridos")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	if cfg.DB.Driver != config.StoragePostgres {
		log.Fatal().Str("driver", cfg.DB.Driver).Msg("seed solo aplica a PostgreSQL; en memoria use BOOTSTRAP_ADMIN_*")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conectar a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	roles := postgres.NewRoleRepository(pool)
	if err := roles.EnsureDefaults(ctx, entity.DefaultRoles()); err != nil {
		log.Fatal().Err(err).Msg("sembrar roles")
	}

	// El secreto JWT no interviene en el alta.
	uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), roles, auth.JWTConfig{})
	user, created, err := uc.UpsertUser(ctx, *username, *password, *roleID)
	if err != nil {
		log.Fatal().Err(err).Int("role", *roleID).Msg("crear usuario")
	}

	action := "actualizado"
	if created {
		action = "creado"
	}
	fmt.Printf("Usuario %q %s (id=%d, rol=%d)\n", user.Username, action, user.ID, user.RoleID)
}
