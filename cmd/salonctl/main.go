// salonctl cliente de terminal del salón: mismo contrato que la API HTTP.
//
// Uso:
//
//	salonctl login -u admin -p secreto
//	export SALON_TOKEN=...
//	salonctl appointments list
//	salonctl appointments create --client 1 --master 2 --service 3 --date "2024-05-01 10:00"
//	salonctl appointments export --format csv --encoding windows-1251 -o citas.csv
//	salonctl pay --client 1 --appointment 7 --amount 25.50 --method efectivo
//	salonctl clients|masters|services list|create|delete
//
// SALON_API_URL apunta al servidor (por defecto http://localhost:8080).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/Salon-api/internal/client"
	"github.com/jhoicas/Salon-api/pkg/config"
)

const usage = `Uso: salonctl <comando> [subcomando] [flags]

Comandos:
  login                                  iniciar sesión y mostrar el token
  appointments list|create|export        citas
  pay                                    registrar el pago de una cita
  clients list|create|delete             clientes
  masters list|create|delete             maestros
  services list|create|delete            servicios
`

// cli estado compartido por los comandos.
type cli struct {
	api *client.API
	out io.Writer
	err io.Writer
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.LoadClient()
	c := &cli{
		api: client.NewAPI(cfg.APIURL, cfg.Token),
		out: os.Stdout,
		err: os.Stderr,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describe(err))
		stop()
		os.Exit(1)
	}
}

func (c *cli) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return c.login(ctx, args)
	case "appointments":
		return c.appointments(ctx, args)
	case "pay":
		return c.pay(ctx, args)
	case "clients":
		return c.clients(ctx, args)
	case "masters":
		return c.masters(ctx, args)
	case "services":
		return c.services(ctx, args)
	case "help", "-h", "--help":
		fmt.Fprint(c.out, usage)
		return nil
	default:
		return fmt.Errorf("comando desconocido %q\n\n%s", cmd, usage)
	}
}

// await lanza fn en segundo plano y mantiene vivo el bucle principal hasta recibir
// el resultado o la cancelación (Ctrl+C).
func await[T any](ctx context.Context, progress io.Writer, fn func(context.Context) (T, error)) (T, error) {
	results := client.Go(ctx, fn)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	dots := false
	defer func() {
		if dots {
			fmt.Fprintln(progress)
		}
	}()
	for {
		select {
		case r := <-results:
			return r.Value, r.Err
		case <-ticker.C:
			fmt.Fprint(progress, ".")
			dots = true
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

// requireWrite oculta las operaciones de escritura a los roles de solo lectura.
// Es una ayuda de interfaz; el servidor vuelve a comprobar el rol.
func (c *cli) requireWrite() error {
	token := c.api.Token()
	if token == "" {
		return errors.New("sin sesión: ejecute 'salonctl login' y exporte SALON_TOKEN")
	}
	role, err := client.RoleFromToken(token)
	if err != nil {
		return fmt.Errorf("token ilegible: %w", err)
	}
	if !client.CanWrite(role) {
		return fmt.Errorf("su rol (%s) solo permite consultar", client.RoleName(role))
	}
	return nil
}

// describe mensaje para el operador.
func describe(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.Is(err, context.Canceled):
		return "operación cancelada"
	default:
		return err.Error()
	}
}
