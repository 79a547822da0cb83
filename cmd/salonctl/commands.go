package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	flag "github.com/spf13/pflag"

	"github.com/jhoicas/Salon-api/internal/application/dto"
	"github.com/jhoicas/Salon-api/internal/client"
)

func newFlags(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

// subcommand separa el subcomando de sus flags; por defecto "list".
func subcommand(args []string) (string, []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "list", args
	}
	return args[0], args[1:]
}

func parseID(label, v string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s inválido: %q", label, v)
	}
	return id, nil
}

func (c *cli) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
}

func (c *cli) printMessage(res dto.MessageResponse) {
	if res.ID > 0 {
		fmt.Fprintf(c.out, "%s (id=%d)\n", res.Message, res.ID)
		return
	}
	fmt.Fprintln(c.out, res.Message)
}

func (c *cli) login(ctx context.Context, args []string) error {
	fs := newFlags("login")
	username := fs.StringP("username", "u", "", "usuario")
	password := fs.StringP("password", "p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := client.RequireFields(
		client.Field{Label: "usuario", Value: *username},
		client.Field{Label: "password", Value: *password},
	); err != nil {
		return err
	}

	res, err := await(ctx, c.err, func(ctx context.Context) (*dto.LoginResponse, error) {
		return c.api.Login(ctx, *username, *password)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.err, "Sesión iniciada como %s (%s)\n", res.User.Username, client.RoleName(res.User.RoleID))
	fmt.Fprintf(c.out, "export SALON_TOKEN=%s\n", res.AccessToken)
	return nil
}

func (c *cli) clients(ctx context.Context, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "list":
		rows, err := await(ctx, c.err, c.api.ListClients)
		if err != nil {
			return err
		}
		tw := c.table()
		fmt.Fprintln(tw, "ID\tNOMBRE\tTELÉFONO\tNACIMIENTO")
		for _, r := range rows {
			birth := ""
			if r.BirthDate != nil {
				birth = *r.BirthDate
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, r.Name, r.Phone, birth)
		}
		return tw.Flush()

	case "create":
		fs := newFlags("clients create")
		name := fs.String("name", "", "nombre del cliente")
		phone := fs.String("phone", "", "teléfono (máx. 15)")
		birth := fs.String("birth-date", "", "fecha de nacimiento YYYY-MM-DD (opcional)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := c.requireWrite(); err != nil {
			return err
		}
		if err := client.RequireFields(
			client.Field{Label: "nombre", Value: *name},
			client.Field{Label: "teléfono", Value: *phone},
		); err != nil {
			return err
		}
		in := dto.CreateClientRequest{Name: *name, Phone: *phone}
		if *birth != "" {
			in.BirthDate = birth
		}
		res, err := await(ctx, c.err, func(ctx context.Context) (dto.MessageResponse, error) {
			return c.api.CreateClient(ctx, in)
		})
		if err != nil {
			return err
		}
		c.printMessage(res)
		return nil

	case "delete":
		return c.delete(ctx, "clients delete", rest, c.api.DeleteClient)
	}
	return fmt.Errorf("subcomando desconocido %q (list|create|delete)", sub)
}

func (c *cli) masters(ctx context.Context, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "list":
		rows, err := await(ctx, c.err, c.api.ListMasters)
		if err != nil {
			return err
		}
		tw := c.table()
		fmt.Fprintln(tw, "ID\tNOMBRE\tTELÉFONO\tEMAIL")
		for _, r := range rows {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, r.Name, r.Phone, r.Email)
		}
		return tw.Flush()

	case "create":
		fs := newFlags("masters create")
		name := fs.String("name", "", "nombre del maestro")
		phone := fs.String("phone", "", "teléfono (máx. 15)")
		email := fs.String("email", "", "email (opcional)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := c.requireWrite(); err != nil {
			return err
		}
		if err := client.RequireFields(
			client.Field{Label: "nombre", Value: *name},
			client.Field{Label: "teléfono", Value: *phone},
		); err != nil {
			return err
		}
		in := dto.CreateMasterRequest{Name: *name, Phone: *phone, Email: *email}
		res, err := await(ctx, c.err, func(ctx context.Context) (dto.MessageResponse, error) {
			return c.api.CreateMaster(ctx, in)
		})
		if err != nil {
			return err
		}
		c.printMessage(res)
		return nil

	case "delete":
		return c.delete(ctx, "masters delete", rest, c.api.DeleteMaster)
	}
	return fmt.Errorf("subcomando desconocido %q (list|create|delete)", sub)
}

func (c *cli) services(ctx context.Context, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "list":
		rows, err := await(ctx, c.err, c.api.ListServices)
		if err != nil {
			return err
		}
		tw := c.table()
		fmt.Fprintln(tw, "ID\tNOMBRE\tPRECIO\tDURACIÓN\tDESCRIPCIÓN")
		for _, r := range rows {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d min\t%s\n", r.ID, r.Name, r.Price.StringFixed(2), r.Duration, r.Description)
		}
		return tw.Flush()

	case "create":
		fs := newFlags("services create")
		name := fs.String("name", "", "nombre del servicio")
		description := fs.String("description", "", "descripción (opcional)")
		price := fs.String("price", "", "precio, ej. 25.50")
		duration := fs.String("duration", "", "duración en minutos")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := c.requireWrite(); err != nil {
			return err
		}
		if err := client.RequireFields(
			client.Field{Label: "nombre", Value: *name},
			client.Field{Label: "precio", Value: *price},
			client.Field{Label: "duración", Value: *duration},
		); err != nil {
			return err
		}
		p, err := decimal.NewFromString(strings.TrimSpace(*price))
		if err != nil {
			return fmt.Errorf("precio inválido: %q", *price)
		}
		d, err := strconv.Atoi(strings.TrimSpace(*duration))
		if err != nil {
			return fmt.Errorf("duración inválida: %q", *duration)
		}
		in := dto.CreateServiceRequest{Name: *name, Description: *description, Price: &p, Duration: d}
		res, err := await(ctx, c.err, func(ctx context.Context) (dto.MessageResponse, error) {
			return c.api.CreateService(ctx, in)
		})
		if err != nil {
			return err
		}
		c.printMessage(res)
		return nil

	case "delete":
		return c.delete(ctx, "services delete", rest, c.api.DeleteService)
	}
	return fmt.Errorf("subcomando desconocido %q (list|create|delete)", sub)
}

func (c *cli) delete(ctx context.Context, name string, args []string, del func(context.Context, int64) (dto.MessageResponse, error)) error {
	fs := newFlags(name)
	rawID := fs.String("id", "", "ID a eliminar")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.requireWrite(); err != nil {
		return err
	}
	if err := client.RequireFields(client.Field{Label: "id", Value: *rawID}); err != nil {
		return err
	}
	id, err := parseID("id", *rawID)
	if err != nil {
		return err
	}
	res, err := await(ctx, c.err, func(ctx context.Context) (dto.MessageResponse, error) {
		return del(ctx, id)
	})
	if err != nil {
		return err
	}
	c.printMessage(res)
	return nil
}
