package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Salon-api/internal/application/dto"
	"github.com/jhoicas/Salon-api/internal/client"
)

func (c *cli) appointments(ctx context.Context, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "list":
		return c.listAppointments(ctx)
	case "create":
		return c.createAppointment(ctx, rest)
	case "export":
		return c.exportAppointments(ctx, rest)
	}
	return fmt.Errorf("subcomando desconocido %q (list|create|export)", sub)
}

func (c *cli) listAppointments(ctx context.Context) error {
	rows, err := await(ctx, c.err, c.api.ListAppointments)
	if err != nil {
		return err
	}
	tw := c.table()
	fmt.Fprintln(tw, "ID\tCLIENTE\tMAESTRO\tSERVICIO\tFECHA\tESTADO\tPAGADO\tPAGO")
	for _, a := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%.2f\t%s\n",
			a.ID, a.ClientName, a.MasterName, a.ServiceName, a.AppointmentDate, a.Status, a.PaymentAmount, a.PaymentStatus)
	}
	return tw.Flush()
}

func (c *cli) createAppointment(ctx context.Context, args []string) error {
	fs := newFlags("appointments create")
	clientID := fs.String("client", "", "ID del cliente")
	masterID := fs.String("master", "", "ID del maestro")
	serviceID := fs.String("service", "", "ID del servicio")
	date := fs.String("date", "", `fecha y hora, ej. "2024-05-01 10:00"`)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.requireWrite(); err != nil {
		return err
	}
	if err := client.RequireFields(
		client.Field{Label: "cliente", Value: *clientID},
		client.Field{Label: "maestro", Value: *masterID},
		client.Field{Label: "servicio", Value: *serviceID},
		client.Field{Label: "fecha", Value: *date},
	); err != nil {
		return err
	}

	in := dto.CreateAppointmentRequest{AppointmentDate: *date}
	var err error
	if in.ClientID, err = parseID("cliente", *clientID); err != nil {
		return err
	}
	if in.MasterID, err = parseID("maestro", *masterID); err != nil {
		return err
	}
	if in.ServiceID, err = parseID("servicio", *serviceID); err != nil {
		return err
	}

	res, err := await(ctx, c.err, func(ctx context.Context) (dto.MessageResponse, error) {
		return c.api.CreateAppointment(ctx, in)
	})
	if err != nil {
		return err
	}
	c.printMessage(res)
	return nil
}

func (c *cli) exportAppointments(ctx context.Context, args []string) error {
	fs := newFlags("appointments export")
	format := fs.String("format", "csv", "csv | pdf")
	enc := fs.String("encoding", client.EncodingUTF8, "codificación del CSV: utf-8 | windows-1251 | windows-1252")
	output := fs.StringP("output", "o", "", "archivo de salida (por defecto stdout)")
	salon := fs.String("salon", "Salón de uñas", "nombre del salón en el PDF")
	if err := fs.Parse(args); err != nil {
		return err
	}
	f := strings.ToLower(*format)
	if f != "csv" && f != "pdf" {
		return fmt.Errorf("formato no soportado %q (csv|pdf)", *format)
	}

	rows, err := await(ctx, c.err, c.api.ListAppointments)
	if err != nil {
		return err
	}

	var w io.Writer = c.out
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("crear %s: %w", *output, err)
		}
		defer file.Close()
		w = file
	}

	if f == "pdf" {
		err = client.WriteAppointmentsPDF(ctx, w, *salon, rows)
	} else {
		err = client.WriteAppointmentsCSV(w, rows, *enc)
	}
	if err != nil {
		return err
	}
	if *output != "" {
		fmt.Fprintf(c.err, "%d citas exportadas a %s\n", len(rows), *output)
	}
	return nil
}

func (c *cli) pay(ctx context.Context, args []string) error {
	fs := newFlags("pay")
	clientID := fs.String("client", "", "ID del cliente")
	appointmentID := fs.String("appointment", "", "ID de la cita")
	amount := fs.String("amount", "", "importe, ej. 25.50")
	method := fs.String("method", "", "método de pago, ej. efectivo, tarjeta")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.requireWrite(); err != nil {
		return err
	}
	if err := client.RequireFields(
		client.Field{Label: "cliente", Value: *clientID},
		client.Field{Label: "cita", Value: *appointmentID},
		client.Field{Label: "importe", Value: *amount},
		client.Field{Label: "método de pago", Value: *method},
	); err != nil {
		return err
	}

	in := dto.RecordPaymentRequest{Method: *method}
	var err error
	if in.ClientID, err = parseID("cliente", *clientID); err != nil {
		return err
	}
	if in.AppointmentID, err = parseID("cita", *appointmentID); err != nil {
		return err
	}
	a, err := decimal.NewFromString(strings.TrimSpace(*amount))
	if err != nil {
		return fmt.Errorf("importe inválido: %q", *amount)
	}
	in.Amount = &a

	res, err := await(ctx, c.err, func(ctx context.Context) (dto.MessageResponse, error) {
		return c.api.RecordPayment(ctx, in)
	})
	if err != nil {
		return err
	}
	c.printMessage(res)
	return nil
}
