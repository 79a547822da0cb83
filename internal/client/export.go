package client

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Salon-api/internal/application/dto"
	"github.com/jhoicas/Salon-api/internal/infrastructure/pdf"
)

// Codificaciones admitidas para el CSV.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1251 = "windows-1251"
	EncodingWindows1252 = "windows-1252"
)

var csvHeader = []string{"ID", "Cliente", "Maestro", "Servicio", "Fecha", "Estado", "Monto pagado", "Estado del pago"}

// WriteAppointmentsCSV escribe el listado de citas como CSV en la codificación pedida.
// Los caracteres que la codificación no puede representar se sustituyen.
func WriteAppointmentsCSV(w io.Writer, rows []dto.AppointmentResponse, enc string) error {
	out, closer, err := encodedWriter(w, enc)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(out)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("csv: cabecera: %w", err)
	}
	for _, a := range rows {
		record := []string{
			strconv.FormatInt(a.ID, 10),
			a.ClientName,
			a.MasterName,
			a.ServiceName,
			a.AppointmentDate,
			a.Status,
			strconv.FormatFloat(a.PaymentAmount, 'f', 2, 64),
			a.PaymentStatus,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv: fila %d: %w", a.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv: %w", err)
	}
	if closer != nil {
		return closer.Close()
	}
	return nil
}

// encodedWriter devuelve el writer a usar y, si transcodifica, el Closer que vacía su búfer.
func encodedWriter(w io.Writer, enc string) (io.Writer, io.Closer, error) {
	var cm *charmap.Charmap
	switch strings.ToLower(strings.TrimSpace(enc)) {
	case "", EncodingUTF8, "utf8":
		return w, nil, nil
	case EncodingWindows1251, "cp1251":
		cm = charmap.Windows1251
	case EncodingWindows1252, "cp1252":
		cm = charmap.Windows1252
	default:
		return nil, nil, fmt.Errorf("csv: codificación no soportada %q", enc)
	}
	tw := transform.NewWriter(w, encoding.ReplaceUnsupported(cm.NewEncoder()))
	return tw, tw, nil
}

// WriteAppointmentsPDF escribe el informe de citas en PDF.
func WriteAppointmentsPDF(ctx context.Context, w io.Writer, salonName string, rows []dto.AppointmentResponse) error {
	doc, err := pdf.NewReportGenerator(salonName).AppointmentsPDF(ctx, rows)
	if err != nil {
		return err
	}
	_, err = w.Write(doc)
	return err
}
