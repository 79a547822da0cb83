// Package pdf genera el informe de citas en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del salón     │  Informe de citas + Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° | Cliente | Maestro | Servicio | Fecha | Estado | │
//	│         Pagado                                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Citas / Completadas / Total cobrado                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Salon-api/internal/application/dto"
	"github.com/jhoicas/Salon-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 156, Green: 39, Blue: 96}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator genera el informe de citas.
type ReportGenerator struct {
	salonName string
	now       func() time.Time
}

// NewReportGenerator construye el generador; salonName encabeza cada informe.
func NewReportGenerator(salonName string) *ReportGenerator {
	return &ReportGenerator{salonName: salonName, now: time.Now}
}

// AppointmentsPDF genera el PDF del listado de citas y devuelve sus bytes.
func (g *ReportGenerator) AppointmentsPDF(_ context.Context, appointments []dto.AppointmentResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de citas", true).
		WithAuthor(g.salonName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.salonName, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(appointments)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(appointments))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del salón (izq) y título + fecha de emisión (der).
func headerRow(salonName string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(salonName, "Salón"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("INFORME DE CITAS", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de citas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N°", 1, align.Center),
		h("Cliente", 2, align.Left),
		h("Maestro", 2, align.Left),
		h("Servicio", 2, align.Left),
		h("Fecha", 2, align.Center),
		h("Estado", 1, align.Center),
		h("Pagado", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por cita.
func tableDetailRows(appointments []dto.AppointmentResponse) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	result := make([]core.Row, 0, len(appointments))
	for _, a := range appointments {
		result = append(result, row.New(7).Add(
			cell(fmt.Sprint(a.ID), 1, align.Center),
			cell(nonEmpty(a.ClientName, "-"), 2, align.Left),
			cell(nonEmpty(a.MasterName, "-"), 2, align.Left),
			cell(nonEmpty(a.ServiceName, "-"), 2, align.Left),
			cell(strings.Replace(a.AppointmentDate, "T", " ", 1), 2, align.Center),
			cell(statusLabel(a.Status), 1, align.Center),
			cell("$"+formatMoney(decimal.NewFromFloat(a.PaymentAmount)), 2, align.Right),
		))
	}
	return result
}

// totalsRow: número de citas, completadas y total cobrado.
func totalsRow(appointments []dto.AppointmentResponse) core.Row {
	s := Summarize(appointments)
	label := func(v string) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(
			label(fmt.Sprintf("Citas: %d   Completadas: %d", s.Count, s.Completed)),
		),
		col.New(3).Add(
			text.New("Total cobrado: $"+formatMoney(s.Paid), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1,
			}),
		),
	)
}

// Summary totales del informe.
type Summary struct {
	Count     int
	Completed int
	Paid      decimal.Decimal
}

// Summarize calcula los totales que se imprimen al pie del informe.
func Summarize(appointments []dto.AppointmentResponse) Summary {
	s := Summary{Count: len(appointments), Paid: decimal.Zero}
	for _, a := range appointments {
		if a.Status == entity.AppointmentCompleted {
			s.Completed++
		}
		s.Paid = s.Paid.Add(decimal.NewFromFloat(a.PaymentAmount))
	}
	return s
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(status string) string {
	switch status {
	case entity.AppointmentScheduled:
		return "Agendada"
	case entity.AppointmentCompleted:
		return "Completada"
	}
	return status
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con puntos de miles y coma decimal.
// Ej: 25000 → "25.000,00", 40.5 → "40,50"
func formatMoney(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac
}
