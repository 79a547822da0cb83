package scheduling

import (
	"strings"
	"time"

	"github.com/jhoicas/Salon-api/internal/domain"
)

var appointmentLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// DateTimeLayout formato con el que se devuelven las fechas de cita.
const DateTimeLayout = "2006-01-02T15:04:05"

// ParseAppointmentDate interpreta la fecha/hora de una cita.
// Las fechas sin zona se toman como hora local del salón; las RFC 3339 se pasan a UTC
// y se descarta la zona, porque la columna es TIMESTAMP sin zona.
func ParseAppointmentDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range appointmentLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if layout == time.RFC3339 {
			t = t.UTC()
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
	}
	return time.Time{}, domain.ErrInvalidInput
}
