package report

import (
	"fmt"
	"time"
)

// Granularity tamaño del periodo con el que se agrupan las ventas.
type Granularity string

const (
	GroupByDay   Granularity = "day"
	GroupByWeek  Granularity = "week"
	GroupByMonth Granularity = "month"
)

// ParseGranularity interpreta ?groupBy=; vacío equivale a day.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case "", GroupByDay:
		return GroupByDay, nil
	case GroupByWeek:
		return GroupByWeek, nil
	case GroupByMonth:
		return GroupByMonth, nil
	default:
		return "", fmt.Errorf("groupBy inválido %q (day, week o month)", s)
	}
}

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthLabel etiqueta legible del mes, ej: "Enero 2024".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Year())
}

// MonthShort abreviatura de tres letras del mes ("Ene", "Feb", ...).
func MonthShort(m time.Month) string {
	return monthNames[m-1][:3]
}

// PeriodLabel etiqueta del periodo que contiene t:
//   - day:   "15/01/2024"
//   - week:  "Semana 3, 2024" (semana y año ISO)
//   - month: "Enero 2024"
func PeriodLabel(g Granularity, t time.Time) string {
	switch g {
	case GroupByWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("Semana %d, %d", week, year)
	case GroupByMonth:
		return MonthLabel(t)
	default:
		return t.Format("02/01/2006")
	}
}
