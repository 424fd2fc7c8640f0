// Package report contiene las reglas puras de los reportes de ventas: construcción de filtros,
// granularidad de periodos, etiquetas legibles y redondeo monetario.
package report

import (
	"fmt"
	"time"
)

// DateLayout formato de las fechas de calendario recibidas por query string.
const DateLayout = "2006-01-02"

// Field campo de Sale sobre el que se aplica un predicado.
type Field string

const (
	FieldSaleDate Field = "sale_date"
	FieldItemID   Field = "item_id"
)

// Op operador de comparación de un predicado.
type Op string

const (
	OpGTE Op = "gte"
	OpLT  Op = "lt"
	OpIn  Op = "in"
)

// Predicate condición atómica; un filtro es la conjunción de sus predicados.
type Predicate struct {
	Field Field
	Op    Op
	Value any // time.Time para fechas, []string para OpIn
}

// DateRange rango opcional de fechas. From es inclusivo; To es exclusivo
// (inicio del día siguiente a endDate, para que endDate quede incluido completo).
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero indica que no hay ningún límite.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// ParseDateRange interpreta startDate/endDate (YYYY-MM-DD, ambos opcionales) en loc.
func ParseDateRange(startDate, endDate string, loc *time.Location) (DateRange, error) {
	var r DateRange
	if startDate != "" {
		start, err := time.ParseInLocation(DateLayout, startDate, loc)
		if err != nil {
			return DateRange{}, fmt.Errorf("startDate inválido (use YYYY-MM-DD): %q", startDate)
		}
		r.From = &start
	}
	if endDate != "" {
		end, err := time.ParseInLocation(DateLayout, endDate, loc)
		if err != nil {
			return DateRange{}, fmt.Errorf("endDate inválido (use YYYY-MM-DD): %q", endDate)
		}
		next := end.AddDate(0, 0, 1)
		r.To = &next
	}
	if r.From != nil && r.To != nil && !r.From.Before(*r.To) {
		return DateRange{}, fmt.Errorf("startDate no puede ser posterior a endDate")
	}
	return r, nil
}

// DayRange rango [inicio del día de t, inicio del día siguiente) en la zona de t.
func DayRange(t time.Time) DateRange {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1)
	return DateRange{From: &start, To: &end}
}

// YearRange rango [1 de enero, 1 de enero del año siguiente) del año indicado.
func YearRange(year int, loc *time.Location) DateRange {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(1, 0, 0)
	return DateRange{From: &start, To: &end}
}

// SalesFilter filtro de ventas con campos opcionales. Se construye con los métodos With*
// y se traduce a predicados combinados por conjunción.
type SalesFilter struct {
	dates         DateRange
	itemIDs       []string
	restrictItems bool
}

// NewSalesFilter filtro vacío: todas las ventas.
func NewSalesFilter() SalesFilter {
	return SalesFilter{}
}

// WithDateRange agrega límites de fecha (solo los presentes).
func (f SalesFilter) WithDateRange(r DateRange) SalesFilter {
	f.dates = r
	return f
}

// WithItems restringe a ventas cuyo artículo está en ids. Un conjunto vacío no deja pasar ninguna venta.
func (f SalesFilter) WithItems(ids []string) SalesFilter {
	f.itemIDs = append([]string(nil), ids...)
	f.restrictItems = true
	return f
}

// Dates rango de fechas aplicado.
func (f SalesFilter) Dates() DateRange {
	return f.dates
}

// MatchesNothing indica que el filtro por artículos es un conjunto vacío;
// los repositorios pueden responder vacío sin consultar.
func (f SalesFilter) MatchesNothing() bool {
	return f.restrictItems && len(f.itemIDs) == 0
}

// Predicates devuelve los predicados presentes, en orden estable.
func (f SalesFilter) Predicates() []Predicate {
	var ps []Predicate
	if f.dates.From != nil {
		ps = append(ps, Predicate{Field: FieldSaleDate, Op: OpGTE, Value: *f.dates.From})
	}
	if f.dates.To != nil {
		ps = append(ps, Predicate{Field: FieldSaleDate, Op: OpLT, Value: *f.dates.To})
	}
	if f.restrictItems {
		ps = append(ps, Predicate{Field: FieldItemID, Op: OpIn, Value: append([]string(nil), f.itemIDs...)})
	}
	return ps
}
