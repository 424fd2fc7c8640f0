// Package pagination calcula page/skip/limit y los metadatos de página de los listados.
// No realiza I/O: solo trabaja con los parámetros recibidos.
package pagination

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params página solicitada ya normalizada (Page >= 1, 1 <= PageSize <= MaxPageSize).
type Params struct {
	Page     int
	PageSize int
}

// New normaliza page y pageSize: valores < 1 toman el valor por defecto
// y pageSize se limita a MaxPageSize. page se acota para que Skip no desborde.
func New(page, pageSize int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if maxPage := math.MaxInt / pageSize; page > maxPage {
		page = maxPage
	}
	return Params{Page: page, PageSize: pageSize}
}

// FromQuery interpreta los valores crudos de ?page= y ?limit=; entradas inválidas usan los defaults.
func FromQuery(page, limit string) Params {
	return New(atoi(page), atoi(limit))
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// Skip número de registros a saltar: (page - 1) * pageSize.
func (p Params) Skip() int {
	p = p.normalized()
	return (p.Page - 1) * p.PageSize
}

// Limit alias de PageSize para las consultas.
func (p Params) Limit() int {
	return p.normalized().PageSize
}

// normalized aplica New a valores construidos a mano (p. ej. Params{}).
func (p Params) normalized() Params {
	return New(p.Page, p.PageSize)
}

// Meta metadatos de paginación devueltos junto al listado.
type Meta struct {
	CurrentPage  int  `json:"current_page"`
	TotalPages   int  `json:"total_pages"`
	TotalItems   int  `json:"total_items"`
	ItemsPerPage int  `json:"items_per_page"`
	HasNextPage  bool `json:"has_next_page"`
	HasPrevPage  bool `json:"has_prev_page"`
}

// Meta calcula total de páginas (ceil(total / pageSize)) y los flags de navegación.
func (p Params) Meta(total int) Meta {
	p = p.normalized()
	if total < 0 {
		total = 0
	}
	totalPages := total / p.PageSize
	if total%p.PageSize != 0 {
		totalPages++
	}
	return Meta{
		CurrentPage:  p.Page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: p.PageSize,
		HasNextPage:  p.Page < totalPages,
		HasPrevPage:  p.Page > 1,
	}
}
