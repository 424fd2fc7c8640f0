package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/report"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// uniqueErr traduce una violación de unicidad a domain.ErrConflict; el resto se envuelve con op.
func uniqueErr(op string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrConflict, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// validID indica si id es un UUID. Un id mal formado se trata como inexistente
// en lugar de dejar que la columna uuid rechace la consulta.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// nullableID convierte "" en NULL para columnas uuid opcionales.
func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}

// likePattern arma el patrón ILIKE de una búsqueda por subcadena, escapando comodines.
func likePattern(search string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(search) + "%"
}

// whereBuilder acumula condiciones con placeholders $n numerados en orden.
type whereBuilder struct {
	conds []string
	args  []any
}

// add agrega una condición; cond contiene un único %d que se reemplaza por el número del placeholder.
func (b *whereBuilder) add(cond string, arg any) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, fmt.Sprintf(cond, len(b.args)))
}

// addRaw agrega una condición sin argumentos.
func (b *whereBuilder) addRaw(cond string) {
	b.conds = append(b.conds, cond)
}

// sql devuelve "WHERE a AND b ..." o "" si no hay condiciones.
func (b *whereBuilder) sql() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conds, " AND ")
}

// next número que tendrá el próximo placeholder (para LIMIT/OFFSET tras el WHERE).
func (b *whereBuilder) next() int {
	return len(b.args) + 1
}

// salesWhere traduce los predicados del filtro a condiciones sobre la tabla de ventas con alias.
func salesWhere(alias string, f report.SalesFilter) (*whereBuilder, error) {
	b := &whereBuilder{}
	for _, p := range f.Predicates() {
		col := alias + "." + string(p.Field)
		switch {
		case p.Field == report.FieldSaleDate && p.Op == report.OpGTE:
			b.add(col+" >= $%d", p.Value)
		case p.Field == report.FieldSaleDate && p.Op == report.OpLT:
			b.add(col+" < $%d", p.Value)
		case p.Field == report.FieldItemID && p.Op == report.OpIn:
			b.add(col+" = ANY($%d::text[]::uuid[])", p.Value)
		default:
			return nil, fmt.Errorf("predicado no soportado: %s %s", p.Field, p.Op)
		}
	}
	return b, nil
}
