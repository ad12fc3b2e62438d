package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/connectik/connectik_api/internal/utils"
)

// Postgres SQLSTATE codes we translate into domain errors.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// uniqueFields maps unique constraint names to the input field they protect.
var uniqueFields = map[string]string{
	"users_username_key":     "username",
	"categories_slug_unique": "slug",
	"products_slug_unique":   "slug",
	"products_sku_unique":    "sku",
}

// mapError turns driver errors into the errors callers branch on:
// sql.ErrNoRows becomes utils.ErrNotFound, unique violations a
// *utils.ConstraintError and foreign key violations a *utils.ValidationError.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return utils.ErrNotFound
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case pqUniqueViolation:
		field, ok := uniqueFields[pqErr.Constraint]
		if !ok {
			field = pqErr.Column
		}
		return &utils.ConstraintError{Field: field, Constraint: pqErr.Constraint}
	case pqForeignKeyViolation:
		switch {
		case strings.Contains(pqErr.Constraint, "category_id"):
			return utils.NewValidationError("categoryId", "Catégorie inconnue")
		case strings.Contains(pqErr.Constraint, "product_id"):
			return utils.NewValidationError("productId", "Produit inconnu")
		case strings.Contains(pqErr.Constraint, "order_id"):
			return utils.NewValidationError("orderId", "Commande inconnue")
		}
	}
	return err
}

// setBuilder accumulates "column = $n" assignments for partial updates.
type setBuilder struct {
	sets []string
	args []interface{}
}

func (b *setBuilder) add(column string, value interface{}) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *setBuilder) raw(expr string) {
	b.sets = append(b.sets, expr)
}

func (b *setBuilder) empty() bool {
	return len(b.sets) == 0
}

// where appends the id argument and returns the SET clause and its placeholder.
func (b *setBuilder) where(id string) (setClause string, idPlaceholder string) {
	b.args = append(b.args, id)
	return strings.Join(b.sets, ", "), fmt.Sprintf("$%d", len(b.args))
}
