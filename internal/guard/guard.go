// Package guard refuses to delete a parent row while rows of its child kind
// still point at it.
package guard

import (
	"context"
	"fmt"

	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"go.uber.org/zap"
)

type Kind string

const (
	KindBrand        Kind = "brand"
	KindCategory     Kind = "category"
	KindDishCategory Kind = "dish category"
	KindDish         Kind = "dish"
)

// Rule names the child table whose ChildColumn references the parent.
type Rule struct {
	ChildTable    string
	ChildColumn   string
	ChildSingular string
	ChildPlural   string
}

var rules = map[Kind]Rule{
	KindBrand: {
		ChildTable:    "categories",
		ChildColumn:   "brand_id",
		ChildSingular: "category",
		ChildPlural:   "categories",
	},
	KindCategory: {
		ChildTable:    "products",
		ChildColumn:   "category_id",
		ChildSingular: "product",
		ChildPlural:   "products",
	},
	KindDishCategory: {
		ChildTable:    "dishes",
		ChildColumn:   "dish_category_id",
		ChildSingular: "dish",
		ChildPlural:   "dishes",
	},
	KindDish: {
		ChildTable:    "recipes",
		ChildColumn:   "dish_id",
		ChildSingular: "recipe",
		ChildPlural:   "recipes",
	},
}

func RuleFor(kind Kind) (Rule, bool) {
	rule, ok := rules[kind]
	return rule, ok
}

//go:generate mockgen -source=guard.go -destination=mocks/mock.go -package=mockguard
type Counter interface {
	CountChildren(ctx context.Context, rule Rule, parentID int) (int, error)
}

type Guard struct {
	counter Counter
	logger  *zap.Logger
}

func New(counter Counter, logger *zap.Logger) *Guard {
	return &Guard{
		counter: counter,
		logger:  logger,
	}
}

// ForbidDeleteWithChildren returns a client error when the parent identified by
// kind and id still has children. Run it inside the transaction that deletes
// the parent.
func (g *Guard) ForbidDeleteWithChildren(ctx context.Context, kind Kind, id int) error {
	rule, ok := RuleFor(kind)
	if !ok {
		return fmt.Errorf("no delete rule for kind %q", kind)
	}

	count, err := g.counter.CountChildren(ctx, rule, id)
	if err != nil {
		g.logger.Error(
			"unexpected error when counting children",
			zap.String("kind", string(kind)),
			zap.Int("id", id),
			zap.Error(err),
		)
		return err
	}

	if count > 0 {
		return NewConflictErr(kind, count)
	}

	return nil
}

func NewConflictErr(kind Kind, count int) *apperror.AppError {
	rule := rules[kind]

	label := rule.ChildPlural
	if count == 1 {
		label = rule.ChildSingular
	}

	return apperror.NewAppError(
		fmt.Sprintf("cannot delete %s: %d %s still reference it", kind, count, label),
	)
}

// NewReferencedErr is returned when the database itself rejects a delete
// because of a child created after the guard ran.
func NewReferencedErr(kind Kind) *apperror.AppError {
	return apperror.NewAppError(
		fmt.Sprintf("cannot delete %s: %s still reference it", kind, rules[kind].ChildPlural),
	)
}
