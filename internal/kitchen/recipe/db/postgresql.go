package recipedb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/product"
	"github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dish"
	"github.com/xw1nchester/foodcatalog-backend/internal/kitchen/recipe"
	"github.com/xw1nchester/foodcatalog-backend/internal/logging"
	pgtx "github.com/xw1nchester/foodcatalog-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const selectRecipe = `
	SELECT
		r.id,
		r.dish_id,
		d.id,
		d.name_en,
		d.name_ar,
		d.image,
		r.product_id,
		p.name_en,
		p.name_ar,
		p.image,
		r.level,
		r.prep_time,
		r.cooking_time,
		r.servings,
		r.image,
		r.ingredients,
		r.instructions,
		r.created_at,
		r.updated_at
	FROM recipes r
	JOIN dishes d ON d.id = r.dish_id
	LEFT JOIN products p ON p.id = r.product_id
`

type repository struct {
	client pgtx.DBExecutor
	logger *zap.Logger
}

func New(client pgtx.DBExecutor, logger *zap.Logger) *repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

func scanRecipe(row pgx.Row) (*recipe.Recipe, error) {
	var (
		rc                           recipe.Recipe
		d                            dish.DishSummary
		productNameEn, productNameAr *string
		productImage                 *string
	)

	if err := row.Scan(
		&rc.ID,
		&rc.DishID,
		&d.ID,
		&d.NameEn,
		&d.NameAr,
		&d.Image,
		&rc.ProductID,
		&productNameEn,
		&productNameAr,
		&productImage,
		&rc.Level,
		&rc.PrepTime,
		&rc.CookingTime,
		&rc.Servings,
		&rc.Image,
		&rc.Ingredients,
		&rc.Instructions,
		&rc.CreatedAt,
		&rc.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecipeNotFound
		}

		return nil, err
	}

	rc.Dish = &d

	if rc.ProductID != nil && productNameEn != nil && productNameAr != nil {
		rc.Product = &product.ProductSummary{
			ID:     *rc.ProductID,
			NameEn: *productNameEn,
			NameAr: *productNameAr,
			Image:  productImage,
		}
	}

	rc.Normalize()

	return &rc, nil
}

func (r *repository) GetAll(ctx context.Context, filter recipe.Filter) ([]recipe.Recipe, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.DishID != nil {
		args = append(args, *filter.DishID)
		conditions = append(conditions, fmt.Sprintf("r.dish_id = $%d", len(args)))
	}

	if filter.ProductID != nil {
		args = append(args, *filter.ProductID)
		conditions = append(conditions, fmt.Sprintf("r.product_id = $%d", len(args)))
	}

	query := selectRecipe
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY r.created_at DESC, r.id DESC"

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := make([]recipe.Recipe, 0)

	for rows.Next() {
		rc, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}

		recipes = append(recipes, *rc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return recipes, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*recipe.Recipe, error) {
	query := selectRecipe + " WHERE r.id = $1"

	logging.LogSQLQuery(r.logger, query)

	return scanRecipe(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id))
}

func (r *repository) Create(ctx context.Context, data recipe.Recipe) (*recipe.Recipe, error) {
	query := `
		INSERT INTO recipes (
			dish_id,
			product_id,
			level,
			prep_time,
			cooking_time,
			servings,
			image,
			ingredients,
			instructions
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id int

	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.DishID,
		data.ProductID,
		data.Level,
		data.PrepTime,
		data.CookingTime,
		data.Servings,
		data.Image,
		data.Ingredients,
		data.Instructions,
	).Scan(&id); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, data recipe.Recipe) (*recipe.Recipe, error) {
	query := `
		UPDATE recipes
		SET
			dish_id = $2,
			product_id = $3,
			level = $4,
			prep_time = $5,
			cooking_time = $6,
			servings = $7,
			image = $8,
			ingredients = $9,
			instructions = $10,
			updated_at = NOW()
		WHERE id = $1
	`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(
		ctx,
		query,
		data.ID,
		data.DishID,
		data.ProductID,
		data.Level,
		data.PrepTime,
		data.CookingTime,
		data.Servings,
		data.Image,
		data.Ingredients,
		data.Instructions,
	)
	if err != nil {
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrRecipeNotFound
	}

	return r.GetByID(ctx, data.ID)
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM recipes WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrRecipeNotFound
	}

	return nil
}
