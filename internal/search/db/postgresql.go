package searchdb

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/foodcatalog-backend/internal/logging"
	"github.com/xw1nchester/foodcatalog-backend/internal/search"
	pgtx "github.com/xw1nchester/foodcatalog-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

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

func (r *repository) collect(
	ctx context.Context,
	query string,
	scan func(row pgx.Row) (search.Result, error),
	args ...any,
) ([]search.Result, error) {
	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]search.Result, 0)

	for rows.Next() {
		result, err := scan(rows)
		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (r *repository) SearchBrands(ctx context.Context, pattern string, limit int) ([]search.Result, error) {
	query := `
		SELECT id, name_en, name_ar, main_image, color
		FROM brands
		WHERE name_en ILIKE $1 OR name_ar ILIKE $1
		ORDER BY name_en ASC, id ASC
		LIMIT $2`

	return r.collect(ctx, query, func(row pgx.Row) (search.Result, error) {
		result := search.Result{Category: search.CategoryBrand}
		err := row.Scan(&result.ID, &result.Name, &result.NameAr, &result.Image, &result.Color)
		return result, err
	}, pattern, limit)
}

func (r *repository) SearchProducts(ctx context.Context, pattern string, limit int) ([]search.Result, error) {
	query := `
		SELECT p.id, p.name_en, p.name_ar, p.image, p.color, c.name_en, b.name_en
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN brands b ON b.id = c.brand_id
		WHERE p.name_en ILIKE $1 OR p.name_ar ILIKE $1
		ORDER BY p.name_en ASC, p.id ASC
		LIMIT $2`

	return r.collect(ctx, query, func(row pgx.Row) (search.Result, error) {
		result := search.Result{Category: search.CategoryProduct}
		err := row.Scan(
			&result.ID,
			&result.Name,
			&result.NameAr,
			&result.Image,
			&result.Color,
			&result.CategoryName,
			&result.BrandName,
		)
		return result, err
	}, pattern, limit)
}

// SearchRecipes matches on the name of the dish a recipe belongs to.
func (r *repository) SearchRecipes(ctx context.Context, pattern string, limit int) ([]search.Result, error) {
	query := `
		SELECT r.id, d.name_en, d.name_ar, r.image, r.level, r.prep_time, r.cooking_time
		FROM recipes r
		JOIN dishes d ON d.id = r.dish_id
		WHERE d.name_en ILIKE $1 OR d.name_ar ILIKE $1
		ORDER BY d.name_en ASC, r.id ASC
		LIMIT $2`

	return r.collect(ctx, query, func(row pgx.Row) (search.Result, error) {
		result := search.Result{Category: search.CategoryRecipe}
		err := row.Scan(
			&result.ID,
			&result.Name,
			&result.NameAr,
			&result.Image,
			&result.Level,
			&result.PrepTime,
			&result.CookingTime,
		)
		return result, err
	}, pattern, limit)
}
