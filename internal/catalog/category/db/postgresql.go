package categorydb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/brand"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/category"
	"github.com/xw1nchester/foodcatalog-backend/internal/logging"
	pgtx "github.com/xw1nchester/foodcatalog-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const selectCategory = `
	SELECT
		c.id,
		c.brand_id,
		b.id,
		b.slug,
		b.name_en,
		b.name_ar,
		b.color,
		c.name_en,
		c.name_ar,
		c.description_en,
		c.description_ar,
		c.image,
		c.created_at,
		c.updated_at
	FROM categories c
	JOIN brands b ON b.id = c.brand_id
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

func scanCategory(row pgx.Row) (*category.Category, error) {
	var (
		c category.Category
		b brand.BrandSummary
	)

	if err := row.Scan(
		&c.ID,
		&c.BrandID,
		&b.ID,
		&b.Slug,
		&b.NameEn,
		&b.NameAr,
		&b.Color,
		&c.NameEn,
		&c.NameAr,
		&c.DescriptionEn,
		&c.DescriptionAr,
		&c.Image,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}

		return nil, err
	}

	c.Brand = &b

	return &c, nil
}

func (r *repository) GetAll(ctx context.Context, filter category.Filter) ([]category.Category, error) {
	query := selectCategory
	args := []any{}

	if filter.BrandID != nil {
		args = append(args, *filter.BrandID)
		query += fmt.Sprintf(" WHERE c.brand_id = $%d", len(args))
	}

	query += " ORDER BY c.created_at DESC, c.id DESC"

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]category.Category, 0)

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}

		categories = append(categories, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*category.Category, error) {
	query := selectCategory + " WHERE c.id = $1"

	logging.LogSQLQuery(r.logger, query)

	return scanCategory(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id))
}

func (r *repository) CheckExists(ctx context.Context, id int) error {
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`

	logging.LogSQLQuery(r.logger, query)

	var exists bool

	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return err
	}

	if !exists {
		return ErrCategoryNotFound
	}

	return nil
}

func (r *repository) Create(ctx context.Context, data category.Category) (*category.Category, error) {
	query := `
		INSERT INTO categories (brand_id, name_en, name_ar, description_en, description_ar, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id int

	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.BrandID,
		data.NameEn,
		data.NameAr,
		data.DescriptionEn,
		data.DescriptionAr,
		data.Image,
	).Scan(&id); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, data category.Category) (*category.Category, error) {
	query := `
		UPDATE categories
		SET
			brand_id = $2,
			name_en = $3,
			name_ar = $4,
			description_en = $5,
			description_ar = $6,
			image = $7,
			updated_at = NOW()
		WHERE id = $1
	`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(
		ctx,
		query,
		data.ID,
		data.BrandID,
		data.NameEn,
		data.NameAr,
		data.DescriptionEn,
		data.DescriptionAr,
		data.Image,
	)
	if err != nil {
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrCategoryNotFound
	}

	return r.GetByID(ctx, data.ID)
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM categories WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
