package productdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/brand"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/category"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/product"
	"github.com/xw1nchester/foodcatalog-backend/internal/logging"
	pgtx "github.com/xw1nchester/foodcatalog-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const selectProduct = `
	SELECT
		p.id,
		p.category_id,
		c.id,
		c.name_en,
		c.name_ar,
		b.id,
		b.slug,
		b.name_en,
		b.name_ar,
		b.color,
		p.name_en,
		p.name_ar,
		p.description_en,
		p.description_ar,
		p.color,
		p.image,
		p.created_at,
		p.updated_at
	FROM products p
	JOIN categories c ON c.id = p.category_id
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

func scanProduct(row pgx.Row) (*product.Product, error) {
	var (
		p product.Product
		c category.CategorySummary
		b brand.BrandSummary
	)

	if err := row.Scan(
		&p.ID,
		&p.CategoryID,
		&c.ID,
		&c.NameEn,
		&c.NameAr,
		&b.ID,
		&b.Slug,
		&b.NameEn,
		&b.NameAr,
		&b.Color,
		&p.NameEn,
		&p.NameAr,
		&p.DescriptionEn,
		&p.DescriptionAr,
		&p.Color,
		&p.Image,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	p.Category = &c
	p.Brand = &b

	return &p, nil
}

func (r *repository) GetAll(ctx context.Context, filter product.Filter) ([]product.Product, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("p.category_id = $%d", len(args)))
	}

	if filter.BrandID != nil {
		args = append(args, *filter.BrandID)
		conditions = append(conditions, fmt.Sprintf("c.brand_id = $%d", len(args)))
	}

	query := selectProduct
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY p.created_at DESC, p.id DESC"

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]product.Product, 0)

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*product.Product, error) {
	query := selectProduct + " WHERE p.id = $1"

	logging.LogSQLQuery(r.logger, query)

	return scanProduct(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id))
}

func (r *repository) CheckExists(ctx context.Context, id int) error {
	query := `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`

	logging.LogSQLQuery(r.logger, query)

	var exists bool

	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return err
	}

	if !exists {
		return ErrProductNotFound
	}

	return nil
}

func (r *repository) Create(ctx context.Context, data product.Product) (*product.Product, error) {
	query := `
		INSERT INTO products (category_id, name_en, name_ar, description_en, description_ar, color, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id int

	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.CategoryID,
		data.NameEn,
		data.NameAr,
		data.DescriptionEn,
		data.DescriptionAr,
		data.Color,
		data.Image,
	).Scan(&id); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, data product.Product) (*product.Product, error) {
	query := `
		UPDATE products
		SET
			category_id = $2,
			name_en = $3,
			name_ar = $4,
			description_en = $5,
			description_ar = $6,
			color = $7,
			image = $8,
			updated_at = NOW()
		WHERE id = $1
	`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(
		ctx,
		query,
		data.ID,
		data.CategoryID,
		data.NameEn,
		data.NameAr,
		data.DescriptionEn,
		data.DescriptionAr,
		data.Color,
		data.Image,
	)
	if err != nil {
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrProductNotFound
	}

	return r.GetByID(ctx, data.ID)
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM products WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}
