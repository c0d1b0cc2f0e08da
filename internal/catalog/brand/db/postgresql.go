package branddb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/brand"
	"github.com/xw1nchester/foodcatalog-backend/internal/logging"
	pgtx "github.com/xw1nchester/foodcatalog-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const brandColumns = `
	id,
	slug,
	name_en,
	name_ar,
	description_en,
	description_ar,
	text_en,
	text_ar,
	color,
	main_image,
	banner,
	small_image,
	created_at,
	updated_at
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

func scanBrand(row pgx.Row) (*brand.Brand, error) {
	var b brand.Brand

	if err := row.Scan(
		&b.ID,
		&b.Slug,
		&b.NameEn,
		&b.NameAr,
		&b.DescriptionEn,
		&b.DescriptionAr,
		&b.TextEn,
		&b.TextAr,
		&b.Color,
		&b.MainImage,
		&b.Banner,
		&b.SmallImage,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBrandNotFound
		}

		return nil, err
	}

	return &b, nil
}

func (r *repository) GetAll(ctx context.Context) ([]brand.Brand, error) {
	query := `SELECT ` + brandColumns + ` FROM brands ORDER BY created_at DESC, id DESC`

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := make([]brand.Brand, 0)

	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}

		brands = append(brands, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return brands, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*brand.Brand, error) {
	query := `SELECT ` + brandColumns + ` FROM brands WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	return scanBrand(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id))
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*brand.Brand, error) {
	query := `SELECT ` + brandColumns + ` FROM brands WHERE slug = $1`

	logging.LogSQLQuery(r.logger, query)

	return scanBrand(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, slug))
}

func (r *repository) CheckExists(ctx context.Context, id int) error {
	query := `SELECT EXISTS(SELECT 1 FROM brands WHERE id = $1)`

	logging.LogSQLQuery(r.logger, query)

	var exists bool

	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return err
	}

	if !exists {
		return ErrBrandNotFound
	}

	return nil
}

func (r *repository) CheckSlugIsAvailable(ctx context.Context, slug string, excludeID ...int) (bool, error) {
	query := `SELECT NOT EXISTS(SELECT 1 FROM brands WHERE slug = $1 AND id <> $2)`

	logging.LogSQLQuery(r.logger, query)

	exclude := 0
	if len(excludeID) > 0 {
		exclude = excludeID[0]
	}

	var available bool

	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, slug, exclude).Scan(&available); err != nil {
		return false, err
	}

	return available, nil
}

func (r *repository) Create(ctx context.Context, data brand.Brand) (*brand.Brand, error) {
	query := `
		INSERT INTO brands (
			slug,
			name_en,
			name_ar,
			description_en,
			description_ar,
			text_en,
			text_ar,
			color,
			main_image,
			banner,
			small_image
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + brandColumns

	logging.LogSQLQuery(r.logger, query)

	return scanBrand(pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.Slug,
		data.NameEn,
		data.NameAr,
		data.DescriptionEn,
		data.DescriptionAr,
		data.TextEn,
		data.TextAr,
		data.Color,
		data.MainImage,
		data.Banner,
		data.SmallImage,
	))
}

func (r *repository) Update(ctx context.Context, data brand.Brand) (*brand.Brand, error) {
	query := `
		UPDATE brands
		SET
			slug = $2,
			name_en = $3,
			name_ar = $4,
			description_en = $5,
			description_ar = $6,
			text_en = $7,
			text_ar = $8,
			color = $9,
			main_image = $10,
			banner = $11,
			small_image = $12,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + brandColumns

	logging.LogSQLQuery(r.logger, query)

	return scanBrand(pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.ID,
		data.Slug,
		data.NameEn,
		data.NameAr,
		data.DescriptionEn,
		data.DescriptionAr,
		data.TextEn,
		data.TextAr,
		data.Color,
		data.MainImage,
		data.Banner,
		data.SmallImage,
	))
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM brands WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrBrandNotFound
	}

	return nil
}
