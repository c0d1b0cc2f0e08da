package dishcategorydb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dishcategory"
	"github.com/xw1nchester/foodcatalog-backend/internal/logging"
	pgtx "github.com/xw1nchester/foodcatalog-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const dishCategoryColumns = "id, name_en, name_ar, image, created_at, updated_at"

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

func scanDishCategory(row pgx.Row) (*dishcategory.DishCategory, error) {
	var dc dishcategory.DishCategory

	if err := row.Scan(
		&dc.ID,
		&dc.NameEn,
		&dc.NameAr,
		&dc.Image,
		&dc.CreatedAt,
		&dc.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDishCategoryNotFound
		}

		return nil, err
	}

	return &dc, nil
}

func (r *repository) GetAll(ctx context.Context) ([]dishcategory.DishCategory, error) {
	query := "SELECT " + dishCategoryColumns + " FROM dish_categories ORDER BY name_en ASC, id ASC"

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishCategories := make([]dishcategory.DishCategory, 0)

	for rows.Next() {
		dc, err := scanDishCategory(rows)
		if err != nil {
			return nil, err
		}

		dishCategories = append(dishCategories, *dc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dishCategories, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*dishcategory.DishCategory, error) {
	query := "SELECT " + dishCategoryColumns + " FROM dish_categories WHERE id = $1"

	logging.LogSQLQuery(r.logger, query)

	return scanDishCategory(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id))
}

func (r *repository) CheckExists(ctx context.Context, id int) error {
	query := `SELECT EXISTS(SELECT 1 FROM dish_categories WHERE id = $1)`

	logging.LogSQLQuery(r.logger, query)

	var exists bool

	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return err
	}

	if !exists {
		return ErrDishCategoryNotFound
	}

	return nil
}

func (r *repository) Create(ctx context.Context, data dishcategory.DishCategory) (*dishcategory.DishCategory, error) {
	query := `
		INSERT INTO dish_categories (name_en, name_ar, image)
		VALUES ($1, $2, $3)
		RETURNING ` + dishCategoryColumns

	logging.LogSQLQuery(r.logger, query)

	return scanDishCategory(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, data.NameEn, data.NameAr, data.Image))
}

func (r *repository) Update(ctx context.Context, data dishcategory.DishCategory) (*dishcategory.DishCategory, error) {
	query := `
		UPDATE dish_categories
		SET name_en = $2, name_ar = $3, image = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + dishCategoryColumns

	logging.LogSQLQuery(r.logger, query)

	return scanDishCategory(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, data.ID, data.NameEn, data.NameAr, data.Image))
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM dish_categories WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrDishCategoryNotFound
	}

	return nil
}
