package dishdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dish"
	"github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dishcategory"
	"github.com/xw1nchester/foodcatalog-backend/internal/logging"
	pgtx "github.com/xw1nchester/foodcatalog-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const selectDish = `
	SELECT
		d.id,
		d.dish_category_id,
		dc.id,
		dc.name_en,
		dc.name_ar,
		d.name_en,
		d.name_ar,
		d.image,
		d.created_at,
		d.updated_at
	FROM dishes d
	JOIN dish_categories dc ON dc.id = d.dish_category_id
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

func scanDish(row pgx.Row) (*dish.Dish, error) {
	var (
		d  dish.Dish
		dc dishcategory.DishCategorySummary
	)

	if err := row.Scan(
		&d.ID,
		&d.DishCategoryID,
		&dc.ID,
		&dc.NameEn,
		&dc.NameAr,
		&d.NameEn,
		&d.NameAr,
		&d.Image,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDishNotFound
		}

		return nil, err
	}

	d.DishCategory = &dc

	return &d, nil
}

func (r *repository) GetAll(ctx context.Context, filter dish.Filter) ([]dish.Dish, error) {
	query := selectDish
	args := []any{}

	if filter.DishCategoryID != nil {
		query += " WHERE d.dish_category_id = $1"
		args = append(args, *filter.DishCategoryID)
	}

	query += " ORDER BY d.name_en ASC, d.id ASC"

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := make([]dish.Dish, 0)

	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			return nil, err
		}

		dishes = append(dishes, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dishes, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*dish.Dish, error) {
	query := selectDish + " WHERE d.id = $1"

	logging.LogSQLQuery(r.logger, query)

	return scanDish(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id))
}

func (r *repository) CheckExists(ctx context.Context, id int) error {
	query := `SELECT EXISTS(SELECT 1 FROM dishes WHERE id = $1)`

	logging.LogSQLQuery(r.logger, query)

	var exists bool

	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return err
	}

	if !exists {
		return ErrDishNotFound
	}

	return nil
}

func (r *repository) Create(ctx context.Context, data dish.Dish) (*dish.Dish, error) {
	query := `
		INSERT INTO dishes (dish_category_id, name_en, name_ar, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id int

	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.DishCategoryID,
		data.NameEn,
		data.NameAr,
		data.Image,
	).Scan(&id); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, data dish.Dish) (*dish.Dish, error) {
	query := `
		UPDATE dishes
		SET
			dish_category_id = $2,
			name_en = $3,
			name_ar = $4,
			image = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(
		ctx,
		query,
		data.ID,
		data.DishCategoryID,
		data.NameEn,
		data.NameAr,
		data.Image,
	)
	if err != nil {
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrDishNotFound
	}

	return r.GetByID(ctx, data.ID)
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM dishes WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrDishNotFound
	}

	return nil
}
