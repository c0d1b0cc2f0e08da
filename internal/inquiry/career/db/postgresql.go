package careerdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/foodcatalog-backend/internal/inquiry/career"
	"github.com/xw1nchester/foodcatalog-backend/internal/logging"
	pgtx "github.com/xw1nchester/foodcatalog-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const careerColumns = "id, name, email, phone, position, message, cv, created_at, updated_at"

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

func scanCareer(row pgx.Row) (*career.Career, error) {
	var c career.Career

	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Position,
		&c.Message,
		&c.CV,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCareerNotFound
		}

		return nil, err
	}

	return &c, nil
}

func (r *repository) GetAll(ctx context.Context) ([]career.Career, error) {
	query := "SELECT " + careerColumns + " FROM careers ORDER BY created_at DESC, id DESC"

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	careers := make([]career.Career, 0)

	for rows.Next() {
		c, err := scanCareer(rows)
		if err != nil {
			return nil, err
		}

		careers = append(careers, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return careers, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*career.Career, error) {
	query := "SELECT " + careerColumns + " FROM careers WHERE id = $1"

	logging.LogSQLQuery(r.logger, query)

	return scanCareer(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id))
}

func (r *repository) Create(ctx context.Context, data career.Career) (*career.Career, error) {
	query := `
		INSERT INTO careers (name, email, phone, position, message, cv)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + careerColumns

	logging.LogSQLQuery(r.logger, query)

	return scanCareer(pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.Name,
		data.Email,
		data.Phone,
		data.Position,
		data.Message,
		data.CV,
	))
}

func (r *repository) Update(ctx context.Context, data career.Career) (*career.Career, error) {
	query := `
		UPDATE careers
		SET
			name = $2,
			email = $3,
			phone = $4,
			position = $5,
			message = $6,
			cv = $7,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + careerColumns

	logging.LogSQLQuery(r.logger, query)

	return scanCareer(pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.ID,
		data.Name,
		data.Email,
		data.Phone,
		data.Position,
		data.Message,
		data.CV,
	))
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM careers WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrCareerNotFound
	}

	return nil
}
