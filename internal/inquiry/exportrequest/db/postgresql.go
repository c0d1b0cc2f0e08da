package exportrequestdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/foodcatalog-backend/internal/inquiry/exportrequest"
	"github.com/xw1nchester/foodcatalog-backend/internal/logging"
	pgtx "github.com/xw1nchester/foodcatalog-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const exportRequestColumns = `
	id, company_name, name, email, phone, country, products, message, created_at, updated_at`

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

func scanExportRequest(row pgx.Row) (*exportrequest.ExportRequest, error) {
	var e exportrequest.ExportRequest

	if err := row.Scan(
		&e.ID,
		&e.CompanyName,
		&e.Name,
		&e.Email,
		&e.Phone,
		&e.Country,
		&e.Products,
		&e.Message,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExportRequestNotFound
		}

		return nil, err
	}

	return &e, nil
}

func (r *repository) GetAll(ctx context.Context) ([]exportrequest.ExportRequest, error) {
	query := "SELECT " + exportRequestColumns + " FROM export_requests ORDER BY created_at DESC, id DESC"

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]exportrequest.ExportRequest, 0)

	for rows.Next() {
		e, err := scanExportRequest(rows)
		if err != nil {
			return nil, err
		}

		requests = append(requests, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*exportrequest.ExportRequest, error) {
	query := "SELECT " + exportRequestColumns + " FROM export_requests WHERE id = $1"

	logging.LogSQLQuery(r.logger, query)

	return scanExportRequest(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id))
}

func (r *repository) Create(ctx context.Context, data exportrequest.ExportRequest) (*exportrequest.ExportRequest, error) {
	query := `
		INSERT INTO export_requests (company_name, name, email, phone, country, products, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + exportRequestColumns

	logging.LogSQLQuery(r.logger, query)

	return scanExportRequest(pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.CompanyName,
		data.Name,
		data.Email,
		data.Phone,
		data.Country,
		data.Products,
		data.Message,
	))
}

func (r *repository) Update(ctx context.Context, data exportrequest.ExportRequest) (*exportrequest.ExportRequest, error) {
	query := `
		UPDATE export_requests
		SET
			company_name = $2,
			name = $3,
			email = $4,
			phone = $5,
			country = $6,
			products = $7,
			message = $8,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + exportRequestColumns

	logging.LogSQLQuery(r.logger, query)

	return scanExportRequest(pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.ID,
		data.CompanyName,
		data.Name,
		data.Email,
		data.Phone,
		data.Country,
		data.Products,
		data.Message,
	))
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM export_requests WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrExportRequestNotFound
	}

	return nil
}
