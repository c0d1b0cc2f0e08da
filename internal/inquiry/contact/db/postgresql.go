package contactdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/foodcatalog-backend/internal/inquiry/contact"
	"github.com/xw1nchester/foodcatalog-backend/internal/logging"
	pgtx "github.com/xw1nchester/foodcatalog-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const contactColumns = "id, name, email, phone, subject, message, created_at, updated_at"

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

func scanContact(row pgx.Row) (*contact.Contact, error) {
	var c contact.Contact

	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Subject,
		&c.Message,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContactNotFound
		}

		return nil, err
	}

	return &c, nil
}

func (r *repository) GetAll(ctx context.Context) ([]contact.Contact, error) {
	query := "SELECT " + contactColumns + " FROM contacts ORDER BY created_at DESC, id DESC"

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]contact.Contact, 0)

	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}

		contacts = append(contacts, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contacts, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*contact.Contact, error) {
	query := "SELECT " + contactColumns + " FROM contacts WHERE id = $1"

	logging.LogSQLQuery(r.logger, query)

	return scanContact(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id))
}

func (r *repository) Create(ctx context.Context, data contact.Contact) (*contact.Contact, error) {
	query := `
		INSERT INTO contacts (name, email, phone, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + contactColumns

	logging.LogSQLQuery(r.logger, query)

	return scanContact(pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.Name,
		data.Email,
		data.Phone,
		data.Subject,
		data.Message,
	))
}

func (r *repository) Update(ctx context.Context, data contact.Contact) (*contact.Contact, error) {
	query := `
		UPDATE contacts
		SET name = $2, email = $3, phone = $4, subject = $5, message = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + contactColumns

	logging.LogSQLQuery(r.logger, query)

	return scanContact(pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.ID,
		data.Name,
		data.Email,
		data.Phone,
		data.Subject,
		data.Message,
	))
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM contacts WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrContactNotFound
	}

	return nil
}
