package guarddb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/foodcatalog-backend/internal/guard"
	"github.com/xw1nchester/foodcatalog-backend/internal/logging"
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

// CountChildren locks the matching child rows so a concurrent insert of a child
// waits for the surrounding transaction.
func (r *repository) CountChildren(ctx context.Context, rule guard.Rule, parentID int) (int, error) {
	table := pgx.Identifier{rule.ChildTable}.Sanitize()
	column := pgx.Identifier{rule.ChildColumn}.Sanitize()

	query := fmt.Sprintf(`
		SELECT COUNT(*) FROM (
			SELECT 1 FROM %s WHERE %s = $1 FOR KEY SHARE
		) AS children
	`, table, column)

	logging.LogSQLQuery(r.logger, query)

	var count int

	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, parentID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
