package source

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	crownpages "github.com/phn-team/crown-pages-types"
)

// Querier is the slice of a pgx pool the Postgres loader needs. Both
// *pgxpool.Pool and pgxmock satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresLoader reads section definitions stored as JSON rows in a table
// with columns (type_name text, definition jsonb).
type PostgresLoader struct {
	db    Querier
	table string
}

// NewPostgresLoader creates a loader for the given definitions table.
func NewPostgresLoader(db Querier, table string) *PostgresLoader {
	return &PostgresLoader{db: db, table: table}
}

// Load fetches every definition row ordered by type name. The type key
// inside each JSON payload must match the row's type_name column.
func (pl *PostgresLoader) Load(ctx context.Context) ([]*crownpages.SectionDefinition, error) {
	table, err := sanitizeIdentifier(pl.table)
	if err != nil {
		return nil, crownpages.NewError(crownpages.ErrorTypeSource, crownpages.ErrCodeSourceUnavailable,
			fmt.Sprintf("bad definitions table name %q", pl.table)).WithCause(err)
	}

	query := fmt.Sprintf("SELECT type_name, definition FROM %s ORDER BY type_name", table)

	rows, err := pl.db.Query(ctx, query)
	if err != nil {
		return nil, crownpages.NewError(crownpages.ErrorTypeSource, crownpages.ErrCodeSourceUnavailable,
			fmt.Sprintf("cannot query definitions table %s", table)).WithCause(err)
	}
	defer rows.Close()

	var defs []*crownpages.SectionDefinition
	for rows.Next() {
		var typeName string
		var payload []byte

		if err := rows.Scan(&typeName, &payload); err != nil {
			return nil, crownpages.NewError(crownpages.ErrorTypeSource, crownpages.ErrCodeSourceUnavailable,
				"cannot scan definition row").WithCause(err)
		}

		def, err := parseDefinition(payload, fmt.Sprintf("%s/%s", table, typeName))
		if err != nil {
			return nil, err
		}
		if def.Type != typeName {
			return nil, crownpages.NewError(crownpages.ErrorTypeParse, crownpages.ErrCodeTypeMismatch,
				fmt.Sprintf("row %q carries definition for type %q", typeName, def.Type)).
				WithDetail("row", typeName).
				WithDetail("payload_type", def.Type)
		}
		defs = append(defs, def)
	}

	if err := rows.Err(); err != nil {
		return nil, crownpages.NewError(crownpages.ErrorTypeSource, crownpages.ErrCodeSourceUnavailable,
			"error iterating definition rows").WithCause(err)
	}

	zap.S().Infow("Loaded definitions from database", "table", table, "count", len(defs))
	return defs, nil
}
