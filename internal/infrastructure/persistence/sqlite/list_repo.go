package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/sinkhole/internal/domain/lists"
	"github.com/bnema/sinkhole/internal/domain/repository"
	"github.com/bnema/sinkhole/internal/logging"
)

// listTables maps each list kind to its table. The three tables share the
// same shape; only the name differs. Adding a list kind means adding one
// entry here and one table migration, nothing else.
var listTables = map[lists.List]string{
	lists.ListAllow: "allowlist",
	lists.ListDeny:  "denylist",
	lists.ListRegex: "regexlist",
}

type listRepo struct {
	db *sql.DB
}

// NewListRepository creates a SQLite-backed domain-list repository over the
// gravity database.
func NewListRepository(db *sql.DB) repository.ListRepository {
	return &listRepo{db: db}
}

// table resolves the list selector to its table name. Table names come from
// the closed map above, never from caller input, so interpolating them into
// query text is safe.
func table(list lists.List) (string, error) {
	name, ok := listTables[list]
	if !ok {
		return "", fmt.Errorf("%w: %q", lists.ErrUnknownList, list)
	}
	return name, nil
}

// storageErr logs the underlying storage error and collapses it into the
// single lists.ErrStorage kind exposed to callers.
func (r *listRepo) storageErr(ctx context.Context, op string, list lists.List, err error) error {
	logging.FromContext(ctx).Error().
		Err(err).
		Str("op", op).
		Str("list", list.String()).
		Msg("gravity database operation failed")
	return fmt.Errorf("%w: %s %s", lists.ErrStorage, op, list)
}

func (r *listRepo) GetAll(ctx context.Context, list lists.List) ([]string, error) {
	tbl, err := table(list)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT domain FROM %s WHERE enabled = 1 ORDER BY rowid", tbl)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, r.storageErr(ctx, "get", list, err)
	}
	defer func() { _ = rows.Close() }()

	domains := []string{}
	for rows.Next() {
		var domain string
		if err := rows.Scan(&domain); err != nil {
			return nil, r.storageErr(ctx, "get", list, err)
		}
		domains = append(domains, domain)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storageErr(ctx, "get", list, err)
	}

	return domains, nil
}

func (r *listRepo) Contains(ctx context.Context, list lists.List, domain string) (bool, error) {
	tbl, err := table(list)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE enabled = 1 AND domain = ?)", tbl)
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, domain).Scan(&exists); err != nil {
		return false, r.storageErr(ctx, "contains", list, err)
	}

	return exists, nil
}

func (r *listRepo) Add(ctx context.Context, list lists.List, domain string) error {
	tbl, err := table(list)
	if err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("list", list.String()).Str("domain", domain).Msg("adding domain to list")

	// Upsert: re-adding an existing domain is idempotent, and re-enables a
	// row a previous tool may have disabled.
	query := fmt.Sprintf(
		"INSERT INTO %s (domain, enabled) VALUES (?, 1) ON CONFLICT (domain) DO UPDATE SET enabled = 1",
		tbl,
	)
	if _, err := r.db.ExecContext(ctx, query, domain); err != nil {
		return r.storageErr(ctx, "add", list, err)
	}

	return nil
}

func (r *listRepo) Remove(ctx context.Context, list lists.List, domain string) error {
	tbl, err := table(list)
	if err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("list", list.String()).Str("domain", domain).Msg("removing domain from list")

	// Physical delete of the enabled row. Disabled rows are left alone:
	// they are already invisible through the repository, and other tooling
	// may own them.
	query := fmt.Sprintf("DELETE FROM %s WHERE enabled = 1 AND domain = ?", tbl)
	if _, err := r.db.ExecContext(ctx, query, domain); err != nil {
		return r.storageErr(ctx, "remove", list, err)
	}

	return nil
}
