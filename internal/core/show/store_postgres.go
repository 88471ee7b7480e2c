// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package show

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/negativchik09/TheatreAPI/internal/platform/apperr"
	"github.com/negativchik09/TheatreAPI/internal/platform/database/schema"
	"github.com/negativchik09/TheatreAPI/internal/platform/dberr"
	"github.com/negativchik09/TheatreAPI/internal/platform/postgres"
)

// NUMERIC columns travel as text both ways so no precision is lost to float64.
var (
	showTable        = schema.TheatreShow
	roleTable        = schema.TheatreRole
	contractTable    = schema.TheatreContract
	transactionTable = schema.TheatreTransaction

	showSelect = fmt.Sprintf("s.%s, s.%s, s.%s::text, s.%s, s.%s",
		showTable.ID, showTable.Title, showTable.TotalBudget, showTable.DateOfPremiere, showTable.Version,
	)
	contractSelect = fmt.Sprintf("c.%s, c.%s, c.%s, c.%s, c.%s::text",
		contractTable.ID, contractTable.ShowID, contractTable.RoleID, contractTable.ActorID, contractTable.YearCost,
	)
	transactionSelect = fmt.Sprintf("t.%s, t.%s, t.%s, t.%s::text, t.%s",
		transactionTable.ID, transactionTable.ContractID, transactionTable.ActorID, transactionTable.Sum, transactionTable.Date,
	)

	// # Shows

	showActorFilter = fmt.Sprintf(`($1::text = '' OR EXISTS (
			SELECT 1 FROM %s own WHERE own.%s = s.%s AND own.%s::text = $1))`,
		contractTable.Table, contractTable.ShowID, showTable.ID, contractTable.ActorID,
	)

	selectShowSummariesQuery = fmt.Sprintf(`
		SELECT s.%s, s.%s, s.%s::text, COALESCE(SUM(c.%s), 0)::text, s.%s,
		       (SELECT count(*) FROM %s r WHERE r.%s = s.%s),
		       count(DISTINCT c.%s)
		FROM %s s
		LEFT JOIN %s c ON c.%s = s.%s
		WHERE %s
		GROUP BY s.%s
		ORDER BY s.%s, s.%s
		LIMIT $2 OFFSET $3`,
		showTable.ID, showTable.Title, showTable.TotalBudget, contractTable.YearCost, showTable.DateOfPremiere,
		roleTable.Table, roleTable.ShowID, showTable.ID,
		contractTable.ActorID,
		showTable.Table,
		contractTable.Table, contractTable.ShowID, showTable.ID,
		showActorFilter,
		showTable.ID,
		showTable.DateOfPremiere, showTable.ID,
	)

	countShowsQuery = fmt.Sprintf(`SELECT count(*) FROM %s s WHERE %s`, showTable.Table, showActorFilter)

	selectShowQuery = fmt.Sprintf(`SELECT %s FROM %s s WHERE s.%s = $1`,
		showSelect, showTable.Table, showTable.ID,
	)

	insertShowQuery = fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3::numeric, $4, $5)`,
		showTable.Table, schema.List(showTable.Columns()...),
	)

	deleteShowQuery = fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, showTable.Table, showTable.ID)

	bumpShowVersionQuery = fmt.Sprintf(`
		UPDATE %s SET %s = %s + 1
		WHERE %s = $1 AND %s = $2`,
		showTable.Table, showTable.Version, showTable.Version,
		showTable.ID, showTable.Version,
	)

	// # Roles

	selectRolesQuery = fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s`,
		schema.List(roleTable.Columns()...), roleTable.Table, roleTable.ShowID, roleTable.ID,
	)

	insertRoleQuery = fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3)`,
		roleTable.Table, schema.List(roleTable.Columns()...),
	)

	deleteRoleQuery = fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		roleTable.Table, roleTable.ID, roleTable.ShowID,
	)

	selectShowIDByRoleQuery = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		roleTable.ShowID, roleTable.Table, roleTable.ID,
	)

	// # Contracts

	selectShowContractsQuery = fmt.Sprintf(`
		SELECT %s FROM %s c
		WHERE c.%s = $1
		ORDER BY c.%s`,
		contractSelect, contractTable.Table, contractTable.ShowID, contractTable.ID,
	)

	contractActorFilter = fmt.Sprintf(`($1::text = '' OR c.%s::text = $1)`, contractTable.ActorID)

	selectContractsQuery = fmt.Sprintf(`
		SELECT %s FROM %s c
		WHERE %s
		ORDER BY c.%s
		LIMIT $2 OFFSET $3`,
		contractSelect, contractTable.Table, contractActorFilter, contractTable.ID,
	)

	countContractsQuery = fmt.Sprintf(`SELECT count(*) FROM %s c WHERE %s`, contractTable.Table, contractActorFilter)

	insertContractQuery = fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5::numeric)`,
		contractTable.Table, schema.List(contractTable.Columns()...),
	)

	deleteContractQuery = fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		contractTable.Table, contractTable.ID, contractTable.ShowID,
	)

	selectShowIDByContractQuery = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		contractTable.ShowID, contractTable.Table, contractTable.ID,
	)

	// # Transactions

	selectShowTransactionsQuery = fmt.Sprintf(`
		SELECT %s FROM %s t
		JOIN %s c ON c.%s = t.%s
		WHERE c.%s = $1
		ORDER BY t.%s, t.%s`,
		transactionSelect, transactionTable.Table,
		contractTable.Table, contractTable.ID, transactionTable.ContractID,
		contractTable.ShowID,
		transactionTable.Date, transactionTable.ID,
	)

	selectTransactionsQuery = fmt.Sprintf(`
		SELECT %s FROM %s t
		WHERE ($1::text = '' OR t.%s::text = $1)
		  AND ($2::text = '' OR t.%s::text = $2)
		ORDER BY t.%s, t.%s`,
		transactionSelect, transactionTable.Table,
		transactionTable.ContractID, transactionTable.ActorID,
		transactionTable.Date, transactionTable.ID,
	)

	insertTransactionQuery = fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4::numeric, $5)`,
		transactionTable.Table, schema.List(transactionTable.Columns()...),
	)
)

// snapshotRead gives the four aggregate queries of GetShow one consistent view.
var snapshotRead = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Shows

func (repository *PostgresRepository) ListShows(context context.Context, actorID string, limit, offset int) ([]Summary, int, error) {
	var total int
	if err := repository.db.QueryRow(context, countShowsQuery, actorID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_shows")
	}

	rows, err := repository.db.Query(context, selectShowSummariesQuery, actorID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_shows")
	}
	defer rows.Close()

	summaries := []Summary{}
	for rows.Next() {
		var (
			summary              Summary
			budget, alreadySpent string
		)
		err := rows.Scan(
			&summary.ID, &summary.Title, &budget, &alreadySpent, &summary.DateOfPremiere,
			&summary.RoleCount, &summary.ActorCount,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_show_summary")
		}

		if summary.TotalBudget, err = parseNumeric(budget, "scan_show_summary"); err != nil {
			return nil, 0, err
		}
		if summary.AlreadySpent, err = parseNumeric(alreadySpent, "scan_show_summary"); err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, total, dberr.Wrap(rows.Err(), "list_shows")
}

// GetShow loads the whole aggregate: roles, contracts and their transactions.
func (repository *PostgresRepository) GetShow(context context.Context, id string) (*Show, error) {
	var show *Show

	err := pgx.BeginTxFunc(context, repository.db, snapshotRead, func(tx pgx.Tx) error {
		snapshot, err := scanShow(tx.QueryRow(context, selectShowQuery, id))
		if err != nil {
			return err
		}

		if snapshot.Roles, err = queryRoles(context, tx, id); err != nil {
			return err
		}

		payments, err := queryTransactions(context, tx, selectShowTransactionsQuery, id)
		if err != nil {
			return err
		}
		byContract := make(map[string][]*Transaction, len(payments))
		for _, payment := range payments {
			byContract[payment.contractID] = append(byContract[payment.contractID], payment)
		}

		if snapshot.Contracts, err = queryContracts(context, tx, byContract, selectShowContractsQuery, id); err != nil {
			return err
		}

		show = Restore(snapshot)
		return nil
	})
	if err != nil {
		return nil, dberr.Wrap(err, "get_show")
	}

	return show, nil
}

func (repository *PostgresRepository) CreateShow(context context.Context, show *Show) error {
	_, err := repository.db.Exec(context, insertShowQuery,
		show.id, show.title, show.totalBudget.Amount().String(), show.dateOfPremiere, show.version,
	)
	return dberr.Wrap(err, "insert_show")
}

// DeleteShow removes the show with its roles, contracts and transactions.
func (repository *PostgresRepository) DeleteShow(context context.Context, id string) error {
	_, err := repository.db.Exec(context, deleteShowQuery, id)
	return dberr.Wrap(err, "delete_show")
}

// # Children

func (repository *PostgresRepository) InsertRole(context context.Context, show *Show, role *Role) error {
	return repository.mutate(context, show, func(tx pgx.Tx) error {
		_, err := tx.Exec(context, insertRoleQuery, role.id, role.showID, role.title)
		return dberr.Wrap(err, "insert_role")
	})
}

func (repository *PostgresRepository) DeleteRole(context context.Context, show *Show, roleID string) error {
	return repository.mutate(context, show, func(tx pgx.Tx) error {
		_, err := tx.Exec(context, deleteRoleQuery, roleID, show.id)
		return dberr.Wrap(err, "delete_role")
	})
}

func (repository *PostgresRepository) InsertContract(context context.Context, show *Show, contract *Contract) error {
	return repository.mutate(context, show, func(tx pgx.Tx) error {
		_, err := tx.Exec(context, insertContractQuery,
			contract.id, contract.showID, contract.roleID, contract.actorID, contract.yearCost.Amount().String(),
		)
		return dberr.Wrap(err, "insert_contract")
	})
}

func (repository *PostgresRepository) DeleteContract(context context.Context, show *Show, contractID string) error {
	return repository.mutate(context, show, func(tx pgx.Tx) error {
		_, err := tx.Exec(context, deleteContractQuery, contractID, show.id)
		return dberr.Wrap(err, "delete_contract")
	})
}

func (repository *PostgresRepository) InsertTransaction(context context.Context, show *Show, transaction *Transaction) error {
	return repository.mutate(context, show, func(tx pgx.Tx) error {
		_, err := tx.Exec(context, insertTransactionQuery,
			transaction.id, transaction.contractID, transaction.actorID,
			transaction.sum.Amount().String(), transaction.date,
		)
		return dberr.Wrap(err, "insert_transaction")
	})
}

// mutate bumps the show version and applies write in one transaction.
func (repository *PostgresRepository) mutate(context context.Context, show *Show, write func(tx pgx.Tx) error) error {
	err := postgres.WithTx(context, repository.db, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(context, bumpShowVersionQuery, show.id, show.version)
		if err != nil {
			return dberr.Wrap(err, "bump_show_version")
		}
		if cmd.RowsAffected() == 0 {
			return ErrConcurrentUpdate
		}
		return write(tx)
	})
	if err != nil {
		if apperr.IsAppError(err) {
			return err
		}
		return apperr.Internal(err)
	}

	show.advance()
	return nil
}

// # Lookups

func (repository *PostgresRepository) ShowIDByRole(context context.Context, roleID string) (string, error) {
	var showID string
	err := repository.db.QueryRow(context, selectShowIDByRoleQuery, roleID).Scan(&showID)
	return showID, dberr.Wrap(err, "show_id_by_role")
}

func (repository *PostgresRepository) ShowIDByContract(context context.Context, contractID string) (string, error) {
	var showID string
	err := repository.db.QueryRow(context, selectShowIDByContractQuery, contractID).Scan(&showID)
	return showID, dberr.Wrap(err, "show_id_by_contract")
}

func (repository *PostgresRepository) ListContracts(context context.Context, actorID string, limit, offset int) ([]*Contract, int, error) {
	var total int
	if err := repository.db.QueryRow(context, countContractsQuery, actorID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_contracts")
	}

	contracts, err := queryContracts(context, repository.db, nil, selectContractsQuery, actorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return contracts, total, nil
}

func (repository *PostgresRepository) ListTransactions(context context.Context, filter TransactionFilter) ([]*Transaction, error) {
	return queryTransactions(context, repository.db, selectTransactionsQuery, filter.ContractID, filter.ActorID)
}

// # Scanning

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func scanShow(row pgx.Row) (Snapshot, error) {
	var (
		snapshot Snapshot
		budget   string
	)

	err := row.Scan(&snapshot.ID, &snapshot.Title, &budget, &snapshot.DateOfPremiere, &snapshot.Version)
	if err != nil {
		return Snapshot{}, dberr.Wrap(err, "scan_show")
	}

	snapshot.TotalBudget, err = parseNumeric(budget, "scan_show")
	return snapshot, err
}

func queryRoles(context context.Context, db querier, showID string) ([]*Role, error) {
	rows, err := db.Query(context, selectRolesQuery, showID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_roles")
	}
	defer rows.Close()

	roles := []*Role{}
	for rows.Next() {
		role := &Role{}
		if err := rows.Scan(&role.id, &role.showID, &role.title); err != nil {
			return nil, dberr.Wrap(err, "scan_role")
		}
		roles = append(roles, role)
	}
	return roles, dberr.Wrap(rows.Err(), "list_roles")
}

// queryContracts attaches payments from byContract when it is non-nil.
func queryContracts(context context.Context, db querier, byContract map[string][]*Transaction, query string, args ...any) ([]*Contract, error) {
	rows, err := db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_contracts")
	}
	defer rows.Close()

	contracts := []*Contract{}
	for rows.Next() {
		var (
			id, showID, roleID, actorID string
			yearCost                    string
		)
		if err := rows.Scan(&id, &showID, &roleID, &actorID, &yearCost); err != nil {
			return nil, dberr.Wrap(err, "scan_contract")
		}

		cost, err := parseNumeric(yearCost, "scan_contract")
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, RestoreContract(id, showID, roleID, actorID, cost, byContract[id]))
	}
	return contracts, dberr.Wrap(rows.Err(), "list_contracts")
}

func queryTransactions(context context.Context, db querier, query string, args ...any) ([]*Transaction, error) {
	rows, err := db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_transactions")
	}
	defer rows.Close()

	transactions := []*Transaction{}
	for rows.Next() {
		var (
			id, contractID, actorID string
			sum                     string
			date                    time.Time
		)
		if err := rows.Scan(&id, &contractID, &actorID, &sum, &date); err != nil {
			return nil, dberr.Wrap(err, "scan_transaction")
		}

		amount, err := parseNumeric(sum, "scan_transaction")
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, RestoreTransaction(id, contractID, actorID, amount, date.UTC()))
	}
	return transactions, dberr.Wrap(rows.Err(), "list_transactions")
}

func parseNumeric(text, action string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, apperr.Internal(fmt.Errorf("%s: numeric %q: %w", action, text, err))
	}
	return value, nil
}
