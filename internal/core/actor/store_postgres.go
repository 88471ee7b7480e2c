// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package actor

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/negativchik09/TheatreAPI/internal/platform/database/schema"
	"github.com/negativchik09/TheatreAPI/internal/platform/dberr"
	"github.com/negativchik09/TheatreAPI/internal/platform/postgres"
	"github.com/negativchik09/TheatreAPI/internal/users/account"
)

var (
	actorColumns = schema.List(schema.TheatreActor.Columns()...)

	selectActorsQuery = fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s, %s
		LIMIT $1 OFFSET $2`,
		actorColumns, schema.TheatreActor.Table, schema.TheatreActor.LastName, schema.TheatreActor.FirstName,
	)

	countActorsQuery = fmt.Sprintf(`SELECT count(*) FROM %s`, schema.TheatreActor.Table)

	selectActorQuery = fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		actorColumns, schema.TheatreActor.Table, schema.TheatreActor.ID,
	)

	insertActorQuery = fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		schema.TheatreActor.Table, actorColumns,
	)

	updateActorQuery = fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
		    %s = $9, %s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = NOW()
		WHERE %s = $1`,
		schema.TheatreActor.Table,
		schema.TheatreActor.FirstName, schema.TheatreActor.LastName, schema.TheatreActor.MiddleName,
		schema.TheatreActor.DateOfBirth, schema.TheatreActor.Dignity, schema.TheatreActor.Experience,
		schema.TheatreActor.Email, schema.TheatreActor.Telephone, schema.TheatreActor.Address,
		schema.TheatreActor.PassportNumber, schema.TheatreActor.PassportGivenBy,
		schema.TheatreActor.PassportSeries, schema.TheatreActor.TaxesNumber, schema.TheatreActor.UpdatedAt,
		schema.TheatreActor.ID,
	)

	// The actor row and everything hanging off it cascade from the account.
	deleteActorQuery = fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.ID,
	)
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListActors(context context.Context, limit, offset int) ([]*Actor, int, error) {
	var total int
	if err := repository.db.QueryRow(context, countActorsQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_actors")
	}

	rows, err := repository.db.Query(context, selectActorsQuery, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_actors")
	}
	defer rows.Close()

	actors := []*Actor{}
	for rows.Next() {
		actor, err := scanActor(rows)
		if err != nil {
			return nil, 0, err
		}
		actors = append(actors, actor)
	}

	return actors, total, dberr.Wrap(rows.Err(), "list_actors")
}

func (repository *PostgresRepository) GetActor(context context.Context, id string) (*Actor, error) {
	return scanActor(repository.db.QueryRow(context, selectActorQuery, id))
}

func (repository *PostgresRepository) RegisterActor(context context.Context, actor *Actor, login *account.Account) error {
	return postgres.WithTx(context, repository.db, func(tx pgx.Tx) error {
		if err := account.Insert(context, tx, login); err != nil {
			return err
		}

		_, err := tx.Exec(context, insertActorQuery, actorArgs(actor)...)
		return dberr.Wrap(err, "insert_actor")
	})
}

func (repository *PostgresRepository) UpdateActor(context context.Context, actor *Actor) error {
	cmd, err := repository.db.Exec(context, updateActorQuery, actorArgs(actor)...)
	if err != nil {
		return dberr.Wrap(err, "update_actor")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteActor(context context.Context, id string) error {
	_, err := repository.db.Exec(context, deleteActorQuery, id)
	return dberr.Wrap(err, "delete_actor")
}

func actorArgs(actor *Actor) []any {
	return []any{
		actor.id,
		actor.name.first,
		actor.name.last,
		actor.name.middle,
		actor.dateOfBirth,
		actor.dignity,
		actor.experience,
		actor.email,
		actor.telephone,
		actor.address,
		actor.passport.number,
		actor.passport.givenBy,
		actor.passport.series,
		actor.taxesNumber,
	}
}

func scanActor(row pgx.Row) (*Actor, error) {
	var params CreateParams

	err := row.Scan(
		&params.ID,
		&params.FirstName,
		&params.LastName,
		&params.MiddleName,
		&params.DateOfBirth,
		&params.Dignity,
		&params.Experience,
		&params.Email,
		&params.Telephone,
		&params.Address,
		&params.PassportNumber,
		&params.PassportGivenBy,
		&params.PassportSeries,
		&params.TaxesNumber,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "scan_actor")
	}

	return Restore(params), nil
}
