package xpgx

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so
// repository methods can run either on the pool or inside a batch
// transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Pool interface {
	Querier
	Selectx(ctx context.Context, dst any, q squirrel.Sqlizer) error
	Getx(ctx context.Context, dst any, q squirrel.Sqlizer) error
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

type pool struct {
	*pgxpool.Pool
}

func NewPool(ctx context.Context, dsn string) (Pool, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err = p.Ping(ctx); err != nil {
		p.Close()
		return nil, err
	}

	return &pool{p}, nil
}

func (p *pool) Selectx(ctx context.Context, dst any, q squirrel.Sqlizer) error {
	return Selectx(ctx, p, dst, q)
}

func (p *pool) Getx(ctx context.Context, dst any, q squirrel.Sqlizer) error {
	return Getx(ctx, p, dst, q)
}

// Selectx runs a squirrel query and scans all rows into dst, which must
// be a pointer to a slice of structs tagged with `db`.
func Selectx(ctx context.Context, db Querier, dst any, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return err
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	return scanAll(rows, dst)
}

// Getx runs a squirrel query expected to return a single row and scans
// it into dst, a pointer to a struct tagged with `db`. Returns
// pgx.ErrNoRows when the query matches nothing.
func Getx(ctx context.Context, db Querier, dst any, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return err
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	return scanOne(rows, dst)
}

// Execx runs a squirrel statement that returns no rows.
func Execx(ctx context.Context, db Querier, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, sql, args...)
	return err
}
