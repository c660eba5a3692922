package registration

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountsSchema = `
CREATE TABLE IF NOT EXISTS accounts (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
)`

type postgresAccountRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAccountRepository(pool *pgxpool.Pool) AccountStore {
	return &postgresAccountRepository{pool: pool}
}

// EnsureSchema creates the accounts table and its unique email constraint.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, accountsSchema)
	return err
}

func (p *postgresAccountRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var acc Account
	err := p.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, created_at FROM accounts WHERE email = $1`,
		email,
	).Scan(&acc.ID, &acc.Email, &acc.Name, &acc.PasswordHash, &acc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// CreateIfAbsent leans on the unique constraint: the conflict clause turns a
// losing concurrent insert into zero affected rows instead of an error.
func (p *postgresAccountRepository) CreateIfAbsent(ctx context.Context, acc *Account) error {
	tag, err := p.pool.Exec(ctx,
		`INSERT INTO accounts (id, email, name, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (email) DO NOTHING`,
		acc.ID, acc.Email, acc.Name, acc.PasswordHash, acc.CreatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmailTaken
	}
	return nil
}

func (p *postgresAccountRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := p.pool.QueryRow(ctx, `SELECT count(*) FROM accounts`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
