package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecom/backend/internal/store"
)

var (
	ErrNotFound        = errors.New("account not found")
	ErrUsernameTaken   = errors.New("username already in use")
	ErrCustomerMissing = errors.New("customer does not exist")
)

type Repository interface {
	Create(ctx context.Context, a *CustomerAccount) error
	GetByID(ctx context.Context, id string) (*CustomerAccount, error)
	List(ctx context.Context) ([]CustomerAccount, error)
	Update(ctx context.Context, id string, p Patch) error
	Delete(ctx context.Context, id string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, a *CustomerAccount) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO customer_accounts (id, customer_id, username, password_hash, created_at, updated_at)
		VALUES ($1,$2,$3,$4,NOW(),NOW())
	`, a.ID, a.CustomerID, a.Username, a.PasswordHash)
	return classify(err)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*CustomerAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var a CustomerAccount
	err := r.db.QueryRow(ctx, `
		SELECT id, customer_id, username, password_hash, created_at, updated_at
		FROM customer_accounts WHERE id=$1
	`, id).Scan(&a.ID, &a.CustomerID, &a.Username, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *PGRepo) List(ctx context.Context) ([]CustomerAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, customer_id, username, password_hash, created_at, updated_at
		FROM customer_accounts ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CustomerAccount{}
	for rows.Next() {
		var a CustomerAccount
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.Username, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, id string, p Patch) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE customer_accounts
		SET username      = COALESCE($2, username),
		    password_hash = COALESCE($3, password_hash),
		    updated_at    = NOW()
		WHERE id = $1
	`, id, p.Username, p.PasswordHash)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM customer_accounts WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case store.IsUniqueViolation(err):
		return ErrUsernameTaken
	case store.IsForeignKeyViolation(err):
		return ErrCustomerMissing
	default:
		return fmt.Errorf("account store: %w", err)
	}
}
