package account

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.NoError(t, classify(nil))

	err := classify(&pgconn.PgError{Code: "23505", ConstraintName: "customer_accounts_username_key"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	err = classify(&pgconn.PgError{Code: "23503", ConstraintName: "customer_accounts_customer_id_fkey"})
	assert.ErrorIs(t, err, ErrCustomerMissing)

	plain := errors.New("connection reset")
	err = classify(plain)
	assert.ErrorIs(t, err, plain)
	assert.NotErrorIs(t, err, ErrUsernameTaken)
}
