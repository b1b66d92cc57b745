package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-users/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewUserReadRepository creates a read repository. A zero timeout leaves calls unbounded.
func NewUserReadRepository(db *sqlx.DB, timeout time.Duration) *UserReadRepository {
	return &UserReadRepository{db: db, timeout: timeout}
}

// GetByID returns the user with the given id, or nil when no row matches.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT id, first_name, last_name
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := withConn(ctx, r.db, r.timeout, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &user, query, id)
	})

	logQuery(query, []any{id}, user, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns every user ordered by id ascending. No rows yields an empty, non-nil slice.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	const query = `
		SELECT id, first_name, last_name
		FROM users
		ORDER BY id ASC
	`

	users := make([]models.User, 0)
	err := withConn(ctx, r.db, r.timeout, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &users, query)
	})

	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewUserWriteRepository creates a write repository. A zero timeout leaves calls unbounded.
func NewUserWriteRepository(db *sqlx.DB, timeout time.Duration) *UserWriteRepository {
	return &UserWriteRepository{db: db, timeout: timeout}
}

// Create inserts a user and returns the store-assigned id.
func (r *UserWriteRepository) Create(ctx context.Context, firstName, lastName string) (int64, error) {
	const query = `
		INSERT INTO users (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id
	`
	args := []any{firstName, lastName}

	var id int64
	err := withConn(ctx, r.db, r.timeout, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &id, query, args...)
	})

	logQuery(query, args, id, err)

	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites both names of the user with the given id.
// It reports whether a row was affected.
func (r *UserWriteRepository) Update(ctx context.Context, id int64, firstName, lastName string) (bool, error) {
	const query = `
		UPDATE users
		SET first_name = $1, last_name = $2
		WHERE id = $3
	`
	return r.exec(ctx, query, firstName, lastName, id)
}

// Delete removes the user with the given id and reports whether a row was removed.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `
		DELETE FROM users
		WHERE id = $1
	`
	return r.exec(ctx, query, id)
}

func (r *UserWriteRepository) exec(ctx context.Context, query string, args ...any) (bool, error) {
	var rowsAffected int64
	err := withConn(ctx, r.db, r.timeout, func(ctx context.Context, conn *sqlx.Conn) error {
		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		rowsAffected, err = res.RowsAffected()
		return err
	})

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
