package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserWriteRepository_Create_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, time.Second)

	mock.ExpectQuery(`INSERT INTO users \(first_name, last_name\) VALUES \(\$1, \$2\) RETURNING id`).
		WithArgs("Ada", "Lovelace").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	id, err := repo.Create(context.Background(), "Ada", "Lovelace")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Create_StoreError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, time.Second)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Ada", "Lovelace").
		WillReturnError(sql.ErrConnDone)

	id, err := repo.Create(context.Background(), "Ada", "Lovelace")
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Zero(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdateDelete_Mock(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		call     func(repo *UserWriteRepository) (bool, error)
		expected bool
		wantErr  bool
	}{
		{
			name: "update affected",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE users SET first_name = \$1, last_name = \$2 WHERE id = \$3`).
					WithArgs("Grace", "Hopper", int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			call: func(repo *UserWriteRepository) (bool, error) {
				return repo.Update(context.Background(), 1, "Grace", "Hopper")
			},
			expected: true,
		},
		{
			name: "update no rows",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE users").
					WithArgs("Grace", "Hopper", int64(42)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			call: func(repo *UserWriteRepository) (bool, error) {
				return repo.Update(context.Background(), 42, "Grace", "Hopper")
			},
			expected: false,
		},
		{
			name: "update store error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE users").WillReturnError(sql.ErrConnDone)
			},
			call: func(repo *UserWriteRepository) (bool, error) {
				return repo.Update(context.Background(), 1, "Grace", "Hopper")
			},
			wantErr: true,
		},
		{
			name: "rows affected error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM users").
					WithArgs(int64(1)).
					WillReturnResult(sqlmock.NewErrorResult(sql.ErrConnDone))
			},
			call: func(repo *UserWriteRepository) (bool, error) {
				return repo.Delete(context.Background(), 1)
			},
			wantErr: true,
		},
		{
			name: "delete affected",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
					WithArgs(int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			call: func(repo *UserWriteRepository) (bool, error) {
				return repo.Delete(context.Background(), 7)
			},
			expected: true,
		},
		{
			name: "delete no rows",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM users").
					WithArgs(int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			call: func(repo *UserWriteRepository) (bool, error) {
				return repo.Delete(context.Background(), 7)
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			ok, err := tt.call(NewUserWriteRepository(db, time.Second))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserReadRepository_GetByID_Mock(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT id, first_name, last_name FROM users WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name"}).AddRow(1, "Ada", "Lovelace"))

		user, err := NewUserReadRepository(db, time.Second).GetByID(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "Ada", user.FirstName)
		assert.Equal(t, "Lovelace", user.LastName)
	})

	t.Run("no rows is not an error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT id, first_name, last_name FROM users").
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name"}))

		user, err := NewUserReadRepository(db, time.Second).GetByID(context.Background(), 999)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("query failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT id, first_name, last_name FROM users").
			WillReturnError(sql.ErrConnDone)

		user, err := NewUserReadRepository(db, time.Second).GetByID(context.Background(), 1)
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.Nil(t, user)
	})

	t.Run("timeout", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT id, first_name, last_name FROM users").
			WillDelayFor(time.Second).
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name"}).AddRow(1, "Ada", "Lovelace"))

		user, err := NewUserReadRepository(db, 10*time.Millisecond).GetByID(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_List_Mock(t *testing.T) {
	t.Run("ordered rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT id, first_name, last_name FROM users ORDER BY id ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name"}).
				AddRow(1, "Ada", "Lovelace").
				AddRow(2, "Grace", "Hopper"))

		users, err := NewUserReadRepository(db, time.Second).List(context.Background())
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Ada", users[0].FirstName)
		assert.Equal(t, "Hopper", users[1].LastName)
	})

	t.Run("empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT id, first_name, last_name FROM users").
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name"}))

		users, err := NewUserReadRepository(db, time.Second).List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT id, first_name, last_name FROM users").
			WillReturnError(sql.ErrConnDone)

		users, err := NewUserReadRepository(db, time.Second).List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, users)
	})
}

func TestWithConn_ReleasesConnectionOnError(t *testing.T) {
	db, mock := newMockDB(t)
	db.SetMaxOpenConns(1)

	mock.ExpectExec("DELETE FROM users").WillReturnError(sql.ErrConnDone)
	mock.ExpectExec("DELETE FROM users").WithArgs(int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewUserWriteRepository(db, time.Second)

	_, err := repo.Delete(context.Background(), 1)
	assert.Error(t, err)

	// With a single-connection pool this blocks until timeout if the first call leaked.
	ok, err := repo.Delete(context.Background(), 2)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
