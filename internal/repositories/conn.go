package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-users/internal/logger"
)

// withConn acquires a dedicated connection from the pool for the duration of fn.
// The connection is returned to the pool on every exit path and the call is
// bounded by timeout when it is positive.
func withConn(ctx context.Context, db *sqlx.DB, timeout time.Duration, fn func(ctx context.Context, conn *sqlx.Conn) error) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	conn, err := db.Connx(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(ctx, conn)
}

// logQuery logs a statement in a single line with its arguments and outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
