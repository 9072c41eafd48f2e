package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// DBTX is an interface abstracting *sqlx.DB and *sqlx.Tx for repository use.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// oracleInListLimit is the maximum number of expressions Oracle accepts in an IN list (ORA-01795).
const oracleInListLimit = 1000

// bindList renders n positional Oracle binds starting at :start, e.g. ":3, :4, :5".
func bindList(start, n int) string {
	binds := make([]string, n)
	for i := range binds {
		binds[i] = fmt.Sprintf(":%d", start+i)
	}
	return strings.Join(binds, ", ")
}

// chunkStrings splits ids into groups of at most size.
func chunkStrings(ids []string, size int) [][]string {
	var chunks [][]string
	for size < len(ids) {
		ids, chunks = ids[size:], append(chunks, ids[:size])
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}
	return chunks
}
