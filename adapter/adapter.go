// Package adapter converts between dynamic values and the statically typed
// parameter and row representations of a SQL database. Callers bind query
// parameters from value.Value variants and get result rows back as vectors
// of values, without knowing the column types of a query in advance.
//
// The adapter is stateless; each call is a synchronous transformation around
// one statement execution on the Conn it is given. Serializing access to a
// connection is the caller's job (see package pool).
package adapter

import (
	"context"
	"database/sql"

	"github.com/dynpg/dynpg/value"
)

// Conn is the statement execution surface the adapter drives. *sql.DB,
// *sql.Conn, and pool leases all satisfy it.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// Exec executes a statement that returns no rows. params must be a
// value.VectorValue, one element per statement parameter; the result is the
// affected row count as a value.Int64Value.
func Exec(ctx context.Context, conn Conn, query string, params value.Value) (value.Value,
	error) {

	args, err := encodeParams(params)
	if err != nil {
		return nil, err
	}

	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, driverError(err)
	}
	cnt, err := res.RowsAffected()
	if err != nil {
		return nil, driverError(err)
	}
	return value.Int64Value(cnt), nil
}

// Query executes a parameterless read query; the result is a vector of row
// vectors, empty when the query matches no rows.
func Query(ctx context.Context, conn Conn, query string) (value.Value, error) {
	return QueryArgs(ctx, conn, query, value.VectorValue{})
}

// QueryArgs executes a parameterized read query.
func QueryArgs(ctx context.Context, conn Conn, query string, params value.Value) (value.Value,
	error) {

	_, results, err := QueryTable(ctx, conn, query, params)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// QueryTable is QueryArgs plus the result column names, for callers that
// render results.
func QueryTable(ctx context.Context, conn Conn, query string,
	params value.Value) ([]string, value.VectorValue, error) {

	args, err := encodeParams(params)
	if err != nil {
		return nil, nil, err
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, driverError(err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, driverError(err)
	}

	results, err := decodeRows(rows)
	if err != nil {
		return nil, nil, err
	}
	return cols, results, nil
}
