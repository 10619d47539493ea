// Package client establishes a PostgreSQL connection and exposes the adapter
// operations over pooled, exclusively leased connections.
package client

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"github.com/dynpg/dynpg/adapter"
	"github.com/dynpg/dynpg/pool"
	"github.com/dynpg/dynpg/value"
)

type Config struct {
	// DataSourceName is a lib/pq connection string, for example
	// "host=localhost port=5432 dbname=test sslmode=disable".
	DataSourceName string

	// MaxConns is the number of pooled connections; zero or less means one.
	MaxConns int
}

type Client struct {
	pool *pool.Pool
}

// Connect opens and pings a database and wraps it in a lease pool.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DataSourceName)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"driver": db.DriverName(),
		"conns":  cfg.MaxConns,
	}).Info("connected")

	return &Client{pool: pool.New(db.DB, pool.Config{MaxLeases: cfg.MaxConns})}, nil
}

// Exec executes a statement that returns no rows; params must be a
// value.VectorValue. The result is the affected row count.
func (c *Client) Exec(ctx context.Context, query string, params value.Value) (value.Value,
	error) {

	l, err := c.pool.Lease(ctx)
	if err != nil {
		return nil, err
	}
	defer l.Release()

	return adapter.Exec(ctx, l, query, params)
}

// Query executes a parameterless read query; the result is a vector of row
// vectors.
func (c *Client) Query(ctx context.Context, query string) (value.Value, error) {
	l, err := c.pool.Lease(ctx)
	if err != nil {
		return nil, err
	}
	defer l.Release()

	return adapter.Query(ctx, l, query)
}

// QueryArgs executes a parameterized read query.
func (c *Client) QueryArgs(ctx context.Context, query string, params value.Value) (value.Value,
	error) {

	l, err := c.pool.Lease(ctx)
	if err != nil {
		return nil, err
	}
	defer l.Release()

	return adapter.QueryArgs(ctx, l, query, params)
}

// QueryTable is QueryArgs plus the result column names.
func (c *Client) QueryTable(ctx context.Context, query string,
	params value.Value) ([]string, value.VectorValue, error) {

	l, err := c.pool.Lease(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer l.Release()

	return adapter.QueryTable(ctx, l, query, params)
}

func (c *Client) Close() error {
	return c.pool.Close()
}
