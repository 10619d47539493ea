// Package pool hands out exclusive leases on database connections. A leased
// connection belongs to one caller until it is released; the adapter runs
// each call on a single lease, so one connection never carries two in-flight
// statements.
package pool

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
)

var ErrPoolClosed = errors.New("pool: closed")

type Config struct {
	// MaxLeases is the number of simultaneously leased connections; zero or
	// less means one.
	MaxLeases int
}

type Pool struct {
	db  *sql.DB
	sem chan struct{}

	mutex    sync.Mutex
	shutdown bool
	leases   int
}

// Lease is an exclusively held connection. It satisfies adapter.Conn.
type Lease struct {
	*sql.Conn
	pool     *Pool
	released bool
}

func New(db *sql.DB, cfg Config) *Pool {
	max := cfg.MaxLeases
	if max <= 0 {
		max = 1
	}
	db.SetMaxOpenConns(max)

	return &Pool{
		db:  db,
		sem: make(chan struct{}, max),
	}
}

// Lease acquires a connection for exclusive use, blocking until one is free
// or the context is done.
func (p *Pool) Lease(ctx context.Context) (*Lease, error) {
	p.mutex.Lock()
	if p.shutdown {
		p.mutex.Unlock()
		return nil, ErrPoolClosed
	}
	p.mutex.Unlock()

	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	conn, err := p.db.Conn(ctx)
	if err != nil {
		<-p.sem
		return nil, err
	}

	p.mutex.Lock()
	if p.shutdown {
		p.mutex.Unlock()
		conn.Close()
		<-p.sem
		return nil, ErrPoolClosed
	}
	p.leases += 1
	p.mutex.Unlock()

	return &Lease{Conn: conn, pool: p}, nil
}

// Release returns the connection to the pool. Releasing twice is a caller
// bug; it is logged and ignored.
func (l *Lease) Release() error {
	p := l.pool

	p.mutex.Lock()
	if l.released {
		p.mutex.Unlock()
		log.Warn("pool: lease released twice")
		return nil
	}
	l.released = true
	p.leases -= 1
	p.mutex.Unlock()

	err := l.Conn.Close()
	<-p.sem
	return err
}

// Close shuts down the pool and the database handle under it. Leases still
// outstanding keep working until released, but no new leases are issued.
func (p *Pool) Close() error {
	p.mutex.Lock()
	if p.shutdown {
		p.mutex.Unlock()
		return ErrPoolClosed
	}
	p.shutdown = true
	leases := p.leases
	p.mutex.Unlock()

	if leases > 0 {
		log.WithField("leases", leases).Warn("pool: closed with outstanding leases")
	}
	return p.db.Close()
}
