package adapter_test

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"sync"
)

// A scripted driver: each query string maps to the result the fake server
// returns for it, and records the bind arguments it was handed.

type script struct {
	cols     []string
	typs     []string
	rows     [][]driver.Value
	affected int64
	err      error

	args [][]driver.Value
}

var (
	scriptsMutex sync.Mutex
	scripts      = map[string]*script{}
)

func setScript(query string, scr *script) {
	scriptsMutex.Lock()
	defer scriptsMutex.Unlock()

	scripts[query] = scr
}

func takeScript(query string, args []driver.Value) (*script, error) {
	scriptsMutex.Lock()
	defer scriptsMutex.Unlock()

	scr, ok := scripts[query]
	if !ok {
		return nil, fmt.Errorf("fakedriver: unexpected query: %s", query)
	}
	cpy := make([]driver.Value, len(args))
	copy(cpy, args)
	scr.args = append(scr.args, cpy)
	return scr, scr.err
}

func scriptArgs(query string) [][]driver.Value {
	scriptsMutex.Lock()
	defer scriptsMutex.Unlock()

	return scripts[query].args
}

type fakeDriver struct{}

func (fakeDriver) Open(nam string) (driver.Conn, error) {
	return &fakeConn{}, nil
}

type fakeConn struct{}

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	return &fakeStmt{query: query}, nil
}

func (c *fakeConn) Close() error {
	return nil
}

func (c *fakeConn) Begin() (driver.Tx, error) {
	return nil, fmt.Errorf("fakedriver: transactions not supported")
}

type fakeStmt struct {
	query string
}

func (s *fakeStmt) Close() error {
	return nil
}

func (s *fakeStmt) NumInput() int {
	return -1
}

func (s *fakeStmt) Exec(args []driver.Value) (driver.Result, error) {
	scr, err := takeScript(s.query, args)
	if err != nil {
		return nil, err
	}
	return fakeResult{affected: scr.affected}, nil
}

func (s *fakeStmt) Query(args []driver.Value) (driver.Rows, error) {
	scr, err := takeScript(s.query, args)
	if err != nil {
		return nil, err
	}
	return &fakeRows{script: scr}, nil
}

type fakeResult struct {
	affected int64
}

func (r fakeResult) LastInsertId() (int64, error) {
	return 0, fmt.Errorf("fakedriver: last insert id not supported")
}

func (r fakeResult) RowsAffected() (int64, error) {
	return r.affected, nil
}

type fakeRows struct {
	script *script
	next   int
}

func (r *fakeRows) Columns() []string {
	return r.script.cols
}

func (r *fakeRows) ColumnTypeDatabaseTypeName(idx int) string {
	return r.script.typs[idx]
}

func (r *fakeRows) Close() error {
	return nil
}

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.next >= len(r.script.rows) {
		return io.EOF
	}
	copy(dest, r.script.rows[r.next])
	r.next += 1
	return nil
}

func init() {
	sql.Register("fakedriver", fakeDriver{})
}

func openFake() (*sql.DB, error) {
	return sql.Open("fakedriver", "")
}
