// Package recording persists simulation run results into SQLite databases.
package recording

import (
	"database/sql"
	"fmt"
	"os"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"github.com/formalab/dfasim/dfa"
)

// RunRecorder is a backend that can record and store run results.
type RunRecorder interface {
	// RecordRun stores one run result, including its path if the run
	// carried one.
	RecordRun(r dfa.RunResult)

	// Flush writes all the buffered results into the database.
	Flush()

	// Close flushes and releases the database connection.
	Close()
}

// NewSQLiteRecorder creates a RunRecorder that writes into a SQLite
// database at path. With an empty path a fresh name is generated.
func NewSQLiteRecorder(path string) *SQLiteRecorder {
	w := &SQLiteRecorder{
		dbName:    path,
		batchSize: 100000,
	}

	w.init()

	atexit.Register(func() { w.Flush() })

	return w
}

// SQLiteRecorder is the writer that writes run results into a SQLite
// database. Results accumulate in memory and are flushed in batches.
type SQLiteRecorder struct {
	*sql.DB

	dbName    string
	batchSize int
	runs      []dfa.RunResult
}

func (t *SQLiteRecorder) init() {
	if t.dbName == "" {
		t.dbName = "dfasim_" + xid.New().String()
	}

	filename := t.dbName + ".sqlite3"

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	fmt.Fprintf(os.Stderr, "Database created for recording: %s\n", filename)

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	t.DB = db

	t.createTables()
}

func (t *SQLiteRecorder) createTables() {
	t.mustExecute(`CREATE TABLE runs (
	id TEXT,
	input TEXT,
	final_state TEXT,
	accepted INTEGER
);`)
	t.mustExecute(`CREATE TABLE run_states (
	run_id TEXT,
	position INTEGER,
	state TEXT
);`)
}

// RecordRun buffers one run result for writing.
func (t *SQLiteRecorder) RecordRun(r dfa.RunResult) {
	t.runs = append(t.runs, r)

	if len(t.runs) >= t.batchSize {
		t.Flush()
	}
}

// Flush writes all the buffered results to the database.
func (t *SQLiteRecorder) Flush() {
	if len(t.runs) == 0 {
		return
	}

	t.mustExecute("BEGIN TRANSACTION")
	defer t.mustExecute("COMMIT TRANSACTION")

	runStmt := t.mustPrepare(
		"INSERT INTO runs VALUES (?, ?, ?, ?)")
	defer runStmt.Close()

	stateStmt := t.mustPrepare(
		"INSERT INTO run_states VALUES (?, ?, ?)")
	defer stateStmt.Close()

	for _, r := range t.runs {
		_, err := runStmt.Exec(r.ID, r.Input, string(r.FinalState), r.Accepted)
		if err != nil {
			panic(err)
		}

		for i, q := range r.Path {
			_, err := stateStmt.Exec(r.ID, i, string(q))
			if err != nil {
				panic(err)
			}
		}
	}

	t.runs = nil
}

// Close flushes the buffered results and closes the database.
func (t *SQLiteRecorder) Close() {
	t.Flush()

	err := t.DB.Close()
	if err != nil {
		panic(err)
	}
}

func (t *SQLiteRecorder) mustExecute(query string) sql.Result {
	res, err := t.Exec(query)
	if err != nil {
		fmt.Printf("Failed to execute: %s\n", query)
		panic(err)
	}

	return res
}

func (t *SQLiteRecorder) mustPrepare(query string) *sql.Stmt {
	stmt, err := t.Prepare(query)
	if err != nil {
		panic(err)
	}

	return stmt
}

// NullRecorder discards every result. It serves sessions that have
// recording turned off.
type NullRecorder struct{}

func (NullRecorder) RecordRun(dfa.RunResult) {}

func (NullRecorder) Flush() {}

func (NullRecorder) Close() {}
