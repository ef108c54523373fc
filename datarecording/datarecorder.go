// Package datarecording stores simulation records in a SQLite database.
package datarecording

import (
	"database/sql"
	"fmt"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/fatih/structs"
	"github.com/pkg/errors"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// DataRecorder is a backend that can record and store data.
type DataRecorder interface {
	// CreateTable creates a table whose columns are the exported fields of
	// sampleEntry.
	CreateTable(tableName string, sampleEntry any)

	// InsertData buffers an entry for a table that already exists.
	InsertData(tableName string, entry any)

	// ListTables returns the names of all tables, sorted.
	ListTables() []string

	// Flush writes all the buffered entries into the database.
	Flush()
}

// New creates a DataRecorder that writes to path.sqlite3, replacing the
// database of an earlier run. An empty path picks a unique name.
func New(path string) DataRecorder {
	w := newSQLiteWriter(path)
	w.Init()

	atexit.Register(func() { w.Flush() })

	return w
}

// columnTypes maps the field kinds of sample rows to SQLite column types.
var columnTypes = map[reflect.Kind]string{
	reflect.Bool:    "INTEGER",
	reflect.Uint64:  "INTEGER",
	reflect.Float64: "REAL",
	reflect.String:  "TEXT",
}

type table struct {
	rowType reflect.Type
	insert  string
	rows    []any
}

type sqliteWriter struct {
	*sql.DB

	dbName    string
	tables    map[string]*table
	batchSize int
	buffered  int
}

func newSQLiteWriter(path string) *sqliteWriter {
	return &sqliteWriter{
		dbName:    path,
		batchSize: 100000,
		tables:    make(map[string]*table),
	}
}

// Init opens a fresh database file.
func (t *sqliteWriter) Init() {
	if t.dbName == "" {
		t.dbName = "simhost_recording_" + xid.New().String()
	}

	filename := t.dbName + ".sqlite3"

	err := os.Remove(filename)
	if err != nil && !os.IsNotExist(err) {
		panic(errors.Wrapf(err, "removing old recording %s", filename))
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	fmt.Fprintf(os.Stderr, "Recording to %s\n", filename)

	t.DB = db
}

// columns returns the column definitions of a row struct.
func columns(row any) ([]string, error) {
	typ := reflect.TypeOf(row)
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, errors.Errorf("row %T is not a struct", row)
	}

	defs := make([]string, 0, typ.NumField())

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		sqlType, ok := columnTypes[field.Type.Kind()]
		if !ok {
			return nil, errors.Errorf("field %s of %T has unsupported kind %s",
				field.Name, row, field.Type.Kind())
		}

		defs = append(defs, field.Name+" "+sqlType)
	}

	return defs, nil
}

func (t *sqliteWriter) CreateTable(tableName string, sampleEntry any) {
	defs, err := columns(sampleEntry)
	if err != nil {
		panic(err)
	}

	if _, exists := t.tables[tableName]; exists {
		panic(fmt.Sprintf("table %s already exists", tableName))
	}

	t.mustExecute(fmt.Sprintf("CREATE TABLE %s (%s)",
		tableName, strings.Join(defs, ", ")))

	marks := strings.TrimSuffix(strings.Repeat("?, ", len(defs)), ", ")
	t.tables[tableName] = &table{
		rowType: reflect.TypeOf(sampleEntry),
		insert:  fmt.Sprintf("INSERT INTO %s VALUES (%s)", tableName, marks),
	}
}

func (t *sqliteWriter) InsertData(tableName string, entry any) {
	tbl, exists := t.tables[tableName]
	if !exists {
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	if reflect.TypeOf(entry) != tbl.rowType {
		panic(fmt.Sprintf("entry %T does not match table %s", entry, tableName))
	}

	tbl.rows = append(tbl.rows, entry)

	t.buffered++
	if t.buffered >= t.batchSize {
		t.Flush()
	}
}

func (t *sqliteWriter) ListTables() []string {
	names := make([]string, 0, len(t.tables))
	for name := range t.tables {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Flush writes every buffered row in one transaction.
func (t *sqliteWriter) Flush() {
	if t.buffered == 0 {
		return
	}

	tx, err := t.Begin()
	if err != nil {
		panic(err)
	}

	for _, tbl := range t.tables {
		if len(tbl.rows) == 0 {
			continue
		}

		stmt, err := tx.Prepare(tbl.insert)
		if err != nil {
			panic(err)
		}

		for _, row := range tbl.rows {
			if _, err := stmt.Exec(structs.Values(row)...); err != nil {
				panic(err)
			}
		}

		stmt.Close()
		tbl.rows = nil
	}

	if err := tx.Commit(); err != nil {
		panic(err)
	}

	t.buffered = 0
}

func (t *sqliteWriter) mustExecute(query string) {
	if _, err := t.Exec(query); err != nil {
		panic(errors.Wrapf(err, "executing %q", query))
	}
}
