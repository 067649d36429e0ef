package sqlite

import (
	"fmt"
	"time"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Foreign keys are declared for documentation; they are only enforced when
// Options.ForeignKeys is set.
const schema = `
CREATE TABLE IF NOT EXISTS clients (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	phone TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	price REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	client_id INTEGER NOT NULL,
	product_id INTEGER NOT NULL,
	quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity > 0),
	order_date TEXT NOT NULL DEFAULT (strftime('%Y-%m-%d %H:%M:%S', 'now')), -- UTC
	FOREIGN KEY (client_id) REFERENCES clients (id),
	FOREIGN KEY (product_id) REFERENCES products (id)
);

CREATE INDEX IF NOT EXISTS idx_clients_name ON clients(name);
CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);
CREATE INDEX IF NOT EXISTS idx_orders_client_id ON orders(client_id);
CREATE INDEX IF NOT EXISTS idx_orders_product_id ON orders(product_id);
CREATE INDEX IF NOT EXISTS idx_orders_order_date ON orders(order_date);
`

const DefaultBusyTimeout = 5 * time.Second

type Options struct {
	ForeignKeys bool
	BusyTimeout time.Duration
}

// DB is the single store handle shared by all repositories.
type DB struct {
	*sqlx.DB
	closed bool
}

func New(dbPath string) (*DB, error) {
	return Open(dbPath, Options{})
}

// Open connects to the database file at dbPath and creates the schema if it
// is missing. Any failure is a StoreError of kind domain.ErrConnection.
func Open(dbPath string, opts Options) (*DB, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, connErr("failed to connect to database", err)
	}

	// One connection: statements run one at a time, and every statement
	// sees the same :memory: database.
	db.SetMaxOpenConns(1)

	if err := initialize(db, opts); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{DB: db}, nil
}

func initialize(db *sqlx.DB, opts Options) error {
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return connErr("failed to enable WAL mode", err)
	}

	busy := opts.BusyTimeout
	if busy <= 0 {
		busy = DefaultBusyTimeout
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", busy.Milliseconds())); err != nil {
		return connErr("failed to set busy timeout", err)
	}

	fk := "OFF"
	if opts.ForeignKeys {
		fk = "ON"
	}
	if _, err := db.Exec("PRAGMA foreign_keys = " + fk); err != nil {
		return connErr("failed to configure foreign keys", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return connErr("failed to create schema", err)
	}

	return nil
}

// Close releases the connection. It is safe to call on a nil or already
// closed DB.
func (db *DB) Close() error {
	if db == nil || db.DB == nil || db.closed {
		return nil
	}
	db.closed = true
	return db.DB.Close()
}

func connErr(op string, err error) error {
	return &domain.StoreError{Op: op, Kind: domain.ErrConnection, Err: err}
}
