package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Secondary indexes exist on exactly the fields the list screens filter by.
const schema = `
CREATE TABLE IF NOT EXISTS products (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	code          TEXT NOT NULL DEFAULT '',
	sku           TEXT NOT NULL DEFAULT '',
	barcode       TEXT NOT NULL DEFAULT '',
	name          TEXT NOT NULL DEFAULT '',
	cost_price    REAL NOT NULL DEFAULT 0,
	selling_price REAL NOT NULL DEFAULT 0,
	tax_rate      REAL NOT NULL DEFAULT 0,
	stock         INTEGER NOT NULL DEFAULT 0,
	reorder_level INTEGER NOT NULL DEFAULT 0,
	unit          TEXT NOT NULL DEFAULT '',
	is_active     INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_products_code ON products(code);
CREATE INDEX IF NOT EXISTS idx_products_sku ON products(sku);
CREATE INDEX IF NOT EXISTS idx_products_barcode ON products(barcode);
CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);
CREATE INDEX IF NOT EXISTS idx_products_is_active ON products(is_active);

CREATE TABLE IF NOT EXISTS product_attributes (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	product_id   INTEGER NOT NULL,
	attribute_id INTEGER NOT NULL,
	value        TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_product_attributes_product_id ON product_attributes(product_id);
CREATE INDEX IF NOT EXISTS idx_product_attributes_attribute_id ON product_attributes(attribute_id);

CREATE TABLE IF NOT EXISTS product_images (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	product_id  INTEGER NOT NULL,
	title       TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	url         TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_product_images_product_id ON product_images(product_id);

CREATE TABLE IF NOT EXISTS product_descriptions (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	product_id  INTEGER NOT NULL,
	description TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_product_descriptions_product_id ON product_descriptions(product_id);

CREATE TABLE IF NOT EXISTS product_keywords (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	product_id INTEGER NOT NULL,
	keyword    TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_product_keywords_product_id ON product_keywords(product_id);

CREATE TABLE IF NOT EXISTS master_product_attributes (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	name      TEXT NOT NULL DEFAULT '',
	is_active INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_master_product_attributes_name ON master_product_attributes(name);

CREATE TABLE IF NOT EXISTS users (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	guid         TEXT NOT NULL DEFAULT '',
	name         TEXT NOT NULL DEFAULT '',
	email        TEXT NOT NULL DEFAULT '',
	username     TEXT NOT NULL DEFAULT '',
	password     TEXT NOT NULL DEFAULT '',
	is_active    INTEGER NOT NULL DEFAULT 1,
	created_date TEXT NOT NULL DEFAULT '',
	created_by   INTEGER NOT NULL DEFAULT 0,
	updated_date TEXT NOT NULL DEFAULT '',
	updated_by   INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_users_username ON users(username);

CREATE TABLE IF NOT EXISTS refresh_tokens (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id      INTEGER NOT NULL,
	token        TEXT NOT NULL DEFAULT '',
	valid_till   TEXT NOT NULL DEFAULT '',
	created_date TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_refresh_tokens_user_id ON refresh_tokens(user_id);
CREATE INDEX IF NOT EXISTS idx_refresh_tokens_token ON refresh_tokens(token);

CREATE TABLE IF NOT EXISTS system_logs (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	type          TEXT NOT NULL DEFAULT '',
	page_name     TEXT NOT NULL DEFAULT '',
	function_name TEXT NOT NULL DEFAULT '',
	data          TEXT NOT NULL DEFAULT '',
	timestamp     TEXT NOT NULL DEFAULT '',
	message       TEXT NOT NULL DEFAULT '',
	stack_trace   TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_system_logs_type ON system_logs(type);
CREATE INDEX IF NOT EXISTS idx_system_logs_page_name ON system_logs(page_name);
CREATE INDEX IF NOT EXISTS idx_system_logs_timestamp ON system_logs(timestamp);
`

// Migrate creates all tables and indexes. It is idempotent and safe to run
// on every startup.
func Migrate(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
