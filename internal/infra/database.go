package infra

import (
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the MySQL connection through GORM, sizes the pool, and
// bootstraps the two legacy tables with idempotent DDL. Schema lives here
// rather than in AutoMigrate so column types and defaults stay exactly
// what the existing production data expects.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(normalizeDSN(dsn)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := ensureSchema(db); err != nil {
		return nil, fmt.Errorf("schema bootstrap: %w", err)
	}
	return db, nil
}

// normalizeDSN forces the driver options the service depends on:
// parseTime for time scanning, utf8mb4 for the Spanish text columns, and
// clientFoundRows so an UPDATE's row count means "matched" — without it an
// update writing identical values reads as a missing row.
//
// Only the query segment after the final "/dbname?" counts as parameters;
// a password or database name that happens to contain "charset=" must not
// suppress the real option.
func normalizeDSN(dsn string) string {
	required := []string{"parseTime=true", "charset=utf8mb4", "clientFoundRows=true"}

	tail := dsn
	if i := strings.LastIndex(dsn, "/"); i >= 0 {
		tail = dsn[i+1:]
	}
	query := ""
	hasQuery := false
	if j := strings.Index(tail, "?"); j >= 0 {
		query = tail[j+1:]
		hasQuery = true
	}
	present := make(map[string]bool)
	for _, kv := range strings.Split(query, "&") {
		if kv == "" {
			continue
		}
		present[strings.SplitN(kv, "=", 2)[0]] = true
	}

	var missing []string
	for _, param := range required {
		if !present[strings.SplitN(param, "=", 2)[0]] {
			missing = append(missing, param)
		}
	}
	if len(missing) == 0 {
		return dsn
	}
	sep := "?"
	if hasQuery {
		sep = "&"
		if query == "" {
			sep = ""
		}
	}
	return dsn + sep + strings.Join(missing, "&")
}

// ensureSchema creates the tables when they do not exist yet. Each
// statement is idempotent so re-running on an already-bootstrapped
// database is a no-op.
func ensureSchema(db *gorm.DB) error {
	stmts := []struct{ descr, sql string }{
		{"catalogo_ramos", `
CREATE TABLE IF NOT EXISTS catalogo_ramos (
  id          INT AUTO_INCREMENT PRIMARY KEY,
  titulo      VARCHAR(255)  NOT NULL,
  valor       DECIMAL(10,2) NOT NULL DEFAULT 0.00,
  categoria   VARCHAR(100)  NOT NULL,
  description TEXT,
  imagen      VARCHAR(255)  NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
		{"pedido", `
CREATE TABLE IF NOT EXISTS pedido (
  id              INT AUTO_INCREMENT PRIMARY KEY,
  nombre_cliente  VARCHAR(255)  NOT NULL,
  direccion       VARCHAR(255)  NOT NULL,
  fecha_entrega   VARCHAR(50)   NOT NULL,
  valor_ramo      DECIMAL(10,2) NOT NULL DEFAULT 0.00,
  nombre_ramo     VARCHAR(255)  NOT NULL DEFAULT '',
  celular         VARCHAR(50)   NOT NULL DEFAULT '',
  descripcion     TEXT,
  estado          VARCHAR(50)   NOT NULL DEFAULT 'En proceso',
  cantidad_pagada DECIMAL(10,2) NOT NULL DEFAULT 0.00
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	}

	for _, s := range stmts {
		if err := db.Exec(s.sql).Error; err != nil {
			return fmt.Errorf("create %s: %w", s.descr, err)
		}
	}
	return nil
}
