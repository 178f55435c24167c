// Package sqlite implementa los repositorios sobre SQLite (modernc, sin cgo).
// Es el store por defecto del servicio: un archivo local alcanza para el
// volumen de una plataforma de adopción manejada por humanos.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Open abre la base y la deja lista para usar.
// dsn ejemplos: "file:app.db" o ":memory:".
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite tiene un único writer; serializar las conexiones evita
	// SQLITE_BUSY bajo escrituras concurrentes.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate crea las tablas que falten. Idempotente.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
