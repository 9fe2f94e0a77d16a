// Package supabase espelha coleções locais no Postgres do Supabase.
// Cada tabela remota guarda (id, payload jsonb, synced_at).
package supabase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"rebanho-backend/internal/cloudsync"
)

// Open abre um pool pgx via database/sql e valida a conexão.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// allowedTables evita interpolar nome de tabela vindo de fora do
// catálogo fixo do sync.
var allowedTables = map[string]bool{
	"animals":            true,
	"animal_weights":     true,
	"vaccinations":       true,
	"medications":        true,
	"notes":              true,
	"breeding_records":   true,
	"financial_records":  true,
	"financial_accounts": true,
	"cost_centers":       true,
	"budgets":            true,
	"reports":            true,
}

type Client struct {
	db *sql.DB
}

func NewClient(db *sql.DB) *Client {
	return &Client{db: db}
}

// Upsert grava linha a linha; a última escrita vence no remoto.
func (c *Client) Upsert(ctx context.Context, table string, rows []cloudsync.Row) error {
	if !allowedTables[table] {
		return fmt.Errorf("supabase: tabela desconhecida %q", table)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, payload, synced_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE
		SET payload = EXCLUDED.payload, synced_at = now()
	`, table)

	for _, row := range rows {
		if _, err := c.db.ExecContext(ctx, query, row.ID, row.Payload); err != nil {
			return fmt.Errorf("upsert %s id=%s: %w", table, row.ID, err)
		}
	}
	return nil
}

func (c *Client) Close() error {
	return c.db.Close()
}
