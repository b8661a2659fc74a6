// Package pg — опциональное Postgres-зеркало мок-сервера: записи
// коллекций хранятся как jsonb, чтобы стенд переживал рестарты.
package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
)

func Open(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, err
	}
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema создает таблицы коллекций, если их еще нет.
func (s *Store) EnsureSchema(ctx context.Context, collections []string) error {
	for _, col := range collections {
		ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, tableName(col))
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("ensure table for %s: %w", col, err)
		}
	}
	return nil
}

// Save — upsert записи.
func (s *Store) Save(ctx context.Context, col, id string, data map[string]interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	q := fmt.Sprintf(`INSERT INTO %s (id, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`, tableName(col))
	_, err = s.db.ExecContext(ctx, q, id, raw)
	return err
}

// Remove удаляет запись; отсутствие записи ошибкой не считается.
func (s *Store) Remove(ctx context.Context, col, id string) error {
	q := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, tableName(col))
	_, err := s.db.ExecContext(ctx, q, id)
	return err
}

// LoadAll возвращает все записи коллекции: id -> данные.
func (s *Store) LoadAll(ctx context.Context, col string) (map[string]map[string]interface{}, error) {
	q := fmt.Sprintf(`SELECT id, data FROM %s`, tableName(col))
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]map[string]interface{})
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		var data map[string]interface{}
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decode row %s: %w", id, err)
		}
		out[id] = data
	}
	return out, rows.Err()
}

// tableName: имена коллекций приходят из кода, не от пользователя,
// но на всякий случай оставляем только буквы в нижнем регистре.
func tableName(col string) string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return -1
	}, col)
	return "stend_" + cleaned
}
