// Package db persists unit designs in PostgreSQL. The engine never
// touches this layer; designs are handed to it as plain values and
// handed back after each change.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SwiggitySwerve/megamek-web-sub006/internal/models"
)

// Store is the pgx-backed design store.
type Store struct {
	Pool *pgxpool.Pool
}

// Connect opens a connection pool and verifies it.
func Connect(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{Pool: pool}, nil
}

// Close releases the pool.
func (s *Store) Close() {
	s.Pool.Close()
}

// SaveDesign upserts a design keyed by chassis and model, replacing the
// stored configuration and mounts in one transaction.
func (s *Store) SaveDesign(ctx context.Context, u *models.Unit) (int, error) {
	cfgJSON, err := json.Marshal(u.Config)
	if err != nil {
		return 0, fmt.Errorf("marshal config for %q: %w", u.FullName(), err)
	}
	mountsJSON, err := json.Marshal(u.Mounts)
	if err != nil {
		return 0, fmt.Errorf("marshal mounts for %q: %w", u.FullName(), err)
	}

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int
	err = tx.QueryRow(ctx,
		`INSERT INTO designs (chassis, model, config, mounts)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (chassis, model)
		 DO UPDATE SET config = EXCLUDED.config, mounts = EXCLUDED.mounts
		 RETURNING id`,
		u.Chassis, u.Model, cfgJSON, mountsJSON,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert design %q: %w", u.FullName(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit design %q: %w", u.FullName(), err)
	}
	return id, nil
}

// LoadDesign fetches one design by id.
func (s *Store) LoadDesign(ctx context.Context, id int) (*models.Unit, error) {
	var u models.Unit
	var cfgJSON, mountsJSON []byte
	err := s.Pool.QueryRow(ctx,
		`SELECT chassis, model, config, mounts FROM designs WHERE id = $1`, id,
	).Scan(&u.Chassis, &u.Model, &cfgJSON, &mountsJSON)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("design %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("load design %d: %w", id, err)
	}

	if err := json.Unmarshal(cfgJSON, &u.Config); err != nil {
		return nil, fmt.Errorf("unmarshal config for design %d: %w", id, err)
	}
	if len(mountsJSON) > 0 {
		if err := json.Unmarshal(mountsJSON, &u.Mounts); err != nil {
			return nil, fmt.Errorf("unmarshal mounts for design %d: %w", id, err)
		}
	}
	return &u, nil
}

// ListDesigns returns the id and name of every stored design, ordered
// by chassis then model.
func (s *Store) ListDesigns(ctx context.Context) (map[int]string, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT id, chassis, model FROM designs ORDER BY chassis, model`)
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	defer rows.Close()

	out := make(map[int]string)
	for rows.Next() {
		var id int
		var chassis, model string
		if err := rows.Scan(&id, &chassis, &model); err != nil {
			return nil, fmt.Errorf("scan design row: %w", err)
		}
		name := chassis
		if model != "" {
			name += " " + model
		}
		out[id] = name
	}
	return out, rows.Err()
}
