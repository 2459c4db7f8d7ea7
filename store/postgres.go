package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/retentionlab/knapsack/knapsack"
)

const schema = `
CREATE TABLE IF NOT EXISTS predictions (
	id SERIAL PRIMARY KEY,
	employee_id BIGINT NOT NULL,
	probability DOUBLE PRECISION NOT NULL,
	risk_level TEXT NOT NULL,
	predicted_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS solves (
	id SERIAL PRIMARY KEY,
	status TEXT NOT NULL,
	total_cost DOUBLE PRECISION NOT NULL,
	total_value DOUBLE PRECISION NOT NULL,
	selected_ids BIGINT[] NOT NULL,
	solved_at TIMESTAMPTZ NOT NULL
);
`

// PostgresStore is a pgx-backed Store, the cloud-database collaborator
// standing in for supabase_client.py's SupabaseClient.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgresStore connects to dsn, runs the schema migration idempotently,
// and returns a ready-to-use PostgresStore.
func OpenPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: migrate schema: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) SaveResult(ctx context.Context, res knapsack.Result) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO solves (status, total_cost, total_value, selected_ids, solved_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		string(res.Status), res.TotalCost, res.TotalValue, res.SelectedIDs, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("store: save result: %w", err)
	}

	return id, nil
}

func (s *PostgresStore) SavePrediction(ctx context.Context, employeeID int64, probability float64, riskLevel string) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO predictions (employee_id, probability, risk_level, predicted_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		employeeID, probability, riskLevel, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("store: save prediction: %w", err)
	}

	return id, nil
}

func (s *PostgresStore) ListPredictions(ctx context.Context, riskLevel string, limit int) ([]PredictionRecord, error) {
	var (
		rows pgx.Rows
		err  error
	)

	if riskLevel == "" {
		rows, err = s.pool.Query(ctx,
			`SELECT id, employee_id, probability, risk_level, predicted_at
			 FROM predictions ORDER BY predicted_at DESC LIMIT $1`, limit)
	} else {
		rows, err = s.pool.Query(ctx,
			`SELECT id, employee_id, probability, risk_level, predicted_at
			 FROM predictions WHERE risk_level = $1 ORDER BY predicted_at DESC LIMIT $2`,
			riskLevel, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("store: list predictions: %w", err)
	}
	defer rows.Close()

	var out []PredictionRecord
	for rows.Next() {
		var p PredictionRecord
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.Probability, &p.RiskLevel, &p.PredictedAt); err != nil {
			return nil, fmt.Errorf("store: scan prediction: %w", err)
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (s *PostgresStore) LatestSolve(ctx context.Context) (SolveRecord, error) {
	var r SolveRecord
	err := s.pool.QueryRow(ctx,
		`SELECT id, status, total_cost, total_value, selected_ids, solved_at
		 FROM solves ORDER BY solved_at DESC LIMIT 1`,
	).Scan(&r.ID, &r.Status, &r.TotalCost, &r.TotalValue, &r.SelectedIDs, &r.SolvedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return SolveRecord{}, ErrNotFound
	}
	if err != nil {
		return SolveRecord{}, fmt.Errorf("store: latest solve: %w", err)
	}

	return r, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

// MaskDSN redacts the password component of a DSN for safe logging.
func MaskDSN(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	colon := strings.Index(dsn, "://")
	if at < 0 || colon < 0 {
		return dsn
	}
	userinfo := dsn[colon+3 : at]
	if i := strings.Index(userinfo, ":"); i >= 0 {
		return dsn[:colon+3] + userinfo[:i] + ":***" + dsn[at:]
	}

	return dsn
}
