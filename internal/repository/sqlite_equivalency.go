package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/averyholm/telos/internal/domain"
)

// SQLiteEquivalencyRepo implements EquivalencyRepo using a SQLite database.
type SQLiteEquivalencyRepo struct {
	db *sql.DB
}

func NewSQLiteEquivalencyRepo(db *sql.DB) *SQLiteEquivalencyRepo {
	return &SQLiteEquivalencyRepo{db: db}
}

func (r *SQLiteEquivalencyRepo) Upsert(ctx context.Context, e domain.Equivalency) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO equivalencies (institution, course_code, target_code)
		VALUES (?, ?, ?)
		ON CONFLICT(institution, course_code) DO UPDATE SET target_code = excluded.target_code`,
		strings.ToLower(strings.TrimSpace(e.Institution)),
		domain.NormalizeCode(e.CourseCode),
		domain.NormalizeCode(e.TargetCode),
	)
	if err != nil {
		return fmt.Errorf("upserting equivalency %s/%s: %w", e.Institution, e.CourseCode, err)
	}
	return nil
}

// LoadAll returns every equivalency keyed by domain.EquivalencyKey, the
// form the attribution heuristic consumes.
func (r *SQLiteEquivalencyRepo) LoadAll(ctx context.Context) (map[string]domain.Equivalency, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT institution, course_code, target_code FROM equivalencies`)
	if err != nil {
		return nil, fmt.Errorf("listing equivalencies: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.Equivalency)
	for rows.Next() {
		var e domain.Equivalency
		if err := rows.Scan(&e.Institution, &e.CourseCode, &e.TargetCode); err != nil {
			return nil, fmt.Errorf("scanning equivalency: %w", err)
		}
		out[domain.EquivalencyKey(e.Institution, e.CourseCode)] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating equivalencies: %w", err)
	}
	return out, nil
}
