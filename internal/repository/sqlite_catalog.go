package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/averyholm/telos/internal/domain"
)

// SQLiteCatalogRepo implements CatalogRepo using a SQLite database. Codes
// are stored normalized so lookups are insensitive to spacing and dashes.
type SQLiteCatalogRepo struct {
	db *sql.DB
}

func NewSQLiteCatalogRepo(db *sql.DB) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{db: db}
}

const catalogColumns = `id, code, title, credits, institution, department, level, tag`

func (r *SQLiteCatalogRepo) Upsert(ctx context.Context, c *domain.Course) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO catalog_courses (id, code, title, credits, institution, department, level, tag)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(code, institution) DO UPDATE SET
			title = excluded.title,
			credits = excluded.credits,
			department = excluded.department,
			level = excluded.level,
			tag = excluded.tag`,
		c.ID, domain.NormalizeCode(c.Code), c.Title, c.Credits,
		c.Institution, c.Department, c.Level, c.Tag,
	)
	if err != nil {
		return fmt.Errorf("upserting catalog course %q: %w", c.Code, err)
	}
	return nil
}

// GetByCode resolves a course by normalized code. Institution narrows the
// lookup when non-empty; otherwise the first match by code wins.
func (r *SQLiteCatalogRepo) GetByCode(ctx context.Context, code, institution string) (*domain.Course, error) {
	normalized := domain.NormalizeCode(code)
	var row *sql.Row
	if institution != "" {
		row = r.db.QueryRowContext(ctx,
			`SELECT `+catalogColumns+` FROM catalog_courses
			WHERE code = ? AND LOWER(institution) = LOWER(?)`, normalized, institution)
	} else {
		row = r.db.QueryRowContext(ctx,
			`SELECT `+catalogColumns+` FROM catalog_courses WHERE code = ? ORDER BY institution LIMIT 1`, normalized)
	}

	var c domain.Course
	err := row.Scan(&c.ID, &c.Code, &c.Title, &c.Credits, &c.Institution, &c.Department, &c.Level, &c.Tag)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course %s: %w", normalized, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning catalog course: %w", err)
	}
	return &c, nil
}

// Search queries the catalog by subject prefix and/or title keyword.
// Results are ordered by code for determinism.
func (r *SQLiteCatalogRepo) Search(ctx context.Context, q CourseSearch) ([]domain.Course, error) {
	var conditions []string
	var args []any

	if q.Subject != "" {
		conditions = append(conditions, `code LIKE ?`)
		args = append(args, strings.ToUpper(strings.TrimSpace(q.Subject))+" %")
	}
	if q.Search != "" {
		conditions = append(conditions, `LOWER(title) LIKE ?`)
		args = append(args, "%"+strings.ToLower(strings.TrimSpace(q.Search))+"%")
	}
	if q.Institution != "" {
		conditions = append(conditions, `LOWER(institution) = LOWER(?)`)
		args = append(args, q.Institution)
	}
	if q.MinLevel > 0 {
		conditions = append(conditions, `level >= ?`)
		args = append(args, q.MinLevel)
	}
	if len(conditions) == 0 {
		return nil, fmt.Errorf("empty catalog search")
	}

	query := `SELECT ` + catalogColumns + ` FROM catalog_courses WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY code`
	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}
	query += fmt.Sprintf(" LIMIT %d", limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching catalog: %w", err)
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Code, &c.Title, &c.Credits, &c.Institution, &c.Department, &c.Level, &c.Tag); err != nil {
			return nil, fmt.Errorf("scanning search row: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search rows: %w", err)
	}
	return courses, nil
}

func (r *SQLiteCatalogRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_courses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting catalog courses: %w", err)
	}
	return n, nil
}
