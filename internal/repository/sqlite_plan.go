package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/averyholm/telos/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database. Plan courses
// store a denormalized course snapshot so an imported plan stays readable
// even when the catalog lacks the course.
type SQLitePlanRepo struct {
	db *sql.DB
}

func NewSQLitePlanRepo(db *sql.DB) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.Plan) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO plans (id, program_id, name, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.ProgramID, p.Name, string(p.Status),
		p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}

	for pos, pc := range p.Courses {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO plan_courses (
				id, plan_id, course_id, code, title, credits, institution, department,
				level, tag, status, requirement_category, requirement_group_id,
				credits_override, term, year, notes, position
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			pc.ID, p.ID, pc.Course.ID, pc.Course.Code, pc.Course.Title,
			pc.Course.Credits, pc.Course.Institution, pc.Course.Department,
			pc.Course.Level, pc.Course.Tag, string(pc.Status),
			pc.RequirementCategory, nullableString(pc.RequirementGroupID),
			nullableFloat(pc.CreditsOverride), pc.Term, pc.Year, pc.Notes, pos,
		)
		if err != nil {
			return fmt.Errorf("inserting plan course %q: %w", pc.Course.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing plan: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	var p domain.Plan
	var statusStr, createdAt, updatedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, program_id, name, status, created_at, updated_at FROM plans WHERE id = ?`, id,
	).Scan(&p.ID, &p.ProgramID, &p.Name, &statusStr, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	p.Status = domain.PlanStatus(statusStr)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, course_id, code, title, credits, institution, department,
			level, tag, status, requirement_category, requirement_group_id,
			credits_override, term, year, notes
		FROM plan_courses WHERE plan_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("listing plan courses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pc domain.PlanCourse
		var pcStatus string
		var groupID sql.NullString
		var override sql.NullFloat64
		err := rows.Scan(
			&pc.ID, &pc.Course.ID, &pc.Course.Code, &pc.Course.Title,
			&pc.Course.Credits, &pc.Course.Institution, &pc.Course.Department,
			&pc.Course.Level, &pc.Course.Tag, &pcStatus,
			&pc.RequirementCategory, &groupID, &override,
			&pc.Term, &pc.Year, &pc.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning plan course: %w", err)
		}
		pc.Status = domain.CourseStatus(pcStatus)
		pc.RequirementGroupID = stringPtr(groupID)
		pc.CreditsOverride = floatPtr(override)
		p.Courses = append(p.Courses, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan courses: %w", err)
	}
	return &p, nil
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.Plan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, program_id, name, status, created_at, updated_at FROM plans ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.Plan
	for rows.Next() {
		var p domain.Plan
		var statusStr, createdAt, updatedAt string
		if err := rows.Scan(&p.ID, &p.ProgramID, &p.Name, &statusStr, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning plan row: %w", err)
		}
		p.Status = domain.PlanStatus(statusStr)
		p.CreatedAt = parseTime(createdAt)
		p.UpdatedAt = parseTime(updatedAt)
		plans = append(plans, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return nil
}
