package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/averyholm/telos/internal/domain"
)

// SQLiteProgramRepo implements ProgramRepo using a SQLite database. A
// program and its nested requirements, groups, options, and constraints are
// written in one transaction.
type SQLiteProgramRepo struct {
	db *sql.DB
}

func NewSQLiteProgramRepo(db *sql.DB) *SQLiteProgramRepo {
	return &SQLiteProgramRepo{db: db}
}

func (r *SQLiteProgramRepo) Create(ctx context.Context, p *domain.Program) error {
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
		`INSERT INTO programs (id, name, institution, total_credits_required, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Institution, p.TotalCreditsRequired,
		p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting program: %w", err)
	}

	for pos, req := range p.Requirements {
		if err := insertRequirement(ctx, tx, p.ID, pos, req); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing program: %w", err)
	}
	committed = true
	return nil
}

func insertRequirement(ctx context.Context, tx *sql.Tx, programID string, pos int, req domain.Requirement) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO requirements (id, program_id, category, description, type, credits_required, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.ID, programID, req.Category, req.Description, string(req.Type), req.CreditsRequired, pos,
	)
	if err != nil {
		return fmt.Errorf("inserting requirement %q: %w", req.Category, err)
	}

	for gpos, g := range req.Groups {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO requirement_groups (id, requirement_id, name, courses_required, credits_required, position)
			VALUES (?, ?, ?, ?, ?, ?)`,
			g.ID, req.ID, g.Name, g.CoursesRequired, g.CreditsRequired, gpos,
		)
		if err != nil {
			return fmt.Errorf("inserting group %q: %w", g.Name, err)
		}
		for opos, opt := range g.Options {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO group_options (group_id, course_code, institution, is_preferred, notes, position)
				VALUES (?, ?, ?, ?, ?, ?)`,
				g.ID, opt.CourseCode, opt.Institution, boolToInt(opt.IsPreferred), opt.Notes, opos,
			)
			if err != nil {
				return fmt.Errorf("inserting option %q: %w", opt.CourseCode, err)
			}
		}
	}

	for cpos, c := range req.Constraints {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO requirement_constraints (requirement_id, type, min_level, credits, tag, position)
			VALUES (?, ?, ?, ?, ?, ?)`,
			req.ID, string(c.Type), c.MinLevel, c.Credits, c.Tag, cpos,
		)
		if err != nil {
			return fmt.Errorf("inserting constraint: %w", err)
		}
	}

	return nil
}

func (r *SQLiteProgramRepo) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	var p domain.Program
	var createdAt, updatedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, institution, total_credits_required, created_at, updated_at
		FROM programs WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Institution, &p.TotalCreditsRequired, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("program %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning program: %w", err)
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)

	if p.Requirements, err = r.loadRequirements(ctx, p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteProgramRepo) loadRequirements(ctx context.Context, programID string) ([]domain.Requirement, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, category, description, type, credits_required
		FROM requirements WHERE program_id = ? ORDER BY position`, programID)
	if err != nil {
		return nil, fmt.Errorf("listing requirements: %w", err)
	}
	defer rows.Close()

	var reqs []domain.Requirement
	for rows.Next() {
		var req domain.Requirement
		var typeStr string
		if err := rows.Scan(&req.ID, &req.Category, &req.Description, &typeStr, &req.CreditsRequired); err != nil {
			return nil, fmt.Errorf("scanning requirement: %w", err)
		}
		req.Type = domain.RequirementType(typeStr)
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating requirements: %w", err)
	}

	for i := range reqs {
		if reqs[i].Groups, err = r.loadGroups(ctx, reqs[i].ID); err != nil {
			return nil, err
		}
		if reqs[i].Constraints, err = r.loadConstraints(ctx, reqs[i].ID); err != nil {
			return nil, err
		}
	}
	return reqs, nil
}

func (r *SQLiteProgramRepo) loadGroups(ctx context.Context, requirementID string) ([]domain.RequirementGroup, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, courses_required, credits_required
		FROM requirement_groups WHERE requirement_id = ? ORDER BY position`, requirementID)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}
	defer rows.Close()

	var groups []domain.RequirementGroup
	for rows.Next() {
		var g domain.RequirementGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.CoursesRequired, &g.CreditsRequired); err != nil {
			return nil, fmt.Errorf("scanning group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating groups: %w", err)
	}

	for i := range groups {
		optRows, err := r.db.QueryContext(ctx,
			`SELECT course_code, institution, is_preferred, notes
			FROM group_options WHERE group_id = ? ORDER BY position`, groups[i].ID)
		if err != nil {
			return nil, fmt.Errorf("listing options: %w", err)
		}
		for optRows.Next() {
			var opt domain.CourseOption
			var preferred int
			if err := optRows.Scan(&opt.CourseCode, &opt.Institution, &preferred, &opt.Notes); err != nil {
				optRows.Close()
				return nil, fmt.Errorf("scanning option: %w", err)
			}
			opt.IsPreferred = preferred != 0
			groups[i].Options = append(groups[i].Options, opt)
		}
		if err := optRows.Err(); err != nil {
			optRows.Close()
			return nil, fmt.Errorf("iterating options: %w", err)
		}
		optRows.Close()
	}
	return groups, nil
}

func (r *SQLiteProgramRepo) loadConstraints(ctx context.Context, requirementID string) ([]domain.Constraint, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT type, min_level, credits, tag
		FROM requirement_constraints WHERE requirement_id = ? ORDER BY position`, requirementID)
	if err != nil {
		return nil, fmt.Errorf("listing constraints: %w", err)
	}
	defer rows.Close()

	var constraints []domain.Constraint
	for rows.Next() {
		var c domain.Constraint
		var typeStr string
		if err := rows.Scan(&typeStr, &c.MinLevel, &c.Credits, &c.Tag); err != nil {
			return nil, fmt.Errorf("scanning constraint: %w", err)
		}
		c.Type = domain.ConstraintType(typeStr)
		constraints = append(constraints, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating constraints: %w", err)
	}
	return constraints, nil
}

func (r *SQLiteProgramRepo) List(ctx context.Context) ([]*domain.Program, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, institution, total_credits_required, created_at, updated_at
		FROM programs ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}
	defer rows.Close()

	var programs []*domain.Program
	for rows.Next() {
		var p domain.Program
		var createdAt, updatedAt string
		if err := rows.Scan(&p.ID, &p.Name, &p.Institution, &p.TotalCreditsRequired, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning program row: %w", err)
		}
		p.CreatedAt = parseTime(createdAt)
		p.UpdatedAt = parseTime(updatedAt)
		programs = append(programs, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating programs: %w", err)
	}
	return programs, nil
}

func (r *SQLiteProgramRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM programs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting program: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
