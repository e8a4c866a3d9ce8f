// CLAUDE:SUMMARY CRUD operations for the projects table.
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Project is one builder project, the root of a set of pages.
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// InsertProject inserts a new project.
func (s *Store) InsertProject(ctx context.Context, p *Project) error {
	now := time.Now().UnixMilli()
	if p.CreatedAt == 0 {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO projects (id, name, created_at, updated_at)
		VALUES (?,?,?,?)`,
		p.ID, p.Name, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// GetProject retrieves a project by ID. Returns (nil, nil) when absent.
func (s *Store) GetProject(ctx context.Context, id string) (*Project, error) {
	p := &Project{}
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at FROM projects WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListProjects returns all projects, newest first.
func (s *Store) ListProjects(ctx context.Context) ([]*Project, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		p := &Project{}
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// RenameProject updates a project's name.
func (s *Store) RenameProject(ctx context.Context, id, name string) error {
	_, err := s.DB.ExecContext(ctx, `
		UPDATE projects SET name = ?, updated_at = ? WHERE id = ?`,
		name, time.Now().UnixMilli(), id,
	)
	return err
}

// DeleteProject deletes a project; pages and elements cascade.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	return err
}
