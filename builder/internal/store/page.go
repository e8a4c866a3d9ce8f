// CLAUDE:SUMMARY CRUD operations for the pages table.
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Page is one page within a project. Its element set lives in the elements
// table keyed by page_id.
type Page struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// InsertPage inserts a new page.
func (s *Store) InsertPage(ctx context.Context, p *Page) error {
	now := time.Now().UnixMilli()
	if p.CreatedAt == 0 {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO pages (id, project_id, name, slug, created_at, updated_at)
		VALUES (?,?,?,?,?,?)`,
		p.ID, p.ProjectID, p.Name, p.Slug, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// GetPage retrieves a page by ID. Returns (nil, nil) when absent.
func (s *Store) GetPage(ctx context.Context, id string) (*Page, error) {
	p := &Page{}
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, project_id, name, slug, created_at, updated_at
		FROM pages WHERE id = ?`, id).
		Scan(&p.ID, &p.ProjectID, &p.Name, &p.Slug, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListPages returns a project's pages in creation order.
func (s *Store) ListPages(ctx context.Context, projectID string) ([]*Page, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, project_id, name, slug, created_at, updated_at
		FROM pages WHERE project_id = ? ORDER BY created_at ASC`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*Page
	for rows.Next() {
		p := &Page{}
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Name, &p.Slug, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// RenamePage updates a page's name and slug.
func (s *Store) RenamePage(ctx context.Context, id, name, slug string) error {
	_, err := s.DB.ExecContext(ctx, `
		UPDATE pages SET name = ?, slug = ?, updated_at = ? WHERE id = ?`,
		name, slug, time.Now().UnixMilli(), id,
	)
	return err
}

// DeletePage deletes a page; its elements cascade.
func (s *Store) DeletePage(ctx context.Context, id string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM pages WHERE id = ?`, id)
	return err
}
