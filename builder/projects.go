// CLAUDE:SUMMARY Project and page operations — validation, id assignment, audit hooks.
package builder

import (
	"context"
	"fmt"

	"github.com/pagewright/atelier/builder/internal/store"
)

const maxNameLen = 256

// Project and Page re-export the store row types; callers outside the package
// see them through the service API only.
type (
	Project = store.Project
	Page    = store.Page
	Element = store.Element
)

// CreateProject validates the name, assigns an id and inserts the project.
func (s *Service) CreateProject(ctx context.Context, name string) (*Project, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	p := &store.Project{ID: s.newID(), Name: name}
	if err := s.store.InsertProject(ctx, p); err != nil {
		return nil, err
	}
	s.audit(ctx, "project_create", p.ID, "", p.Name)
	return p, nil
}

// GetProject returns a project or ErrNotFound.
func (s *Service) GetProject(ctx context.Context, id string) (*Project, error) {
	p, err := s.store.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: project %s", ErrNotFound, id)
	}
	return p, nil
}

// ListProjects returns all projects, newest first.
func (s *Service) ListProjects(ctx context.Context) ([]*Project, error) {
	return s.store.ListProjects(ctx)
}

// RenameProject validates the new name and renames the project.
func (s *Service) RenameProject(ctx context.Context, id, name string) (*Project, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if _, err := s.GetProject(ctx, id); err != nil {
		return nil, err
	}
	if err := s.store.RenameProject(ctx, id, name); err != nil {
		return nil, err
	}
	s.audit(ctx, "project_rename", id, "", name)
	return s.GetProject(ctx, id)
}

// DeleteProject deletes a project and, by cascade, its pages and elements.
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.GetProject(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteProject(ctx, id); err != nil {
		return err
	}
	s.audit(ctx, "project_delete", id, "", "")
	return nil
}

// CreatePage validates the name, derives the slug and inserts the page under
// an existing project.
func (s *Service) CreatePage(ctx context.Context, projectID, name string) (*Page, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	p := &store.Page{ID: s.newID(), ProjectID: projectID, Name: name, Slug: slugify(name)}
	if err := s.store.InsertPage(ctx, p); err != nil {
		return nil, err
	}
	s.audit(ctx, "page_create", projectID, p.ID, p.Name)
	return p, nil
}

// GetPage returns a page or ErrNotFound.
func (s *Service) GetPage(ctx context.Context, id string) (*Page, error) {
	p, err := s.store.GetPage(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: page %s", ErrNotFound, id)
	}
	return p, nil
}

// ListPages returns a project's pages in creation order.
func (s *Service) ListPages(ctx context.Context, projectID string) ([]*Page, error) {
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.store.ListPages(ctx, projectID)
}

// RenamePage validates the new name, re-derives the slug and renames the page.
func (s *Service) RenamePage(ctx context.Context, id, name string) (*Page, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	p, err := s.GetPage(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.store.RenamePage(ctx, id, name, slugify(name)); err != nil {
		return nil, err
	}
	s.audit(ctx, "page_rename", p.ProjectID, id, name)
	return s.GetPage(ctx, id)
}

// DeletePage deletes a page and its elements.
func (s *Service) DeletePage(ctx context.Context, id string) error {
	p, err := s.GetPage(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeletePage(ctx, id); err != nil {
		return err
	}
	s.audit(ctx, "page_delete", p.ProjectID, id, "")
	return nil
}

// ListElements returns a page's stored element rows in insertion order.
func (s *Service) ListElements(ctx context.Context, pageID string) ([]*Element, error) {
	if _, err := s.GetPage(ctx, pageID); err != nil {
		return nil, err
	}
	return s.store.ListElements(ctx, pageID)
}

// UpdateElement rewrites an element's mutable fields.
func (s *Service) UpdateElement(ctx context.Context, e *Element) (*Element, error) {
	existing, err := s.store.GetElement(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: element %d", ErrNotFound, e.ID)
	}
	e.Content = s.sanitizeContent(e.Type, e.Content)
	if err := s.store.UpdateElement(ctx, e); err != nil {
		return nil, err
	}
	return s.store.GetElement(ctx, e.ID)
}

// DeleteElement deletes one element and its descendants.
func (s *Service) DeleteElement(ctx context.Context, id int64) error {
	existing, err := s.store.GetElement(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: element %d", ErrNotFound, id)
	}
	return s.store.DeleteElement(ctx, id)
}

// Audit returns the most recent audit entries.
func (s *Service) Audit(ctx context.Context, limit int) ([]*store.AuditEntry, error) {
	if limit <= 0 {
		limit = s.cfg.AuditLimit
	}
	return s.store.ListAudit(ctx, limit)
}

func (s *Service) audit(ctx context.Context, action, projectID, pageID, detail string) {
	entry := &store.AuditEntry{
		ID:        s.newID(),
		Action:    action,
		ProjectID: projectID,
		PageID:    pageID,
		Detail:    detail,
	}
	if err := s.store.InsertAudit(ctx, entry); err != nil {
		s.logger.Warn("audit write failed", "action", action, "error", err)
	}
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, maxNameLen)
	}
	return nil
}
