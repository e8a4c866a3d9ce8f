// CLAUDE:SUMMARY HTTP API — chi routes for projects, pages, elements, import/export/outline, audit.
package builder

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pagewright/atelier/layout"
)

// Routes returns the builder HTTP API as a chi router, ready to mount.
func (s *Service) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", s.handleListProjects)
		r.Post("/", s.handleCreateProject)
		r.Route("/{projectID}", func(r chi.Router) {
			r.Get("/", s.handleGetProject)
			r.Patch("/", s.handleRenameProject)
			r.Delete("/", s.handleDeleteProject)
			r.Get("/pages", s.handleListPages)
			r.Post("/pages", s.handleCreatePage)
		})
	})

	r.Route("/pages/{pageID}", func(r chi.Router) {
		r.Get("/", s.handleGetPage)
		r.Patch("/", s.handleRenamePage)
		r.Delete("/", s.handleDeletePage)
		r.Get("/elements", s.handleListElements)
		r.Get("/tree", s.handlePageTree)
		r.Post("/import", s.handleImport)
		r.Get("/export", s.handleExport)
		r.Get("/outline", s.handleOutline)
	})

	r.Route("/elements/{elementID}", func(r chi.Router) {
		r.Patch("/", s.handleUpdateElement)
		r.Delete("/", s.handleDeleteElement)
	})

	r.Get("/audit", s.handleAudit)

	return r
}

type nameReq struct {
	Name string `json:"name"`
}

func (s *Service) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.ListProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, projects)
}

func (s *Service) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req nameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, 400, map[string]string{"error": "invalid JSON body"})
		return
	}
	p, err := s.CreateProject(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 201, p)
}

func (s *Service) handleGetProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.GetProject(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, p)
}

func (s *Service) handleRenameProject(w http.ResponseWriter, r *http.Request) {
	var req nameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, 400, map[string]string{"error": "invalid JSON body"})
		return
	}
	p, err := s.RenameProject(r.Context(), chi.URLParam(r, "projectID"), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, p)
}

func (s *Service) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.DeleteProject(r.Context(), chi.URLParam(r, "projectID")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, map[string]string{"status": "deleted"})
}

func (s *Service) handleListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := s.ListPages(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, pages)
}

func (s *Service) handleCreatePage(w http.ResponseWriter, r *http.Request) {
	var req nameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, 400, map[string]string{"error": "invalid JSON body"})
		return
	}
	p, err := s.CreatePage(r.Context(), chi.URLParam(r, "projectID"), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 201, p)
}

func (s *Service) handleGetPage(w http.ResponseWriter, r *http.Request) {
	p, err := s.GetPage(r.Context(), chi.URLParam(r, "pageID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, p)
}

func (s *Service) handleRenamePage(w http.ResponseWriter, r *http.Request) {
	var req nameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, 400, map[string]string{"error": "invalid JSON body"})
		return
	}
	p, err := s.RenamePage(r.Context(), chi.URLParam(r, "pageID"), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, p)
}

func (s *Service) handleDeletePage(w http.ResponseWriter, r *http.Request) {
	if err := s.DeletePage(r.Context(), chi.URLParam(r, "pageID")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, map[string]string{"status": "deleted"})
}

func (s *Service) handleListElements(w http.ResponseWriter, r *http.Request) {
	elements, err := s.ListElements(r.Context(), chi.URLParam(r, "pageID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, elements)
}

func (s *Service) handlePageTree(w http.ResponseWriter, r *http.Request) {
	tree, err := s.PageTree(r.Context(), chi.URLParam(r, "pageID"))
	if err != nil {
		writeError(w, err)
		return
	}
	if tree == nil {
		tree = []*layout.Element{}
	}
	writeJSON(w, 200, tree)
}

func (s *Service) handleImport(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, 413, map[string]string{"error": "request body too large"})
			return
		}
		writeJSON(w, 400, map[string]string{"error": "unreadable body"})
		return
	}
	elements, err := s.ImportLayout(r.Context(), chi.URLParam(r, "pageID"), raw)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 201, map[string]any{"count": len(elements), "elements": elements})
}

func (s *Service) handleExport(w http.ResponseWriter, r *http.Request) {
	doc, err := s.ExportLayout(r.Context(), chi.URLParam(r, "pageID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, doc)
}

func (s *Service) handleOutline(w http.ResponseWriter, r *http.Request) {
	md, err := s.Outline(r.Context(), chi.URLParam(r, "pageID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, map[string]string{"markdown": md})
}

func (s *Service) handleUpdateElement(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "elementID"), 10, 64)
	if err != nil {
		writeJSON(w, 400, map[string]string{"error": "invalid element id"})
		return
	}

	var req struct {
		Content    *string           `json:"content"`
		Styles     map[string]string `json:"styles"`
		Attributes map[string]any    `json:"attributes"`
		Position   *int              `json:"position"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, 400, map[string]string{"error": "invalid JSON body"})
		return
	}

	existing, err := s.store.GetElement(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if existing == nil {
		writeJSON(w, 404, map[string]string{"error": "element not found"})
		return
	}
	if req.Content != nil {
		existing.Content = *req.Content
	}
	if req.Styles != nil {
		existing.Styles = req.Styles
	}
	if req.Attributes != nil {
		existing.Attributes = req.Attributes
	}
	if req.Position != nil {
		existing.Position = *req.Position
	}

	updated, err := s.UpdateElement(r.Context(), existing)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, updated)
}

func (s *Service) handleDeleteElement(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "elementID"), 10, 64)
	if err != nil {
		writeJSON(w, 400, map[string]string{"error": "invalid element id"})
		return
	}
	if err := s.DeleteElement(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, map[string]string{"status": "deleted"})
}

func (s *Service) handleAudit(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", s.cfg.AuditLimit)
	entries, err := s.Audit(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, entries)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto HTTP statuses: missing resources are
// 404, malformed layout documents 422, validation failures 400, quota 413.
func writeError(w http.ResponseWriter, err error) {
	code := 500
	switch {
	case errors.Is(err, ErrNotFound):
		code = 404
	case errors.Is(err, layout.ErrNotLayout):
		code = 422
	case errors.Is(err, ErrInvalidInput):
		code = 400
	case errors.Is(err, ErrQuotaExceeded):
		code = 413
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func queryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
