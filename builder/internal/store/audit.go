// CLAUDE:SUMMARY Append-only audit log of builder operations (imports, exports, CRUD).
package store

import (
	"context"
	"time"
)

// AuditEntry is one append-only record of a builder operation.
type AuditEntry struct {
	ID        string `json:"id"`
	TS        int64  `json:"ts"`
	Action    string `json:"action"`
	ProjectID string `json:"project_id,omitempty"`
	PageID    string `json:"page_id,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// InsertAudit appends an audit entry.
func (s *Store) InsertAudit(ctx context.Context, e *AuditEntry) error {
	if e.TS == 0 {
		e.TS = time.Now().UnixMilli()
	}
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO audit_log (id, ts, action, project_id, page_id, detail)
		VALUES (?,?,?,?,?,?)`,
		e.ID, e.TS, e.Action, e.ProjectID, e.PageID, e.Detail,
	)
	return err
}

// ListAudit returns the most recent audit entries, newest first.
func (s *Store) ListAudit(ctx context.Context, limit int) ([]*AuditEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, ts, action, project_id, page_id, detail
		FROM audit_log ORDER BY ts DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*AuditEntry
	for rows.Next() {
		e := &AuditEntry{}
		if err := rows.Scan(&e.ID, &e.TS, &e.Action, &e.ProjectID, &e.PageID, &e.Detail); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
