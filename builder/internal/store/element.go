// CLAUDE:SUMMARY Element rows — list/replace/update/delete, with placeholder resolution during batch insert.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pagewright/atelier/dbopen"
	"github.com/pagewright/atelier/layout"
)

// Element is one stored page element. ParentID is nil for page-root elements.
type Element struct {
	ID         int64             `json:"id"`
	PageID     string            `json:"page_id"`
	ParentID   *int64            `json:"parent_id"`
	Type       string            `json:"element_type"`
	Content    string            `json:"content"`
	Styles     map[string]string `json:"styles"`
	Attributes map[string]any    `json:"attributes"`
	Position   int               `json:"position"`
	CreatedAt  int64             `json:"created_at"`
	UpdatedAt  int64             `json:"updated_at"`
}

// ListElements returns a page's elements ordered by position, parents before
// children (rowids are assigned in batch order, so id order preserves the
// pre-order insertion).
func (s *Store) ListElements(ctx context.Context, pageID string) ([]*Element, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, page_id, parent_id, element_type, content, styles, attributes, position, created_at, updated_at
		FROM elements WHERE page_id = ? ORDER BY id ASC`, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var elements []*Element
	for rows.Next() {
		e, err := scanElement(rows)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	return elements, rows.Err()
}

// GetElement retrieves one element by ID. Returns (nil, nil) when absent.
func (s *Store) GetElement(ctx context.Context, id int64) (*Element, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT id, page_id, parent_id, element_type, content, styles, attributes, position, created_at, updated_at
		FROM elements WHERE id = ?`, id)
	e, err := scanElement(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ReplaceElements atomically replaces a page's element set with a flattened
// batch.
//
// The batch's negative ParentID placeholders are resolved through a
// LocalID → rowid map built as rows are inserted, so the only ordering the
// batch must guarantee is the one Flatten already does: a parent's record
// precedes its descendants'. A placeholder referencing a LocalID not yet
// inserted is a corrupt batch and aborts the transaction.
func (s *Store) ReplaceElements(ctx context.Context, pageID string, batch []layout.FlatElement) ([]*Element, error) {
	now := time.Now().UnixMilli()
	var inserted []*Element

	err := dbopen.RunTx(ctx, s.DB, func(tx *sql.Tx) error {
		// RunTx may re-invoke this closure after a BUSY rollback; all
		// per-attempt state must be rebuilt from scratch.
		inserted = make([]*Element, 0, len(batch))
		if _, err := tx.ExecContext(ctx, `DELETE FROM elements WHERE page_id = ?`, pageID); err != nil {
			return err
		}

		realIDs := make(map[int]int64, len(batch))
		for _, rec := range batch {
			var parentID any
			var parentPtr *int64
			if rec.ParentID != nil {
				local := *rec.ParentID
				if local < 0 {
					local = -local
				}
				real, ok := realIDs[local]
				if !ok {
					return fmt.Errorf("store: batch record %d references unknown parent %d", rec.LocalID, *rec.ParentID)
				}
				parentID = real
				parentPtr = &real
			}

			styles, err := json.Marshal(orEmptyStyles(rec.Styles))
			if err != nil {
				return err
			}
			attrs, err := json.Marshal(orEmptyAttrs(rec.Attributes))
			if err != nil {
				return err
			}

			res, err := tx.ExecContext(ctx, `
				INSERT INTO elements (page_id, parent_id, element_type, content, styles, attributes, position, created_at, updated_at)
				VALUES (?,?,?,?,?,?,?,?,?)`,
				pageID, parentID, rec.Type, rec.Content, string(styles), string(attrs), rec.Order, now, now,
			)
			if err != nil {
				return err
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			realIDs[rec.LocalID] = id

			inserted = append(inserted, &Element{
				ID:         id,
				PageID:     pageID,
				ParentID:   parentPtr,
				Type:       rec.Type,
				Content:    rec.Content,
				Styles:     orEmptyStyles(rec.Styles),
				Attributes: orEmptyAttrs(rec.Attributes),
				Position:   rec.Order,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inserted, nil
}

// UpdateElement rewrites an element's content, styles, attributes and position.
func (s *Store) UpdateElement(ctx context.Context, e *Element) error {
	styles, err := json.Marshal(orEmptyStyles(e.Styles))
	if err != nil {
		return err
	}
	attrs, err := json.Marshal(orEmptyAttrs(e.Attributes))
	if err != nil {
		return err
	}
	e.UpdatedAt = time.Now().UnixMilli()

	_, err = s.DB.ExecContext(ctx, `
		UPDATE elements SET content = ?, styles = ?, attributes = ?, position = ?, updated_at = ?
		WHERE id = ?`,
		e.Content, string(styles), string(attrs), e.Position, e.UpdatedAt, e.ID,
	)
	return err
}

// DeleteElement deletes one element; its descendants cascade.
func (s *Store) DeleteElement(ctx context.Context, id int64) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM elements WHERE id = ?`, id)
	return err
}

// CountElements returns the number of elements stored for a page.
func (s *Store) CountElements(ctx context.Context, pageID string) (int, error) {
	var n int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM elements WHERE page_id = ?`, pageID).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanElement(row rowScanner) (*Element, error) {
	e := &Element{}
	var parentID sql.NullInt64
	var styles, attrs string

	if err := row.Scan(
		&e.ID, &e.PageID, &parentID, &e.Type, &e.Content, &styles, &attrs,
		&e.Position, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if parentID.Valid {
		v := parentID.Int64
		e.ParentID = &v
	}
	e.Styles = map[string]string{}
	if err := json.Unmarshal([]byte(styles), &e.Styles); err != nil {
		return nil, fmt.Errorf("store: element %d: corrupt styles column: %w", e.ID, err)
	}
	e.Attributes = map[string]any{}
	if err := json.Unmarshal([]byte(attrs), &e.Attributes); err != nil {
		return nil, fmt.Errorf("store: element %d: corrupt attributes column: %w", e.ID, err)
	}
	return e, nil
}

func orEmptyStyles(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func orEmptyAttrs(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
