// CLAUDE:SUMMARY Layout import/export operations — engine orchestration, sanitizing, element limits.
package builder

import (
	"context"
	"fmt"

	"github.com/pagewright/atelier/layout"
)

// ImportLayout replaces a page's element set with the result of importing a
// raw YOOtheme Pro layout document.
//
// The engine itself is pure; this wrapper adds the impure edges: structural
// validation, rich-text sanitizing, the per-page element quota and the
// transactional store insert that resolves parent placeholders.
func (s *Service) ImportLayout(ctx context.Context, pageID string, raw []byte) ([]*Element, error) {
	page, err := s.GetPage(ctx, pageID)
	if err != nil {
		return nil, err
	}

	doc, err := layout.Parse(raw)
	if err != nil {
		return nil, err
	}

	batch := layout.ImportFlat(doc)
	if len(batch) > s.cfg.MaxElementsPerPage {
		return nil, fmt.Errorf("%w: import yields %d elements (max %d)", ErrQuotaExceeded, len(batch), s.cfg.MaxElementsPerPage)
	}
	for i := range batch {
		batch[i].Content = s.sanitizeContent(batch[i].Type, batch[i].Content)
	}

	elements, err := s.store.ReplaceElements(ctx, pageID, batch)
	if err != nil {
		return nil, err
	}

	s.logger.Info("layout imported", "page", pageID, "elements", len(elements))
	s.audit(ctx, "layout_import", page.ProjectID, pageID, fmt.Sprintf("%d elements", len(elements)))
	return elements, nil
}

// ExportDocument bundles an exported layout with its suggested file name.
// The calling layer serializes it and triggers the download.
type ExportDocument struct {
	Filename string       `json:"filename"`
	Document *layout.Node `json:"document"`
}

// ExportLayout reconstructs a page's native tree from the store and re-wraps
// it as a YOOtheme Pro layout document.
func (s *Service) ExportLayout(ctx context.Context, pageID string) (*ExportDocument, error) {
	page, err := s.GetPage(ctx, pageID)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.ListElements(ctx, pageID)
	if err != nil {
		return nil, err
	}

	tree := layout.Nest(toFlat(rows))
	doc := layout.Export(tree)

	s.audit(ctx, "layout_export", page.ProjectID, pageID, fmt.Sprintf("%d elements", len(rows)))
	return &ExportDocument{
		Filename: layout.ExportFilename(page.Name),
		Document: doc,
	}, nil
}

// PageTree returns a page's elements as a nested native tree, the shape the
// canvas editor renders.
func (s *Service) PageTree(ctx context.Context, pageID string) ([]*layout.Element, error) {
	rows, err := s.ListElements(ctx, pageID)
	if err != nil {
		return nil, err
	}
	return layout.Nest(toFlat(rows)), nil
}

// toFlat converts store rows into the engine's flat representation: LocalID
// and ParentID carry real row ids, Order carries the position column.
func toFlat(rows []*Element) []layout.FlatElement {
	batch := make([]layout.FlatElement, 0, len(rows))
	for _, e := range rows {
		rec := layout.FlatElement{
			LocalID:    int(e.ID),
			Type:       e.Type,
			Content:    e.Content,
			Styles:     e.Styles,
			Attributes: e.Attributes,
			Order:      e.Position,
		}
		if e.ParentID != nil {
			parent := int(*e.ParentID)
			rec.ParentID = &parent
		}
		batch = append(batch, rec)
	}
	return batch
}
