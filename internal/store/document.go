package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type documentRepo struct {
	db *sqlx.DB
}

type documentRow struct {
	ID         string `db:"id"`
	Title      string `db:"title"`
	Tags       string `db:"tags"`
	SourcePath string `db:"source_path"`
	Content    string `db:"content"`
	Bookmarked bool   `db:"bookmarked"`
	CreatedAt  string `db:"created_at"`
}

func (r *documentRepo) SaveDocument(ctx context.Context, doc *Document) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	tags, err := json.Marshal(doc.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	row := documentRow{
		ID:         doc.ID,
		Title:      doc.Title,
		Tags:       string(tags),
		SourcePath: doc.SourcePath,
		Content:    doc.Content,
		Bookmarked: doc.Bookmarked,
		CreatedAt:  doc.CreatedAt.UTC().Format(timeLayout),
	}
	const query = `INSERT INTO documents (id, title, tags, source_path, content, bookmarked, created_at)
	VALUES (:id, :title, :tags, :source_path, :content, :bookmarked, :created_at)
	ON CONFLICT(id) DO UPDATE SET title = excluded.title, tags = excluded.tags,
		source_path = excluded.source_path, content = excluded.content,
		bookmarked = excluded.bookmarked`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (r *documentRepo) GetDocument(ctx context.Context, id string) (*Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}

	var rows []documentRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, title, tags, source_path, content, bookmarked, created_at FROM documents
		WHERE id = ? OR id LIKE ? ESCAPE '\' LIMIT 2`, id, escapeLike(id)+"%")
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}

	switch {
	case len(rows) == 0:
		return nil, ErrNotFound
	case len(rows) > 1:
		for _, row := range rows {
			if row.ID == id {
				return row.toDocument()
			}
		}
		return nil, fmt.Errorf("document id prefix %q is ambiguous", id)
	}
	return rows[0].toDocument()
}

func (r *documentRepo) ListDocuments(ctx context.Context, q DocumentQuery) ([]Document, error) {
	query := `SELECT id, title, tags, source_path, '' AS content, bookmarked, created_at FROM documents`
	if q.BookmarkedOnly {
		query += ` WHERE bookmarked = 1`
	}
	query += ` ORDER BY created_at DESC, id ASC`

	var rows []documentRow
	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		d, err := row.toDocument()
		if err != nil {
			return nil, err
		}
		docs = append(docs, *d)
	}
	return docs, nil
}

func (r *documentRepo) DeleteDocument(ctx context.Context, id string) error {
	doc, err := r.GetDocument(ctx, id)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, doc.ID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

func (r *documentRepo) SetBookmarked(ctx context.Context, id string, bookmarked bool) (*Document, error) {
	doc, err := r.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx,
		`UPDATE documents SET bookmarked = ? WHERE id = ?`, bookmarked, doc.ID); err != nil {
		return nil, fmt.Errorf("bookmark document: %w", err)
	}
	doc.Bookmarked = bookmarked
	return doc, nil
}

func (row documentRow) toDocument() (*Document, error) {
	d := &Document{
		ID:         row.ID,
		Title:      row.Title,
		SourcePath: row.SourcePath,
		Content:    row.Content,
		Bookmarked: row.Bookmarked,
	}
	if err := json.Unmarshal([]byte(row.Tags), &d.Tags); err != nil {
		return nil, fmt.Errorf("decode tags for %s: %w", row.ID, err)
	}
	t, err := time.Parse(timeLayout, row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at for %s: %w", row.ID, err)
	}
	d.CreatedAt = t
	return d, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
