package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nqkhanh/commune-backend/internal/entity"
)

// DocumentRepository defines the interface for document persistence
type DocumentRepository interface {
	Create(ctx context.Context, doc entity.Document) (*entity.Document, error)
	Get(ctx context.Context, id string) (*entity.Document, error)
	List(ctx context.Context) ([]*entity.Document, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Document, error)
	SearchLiteral(ctx context.Context, question string, limit int) ([]*entity.Document, error)
	Delete(ctx context.Context, id string) (bool, error)
}

var _ DocumentRepository = &DocumentPostgres{}

// DocumentPostgres implements DocumentRepository using PostgreSQL
type DocumentPostgres struct {
	db *pgxpool.Pool
}

func NewDocumentPostgres(db *pgxpool.Pool) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

const documentColumns = "id, title, content, file_type, html_content, image_count, display_date, created_at"

func (r *DocumentPostgres) Create(ctx context.Context, doc entity.Document) (*entity.Document, error) {
	docID, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("parse document ID: %w", err)
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO documents (id, title, content, file_type, html_content, image_count, display_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+documentColumns,
		pgtype.UUID{Bytes: docID, Valid: true},
		doc.Title,
		doc.Content,
		string(doc.FileType),
		textOrNull(doc.HTMLContent),
		int32(doc.ImageCount),
		doc.Date,
	)

	created, err := scanDocument(row)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	return created, nil
}

func (r *DocumentPostgres) Get(ctx context.Context, id string) (*entity.Document, error) {
	docID, err := uuid.Parse(id)
	if err != nil {
		return nil, entity.ErrDocumentNotFound
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE id = $1`,
		pgtype.UUID{Bytes: docID, Valid: true},
	)

	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}

	return doc, nil
}

func (r *DocumentPostgres) List(ctx context.Context) ([]*entity.Document, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+documentColumns+` FROM documents ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

func (r *DocumentPostgres) ListRecent(ctx context.Context, limit int) ([]*entity.Document, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+documentColumns+` FROM documents ORDER BY created_at DESC LIMIT $1`,
		int32(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("list recent documents: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

// SearchLiteral selects documents whose title or content contains the
// question as a literal, case-insensitive substring. The question passes
// through escapeLike so pattern metacharacters cannot widen the match.
// Result order is the table's natural order.
func (r *DocumentPostgres) SearchLiteral(ctx context.Context, question string, limit int) ([]*entity.Document, error) {
	pattern := "%" + escapeLike(question) + "%"

	rows, err := r.db.Query(ctx,
		`SELECT `+documentColumns+` FROM documents
		 WHERE title ILIKE $1 OR content ILIKE $1
		 LIMIT $2`,
		pattern,
		int32(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

// Delete removes a document and reports whether a row existed. A missing
// or malformed identifier is not an error: deletes are idempotent.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) (bool, error) {
	docID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	tag, err := r.db.Exec(ctx,
		`DELETE FROM documents WHERE id = $1`,
		pgtype.UUID{Bytes: docID, Valid: true},
	)
	if err != nil {
		return false, fmt.Errorf("delete document: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// escapeLike escapes the LIKE/ILIKE pattern metacharacters so the input
// matches literally. Backslash is the default escape character in
// PostgreSQL pattern matching.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
