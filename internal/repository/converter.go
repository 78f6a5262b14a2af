package repository

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/nqkhanh/commune-backend/internal/entity"
)

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var (
		id          pgtype.UUID
		title       string
		content     string
		fileType    string
		htmlContent pgtype.Text
		imageCount  int32
		displayDate string
		createdAt   pgtype.Timestamptz
	)

	if err := row.Scan(&id, &title, &content, &fileType, &htmlContent, &imageCount, &displayDate, &createdAt); err != nil {
		return nil, err
	}

	doc := &entity.Document{
		ID:         uuid.UUID(id.Bytes).String(),
		Title:      title,
		Content:    content,
		FileType:   entity.FileType(fileType),
		ImageCount: int(imageCount),
		Date:       displayDate,
		CreatedAt:  createdAt.Time,
	}

	if htmlContent.Valid {
		html := htmlContent.String
		doc.HTMLContent = &html
	}

	return doc, nil
}

func collectDocuments(rows pgx.Rows) ([]*entity.Document, error) {
	var docs []*entity.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

func scanCarouselImage(row pgx.Row) (*entity.CarouselImage, error) {
	var (
		id        pgtype.UUID
		title     string
		imageURL  string
		alt       string
		orderNum  int32
		createdAt pgtype.Timestamptz
	)

	if err := row.Scan(&id, &title, &imageURL, &alt, &orderNum, &createdAt); err != nil {
		return nil, err
	}

	return &entity.CarouselImage{
		ID:        uuid.UUID(id.Bytes).String(),
		Title:     title,
		ImageURL:  imageURL,
		Alt:       alt,
		Order:     int(orderNum),
		CreatedAt: createdAt.Time,
	}, nil
}

// textOrNull maps an optional string to a nullable pgtype.Text.
func textOrNull(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
