package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nqkhanh/commune-backend/internal/entity"
)

// CarouselRepository defines the interface for carousel image persistence
type CarouselRepository interface {
	Create(ctx context.Context, img entity.CarouselImage) (*entity.CarouselImage, error)
	List(ctx context.Context) ([]*entity.CarouselImage, error)
	// Delete removes an image and returns its stored URL so the caller
	// can clean up a locally hosted file. deleted is false when no row
	// matched.
	Delete(ctx context.Context, id string) (imageURL string, deleted bool, err error)
}

var _ CarouselRepository = &CarouselPostgres{}

// CarouselPostgres implements CarouselRepository using PostgreSQL
type CarouselPostgres struct {
	db *pgxpool.Pool
}

func NewCarouselPostgres(db *pgxpool.Pool) *CarouselPostgres {
	return &CarouselPostgres{db: db}
}

const carouselColumns = "id, title, image_url, alt, order_num, created_at"

func (r *CarouselPostgres) Create(ctx context.Context, img entity.CarouselImage) (*entity.CarouselImage, error) {
	imgID, err := uuid.Parse(img.ID)
	if err != nil {
		return nil, fmt.Errorf("parse carousel image ID: %w", err)
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO carousel_images (id, title, image_url, alt, order_num)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+carouselColumns,
		pgtype.UUID{Bytes: imgID, Valid: true},
		img.Title,
		img.ImageURL,
		img.Alt,
		int32(img.Order),
	)

	created, err := scanCarouselImage(row)
	if err != nil {
		return nil, fmt.Errorf("create carousel image: %w", err)
	}

	return created, nil
}

func (r *CarouselPostgres) List(ctx context.Context) ([]*entity.CarouselImage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+carouselColumns+` FROM carousel_images
		 ORDER BY order_num ASC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list carousel images: %w", err)
	}
	defer rows.Close()

	var images []*entity.CarouselImage
	for rows.Next() {
		img, err := scanCarouselImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan carousel image: %w", err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate carousel images: %w", err)
	}

	return images, nil
}

func (r *CarouselPostgres) Delete(ctx context.Context, id string) (string, bool, error) {
	imgID, err := uuid.Parse(id)
	if err != nil {
		return "", false, nil
	}

	var imageURL string
	err = r.db.QueryRow(ctx,
		`DELETE FROM carousel_images WHERE id = $1 RETURNING image_url`,
		pgtype.UUID{Bytes: imgID, Valid: true},
	).Scan(&imageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("delete carousel image: %w", err)
	}

	return imageURL, true, nil
}
