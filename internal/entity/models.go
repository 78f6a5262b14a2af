package entity

import (
	"fmt"
	"time"
)

type FileType string

// File type distinguishes plain text entries from Word-derived ones.
// Only word documents may carry rendered HTML content.
const (
	FileTypeText FileType = "text"
	FileTypeWord FileType = "word"
)

func (ft FileType) Validate() error {
	switch ft {
	case FileTypeText, FileTypeWord:
		return nil
	default:
		return fmt.Errorf("%w: file type %q", ErrInvalidParameter, string(ft))
	}
}

// Document is a stored announcement entry. It serves both as displayed
// content and as retrieval context for question answering. Documents are
// immutable after creation.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	FileType    FileType  `json:"fileType"`
	HTMLContent *string   `json:"htmlContent,omitempty"`
	ImageCount  int       `json:"imageCount"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CarouselImage is a homepage carousel entry. ImageURL is either an
// external URL or a locally hosted /uploads/ path.
type CarouselImage struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	Alt       string    `json:"alt"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

// AskResult is the outcome of one question-answering pass: the generated
// answer plus the documents that were fed to the generator as context.
type AskResult struct {
	Answer     string
	References []*Document
}
