package validator

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/nqkhanh/commune-backend/internal/config"
	"github.com/nqkhanh/commune-backend/internal/entity"
)

// Validator validates incoming create/upload requests
type Validator struct {
	cfg config.UploadConfig
}

func NewUploadValidator(cfg config.UploadConfig) *Validator {
	return &Validator{cfg: cfg}
}

func (v *Validator) ValidateCreateDocument(req *entity.CreateDocumentRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title", entity.ErrMissingField)
	}
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("%w: content", entity.ErrMissingField)
	}
	return nil
}

// ValidateWordUpload checks a document upload: only .docx is accepted.
func (v *Validator) ValidateWordUpload(fh *multipart.FileHeader) error {
	if fh == nil {
		return fmt.Errorf("%w: file", entity.ErrMissingField)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".docx" {
		return fmt.Errorf("%w: %s (allowed: docx)", entity.ErrInvalidExtension, ext)
	}

	if fh.Size > v.cfg.MaxDocSize {
		return fmt.Errorf("%w: file '%s' is %d bytes (max %d)", entity.ErrFileTooLarge, fh.Filename, fh.Size, v.cfg.MaxDocSize)
	}

	return nil
}
