package validator

import (
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/nqkhanh/commune-backend/internal/entity"
)

var AllowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var base64ImageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func (v *Validator) ValidateCreateCarousel(req *entity.CreateCarouselImageRequest) error {
	// title, alt and order are default-filled on purpose; only the URL
	// is required.
	if strings.TrimSpace(req.ImageURL) == "" {
		return fmt.Errorf("%w: imageUrl", entity.ErrMissingField)
	}
	return nil
}

func (v *Validator) ValidateImageUpload(fh *multipart.FileHeader) error {
	if fh == nil {
		return fmt.Errorf("%w: image", entity.ErrMissingField)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !AllowedImageExtensions[ext] {
		return fmt.Errorf("%w: %s (allowed: jpg, jpeg, png, gif, webp)", entity.ErrInvalidExtension, ext)
	}

	if fh.Size > v.cfg.MaxImageSize {
		return fmt.Errorf("%w: image '%s' is %d bytes (max %d)", entity.ErrFileTooLarge, fh.Filename, fh.Size, v.cfg.MaxImageSize)
	}

	return nil
}

// ParseBase64Image decodes a "data:image/...;base64,..." payload and
// returns the raw bytes plus the extension matching its mime type.
func (v *Validator) ParseBase64Image(payload string) ([]byte, string, error) {
	if payload == "" {
		return nil, "", fmt.Errorf("%w: image", entity.ErrMissingField)
	}

	header, encoded, found := strings.Cut(payload, ",")
	if !found || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return nil, "", entity.ErrInvalidBase64
	}

	mimeType := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	ext, ok := base64ImageExtensions[mimeType]
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", entity.ErrInvalidExtension, mimeType)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", entity.ErrInvalidBase64, err)
	}

	if int64(len(data)) > v.cfg.MaxImageSize {
		return nil, "", fmt.Errorf("%w: decoded image is %d bytes (max %d)", entity.ErrFileTooLarge, len(data), v.cfg.MaxImageSize)
	}

	return data, ext, nil
}
