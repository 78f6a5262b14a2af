package entity

import "mime/multipart"

type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatDOCX     ExportFormat = "docx"
	FormatPDF      ExportFormat = "pdf"
)

func (f ExportFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatDOCX, FormatPDF:
		return true
	default:
		return false
	}
}

type CreateDocumentRequest struct {
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	FileType    string  `json:"fileType"`
	HTMLContent *string `json:"htmlContent"`
	ImageCount  int     `json:"imageCount"`
}

// UploadDocumentRequest carries a .docx upload; content, HTML and image
// count are extracted server-side.
type UploadDocumentRequest struct {
	Title string
	File  *multipart.FileHeader
}

type DeleteDocumentResponse struct {
	Message string `json:"message"`
}
