package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nqkhanh/commune-backend/internal/entity"
)

func TestFactory_Create(t *testing.T) {
	factory := NewFactory()

	md, err := factory.Create(entity.FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, ".md", md.FileExtension())

	docx, err := factory.Create(entity.FormatDOCX)
	require.NoError(t, err)
	assert.Equal(t, ".docx", docx.FileExtension())

	pdf, err := factory.Create(entity.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, ".pdf", pdf.FileExtension())

	_, err = factory.Create(entity.ExportFormat("xml"))
	assert.ErrorIs(t, err, entity.ErrUnsupportedFormat)
}

func TestMarkdownFormatter(t *testing.T) {
	doc := &entity.Document{
		Title:   "Lịch họp",
		Content: "Họp vào thứ 2",
		Date:    "15/03/2026",
	}

	data, err := NewMarkdownFormatter().Format(doc)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "# Lịch họp")
	assert.Contains(t, out, "*15/03/2026*")
	assert.Contains(t, out, "Họp vào thứ 2")
}
