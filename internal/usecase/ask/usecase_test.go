package ask

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nqkhanh/commune-backend/internal/entity"
)

// fakeDocumentRepo matches case-insensitive literal substrings in memory,
// mirroring the SQL contract of the real repository.
type fakeDocumentRepo struct {
	docs       []*entity.Document
	searchErr  error
	recentErr  error
	searchHits int
}

func (f *fakeDocumentRepo) Create(ctx context.Context, doc entity.Document) (*entity.Document, error) {
	return &doc, nil
}

func (f *fakeDocumentRepo) Get(ctx context.Context, id string) (*entity.Document, error) {
	return nil, entity.ErrDocumentNotFound
}

func (f *fakeDocumentRepo) List(ctx context.Context) ([]*entity.Document, error) {
	return f.docs, nil
}

func (f *fakeDocumentRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Document, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	// docs are held newest first already
	if len(f.docs) > limit {
		return f.docs[:limit], nil
	}
	return f.docs, nil
}

func (f *fakeDocumentRepo) SearchLiteral(ctx context.Context, question string, limit int) ([]*entity.Document, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	f.searchHits++

	needle := strings.ToLower(question)
	var matches []*entity.Document
	for _, doc := range f.docs {
		if len(matches) == limit {
			break
		}
		if strings.Contains(strings.ToLower(doc.Title), needle) ||
			strings.Contains(strings.ToLower(doc.Content), needle) {
			matches = append(matches, doc)
		}
	}
	return matches, nil
}

func (f *fakeDocumentRepo) Delete(ctx context.Context, id string) (bool, error) {
	return false, nil
}

type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func doc(title, content string) *entity.Document {
	return &entity.Document{
		ID:       "id-" + title,
		Title:    title,
		Content:  content,
		FileType: entity.FileTypeText,
		Date:     "15/03/2026",
	}
}

func TestAsk_LiteralMatch(t *testing.T) {
	ctx := context.Background()
	repo := &fakeDocumentRepo{docs: []*entity.Document{
		doc("Lịch họp", "Họp vào thứ 2"),
		doc("Thông báo khác", "Nội dung không liên quan"),
	}}
	gen := &fakeGenerator{response: "Cuộc họp diễn ra vào thứ 2."}
	uc := NewUsecase(repo, gen, zap.NewNop())

	result, err := uc.Ask(ctx, "lịch")
	require.NoError(t, err)

	require.Len(t, result.References, 1)
	assert.Equal(t, "Lịch họp", result.References[0].Title)
	assert.Equal(t, "Cuộc họp diễn ra vào thứ 2.", result.Answer)

	require.Len(t, gen.prompts, 1)
	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "Mục 1: Lịch họp")
	assert.Contains(t, prompt, "Câu hỏi: lịch")
	assert.True(t, strings.HasSuffix(prompt, "Trả lời chi tiết:"))
}

func TestAsk_MatchesCappedAtSix(t *testing.T) {
	ctx := context.Background()
	repo := &fakeDocumentRepo{}
	for i := 0; i < 10; i++ {
		repo.docs = append(repo.docs, doc(fmt.Sprintf("Thông báo %d", i), "lịch nghỉ lễ"))
	}
	gen := &fakeGenerator{response: "ok"}
	uc := NewUsecase(repo, gen, zap.NewNop())

	result, err := uc.Ask(ctx, "lịch")
	require.NoError(t, err)
	assert.Len(t, result.References, 6)
}

func TestAsk_MetacharacterQuestionIsLiteral(t *testing.T) {
	ctx := context.Background()
	repo := &fakeDocumentRepo{docs: []*entity.Document{
		doc("Thông báo", "văn bản a.b*c đặc biệt"),
		doc("Khác", "abc"),
	}}
	gen := &fakeGenerator{response: "ok"}
	uc := NewUsecase(repo, gen, zap.NewNop())

	result, err := uc.Ask(ctx, "a.b*c")
	require.NoError(t, err)
	require.Len(t, result.References, 1)
	assert.Equal(t, "Thông báo", result.References[0].Title)

	// pure metacharacter noise still works and falls back on recency
	result, err = uc.Ask(ctx, "...")
	require.NoError(t, err)
	assert.Len(t, result.References, 2)
}

func TestAsk_FallbackToRecent(t *testing.T) {
	ctx := context.Background()
	repo := &fakeDocumentRepo{docs: []*entity.Document{
		doc("Mới nhất", "nội dung"),
		doc("Cũ hơn", "nội dung"),
	}}
	gen := &fakeGenerator{response: "ok"}
	uc := NewUsecase(repo, gen, zap.NewNop())

	result, err := uc.Ask(ctx, "không khớp gì cả")
	require.NoError(t, err)

	require.Len(t, result.References, 2)
	assert.Equal(t, "Mới nhất", result.References[0].Title)
}

func TestAsk_EmptyCorpus(t *testing.T) {
	ctx := context.Background()
	repo := &fakeDocumentRepo{}
	gen := &fakeGenerator{response: ""}
	uc := NewUsecase(repo, gen, zap.NewNop())

	result, err := uc.Ask(ctx, "xyz")
	require.NoError(t, err)

	assert.Empty(t, result.References)
	assert.Equal(t, noAnswerMessage, result.Answer)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], noDataPlaceholder)
}

func TestAsk_WhitespaceAnswerSubstituted(t *testing.T) {
	ctx := context.Background()
	repo := &fakeDocumentRepo{docs: []*entity.Document{doc("Lịch họp", "Họp vào thứ 2")}}
	gen := &fakeGenerator{response: "   "}
	uc := NewUsecase(repo, gen, zap.NewNop())

	result, err := uc.Ask(ctx, "lịch")
	require.NoError(t, err)
	assert.Equal(t, noAnswerMessage, result.Answer)
}

func TestAsk_GeneratorNotConfigured(t *testing.T) {
	repo := &fakeDocumentRepo{docs: []*entity.Document{doc("Lịch họp", "Họp vào thứ 2")}}
	uc := NewUsecase(repo, nil, zap.NewNop())

	_, err := uc.Ask(context.Background(), "lịch")
	assert.ErrorIs(t, err, entity.ErrGeneratorNotConfigured)
	// the store must not be touched when no generator is configured
	assert.Zero(t, repo.searchHits)
}

func TestAsk_GenerationFailureSurfaces(t *testing.T) {
	repo := &fakeDocumentRepo{docs: []*entity.Document{doc("Lịch họp", "Họp vào thứ 2")}}
	gen := &fakeGenerator{err: errors.New("service unavailable")}
	uc := NewUsecase(repo, gen, zap.NewNop())

	_, err := uc.Ask(context.Background(), "lịch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate answer")
	// exactly one attempt: failures are not retried
	assert.Len(t, gen.prompts, 1)
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	docs := []*entity.Document{doc("Lịch họp", "Họp vào thứ 2")}
	first := BuildPrompt("lịch", docs)
	second := BuildPrompt("lịch", docs)
	assert.Equal(t, first, second)
}

func TestBuildPrompt_WordImageAnnotation(t *testing.T) {
	html := "<p>Nội dung</p>"
	wordDoc := &entity.Document{
		ID:          "w1",
		Title:       "Quy hoạch",
		Content:     "Nội dung quy hoạch",
		FileType:    entity.FileTypeWord,
		HTMLContent: &html,
		ImageCount:  3,
		Date:        "01/02/2026",
	}

	prompt := BuildPrompt("quy hoạch", []*entity.Document{wordDoc})
	assert.Contains(t, prompt, "có 3 hình ảnh đính kèm")

	textDoc := doc("Quy hoạch", "Nội dung quy hoạch")
	textDoc.ImageCount = 3
	prompt = BuildPrompt("quy hoạch", []*entity.Document{textDoc})
	assert.NotContains(t, prompt, "hình ảnh đính kèm")
}

func TestBuildPrompt_EmptyList(t *testing.T) {
	prompt := BuildPrompt("xyz", nil)
	assert.Contains(t, prompt, noDataPlaceholder)
	assert.Contains(t, prompt, "Câu hỏi: xyz")
}
