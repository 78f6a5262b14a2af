package ask

import "github.com/nqkhanh/commune-backend/internal/entity"

// toAskResponse projects the result's reference documents to their public
// shape (internal-only fields dropped).
func toAskResponse(result *entity.AskResult) *entity.AskResponse {
	refs := make([]*entity.DocumentReference, 0, len(result.References))
	for _, doc := range result.References {
		refs = append(refs, &entity.DocumentReference{
			ID:          doc.ID,
			Title:       doc.Title,
			Content:     doc.Content,
			FileType:    doc.FileType,
			HTMLContent: doc.HTMLContent,
			ImageCount:  doc.ImageCount,
			Date:        doc.Date,
		})
	}

	return &entity.AskResponse{
		Answer:     result.Answer,
		References: refs,
	}
}
