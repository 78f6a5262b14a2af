package entity

type AskRequest struct {
	Question string `json:"question"`
}

// DocumentReference is the public projection of a context document
// returned alongside the generated answer. Internal-only fields
// (createdAt) are omitted.
type DocumentReference struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	FileType    FileType `json:"fileType"`
	HTMLContent *string  `json:"htmlContent"`
	ImageCount  int      `json:"imageCount"`
	Date        string   `json:"date"`
}

type AskResponse struct {
	Answer     string               `json:"answer"`
	References []*DocumentReference `json:"references"`
}
