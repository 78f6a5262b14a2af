package entity

import "mime/multipart"

type CreateCarouselImageRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Alt      string `json:"alt"`
	Order    int    `json:"order"`
}

type UploadCarouselImageRequest struct {
	Title string
	Alt   string
	Order int
	File  *multipart.FileHeader
}

// UploadCarouselBase64Request registers a carousel image from an inline
// data URL ("data:image/png;base64,....").
type UploadCarouselBase64Request struct {
	Title string `json:"title"`
	Alt   string `json:"alt"`
	Order int    `json:"order"`
	Image string `json:"image"`
}

type DeleteCarouselImageResponse struct {
	Message string `json:"message"`
}
