package dto

// UploadResponse is the result of a completed file upload. URL is the stored
// path, prefixed with the asset base URL when one is configured.
type UploadResponse struct {
	URL string `json:"url" example:"uploads/video/7c9e.mp4"`
}
