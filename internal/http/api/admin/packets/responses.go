package packets

import "time"

// GenerateKeyResponse is returned by POST /clients/:id/generate-key.
type GenerateKeyResponse struct {
	APIKey        string    `json:"apiKey"`
	LastGenerated time.Time `json:"lastGenerated"`
}

// UploadResponse is returned by POST /uploads.
type UploadResponse struct {
	URL string `json:"url"`
}
