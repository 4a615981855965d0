package responses

import "heallink-service/internal/app/models"

// HealthRecord decorates the stored record with a presigned URL when a
// file object is attached.
type HealthRecord struct {
	models.HealthRecord
	FileURL string `json:"fileUrl,omitempty"`
}
