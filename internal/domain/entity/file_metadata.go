package entity

import (
	"time"
)

type FileMetadata struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	ObjectName string    `json:"object_name"`
	EntityType string    `json:"entity_type,omitempty"`
	EntityID   string    `json:"entity_id,omitempty"`
	UploadedBy string    `json:"uploaded_by,omitempty"`
	Filename   string    `json:"filename"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
