package usecase

import (
	"context"
)

// Storage is the object-storage collaborator: write bytes under a folder and
// get back a publicly resolvable URL, delete by object name, list by prefix.
type Storage interface {
	Upload(ctx context.Context, data []byte, contentType, folder string) (url, objectName string, err error)
	Delete(ctx context.Context, objectName string) error
	List(ctx context.Context, prefix string) ([]string, error)
}
