package repository

import (
	"github.com/reshetovitsme/archive-viewer/internal/modules/archive/domain"
)

// Repository defines the interface for loading an archive payload
type Repository interface {
	Load() (domain.Root, error)
	Path() string
}
