package store

import (
	"github.com/MKhiriev/submit-keeper/internal/layout"
	"github.com/MKhiriev/submit-keeper/internal/logger"
)

// Storages groups the repositories of the submission store into a single
// value that can be passed around the service layer.
type Storages struct {
	CredentialRepository CredentialRepository
	SlotRepository       SlotRepository
}

// NewStorages initialises the storage layer over the given filesystem
// layout. It performs the startup probe of the top directory; failure here
// is fatal and the caller must refuse to serve.
func NewStorages(l *layout.Layout, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("top_dir", l.TopDir()).Msg("creating storages...")

	if err := l.CheckTopDir(); err != nil {
		return nil, err
	}

	return &Storages{
		CredentialRepository: NewCredentialRepository(l, logger),
		SlotRepository:       NewSlotRepository(l, logger),
	}, nil
}
