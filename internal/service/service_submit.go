package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/submit-keeper/internal/logger"
	"github.com/MKhiriev/submit-keeper/internal/store"
	"github.com/MKhiriev/submit-keeper/models"
)

// submitService is the concrete implementation of SubmitService. It is a
// thin policy layer over the SlotRepository: all slot invariants (range
// checks, the filename contract, timestamp monotonicity, atomic persistence)
// live in the repository; this layer adds argument hygiene and operation
// logging for the request path.
type submitService struct {
	slots  store.SlotRepository
	logger *logger.Logger
}

// NewSubmitService constructs a SubmitService wired to the given
// SlotRepository.
func NewSubmitService(slots store.SlotRepository, logger *logger.Logger) SubmitService {
	return &submitService{
		slots:  slots,
		logger: logger,
	}
}

func (s *submitService) GetAllSlots(ctx context.Context, username string) (models.SlotTable, error) {
	if username == "" {
		return nil, ErrInvalidDataProvided
	}

	table, err := s.slots.GetAllSlots(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("loading slot table failed")
		return nil, fmt.Errorf("loading slot table failed: %w", err)
	}

	return table, nil
}

func (s *submitService) InitializeUserTree(ctx context.Context, username string) (models.SlotTable, error) {
	if username == "" {
		return nil, ErrInvalidDataProvided
	}

	table, err := s.slots.InitializeUserTree(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("user tree initialization failed")
		return nil, fmt.Errorf("user tree initialization failed: %w", err)
	}

	return table, nil
}

func (s *submitService) UpdateSlot(ctx context.Context, username string, slotNum int, uploadedFilePath string) error {
	if username == "" || uploadedFilePath == "" {
		return ErrInvalidDataProvided
	}

	if err := s.slots.UpdateSlot(ctx, username, slotNum, uploadedFilePath); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("username", username).
			Int("slot_num", slotNum).
			Msg("slot update failed")
		return err
	}

	return nil
}

func (s *submitService) UpdateSlotStatus(ctx context.Context, username string, slotNum int, statusText string) error {
	if username == "" {
		return ErrInvalidDataProvided
	}

	if err := s.slots.UpdateSlotStatus(ctx, username, slotNum, statusText); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("username", username).
			Int("slot_num", slotNum).
			Msg("slot status update failed")
		return err
	}

	return nil
}

func (s *submitService) SlotFilePath(username string, slotNum int) (string, error) {
	return s.slots.SlotFilePath(username, slotNum)
}
