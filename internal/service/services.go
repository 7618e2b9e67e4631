package service

import (
	"github.com/MKhiriev/submit-keeper/internal/config"
	"github.com/MKhiriev/submit-keeper/internal/logger"
	"github.com/MKhiriev/submit-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	SubmitService  SubmitService
	ContestService ContestService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.CredentialRepository, cfg.Password, logger),
		SubmitService:  NewSubmitService(storages.SlotRepository, logger),
		ContestService: NewContestService(cfg.Contest),
	}
}
