package service

import (
	"github.com/rpassos/autoescola/internal/logger"
	"github.com/rpassos/autoescola/internal/store"
)

// Services groups every application service behind one value handed to the
// UI layer.
type Services struct {
	Auth      AuthService
	Students  StudentService
	Documents DocumentService
}

func NewServices(storages *store.Storages, log *logger.Logger) *Services {
	return &Services{
		Auth:      NewAuthService(storages.Accounts, storages.Sessions, log),
		Students:  NewStudentService(storages.Students, storages.Documents, log),
		Documents: NewDocumentService(storages.Documents, storages.Students, log),
	}
}
