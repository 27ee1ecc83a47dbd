package repository

import (
	"context"

	"github.com/lingolog/lingolog/internal/entity"
)

// ListLogQuery holds parameters for listing a user's immersion logs.
type ListLogQuery struct {
	Pagination
	FilterOrder

	UserID int64
}

// LogRepository abstracts persistence for immersion logs. Create and
// ReplaceAttachments persist the log together with its registration
// attachment rows in one transaction.
type LogRepository interface {
	Create(ctx context.Context, log *entity.Log) (*entity.Log, error)
	GetByID(ctx context.Context, userID int64, id string) (*entity.Log, error)
	List(ctx context.Context, query *ListLogQuery) ([]entity.Log, int64, error)
	ReplaceAttachments(ctx context.Context, userID int64, logID string, registrationIDs []string) (*entity.Log, error)
	Delete(ctx context.Context, userID int64, id string) error

	// DetachRegistration removes a registration's attachments from logs in
	// the given languages without deleting the logs.
	DetachRegistration(ctx context.Context, registrationID string, languageCodes []string) error
}
