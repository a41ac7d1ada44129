package ports

import (
	"context"

	"github.com/bnema/obdlog/internal/domain"
)

type SessionArchive interface {
	SaveSession(ctx context.Context, session domain.ArchivedSession) error
	History(ctx context.Context, request string, limit int) ([]domain.ArchivedResponse, error)
}
