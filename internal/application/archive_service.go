package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/obdlog/internal/domain"
	"github.com/bnema/obdlog/internal/ports"
	"github.com/google/uuid"
)

const DefaultHistoryLimit = 20

type ArchiveService struct {
	service *Service
	archive ports.SessionArchive
	clock   ports.Clock
	newID   func() string
}

func NewArchiveService(service *Service, archive ports.SessionArchive, clock ports.Clock) *ArchiveService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ArchiveService{service: service, archive: archive, clock: clock, newID: uuid.NewString}
}

// Ingest parses the transcript at path and stores the session with every
// PID response it contains.
func (s *ArchiveService) Ingest(ctx context.Context, path string) (domain.ArchivedSession, error) {
	session, err := s.service.Analyze(ctx, path)
	if err != nil {
		return domain.ArchivedSession{}, err
	}

	archived := domain.ArchivedSession{
		ID:         domain.SessionID(s.newID()),
		Source:     path,
		Protocol:   session.LastProtocol,
		IngestedAt: s.clock.Now().UTC(),
		Commands:   session.Commands,
		Responses:  session.PIDResponses.Entries(),
	}

	if err := s.archive.SaveSession(ctx, archived); err != nil {
		return domain.ArchivedSession{}, fmt.Errorf("archive session: %w", err)
	}

	s.service.logger.Info().
		Str("session", string(archived.ID)).
		Str("source", path).
		Int("responses", len(archived.Responses)).
		Msg("session archived")

	return archived, nil
}

func (s *ArchiveService) History(ctx context.Context, query HistoryQuery) ([]domain.ArchivedResponse, error) {
	pid := strings.TrimSpace(query.PID)
	if pid == "" || !domain.IsHex(pid) {
		return nil, fmt.Errorf("%w: %q", domain.ErrPIDNotFound, query.PID)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	history, err := s.archive.History(ctx, pid, limit)
	if err != nil {
		return nil, fmt.Errorf("query archive: %w", err)
	}
	return history, nil
}
