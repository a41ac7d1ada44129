package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/obdlog/internal/domain"
	"github.com/bnema/obdlog/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveServiceIngest(t *testing.T) {
	service, _ := newTestService(t, sampleTranscript)
	archive := mocks.NewMockSessionArchive(t)
	clock := mocks.NewMockClock(t)
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)

	archiveService := NewArchiveService(service, archive, clock)
	archiveService.newID = func() string { return "session-1" }

	want := domain.ArchivedSession{
		ID:         "session-1",
		Source:     "drive.log",
		Protocol:   "0",
		IngestedAt: now,
		Commands:   []domain.ParsedCommand{{Name: "ATSP0", Response: []string{"OK"}}},
		Responses: []domain.PIDRecord{
			{Request: "0100", Response: []string{"4100BE3FA813"}},
			{Request: "010C", Response: []string{"410C1AF8"}},
			{Request: "010D", Response: []string{"410D32"}},
		},
	}
	archive.EXPECT().SaveSession(mockAnyContext(), want).Return(nil)

	got, err := archiveService.Ingest(context.Background(), "drive.log")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestArchiveServiceIngestWrapsArchiveError(t *testing.T) {
	service, _ := newTestService(t, sampleTranscript)
	archive := mocks.NewMockSessionArchive(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Now())
	archive.EXPECT().SaveSession(mockAnyContext(), anyArchivedSession()).Return(errors.New("disk full"))

	_, err := NewArchiveService(service, archive, clock).Ingest(context.Background(), "drive.log")
	require.Error(t, err)
	assert.ErrorContains(t, err, "archive session: disk full")
}

func TestArchiveServiceHistory(t *testing.T) {
	service, _ := newTestService(t, "")
	archive := mocks.NewMockSessionArchive(t)
	history := []domain.ArchivedResponse{{SessionID: "s1", Request: "010C", Response: []string{"410C1AF8"}}}
	archive.EXPECT().History(mockAnyContext(), "010c", DefaultHistoryLimit).Return(history, nil)

	got, err := NewArchiveService(service, archive, nil).History(context.Background(), HistoryQuery{PID: "010c"})
	require.NoError(t, err)
	assert.Equal(t, history, got)
}

func TestArchiveServiceHistoryRejectsNonHexPID(t *testing.T) {
	service, _ := newTestService(t, "")
	archive := mocks.NewMockSessionArchive(t)

	_, err := NewArchiveService(service, archive, nil).History(context.Background(), HistoryQuery{PID: "rpm"})
	require.ErrorIs(t, err, domain.ErrPIDNotFound)
}

func anyArchivedSession() interface{} {
	return mockMatchedBy(func(domain.ArchivedSession) bool { return true })
}
