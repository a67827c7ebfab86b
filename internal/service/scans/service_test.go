package scans

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	"github.com/m04kA/SMC-TerminalService/pkg/idgen"
)

type fakeScanRepo struct {
	events []*domain.ScanEvent
}

func (r *fakeScanRepo) Append(_ context.Context, event *domain.ScanEvent) (*domain.ScanEvent, error) {
	stored := *event
	stored.CreatedAt = time.Now()
	r.events = append(r.events, &stored)
	return &stored, nil
}

func (r *fakeScanRepo) List(_ context.Context) ([]*domain.ScanEvent, error) {
	// От новых к старым, как в репозитории
	result := make([]*domain.ScanEvent, 0, len(r.events))
	for i := len(r.events) - 1; i >= 0; i-- {
		result = append(result, r.events[i])
	}
	return result, nil
}

type noopLogger struct{}

func (l *noopLogger) Info(string, ...interface{})  {}
func (l *noopLogger) Warn(string, ...interface{})  {}
func (l *noopLogger) Error(string, ...interface{}) {}

func TestService_Append_AssignsSequentialIDs(t *testing.T) {
	repo := &fakeScanRepo{}
	svc := NewService(repo, idgen.NewPaddedSequence(domain.ScanIDPrefix, 0, domain.ScanIDPadding), &noopLogger{})

	first, err := svc.Append(context.Background(), &domain.ScanEvent{BookingID: "BK-10001", Confirmed: true})
	require.NoError(t, err)

	second, err := svc.Append(context.Background(), &domain.ScanEvent{BookingID: "BK-10002", Confirmed: true})
	require.NoError(t, err)

	assert.Equal(t, "SC-001", first.ID)
	assert.Equal(t, "SC-002", second.ID)
}

func TestService_Append_RequiresBookingID(t *testing.T) {
	svc := NewService(&fakeScanRepo{}, idgen.NewPaddedSequence(domain.ScanIDPrefix, 0, domain.ScanIDPadding), &noopLogger{})

	_, err := svc.Append(context.Background(), &domain.ScanEvent{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List_NewestFirst(t *testing.T) {
	repo := &fakeScanRepo{}
	svc := NewService(repo, idgen.NewPaddedSequence(domain.ScanIDPrefix, 0, domain.ScanIDPadding), &noopLogger{})

	_, err := svc.Append(context.Background(), &domain.ScanEvent{BookingID: "BK-10001", Confirmed: true})
	require.NoError(t, err)
	_, err = svc.Append(context.Background(), &domain.ScanEvent{BookingID: "BK-10002", Confirmed: true})
	require.NoError(t, err)

	result, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Scans, 2)
	assert.Equal(t, "SC-002", result.Scans[0].ID)
	assert.Equal(t, "SC-001", result.Scans[1].ID)
}
