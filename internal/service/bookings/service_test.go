package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TerminalService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TerminalService/internal/service/bookings/models"
	"github.com/m04kA/SMC-TerminalService/pkg/ptr"
	"github.com/m04kA/SMC-TerminalService/pkg/types"
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func newFakeBookingRepo(items ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
	for _, b := range items {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) List(_ context.Context, status *domain.BookingStatus) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id string) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if b.Status != domain.StatusScheduled {
		return bookingRepo.ErrCannotCancel
	}
	b.Status = domain.StatusCancelled
	return nil
}

type fakeContainerRepo struct {
	cleared []string
}

func (r *fakeContainerRepo) ClearAppointment(_ context.Context, id string) error {
	r.cleared = append(r.cleared, id)
	return nil
}

type fakeTxManager struct{}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (l *noopLogger) Info(string, ...interface{})  {}
func (l *noopLogger) Warn(string, ...interface{})  {}
func (l *noopLogger) Error(string, ...interface{}) {}

func scheduledBooking(id, containerID string) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		ContainerID: containerID,
		Date:        time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("09:30"),
		Status:      domain.StatusScheduled,
	}
}

func TestService_GetByID(t *testing.T) {
	repo := newFakeBookingRepo(scheduledBooking("BK-10001", "CONT-1"))
	svc := NewService(repo, &fakeContainerRepo{}, &fakeTxManager{}, &noopLogger{})

	resp, err := svc.GetByID(context.Background(), "BK-10001")
	require.NoError(t, err)
	assert.Equal(t, "BK-10001", resp.ID)
	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Equal(t, "09:30", resp.StartTime)

	_, err = svc.GetByID(context.Background(), "BK-99999")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_List_FilterByStatus(t *testing.T) {
	cancelled := scheduledBooking("BK-10002", "CONT-2")
	cancelled.Status = domain.StatusCancelled

	repo := newFakeBookingRepo(scheduledBooking("BK-10001", "CONT-1"), cancelled)
	svc := NewService(repo, &fakeContainerRepo{}, &fakeTxManager{}, &noopLogger{})

	result, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr(string(domain.StatusScheduled)),
	})
	require.NoError(t, err)
	require.Len(t, result.Bookings, 1)
	assert.Equal(t, "BK-10001", result.Bookings[0].ID)

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("bogus")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Cancel(t *testing.T) {
	repo := newFakeBookingRepo(scheduledBooking("BK-10001", "CONT-1"))
	containers := &fakeContainerRepo{}
	svc := NewService(repo, containers, &fakeTxManager{}, &noopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), "BK-10001"))

	assert.Equal(t, domain.StatusCancelled, repo.bookings["BK-10001"].Status)
	assert.Equal(t, []string{"CONT-1"}, containers.cleared)

	// Повторная отмена отклоняется
	err := svc.Cancel(context.Background(), "BK-10001")
	assert.ErrorIs(t, err, ErrCannotCancel)

	err = svc.Cancel(context.Background(), "BK-99999")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
