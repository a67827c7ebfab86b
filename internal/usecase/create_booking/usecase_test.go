package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	availabilityStore "github.com/m04kA/SMC-TerminalService/internal/infra/storage/availability"
	containerRepo "github.com/m04kA/SMC-TerminalService/internal/infra/storage/container"
	"github.com/m04kA/SMC-TerminalService/pkg/idgen"
	"github.com/m04kA/SMC-TerminalService/pkg/types"
)

type fakeContainerRepo struct {
	containers   map[string]*domain.Container
	appointments map[string]types.TimeString
}

func newFakeContainerRepo(containers ...*domain.Container) *fakeContainerRepo {
	repo := &fakeContainerRepo{
		containers:   make(map[string]*domain.Container),
		appointments: make(map[string]types.TimeString),
	}
	for _, c := range containers {
		repo.containers[c.ID] = c
	}
	return repo
}

func (r *fakeContainerRepo) GetByID(_ context.Context, id string) (*domain.Container, error) {
	c, ok := r.containers[id]
	if !ok {
		return nil, containerRepo.ErrContainerNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeContainerRepo) SetAppointment(_ context.Context, id string, _ time.Time, hour types.TimeString) error {
	if _, ok := r.containers[id]; !ok {
		return containerRepo.ErrContainerNotFound
	}
	r.containers[id].Scheduled = true
	r.appointments[id] = hour
	return nil
}

type fakeBookingRepo struct {
	created []*domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	stored := *booking
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.created = append(r.created, &stored)
	return &stored, nil
}

type fakeAvailability struct {
	open     map[string]map[types.TimeString]struct{}
	consumed []string
}

func newFakeAvailability() *fakeAvailability {
	return &fakeAvailability{open: make(map[string]map[types.TimeString]struct{})}
}

func (a *fakeAvailability) add(date time.Time, hours ...types.TimeString) {
	key := date.Format(domain.DateFormat)
	if a.open[key] == nil {
		a.open[key] = make(map[types.TimeString]struct{})
	}
	for _, h := range hours {
		a.open[key][h] = struct{}{}
	}
}

func (a *fakeAvailability) Consume(_ context.Context, date time.Time, hour types.TimeString) error {
	key := date.Format(domain.DateFormat)
	if _, ok := a.open[key][hour]; !ok {
		return availabilityStore.ErrSlotTaken
	}
	delete(a.open[key], hour)
	a.consumed = append(a.consumed, key+" "+hour.String())
	return nil
}

type fakeTxManager struct{}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (l *noopLogger) Info(string, ...interface{})  {}
func (l *noopLogger) Warn(string, ...interface{})  {}
func (l *noopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, value string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(value)
	require.NoError(t, err)
	return ts
}

func TestUseCase_Execute_Success(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	hour := mustTime(t, "09:30")

	containers := newFakeContainerRepo(&domain.Container{ID: "CONT-777"})
	bookings := &fakeBookingRepo{}
	avail := newFakeAvailability()
	avail.add(date, hour)

	uc := NewUseCase(containers, bookings, avail,
		idgen.NewSequence(domain.BookingIDPrefix, domain.BookingIDBase),
		&fakeTxManager{}, &noopLogger{}).WithTimeProvider(&fixedTimeProvider{now: now})

	resp, err := uc.Execute(context.Background(), &Request{
		ContainerID: "CONT-777",
		Date:        date,
		StartTime:   hour,
	})
	require.NoError(t, err)

	assert.Equal(t, "BK-10001", resp.ID)
	assert.Equal(t, "CONT-777", resp.ContainerID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, "Appointment scheduled for 2026-09-04 at 09:30", resp.Message)

	require.Len(t, bookings.created, 1)
	assert.True(t, containers.containers["CONT-777"].Scheduled)
	assert.Equal(t, hour, containers.appointments["CONT-777"])
	assert.Len(t, avail.consumed, 1)
}

func TestUseCase_Execute_IDsStrictlyIncreasing(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	containers := newFakeContainerRepo(
		&domain.Container{ID: "CONT-1"},
		&domain.Container{ID: "CONT-2"},
	)
	avail := newFakeAvailability()
	avail.add(date, mustTime(t, "08:00"), mustTime(t, "08:30"))

	uc := NewUseCase(containers, &fakeBookingRepo{}, avail,
		idgen.NewSequence(domain.BookingIDPrefix, domain.BookingIDBase),
		&fakeTxManager{}, &noopLogger{}).WithTimeProvider(&fixedTimeProvider{now: now})

	first, err := uc.Execute(context.Background(), &Request{
		ContainerID: "CONT-1", Date: date, StartTime: mustTime(t, "08:00"),
	})
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), &Request{
		ContainerID: "CONT-2", Date: date, StartTime: mustTime(t, "08:30"),
	})
	require.NoError(t, err)

	assert.Equal(t, "BK-10001", first.ID)
	assert.Equal(t, "BK-10002", second.ID)
}

func TestUseCase_Execute_ContainerNotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	hour := mustTime(t, "09:30")

	avail := newFakeAvailability()
	avail.add(date, hour)

	uc := NewUseCase(newFakeContainerRepo(), &fakeBookingRepo{}, avail,
		idgen.NewSequence(domain.BookingIDPrefix, domain.BookingIDBase),
		&fakeTxManager{}, &noopLogger{}).WithTimeProvider(&fixedTimeProvider{now: now})

	_, err := uc.Execute(context.Background(), &Request{
		ContainerID: "CONT-999", Date: date, StartTime: hour,
	})
	assert.ErrorIs(t, err, ErrContainerNotFound)

	// Слот не тронут: изъятие идет после проверки контейнера
	assert.Empty(t, avail.consumed)
}

func TestUseCase_Execute_ContainerAlreadyScheduled(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	hour := mustTime(t, "09:30")

	containers := newFakeContainerRepo(&domain.Container{ID: "CONT-777", Scheduled: true})
	avail := newFakeAvailability()
	avail.add(date, hour)

	uc := NewUseCase(containers, &fakeBookingRepo{}, avail,
		idgen.NewSequence(domain.BookingIDPrefix, domain.BookingIDBase),
		&fakeTxManager{}, &noopLogger{}).WithTimeProvider(&fixedTimeProvider{now: now})

	_, err := uc.Execute(context.Background(), &Request{
		ContainerID: "CONT-777", Date: date, StartTime: hour,
	})
	assert.ErrorIs(t, err, ErrContainerAlreadyScheduled)
	assert.Empty(t, avail.consumed)
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	hour := mustTime(t, "09:30")

	containers := newFakeContainerRepo(
		&domain.Container{ID: "CONT-1"},
		&domain.Container{ID: "CONT-2"},
	)
	bookings := &fakeBookingRepo{}
	avail := newFakeAvailability()
	avail.add(date, hour)

	uc := NewUseCase(containers, bookings, avail,
		idgen.NewSequence(domain.BookingIDPrefix, domain.BookingIDBase),
		&fakeTxManager{}, &noopLogger{}).WithTimeProvider(&fixedTimeProvider{now: now})

	_, err := uc.Execute(context.Background(), &Request{
		ContainerID: "CONT-1", Date: date, StartTime: hour,
	})
	require.NoError(t, err)

	// Второй запрос на тот же час проигрывает
	_, err = uc.Execute(context.Background(), &Request{
		ContainerID: "CONT-2", Date: date, StartTime: hour,
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Len(t, bookings.created, 1)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	uc := NewUseCase(newFakeContainerRepo(), &fakeBookingRepo{}, newFakeAvailability(),
		idgen.NewSequence(domain.BookingIDPrefix, domain.BookingIDBase),
		&fakeTxManager{}, &noopLogger{}).WithTimeProvider(&fixedTimeProvider{now: now})

	tests := []struct {
		name string
		req  *Request
		want error
	}{
		{
			name: "empty container id",
			req:  &Request{Date: date, StartTime: mustTime(t, "09:30")},
			want: ErrInvalidInput,
		},
		{
			name: "zero date",
			req:  &Request{ContainerID: "CONT-1", StartTime: mustTime(t, "09:30")},
			want: ErrInvalidInput,
		},
		{
			name: "missing start time",
			req:  &Request{ContainerID: "CONT-1", Date: date},
			want: ErrInvalidInput,
		},
		{
			name: "date in the past",
			req: &Request{
				ContainerID: "CONT-1",
				Date:        time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
				StartTime:   mustTime(t, "09:30"),
			},
			want: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
