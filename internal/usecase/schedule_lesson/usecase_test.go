package schedule_lesson

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	"github.com/fitlink/FL-SchedulingService/internal/infra/events"
	lessonRepo "github.com/fitlink/FL-SchedulingService/internal/infra/storage/lesson"
	"github.com/fitlink/FL-SchedulingService/pkg/ptr"
	"github.com/fitlink/FL-SchedulingService/pkg/types"
)

// --- моки коллабораторов ---

type mockLessonRepo struct {
	existing    []*domain.Lesson
	createdWith *domain.Lesson
	createErr   error
	getErr      error
	getCalls    int
	createCalls int
}

func (m *mockLessonRepo) Create(_ context.Context, lesson *domain.Lesson) (*domain.Lesson, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.createdWith = lesson
	created := *lesson
	created.ID = 42
	created.CreatedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	return &created, nil
}

func (m *mockLessonRepo) GetByCoachWithFilter(_ context.Context, _ domain.CoachScheduleFilter) ([]*domain.Lesson, error) {
	m.getCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.existing, nil
}

type mockPublisher struct {
	clientRecord  int
	weekly        int
	coachCalendar int
	scheduled     []events.LessonScheduledEvent
}

func (m *mockPublisher) ClientRecordChanged(_ context.Context, _ int64)   { m.clientRecord++ }
func (m *mockPublisher) WeeklyScheduleChanged(_ context.Context, _ int64) { m.weekly++ }
func (m *mockPublisher) CoachCalendarChanged(_ context.Context, _ int64)  { m.coachCalendar++ }
func (m *mockPublisher) LessonScheduled(_ context.Context, e events.LessonScheduledEvent) {
	m.scheduled = append(m.scheduled, e)
}

// mockTxManager выполняет функцию без реальной транзакции
type mockTxManager struct {
	calls int
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *mockLessonRepo, pub *mockPublisher, tx *mockTxManager) *UseCase {
	uc := NewUseCase(repo, tx, pub, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func mustTime(t *testing.T, hhmm string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(hhmm)
	require.NoError(t, err)
	return ts
}

// --- тесты ---

func TestExecute_Success(t *testing.T) {
	repo := &mockLessonRepo{}
	pub := &mockPublisher{}
	tx := &mockTxManager{}
	uc := newTestUseCase(repo, pub, tx)

	// Зона с большим смещением: результат не должен зависеть от зоны хоста
	loc := time.FixedZone("UTC+13", 13*3600)

	resp, err := uc.Execute(context.Background(), &Request{
		CoachID:   1,
		ClientID:  7,
		Date:      time.Date(2024, 3, 10, 0, 0, 0, 0, loc),
		TimeOfDay: "2:30 PM",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.SourceSingle), resp.Source)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, domain.DefaultLessonDurationMinutes, resp.DurationMinutes)

	// Wall-clock дата и время сохраняются по полям, без прохода через UTC
	assert.Equal(t, 2024, resp.LocalDateTime.Year())
	assert.Equal(t, time.March, resp.LocalDateTime.Month())
	assert.Equal(t, 10, resp.LocalDateTime.Day())
	assert.Equal(t, 14, resp.LocalDateTime.Hour())
	assert.Equal(t, 30, resp.LocalDateTime.Minute())

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, pub.clientRecord)
	assert.Equal(t, 1, pub.weekly)
	assert.Equal(t, 1, pub.coachCalendar)
	require.Len(t, pub.scheduled, 1)
	assert.Equal(t, 1, pub.scheduled[0].TotalLessons)
}

func TestExecute_CustomDuration(t *testing.T) {
	repo := &mockLessonRepo{}
	uc := newTestUseCase(repo, &mockPublisher{}, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{
		CoachID:         1,
		ClientID:        7,
		Date:            time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		TimeOfDay:       "9:00 AM",
		DurationMinutes: 90,
	})

	require.NoError(t, err)
	assert.Equal(t, 90, resp.DurationMinutes)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "zero coach id",
			req:  &Request{CoachID: 0, ClientID: 7, Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), TimeOfDay: "2:30 PM"},
		},
		{
			name: "zero client id",
			req:  &Request{CoachID: 1, ClientID: 0, Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), TimeOfDay: "2:30 PM"},
		},
		{
			name: "missing date",
			req:  &Request{CoachID: 1, ClientID: 7, TimeOfDay: "2:30 PM"},
		},
		{
			name: "missing time",
			req:  &Request{CoachID: 1, ClientID: 7, Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "negative duration",
			req:  &Request{CoachID: 1, ClientID: 7, Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), TimeOfDay: "2:30 PM", DurationMinutes: -30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockLessonRepo{}
			tx := &mockTxManager{}
			uc := newTestUseCase(repo, &mockPublisher{}, tx)

			resp, err := uc.Execute(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInvalidInput)
			// Валидация отрабатывает до обращений к коллабораторам
			assert.Equal(t, 0, tx.calls)
			assert.Equal(t, 0, repo.getCalls)
		})
	}
}

func TestExecute_InvalidTime(t *testing.T) {
	repo := &mockLessonRepo{}
	uc := newTestUseCase(repo, &mockPublisher{}, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{
		CoachID:   1,
		ClientID:  7,
		Date:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		TimeOfDay: "25:00",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidTime)
	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_DateInPast(t *testing.T) {
	repo := &mockLessonRepo{}
	uc := newTestUseCase(repo, &mockPublisher{}, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{
		CoachID:   1,
		ClientID:  7,
		Date:      time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), // до зафиксированного now
		TimeOfDay: "2:30 PM",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SlotTaken_PreCheck(t *testing.T) {
	// Существующее занятие в 2:00 PM блокирует запись на 2:30 PM
	repo := &mockLessonRepo{
		existing: []*domain.Lesson{
			{
				CoachID:    1,
				ClientID:   3,
				LessonDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				StartTime:  mustTime(t, "14:00"),
				Status:     domain.StatusScheduled,
			},
		},
	}
	pub := &mockPublisher{}
	uc := newTestUseCase(repo, pub, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{
		CoachID:   1,
		ClientID:  7,
		Date:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		TimeOfDay: "2:30 PM",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 0, repo.createCalls)
	assert.Equal(t, 0, pub.clientRecord)
}

func TestExecute_SlotTaken_CancelledLessonIgnored(t *testing.T) {
	// Отменённое занятие не блокирует слот
	repo := &mockLessonRepo{
		existing: []*domain.Lesson{
			{
				CoachID:    1,
				ClientID:   3,
				LessonDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				StartTime:  mustTime(t, "14:00"),
				Status:     domain.StatusCancelledByClient,
			},
		},
	}
	uc := newTestUseCase(repo, &mockPublisher{}, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{
		CoachID:   1,
		ClientID:  7,
		Date:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		TimeOfDay: "2:30 PM",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_DuplicateFromStorage(t *testing.T) {
	// Уникальный индекс хранилища - окончательный арбитр конфликта
	repo := &mockLessonRepo{createErr: lessonRepo.ErrDuplicateLesson}
	pub := &mockPublisher{}
	uc := newTestUseCase(repo, pub, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{
		CoachID:   1,
		ClientID:  7,
		Date:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		TimeOfDay: "2:30 PM",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 0, pub.clientRecord)
}

func TestExecute_NotesPassedThrough(t *testing.T) {
	repo := &mockLessonRepo{}
	uc := newTestUseCase(repo, &mockPublisher{}, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{
		CoachID:   1,
		ClientID:  7,
		Date:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		TimeOfDay: "2:30 PM",
		Notes:     ptr.Ptr("focus on technique"),
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "focus on technique", *resp.Notes)
	require.NotNil(t, repo.createdWith.Notes)
}
