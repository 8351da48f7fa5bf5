package schedule_recurring_lessons

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	"github.com/fitlink/FL-SchedulingService/internal/infra/events"
	lessonRepo "github.com/fitlink/FL-SchedulingService/internal/infra/storage/lesson"
	"github.com/fitlink/FL-SchedulingService/internal/integrations/profileservice"
)

// --- моки коллабораторов ---

type mockLessonRepo struct {
	created    []*domain.Lesson
	batchErr   error
	batchCalls int
}

func (m *mockLessonRepo) CreateBatch(_ context.Context, lessons []*domain.Lesson) ([]*domain.Lesson, error) {
	m.batchCalls++
	if m.batchErr != nil {
		return nil, m.batchErr
	}
	out := make([]*domain.Lesson, len(lessons))
	for i, l := range lessons {
		created := *l
		created.ID = int64(100 + i)
		out[i] = &created
	}
	m.created = out
	return out, nil
}

type mockProfileClient struct {
	workingHours *profileservice.WorkingHours
	err          error
	calls        int
}

func (m *mockProfileClient) GetWorkingHours(_ context.Context, _ int64) (*profileservice.WorkingHours, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.workingHours, nil
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

type mockTxManager struct {
	calls int
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func allWeekHours() *profileservice.WorkingHours {
	return &profileservice.WorkingHours{
		CoachID:             1,
		StartTime:           "9:00 AM",
		EndTime:             "6:00 PM",
		SlotIntervalMinutes: 60,
	}
}

func validRequest() *Request {
	return &Request{
		CoachID:    1,
		ClientID:   7,
		AnchorDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), // понедельник
		TimeOfDay:  "10:00 AM",
		EndDate:    time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC),
		Pattern:    domain.PatternWeekly,
		Interval:   1,
	}
}

// --- тесты ---

func TestExecute_WeeklySeries(t *testing.T) {
	repo := &mockLessonRepo{}
	profile := &mockProfileClient{workingHours: allWeekHours()}
	pub := &mockPublisher{}
	tx := &mockTxManager{}
	uc := NewUseCase(repo, profile, tx, pub, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)

	// Пять понедельников: 1, 8, 15, 22, 29 января
	assert.Equal(t, 5, resp.TotalLessons)
	assert.NotEmpty(t, resp.SeriesID)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), resp.FirstDate)
	assert.Equal(t, time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC), resp.LastDate)

	require.Len(t, repo.created, 5)
	for _, l := range repo.created {
		assert.Equal(t, domain.SourceRecurring, l.Source)
		assert.Equal(t, domain.StatusScheduled, l.Status)
		require.NotNil(t, l.SeriesID)
		assert.Equal(t, resp.SeriesID, *l.SeriesID)
		assert.Equal(t, "10:00", l.StartTime.String())
	}

	assert.Equal(t, 1, tx.calls)
	require.Len(t, pub.scheduled, 1)
	assert.Equal(t, 5, pub.scheduled[0].TotalLessons)
}

func TestExecute_BiweeklyMatchesTwoWeekStep(t *testing.T) {
	repo := &mockLessonRepo{}
	profile := &mockProfileClient{workingHours: allWeekHours()}
	uc := NewUseCase(repo, profile, &mockTxManager{}, &mockPublisher{}, noopLogger{})

	req := validRequest()
	req.Pattern = domain.PatternBiweekly

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	// 1, 15, 29 января
	assert.Equal(t, 3, resp.TotalLessons)
}

func TestExecute_ZeroInterval_NoCollaboratorCalls(t *testing.T) {
	repo := &mockLessonRepo{}
	profile := &mockProfileClient{workingHours: allWeekHours()}
	tx := &mockTxManager{}
	uc := NewUseCase(repo, profile, tx, &mockPublisher{}, noopLogger{})

	req := validRequest()
	req.Interval = 0

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidRecurrence)
	// Ошибка до любых внешних вызовов
	assert.Equal(t, 0, profile.calls)
	assert.Equal(t, 0, tx.calls)
	assert.Equal(t, 0, repo.batchCalls)
}

func TestExecute_EndBeforeAnchor(t *testing.T) {
	profile := &mockProfileClient{workingHours: allWeekHours()}
	uc := NewUseCase(&mockLessonRepo{}, profile, &mockTxManager{}, &mockPublisher{}, noopLogger{})

	req := validRequest()
	req.EndDate = time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidRecurrence)
	assert.Equal(t, 0, profile.calls)
}

func TestExecute_UnknownPattern(t *testing.T) {
	profile := &mockProfileClient{workingHours: allWeekHours()}
	uc := NewUseCase(&mockLessonRepo{}, profile, &mockTxManager{}, &mockPublisher{}, noopLogger{})

	req := validRequest()
	req.Pattern = domain.RecurrencePattern("daily")

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidRecurrence)
	assert.Equal(t, 0, profile.calls)
}

func TestExecute_InvalidTime(t *testing.T) {
	profile := &mockProfileClient{workingHours: allWeekHours()}
	uc := NewUseCase(&mockLessonRepo{}, profile, &mockTxManager{}, &mockPublisher{}, noopLogger{})

	req := validRequest()
	req.TimeOfDay = "half past ten"

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestExecute_CoachNotFound(t *testing.T) {
	profile := &mockProfileClient{err: profileservice.ErrCoachNotFound}
	repo := &mockLessonRepo{}
	uc := NewUseCase(repo, profile, &mockTxManager{}, &mockPublisher{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrCoachNotFound)
	assert.Equal(t, 0, repo.batchCalls)
}

func TestExecute_WorkingDaysFilterAllOut(t *testing.T) {
	// Якорь - понедельник, тренер работает только по вторникам:
	// каждое вхождение отфильтровано, серия пуста
	hours := allWeekHours()
	hours.WorkingDays = []string{"tuesday"}
	profile := &mockProfileClient{workingHours: hours}
	repo := &mockLessonRepo{}
	uc := NewUseCase(repo, profile, &mockTxManager{}, &mockPublisher{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNoOccurrences)
	assert.Equal(t, 0, repo.batchCalls)
}

func TestExecute_WorkingDaysFilterPartial(t *testing.T) {
	// Тренер работает по понедельникам: все пять вхождений проходят фильтр
	hours := allWeekHours()
	hours.WorkingDays = []string{"monday", "wednesday"}
	profile := &mockProfileClient{workingHours: hours}
	uc := NewUseCase(&mockLessonRepo{}, profile, &mockTxManager{}, &mockPublisher{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 5, resp.TotalLessons)
}

func TestExecute_MonthlyClampRestoresDay(t *testing.T) {
	repo := &mockLessonRepo{}
	profile := &mockProfileClient{workingHours: allWeekHours()}
	uc := NewUseCase(repo, profile, &mockTxManager{}, &mockPublisher{}, noopLogger{})

	req := validRequest()
	req.AnchorDate = time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	req.EndDate = time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	req.Pattern = domain.PatternMonthly

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.Equal(t, 4, resp.TotalLessons)

	// 31 января, 29 февраля (високосный год), 31 марта, 30 апреля
	want := []time.Time{
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
	}
	for i, l := range repo.created {
		assert.Equal(t, want[i], l.LessonDate)
	}
}

func TestExecute_SeriesConflict_AllOrNothing(t *testing.T) {
	repo := &mockLessonRepo{batchErr: lessonRepo.ErrDuplicateLesson}
	profile := &mockProfileClient{workingHours: allWeekHours()}
	pub := &mockPublisher{}
	uc := NewUseCase(repo, profile, &mockTxManager{}, pub, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSlotTaken)
	// Ни одного события при откате серии
	assert.Equal(t, 0, pub.clientRecord)
	assert.Empty(t, pub.scheduled)
}

func TestExecute_RecurrenceTooLarge(t *testing.T) {
	profile := &mockProfileClient{workingHours: allWeekHours()}
	repo := &mockLessonRepo{}
	uc := NewUseCase(repo, profile, &mockTxManager{}, &mockPublisher{}, noopLogger{})

	req := validRequest()
	req.EndDate = time.Date(2124, 1, 1, 0, 0, 0, 0, time.UTC) // сто лет еженедельных занятий

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrRecurrenceTooLarge)
	assert.Equal(t, 0, repo.batchCalls)
}
