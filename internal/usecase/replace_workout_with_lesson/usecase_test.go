package replace_workout_with_lesson

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	"github.com/fitlink/FL-SchedulingService/internal/infra/events"
	"github.com/fitlink/FL-SchedulingService/internal/integrations/programservice"
	"github.com/fitlink/FL-SchedulingService/pkg/ptr"
	"github.com/fitlink/FL-SchedulingService/pkg/types"
)

// --- моки коллабораторов ---

type mockLessonRepo struct {
	existing    []*domain.Lesson
	createdWith *domain.Lesson
	createErr   error
	createCalls int
}

func (m *mockLessonRepo) Create(_ context.Context, lesson *domain.Lesson) (*domain.Lesson, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.createdWith = lesson
	created := *lesson
	created.ID = 55
	return &created, nil
}

func (m *mockLessonRepo) GetByCoachWithFilter(_ context.Context, _ domain.CoachScheduleFilter) ([]*domain.Lesson, error) {
	return m.existing, nil
}

type mockProgramClient struct {
	day           *programservice.ProgramDay
	getErr        error
	markErr       error
	markCalls     int
	markedLessons []int64
}

func (m *mockProgramClient) GetProgramDay(_ context.Context, _ int64, _ string) (*programservice.ProgramDay, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.day, nil
}

func (m *mockProgramClient) MarkWorkoutReplaced(_ context.Context, _ int64, _ string, lessonID int64) error {
	m.markCalls++
	if m.markErr != nil {
		return m.markErr
	}
	m.markedLessons = append(m.markedLessons, lessonID)
	return nil
}

type mockPublisher struct {
	clientRecord int
	scheduled    []events.LessonScheduledEvent
}

func (m *mockPublisher) ClientRecordChanged(_ context.Context, _ int64)   { m.clientRecord++ }
func (m *mockPublisher) WeeklyScheduleChanged(_ context.Context, _ int64) {}
func (m *mockPublisher) CoachCalendarChanged(_ context.Context, _ int64)  {}
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

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func replaceableDay() *programservice.ProgramDay {
	return &programservice.ProgramDay{
		ProgramID:    10,
		ClientID:     7,
		Date:         "2024-03-15",
		WorkoutID:    ptr.Ptr(int64(200)),
		WorkoutTitle: "Leg day",
	}
}

func validRequest() Request {
	return Request{
		ProgramID: 10,
		CoachID:   1,
		ClientID:  7,
		Date:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		TimeOfDay: "2:30 PM",
	}
}

func newTestUseCase(repo *mockLessonRepo, program *mockProgramClient, pub *mockPublisher, tx *mockTxManager) *UseCase {
	uc := NewUseCase(repo, program, pub, tx, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

// --- тесты ---

func TestExecute_Success(t *testing.T) {
	repo := &mockLessonRepo{}
	program := &mockProgramClient{day: replaceableDay()}
	pub := &mockPublisher{}
	tx := &mockTxManager{}
	uc := newTestUseCase(repo, program, pub, tx)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(55), resp.LessonID)
	assert.Equal(t, int64(10), resp.ProgramID)
	assert.Equal(t, string(domain.SourceReplacement), resp.Source)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)

	assert.Equal(t, 14, resp.LocalDateTime.Hour())
	assert.Equal(t, 30, resp.LocalDateTime.Minute())

	// Занятие связано с программой, тренировка помечена заменённой
	require.NotNil(t, repo.createdWith.ProgramID)
	assert.Equal(t, int64(10), *repo.createdWith.ProgramID)
	require.Len(t, program.markedLessons, 1)
	assert.Equal(t, int64(55), program.markedLessons[0])

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, pub.clientRecord)
	require.Len(t, pub.scheduled, 1)
	assert.Equal(t, 1, pub.scheduled[0].TotalLessons)
}

func TestExecute_ProgramNotFound(t *testing.T) {
	program := &mockProgramClient{getErr: programservice.ErrProgramNotFound}
	repo := &mockLessonRepo{}
	uc := newTestUseCase(repo, program, &mockPublisher{}, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrProgramNotFound)
	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_ClientMismatch(t *testing.T) {
	day := replaceableDay()
	day.ClientID = 99
	program := &mockProgramClient{day: day}
	uc := newTestUseCase(&mockLessonRepo{}, program, &mockPublisher{}, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrClientMismatch)
}

func TestExecute_NoWorkoutOnDay(t *testing.T) {
	day := replaceableDay()
	day.WorkoutID = nil
	program := &mockProgramClient{day: day}
	uc := newTestUseCase(&mockLessonRepo{}, program, &mockPublisher{}, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNoReplaceableWorkout)
}

func TestExecute_WorkoutAlreadyReplaced(t *testing.T) {
	day := replaceableDay()
	day.IsReplaced = true
	program := &mockProgramClient{day: day}
	repo := &mockLessonRepo{}
	uc := newTestUseCase(repo, program, &mockPublisher{}, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNoReplaceableWorkout)
	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_SlotTaken(t *testing.T) {
	repo := &mockLessonRepo{
		existing: []*domain.Lesson{
			{
				CoachID:    1,
				LessonDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				StartTime:  mustTimeString(t, 14, 0),
				Status:     domain.StatusScheduled,
			},
		},
	}
	program := &mockProgramClient{day: replaceableDay()}
	uc := newTestUseCase(repo, program, &mockPublisher{}, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 0, program.markCalls)
}

func TestExecute_MarkReplacedFails_NoEvents(t *testing.T) {
	// Отказ пометки внутри транзакции откатывает вставку: наружу уходит
	// ошибка, события не публикуются
	repo := &mockLessonRepo{}
	program := &mockProgramClient{day: replaceableDay(), markErr: programservice.ErrInternal}
	pub := &mockPublisher{}
	uc := newTestUseCase(repo, program, pub, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 0, pub.clientRecord)
	assert.Empty(t, pub.scheduled)
}

func TestExecute_DateInPast(t *testing.T) {
	program := &mockProgramClient{day: replaceableDay()}
	uc := newTestUseCase(&mockLessonRepo{}, program, &mockPublisher{}, &mockTxManager{})

	req := validRequest()
	req.Date = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func mustTimeString(t *testing.T, hour, minute int) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromMinutes(hour*60 + minute)
	require.NoError(t, err)
	return ts
}
