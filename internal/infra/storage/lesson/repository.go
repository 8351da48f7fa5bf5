package lesson

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
	"github.com/fitlink/FL-SchedulingService/pkg/dbmetrics"
	"github.com/fitlink/FL-SchedulingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const uniqueViolation = "23505"

// lessonColumns полный список колонок таблицы lessons в порядке сканирования
var lessonColumns = []string{
	"id",
	"coach_id",
	"client_id",
	"lesson_date",
	"start_time",
	"duration_minutes",
	"source",
	"series_id",
	"program_id",
	"status",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с занятиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория занятий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое занятие
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Уникальный индекс (coach_id, lesson_date, start_time) - окончательный арбитр
// конфликта двух одновременных записей на один слот; нарушение возвращается
// как ErrDuplicateLesson с исходным сообщением БД.
func (r *Repository) Create(ctx context.Context, l *domain.Lesson) (*domain.Lesson, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("lessons").
		Columns(
			"coach_id",
			"client_id",
			"lesson_date",
			"start_time",
			"duration_minutes",
			"source",
			"series_id",
			"program_id",
			"status",
			"notes",
		).
		Values(
			l.CoachID,
			l.ClientID,
			l.LessonDate,
			l.StartTime,
			l.DurationMinutes,
			l.Source,
			l.SeriesID,
			l.ProgramID,
			l.Status,
			l.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&l.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateLesson, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	l.CreatedAt = createdAt.Time
	l.UpdatedAt = updatedAt.Time

	return l, nil
}

// CreateBatch создает все занятия серии одним запросом.
// Вызывается внутри сериализуемой транзакции: либо вставляется вся серия,
// либо ничего. Возвращает созданные занятия с проставленными ID.
func (r *Repository) CreateBatch(ctx context.Context, lessons []*domain.Lesson) ([]*domain.Lesson, error) {
	if len(lessons) == 0 {
		return []*domain.Lesson{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("lessons").
		Columns(
			"coach_id",
			"client_id",
			"lesson_date",
			"start_time",
			"duration_minutes",
			"source",
			"series_id",
			"program_id",
			"status",
			"notes",
		)

	for _, l := range lessons {
		insertBuilder = insertBuilder.Values(
			l.CoachID,
			l.ClientID,
			l.LessonDate,
			l.StartTime,
			l.DurationMinutes,
			l.Source,
			l.SeriesID,
			l.ProgramID,
			l.Status,
			l.Notes,
		)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateLesson, err)
		}
		return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		if i >= len(lessons) {
			break
		}
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&lessons[i].ID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - scan returning row: %v", ErrScanRow, err)
		}
		lessons[i].CreatedAt = createdAt.Time
		lessons[i].UpdatedAt = updatedAt.Time
		i++
	}

	if err := rows.Err(); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateLesson, err)
		}
		return nil, fmt.Errorf("%w: CreateBatch - iterate returning rows: %v", ErrExecQuery, err)
	}

	return lessons, nil
}

// GetByID получает занятие по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Lesson, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(lessonColumns...).
		From("lessons").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	l, err := r.scanLesson(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrLessonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan lesson: %v", ErrScanRow, err)
	}

	return l, nil
}

// GetByCoachWithFilter получает занятия тренера с гибкой фильтрацией
// Поддерживает фильтрацию по клиенту, периоду, статусу и включению
// неактивных занятий (отменённые, no-show)
func (r *Repository) GetByCoachWithFilter(ctx context.Context, filter domain.CoachScheduleFilter) ([]*domain.Lesson, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(lessonColumns...).
		From("lessons").
		Where(squirrel.Eq{"coach_id": filter.CoachID})

	// Фильтрация по клиенту (если указан)
	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"lesson_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"lesson_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны неактивные - исключаем их
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("lesson_date ASC, start_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCoachWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCoachWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanLessons(rows)
}

// GetBySeriesID получает все занятия одной повторяющейся серии
func (r *Repository) GetBySeriesID(ctx context.Context, seriesID string) ([]*domain.Lesson, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(lessonColumns...).
		From("lessons").
		Where(squirrel.Eq{"series_id": seriesID}).
		OrderBy("lesson_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySeriesID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySeriesID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	lessons, err := r.scanLessons(rows)
	if err != nil {
		return nil, err
	}
	if len(lessons) == 0 {
		return nil, ErrSeriesNotFound
	}

	return lessons, nil
}

// Cancel отменяет занятие с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.LessonStatus, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("lessons").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusScheduled}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrLessonNotFound
	}

	return nil
}

// CancelSeries отменяет все незавершённые занятия серии одним запросом
// Возвращает количество отменённых занятий
func (r *Repository) CancelSeries(ctx context.Context, seriesID string, status domain.LessonStatus, reason *string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("lessons").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"series_id": seriesID}).
		Where(squirrel.Eq{"status": domain.StatusScheduled}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CancelSeries - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CancelSeries - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelSeries - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return 0, ErrSeriesNotFound
	}

	return affected, nil
}

// UpdateStatus обновляет статус занятия
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.LessonStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("lessons").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrLessonNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanLesson(row rowScanner) (*domain.Lesson, error) {
	var l domain.Lesson
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&l.ID,
		&l.CoachID,
		&l.ClientID,
		&l.LessonDate,
		&l.StartTime,
		&l.DurationMinutes,
		&l.Source,
		&l.SeriesID,
		&l.ProgramID,
		&l.Status,
		&l.Notes,
		&l.CancellationReason,
		&l.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	l.CreatedAt = createdAt.Time
	l.UpdatedAt = updatedAt.Time

	return &l, nil
}

func (r *Repository) scanLessons(rows *sql.Rows) ([]*domain.Lesson, error) {
	lessons := make([]*domain.Lesson, 0)

	for rows.Next() {
		l, err := r.scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan lesson row: %v", ErrScanRow, err)
		}
		lessons = append(lessons, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate lesson rows: %v", ErrExecQuery, err)
	}

	return lessons, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
