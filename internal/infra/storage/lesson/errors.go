package lesson

import "errors"

var (
	// ErrLessonNotFound возвращается, когда занятие не найдено
	ErrLessonNotFound = errors.New("lesson.repository: lesson not found")

	// ErrSeriesNotFound возвращается, когда серия занятий не найдена
	ErrSeriesNotFound = errors.New("lesson.repository: series not found")

	// ErrDuplicateLesson возвращается при нарушении уникальности
	// (coach_id, lesson_date, start_time) - слот уже занят
	ErrDuplicateLesson = errors.New("lesson.repository: lesson already exists at this time")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("lesson.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("lesson.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("lesson.repository: failed to scan row")

	// ErrCannotCancel возвращается, когда занятие не может быть отменено
	ErrCannotCancel = errors.New("lesson.repository: lesson cannot be cancelled")
)
