package lessons

import "errors"

var (
	// ErrLessonNotFound возвращается, когда занятие не найдено
	ErrLessonNotFound = errors.New("lesson not found")

	// ErrSeriesNotFound возвращается, когда серия занятий не найдена
	ErrSeriesNotFound = errors.New("lesson series not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда занятие не может быть отменено
	ErrCannotCancel = errors.New("lesson cannot be cancelled")

	// ErrCannotComplete возвращается, когда занятие не может быть завершено
	ErrCannotComplete = errors.New("lesson cannot be completed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
