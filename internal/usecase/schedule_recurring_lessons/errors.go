package schedule_recurring_lessons

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule_recurring_lessons: invalid input data")

	// ErrInvalidTime возвращается при неразбираемой строке времени занятия
	ErrInvalidTime = errors.New("schedule_recurring_lessons: invalid lesson time")

	// ErrInvalidRecurrence возвращается при неположительном интервале,
	// неизвестном паттерне или конечной дате раньше первой
	ErrInvalidRecurrence = errors.New("schedule_recurring_lessons: invalid recurrence")

	// ErrRecurrenceTooLarge возвращается, когда серия разворачивается в
	// слишком много занятий; диапазон нужно сократить
	ErrRecurrenceTooLarge = errors.New("schedule_recurring_lessons: recurrence range is too large")

	// ErrCoachNotFound возвращается, когда тренер не найден в ProfileService
	ErrCoachNotFound = errors.New("schedule_recurring_lessons: coach not found")

	// ErrNoOccurrences возвращается, когда все занятия серии выпали на
	// нерабочие дни тренера
	ErrNoOccurrences = errors.New("schedule_recurring_lessons: no occurrences fall on working days")

	// ErrSlotTaken возвращается, когда хотя бы один слот серии уже занят
	ErrSlotTaken = errors.New("schedule_recurring_lessons: a slot in the series is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("schedule_recurring_lessons: internal error")
)
