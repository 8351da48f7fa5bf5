package schedule_lesson

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (отсутствует дата, время или идентификаторы)
	ErrInvalidInput = errors.New("schedule_lesson: invalid input data")

	// ErrInvalidTime возвращается при неразбираемой строке времени занятия
	ErrInvalidTime = errors.New("schedule_lesson: invalid lesson time")

	// ErrInvalidDate возвращается при дате занятия в прошлом
	ErrInvalidDate = errors.New("schedule_lesson: invalid lesson date")

	// ErrSlotTaken возвращается, когда слот уже занят другим занятием
	ErrSlotTaken = errors.New("schedule_lesson: time slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("schedule_lesson: internal error")
)
