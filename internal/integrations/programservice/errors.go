package programservice

import "errors"

var (
	// ErrProgramNotFound возвращается, когда программа не найдена
	ErrProgramNotFound = errors.New("programservice client: program not found")

	// ErrWorkoutNotFound возвращается, когда на указанный день нет тренировки,
	// которую можно заменить занятием
	ErrWorkoutNotFound = errors.New("programservice client: no replaceable workout on this day")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("programservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("programservice client: invalid response")
)
