package scheduling

import "errors"

var (
	// ErrInvalidClockTime возвращается при некорректной строке времени "H:MM AM/PM"
	ErrInvalidClockTime = errors.New("scheduling: invalid clock time")

	// ErrInvalidRecurrence возвращается при неположительном интервале,
	// неизвестном паттерне или конечной дате раньше первой
	ErrInvalidRecurrence = errors.New("scheduling: invalid recurrence rule")

	// ErrRecurrenceTooLarge возвращается, когда разворачивание правила
	// превышает предохранитель по количеству занятий
	ErrRecurrenceTooLarge = errors.New("scheduling: recurrence expands to too many occurrences")
)
