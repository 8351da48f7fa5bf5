package replace_workout_with_lesson

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("replace_workout_with_lesson: invalid input")
	// ErrInvalidTime некорректный формат времени занятия
	ErrInvalidTime = errors.New("replace_workout_with_lesson: invalid time")
	// ErrInvalidDate дата занятия в прошлом
	ErrInvalidDate = errors.New("replace_workout_with_lesson: invalid lesson date")
	// ErrProgramNotFound программа или день программы не найдены
	ErrProgramNotFound = errors.New("replace_workout_with_lesson: program day not found")
	// ErrNoReplaceableWorkout в указанном дне нет тренировки, доступной для замены
	ErrNoReplaceableWorkout = errors.New("replace_workout_with_lesson: no replaceable workout")
	// ErrClientMismatch день программы принадлежит другому клиенту
	ErrClientMismatch = errors.New("replace_workout_with_lesson: program day belongs to another client")
	// ErrSlotTaken выбранное время уже занято
	ErrSlotTaken = errors.New("replace_workout_with_lesson: slot already taken")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("replace_workout_with_lesson: internal error")
)
