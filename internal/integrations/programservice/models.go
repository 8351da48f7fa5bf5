package programservice

// ProgramDay день тренировочной программы из ProgramService
type ProgramDay struct {
	ProgramID    int64  `json:"program_id"`
	ClientID     int64  `json:"client_id"`
	Date         string `json:"date"` // YYYY-MM-DD
	WorkoutID    *int64 `json:"workout_id"`
	WorkoutTitle string `json:"workout_title"`
	IsReplaced   bool   `json:"is_replaced"`
}

// HasReplaceableWorkout возвращает true, если на дне есть тренировка,
// которую ещё не заменяли занятием
func (d *ProgramDay) HasReplaceableWorkout() bool {
	return d.WorkoutID != nil && !d.IsReplaced
}

// markReplacedRequest тело запроса на пометку тренировки заменённой
type markReplacedRequest struct {
	LessonID int64 `json:"lesson_id"`
}

// ErrorResponse модель ошибки от ProgramService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
