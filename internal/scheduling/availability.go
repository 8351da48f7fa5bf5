package scheduling

import (
	"time"

	"github.com/fitlink/FL-SchedulingService/internal/domain"
)

// HourIsFree проверяет, свободен ли кандидат (день, минута дня) относительно
// существующих занятий тренера.
//
// Слот занят, если есть активное занятие в тот же календарный день с тем же
// часом начала. Минуты намеренно не сравниваются: занятие в 2:00 PM блокирует
// кандидата на 2:30 PM. Это та же почасовая гранулярность, с которой конфликт
// показывают календарные представления.
//
// Чистая функция, existing не изменяется. Результат носит предварительный
// характер: окончательный арбитр конфликта - уникальный индекс в хранилище.
func HourIsFree(existing []*domain.Lesson, date time.Time, minuteOfDay int) bool {
	hour := minuteOfDay / 60

	for _, lesson := range existing {
		if !lesson.IsActive() {
			continue
		}
		if isSameDay(lesson.LessonDate, date) && lesson.StartTime.Hour() == hour {
			return false
		}
	}

	return true
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
