package domain

import "time"

// DateOnly обнуляет время, оставляя дату в исходном часовом поясе
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата раньше сегодняшнего дня
func IsDateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}

// IsDateBeyondHorizon проверяет, что дата дальше, чем now + maxDays дней
func IsDateBeyondHorizon(date, now time.Time, maxDays int) bool {
	return DateOnly(date).After(DateOnly(now).AddDate(0, 0, maxDays))
}

// LocalDate переносит календарную дату в часовой пояс loc без сдвига дня
// Дата из запроса (YYYY-MM-DD, UTC) трактуется как дата по местному времени площадки
func LocalDate(date time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
}
