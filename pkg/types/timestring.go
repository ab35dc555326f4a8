package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	// MinutesPerDay количество минут в сутках
	MinutesPerDay = 24 * 60

	layoutHHMM   = "15:04"
	layoutHHMMSS = "15:04:05"
)

var (
	// ErrInvalidFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidFormat = errors.New("invalid time string format")

	// ErrOutOfRange возвращается, когда количество минут выходит за пределы суток
	ErrOutOfRange = errors.New("time is out of day range")
)

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// TimeToMinutes переводит строку HH:MM в количество минут с начала суток
// Некорректные строки отклоняются, а не приводятся к допустимому виду
func TimeToMinutes(s string) (int, error) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])

	return hours*60 + minutes, nil
}

// MinutesToTime форматирует количество минут с начала суток в HH:MM
// Для любого m из [0, 1439] выполняется TimeToMinutes(MinutesToTime(m)) == m
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// CalculateDuration возвращает длительность интервала в минутах
// Результат может быть отрицательным, проверка знака остаётся на вызывающей стороне
func CalculateDuration(start, end string) (int, error) {
	startMinutes, err := TimeToMinutes(start)
	if err != nil {
		return 0, err
	}

	endMinutes, err := TimeToMinutes(end)
	if err != nil {
		return 0, err
	}

	return endMinutes - startMinutes, nil
}

// IsValidTime проверяет, что строка соответствует формату HH:MM
func IsValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// TimeString время суток в формате HH:MM (без даты и часового пояса)
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(layoutHHMM))
}

// NewTimeStringFromString создает TimeString из строки HH:MM с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	if !IsValidTime(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return TimeString(s), nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrOutOfRange, minutes)
	}
	return TimeString(MinutesToTime(minutes)), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	if !IsValidTime(string(t)) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	return TimeToMinutes(string(t))
}

// mustMinutes используется в сравнениях, некорректное время считается полночью
func (t TimeString) mustMinutes() int {
	m, err := t.Minutes()
	if err != nil {
		return 0
	}
	return m
}

// AddMinutes возвращает время, сдвинутое на n минут
// Переход через полночь не допускается: сутки заканчиваются в 23:59
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(m + n)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.mustMinutes() < other.mustMinutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.mustMinutes() > other.mustMinutes()
}

// OnDate возвращает момент времени t в указанную дату (в часовом поясе даты)
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	m, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := date.Date()
	return time.Date(y, mo, d, m/60, m%60, 0, 0, date.Location()), nil
}

// Scan реализует sql.Scanner
// Postgres возвращает колонку TIME как "HH:MM:SS"
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.parseDB(string(v))
	case string:
		return t.parseDB(v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidFormat, src)
	}
}

func (t *TimeString) parseDB(s string) error {
	if IsValidTime(s) {
		*t = TimeString(s)
		return nil
	}
	parsed, err := time.Parse(layoutHHMMSS, s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	*t = NewTimeString(parsed)
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// MarshalJSON сериализует время как строку HH:MM
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON десериализует строку HH:MM с валидацией
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
