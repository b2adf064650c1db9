package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeSlots is the fixed list of start times offered by the booking form.
var TimeSlots = []string{
	"10:00", "11:00", "12:00", "13:00", "14:00", "15:00",
	"16:00", "17:00", "18:00", "19:00", "20:00",
}

var monthsGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

var weekdaysShort = [...]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}

// monthIndex accepts genitive ("мая") and nominative ("май") forms.
var monthIndex = func() map[string]time.Month {
	m := make(map[string]time.Month, 24)
	nominative := [...]string{
		"январь", "февраль", "март", "апрель", "май", "июнь",
		"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
	}
	for i := range monthsGenitive {
		m[monthsGenitive[i]] = time.Month(i + 1)
		m[nominative[i]] = time.Month(i + 1)
	}
	return m
}()

// ParseSlot turns a form date label such as "12 мая" and a time label such as "14:30"
// into a timestamp in loc. The year is taken from year.
func ParseSlot(dateLabel, timeLabel string, year int, loc *time.Location) (time.Time, error) {
	day, month, err := parseDateLabel(dateLabel)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, err := parseTimeLabel(timeLabel)
	if err != nil {
		return time.Time{}, err
	}
	t := time.Date(year, month, day, hour, minute, 0, 0, loc)
	// time.Date normalizes overflow; "31 февраля" must not silently become March
	if t.Day() != day || t.Month() != month {
		return time.Time{}, ErrInvalidDateLabel
	}
	return t, nil
}

// ParseUpcomingSlot resolves the year relative to now: a label that already passed this year
// (for example "5 января" picked in December) belongs to the next year.
func ParseUpcomingSlot(dateLabel, timeLabel string, now time.Time, loc *time.Location) (time.Time, error) {
	now = now.In(loc)
	t, err := ParseSlot(dateLabel, timeLabel, now.Year(), loc)
	if err != nil {
		return time.Time{}, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if t.Before(today) {
		return ParseSlot(dateLabel, timeLabel, now.Year()+1, loc)
	}
	return t, nil
}

// ValidateTimeLabel checks a "14:30" style label without building a timestamp.
func ValidateTimeLabel(label string) error {
	_, _, err := parseTimeLabel(label)
	return err
}

func parseDateLabel(label string) (int, time.Month, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(label)))
	if len(fields) < 2 {
		return 0, 0, ErrInvalidDateLabel
	}
	day, err := strconv.Atoi(fields[0])
	if err != nil || day < 1 || day > 31 {
		return 0, 0, ErrInvalidDateLabel
	}
	month, ok := monthIndex[strings.Trim(fields[1], ",.")]
	if !ok {
		return 0, 0, ErrInvalidDateLabel
	}
	return day, month, nil
}

func parseTimeLabel(label string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(label), ":")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidTimeLabel
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, ErrInvalidTimeLabel
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, ErrInvalidTimeLabel
	}
	return hour, minute, nil
}

// DateLabel formats t the way the booking form shows dates, e.g. "12 мая".
func DateLabel(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), monthsGenitive[t.Month()-1])
}

func TimeLabel(t time.Time) string {
	return t.Format("15:04")
}

type DateOption struct {
	Label   string `json:"label"`
	Weekday string `json:"weekday"`
	Date    string `json:"date"`
}

// DateOptions lists the next days starting from today.
func DateOptions(now time.Time, days int) []DateOption {
	opts := make([]DateOption, 0, days)
	for i := range days {
		d := now.AddDate(0, 0, i)
		opts = append(opts, DateOption{
			Label:   DateLabel(d),
			Weekday: weekdaysShort[d.Weekday()],
			Date:    d.Format(time.DateOnly),
		})
	}
	return opts
}
