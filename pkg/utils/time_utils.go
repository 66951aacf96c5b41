package utils

import (
	"fmt"
	"time"
)

var trMonthsShort = [12]string{"Oca", "Şub", "Mar", "Nis", "May", "Haz", "Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara"}

var trMonthsLong = [12]string{"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran", "Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık"}

// LoadLocation resolves an IANA zone name, falling back to a fixed UTC+3
// zone for Europe/Istanbul when the tz database is unavailable.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err == nil {
		return loc, nil
	}
	if name == "Europe/Istanbul" {
		return time.FixedZone("TRT", 3*3600), nil
	}
	return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
}

// MonthRange returns [start, end) of the calendar month in loc.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// DayRange returns [start, end) of the calendar day containing t in loc.
func DayRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

func ShortMonthTR(m time.Month) string {
	return trMonthsShort[m-1]
}

func LongMonthTR(m time.Month) string {
	return trMonthsLong[m-1]
}

// FormatDateTR renders "3 Ekim 2026".
func FormatDateTR(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	return fmt.Sprintf("%d %s %d", t.Day(), LongMonthTR(t.Month()), t.Year())
}

// FormatClock renders the wall-clock time as "15:04".
func FormatClock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}
