package domain

import "time"

// DateFormat формат даты в API и БД
const DateFormat = "2006-01-02"

// TruncateToDay discards the time-of-day component.
// All date comparisons in the booking core are day-granular.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// RangesOverlap reports whether two half-open date ranges intersect.
//
// Используем строгие неравенства: диапазоны, которые только соприкасаются
// (выезд в день заезда следующего гостя), пересечением не считаются.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStartDay, aEndDay := TruncateToDay(aStart), TruncateToDay(aEnd)
	bStartDay, bEndDay := TruncateToDay(bStart), TruncateToDay(bEnd)
	return aStartDay.Before(bEndDay) && bStartDay.Before(aEndDay)
}
