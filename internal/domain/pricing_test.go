package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	assert.Equal(t, 1, Nights(date(2026, 8, 10), date(2026, 8, 11)))
	assert.Equal(t, 3, Nights(date(2026, 8, 10), date(2026, 8, 13)))

	// переход через месяц
	assert.Equal(t, 2, Nights(date(2026, 8, 31), date(2026, 9, 2)))
}

func TestNights_MinimumOne(t *testing.T) {
	assert.Equal(t, 1, Nights(date(2026, 8, 10), date(2026, 8, 10)))
	assert.Equal(t, 1, Nights(date(2026, 8, 11), date(2026, 8, 10)))
}

func TestNights_IgnoresTimeOfDay(t *testing.T) {
	checkIn := time.Date(2026, 8, 10, 23, 50, 0, 0, time.UTC)
	checkOut := time.Date(2026, 8, 12, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, 2, Nights(checkIn, checkOut))
}

func TestTotalPrice(t *testing.T) {
	// 3 ночи, 2 комнаты, тариф 800
	assert.Equal(t, 4800.0, TotalPrice(3, 2, 800))
	assert.Equal(t, 800.0, TotalPrice(1, 1, 800))
}

func TestUnitPriceForReceipt_RoundTrip(t *testing.T) {
	total := TotalPrice(3, 2, 800)
	assert.Equal(t, 800.0, UnitPriceForReceipt(total, 2, 3))
}

func TestUnitPriceForReceipt_OverriddenTotal(t *testing.T) {
	// Оператор вручную поставил 5000 за 2 комнаты на 2 ночи
	assert.Equal(t, 1250.0, UnitPriceForReceipt(5000, 2, 2))
}

func TestUnitPriceForReceipt_GuardsAgainstZero(t *testing.T) {
	assert.Equal(t, 800.0, UnitPriceForReceipt(800, 0, 0))
}
