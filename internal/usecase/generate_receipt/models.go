package generate_receipt

import (
	"time"
)

// PaymentMethod способ оплаты, печатаемый на квитанции
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Cash"
	PaymentTransfer PaymentMethod = "Transfer"
)

// IsValidPaymentMethod проверяет, что способ оплаты известен
func IsValidPaymentMethod(m PaymentMethod) bool {
	return m == PaymentCash || m == PaymentTransfer
}

// Request модель запроса на формирование квитанции.
// Одна квитанция может объединять несколько групп бронирования,
// оплаченных одним платежом.
type Request struct {
	GroupIDs      []string
	PaymentMethod PaymentMethod

	// PaymentDate дата платежа, печатаемая на квитанции.
	// Нулевое значение означает "сегодня".
	PaymentDate time.Time
}

// LineItem строка квитанции: комнаты одного типа с совпадающими
// датами заезда и выезда сворачиваются в одну позицию
type LineItem struct {
	Description string // тип комнаты, например "River view - Double bed"
	CheckIn     time.Time
	CheckOut    time.Time
	RoomCount   int
	Nights      int
	UnitPrice   float64 // стоимость одной комнаты за ночь
	LineTotal   float64
}

// Receipt итоговая квитанция по выбранным группам бронирования.
// Реквизиты гостя берутся из первой группы; итог равен сумме строк.
type Receipt struct {
	GroupIDs      []string
	IssuedAt      time.Time
	GuestName     string
	Phone         string
	Email         *string
	Address       *string
	TaxID         *string
	PaymentMethod PaymentMethod
	PaymentDate   time.Time
	Lines         []LineItem
	Deposit       *float64
	Total         float64
}

// Response модель ответа с квитанцией
type Response struct {
	Receipt *Receipt
}
