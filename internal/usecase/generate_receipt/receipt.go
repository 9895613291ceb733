package generate_receipt

import (
	"fmt"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
)

// BuildLineItems сворачивает комнаты выбранных групп бронирования в
// строки квитанции. Комнаты с одинаковым типом и совпадающими датами
// образуют одну строку, в том числе из разных групп; порядок строк
// соответствует порядку первого появления типа. Цена за ночь выводится
// обратно из итоговой стоимости каждой группы, поэтому сумма строк
// всегда сходится с суммой итогов групп.
func BuildLineItems(bookings []*domain.Booking, roomsByNumber map[string]*domain.Room) ([]LineItem, error) {
	type lineKey struct {
		description string
		checkIn     string
		checkOut    string
	}

	index := make(map[lineKey]int)
	var lines []LineItem

	for _, booking := range bookings {
		nights := booking.Nights()
		unitPrice := domain.UnitPriceForReceipt(booking.TotalPrice, len(booking.Rooms), nights)

		for _, number := range booking.Rooms {
			room, ok := roomsByNumber[number]
			if !ok {
				return nil, fmt.Errorf("%w: room %s is not in the catalog", ErrInternal, number)
			}

			key := lineKey{
				description: room.TypeName(),
				checkIn:     booking.CheckIn.Format(domain.DateFormat),
				checkOut:    booking.CheckOut.Format(domain.DateFormat),
			}

			// Строка накапливает вклад каждой комнаты по цене её группы:
			// у групп с ручной итоговой стоимостью цена за ночь своя
			if i, exists := index[key]; exists {
				lines[i].RoomCount++
				lines[i].LineTotal += unitPrice * float64(nights)
				continue
			}

			index[key] = len(lines)
			lines = append(lines, LineItem{
				Description: key.description,
				CheckIn:     booking.CheckIn,
				CheckOut:    booking.CheckOut,
				RoomCount:   1,
				Nights:      nights,
				UnitPrice:   unitPrice,
				LineTotal:   unitPrice * float64(nights),
			})
		}
	}

	return lines, nil
}

// GrandTotal возвращает сумму строк квитанции
func GrandTotal(lines []LineItem) float64 {
	var total float64
	for _, line := range lines {
		total += line.LineTotal
	}
	return total
}
