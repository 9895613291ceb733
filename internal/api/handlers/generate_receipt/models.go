package generate_receipt

import (
	"fmt"
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	generateReceipt "github.com/sunriver-hotel/frontdesk-service/internal/usecase/generate_receipt"
)

// GenerateReceiptRequest HTTP request model
type GenerateReceiptRequest struct {
	BookingIDs    []string `json:"bookingIds"`
	PaymentMethod string   `json:"paymentMethod"`         // "Cash" или "Transfer"
	PaymentDate   string   `json:"paymentDate,omitempty"` // YYYY-MM-DD, по умолчанию сегодня
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateReceiptRequest) ToUseCaseRequest() (*generateReceipt.Request, error) {
	req := &generateReceipt.Request{
		GroupIDs:      r.BookingIDs,
		PaymentMethod: generateReceipt.PaymentMethod(r.PaymentMethod),
	}

	if r.PaymentDate != "" {
		paymentDate, err := time.Parse(domain.DateFormat, r.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("invalid paymentDate %q, expected YYYY-MM-DD", r.PaymentDate)
		}
		req.PaymentDate = paymentDate
	}

	return req, nil
}

// LineItemResponse строка квитанции
type LineItemResponse struct {
	Description string  `json:"description"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
	RoomCount   int     `json:"roomCount"`
	Nights      int     `json:"nights"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
}

// ReceiptResponse HTTP response model
type ReceiptResponse struct {
	BookingIDs    []string            `json:"bookingIds"`
	IssuedAt      string              `json:"issuedAt"`
	GuestName     string              `json:"guestName"`
	Phone         string              `json:"phone"`
	Email         *string             `json:"email,omitempty"`
	Address       *string             `json:"address,omitempty"`
	TaxID         *string             `json:"taxId,omitempty"`
	PaymentMethod string              `json:"paymentMethod"`
	PaymentDate   string              `json:"paymentDate"`
	Lines         []*LineItemResponse `json:"lines"`
	Deposit       *float64            `json:"deposit,omitempty"`
	Total         float64             `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateReceipt.Response) *ReceiptResponse {
	receipt := resp.Receipt

	lines := make([]*LineItemResponse, 0, len(receipt.Lines))
	for _, line := range receipt.Lines {
		lines = append(lines, &LineItemResponse{
			Description: line.Description,
			CheckIn:     line.CheckIn.Format(domain.DateFormat),
			CheckOut:    line.CheckOut.Format(domain.DateFormat),
			RoomCount:   line.RoomCount,
			Nights:      line.Nights,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal,
		})
	}

	return &ReceiptResponse{
		BookingIDs:    receipt.GroupIDs,
		IssuedAt:      receipt.IssuedAt.Format(time.RFC3339),
		GuestName:     receipt.GuestName,
		Phone:         receipt.Phone,
		Email:         receipt.Email,
		Address:       receipt.Address,
		TaxID:         receipt.TaxID,
		PaymentMethod: string(receipt.PaymentMethod),
		PaymentDate:   receipt.PaymentDate.Format(domain.DateFormat),
		Lines:         lines,
		Deposit:       receipt.Deposit,
		Total:         receipt.Total,
	}
}
