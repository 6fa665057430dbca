//go:build unit || e2e

package builder

import (
	"strings"

	"smartstay-gateway/internal/domain/hotel"
	reqdto "smartstay-gateway/internal/handler/dto/request"
)

type BookingBuilder struct {
	PrebookID       string
	HolderName      string
	Email           string
	Phone           string
	Method          string
	TransactionID   string
	ClientReference string
	Guests          []hotel.Guest
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		PrebookID:     "pb-1",
		HolderName:    "Asha Rao",
		Email:         "asha@example.com",
		Method:        "TRANSACTION_ID",
		TransactionID: "tx-1",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildBookRequestDTO() reqdto.BookRequest {
	req := reqdto.BookRequest{
		PrebookID:       b.PrebookID,
		HolderName:      b.HolderName,
		Email:           b.Email,
		Phone:           b.Phone,
		Payment:         reqdto.PaymentRequest{Method: b.Method, TransactionID: b.TransactionID},
		ClientReference: b.ClientReference,
	}
	for _, g := range b.Guests {
		req.Guests = append(req.Guests, reqdto.GuestRequest{
			OccupancyNumber: g.OccupancyNumber,
			FirstName:       g.FirstName,
			LastName:        g.LastName,
			Email:           g.Email,
		})
	}
	return req
}

func (b *BookingBuilder) BuildDomain() hotel.BookRequest {
	return hotel.BookRequest{
		PrebookID:       b.PrebookID,
		Holder:          hotel.Holder{Name: b.HolderName, Email: b.Email, Phone: b.Phone},
		Payment:         hotel.Payment{Method: b.Method, Token: b.TransactionID, HolderName: b.HolderName},
		Guests:          b.Guests,
		ClientReference: b.ClientReference,
	}
}

// BuildResult is the confirmation the gateway returns for this request.
func (b *BookingBuilder) BuildResult(bookingID string) hotel.BookingResult {
	return hotel.BookingResult{
		BookingID:             bookingID,
		HotelConfirmationCode: "HC-" + strings.TrimPrefix(bookingID, "bk-"),
		Status:                "CONFIRMED",
		ClientReference:       b.ClientReference,
		HolderName:            b.HolderName,
		Email:                 b.Email,
		PaymentMethod:         b.Method,
	}
}
