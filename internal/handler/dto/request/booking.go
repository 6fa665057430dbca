package request

import (
	"strings"

	"smartstay-gateway/internal/domain/hotel"
	"smartstay-gateway/internal/pkg/patch"
)

// PrebookRequest takes offerId; rateId is the older name for the same field.
type PrebookRequest struct {
	OfferID       string `json:"offerId"`
	RateID        string `json:"rateId"`
	UsePaymentSDK *bool  `json:"usePaymentSdk"`
}

func (r *PrebookRequest) ToDomain() (string, bool) {
	id := strings.TrimSpace(r.OfferID)
	if id == "" {
		id = strings.TrimSpace(r.RateID)
	}
	return id, patch.Coalesce(r.UsePaymentSDK, false)
}

// PaymentRequest is a tokenized payment. Card data fields must stay empty.
type PaymentRequest struct {
	Method        string `json:"method"`
	Token         string `json:"token"`
	TransactionID string `json:"transactionId"`
	HolderName    string `json:"holderName"`

	CardNumber string `json:"cardNumber" binding:"isdefault"`
	CVC        string `json:"cvc" binding:"isdefault"`
	CVV        string `json:"cvv" binding:"isdefault"`
	Expiry     string `json:"expiry" binding:"isdefault"`
}

type HolderRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type GuestRequest struct {
	OccupancyNumber int    `json:"occupancyNumber" binding:"omitempty,min=1"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName"`
	Email           string `json:"email" binding:"omitempty,email"`
}

// BookRequest accepts the holder either flat (holderName, email, phone) or
// as a holder object.
type BookRequest struct {
	PrebookID       string         `json:"prebookId" binding:"required"`
	HolderName      string         `json:"holderName"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Holder          *HolderRequest `json:"holder"`
	Payment         PaymentRequest `json:"payment"`
	Guests          []GuestRequest `json:"guests" binding:"dive"`
	ClientReference string         `json:"clientReference"`
}

func (r *BookRequest) ToDomain() hotel.BookRequest {
	holder := hotel.Holder{Name: strings.TrimSpace(r.HolderName), Email: strings.TrimSpace(r.Email), Phone: r.Phone}
	if r.Holder != nil {
		if holder.Name == "" {
			holder.Name = strings.TrimSpace(r.Holder.FirstName + " " + r.Holder.LastName)
		}
		if holder.Email == "" {
			holder.Email = strings.TrimSpace(r.Holder.Email)
		}
		if holder.Phone == "" {
			holder.Phone = r.Holder.Phone
		}
	}

	token := r.Payment.Token
	if token == "" {
		token = r.Payment.TransactionID
	}
	method := r.Payment.Method
	if method == "" {
		method = hotel.DefaultPaymentMethod
	}
	payHolder := strings.TrimSpace(r.Payment.HolderName)
	if payHolder == "" {
		payHolder = holder.Name
	}

	var guests []hotel.Guest
	for i, g := range r.Guests {
		n := g.OccupancyNumber
		if n == 0 {
			n = i + 1
		}
		guests = append(guests, hotel.Guest{OccupancyNumber: n, FirstName: g.FirstName, LastName: g.LastName, Email: g.Email})
	}

	return hotel.BookRequest{
		PrebookID:       strings.TrimSpace(r.PrebookID),
		Holder:          holder,
		Payment:         hotel.Payment{Method: method, Token: token, HolderName: payHolder},
		Guests:          guests,
		ClientReference: strings.TrimSpace(r.ClientReference),
	}
}
