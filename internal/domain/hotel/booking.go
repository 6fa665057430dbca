package hotel

import (
	"net/mail"
	"strings"

	"smartstay-gateway/internal/pkg/errs"
)

// Payment is already tokenized by an external PCI-compliant SDK. Raw card
// numbers have no field here.
type Payment struct {
	Method     string `json:"method"`
	Token      string `json:"token,omitempty"`
	HolderName string `json:"holderName"`
}

type Guest struct {
	OccupancyNumber int    `json:"occupancyNumber"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email,omitempty"`
}

type Holder struct {
	Name  string
	Email string
	Phone string
}

// FirstLast splits the holder name on the last space; a single word becomes
// the first name.
func (h Holder) FirstLast() (string, string) {
	name := strings.TrimSpace(h.Name)
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return name, ""
	}
	return strings.TrimSpace(name[:idx]), strings.TrimSpace(name[idx+1:])
}

type BookRequest struct {
	PrebookID       string
	Holder          Holder
	Payment         Payment
	Guests          []Guest
	ClientReference string
}

const DefaultPaymentMethod = "ACC_CREDIT_CARD"

func (r BookRequest) Validate() error {
	if strings.TrimSpace(r.PrebookID) == "" {
		return errs.Validationf("prebookId is required")
	}
	if strings.TrimSpace(r.Holder.Name) == "" {
		return errs.Validationf("holder name is required")
	}
	if strings.TrimSpace(r.Holder.Email) == "" {
		return errs.Validationf("holder email is required")
	}
	if _, err := mail.ParseAddress(r.Holder.Email); err != nil {
		return errs.Validationf("holder email is malformed")
	}
	if strings.TrimSpace(r.Payment.HolderName) == "" {
		return errs.Validationf("payment holder name is required")
	}
	return nil
}

// GuestList returns the guest list, defaulting to the holder as the single guest.
func (r BookRequest) GuestList() []Guest {
	if len(r.Guests) > 0 {
		return r.Guests
	}
	first, last := r.Holder.FirstLast()
	return []Guest{{OccupancyNumber: 1, FirstName: first, LastName: last, Email: r.Holder.Email}}
}

// BookingResult is terminal: this system never updates it.
type BookingResult struct {
	BookingID             string  `json:"bookingId"`
	HotelConfirmationCode string  `json:"hotelConfirmationCode"`
	Status                string  `json:"status,omitempty"`
	HotelID               string  `json:"hotelId,omitempty"`
	Price                 float64 `json:"price,omitempty"`
	Currency              string  `json:"currency,omitempty"`
	ClientReference       string  `json:"clientReference,omitempty"`
	HolderName            string  `json:"holderName"`
	Email                 string  `json:"email"`
	PaymentMethod         string  `json:"paymentMethod"`
}

// ParseBooking reads the vendor booking payload and echoes guest/payment data.
func ParseBooking(body []byte, req BookRequest) (BookingResult, error) {
	raw, err := unwrapData(body)
	if err != nil {
		return BookingResult{}, err
	}
	method := req.Payment.Method
	if method == "" {
		method = DefaultPaymentMethod
	}
	ref := firstString(raw, []string{"clientReference"})
	if ref == "" {
		ref = req.ClientReference
	}
	return BookingResult{
		BookingID:             firstString(raw, []string{"bookingId", "booking_id", "id"}),
		HotelConfirmationCode: firstString(raw, []string{"hotelConfirmationCode", "hotel_confirmation_code", "confirmationCode"}),
		Status:                firstString(raw, []string{"status"}),
		HotelID:               firstString(raw, []string{"hotel.hotelId", "hotelId"}),
		Price:                 firstNumber(raw, []string{"price", "totalPrice"}),
		Currency:              firstString(raw, []string{"currency"}),
		ClientReference:       ref,
		HolderName:            req.Holder.Name,
		Email:                 req.Holder.Email,
		PaymentMethod:         method,
	}, nil
}
