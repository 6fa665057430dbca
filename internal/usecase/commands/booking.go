package commands

import (
	"context"
	"log/slog"
	"strings"

	"smartstay-gateway/internal/domain/hotel"
	"smartstay-gateway/internal/infra"
	"smartstay-gateway/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commands

type BookingCommands interface {
	Prebook(ctx context.Context, offerID string, usePaymentSDK bool) (*hotel.PrebookResult, error)
	Book(ctx context.Context, req hotel.BookRequest) (*hotel.BookingResult, error)
	Cancel(ctx context.Context, bookingID string) (*hotel.CancellationResult, error)
}

type bookingCommandsImpl struct {
	writer BookingWriter
	logger *slog.Logger
	newRef func() string
}

func NewBookingCommands(writer BookingWriter, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		writer: writer,
		logger: logger,
		newRef: func() string { return uuid.NewString() },
	}
}

func (uc *bookingCommandsImpl) Prebook(ctx context.Context, offerID string, usePaymentSDK bool) (*hotel.PrebookResult, error) {
	if strings.TrimSpace(offerID) == "" {
		return nil, errs.Validationf("offerId is required")
	}
	body, err := uc.writer.Prebook(ctx, offerID, usePaymentSDK)
	if err != nil {
		return nil, err
	}
	res, err := hotel.ParsePrebook(body)
	if err != nil {
		return nil, errs.Wrap(err, "parse prebook")
	}
	if res.OfferID == "" {
		res.OfferID = offerID
	}
	if len(res.Warnings) > 0 {
		uc.logger.Info("Prebook returned warnings",
			slog.String("prebook_id", res.PrebookID),
			slog.Any("warnings", res.Warnings),
		)
	}
	return &res, nil
}

// Book generates a clientReference when the caller did not supply one.
func (uc *bookingCommandsImpl) Book(ctx context.Context, req hotel.BookRequest) (*hotel.BookingResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.ClientReference) == "" {
		req.ClientReference = uc.newRef()
	}
	body, err := uc.writer.Book(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := hotel.ParseBooking(body, req)
	if err != nil {
		return nil, errs.Wrap(err, "parse booking")
	}
	uc.logger.Info("Booking confirmed",
		slog.String("booking_id", res.BookingID),
		slog.String("client_reference", res.ClientReference),
	)
	return &res, nil
}

// Cancel reshapes the vendor answer. A vendor refusal carrying the
// non-refundable marker is a result, not a failure.
func (uc *bookingCommandsImpl) Cancel(ctx context.Context, bookingID string) (*hotel.CancellationResult, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, errs.Validationf("bookingId is required")
	}
	body, err := uc.writer.Cancel(ctx, bookingID)
	if err != nil {
		up, ok := infra.AsUpstream(err)
		if !ok || len(up.Body) == 0 || !hotel.IsNonRefundableCode(hotel.ErrorCode(up.Body)) {
			return nil, err
		}
		body = up.Body
	}
	res, perr := hotel.ReshapeCancellation(body)
	if perr != nil {
		return nil, errs.Wrap(perr, "parse cancellation")
	}
	if res.BookingID == "" {
		res.BookingID = bookingID
	}
	return &res, nil
}
