package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/ports"
)

const DefaultMaxReceiptBytes = 10 << 20

type PaymentService struct {
	auth         *AuthService
	reservations ports.ReservationAPI
	payments     ports.PaymentAPI
	inflight     inflight
	maxBytes     int64
}

func NewPaymentService(auth *AuthService, reservations ports.ReservationAPI, payments ports.PaymentAPI, guard ports.InflightGuard, maxBytes int64) *PaymentService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxReceiptBytes
	}

	return &PaymentService{
		auth:         auth,
		reservations: reservations,
		payments:     payments,
		inflight:     inflight{guard: guard},
		maxBytes:     maxBytes,
	}
}

// Upload sends a proof of payment and returns the refreshed reservation,
// whose payment status is then pending.
func (s *PaymentService) Upload(ctx context.Context, sessionID string, reservationID int64, reference string, file *domain.Upload) (*domain.Reservation, error) {
	if file == nil || file.Body == nil {
		return nil, invalid("archivo", "Selecciona un comprobante.")
	}

	if !acceptedReceipt(file.ContentType) {
		return nil, invalid("archivo", "El comprobante debe ser una imagen o un PDF.")
	}

	if file.Size > s.maxBytes {
		return nil, invalid("archivo", fmt.Sprintf("El comprobante supera el máximo de %d MB.", s.maxBytes>>20))
	}

	token, err := s.auth.requireToken(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	reservation, err := s.reservations.GetReservation(ctx, token, reservationID)
	if err != nil {
		return nil, s.auth.classify(ctx, sessionID, err)
	}

	if reservation.ReceiptLocked() {
		return nil, &RejectedError{Message: "Ya hay un comprobante en revisión o validado para esta reserva."}
	}

	key := fmt.Sprintf("receipt:%d", reservationID)
	err = s.inflight.run(ctx, key, func() error {
		if _, err := s.payments.UploadReceipt(ctx, token, reservationID, strings.TrimSpace(reference), *file); err != nil {
			return s.auth.classify(ctx, sessionID, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	refreshed, err := s.reservations.GetReservation(ctx, token, reservationID)
	if err != nil {
		return nil, s.auth.classify(ctx, sessionID, err)
	}

	return refreshed, nil
}

func (s *PaymentService) Validate(ctx context.Context, sessionID string, receiptID int64) (*domain.Receipt, error) {
	return s.review(ctx, sessionID, receiptID, s.payments.ValidateReceipt)
}

func (s *PaymentService) Reject(ctx context.Context, sessionID string, receiptID int64) (*domain.Receipt, error) {
	return s.review(ctx, sessionID, receiptID, s.payments.RejectReceipt)
}

type reviewFunc func(ctx context.Context, token string, receiptID int64) (*domain.Receipt, error)

func (s *PaymentService) review(ctx context.Context, sessionID string, receiptID int64, call reviewFunc) (*domain.Receipt, error) {
	sess, err := s.auth.RequireAdmin(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var receipt *domain.Receipt
	key := fmt.Sprintf("payment:%d", receiptID)
	err = s.inflight.run(ctx, key, func() error {
		var callErr error
		if receipt, callErr = call(ctx, sess.Token, receiptID); callErr != nil {
			return s.auth.classify(ctx, sessionID, callErr)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return receipt, nil
}

func acceptedReceipt(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	return strings.HasPrefix(ct, "image/") || ct == "application/pdf"
}
