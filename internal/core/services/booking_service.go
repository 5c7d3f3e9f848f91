package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/ports"
)

type ReserveRequest struct {
	CabinID int64              `json:"cabana_id"`
	From    string             `json:"desde"`
	To      string             `json:"hasta"`
	Guests  int                `json:"huespedes"`
	Pets    bool               `json:"con_mascotas"`
	Extras  []domain.ExtraLine `json:"servicios"`
}

// ReserveOutcome always carries the next location. Reservation is set only
// when the booking was created.
type ReserveOutcome struct {
	Redirect    string              `json:"redirect"`
	Message     string              `json:"message,omitempty"`
	Reservation *domain.Reservation `json:"reserva,omitempty"`
	Estimate    *domain.Estimate    `json:"estimado,omitempty"`
}

type BookingService struct {
	auth         *AuthService
	catalog      *CatalogService
	reservations ports.ReservationAPI
	inflight     inflight
}

func NewBookingService(auth *AuthService, catalog *CatalogService, reservations ports.ReservationAPI, guard ports.InflightGuard) *BookingService {
	return &BookingService{
		auth:         auth,
		catalog:      catalog,
		reservations: reservations,
		inflight:     inflight{guard: guard},
	}
}

// Reserve runs validation, the auth gate, session re-validation, the
// availability preview and finally creation. The backend stays authoritative
// for overlap and price.
func (s *BookingService) Reserve(ctx context.Context, sessionID string, req ReserveRequest) (*ReserveOutcome, error) {
	from, to, nights, err := parseStay(req.From, req.To)
	if err != nil {
		return nil, err
	}

	if req.Guests < 1 {
		return nil, invalid("huespedes", "Indica al menos un huésped.")
	}

	for _, e := range req.Extras {
		if e.ServiceID == 0 || e.Quantity < 1 {
			return nil, invalid("servicios", "Cada servicio adicional necesita una cantidad válida.")
		}
	}

	// A catalog failure does not block the registration redirect.
	cabin, cabinErr := s.catalog.Cabin(ctx, req.CabinID)
	if cabinErr == nil && cabin.Capacity > 0 && req.Guests > cabin.Capacity {
		return nil, invalid("huespedes", fmt.Sprintf("Esta cabaña admite hasta %d huéspedes.", cabin.Capacity))
	}

	target := CabinTarget(req.CabinID, from.String(), to.String(), req.Guests)

	token, err := s.auth.Token(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if token == "" {
		return &ReserveOutcome{Redirect: RegisterURL(target), Message: "Crea una cuenta para completar tu reserva."}, nil
	}

	if cabinErr != nil {
		return nil, cabinErr
	}

	est := domain.EstimateStay(nights, cabin.NightlyRate.Float(), req.Extras)
	payload := domain.ReservationPayload{
		CabinID: req.CabinID,
		From:    from,
		To:      to,
		Guests:  req.Guests,
		Pets:    req.Pets,
		Extras:  req.Extras,
	}

	var outcome *ReserveOutcome
	err = s.inflight.run(ctx, "booking:"+sessionID, func() error {
		var runErr error
		outcome, runErr = s.submit(ctx, sessionID, target, payload, est)
		return runErr
	})

	if err != nil {
		return nil, err
	}

	return outcome, nil
}

func (s *BookingService) submit(ctx context.Context, sessionID, target string, payload domain.ReservationPayload, est domain.Estimate) (*ReserveOutcome, error) {
	sess, err := s.auth.Current(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			return &ReserveOutcome{Redirect: LoginURL(target), Message: "Tu sesión expiró. Inicia sesión nuevamente."}, nil
		}

		return nil, err
	}

	preview, err := s.reservations.PreviewReservation(ctx, sess.Token, payload)
	if err != nil {
		log.Printf("Preview failed for cabin %d, continuing to creation: %v", payload.CabinID, err)
	} else if preview != nil && !bool(preview.Available) {
		msg := preview.Message
		if msg == "" {
			msg = msgUnavailable
		}

		return nil, &RejectedError{Message: msg}
	}

	total := est.Total
	payload.EstimatedTotal = &total

	reservation, err := s.reservations.CreateReservation(ctx, sess.Token, payload)
	if err != nil {
		var apiErr *ports.APIError
		if errors.As(err, &apiErr) && apiErr.IsAuth() {
			s.auth.expire(ctx, sessionID)
			return &ReserveOutcome{Redirect: LoginURL(target), Message: "Tu sesión expiró. Inicia sesión nuevamente."}, nil
		}

		return nil, rejection(err)
	}

	return &ReserveOutcome{
		Redirect:    RouteAccount,
		Message:     "Reserva creada.",
		Reservation: reservation,
		Estimate:    &est,
	}, nil
}

// CabinTarget is the cabin page with the chosen stay, used as the return path
// after login or registration.
func CabinTarget(cabinID int64, from, to string, guests int) string {
	params := url.Values{}
	if from != "" {
		params.Set("desde", from)
	}
	if to != "" {
		params.Set("hasta", to)
	}
	if guests > 0 {
		params.Set("huespedes", strconv.Itoa(guests))
	}

	path := fmt.Sprintf("/cabanas/%d", cabinID)
	if qs := params.Encode(); qs != "" {
		path += "?" + qs
	}

	return path
}
