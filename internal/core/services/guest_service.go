package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/ports"
)

// GuestRoster is returned after every guest mutation so the reservation view
// can refresh from server state.
type GuestRoster struct {
	Reservation *domain.Reservation `json:"reserva"`
	Guests      []domain.Guest      `json:"huespedes"`
	Capacity    int                 `json:"capacidad"`
	Declared    int                 `json:"cantidad_personas"`
}

func (r *GuestRoster) Full() bool {
	return r.Capacity > 0 && len(r.Guests) >= r.Capacity
}

// NeedsConfirmation is the soft limit: above the booked count but under capacity.
func (r *GuestRoster) NeedsConfirmation() bool {
	return !r.Full() && r.Declared > 0 && len(r.Guests) >= r.Declared
}

type GuestService struct {
	auth         *AuthService
	catalog      *CatalogService
	reservations ports.ReservationAPI
	guests       ports.GuestAPI
	inflight     inflight
}

func NewGuestService(auth *AuthService, catalog *CatalogService, reservations ports.ReservationAPI, guests ports.GuestAPI, guard ports.InflightGuard) *GuestService {
	return &GuestService{
		auth:         auth,
		catalog:      catalog,
		reservations: reservations,
		guests:       guests,
		inflight:     inflight{guard: guard},
	}
}

func (s *GuestService) List(ctx context.Context, sessionID string, reservationID int64) (*GuestRoster, error) {
	token, err := s.auth.requireToken(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return s.roster(ctx, sessionID, token, reservationID, false)
}

// Add enforces capacity as a hard limit and the booked guest count as a soft
// one that needs confirmed=true. Neither check calls the API on refusal.
func (s *GuestService) Add(ctx context.Context, sessionID string, reservationID int64, in domain.GuestInput, confirmed bool) (*GuestRoster, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Document = trimmedOrNil(in.Document)
	in.Phone = trimmedOrNil(in.Phone)

	if in.Name == "" {
		return nil, invalid("nombre", "El nombre del huésped es obligatorio.")
	}

	token, err := s.auth.requireToken(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	current, err := s.roster(ctx, sessionID, token, reservationID, true)
	if err != nil {
		return nil, err
	}

	if current.Full() {
		return nil, &RejectedError{Message: fmt.Sprintf("Se alcanzó la capacidad máxima de la cabaña (%d huéspedes).", current.Capacity)}
	}

	if current.NeedsConfirmation() && !confirmed {
		return nil, &ConfirmationRequiredError{
			Message: fmt.Sprintf("La reserva se hizo para %d personas. Agregar más huéspedes puede modificar el precio final. ¿Deseas continuar?", current.Declared),
		}
	}

	key := fmt.Sprintf("guest:add:%d", reservationID)
	err = s.inflight.run(ctx, key, func() error {
		if _, err := s.guests.AddGuest(ctx, token, reservationID, in); err != nil {
			return s.auth.classify(ctx, sessionID, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return s.roster(ctx, sessionID, token, reservationID, false)
}

func (s *GuestService) Remove(ctx context.Context, sessionID string, reservationID, guestID int64) (*GuestRoster, error) {
	token, err := s.auth.requireToken(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("guest:remove:%d", guestID)
	err = s.inflight.run(ctx, key, func() error {
		if err := s.guests.RemoveGuest(ctx, token, guestID); err != nil {
			return s.auth.classify(ctx, sessionID, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return s.roster(ctx, sessionID, token, reservationID, false)
}

// roster loads the reservation and its guests. With strict set, an unknown
// capacity is an error so the hard limit cannot be skipped.
func (s *GuestService) roster(ctx context.Context, sessionID, token string, reservationID int64, strict bool) (*GuestRoster, error) {
	reservation, err := s.reservations.GetReservation(ctx, token, reservationID)
	if err != nil {
		return nil, s.auth.classify(ctx, sessionID, err)
	}

	guests, err := s.guests.ListGuests(ctx, token, reservationID)
	if err != nil {
		return nil, s.auth.classify(ctx, sessionID, err)
	}

	capacity := reservation.Capacity()
	if capacity == 0 && reservation.CabinRef() != 0 {
		cabin, err := s.catalog.Cabin(ctx, reservation.CabinRef())
		switch {
		case err == nil:
			capacity = cabin.Capacity
		case strict:
			return nil, fmt.Errorf("resolve capacity of reservation %d: %w", reservationID, err)
		default:
			log.Printf("Capacity lookup failed for reservation %d: %v", reservationID, err)
		}
	}

	if strict && capacity < 1 {
		return nil, &RejectedError{Message: "No se pudo verificar la capacidad de la cabaña. Intenta nuevamente."}
	}

	if guests == nil {
		guests = []domain.Guest{}
	}

	return &GuestRoster{
		Reservation: reservation,
		Guests:      guests,
		Capacity:    capacity,
		Declared:    reservation.GuestCount,
	}, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}

	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}

	return &v
}
