package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/ports"
)

type ReservationView struct {
	Reservation  *domain.Reservation `json:"reserva"`
	Badge        string              `json:"estado_etiqueta"`
	Nights       int                 `json:"noches"`
	Ledger       domain.Ledger       `json:"finanzas"`
	UploadLocked bool                `json:"upload_locked"`
	CanCancel    bool                `json:"can_cancel"`
	CanAddExtras bool                `json:"can_add_extras"`
	Rebook       string              `json:"rebook_url"`
}

type AccountOverview struct {
	User     *domain.User      `json:"user"`
	Landing  string            `json:"landing"`
	Upcoming []ReservationView `json:"proximas"`
	Past     []ReservationView `json:"pasadas"`
}

type AccountService struct {
	auth         *AuthService
	reservations ports.ReservationAPI
	inflight     inflight
	now          func() time.Time
}

func NewAccountService(auth *AuthService, reservations ports.ReservationAPI, guard ports.InflightGuard) *AccountService {
	return &AccountService{
		auth:         auth,
		reservations: reservations,
		inflight:     inflight{guard: guard},
		now:          time.Now,
	}
}

func (s *AccountService) Overview(ctx context.Context, sessionID string) (*AccountOverview, error) {
	sess, err := s.auth.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	list, err := s.reservations.ListMyReservations(ctx, sess.Token)
	if err != nil {
		return nil, s.auth.classify(ctx, sessionID, err)
	}

	today := s.today()
	out := &AccountOverview{
		User:     sess.User,
		Landing:  LandingRoute(sess.Roles),
		Upcoming: []ReservationView{},
		Past:     []ReservationView{},
	}

	for i := range list {
		view := s.view(&list[i], today)
		if list[i].Active() && !list[i].To.Before(today.Time) {
			out.Upcoming = append(out.Upcoming, view)
		} else {
			out.Past = append(out.Past, view)
		}
	}

	sort.SliceStable(out.Upcoming, func(i, j int) bool {
		return out.Upcoming[i].Reservation.From.Before(out.Upcoming[j].Reservation.From.Time)
	})

	return out, nil
}

func (s *AccountService) view(r *domain.Reservation, today domain.Date) ReservationView {
	return ReservationView{
		Reservation:  r,
		Badge:        StatusBadge(r),
		Nights:       domain.DisplayNights(r.From, r.To),
		Ledger:       domain.ComputeLedger(r),
		UploadLocked: r.ReceiptLocked(),
		CanCancel:    r.Active() && r.Status != domain.ReservationCheckIn && r.Status != domain.ReservationCheckOut,
		CanAddExtras: extrasAllowed(r, today),
		Rebook:       rebookTarget(r),
	}
}

// StatusBadge prefers the payment state over the reservation state.
func StatusBadge(r *domain.Reservation) string {
	switch {
	case r.Status == domain.ReservationCancelled:
		return "Cancelada"
	case r.PaymentStatus == domain.PaymentPending:
		return "En revisión"
	case r.PaymentStatus == domain.PaymentValidated:
		return "Confirmada"
	case r.PaymentStatus == domain.PaymentRejected:
		return "Pago rechazado"
	case r.Status == domain.ReservationPending:
		return "Pendiente de pago"
	}

	return string(r.Status)
}

func (s *AccountService) Cancel(ctx context.Context, sessionID string, reservationID int64) (*domain.Reservation, error) {
	token, err := s.auth.requireToken(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	current, err := s.reservations.GetReservation(ctx, token, reservationID)
	if err != nil {
		return nil, s.auth.classify(ctx, sessionID, err)
	}

	if !current.Active() {
		return nil, &RejectedError{Message: "La reserva ya está cancelada."}
	}

	status := domain.ReservationCancelled
	return s.update(ctx, sessionID, token, reservationID, domain.ReservationPatch{Status: &status})
}

// ChangeDates applies the same date rules as a new booking.
func (s *AccountService) ChangeDates(ctx context.Context, sessionID string, reservationID int64, from, to string) (*domain.Reservation, error) {
	start, end, _, err := parseStay(from, to)
	if err != nil {
		return nil, err
	}

	token, err := s.auth.requireToken(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return s.update(ctx, sessionID, token, reservationID, domain.ReservationPatch{From: &start, To: &end})
}

func (s *AccountService) update(ctx context.Context, sessionID, token string, reservationID int64, patch domain.ReservationPatch) (*domain.Reservation, error) {
	var updated *domain.Reservation
	key := fmt.Sprintf("reservation:%d", reservationID)
	err := s.inflight.run(ctx, key, func() error {
		var callErr error
		if updated, callErr = s.reservations.UpdateReservation(ctx, token, reservationID, patch); callErr != nil {
			return s.auth.classify(ctx, sessionID, callErr)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

// AddExtras attaches catalog services to an active stay that has not ended.
func (s *AccountService) AddExtras(ctx context.Context, sessionID string, reservationID int64, extras []domain.ExtraLine) (*domain.Reservation, error) {
	if len(extras) == 0 {
		return nil, invalid("servicios", "Selecciona al menos un servicio.")
	}

	for _, e := range extras {
		if e.ServiceID == 0 || e.Quantity < 1 {
			return nil, invalid("servicios", "Cada servicio adicional necesita una cantidad válida.")
		}
	}

	token, err := s.auth.requireToken(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	current, err := s.reservations.GetReservation(ctx, token, reservationID)
	if err != nil {
		return nil, s.auth.classify(ctx, sessionID, err)
	}

	if !extrasAllowed(current, s.today()) {
		return nil, &RejectedError{Message: "Solo puedes agregar servicios a reservas activas que aún no terminan."}
	}

	var updated *domain.Reservation
	key := fmt.Sprintf("extras:%d", reservationID)
	err = s.inflight.run(ctx, key, func() error {
		var callErr error
		if updated, callErr = s.reservations.AddExtras(ctx, token, reservationID, extras); callErr != nil {
			return s.auth.classify(ctx, sessionID, callErr)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

// RebookTarget seeds a new booking with cabin and dates only.
func (s *AccountService) RebookTarget(ctx context.Context, sessionID string, reservationID int64) (string, error) {
	token, err := s.auth.requireToken(ctx, sessionID)
	if err != nil {
		return "", err
	}

	r, err := s.reservations.GetReservation(ctx, token, reservationID)
	if err != nil {
		return "", s.auth.classify(ctx, sessionID, err)
	}

	return rebookTarget(r), nil
}

func rebookTarget(r *domain.Reservation) string {
	return CabinTarget(r.CabinRef(), r.From.String(), r.To.String(), 0)
}

func extrasAllowed(r *domain.Reservation, today domain.Date) bool {
	if !r.Active() || r.Status == domain.ReservationCheckOut {
		return false
	}

	return !r.To.IsZero() && r.To.After(today.Time)
}

func (s *AccountService) today() domain.Date {
	now := s.now()
	return domain.NewDate(now.Year(), now.Month(), now.Day())
}
