package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/ports"
)

type AdminReservationRow struct {
	Reservation        *domain.Reservation `json:"reserva"`
	Badge              string              `json:"estado_etiqueta"`
	Nights             int                 `json:"noches"`
	Ledger             domain.Ledger       `json:"finanzas"`
	CanCheckIn         bool                `json:"can_checkin"`
	CanCheckOut        bool                `json:"can_checkout"`
	CanValidatePayment bool                `json:"can_validate_payment"`
}

type Report struct {
	Filename string
	Document *domain.Document
}

type AdminService struct {
	auth         *AuthService
	catalog      *CatalogService
	cabins       ports.CabinAPI
	services     ports.ServiceAPI
	reservations ports.ReservationAPI
	reports      ports.ReportAPI
	inflight     inflight
}

func NewAdminService(
	auth *AuthService,
	catalog *CatalogService,
	cabins ports.CabinAPI,
	services ports.ServiceAPI,
	reservations ports.ReservationAPI,
	reports ports.ReportAPI,
	guard ports.InflightGuard,
) *AdminService {
	return &AdminService{
		auth:         auth,
		catalog:      catalog,
		cabins:       cabins,
		services:     services,
		reservations: reservations,
		reports:      reports,
		inflight:     inflight{guard: guard},
	}
}

func (s *AdminService) Cabins(ctx context.Context, sessionID string) ([]domain.Cabin, error) {
	if _, err := s.auth.RequireAdmin(ctx, sessionID); err != nil {
		return nil, err
	}

	cabins, err := s.cabins.ListCabins(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cabins: %w", err)
	}

	return cabins, nil
}

func (s *AdminService) CreateCabin(ctx context.Context, sessionID string, in domain.CabinInput) (*domain.Cabin, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	sess, err := s.auth.RequireAdmin(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cabin, err := s.cabins.CreateCabin(ctx, sess.Token, in)
	if err != nil {
		return nil, s.auth.classify(ctx, sessionID, err)
	}

	s.catalog.Invalidate(ctx)
	return cabin, nil
}

func (s *AdminService) UpdateCabin(ctx context.Context, sessionID string, id int64, in domain.CabinInput) (*domain.Cabin, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	sess, err := s.auth.RequireAdmin(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var cabin *domain.Cabin
	err = s.inflight.run(ctx, fmt.Sprintf("cabin:%d", id), func() error {
		var callErr error
		if cabin, callErr = s.cabins.UpdateCabin(ctx, sess.Token, id, in); callErr != nil {
			return s.auth.classify(ctx, sessionID, callErr)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.catalog.Invalidate(ctx)
	return cabin, nil
}

// DeleteCabin is a hard delete and needs confirmed=true.
func (s *AdminService) DeleteCabin(ctx context.Context, sessionID string, id int64, confirmed bool) error {
	if !confirmed {
		return &ConfirmationRequiredError{Message: "¿Eliminar esta cabaña? Esta acción no se puede deshacer."}
	}

	sess, err := s.auth.RequireAdmin(ctx, sessionID)
	if err != nil {
		return err
	}

	err = s.inflight.run(ctx, fmt.Sprintf("cabin:%d", id), func() error {
		if err := s.cabins.DeleteCabin(ctx, sess.Token, id); err != nil {
			return s.auth.classify(ctx, sessionID, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.catalog.Invalidate(ctx)
	return nil
}

func (s *AdminService) CabinImages(ctx context.Context, sessionID string, cabinID int64) ([]domain.CabinImage, error) {
	sess, err := s.auth.RequireAdmin(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	images, err := s.cabins.ListCabinImages(ctx, sess.Token, cabinID)
	if err != nil {
		return nil, s.auth.classify(ctx, sessionID, err)
	}

	return images, nil
}

func (s *AdminService) UploadCabinImage(ctx context.Context, sessionID string, cabinID int64, file *domain.Upload) (*domain.CabinImage, error) {
	if file == nil || file.Body == nil {
		return nil, invalid("imagen", "Selecciona una imagen.")
	}

	if !strings.HasPrefix(strings.ToLower(file.ContentType), "image/") {
		return nil, invalid("imagen", "El archivo debe ser una imagen.")
	}

	sess, err := s.auth.RequireAdmin(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	img, err := s.cabins.UploadCabinImage(ctx, sess.Token, cabinID, *file)
	if err != nil {
		return nil, s.auth.classify(ctx, sessionID, err)
	}

	s.catalog.Invalidate(ctx)
	return img, nil
}

func (s *AdminService) DeleteCabinImage(ctx context.Context, sessionID string, cabinID, imageID int64, confirmed bool) error {
	if !confirmed {
		return &ConfirmationRequiredError{Message: "¿Eliminar esta imagen?"}
	}

	sess, err := s.auth.RequireAdmin(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := s.cabins.DeleteCabinImage(ctx, sess.Token, cabinID, imageID); err != nil {
		return s.auth.classify(ctx, sessionID, err)
	}

	s.catalog.Invalidate(ctx)
	return nil
}

func (s *AdminService) SetCabinCover(ctx context.Context, sessionID string, cabinID, imageID int64) error {
	sess, err := s.auth.RequireAdmin(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := s.cabins.SetCabinCover(ctx, sess.Token, cabinID, imageID); err != nil {
		return s.auth.classify(ctx, sessionID, err)
	}

	s.catalog.Invalidate(ctx)
	return nil
}

func (s *AdminService) Services(ctx context.Context, sessionID string) ([]domain.Service, error) {
	sess, err := s.auth.RequireAdmin(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	list, err := s.services.AdminListServices(ctx, sess.Token)
	if err != nil {
		return nil, s.auth.classify(ctx, sessionID, err)
	}

	return list, nil
}

func (s *AdminService) CreateService(ctx context.Context, sessionID string, in domain.ServiceInput) (*domain.Service, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	sess, err := s.auth.RequireAdmin(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	svc, err := s.services.CreateService(ctx, sess.Token, in)
	if err != nil {
		return nil, s.auth.classify(ctx, sessionID, err)
	}

	return svc, nil
}

func (s *AdminService) UpdateService(ctx context.Context, sessionID string, id int64, in domain.ServiceInput) (*domain.Service, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	sess, err := s.auth.RequireAdmin(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var svc *domain.Service
	err = s.inflight.run(ctx, fmt.Sprintf("service:%d", id), func() error {
		var callErr error
		if svc, callErr = s.services.UpdateService(ctx, sess.Token, id, in); callErr != nil {
			return s.auth.classify(ctx, sessionID, callErr)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return svc, nil
}

func (s *AdminService) DeleteService(ctx context.Context, sessionID string, id int64, confirmed bool) error {
	if !confirmed {
		return &ConfirmationRequiredError{Message: "¿Eliminar este servicio? Esta acción no se puede deshacer."}
	}

	sess, err := s.auth.RequireAdmin(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := s.services.DeleteService(ctx, sess.Token, id); err != nil {
		return s.auth.classify(ctx, sessionID, err)
	}

	return nil
}

// Reservations lists bookings with their derived money columns. The ledger is
// display-only, the backend keeps the real amounts.
func (s *AdminService) Reservations(ctx context.Context, sessionID string, f domain.ReservationFilter) ([]AdminReservationRow, error) {
	if f.From != "" {
		if _, err := domain.ParseDate(f.From); err != nil {
			return nil, invalid("desde", "Fecha inválida.")
		}
	}

	if f.To != "" {
		if _, err := domain.ParseDate(f.To); err != nil {
			return nil, invalid("hasta", "Fecha inválida.")
		}
	}

	sess, err := s.auth.RequireAdmin(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	list, err := s.reservations.ListReservations(ctx, sess.Token, f)
	if err != nil {
		return nil, s.auth.classify(ctx, sessionID, err)
	}

	rows := make([]AdminReservationRow, 0, len(list))
	for i := range list {
		r := &list[i]
		rows = append(rows, AdminReservationRow{
			Reservation:        r,
			Badge:              StatusBadge(r),
			Nights:             domain.DisplayNights(r.From, r.To),
			Ledger:             domain.ComputeLedger(r),
			CanCheckIn:         r.CanCheckIn(),
			CanCheckOut:        r.CanCheckOut(),
			CanValidatePayment: r.CanValidatePayment(),
		})
	}

	return rows, nil
}

func (s *AdminService) CheckIn(ctx context.Context, sessionID string, reservationID int64) (*domain.Reservation, error) {
	return s.transition(ctx, sessionID, reservationID, "checkin", s.reservations.CheckIn)
}

func (s *AdminService) CheckOut(ctx context.Context, sessionID string, reservationID int64) (*domain.Reservation, error) {
	return s.transition(ctx, sessionID, reservationID, "checkout", s.reservations.CheckOut)
}

type transitionFunc func(ctx context.Context, token string, id int64) (*domain.Reservation, error)

func (s *AdminService) transition(ctx context.Context, sessionID string, reservationID int64, action string, call transitionFunc) (*domain.Reservation, error) {
	sess, err := s.auth.RequireAdmin(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var updated *domain.Reservation
	err = s.inflight.run(ctx, fmt.Sprintf("%s:%d", action, reservationID), func() error {
		var callErr error
		if updated, callErr = call(ctx, sess.Token, reservationID); callErr != nil {
			return s.auth.classify(ctx, sessionID, callErr)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

// OccupancyReport fetches the rendered PDF; both bounds are optional.
func (s *AdminService) OccupancyReport(ctx context.Context, sessionID string, from, to string) (*Report, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)

	var start, end domain.Date
	var err error
	if from != "" {
		if start, err = domain.ParseDate(from); err != nil {
			return nil, invalid("desde", "Fecha inválida.")
		}
	}

	if to != "" {
		if end, err = domain.ParseDate(to); err != nil {
			return nil, invalid("hasta", "Fecha inválida.")
		}
	}

	if !start.IsZero() && !end.IsZero() && end.Before(start.Time) {
		return nil, invalid("hasta", "La fecha final debe ser posterior a la inicial.")
	}

	sess, err := s.auth.RequireAdmin(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	doc, err := s.reports.OccupancyReport(ctx, sess.Token, from, to)
	if err != nil {
		return nil, s.auth.classify(ctx, sessionID, err)
	}

	if doc.ContentType == "" {
		doc.ContentType = "application/pdf"
	}

	return &Report{Filename: reportFilename(from, to), Document: doc}, nil
}

func reportFilename(from, to string) string {
	name := "reporte ocupacion"
	if from != "" {
		name += " " + from
	}
	if to != "" {
		name += " " + to
	}

	return slug.Make(name) + ".pdf"
}
