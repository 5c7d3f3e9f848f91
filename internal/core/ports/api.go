package ports

import (
	"context"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
)

// The booking API owns availability, pricing, payment validation and reports.
// Every call takes the bearer token explicitly, empty for public endpoints.

type AuthAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (*domain.User, error)
}

type CabinAPI interface {
	ListCabins(ctx context.Context) ([]domain.Cabin, error)
	GetCabin(ctx context.Context, id int64) (*domain.Cabin, error)
	SearchAvailability(ctx context.Context, q domain.AvailabilityQuery) ([]domain.Cabin, error)
	CreateCabin(ctx context.Context, token string, in domain.CabinInput) (*domain.Cabin, error)
	UpdateCabin(ctx context.Context, token string, id int64, in domain.CabinInput) (*domain.Cabin, error)
	DeleteCabin(ctx context.Context, token string, id int64) error
	ListCabinImages(ctx context.Context, token string, cabinID int64) ([]domain.CabinImage, error)
	UploadCabinImage(ctx context.Context, token string, cabinID int64, file domain.Upload) (*domain.CabinImage, error)
	DeleteCabinImage(ctx context.Context, token string, cabinID, imageID int64) error
	SetCabinCover(ctx context.Context, token string, cabinID, imageID int64) error
}

type ReservationAPI interface {
	PreviewReservation(ctx context.Context, token string, p domain.ReservationPayload) (*domain.Preview, error)
	CreateReservation(ctx context.Context, token string, p domain.ReservationPayload) (*domain.Reservation, error)
	GetReservation(ctx context.Context, token string, id int64) (*domain.Reservation, error)
	ListMyReservations(ctx context.Context, token string) ([]domain.Reservation, error)
	ListReservations(ctx context.Context, token string, f domain.ReservationFilter) ([]domain.Reservation, error)
	UpdateReservation(ctx context.Context, token string, id int64, patch domain.ReservationPatch) (*domain.Reservation, error)
	CheckIn(ctx context.Context, token string, id int64) (*domain.Reservation, error)
	CheckOut(ctx context.Context, token string, id int64) (*domain.Reservation, error)
	AddExtras(ctx context.Context, token string, id int64, extras []domain.ExtraLine) (*domain.Reservation, error)
}

type GuestAPI interface {
	ListGuests(ctx context.Context, token string, reservationID int64) ([]domain.Guest, error)
	AddGuest(ctx context.Context, token string, reservationID int64, in domain.GuestInput) (*domain.Guest, error)
	RemoveGuest(ctx context.Context, token string, guestID int64) error
}

type PaymentAPI interface {
	UploadReceipt(ctx context.Context, token string, reservationID int64, reference string, file domain.Upload) (*domain.Receipt, error)
	ValidateReceipt(ctx context.Context, token string, receiptID int64) (*domain.Receipt, error)
	RejectReceipt(ctx context.Context, token string, receiptID int64) (*domain.Receipt, error)
}

type ServiceAPI interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	AdminListServices(ctx context.Context, token string) ([]domain.Service, error)
	CreateService(ctx context.Context, token string, in domain.ServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, token string, id int64, in domain.ServiceInput) (*domain.Service, error)
	DeleteService(ctx context.Context, token string, id int64) error
}

type ReportAPI interface {
	OccupancyReport(ctx context.Context, token string, from, to string) (*domain.Document, error)
}
