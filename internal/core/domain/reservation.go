package domain

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pendiente"
	ReservationConfirmed ReservationStatus = "confirmada"
	ReservationCheckIn   ReservationStatus = "checkin"
	ReservationCheckOut  ReservationStatus = "checkout"
	ReservationPaid      ReservationStatus = "pagada"
	ReservationCancelled ReservationStatus = "cancelada"
)

// PaymentStatus is empty while no receipt is on file.
type PaymentStatus string

const (
	PaymentNone      PaymentStatus = ""
	PaymentPending   PaymentStatus = "pendiente"
	PaymentValidated PaymentStatus = "validado"
	PaymentRejected  PaymentStatus = "rechazado"
)

type Reservation struct {
	ID            int64             `json:"id"`
	CabinID       int64             `json:"cabana_id"`
	UserID        int64             `json:"user_id"`
	From          Date              `json:"fecha_inicio"`
	To            Date              `json:"fecha_fin"`
	GuestCount    int               `json:"cantidad_personas"`
	Pets          Flag              `json:"con_mascotas"`
	Status        ReservationStatus `json:"estado"`
	PaymentStatus PaymentStatus     `json:"estado_pago"`
	NightlyRate   *Money            `json:"precio_noche,omitempty"`
	Total         *Money            `json:"monto_total,omitempty"`
	AmountPaid    *Money            `json:"monto_pagado,omitempty"`
	Deposit       *Money            `json:"senia_monto,omitempty"`
	ExtrasTotal   *Money            `json:"monto_servicios,omitempty"`
	Cabin         *Cabin            `json:"cabana,omitempty"`
	User          *User             `json:"user,omitempty"`
	Guests        []Guest           `json:"huespedes,omitempty"`
	Services      []ServiceLine     `json:"servicios,omitempty"`
	LatestReceipt *Receipt          `json:"ultimo_pago,omitempty"`
}

type Guest struct {
	ID            int64  `json:"id"`
	ReservationID int64  `json:"reserva_id,omitempty"`
	Name          string `json:"nombre"`
	Document      string `json:"rut,omitempty"`
	Phone         string `json:"telefono,omitempty"`
}

type GuestInput struct {
	Name     string  `json:"nombre" validate:"required"`
	Document *string `json:"rut"`
	Phone    *string `json:"telefono"`
}

type Receipt struct {
	ID            int64         `json:"id"`
	ReservationID int64         `json:"reserva_id,omitempty"`
	Amount        *Money        `json:"monto,omitempty"`
	Reference     string        `json:"referencia,omitempty"`
	FileURL       string        `json:"archivo_url,omitempty"`
	Status        PaymentStatus `json:"estado,omitempty"`
}

type ServiceLine struct {
	ServiceID int64  `json:"servicio_id"`
	Name      string `json:"nombre,omitempty"`
	Quantity  int    `json:"cantidad"`
	UnitPrice Money  `json:"precio_unitario"`
	Subtotal  *Money `json:"subtotal,omitempty"`
}

func (l ServiceLine) LineTotal() float64 {
	if l.Subtotal != nil {
		return l.Subtotal.Float()
	}

	return float64(l.Quantity) * l.UnitPrice.Float()
}

func (r *Reservation) Active() bool {
	return r.Status != ReservationCancelled
}

func (r *Reservation) CanCheckIn() bool {
	return r.Status == ReservationConfirmed || r.Status == ReservationPaid
}

func (r *Reservation) CanCheckOut() bool {
	return r.Status == ReservationCheckIn
}

// ReceiptLocked blocks new uploads while a receipt is under review or accepted.
func (r *Reservation) ReceiptLocked() bool {
	return r.PaymentStatus == PaymentPending || r.PaymentStatus == PaymentValidated
}

func (r *Reservation) CanValidatePayment() bool {
	return r.PaymentStatus == PaymentPending && r.LatestReceipt != nil
}

// Capacity is zero when the cabin was not embedded in the payload.
func (r *Reservation) Capacity() int {
	if r.Cabin == nil {
		return 0
	}

	return r.Cabin.Capacity
}

func (r *Reservation) CabinRef() int64 {
	if r.CabinID != 0 {
		return r.CabinID
	}

	if r.Cabin != nil {
		return r.Cabin.ID
	}

	return 0
}

type ReservationFilter struct {
	Status  ReservationStatus
	From    string
	To      string
	CabinID int64
	Query   string
}

type ReservationPatch struct {
	From   *Date              `json:"fecha_inicio,omitempty"`
	To     *Date              `json:"fecha_fin,omitempty"`
	Status *ReservationStatus `json:"estado,omitempty"`
}
