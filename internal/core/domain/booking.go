package domain

// ExtraLine is an add-on service requested with a reservation.
type ExtraLine struct {
	ServiceID int64 `json:"id"`
	Quantity  int   `json:"cantidad"`
	UnitPrice Money `json:"precio"`
}

type ReservationPayload struct {
	CabinID        int64       `json:"cabana_id"`
	From           Date        `json:"fecha_inicio"`
	To             Date        `json:"fecha_fin"`
	Guests         int         `json:"cantidad_personas"`
	Pets           bool        `json:"con_mascotas"`
	Extras         []ExtraLine `json:"servicios,omitempty"`
	EstimatedTotal *float64    `json:"monto_total,omitempty"`
}

type Preview struct {
	Available Flag   `json:"disponible"`
	Message   string `json:"mensaje,omitempty"`
	Nights    *int   `json:"noches,omitempty"`
	Total     *Money `json:"monto_total,omitempty"`
}

type AvailabilityQuery struct {
	From   Date
	To     Date
	Guests int
}

type SearchPrefs struct {
	From   Date `json:"desde"`
	To     Date `json:"hasta"`
	Guests int  `json:"huespedes"`
}
