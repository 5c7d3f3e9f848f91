package domain

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("end date must be after start date")

// Nights is the strict day difference used when booking; zero or negative
// ranges are rejected rather than rounded.
func Nights(from, to Date) (int, error) {
	if from.IsZero() || to.IsZero() {
		return 0, ErrInvalidRange
	}

	diff := to.Sub(from.Time)
	if diff%(24*time.Hour) != 0 {
		return 0, ErrInvalidRange
	}

	n := int(diff / (24 * time.Hour))
	if n < 1 {
		return 0, ErrInvalidRange
	}

	return n, nil
}

// DisplayNights clamps to one night for presentation only.
func DisplayNights(from, to Date) int {
	if from.IsZero() || to.IsZero() {
		return 1
	}

	n := int(to.Sub(from.Time).Round(24*time.Hour) / (24 * time.Hour))
	if n < 1 {
		return 1
	}

	return n
}

type Estimate struct {
	Nights      int     `json:"noches"`
	NightlyRate float64 `json:"precio_noche"`
	Lodging     float64 `json:"monto_alojamiento"`
	Extras      float64 `json:"monto_servicios"`
	Total       float64 `json:"monto_total"`
}

// EstimateStay is a display value; the backend total is authoritative.
func EstimateStay(nights int, rate float64, extras []ExtraLine) Estimate {
	est := Estimate{
		Nights:      nights,
		NightlyRate: rate,
		Lodging:     float64(nights) * rate,
	}

	for _, e := range extras {
		est.Extras += float64(e.Quantity) * e.UnitPrice.Float()
	}

	est.Total = est.Lodging + est.Extras
	return est
}
