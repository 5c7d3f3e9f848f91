package services

import (
	"strings"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
)

// parseStay validates a check-in/check-out pair without any remote call.
func parseStay(from, to string) (domain.Date, domain.Date, int, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return domain.Date{}, domain.Date{}, 0, invalid("fechas", "Selecciona las fechas de llegada y salida.")
	}

	start, err := domain.ParseDate(from)
	if err != nil {
		return domain.Date{}, domain.Date{}, 0, invalid("desde", "Fecha de llegada inválida.")
	}

	end, err := domain.ParseDate(to)
	if err != nil {
		return domain.Date{}, domain.Date{}, 0, invalid("hasta", "Fecha de salida inválida.")
	}

	nights, err := domain.Nights(start, end)
	if err != nil {
		return domain.Date{}, domain.Date{}, 0, invalid("hasta", "La fecha de salida debe ser posterior a la de llegada.")
	}

	return start, end, nights, nil
}
