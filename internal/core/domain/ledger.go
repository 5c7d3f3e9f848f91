package domain

import "math"

// DepositRate is the suggested deposit share. It is also the last-resort
// paid amount for validated payments that carry no explicit amount, and rows
// computed that way are flagged Estimated.
const DepositRate = 0.3

type Ledger struct {
	Total            float64 `json:"monto_total"`
	Paid             float64 `json:"monto_pagado"`
	Balance          float64 `json:"saldo"`
	PaidPercent      int     `json:"porcentaje_pagado"`
	SuggestedDeposit float64 `json:"senia_sugerida"`
	Estimated        bool    `json:"pagado_estimado"`
}

func ReservationTotal(r *Reservation) float64 {
	if r.Total != nil {
		return r.Total.Float()
	}

	rate := MoneyValue(r.NightlyRate)
	if rate == 0 && r.Cabin != nil {
		rate = r.Cabin.NightlyRate.Float()
	}

	if rate > 0 && !r.From.IsZero() && !r.To.IsZero() {
		return float64(DisplayNights(r.From, r.To)) * rate
	}

	return 0
}

func ComputeLedger(r *Reservation) Ledger {
	total := ReservationTotal(r)
	l := Ledger{Total: total}

	if total > 0 {
		l.SuggestedDeposit = math.Round(total * DepositRate)
	}

	switch {
	case MoneyValue(r.AmountPaid) > 0:
		l.Paid = MoneyValue(r.AmountPaid)
	case r.PaymentStatus == PaymentValidated:
		switch {
		case MoneyValue(r.Deposit) > 0:
			l.Paid = MoneyValue(r.Deposit)
		case r.LatestReceipt != nil && MoneyValue(r.LatestReceipt.Amount) > 0:
			l.Paid = MoneyValue(r.LatestReceipt.Amount)
		default:
			l.Paid = l.SuggestedDeposit
			l.Estimated = true
		}
	}

	l.Balance = math.Max(total-l.Paid, 0)
	l.PaidPercent = PaidPercent(l.Paid, total)
	return l
}

func PaidPercent(paid, total float64) int {
	if total <= 0 {
		return 0
	}

	if paid >= total {
		return 100
	}

	return int(math.Round(paid / total * 100))
}
