package finance

import (
	"math"
	"time"
)

// Funções puras do motor financeiro: projeção de vencidos, divisão de
// parcelas e datas de recorrência. A escrita fica no Service.

// ProjectOverdue marca como Vencido toda conta Pendente com vencimento
// estritamente anterior a today (comparação por dia). Devolve a fatia
// projetada e se algo mudou; não persiste nada.
func ProjectOverdue(accounts []Account, today time.Time) ([]Account, bool) {
	cutoff := dayStart(today)
	changed := false

	out := make([]Account, len(accounts))
	copy(out, accounts)
	for i := range out {
		if out[i].Status == StatusPendente && dayStart(out[i].DueDate).Before(cutoff) {
			out[i].Status = StatusVencido
			changed = true
		}
	}
	return out, changed
}

// SplitAmounts divide total em n parcelas arredondadas a centavos;
// a última absorve a sobra para que a soma feche exata.
func SplitAmounts(total float64, n int) []float64 {
	if n <= 1 {
		return []float64{total}
	}

	each := math.Round(total/float64(n)*100) / 100
	out := make([]float64, n)
	var acc float64
	for i := 0; i < n-1; i++ {
		out[i] = each
		acc += each
	}
	out[n-1] = math.Round((total-acc)*100) / 100
	return out
}

// NextDueDate calcula o próximo vencimento de uma recorrência a partir
// de hoje (não da última parcela gerada: sem backfill de períodos
// perdidos, o vencimento acompanha a data da invocação).
func NextDueDate(freq Frequency, today time.Time) (time.Time, bool) {
	base := dayStart(today)
	switch freq {
	case FreqSemanal:
		return base.AddDate(0, 0, 7), true
	case FreqMensal:
		return base.AddDate(0, 1, 0), true
	case FreqAnual:
		return base.AddDate(1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
