package reports

import (
	"sort"
	"strconv"
	"time"
)

// PageSize é o tamanho fixo de página das tabelas de relatório.
const PageSize = 25

// SortRows ordena as linhas pelo campo informado, sem mutar a entrada.
// Valores numéricos comparam como número; o resto compara como texto.
// Linhas sem o campo vão para o fim.
func SortRows(rows []Row, field string, desc bool) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)

	sort.SliceStable(out, func(i, j int) bool {
		vi, oki := out[i][field]
		vj, okj := out[j][field]
		if !oki || !okj {
			return oki && !okj
		}

		less := lessValues(vi, vj)
		if desc {
			return lessValues(vj, vi)
		}
		return less
	})
	return out
}

func lessValues(a, b any) bool {
	if na, ok := asNumber(a); ok {
		if nb, ok := asNumber(b); ok {
			return na < nb
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Before(tb)
		}
	}
	return asString(a) < asString(b)
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case time.Time:
		return s.Format(time.RFC3339)
	case bool:
		if s {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	default:
		return ""
	}
}

// Paginate devolve a página pedida (1-based) com PageSize linhas.
// Página fora do alcance devolve vazio.
func Paginate(rows []Row, page int) []Row {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(rows) {
		return []Row{}
	}
	end := start + PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// TotalPages calcula quantas páginas o conjunto gera.
func TotalPages(total int) int {
	if total == 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}
