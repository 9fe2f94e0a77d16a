package reports

import (
	"context"
	"time"

	"rebanho-backend/internal/domain/animals"
	"rebanho-backend/internal/domain/finance"
	"rebanho-backend/internal/domain/health"
)

// Consultas dos sete relatórios. Todas leem as coleções inteiras,
// filtram pela data efetiva do tipo e achatam as linhas com o
// código/nome do animal já resolvidos.

func inPeriod(d time.Time, p Period) bool {
	day := dateOnly(d)
	return !day.Before(dateOnly(p.Start)) && !day.After(dateOnly(p.End))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// matches: faceta vazia ou "Todos" não filtra.
func matches(filter, value string) bool {
	return filter == "" || filter == "Todos" || filter == value
}

func (s *Service) animalIndex(ctx context.Context) (map[string]animals.Animal, error) {
	list, err := s.src.Animals.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]animals.Animal, len(list))
	for _, a := range list {
		idx[a.ID] = a
	}
	return idx, nil
}

func codeName(idx map[string]animals.Animal, id string) (string, string) {
	if a, ok := idx[id]; ok {
		return a.Code, a.Name
	}
	return "N/A", "N/A"
}

// AnimalsReport filtra o rebanho por created_at e pelas facetas de
// espécie, sexo, status e categoria.
func (s *Service) AnimalsReport(ctx context.Context, p Period, f AnimalsFilter) (Result, error) {
	list, err := s.src.Animals.List(ctx)
	if err != nil {
		return Result{}, err
	}

	var ovinos, caprinos, machos, femeas float64
	rows := make([]Row, 0)
	for _, a := range list {
		if !inPeriod(a.CreatedAt, p) {
			continue
		}
		if !matches(f.Species, string(a.Species)) || !matches(f.Gender, string(a.Gender)) ||
			!matches(f.Status, a.Status) || !matches(f.Category, a.Category) {
			continue
		}

		switch a.Species {
		case animals.SpeciesOvino:
			ovinos++
		case animals.SpeciesCaprino:
			caprinos++
		}
		switch a.Gender {
		case animals.GenderMacho:
			machos++
		case animals.GenderFemea:
			femeas++
		}

		row := Row{
			"code":       a.Code,
			"name":       a.Name,
			"species":    string(a.Species),
			"breed":      a.Breed,
			"gender":     string(a.Gender),
			"birth_date": a.BirthDate,
			"weight":     a.Weight,
			"status":     a.Status,
			"location":   a.Location,
			"category":   a.Category,
			"pregnant":   a.Pregnant,
		}
		if a.ExpectedDelivery != nil {
			row["expected_delivery"] = *a.ExpectedDelivery
		}
		rows = append(rows, row)
	}

	return Result{
		Summary: map[string]float64{
			"total":    float64(len(rows)),
			"ovinos":   ovinos,
			"caprinos": caprinos,
			"machos":   machos,
			"femeas":   femeas,
		},
		Data: rows,
	}, nil
}

// WeightsReport agrupa as pesagens do período por animal e devolve
// min/max/média/última de cada um.
func (s *Service) WeightsReport(ctx context.Context, p Period) (Result, error) {
	weights, err := s.src.Weights.List(ctx)
	if err != nil {
		return Result{}, err
	}
	idx, err := s.animalIndex(ctx)
	if err != nil {
		return Result{}, err
	}

	type agg struct {
		count    int
		min, max float64
		sum      float64
		last     animals.Weight
	}
	byAnimal := make(map[string]*agg)
	order := make([]string, 0)
	total := 0

	for _, w := range weights {
		if !inPeriod(w.Date, p) {
			continue
		}
		total++
		a, ok := byAnimal[w.AnimalID]
		if !ok {
			a = &agg{min: w.Weight, max: w.Weight, last: w}
			byAnimal[w.AnimalID] = a
			order = append(order, w.AnimalID)
		}
		a.count++
		a.sum += w.Weight
		if w.Weight < a.min {
			a.min = w.Weight
		}
		if w.Weight > a.max {
			a.max = w.Weight
		}
		if w.Date.After(a.last.Date) {
			a.last = w
		}
	}

	rows := make([]Row, 0, len(order))
	var lastSum float64
	var lastCount int
	for _, animalID := range order {
		a := byAnimal[animalID]
		code, name := codeName(idx, animalID)
		rows = append(rows, Row{
			"animal_id":   animalID,
			"animal_code": code,
			"animal_name": name,
			"count":       float64(a.count),
			"min":         a.min,
			"max":         a.max,
			"avg":         a.sum / float64(a.count),
			"last_weight": a.last.Weight,
			"last_date":   a.last.Date,
		})
		if a.last.Weight > 0 {
			lastSum += a.last.Weight
			lastCount++
		}
	}

	var avgLast float64
	if lastCount > 0 {
		avgLast = lastSum / float64(lastCount)
	}
	return Result{
		Summary: map[string]float64{
			"total_weighings": float64(total),
			"animals_weighed": float64(len(rows)),
			"avg_last_weight": avgLast,
		},
		Data: rows,
	}, nil
}

// VaccinationsReport usa a data efetiva: aplicada quando existe, senão
// a agendada.
func (s *Service) VaccinationsReport(ctx context.Context, p Period, f VaccinationsFilter) (Result, error) {
	list, err := s.src.Vaccinations.List(ctx)
	if err != nil {
		return Result{}, err
	}
	idx, err := s.animalIndex(ctx)
	if err != nil {
		return Result{}, err
	}

	var scheduled, applied, cancelled float64
	rows := make([]Row, 0)
	for _, v := range list {
		effective := v.ScheduledDate
		if v.AppliedDate != nil {
			effective = *v.AppliedDate
		}
		if !inPeriod(effective, p) {
			continue
		}
		if !matches(f.Status, string(v.Status)) || !matches(f.VaccineType, v.VaccineType) {
			continue
		}

		switch v.Status {
		case health.VaccinationAgendada:
			scheduled++
		case health.VaccinationAplicada:
			applied++
		case health.VaccinationCancelada:
			cancelled++
		}

		code, name := codeName(idx, v.AnimalID)
		row := Row{
			"animal_code":    code,
			"animal_name":    name,
			"vaccine_name":   v.VaccineName,
			"vaccine_type":   v.VaccineType,
			"scheduled_date": v.ScheduledDate,
			"status":         string(v.Status),
			"veterinarian":   v.Veterinarian,
			"notes":          v.Notes,
		}
		if v.AppliedDate != nil {
			row["applied_date"] = *v.AppliedDate
		}
		rows = append(rows, row)
	}

	return Result{
		Summary: map[string]float64{
			"total":     float64(len(rows)),
			"scheduled": scheduled,
			"applied":   applied,
			"cancelled": cancelled,
		},
		Data: rows,
	}, nil
}

// MedicationsReport usa a data de aplicação só quando o status é
// Aplicado; senão a data prevista.
func (s *Service) MedicationsReport(ctx context.Context, p Period, f MedicationsFilter) (Result, error) {
	list, err := s.src.Medications.List(ctx)
	if err != nil {
		return Result{}, err
	}
	idx, err := s.animalIndex(ctx)
	if err != nil {
		return Result{}, err
	}

	var scheduled, applied, cancelled float64
	rows := make([]Row, 0)
	for _, m := range list {
		effective := m.Date
		if m.Status == health.MedicationAplicado && m.AppliedDate != nil {
			effective = *m.AppliedDate
		}
		if !inPeriod(effective, p) {
			continue
		}
		if !matches(f.Status, string(m.Status)) {
			continue
		}

		switch m.Status {
		case health.MedicationAgendado:
			scheduled++
		case health.MedicationAplicado:
			applied++
		case health.MedicationCancelado:
			cancelled++
		}

		code, name := codeName(idx, m.AnimalID)
		row := Row{
			"animal_code":     code,
			"animal_name":     name,
			"medication_name": m.MedicationName,
			"date":            m.Date,
			"status":          string(m.Status),
			"dosage":          m.Dosage,
			"veterinarian":    m.Veterinarian,
			"notes":           m.Notes,
		}
		if m.NextDate != nil {
			row["next_date"] = *m.NextDate
		}
		if m.AppliedDate != nil {
			row["applied_date"] = *m.AppliedDate
		}
		rows = append(rows, row)
	}

	return Result{
		Summary: map[string]float64{
			"total":     float64(len(rows)),
			"scheduled": scheduled,
			"applied":   applied,
			"cancelled": cancelled,
		},
		Data: rows,
	}, nil
}

// BreedingReport filtra por data de cobertura; o resumo conta por
// etapa além do total.
func (s *Service) BreedingReport(ctx context.Context, p Period, f BreedingFilter) (Result, error) {
	list, err := s.src.Breeding.List(ctx)
	if err != nil {
		return Result{}, err
	}
	idx, err := s.animalIndex(ctx)
	if err != nil {
		return Result{}, err
	}

	summary := map[string]float64{}
	rows := make([]Row, 0)
	for _, b := range list {
		if !inPeriod(b.BreedingDate, p) {
			continue
		}
		if !matches(f.Stage, b.Stage) {
			continue
		}

		stage := b.Stage
		if stage == "" {
			stage = "Não definido"
		}
		summary[stage]++

		femaleCode, femaleName := codeName(idx, b.FemaleAnimalID)
		maleCode, maleName := codeName(idx, b.MaleAnimalID)
		row := Row{
			"female_code":   femaleCode,
			"female_name":   femaleName,
			"male_code":     maleCode,
			"male_name":     maleName,
			"breeding_date": b.BreedingDate,
			"stage":         b.Stage,
			"status":        string(b.Status),
		}
		if b.ExpectedBirth != nil {
			row["expected_birth"] = *b.ExpectedBirth
		}
		if b.MatingStartDate != nil {
			row["mating_start_date"] = *b.MatingStartDate
		}
		if b.MatingEndDate != nil {
			row["mating_end_date"] = *b.MatingEndDate
		}
		if b.SeparationDate != nil {
			row["separation_date"] = *b.SeparationDate
		}
		if b.UltrasoundDate != nil {
			row["ultrasound_date"] = *b.UltrasoundDate
			row["ultrasound_result"] = b.UltrasoundResult
		}
		if b.BirthDate != nil {
			row["birth_date"] = *b.BirthDate
		}
		rows = append(rows, row)
	}

	summary["total"] = float64(len(rows))
	return Result{Summary: summary, Data: rows}, nil
}

// FinancialReport soma receita, despesa e saldo do livro-caixa no
// período.
func (s *Service) FinancialReport(ctx context.Context, p Period, f FinancialFilter) (Result, error) {
	list, err := s.src.Financial.List(ctx)
	if err != nil {
		return Result{}, err
	}
	idx, err := s.animalIndex(ctx)
	if err != nil {
		return Result{}, err
	}

	var revenue, expense float64
	rows := make([]Row, 0)
	for _, rec := range list {
		if !inPeriod(rec.Date, p) {
			continue
		}
		if !matches(f.Type, string(rec.Type)) || !matches(f.Category, rec.Category) {
			continue
		}

		switch rec.Type {
		case finance.TypeReceita:
			revenue += rec.Amount
		case finance.TypeDespesa:
			expense += rec.Amount
		}

		animalCode := ""
		if rec.AnimalID != "" {
			animalCode, _ = codeName(idx, rec.AnimalID)
		}
		rows = append(rows, Row{
			"date":        rec.Date,
			"type":        string(rec.Type),
			"category":    rec.Category,
			"amount":      rec.Amount,
			"description": rec.Description,
			"animal_code": animalCode,
		})
	}

	return Result{
		Summary: map[string]float64{
			"revenue": revenue,
			"expense": expense,
			"balance": revenue - expense,
		},
		Data: rows,
	}, nil
}

// NotesReport conta lidas/não lidas e a distribuição por prioridade.
func (s *Service) NotesReport(ctx context.Context, p Period, f NotesFilter) (Result, error) {
	list, err := s.src.Notes.List(ctx)
	if err != nil {
		return Result{}, err
	}
	idx, err := s.animalIndex(ctx)
	if err != nil {
		return Result{}, err
	}

	var read, unread, high, medium, low float64
	rows := make([]Row, 0)
	for _, n := range list {
		if !inPeriod(n.Date, p) {
			continue
		}
		if f.IsRead != nil && n.IsRead != *f.IsRead {
			continue
		}
		if !matches(f.Priority, string(n.Priority)) {
			continue
		}

		if n.IsRead {
			read++
		} else {
			unread++
		}
		switch string(n.Priority) {
		case "Alta":
			high++
		case "Média":
			medium++
		case "Baixa":
			low++
		}

		animalCode := ""
		if n.AnimalID != "" {
			animalCode, _ = codeName(idx, n.AnimalID)
		}
		rows = append(rows, Row{
			"date":        n.Date,
			"title":       n.Title,
			"category":    n.Category,
			"priority":    string(n.Priority),
			"is_read":     n.IsRead,
			"animal_code": animalCode,
		})
	}

	return Result{
		Summary: map[string]float64{
			"total":  float64(len(rows)),
			"read":   read,
			"unread": unread,
			"high":   high,
			"medium": medium,
			"low":    low,
		},
		Data: rows,
	}, nil
}
