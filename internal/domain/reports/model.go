package reports

import "time"

// Type identifica o relatório gerado.
type Type string

const (
	TypeAnimals      Type = "animals"
	TypeWeights      Type = "weights"
	TypeVaccinations Type = "vaccinations"
	TypeMedications  Type = "medications"
	TypeBreeding     Type = "breeding"
	TypeFinancial    Type = "financial"
	TypeNotes        Type = "notes"
)

// ValidType informa se o tipo de relatório existe.
func ValidType(t Type) bool {
	switch t {
	case TypeAnimals, TypeWeights, TypeVaccinations, TypeMedications,
		TypeBreeding, TypeFinancial, TypeNotes:
		return true
	}
	return false
}

// Period é o recorte de datas do relatório, inclusivo nas duas pontas
// (comparação por dia). Start > End produz zero linhas.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Facetas por tipo. Valor vazio ou "Todos" não filtra.

type AnimalsFilter struct {
	Species  string `json:"species,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Status   string `json:"status,omitempty"`
	Category string `json:"category,omitempty"`
}

type VaccinationsFilter struct {
	Status      string `json:"status,omitempty"`
	VaccineType string `json:"vaccine_type,omitempty"`
}

type MedicationsFilter struct {
	Status string `json:"status,omitempty"`
}

type BreedingFilter struct {
	Stage string `json:"stage,omitempty"`
}

type FinancialFilter struct {
	Type     string `json:"type,omitempty"`
	Category string `json:"category,omitempty"`
}

type NotesFilter struct {
	IsRead   *bool  `json:"is_read,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// Parameters é a união etiquetada pelos tipos: só o filtro do tipo
// gerado é preenchido, os demais ficam nulos no JSON persistido.
type Parameters struct {
	Period Period `json:"period"`

	Animals      *AnimalsFilter      `json:"animals,omitempty"`
	Weights      *struct{}           `json:"weights,omitempty"`
	Vaccinations *VaccinationsFilter `json:"vaccinations,omitempty"`
	Medications  *MedicationsFilter  `json:"medications,omitempty"`
	Breeding     *BreedingFilter     `json:"breeding,omitempty"`
	Financial    *FinancialFilter    `json:"financial,omitempty"`
	Notes        *NotesFilter        `json:"notes,omitempty"`
}

// Row é uma linha achatada do relatório, já com código/nome do animal
// resolvidos.
type Row map[string]any

// Result é a saída de uma geração; não é persistido.
type Result struct {
	Summary map[string]float64 `json:"summary"`
	Data    []Row              `json:"data"`
}

// Report é o registro imutável de auditoria de um relatório salvo.
type Report struct {
	ID          string     `json:"id"`
	ReportType  Type       `json:"report_type"`
	Title       string     `json:"title"`
	Parameters  Parameters `json:"parameters"`
	GeneratedAt time.Time  `json:"generated_at"`
	GeneratedBy string     `json:"generated_by"`

	CreatedAt time.Time `json:"created_at"`
}
