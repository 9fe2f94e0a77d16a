package breeding

import "time"

// GestationDays é a gestação média de ovinos/caprinos usada para
// projetar a data de parto.
const GestationDays = 150

type Status string

const (
	StatusCobertura  Status = "Cobertura"
	StatusConfirmada Status = "Confirmada"
	StatusNasceu     Status = "Nasceu"
	StatusPerdida    Status = "Perdida"
)

// Record acompanha um ciclo reprodutivo de uma matriz.
type Record struct {
	ID             string `json:"id"`
	FemaleAnimalID string `json:"female_animal_id"`
	MaleAnimalID   string `json:"male_animal_id,omitempty"`

	BreedingDate  time.Time  `json:"breeding_date"`
	ExpectedBirth *time.Time `json:"expected_birth,omitempty"`

	Stage  string `json:"stage,omitempty"` // etiqueta livre do pipeline da fazenda
	Status Status `json:"status"`

	MatingStartDate  *time.Time `json:"mating_start_date,omitempty"`
	MatingEndDate    *time.Time `json:"mating_end_date,omitempty"`
	SeparationDate   *time.Time `json:"separation_date,omitempty"`
	UltrasoundDate   *time.Time `json:"ultrasound_date,omitempty"`
	UltrasoundResult string     `json:"ultrasound_result,omitempty"`
	BirthDate        *time.Time `json:"birth_date,omitempty"`

	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
