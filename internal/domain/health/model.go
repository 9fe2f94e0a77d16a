package health

import "time"

// VaccinationStatus segue o fluxo Agendada -> Aplicada | Cancelada.
type VaccinationStatus string

const (
	VaccinationAgendada  VaccinationStatus = "Agendada"
	VaccinationAplicada  VaccinationStatus = "Aplicada"
	VaccinationCancelada VaccinationStatus = "Cancelada"
)

// MedicationStatus segue o fluxo Agendado -> Aplicado | Cancelado.
type MedicationStatus string

const (
	MedicationAgendado  MedicationStatus = "Agendado"
	MedicationAplicado  MedicationStatus = "Aplicado"
	MedicationCancelado MedicationStatus = "Cancelado"
)

// Vaccination agenda ou registra uma vacina de um animal.
// Invariante: AppliedDate só é preenchido com status Aplicada.
type Vaccination struct {
	ID       string `json:"id"`
	AnimalID string `json:"animal_id"`

	VaccineName string `json:"vaccine_name"`
	VaccineType string `json:"vaccine_type"`

	ScheduledDate time.Time  `json:"scheduled_date"`
	AppliedDate   *time.Time `json:"applied_date,omitempty"`

	Veterinarian string            `json:"veterinarian,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	Status       VaccinationStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Medication agenda ou registra um medicamento, com dose e retorno.
type Medication struct {
	ID       string `json:"id"`
	AnimalID string `json:"animal_id"`

	MedicationName string `json:"medication_name"`
	Dosage         string `json:"dosage,omitempty"`

	Date        time.Time  `json:"date"`
	AppliedDate *time.Time `json:"applied_date,omitempty"`
	NextDate    *time.Time `json:"next_date,omitempty"` // retorno/reaplicação

	Veterinarian string           `json:"veterinarian,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	Status       MedicationStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
