package notes

import "time"

type Priority string

const (
	PriorityBaixa Priority = "Baixa"
	PriorityMedia Priority = "Média"
	PriorityAlta  Priority = "Alta"
)

// Note é uma anotação avulsa; AnimalID vazio = anotação geral da fazenda.
type Note struct {
	ID       string `json:"id"`
	AnimalID string `json:"animal_id,omitempty"`

	Title    string   `json:"title"`
	Content  string   `json:"content,omitempty"`
	Category string   `json:"category"`
	Priority Priority `json:"priority"`

	Date   time.Time `json:"date"`
	IsRead bool      `json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
