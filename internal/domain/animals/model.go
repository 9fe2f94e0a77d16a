package animals

import "time"

// Species define as espécies do rebanho.
type Species string

const (
	SpeciesOvino   Species = "Ovino"
	SpeciesCaprino Species = "Caprino"
)

// Gender define o sexo do animal.
type Gender string

const (
	GenderMacho Gender = "Macho"
	GenderFemea Gender = "Fêmea"
)

// Status é texto livre; estes são os valores convencionais usados nas telas.
const (
	StatusSaudavel     = "Saudável"
	StatusEmTratamento = "Em tratamento"
	StatusReprodutor   = "Reprodutor"
	StatusDescarte     = "Descarte"
)

// Animal é o registro individual do rebanho.
type Animal struct {
	ID   string `json:"id"`
	Code string `json:"code"` // brinco, único por convenção
	Name string `json:"name"`

	Species Species `json:"species"`
	Breed   string  `json:"breed"`
	Gender  Gender  `json:"gender"`

	BirthDate time.Time `json:"birth_date"`
	Weight    float64   `json:"weight"`
	Status    string    `json:"status"`
	Category  string    `json:"category,omitempty"` // matriz, cria, engorda...
	Location  string    `json:"location"`

	LastVaccination  *time.Time `json:"last_vaccination,omitempty"`
	Pregnant         bool       `json:"pregnant"`
	ExpectedDelivery *time.Time `json:"expected_delivery,omitempty"`
	HealthIssue      string     `json:"health_issue,omitempty"`

	// Pesos de controle aos 30/60/90 dias de vida, quando registrados.
	Weight30 *float64 `json:"weight_30,omitempty"`
	Weight60 *float64 `json:"weight_60,omitempty"`
	Weight90 *float64 `json:"weight_90,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Weight é um ponto da série de pesagens de um animal.
type Weight struct {
	ID       string    `json:"id"`
	AnimalID string    `json:"animal_id"`
	Date     time.Time `json:"date"`
	Weight   float64   `json:"weight"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Stats resume o rebanho para o painel inicial.
type Stats struct {
	TotalAnimals      int     `json:"totalAnimals"`
	Healthy           int     `json:"healthy"`
	Pregnant          int     `json:"pregnant"`
	UnderTreatment    int     `json:"underTreatment"`
	VaccinesThisMonth int     `json:"vaccinesThisMonth"`
	BirthsThisMonth   int     `json:"birthsThisMonth"`
	AvgWeight         float64 `json:"avgWeight"`
	Revenue           float64 `json:"revenue"`
}
