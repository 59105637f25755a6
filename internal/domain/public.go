package domain

// PublicProduct is a product card on the public products page. Category holds
// the brand label and Type the product line; both are matched by the filter.
type PublicProduct struct {
	ID             int64    `yaml:"id" json:"id"`
	Name           string   `yaml:"name" json:"name"`
	Category       string   `yaml:"category" json:"category"`
	Type           string   `yaml:"type" json:"type"`
	Description    string   `yaml:"description" json:"description"`
	Specifications []string `yaml:"specifications" json:"specifications"`
	Image          string   `yaml:"image" json:"image"`
	Price          string   `yaml:"price" json:"price"`
}

func (p PublicProduct) FilterName() string        { return p.Name }
func (p PublicProduct) FilterDescription() string { return p.Description }
func (p PublicProduct) FilterCategory() string    { return p.Category }
func (p PublicProduct) FilterType() string        { return p.Type }

// PublicService is a service summary on the public services page.
type PublicService struct {
	ID          int64    `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Icon        string   `yaml:"icon" json:"icon"`
	Description string   `yaml:"description" json:"description"`
	Features    []string `yaml:"features" json:"features"`
	Benefits    []string `yaml:"benefits" json:"benefits"`
	Process     []string `yaml:"process" json:"process"`
	Featured    bool     `yaml:"featured" json:"featured"`
}

// PublicEvent is an event card with display strings for date, time and price.
type PublicEvent struct {
	ID          int64     `yaml:"id" json:"id"`
	Title       string    `yaml:"title" json:"title"`
	Type        EventType `yaml:"type" json:"type"`
	Date        string    `yaml:"date" json:"date"`
	Time        string    `yaml:"time" json:"time"`
	Location    string    `yaml:"location" json:"location"`
	Price       string    `yaml:"price" json:"price"`
	Capacity    string    `yaml:"capacity" json:"capacity"`
	Status      string    `yaml:"status" json:"status"`
	Description string    `yaml:"description" json:"description"`
	Agenda      []string  `yaml:"agenda" json:"agenda"`
}
