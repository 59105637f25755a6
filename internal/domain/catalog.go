package domain

// NamedRef is the display-only reference the backend resolves for a
// product's brand and category.
type NamedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is a catalog item managed in the back office.
type Product struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          *float64  `json:"price"`
	BrandID        int64     `json:"brand_id"`
	CategoryID     int64     `json:"category_id"`
	Brand          *NamedRef `json:"brand,omitempty"`
	Category       *NamedRef `json:"category,omitempty"`
	Specifications []string  `json:"specifications"`
	ImageURL       string    `json:"image_url"`
	IsActive       bool      `json:"is_active"`
	Featured       bool      `json:"featured"`
	CreatedAt      string    `json:"created_at,omitempty"`
}

func (p Product) Identity() int64 { return p.ID }

// BrandName returns the resolved brand name or an empty string.
func (p Product) BrandName() string {
	if p.Brand == nil {
		return ""
	}
	return p.Brand.Name
}

// CategoryName returns the resolved category name or an empty string.
func (p Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// Brand is a manufacturer shown on the site.
type Brand struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	Website     string `json:"website"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at,omitempty"`
}

func (b Brand) Identity() int64 { return b.ID }

// Category groups products by line. Icon is free text.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at,omitempty"`
}

func (c Category) Identity() int64 { return c.ID }

// Service is an offering with three ordered descriptive lists.
type Service struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Benefits    []string `json:"benefits"`
	Process     []string `json:"process"`
	Icon        string   `json:"icon"`
	IsActive    bool     `json:"is_active"`
	Featured    bool     `json:"featured"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

func (s Service) Identity() int64 { return s.ID }

// Event is a workshop, seminar or similar. Date is YYYY-MM-DD and Time is HH:MM.
type Event struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Location    string      `json:"location"`
	Capacity    int         `json:"capacity"`
	Price       float64     `json:"price"`
	EventType   EventType   `json:"event_type"`
	Status      EventStatus `json:"status"`
	Agenda      []string    `json:"agenda"`
	IsActive    bool        `json:"is_active"`
	Featured    bool        `json:"featured"`
	CreatedAt   string      `json:"created_at,omitempty"`
}

func (e Event) Identity() int64 { return e.ID }

// IsFree reports whether the event has no admission price.
func (e Event) IsFree() bool { return e.Price == 0 }
