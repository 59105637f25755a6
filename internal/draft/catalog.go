package draft

import (
	"net/url"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/validation"
)

type ProductDraft struct {
	Name           string `validate:"required" label:"Product Name"`
	Description    string
	Specifications SubList
	ImageURL       string
	Price          string `validate:"omitempty,numeric" label:"Price"`
	BrandID        string `validate:"required,number" label:"Brand"`
	CategoryID     string `validate:"required,number" label:"Category"`
	IsActive       bool
	Featured       bool
}

type productPayload struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Specifications []string `json:"specifications"`
	ImageURL       string   `json:"image_url"`
	Price          *float64 `json:"price"`
	BrandID        int64    `json:"brand_id"`
	CategoryID     int64    `json:"category_id"`
	IsActive       bool     `json:"is_active"`
	Featured       bool     `json:"featured"`
}

func NewProduct() ProductDraft {
	return ProductDraft{Specifications: NewSubList(), IsActive: true}
}

// ProductFrom copies a stored product into a draft.
func ProductFrom(p domain.Product) ProductDraft {
	d := ProductDraft{
		Name:           p.Name,
		Description:    p.Description,
		Specifications: NewSubList(p.Specifications...),
		ImageURL:       p.ImageURL,
		IsActive:       p.IsActive,
		Featured:       p.Featured,
	}
	if p.Price != nil {
		d.Price = cast.ToString(*p.Price)
	}
	if p.BrandID != 0 {
		d.BrandID = cast.ToString(p.BrandID)
	}
	if p.CategoryID != 0 {
		d.CategoryID = cast.ToString(p.CategoryID)
	}
	return d
}

func (d ProductDraft) Kind() domain.Kind { return domain.KindProduct }

func (d ProductDraft) Validate() error { return validation.Struct(d) }

func (d ProductDraft) Payload() (interface{}, error) {
	p := productPayload{
		Name:           d.Name,
		Description:    d.Description,
		Specifications: d.Specifications.Sanitized(),
		ImageURL:       d.ImageURL,
		IsActive:       d.IsActive,
		Featured:       d.Featured,
	}
	var err error
	if p.Price, err = optionalFloat(d.Price); err != nil {
		return nil, errors.Wrap(err, "price")
	}
	if p.BrandID, err = cast.ToInt64E(d.BrandID); err != nil {
		return nil, errors.Wrap(err, "brand_id")
	}
	if p.CategoryID, err = cast.ToInt64E(d.CategoryID); err != nil {
		return nil, errors.Wrap(err, "category_id")
	}
	return p, nil
}

func (d *ProductDraft) Apply(form url.Values) {
	text(form, "name", &d.Name)
	text(form, "description", &d.Description)
	text(form, "image_url", &d.ImageURL)
	text(form, "price", &d.Price)
	text(form, "brand_id", &d.BrandID)
	text(form, "category_id", &d.CategoryID)
	d.Specifications.Replace(form["specifications"])
	d.IsActive = checkbox(form, "is_active")
	d.Featured = checkbox(form, "featured")
}

func (d *ProductDraft) SubList(field string) *SubList {
	if field == "specifications" {
		return &d.Specifications
	}
	return nil
}

type BrandDraft struct {
	Name        string `json:"name" validate:"required" label:"Brand Name"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	Website     string `json:"website"`
	IsActive    bool   `json:"is_active"`
}

func NewBrand() BrandDraft { return BrandDraft{IsActive: true} }

func BrandFrom(b domain.Brand) BrandDraft {
	return BrandDraft{
		Name:        b.Name,
		Description: b.Description,
		LogoURL:     b.LogoURL,
		Website:     b.Website,
		IsActive:    b.IsActive,
	}
}

func (d BrandDraft) Kind() domain.Kind             { return domain.KindBrand }
func (d BrandDraft) Validate() error               { return validation.Struct(d) }
func (d BrandDraft) Payload() (interface{}, error) { return d, nil }

func (d *BrandDraft) Apply(form url.Values) {
	text(form, "name", &d.Name)
	text(form, "description", &d.Description)
	text(form, "logo_url", &d.LogoURL)
	text(form, "website", &d.Website)
	d.IsActive = checkbox(form, "is_active")
}

func (d *BrandDraft) SubList(string) *SubList { return nil }

type CategoryDraft struct {
	Name        string `json:"name" validate:"required" label:"Category Name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    bool   `json:"is_active"`
}

func NewCategory() CategoryDraft { return CategoryDraft{IsActive: true} }

func CategoryFrom(c domain.Category) CategoryDraft {
	return CategoryDraft{Name: c.Name, Description: c.Description, Icon: c.Icon, IsActive: c.IsActive}
}

func (d CategoryDraft) Kind() domain.Kind             { return domain.KindCategory }
func (d CategoryDraft) Validate() error               { return validation.Struct(d) }
func (d CategoryDraft) Payload() (interface{}, error) { return d, nil }

func (d *CategoryDraft) Apply(form url.Values) {
	text(form, "name", &d.Name)
	text(form, "description", &d.Description)
	text(form, "icon", &d.Icon)
	d.IsActive = checkbox(form, "is_active")
}

func (d *CategoryDraft) SubList(string) *SubList { return nil }

type ServiceDraft struct {
	Title       string `validate:"required" label:"Service Title"`
	Description string `validate:"required" label:"Description"`
	Features    SubList
	Benefits    SubList
	Process     SubList
	Icon        string
	IsActive    bool
	Featured    bool
}

type servicePayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Benefits    []string `json:"benefits"`
	Process     []string `json:"process"`
	Icon        string   `json:"icon"`
	IsActive    bool     `json:"is_active"`
	Featured    bool     `json:"featured"`
}

func NewService() ServiceDraft {
	return ServiceDraft{Features: NewSubList(), Benefits: NewSubList(), Process: NewSubList(), IsActive: true}
}

func ServiceFrom(s domain.Service) ServiceDraft {
	return ServiceDraft{
		Title:       s.Title,
		Description: s.Description,
		Features:    NewSubList(s.Features...),
		Benefits:    NewSubList(s.Benefits...),
		Process:     NewSubList(s.Process...),
		Icon:        s.Icon,
		IsActive:    s.IsActive,
		Featured:    s.Featured,
	}
}

func (d ServiceDraft) Kind() domain.Kind { return domain.KindService }
func (d ServiceDraft) Validate() error   { return validation.Struct(d) }

func (d ServiceDraft) Payload() (interface{}, error) {
	return servicePayload{
		Title:       d.Title,
		Description: d.Description,
		Features:    d.Features.Sanitized(),
		Benefits:    d.Benefits.Sanitized(),
		Process:     d.Process.Sanitized(),
		Icon:        d.Icon,
		IsActive:    d.IsActive,
		Featured:    d.Featured,
	}, nil
}

func (d *ServiceDraft) Apply(form url.Values) {
	text(form, "title", &d.Title)
	text(form, "description", &d.Description)
	text(form, "icon", &d.Icon)
	d.Features.Replace(form["features"])
	d.Benefits.Replace(form["benefits"])
	d.Process.Replace(form["process"])
	d.IsActive = checkbox(form, "is_active")
	d.Featured = checkbox(form, "featured")
}

func (d *ServiceDraft) SubList(field string) *SubList {
	switch field {
	case "features":
		return &d.Features
	case "benefits":
		return &d.Benefits
	case "process":
		return &d.Process
	}
	return nil
}

type EventDraft struct {
	Title       string `validate:"required" label:"Event Title"`
	Description string `validate:"required" label:"Description"`
	Date        string `validate:"required" label:"Date"`
	Time        string `validate:"required" label:"Time"`
	Location    string `validate:"required" label:"Location"`
	Capacity    string `validate:"omitempty,number" label:"Capacity"`
	Price       string `validate:"omitempty,numeric" label:"Price"`
	EventType   string `validate:"required" label:"Event Type"`
	Status      string
	Agenda      SubList
	IsActive    bool
	Featured    bool
}

type eventPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Location    string   `json:"location"`
	Capacity    *int     `json:"capacity"`
	Price       float64  `json:"price"`
	EventType   string   `json:"event_type"`
	Status      string   `json:"status"`
	Agenda      []string `json:"agenda"`
	IsActive    bool     `json:"is_active"`
	Featured    bool     `json:"featured"`
}

func NewEvent() EventDraft {
	return EventDraft{Status: string(domain.DefaultEventStatus), Agenda: NewSubList(), IsActive: true}
}

func EventFrom(e domain.Event) EventDraft {
	d := EventDraft{
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Price:       cast.ToString(e.Price),
		EventType:   string(e.EventType),
		Status:      string(e.Status),
		Agenda:      NewSubList(e.Agenda...),
		IsActive:    e.IsActive,
		Featured:    e.Featured,
	}
	if e.Capacity != 0 {
		d.Capacity = cast.ToString(e.Capacity)
	}
	if d.Status == "" {
		d.Status = string(domain.DefaultEventStatus)
	}
	return d
}

func (d EventDraft) Kind() domain.Kind { return domain.KindEvent }

func (d EventDraft) Validate() error {
	if err := validation.Struct(d); err != nil {
		return err
	}
	if _, err := normalizeDate(d.Date); err != nil {
		return validation.Invalid("Date", "Date must be a valid date")
	}
	if _, err := normalizeClock(d.Time); err != nil {
		return validation.Invalid("Time", "Time must look like 14:30")
	}
	return nil
}

func (d EventDraft) Payload() (interface{}, error) {
	p := eventPayload{
		Title:       d.Title,
		Description: d.Description,
		Location:    d.Location,
		EventType:   d.EventType,
		Status:      d.Status,
		Agenda:      d.Agenda.Sanitized(),
		IsActive:    d.IsActive,
		Featured:    d.Featured,
	}
	if p.Status == "" {
		p.Status = string(domain.DefaultEventStatus)
	}
	var err error
	if p.Date, err = normalizeDate(d.Date); err != nil {
		return nil, err
	}
	if p.Time, err = normalizeClock(d.Time); err != nil {
		return nil, err
	}
	if strings.TrimSpace(d.Capacity) != "" {
		c, err := cast.ToIntE(strings.TrimSpace(d.Capacity))
		if err != nil {
			return nil, errors.Wrap(err, "capacity")
		}
		p.Capacity = &c
	}
	if price, err := optionalFloat(d.Price); err != nil {
		return nil, errors.Wrap(err, "price")
	} else if price != nil {
		p.Price = *price
	}
	return p, nil
}

func (d *EventDraft) Apply(form url.Values) {
	text(form, "title", &d.Title)
	text(form, "description", &d.Description)
	text(form, "date", &d.Date)
	text(form, "time", &d.Time)
	text(form, "location", &d.Location)
	text(form, "capacity", &d.Capacity)
	text(form, "price", &d.Price)
	text(form, "event_type", &d.EventType)
	text(form, "status", &d.Status)
	d.Agenda.Replace(form["agenda"])
	d.IsActive = checkbox(form, "is_active")
	d.Featured = checkbox(form, "featured")
}

func (d *EventDraft) SubList(field string) *SubList {
	if field == "agenda" {
		return &d.Agenda
	}
	return nil
}

func optionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// normalizeDate accepts any common date spelling and returns YYYY-MM-DD.
func normalizeDate(s string) (string, error) {
	t, err := dateparse.ParseAny(strings.TrimSpace(s))
	if err != nil {
		return "", errors.Wrap(err, "date")
	}
	return t.Format("2006-01-02"), nil
}

var clockLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04PM", "3:04 pm", "3:04pm"}

// normalizeClock returns the time of day as HH:MM.
func normalizeClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", errors.Errorf("time %q is not a clock time", s)
}
