// Package leads validates and submits the public lead-capture forms.
package leads

import (
	"github.com/techbucket/techbucket-web/internal/domain"
)

// QuoteForm is posted from a product's quote dialog.
type QuoteForm struct {
	Name         string `form:"name" validate:"required" label:"Full Name"`
	Contact      string `form:"contact" validate:"required" label:"Contact Number"`
	OfficeEmail  string `form:"office_email" validate:"required,email" label:"Office Email"`
	Company      string `form:"company"`
	ProductName  string `form:"product_name" validate:"required" label:"Product"`
	Quantity     int    `form:"quantity" validate:"min=1" label:"Quantity"`
	Requirements string `form:"requirements"`
}

// NewQuoteForm starts a quote for product with a quantity of one.
func NewQuoteForm(product string) QuoteForm {
	return QuoteForm{ProductName: product, Quantity: MinQuantity}
}

func (f QuoteForm) submission() domain.QuoteSubmission {
	return domain.QuoteSubmission{
		Name:         f.Name,
		Contact:      f.Contact,
		OfficeEmail:  f.OfficeEmail,
		Company:      f.Company,
		ProductName:  f.ProductName,
		Quantity:     f.Quantity,
		Requirements: f.Requirements,
	}
}

type SupportForm struct {
	Name              string `form:"name" validate:"required" label:"Full Name"`
	OrganizationName  string `form:"organization_name" validate:"required" label:"Organization Name"`
	Contact           string `form:"contact" validate:"required" label:"Contact Number"`
	OrganizationEmail string `form:"organization_email" validate:"required,email" label:"Organization Email"`
	IssueType         string `form:"issue_type" validate:"required" label:"Issue Type"`
	Priority          string `form:"priority" validate:"required" label:"Priority"`
	Subject           string `form:"subject" validate:"required" label:"Subject"`
	Description       string `form:"description" validate:"required" label:"Description"`
}

func NewSupportForm() SupportForm {
	return SupportForm{Priority: string(domain.DefaultPriority)}
}

func (f SupportForm) submission() domain.SupportSubmission {
	return domain.SupportSubmission{
		Name:              f.Name,
		OrganizationName:  f.OrganizationName,
		Contact:           f.Contact,
		OrganizationEmail: f.OrganizationEmail,
		IssueType:         f.IssueType,
		Priority:          f.Priority,
		Subject:           f.Subject,
		Description:       f.Description,
	}
}

type InquiryForm struct {
	Name              string `form:"name" validate:"required" label:"Full Name"`
	OrganizationName  string `form:"organization_name" validate:"required" label:"Organization Name"`
	Contact           string `form:"contact" validate:"required" label:"Contact Number"`
	OrganizationEmail string `form:"organization_email" validate:"required,email" label:"Organization Email"`
	Subject           string `form:"subject" validate:"required" label:"Subject"`
	Message           string `form:"message" validate:"required" label:"Message"`
}

func (f InquiryForm) submission() domain.InquirySubmission {
	return domain.InquirySubmission{
		Name:              f.Name,
		OrganizationName:  f.OrganizationName,
		Contact:           f.Contact,
		OrganizationEmail: f.OrganizationEmail,
		Subject:           f.Subject,
		Message:           f.Message,
	}
}

// RegistrationForm signs up for one event. The event's details are copied
// into the submission as they are displayed at that moment.
type RegistrationForm struct {
	Name           string `form:"name" validate:"required" label:"Full Name"`
	Contact        string `form:"contact" validate:"required" label:"Contact Number"`
	Email          string `form:"email" validate:"required,email" label:"Email"`
	AdditionalInfo string `form:"additional_info"`
}

func (f RegistrationForm) submission(ev domain.PublicEvent) domain.RegistrationSubmission {
	return domain.RegistrationSubmission{
		Name:           f.Name,
		Contact:        f.Contact,
		Email:          f.Email,
		EventName:      ev.Title,
		EventDate:      ev.Date,
		EventTime:      ev.Time,
		EventPrice:     ev.Price,
		AdditionalInfo: f.AdditionalInfo,
	}
}
