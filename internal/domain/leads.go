package domain

// QuoteRequest is a public request for pricing on a product.
//
// The admin list exposes the address as office_email while older backend
// builds serialize it as email, so both are kept.
type QuoteRequest struct {
	ID           int64       `json:"id" csv:"id"`
	Name         string      `json:"name" csv:"name"`
	Contact      string      `json:"contact" csv:"contact"`
	OfficeEmail  string      `json:"office_email" csv:"office_email"`
	Email        string      `json:"email" csv:"-"`
	Company      string      `json:"company" csv:"company"`
	ProductName  string      `json:"product_name" csv:"product_name"`
	Quantity     int         `json:"quantity" csv:"quantity"`
	Requirements string      `json:"requirements" csv:"requirements"`
	Status       QuoteStatus `json:"status" csv:"status"`
	AdminNotes   string      `json:"admin_notes" csv:"admin_notes"`
	CreatedAt    string      `json:"created_at" csv:"created_at"`
}

func (q QuoteRequest) Identity() int64 { return q.ID }

// ReplyTo returns the address a response should go to.
func (q QuoteRequest) ReplyTo() string {
	if q.OfficeEmail != "" {
		return q.OfficeEmail
	}
	return q.Email
}

// SupportCase is a public technical support ticket.
type SupportCase struct {
	ID                int64         `json:"id" csv:"id"`
	Name              string        `json:"name" csv:"name"`
	OrganizationName  string        `json:"organization_name" csv:"organization_name"`
	Contact           string        `json:"contact" csv:"contact"`
	OrganizationEmail string        `json:"organization_email" csv:"organization_email"`
	IssueType         IssueType     `json:"issue_type" csv:"issue_type"`
	Priority          Priority      `json:"priority" csv:"priority"`
	Subject           string        `json:"subject" csv:"subject"`
	Description       string        `json:"description" csv:"description"`
	Status            SupportStatus `json:"status" csv:"status"`
	AdminNotes        string        `json:"admin_notes" csv:"admin_notes"`
	CreatedAt         string        `json:"created_at" csv:"created_at"`
}

func (s SupportCase) Identity() int64 { return s.ID }

// Inquiry is a general contact message.
type Inquiry struct {
	ID                int64         `json:"id" csv:"id"`
	Name              string        `json:"name" csv:"name"`
	OrganizationName  string        `json:"organization_name" csv:"organization_name"`
	Contact           string        `json:"contact" csv:"contact"`
	OrganizationEmail string        `json:"organization_email" csv:"organization_email"`
	Subject           string        `json:"subject" csv:"subject"`
	Message           string        `json:"message" csv:"message"`
	Status            InquiryStatus `json:"status" csv:"status"`
	AdminNotes        string        `json:"admin_notes" csv:"admin_notes"`
	CreatedAt         string        `json:"created_at" csv:"created_at"`
}

func (i Inquiry) Identity() int64 { return i.ID }

// EventRegistration records a sign-up. The event fields are captured when
// the registration is submitted and are not joined to the live event.
type EventRegistration struct {
	ID             int64              `json:"id" csv:"id"`
	Name           string             `json:"name" csv:"name"`
	Contact        string             `json:"contact" csv:"contact"`
	Email          string             `json:"email" csv:"email"`
	EventID        *int64             `json:"event_id" csv:"-"`
	EventName      string             `json:"event_name" csv:"event_name"`
	EventDate      string             `json:"event_date" csv:"event_date"`
	EventTime      string             `json:"event_time" csv:"event_time"`
	EventPrice     string             `json:"event_price" csv:"event_price"`
	AdditionalInfo string             `json:"additional_info" csv:"additional_info"`
	Status         RegistrationStatus `json:"status" csv:"status"`
	CreatedAt      string             `json:"created_at" csv:"created_at"`
}

func (r EventRegistration) Identity() int64 { return r.ID }

// QuoteSubmission is the public quote-request payload.
type QuoteSubmission struct {
	Name         string `json:"name"`
	Contact      string `json:"contact"`
	OfficeEmail  string `json:"officeEmail"`
	Company      string `json:"company"`
	ProductName  string `json:"productName"`
	Quantity     int    `json:"quantity"`
	Requirements string `json:"requirements"`
}

// SupportSubmission is the public support-case payload.
type SupportSubmission struct {
	Name              string `json:"name"`
	OrganizationName  string `json:"organizationName"`
	Contact           string `json:"contact"`
	OrganizationEmail string `json:"organizationEmail"`
	IssueType         string `json:"issueType"`
	Priority          string `json:"priority"`
	Subject           string `json:"subject"`
	Description       string `json:"description"`
}

// InquirySubmission is the public contact payload.
type InquirySubmission struct {
	Name              string `json:"name"`
	OrganizationName  string `json:"organizationName"`
	Contact           string `json:"contact"`
	OrganizationEmail string `json:"organizationEmail"`
	Subject           string `json:"subject"`
	Message           string `json:"message"`
}

// RegistrationSubmission is the public event-registration payload.
type RegistrationSubmission struct {
	Name           string `json:"name"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
	EventName      string `json:"eventName"`
	EventDate      string `json:"eventDate"`
	EventTime      string `json:"eventTime"`
	EventPrice     string `json:"eventPrice"`
	AdditionalInfo string `json:"additionalInfo"`
}
