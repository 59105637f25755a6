package domain

type EventType string

const (
	EventWorkshop   EventType = "Workshop"
	EventSeminar    EventType = "Seminar"
	EventConference EventType = "Conference"
	EventTraining   EventType = "Training"
	EventWebinar    EventType = "Webinar"
)

func EventTypes() []EventType {
	return []EventType{EventWorkshop, EventSeminar, EventConference, EventTraining, EventWebinar}
}

type EventStatus string

const (
	EventOpen          EventStatus = "Open"
	EventEarlyBird     EventStatus = "Early Bird"
	EventLimitedSeats  EventStatus = "Limited Seats"
	EventClosed        EventStatus = "Closed"
	DefaultEventStatus             = EventOpen
)

func EventStatuses() []EventStatus {
	return []EventStatus{EventOpen, EventEarlyBird, EventLimitedSeats, EventClosed}
}

type QuoteStatus string

const (
	QuotePending   QuoteStatus = "pending"
	QuoteResponded QuoteStatus = "responded"
	QuoteClosed    QuoteStatus = "closed"
)

func QuoteStatuses() []QuoteStatus {
	return []QuoteStatus{QuotePending, QuoteResponded, QuoteClosed}
}

type SupportStatus string

const (
	SupportOpen       SupportStatus = "open"
	SupportInProgress SupportStatus = "in_progress"
	SupportResolved   SupportStatus = "resolved"
	SupportClosed     SupportStatus = "closed"
)

func SupportStatuses() []SupportStatus {
	return []SupportStatus{SupportOpen, SupportInProgress, SupportResolved, SupportClosed}
}

type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "new"
	InquiryResponded InquiryStatus = "responded"
	InquiryArchived  InquiryStatus = "archived"
)

func InquiryStatuses() []InquiryStatus {
	return []InquiryStatus{InquiryNew, InquiryResponded, InquiryArchived}
}

type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

func RegistrationStatuses() []RegistrationStatus {
	return []RegistrationStatus{RegistrationPending, RegistrationConfirmed, RegistrationCancelled}
}

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
	DefaultPriority           = PriorityMedium
)

func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
}

type IssueType string

const (
	IssueHardware      IssueType = "Hardware Issue"
	IssueSoftware      IssueType = "Software Problem"
	IssueNetwork       IssueType = "Network Connectivity"
	IssueSecurity      IssueType = "Security Concern"
	IssuePerformance   IssueType = "Performance Issue"
	IssueConfiguration IssueType = "Configuration Support"
	IssueGeneral       IssueType = "General Inquiry"
	IssueOther         IssueType = "Other"
)

func IssueTypes() []IssueType {
	return []IssueType{
		IssueHardware, IssueSoftware, IssueNetwork, IssueSecurity,
		IssuePerformance, IssueConfiguration, IssueGeneral, IssueOther,
	}
}
