package domain

// AdminUser is the operator record returned by check-auth and login.
type AdminUser struct {
	ID        int64  `json:"id" mapstructure:"id"`
	Username  string `json:"username" mapstructure:"username"`
	Email     string `json:"email" mapstructure:"email"`
	CreatedAt string `json:"created_at" mapstructure:"created_at"`
}

// PasswordChange is sent to /admin/change-password.
type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// EmailSettings is sent to /admin/email-settings.
type EmailSettings struct {
	SMTPServer   string `json:"smtp_server"`
	SMTPPort     int    `json:"smtp_port"`
	SMTPUsername string `json:"smtp_username"`
	SMTPPassword string `json:"smtp_password"`
	UseTLS       bool   `json:"use_tls"`
}

// DefaultEmailSettings returns the values the settings form starts with.
func DefaultEmailSettings() EmailSettings {
	return EmailSettings{SMTPServer: "smtp.zoho.com", SMTPPort: 587, UseTLS: true}
}

// DashboardStats are the counters shown on the admin landing page.
type DashboardStats struct {
	TotalProducts       int `json:"total_products" mapstructure:"total_products"`
	TotalBrands         int `json:"total_brands" mapstructure:"total_brands"`
	TotalCategories     int `json:"total_categories" mapstructure:"total_categories"`
	TotalServices       int `json:"total_services" mapstructure:"total_services"`
	TotalEvents         int `json:"total_events" mapstructure:"total_events"`
	PendingQuotes       int `json:"pending_quotes" mapstructure:"pending_quotes"`
	OpenSupportCases    int `json:"open_support_cases" mapstructure:"open_support_cases"`
	UnreadInquiries     int `json:"unread_inquiries" mapstructure:"unread_inquiries"`
	RecentRegistrations int `json:"recent_registrations" mapstructure:"recent_registrations"`
}

// Dashboard pairs the counters with the most recent leads.
type Dashboard struct {
	Stats         DashboardStats
	RecentQuotes  []QuoteRequest
	RecentSupport []SupportCase
	RecentInquiry []Inquiry
}

// Mutation describes a confirmed write made through the back office.
type Mutation struct {
	Kind     Kind
	Action   string
	ID       int64
	Operator string
	Remote   string
	Detail   string
}

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionStatus = "status"
)
