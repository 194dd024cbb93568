package authsdk

// Envelope is the body shape of every API response.
type Envelope[T any] struct {
	Status     string       `json:"status"`
	Message    string       `json:"message"`
	Data       T            `json:"data,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	StatusCode int          `json:"statusCode,omitempty"`
}

// FieldError is one rejected input field of a 422 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ============================================================================
// Requests
// ============================================================================

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateOrganisationRequest is the body of POST /api/organisations.
type CreateOrganisationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// AddUserRequest is the body of POST /api/organisations/{orgId}/users.
type AddUserRequest struct {
	UserID string `json:"userId"`
}

// ============================================================================
// Responses
// ============================================================================

// User is the public profile of an identity. It never carries credentials.
type User struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// AuthData is the payload of a successful registration or login.
type AuthData struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

// Organisation is the public view of an organisation.
type Organisation struct {
	OrgID       string `json:"orgId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// OrganisationList is the payload of GET /api/organisations.
type OrganisationList struct {
	Organisations []Organisation `json:"organisations"`
}

// MemberList is the payload of GET /api/organisations/{orgId}/users.
type MemberList struct {
	Users []User `json:"users"`
}

// Envelope aliases used in API docs.
type (
	AuthResponse             = Envelope[AuthData]
	UserResponse             = Envelope[User]
	OrganisationResponse     = Envelope[Organisation]
	OrganisationListResponse = Envelope[OrganisationList]
	MemberListResponse       = Envelope[MemberList]
	MessageResponse          = Envelope[struct{}]
	ErrorResponse            = Envelope[struct{}]
)

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains the status of critical dependencies (readyz only)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates the token signing capability status
	Signer string `json:"signer"`
}
