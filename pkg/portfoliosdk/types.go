package portfoliosdk

import "time"

// Response messages sent by the server. The admin console matches on some
// of these, so they are part of the wire contract.
const (
	MsgLoginSuccessful  = "Login successful"
	MsgContactSubmitted = "Contact form submitted successfully!"
	MsgContactDeleted   = "Contact deleted successfully"

	ErrMsgLoginFieldsRequired   = "Username and password are required"
	ErrMsgInvalidCredentials    = "Invalid credentials"
	ErrMsgLoginFailed           = "Login failed"
	ErrMsgAccessTokenRequired   = "Access token required"
	ErrMsgInvalidToken          = "Invalid or expired token"
	ErrMsgContactFieldsRequired = "Name, email, and message are required fields"
	ErrMsgSubmitFailed          = "Failed to submit contact form"
	ErrMsgReadFailed            = "Failed to read contacts"
	ErrMsgContactNotFound       = "Contact not found"
	ErrMsgDeleteFailed          = "Failed to delete contact"
	ErrMsgInvalidBody           = "Invalid request body"
)

// LoginRequest is the body of POST /api/admin/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Telephone string `json:"telephone,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
	Type      string `json:"type,omitempty"`
}

// Contact is a stored submission. The id is sent under both "id" and "_id".
type Contact struct {
	ID        string    `json:"id"`
	LegacyID  string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Telephone string    `json:"telephone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubmitContactResponse is returned with 201 Created.
type SubmitContactResponse struct {
	Message string  `json:"message"`
	Contact Contact `json:"contact"`
}

// MessageResponse carries a single confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status is "ok" or "degraded".
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Store string `json:"store"`
}
