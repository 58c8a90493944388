package models

// View is one of the three mutually exclusive screens the frontend can
// show. It is per-session, never persisted, and resets to home.
type View string

const (
	ViewHome      View = "home"
	ViewPortfolio View = "portfolio"
	ViewAdmin     View = "admin"
)

// LoginRequest carries the admin password attempt.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// NavigateRequest switches the session to another view.
type NavigateRequest struct {
	View View `json:"view" binding:"required,oneof=home portfolio admin"`
}

// SessionResponse reports the session state after any session operation.
// RequiresLogin is set when the session sits on the admin view while the
// gate is still locked, telling the frontend to render the login form.
type SessionResponse struct {
	Token         string `json:"token,omitempty"`
	View          View   `json:"view"`
	Authenticated bool   `json:"authenticated"`
	LoginError    bool   `json:"loginError"`
	RequiresLogin bool   `json:"requiresLogin"`
}
