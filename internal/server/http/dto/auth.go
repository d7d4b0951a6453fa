package dto

// SignupRequest describes the customer registration payload.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest describes the customer login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginRequest describes the four-factor back-office login payload.
type AdminLoginRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	SecurityCode string `json:"security_code"`
}

// AuthResponse carries the authenticated user after signup or login.
type AuthResponse struct {
	Response
	User *UserResponse `json:"user,omitempty"`
}

// SessionResponse reports whether the request carries a valid session.
type SessionResponse struct {
	Response
	LoggedIn bool          `json:"logged_in"`
	User     *UserResponse `json:"user,omitempty"`
}
