package models

// Credentials is the body of POST /api/login/.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the body of POST /api/register/.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by POST /api/login/.
type LoginResponse struct {
	Message string `json:"message"`
}

// LoginSuccessMessage is the message value the backend returns on success.
const LoginSuccessMessage = "Login successful"

// UserInfo is the body returned by GET /api/user-info/. Fields the backend
// omits stay zero.
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
