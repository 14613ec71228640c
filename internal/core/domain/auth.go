package domain

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and the identity it belongs to.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType,omitempty"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	UserType  string `json:"userType"`
}

// Identity extracts the user snapshot from a login response.
func (r LoginResponse) Identity() UserIdentity {
	return UserIdentity{
		UserID:   r.UserID,
		Username: r.Username,
		Name:     r.Name,
		Surname:  r.Surname,
		Email:    r.Email,
		UserType: r.UserType,
	}
}

// ValidateTokenResponse is returned by POST /api/auth/validate.
type ValidateTokenResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// MessageResponse is the generic {"message": ...} acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
