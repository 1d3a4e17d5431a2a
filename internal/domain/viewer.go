package domain

// Viewer is the user operating a view. It is supplied by the caller and never mutated.
type Viewer struct {
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

// TokenVerifier verifies a bearer token and returns the viewer it was issued to.
type TokenVerifier interface {
	Verify(token string) (Viewer, error)
}
