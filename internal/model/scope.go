package model

// Scope identifies the user a request acts on behalf of.
type Scope struct {
	UserID   string
	Username string
}
