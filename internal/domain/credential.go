package domain

// UserType represents the role a credential grants
type UserType string

const (
	UserTypeDoctor  UserType = "doctor"
	UserTypePatient UserType = "patient"
	UserTypeAdmin   UserType = "admin"
)

// Credential is a login record. Passwords are stored as entered; hardening
// the credential store is out of scope for this system.
type Credential struct {
	UserID   int64
	Password string
	UserType UserType
}
