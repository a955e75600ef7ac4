package user

import "fmt"

type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleOrganizer     Role = "Organizer"
	RoleManager       Role = "Manager"
	RoleClient        Role = "Client"
)

type User struct {
	ID         int
	Login      string
	Password   string
	FirstName  string
	LastName   string
	MiddleName string
	Specialty  string
	Role       Role
}

// DisplayName is the "Last First Middle" form shown in manager pickers.
func (u User) DisplayName() string {
	name := u.LastName + " " + u.FirstName
	if u.MiddleName != "" {
		name += " " + u.MiddleName
	}
	return name
}

var (
	ErrInvalidCredentials = fmt.Errorf("invalid login or password")
	ErrAccessRestricted   = fmt.Errorf("access restricted for this role")
)
