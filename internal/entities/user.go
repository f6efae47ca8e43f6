package entities

import "strings"

type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Initials returns the avatar initials, "U" when the name is unknown.
func (u User) Initials() string {
	if u.FirstName == "" || u.LastName == "" {
		return "U"
	}
	return strings.ToUpper(u.FirstName[:1] + u.LastName[:1])
}
