package domain

import "time"

// User represents a registered student account.
type User struct {
	ID            string
	Username      string
	Email         string
	PasswordHash  string
	Name          string
	Classe        string
	Etablissement string
	DateNaissance string
	ProfileImage  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProfileUpdate carries the profile fields a user may change. Nil or empty
// values leave the stored field untouched.
type ProfileUpdate struct {
	Name          *string
	Classe        *string
	Etablissement *string
	DateNaissance *string
	ProfileImage  *string
}

// Apply merges the non-empty fields of p into user.
func (p ProfileUpdate) Apply(user *User) {
	set := func(dst *string, v *string) {
		if v != nil && *v != "" {
			*dst = *v
		}
	}
	set(&user.Name, p.Name)
	set(&user.Classe, p.Classe)
	set(&user.Etablissement, p.Etablissement)
	set(&user.DateNaissance, p.DateNaissance)
	set(&user.ProfileImage, p.ProfileImage)
}
