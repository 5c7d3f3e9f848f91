package domain

import (
	"encoding/json"
	"strings"
)

const (
	RoleAdmin        = "admin"
	RoleReceptionist = "recepcionista"
	RoleUser         = "usuario"
)

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"telefono,omitempty"`
	Roles Roles  `json:"roles,omitempty"`
}

// Roles accepts ["admin"] as well as [{"name": "admin"}].
type Roles []string

func (r *Roles) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Roles, 0, len(raw))
	for _, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			out = append(out, strings.ToLower(strings.TrimSpace(name)))
			continue
		}

		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			return err
		}

		if obj.Name != "" {
			out = append(out, strings.ToLower(strings.TrimSpace(obj.Name)))
		}
	}

	*r = out
	return nil
}

func (r Roles) Has(role string) bool {
	for _, name := range r {
		if name == role {
			return true
		}
	}

	return false
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Registration struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Phone                string `json:"telefono,omitempty"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
	Roles Roles  `json:"roles"`
}
