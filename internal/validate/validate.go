// Package validate checks request payloads before they reach a service.
// Each function trims its input in place and returns a *Error describing the
// first failing field.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"schoolify/internal/domain"
)

// Error is a user-facing validation failure. It unwraps to domain.ErrValidation.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *Error) Unwrap() error {
	return domain.ErrValidation
}

const (
	taskStatusTag  = "taskstatus"
	clockTimeTag   = "clocktime"
	passwordMinLen = 6

	// bcrypt rejects passwords longer than this many bytes
	passwordMaxBytes = 72
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	_ = val.RegisterValidation(taskStatusTag, func(fl validator.FieldLevel) bool {
		return domain.TaskStatus(fl.Field().String()).Valid()
	})
	_ = val.RegisterValidation(clockTimeTag, func(fl validator.FieldLevel) bool {
		return clockTimeRe.MatchString(fl.Field().String())
	})
	return val
}

// clockTimeRe accepts zero-padded HH:MM so that text order matches time order.
var clockTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Registration is the signup payload.
type Registration struct {
	Username string `validate:"required,max=64"`
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=6"`
	Name     string `validate:"max=128"`
}

// Register normalises and validates a signup request. Emails are lower-cased.
func Register(r *Registration) error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)
	if err := check(r); err != nil {
		return err
	}
	return Password(r.Password)
}

// Login only requires both fields to be present.
func Login(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return &Error{Field: "username", Message: "Nom d'utilisateur requis"}
	}
	if password == "" {
		return &Error{Field: "password", Message: "Mot de passe requis"}
	}
	return nil
}

// Password validates a new password.
func Password(pw string) error {
	if len(pw) < passwordMinLen {
		return &Error{Field: "password", Message: fmt.Sprintf("Le mot de passe doit contenir au moins %d caractères", passwordMinLen)}
	}
	if len(pw) > passwordMaxBytes {
		return &Error{Field: "password", Message: "Mot de passe trop long"}
	}
	return nil
}

// Profile trims every supplied profile field.
func Profile(p *domain.ProfileUpdate) error {
	for _, f := range []*string{p.Name, p.Classe, p.Etablissement, p.DateNaissance, p.ProfileImage} {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
	return nil
}

// NewTask is the payload for creating a task.
type NewTask struct {
	Name   string `validate:"required,max=200"`
	Date   string `validate:"required,datetime=2006-01-02"`
	Time   string `validate:"required,clocktime"`
	Status string `validate:"omitempty,taskstatus"`
	Notes  string `validate:"max=2000"`
}

// CreateTask trims and validates a task creation request. An empty status
// becomes todo.
func CreateTask(t *NewTask) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Date = strings.TrimSpace(t.Date)
	t.Time = strings.TrimSpace(t.Time)
	t.Notes = strings.TrimSpace(t.Notes)
	if err := check(t); err != nil {
		return err
	}
	if t.Status == "" {
		t.Status = string(domain.TaskStatusTodo)
	}
	return nil
}

// UpdateTask trims and validates the supplied fields of a partial update.
// Empty name, date, time or status mean "not supplied".
func UpdateTask(u *domain.TaskUpdate) error {
	for _, f := range []*string{u.Name, u.Date, u.Time, u.Notes} {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
	if u.Date != nil && *u.Date != "" {
		if err := Date(*u.Date); err != nil {
			return err
		}
	}
	if u.Time != nil && *u.Time != "" {
		if err := v.Var(*u.Time, clockTimeTag); err != nil {
			return &Error{Field: "time", Message: "Heure invalide (HH:MM)"}
		}
	}
	if u.Status != nil && *u.Status != "" && !u.Status.Valid() {
		return &Error{Field: "status", Message: "Statut invalide"}
	}
	return nil
}

// Date validates a calendar date in YYYY-MM-DD form.
func Date(d string) error {
	if err := v.Var(d, "required,datetime=2006-01-02"); err != nil {
		return &Error{Field: "date", Message: "Date invalide (AAAA-MM-JJ)"}
	}
	return nil
}

func check(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate: %w", err)
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	return &Error{Field: field, Message: message(field, fe.Tag())}
}

var fieldLabels = map[string]string{
	"username": "Nom d'utilisateur",
	"email":    "Email",
	"password": "Mot de passe",
	"name":     "Nom",
	"date":     "Date",
	"time":     "Heure",
	"status":   "Statut",
	"notes":    "Notes",
}

func message(field, tag string) string {
	label, ok := fieldLabels[field]
	if !ok {
		label = field
	}
	switch tag {
	case "required":
		return label + " requis"
	case "email":
		return "Email invalide"
	case "min":
		return fmt.Sprintf("%s trop court", label)
	case "max":
		return fmt.Sprintf("%s trop long", label)
	case "datetime":
		if field == "time" {
			return "Heure invalide (HH:MM)"
		}
		return "Date invalide (AAAA-MM-JJ)"
	case clockTimeTag:
		return "Heure invalide (HH:MM)"
	case taskStatusTag:
		return "Statut invalide"
	default:
		return label + " invalide"
	}
}
