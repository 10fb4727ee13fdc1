package validation

import (
	"regexp"
	"strings"
	"time"
)

// isValidEmail matches /^[^\s@]+@[^\s@]+\.[^\s@]+$/
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidDate reports whether s is a parseable YYYY-MM-DD calendar date.
func IsValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// CheckConstancia validates the issuance row contract: name and course
// non-empty, hours a positive integer, date a parseable calendar date.
// Returns one message per violation, empty slice when the row is valid.
func CheckConstancia(name, course string, hours int, date string) []string {
	var errs []string
	if strings.TrimSpace(name) == "" {
		errs = append(errs, "Nombre requerido")
	}
	if strings.TrimSpace(course) == "" {
		errs = append(errs, "Curso requerido")
	}
	if hours <= 0 {
		errs = append(errs, "Horas debe ser un número válido mayor a 0")
	}
	if date == "" {
		errs = append(errs, "Fecha requerida")
	} else if !IsValidDate(date) {
		errs = append(errs, "Fecha inválida")
	}
	return errs
}
