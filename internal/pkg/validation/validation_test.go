package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckConstancia_Valid(t *testing.T) {
	assert.Empty(t, CheckConstancia("Juan Pérez", "Primeros Auxilios", 8, "2024-01-15"))
}

func TestCheckConstancia_Violations(t *testing.T) {
	tests := []struct {
		name    string
		n, c    string
		hours   int
		date    string
		wantMsg string
	}{
		{"empty name", "", "Curso", 1, "2024-01-01", "Nombre requerido"},
		{"blank name", "   ", "Curso", 1, "2024-01-01", "Nombre requerido"},
		{"empty course", "Juan", "", 1, "2024-01-01", "Curso requerido"},
		{"zero hours", "Juan", "Curso", 0, "2024-01-01", "Horas debe ser un número válido mayor a 0"},
		{"negative hours", "Juan", "Curso", -3, "2024-01-01", "Horas debe ser un número válido mayor a 0"},
		{"missing date", "Juan", "Curso", 1, "", "Fecha requerida"},
		{"bad date", "Juan", "Curso", 1, "15/01/2024", "Fecha inválida"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := CheckConstancia(tt.n, tt.c, tt.hours, tt.date)
			assert.Contains(t, errs, tt.wantMsg)
		})
	}
}

func TestCheckConstancia_CollectsAllViolations(t *testing.T) {
	errs := CheckConstancia("", "", 0, "")
	assert.Len(t, errs, 4)
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2024-02-29"))
	assert.False(t, IsValidDate("2023-02-29"))
	assert.False(t, IsValidDate("2024-13-01"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("admin@proteccioncivil.gob.mx"))
	assert.False(t, IsValidEmail("not an email"))
}
