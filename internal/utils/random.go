package utils

import (
	"math/rand"

	"github.com/escuderos-dev/duty-planner/backend/internal/domain"
)

var letters = []rune("abcdefghijklmnopqrstuvwxyz")
var digits = "0123456789"

// GenerateRandomID genera un identificador de letras seguidas de dígitos,
// p. ej. "krvz2847" para 4 y 4.
func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = letters[rand.Intn(len(letters))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}

// RandomSquireColor elige un color de presentación de la paleta.
func RandomSquireColor() string {
	return domain.SquireColors[rand.Intn(len(domain.SquireColors))]
}
