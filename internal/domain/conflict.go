package domain

// ConflictReason identifica una violación de las reglas de asignación de un
// escudero en un mismo día. Los conflictos se señalan, nunca se bloquean: la
// capa externa puede crear un estado inválido a propósito y verlo marcado.
type ConflictReason string

const (
	// Más de dos turnos el mismo día para el mismo escudero.
	ConflictMaxTwoPerDay ConflictReason = "MAX_TWO_PER_DAY"
	// Turnos de mañana y de noche el mismo día para el mismo escudero.
	ConflictNoCrossPeriod ConflictReason = "NO_CROSS_PERIOD"
)

// Message devuelve el texto que la capa de presentación muestra junto al turno.
func (r ConflictReason) Message() string {
	switch r {
	case ConflictMaxTwoPerDay:
		return "Máximo 2 turnos por día para el mismo escudero."
	case ConflictNoCrossPeriod:
		return "No puede estar en turnos de mañana y noche el mismo día."
	default:
		return string(r)
	}
}
