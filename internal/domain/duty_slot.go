package domain

type DutySlot struct {
	ID       string `json:"id"`
	Date     string `json:"date"` // fecha civil en formato YYYY-MM-DD, sin zona horaria
	TimeID   string `json:"timeID"`
	Attire   string `json:"attire"`
	SquireID string `json:"squireID,omitempty"` // cuando está vacío, el turno no tiene escudero asignado
}

// Assigned indica si el turno tiene un escudero asignado.
func (s DutySlot) Assigned() bool {
	return s.SquireID != ""
}
