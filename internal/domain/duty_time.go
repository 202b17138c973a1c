package domain

// Period clasifica un horario de servicio según la parte del día.
// Se usa para la regla de exclusión mañana/noche.
type Period string

const (
	PeriodMorning Period = "morning"
	PeriodNight   Period = "night"
)

type DutyTime struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	Period        Period `json:"period"`
	DefaultAttire string `json:"defaultAttire"`
}

// DutyTimes es el catálogo fijo de horarios de servicio de la congregación.
// El orden del slice es el orden canónico de presentación y de asignación,
// no debe modificarse en tiempo de ejecución.
var DutyTimes = []DutyTime{
	{ID: "07:00", Label: "7:00 AM", Period: PeriodMorning, DefaultAttire: "Traje azul, camisa blanca, zapatos negros."},
	{ID: "09:30", Label: "9:30 AM", Period: PeriodMorning, DefaultAttire: "Camisa blanca, chaqueta azul, pantalón negro, zapatos negros."},
	{ID: "11:00", Label: "11:00 AM", Period: PeriodMorning, DefaultAttire: "Chaqueta azul, camisa blanca, pantalón gris, zapatos negros."},
	{ID: "18:00", Label: "6:00 PM", Period: PeriodNight, DefaultAttire: "Traje azul, camisa blanca, correa negra, zapatos negros."},
	{ID: "18:30", Label: "6:30 PM", Period: PeriodNight, DefaultAttire: "Camisa blanca, chaqueta azul, pantalón negro, zapatos negros."},
}

// UniformOptions son las combinaciones de vestimenta que se ofrecen al editar
// un turno. La vestimenta de un turno admite cualquier texto, esta lista es
// solo una ayuda para la capa de presentación.
var UniformOptions = []string{
	"Traje azul, camisa blanca, zapatos negros.",
	"Camisa blanca, chaqueta azul, pantalón negro, zapatos negros.",
	"Chaqueta azul, camisa blanca, pantalón gris, zapatos negros.",
	"Traje azul, camisa blanca, correa negra, zapatos negros.",
	"Camisa blanca, pantalón azul, zapatos negros.",
}

// GetDutyTime busca un horario por su identificador.
func GetDutyTime(id string) (DutyTime, bool) {
	for _, dt := range DutyTimes {
		if dt.ID == id {
			return dt, true
		}
	}
	return DutyTime{}, false
}

// DutyTimeIndex devuelve la posición del horario dentro del catálogo,
// o -1 si el identificador no existe.
func DutyTimeIndex(id string) int {
	for i, dt := range DutyTimes {
		if dt.ID == id {
			return i
		}
	}
	return -1
}

var MonthNames = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// WeekdayNames está indexado igual que time.Weekday (0 = domingo).
var WeekdayNames = []string{
	"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}
