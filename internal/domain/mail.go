package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type MonthlyRosterAssignment struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	TimeLabel string `json:"timeLabel"`
	Attire    string `json:"attire"`
}

type MonthlyRosterMailData struct {
	SquireName  string                    `json:"squireName"`
	MonthLabel  string                    `json:"monthLabel"` // p. ej. "Octubre 2025"
	Assignments []MonthlyRosterAssignment `json:"assignments"`
}
