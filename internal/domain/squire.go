package domain

import (
	"time"
)

type Squire struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

// SquireColors es la paleta de colores de presentación que se reparte entre
// los escuderos nuevos.
var SquireColors = []string{
	"bg-blue-500/80",
	"bg-emerald-500/80",
	"bg-violet-500/80",
	"bg-amber-500/80",
	"bg-rose-500/80",
	"bg-cyan-500/80",
	"bg-indigo-500/80",
	"bg-orange-500/80",
	"bg-teal-500/80",
	"bg-fuchsia-500/80",
	"bg-lime-500/80",
	"bg-pink-500/80",
	"bg-sky-500/80",
}
