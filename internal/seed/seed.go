package seed

import (
	"errors"
	"log/slog"

	"github.com/escuderos-dev/duty-planner/backend/internal/config"
	"github.com/escuderos-dev/duty-planner/backend/internal/domain"
	"github.com/escuderos-dev/duty-planner/backend/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

// Plantilla inicial de la congregación. Los identificadores son fijos para que
// las inserciones repetidas no dupliquen a nadie; el orden de esta tabla es el
// orden de rotación del reparto automático.
var initialRoster = []struct {
	id    string
	name  string
	color string
	user  string // parte local del correo
}{
	{id: "s1", name: "Diac. Anthony Marte", color: "bg-blue-500/80", user: "anthony.marte"},
	{id: "s2", name: "Alexis Ramirez", color: "bg-emerald-500/80", user: "alexis.ramirez"},
	{id: "s3", name: "Antonio Alcantara", color: "bg-violet-500/80", user: "antonio.alcantara"},
	{id: "s4", name: "Cesar", color: "bg-amber-500/80", user: "cesar"},
	{id: "s5", name: "Frank Arias", color: "bg-rose-500/80", user: "frank.arias"},
	{id: "s6", name: "Diac. Franklie Madera", color: "bg-cyan-500/80", user: "franklie.madera"},
	{id: "s7", name: "Franyeli Solano", color: "bg-indigo-500/80", user: "franyeli.solano"},
	{id: "s8", name: "Jose Vidal", color: "bg-orange-500/80", user: "jose.vidal"},
	{id: "s9", name: "Julio Galvan", color: "bg-teal-500/80", user: "julio.galvan"},
	{id: "s10", name: "Diac. Franklin Batista", color: "bg-fuchsia-500/80", user: "franklin.batista"},
	{id: "s11", name: "Diac. Luis Enrique", color: "bg-lime-500/80", user: "luis.enrique"},
	{id: "s12", name: "Jewry", color: "bg-pink-500/80", user: "jewry"},
	{id: "s13", name: "Jeffry Santiago", color: "bg-sky-500/80", user: "jeffry.santiago"},
}

// SeedInitialRoster inserta la plantilla inicial. Los escuderos que ya existen
// se dejan tal cual.
func SeedInitialRoster(cfg *config.Config, repo *repository.Repository) {
	inserted := 0

	for _, entry := range initialRoster {
		squire := &domain.Squire{
			ID:    entry.id,
			Name:  entry.name,
			Email: entry.user + "@" + cfg.Email.UserDomain,
			Color: entry.color,
		}

		if err := repo.CreateSquire(squire); err != nil {
			var pgErr *pgconn.PgError
			switch {
			case errors.As(err, &pgErr) && pgErr.ConstraintName == "squires_pkey":
				// Ya estaba insertado en una ejecución anterior
			default:
				slog.Error("no se pudo insertar el escudero", slog.String("id", entry.id), slog.String("error", err.Error()))
			}
			continue
		}

		inserted++
	}

	slog.Info("plantilla inicial insertada", slog.Int("count", inserted))
}
