package schedule

import (
	"time"

	"github.com/AgendariaApp/salon-scheduler/internal/httperr"
	"github.com/AgendariaApp/salon-scheduler/internal/timezone"
)

// ResolveWindow materializa a janela de expediente de um profissional
// para a data de t, no fuso do salão.
//
// O dia da semana é derivado no fuso local — a data UTC pode cair em
// outro dia perto da meia-noite.
//
// "Profissional sem agenda cadastrada" é tratado antes, ao carregar a
// WeeklySchedule; aqui só existe "fechado neste dia" (closed_on_weekday).
func ResolveWindow(ws WeeklySchedule, t time.Time, loc *time.Location) (TimeRange, error) {
	day := ws.Day(timezone.WeekdayOf(t, loc))
	if !day.Available {
		return TimeRange{}, httperr.ErrBusiness("closed_on_weekday")
	}

	start, err := timezone.AtWallClock(t, day.Start, loc)
	if err != nil {
		return TimeRange{}, httperr.ErrBusiness("invalid_schedule")
	}

	end, err := timezone.AtWallClock(t, day.End, loc)
	if err != nil {
		return TimeRange{}, httperr.ErrBusiness("invalid_schedule")
	}

	return TimeRange{
		Start: timezone.ToCanonical(start),
		End:   timezone.ToCanonical(end),
	}, nil
}
