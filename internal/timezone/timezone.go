package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// Formatos aceitos do front conversacional.
const (
	DateLayout      = "2006-01-02"
	WallClockLayout = "15:04"
	DateTimeLayout  = "2006-01-02 15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// --------------------------------------------------
// Conversões local <-> canônico (UTC)
// --------------------------------------------------
// Toda aritmética de fuso passa por aqui. Comparar horário de parede
// ou derivar dia da semana direto no instante UTC quebra perto da
// virada de dia local.

// ToCanonical normaliza um instante para o fuso de armazenamento.
func ToCanonical(t time.Time) time.Time {
	return t.UTC()
}

// ToLocal apresenta um instante canônico no fuso indicado.
func ToLocal(t time.Time, loc *time.Location) time.Time {
	return t.In(loc)
}

// WeekdayOf devolve o dia da semana do instante visto no fuso local.
func WeekdayOf(t time.Time, loc *time.Location) time.Weekday {
	return t.In(loc).Weekday()
}

// AtWallClock ancora um horário de parede ("15:04") na data local de t.
func AtWallClock(t time.Time, wallClock string, loc *time.Location) (time.Time, error) {
	hm, err := time.Parse(WallClockLayout, wallClock)
	if err != nil {
		return time.Time{}, err
	}

	local := t.In(loc)
	return time.Date(
		local.Year(), local.Month(), local.Day(),
		hm.Hour(), hm.Minute(), 0, 0,
		loc,
	), nil
}

// ParseDate interpreta "2006-01-02" como meia-noite local.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, dateStr, loc)
}

// ParseDateTime interpreta data e hora de parede no fuso local.
func ParseDateTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, dateStr+" "+timeStr, loc)
}
