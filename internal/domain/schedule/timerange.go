package schedule

import "time"

// TimeRange é um intervalo semiaberto [Start, End) de instantes canônicos.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps testa sobreposição semiaberta: intervalos que apenas se
// encostam na borda não conflitam.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Contains verifica se other cabe inteiro dentro de r (bordas inclusas).
func (r TimeRange) Contains(other TimeRange) bool {
	return !other.Start.Before(r.Start) && !other.End.After(r.End)
}
