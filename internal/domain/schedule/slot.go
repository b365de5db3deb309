package schedule

import "time"

// Grade fixa de início de horários oferecidos.
const SlotStep = 15 * time.Minute

// Slot é um horário candidato, com exatamente a duração do serviço.
type Slot struct {
	Start time.Time
	End   time.Time
}

// FreeSlots varre a janela de expediente em passos de SlotStep a partir
// do início e devolve, em ordem crescente, os inícios em que um
// atendimento de duration não ultrapassa o fechamento nem sobrepõe um
// agendamento existente (teste semiaberto: encostar na borda não é
// conflito).
//
// Varredura linear: o volume de agendamentos de um único dia é pequeno.
func FreeSlots(window TimeRange, duration time.Duration, busy []TimeRange) []Slot {
	if duration <= 0 {
		return nil
	}

	var slots []Slot
	for cur := window.Start; !cur.Add(duration).After(window.End); cur = cur.Add(SlotStep) {
		candidate := TimeRange{Start: cur, End: cur.Add(duration)}

		if overlapsAny(candidate, busy) {
			continue
		}

		slots = append(slots, Slot{Start: candidate.Start, End: candidate.End})
	}

	return slots
}

func overlapsAny(candidate TimeRange, busy []TimeRange) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}
