package schedule

import "time"

// DaySchedule é a janela de expediente de um dia da semana.
// Start/End são horários de parede ("15:04") no fuso do salão e só
// são consultados quando Available é true.
type DaySchedule struct {
	Available bool
	Start     string
	End       string
}

// WeeklySchedule é a agenda fixa de um profissional, indexada por
// time.Weekday (0 = domingo ... 6 = sábado). O array fixo elimina
// chave inválida por construção.
type WeeklySchedule [7]DaySchedule

func (ws WeeklySchedule) Day(wd time.Weekday) DaySchedule {
	return ws[wd]
}
