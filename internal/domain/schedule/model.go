package schedule

import "time"

// Kind define las familias de recurrencia soportadas.
// @Enum fixed_pattern, every_other_day, free_text
type Kind string

const (
	KindFixedPattern  Kind = "fixed_pattern"
	KindEveryOtherDay Kind = "every_other_day"
	KindFreeText      Kind = "free_text"
)

// Spec representa una regla de recurrencia de un item o alerta.
// Exactamente un payload va poblado según Kind:
//   - Pattern para fixed_pattern ("Daily", "MWF", "Tu-Th-Sat", ...)
//   - StartDate para every_other_day (ancla la paridad de los días "on")
//   - Text para free_text (string de plan libre, ej. "M-W-F after workout")
type Spec struct {
	Kind Kind `json:"kind"`

	Pattern   string    `json:"pattern,omitempty"`
	StartDate time.Time `json:"start_date,omitempty"`
	Text      string    `json:"text,omitempty"`
}

// Daily es el spec por defecto: patrón fijo que resuelve a los 7 días.
func Daily() Spec {
	return Spec{Kind: KindFixedPattern, Pattern: "Daily"}
}

// FixedPattern construye un spec de patrón fijo.
func FixedPattern(code string) Spec {
	return Spec{Kind: KindFixedPattern, Pattern: code}
}

// EveryOtherDay construye un spec EOD anclado a start.
func EveryOtherDay(start time.Time) Spec {
	return Spec{Kind: KindEveryOtherDay, StartDate: start}
}

// FreeText construye un spec de texto libre.
func FreeText(text string) Spec {
	return Spec{Kind: KindFreeText, Text: text}
}

// WeekdaySet es un set de días de la semana como bitmask
// (bit i = time.Weekday(i), domingo=0 ... sábado=6).
type WeekdaySet uint8

// AllDays incluye los 7 días.
const AllDays WeekdaySet = 0x7F

func (s WeekdaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

func (s *WeekdaySet) Add(d time.Weekday) {
	*s |= 1 << uint(d)
}

func (s WeekdaySet) Empty() bool {
	return s == 0
}

// Days devuelve los días del set en orden domingo..sábado.
func (s WeekdaySet) Days() []time.Weekday {
	out := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}
