package schedule

import (
	"regexp"
	"strings"
	"time"
)

// namedPatterns es el vocabulario cerrado de patrones con nombre.
// Se reconoce case-sensitive, tal cual lo escribe el usuario en la UI.
var namedPatterns = map[string]WeekdaySet{
	"Daily":  AllDays,
	"MTWThF": weekdaySetOf(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday),
	"MWF":    weekdaySetOf(time.Monday, time.Wednesday, time.Friday),
	"TuThSa": weekdaySetOf(time.Tuesday, time.Thursday, time.Saturday),
	"Sat":    weekdaySetOf(time.Saturday),
	"Sun":    weekdaySetOf(time.Sunday),
}

// abbrevDays mapea abreviaturas de token a día. Lookup case-insensitive
// (la persona que tipea "mwf" y "MWF" quiere decir lo mismo).
var abbrevDays = map[string]time.Weekday{
	"su": time.Sunday, "sun": time.Sunday,
	"m": time.Monday, "mon": time.Monday,
	"tu": time.Tuesday, "tue": time.Tuesday,
	"w": time.Wednesday, "wed": time.Wednesday,
	"th": time.Thursday, "thu": time.Thursday,
	"f": time.Friday, "fri": time.Friday,
	"sa": time.Saturday, "sat": time.Saturday,
}

var (
	nonWordSplit = regexp.MustCompile(`\W+`)

	// Separadores habituales en planes libres: slash, pipe, en-dash, em-dash.
	freeTextSeparators = regexp.MustCompile(`[/|\x{2013}\x{2014}]`)

	// Letras sueltas m/w/f como token aislado se expanden al nombre completo
	// antes del matching (no dentro de palabras más largas).
	singleLetterDay = regexp.MustCompile(`(?i)\b([mwf])\b`)

	// Matching word-boundary por día. Cubre abreviaturas cortas y nombre completo.
	freeTextDays = []struct {
		day time.Weekday
		re  *regexp.Regexp
	}{
		{time.Sunday, regexp.MustCompile(`(?i)\b(su|sun|sundays?)\b`)},
		{time.Monday, regexp.MustCompile(`(?i)\b(mon|mondays?)\b`)},
		{time.Tuesday, regexp.MustCompile(`(?i)\b(tu|tue|tues|tuesdays?)\b`)},
		{time.Wednesday, regexp.MustCompile(`(?i)\b(wed|weds|wednesdays?)\b`)},
		{time.Thursday, regexp.MustCompile(`(?i)\b(th|thu|thur|thurs|thursdays?)\b`)},
		{time.Friday, regexp.MustCompile(`(?i)\b(fri|fridays?)\b`)},
		{time.Saturday, regexp.MustCompile(`(?i)\b(sa|sat|saturdays?)\b`)},
	}
)

func weekdaySetOf(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s.Add(d)
	}
	return s
}

// ResolveWeekdays devuelve el set de días activos de un spec.
// Nunca falla: input inválido degrada a un default documentado.
//   - fixed_pattern sin tokens reconocibles => todos los días
//     (un typo en el patrón no debe esconder una dosis).
//   - free_text sin matches => set vacío (el texto libre muchas veces
//     ni siquiera es un horario).
//   - every_other_day no es expresable como set estático => vacío;
//     su due-ness solo sale de IsDueOn.
func ResolveWeekdays(spec Spec) WeekdaySet {
	switch spec.Kind {
	case KindEveryOtherDay:
		return 0
	case KindFreeText:
		return resolveFreeText(spec.Text)
	default:
		return resolveFixedPattern(spec.Pattern)
	}
}

func resolveFixedPattern(code string) WeekdaySet {
	code = strings.TrimSpace(code)
	if code == "" {
		return AllDays
	}
	if s, ok := namedPatterns[code]; ok {
		return s
	}

	// Fallback: tokenizar por runs de no-word y mapear abreviaturas.
	var s WeekdaySet
	for _, tok := range nonWordSplit.Split(code, -1) {
		if tok == "" {
			continue
		}
		if d, ok := abbrevDays[strings.ToLower(tok)]; ok {
			s.Add(d)
		}
	}
	if s.Empty() {
		return AllDays
	}
	return s
}

func resolveFreeText(text string) WeekdaySet {
	normalized := freeTextSeparators.ReplaceAllString(text, " ")
	normalized = singleLetterDay.ReplaceAllStringFunc(normalized, func(m string) string {
		switch strings.ToLower(m) {
		case "m":
			return "monday"
		case "w":
			return "wednesday"
		case "f":
			return "friday"
		}
		return m
	})

	var s WeekdaySet
	for _, p := range freeTextDays {
		if p.re.MatchString(normalized) {
			s.Add(p.day)
		}
	}
	return s
}

// IsDueOn decide si el spec dispara en la fecha dada.
// Para every_other_day la paridad se calcula sobre componentes de fecha
// (año/mes/día en UTC), así la hora del día nunca afecta el resultado;
// fechas anteriores al ancla también funcionan (divisibilidad por 2 no
// depende del signo).
func IsDueOn(spec Spec, date time.Time) bool {
	if spec.Kind == KindEveryOtherDay {
		days := daysBetween(spec.StartDate, date)
		return days%2 == 0
	}
	return ResolveWeekdays(spec).Has(date.Weekday())
}

func daysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}
