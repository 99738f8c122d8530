package schedule

import (
	"testing"
	"time"
)

func TestResolveWeekdays_NamedPatterns(t *testing.T) {
	cases := []struct {
		pattern string
		want    []time.Weekday
	}{
		{"Daily", []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}},
		{"MTWThF", []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}},
		{"MWF", []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
		{"TuThSa", []time.Weekday{time.Tuesday, time.Thursday, time.Saturday}},
		{"Sat", []time.Weekday{time.Saturday}},
		{"Sun", []time.Weekday{time.Sunday}},
		{"", []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}},
	}

	for _, c := range cases {
		got := ResolveWeekdays(FixedPattern(c.pattern))
		assertDays(t, "pattern "+c.pattern, got, c.want)
	}
}

func TestResolveWeekdays_TokenizedPattern(t *testing.T) {
	got := ResolveWeekdays(FixedPattern("Tu-Th-Sat"))
	assertDays(t, "Tu-Th-Sat", got, []time.Weekday{time.Tuesday, time.Thursday, time.Saturday})

	got = ResolveWeekdays(FixedPattern("mon, wed, fri"))
	assertDays(t, "mon, wed, fri", got, []time.Weekday{time.Monday, time.Wednesday, time.Friday})

	// Tokens desconocidos se descartan; los reconocidos quedan.
	got = ResolveWeekdays(FixedPattern("Mon/xyz/Fri"))
	assertDays(t, "Mon/xyz/Fri", got, []time.Weekday{time.Monday, time.Friday})
}

func TestResolveWeekdays_MalformedPatternDefaultsToAllDays(t *testing.T) {
	got := ResolveWeekdays(FixedPattern("whenever"))
	if got != AllDays {
		t.Fatalf("expected all days for unrecognized pattern, got %v", got.Days())
	}
}

func TestResolveWeekdays_FreeText(t *testing.T) {
	got := ResolveWeekdays(FreeText("M-W-F after workout — 50 IU"))
	for _, d := range []time.Weekday{time.Monday, time.Wednesday, time.Friday} {
		if !got.Has(d) {
			t.Fatalf("expected %v in free text result, got %v", d, got.Days())
		}
	}

	got = ResolveWeekdays(FreeText("tuesdays and saturdays, fasted"))
	assertDays(t, "tuesdays...", got, []time.Weekday{time.Tuesday, time.Saturday})
}

func TestResolveWeekdays_FreeText_WordBoundaries(t *testing.T) {
	// "friend" no debe agendar viernes, "saturated" no debe agendar sábado.
	got := ResolveWeekdays(FreeText("with a friend, saturated fats"))
	if !got.Empty() {
		t.Fatalf("expected empty set, got %v", got.Days())
	}
}

func TestResolveWeekdays_FreeText_NoMatchIsEmpty(t *testing.T) {
	got := ResolveWeekdays(FreeText("before breakfast, 50 IU"))
	if !got.Empty() {
		t.Fatalf("expected empty set for text without weekdays, got %v", got.Days())
	}
}

func TestIsDueOn_FixedPattern(t *testing.T) {
	spec := FixedPattern("MWF")

	tuesday := time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC)
	wednesday := time.Date(2024, 1, 3, 10, 30, 0, 0, time.UTC)

	if IsDueOn(spec, tuesday) {
		t.Fatal("MWF should not be due on a Tuesday")
	}
	if !IsDueOn(spec, wednesday) {
		t.Fatal("MWF should be due on a Wednesday")
	}
}

func TestIsDueOn_EveryOtherDay(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	spec := EveryOtherDay(start)

	cases := []struct {
		day  int
		want bool
	}{
		{1, true},
		{2, false},
		{3, true},
		{4, false},
		{5, true},
	}
	for _, c := range cases {
		d := time.Date(2024, 1, c.day, 0, 0, 0, 0, time.UTC)
		if got := IsDueOn(spec, d); got != c.want {
			t.Fatalf("EOD on 2024-01-%02d: got %v want %v", c.day, got, c.want)
		}
	}

	// Simétrico hacia atrás respecto del ancla.
	if !IsDueOn(spec, time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("EOD should be due two days before the anchor")
	}
	if IsDueOn(spec, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("EOD should not be due one day before the anchor")
	}
}

func TestIsDueOn_EveryOtherDay_TimeOfDayIgnored(t *testing.T) {
	start := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	spec := EveryOtherDay(start)

	if !IsDueOn(spec, time.Date(2024, 1, 3, 0, 1, 0, 0, time.UTC)) {
		t.Fatal("parity must use date-only components, not time of day")
	}
}

func assertDays(t *testing.T, label string, got WeekdaySet, want []time.Weekday) {
	t.Helper()

	var ws WeekdaySet
	for _, d := range want {
		ws.Add(d)
	}
	if got != ws {
		t.Fatalf("%s: got %v want %v", label, got.Days(), want)
	}
}
