package astro

import (
	"testing"
	"time"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestSunSignBoundaries(t *testing.T) {
	cases := []struct {
		y, m, d int
		want    string
	}{
		{1990, 3, 21, "Koç"},
		{1990, 4, 19, "Koç"},
		{1990, 4, 20, "Boğa"},
		{1990, 1, 19, "Oğlak"},
		{1990, 1, 20, "Kova"},
		{1990, 12, 22, "Oğlak"},
		{1990, 8, 23, "Başak"},
		{1990, 2, 19, "Balık"},
	}

	for _, tc := range cases {
		if got := SunSign(date(tc.y, tc.m, tc.d)); got != tc.want {
			t.Errorf("%04d-%02d-%02d: got %q, want %q", tc.y, tc.m, tc.d, got, tc.want)
		}
	}
}

func TestDeriveKnownChart(t *testing.T) {
	// 25 March 1990, 10:00
	chart := Derive(date(1990, 3, 25), "10:00", "İstanbul")

	if chart.Sun != "Koç" {
		t.Errorf("sun: got %q, want Koç", chart.Sun)
	}
	// (month0 2 + day 25 % 30) % 12 = 3
	if chart.Moon != "Yengeç" {
		t.Errorf("moon: got %q, want Yengeç", chart.Moon)
	}
	// (month0 2 + hour 10/2) % 12 = 7
	if chart.Ascendant != "Akrep" {
		t.Errorf("ascendant: got %q, want Akrep", chart.Ascendant)
	}
	// day 25 > 20: one sign past the sun
	if chart.Mercury != "Boğa" {
		t.Errorf("mercury: got %q, want Boğa", chart.Mercury)
	}
	// month0 2 % 3 = 2: venus sits with the sun
	if chart.Venus != "Koç" {
		t.Errorf("venus: got %q, want Koç", chart.Venus)
	}
	// 1990 % 12 = 10
	if chart.Mars != "Kova" {
		t.Errorf("mars: got %q, want Kova", chart.Mars)
	}
	if chart.BirthPlace != "İstanbul" {
		t.Errorf("birth place: got %q", chart.BirthPlace)
	}
	if chart.CalculatedAt.IsZero() {
		t.Error("calculatedAt not set")
	}
}

func TestDeriveDeterministic(t *testing.T) {
	a := Derive(date(1985, 7, 2), "23:30", "Ankara")
	b := Derive(date(1985, 7, 2), "23:30", "Ankara")

	a.CalculatedAt = b.CalculatedAt
	if a != b {
		t.Fatalf("same inputs produced different charts:\n%+v\n%+v", a, b)
	}
}

func TestDeriveToleratesBadClock(t *testing.T) {
	for _, bad := range []string{"", "x", "öğlen", "99:00"} {
		chart := Derive(date(1990, 3, 25), bad, "İzmir")
		// malformed clock falls back to midnight: (2 + 0) % 12 = 2
		if chart.Ascendant != "İkizler" {
			t.Errorf("birth time %q: ascendant got %q, want İkizler", bad, chart.Ascendant)
		}
	}
}
