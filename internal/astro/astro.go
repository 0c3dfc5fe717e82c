// Package astro computes the site's birth-chart summary. The formulas
// are the site's own placeholder arithmetic on calendar fields, not
// ephemeris math: their output shape and determinism are the contract,
// not astronomical accuracy.
package astro

import "time"

// ChartData is the fixed-shape result stored on a saved birth chart.
type ChartData struct {
	Sun          string    `json:"sun"`
	Moon         string    `json:"moon"`
	Ascendant    string    `json:"ascendant"`
	Mercury      string    `json:"mercury"`
	Venus        string    `json:"venus"`
	Mars         string    `json:"mars"`
	BirthPlace   string    `json:"birthPlace"`
	CalculatedAt time.Time `json:"calculatedAt"`
}

var signs = [12]string{
	"Koç", "Boğa", "İkizler", "Yengeç", "Aslan", "Başak",
	"Terazi", "Akrep", "Yay", "Oğlak", "Kova", "Balık",
}

// Derive maps birth data to the chart summary. Pure and total: any valid
// date and clock time yields a result, the same inputs always yield the
// same signs (CalculatedAt aside).
func Derive(birthDate time.Time, birthTime string, birthPlace string) ChartData {
	hour := parseHour(birthTime)
	return ChartData{
		Sun:          SunSign(birthDate),
		Moon:         moonSign(birthDate),
		Ascendant:    ascendantSign(birthDate, hour),
		Mercury:      mercurySign(birthDate),
		Venus:        venusSign(birthDate),
		Mars:         marsSign(birthDate),
		BirthPlace:   birthPlace,
		CalculatedAt: time.Now().UTC(),
	}
}

// SunSign assigns the sign by birth-date range.
func SunSign(date time.Time) string {
	day := date.Day()
	month := int(date.Month())

	switch {
	case (month == 1 && day >= 20) || (month == 2 && day <= 18):
		return "Kova"
	case (month == 2 && day >= 19) || (month == 3 && day <= 20):
		return "Balık"
	case (month == 3 && day >= 21) || (month == 4 && day <= 19):
		return "Koç"
	case (month == 4 && day >= 20) || (month == 5 && day <= 20):
		return "Boğa"
	case (month == 5 && day >= 21) || (month == 6 && day <= 20):
		return "İkizler"
	case (month == 6 && day >= 21) || (month == 7 && day <= 22):
		return "Yengeç"
	case (month == 7 && day >= 23) || (month == 8 && day <= 22):
		return "Aslan"
	case (month == 8 && day >= 23) || (month == 9 && day <= 22):
		return "Başak"
	case (month == 9 && day >= 23) || (month == 10 && day <= 22):
		return "Terazi"
	case (month == 10 && day >= 23) || (month == 11 && day <= 21):
		return "Akrep"
	case (month == 11 && day >= 22) || (month == 12 && day <= 21):
		return "Yay"
	default:
		return "Oğlak"
	}
}

// month0 is the zero-based month the original formulas were written against.
func month0(date time.Time) int {
	return int(date.Month()) - 1
}

func moonSign(date time.Time) string {
	idx := (month0(date) + date.Day()%30) % 12
	return signs[idx]
}

func ascendantSign(date time.Time, hour int) string {
	idx := (month0(date) + hour/2) % 12
	return signs[idx]
}

func mercurySign(date time.Time) string {
	sunIdx := signIndex(SunSign(date))
	day := date.Day()

	// Mercury never strays far from the Sun.
	switch {
	case day < 10:
		return signs[(sunIdx+11)%12]
	case day > 20:
		return signs[(sunIdx+1)%12]
	default:
		return signs[sunIdx]
	}
}

func venusSign(date time.Time) string {
	sunIdx := signIndex(SunSign(date))

	switch month0(date) % 3 {
	case 0:
		return signs[(sunIdx+1)%12]
	case 1:
		return signs[(sunIdx+11)%12]
	default:
		return signs[sunIdx]
	}
}

func marsSign(date time.Time) string {
	return signs[date.Year()%12]
}

func signIndex(name string) int {
	for i, s := range signs {
		if s == name {
			return i
		}
	}
	return 0
}

// parseHour reads the hour off an "HH:MM" label; malformed input counts
// as midnight so Derive stays total.
func parseHour(birthTime string) int {
	if len(birthTime) < 2 {
		return 0
	}
	h := 0
	for _, r := range birthTime[:2] {
		if r < '0' || r > '9' {
			return 0
		}
		h = h*10 + int(r-'0')
	}
	if h > 23 {
		return 0
	}
	return h
}
