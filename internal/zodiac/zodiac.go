package zodiac

// ZodiacSign is the read-only reference entity seeded at startup.
type ZodiacSign struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	Element       string `json:"element"`
	Planet        string `json:"planet"`
	DateRange     string `json:"dateRange"`
	Traits        string `json:"traits"`
	Strengths     string `json:"strengths"`
	Weaknesses    string `json:"weaknesses"`
	Description   string `json:"description"`
	Compatibility string `json:"compatibility"`
	ImageURL      string `json:"imageUrl"`
}
