package domain

import "strings"

// Article is a virtue-tagged news story from the static catalog.
type Article struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Virtues     []string `json:"virtues"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

var articles = []Article{
	{
		ID:          "n1",
		Title:       "Local Hero Shows Resilience in Community Rebuilding Effort",
		Description: "After a devastating storm, Sarah led her community in a remarkable rebuilding effort, demonstrating incredible resilience and teamwork.",
		URL:         "https://example.com/news/resilience-hero",
		Virtues:     []string{"resilience", "teamwork"},
		ImageURL:    "https://via.placeholder.com/150/FF5733/FFFFFF?text=Resilience",
	},
	{
		ID:          "n2",
		Title:       "CEO's Humility Leads to Breakthrough Innovation",
		Description: "John, the CEO of a tech startup, openly admitted a product failure and pivoted the company, showcasing profound humility and a growth mindset.",
		URL:         "https://example.com/news/humility-ceo",
		Virtues:     []string{"humility", "growth_mindset"},
		ImageURL:    "https://via.placeholder.com/150/33FF57/FFFFFF?text=Humility",
	},
	{
		ID:          "n3",
		Title:       "Scientist's Curiosity Unlocks New Medical Discovery",
		Description: "Dr. Anya Sharma's relentless curiosity and wisdom in research led to a groundbreaking discovery in disease treatment.",
		URL:         "https://example.com/news/curiosity-discovery",
		Virtues:     []string{"curiosity", "wisdom"},
		ImageURL:    "https://via.placeholder.com/150/3357FF/FFFFFF?text=Curiosity",
	},
	{
		ID:          "n4",
		Title:       "Activist's Courage Sparks Social Change",
		Description: "Maria stood up against injustice, demonstrating immense courage and integrity in her fight for social equality.",
		URL:         "https://example.com/news/courage-activist",
		Virtues:     []string{"courage", "integrity"},
		ImageURL:    "https://via.placeholder.com/150/FF33F0/FFFFFF?text=Courage",
	},
	{
		ID:          "n5",
		Title:       "Team's Empathy Transforms Customer Experience",
		Description: "A customer service team, driven by empathy, redesigned their support process, leading to unprecedented customer satisfaction.",
		URL:         "https://example.com/news/empathy-team",
		Virtues:     []string{"empathy", "teamwork"},
		ImageURL:    "https://via.placeholder.com/150/F0FF33/FFFFFF?text=Empathy",
	},
	{
		ID:          "n6",
		Title:       "Startup Founder's Adaptability Navigates Market Volatility",
		Description: "Facing unexpected market shifts, entrepreneur David quickly adapted his business model, showcasing remarkable adaptability and resilience.",
		URL:         "https://example.com/news/adaptability-founder",
		Virtues:     []string{"adaptability", "resilience"},
		ImageURL:    "https://via.placeholder.com/150/33FFF0/FFFFFF?text=Adaptability",
	},
}

// SearchArticles returns articles whose title or description contains q
// (case-insensitive). An empty query returns the full catalog.
func SearchArticles(q string) []Article {
	if q == "" {
		out := make([]Article, len(articles))
		copy(out, articles)
		return out
	}

	query := strings.ToLower(q)
	matched := make([]Article, 0, len(articles))
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), query) ||
			strings.Contains(strings.ToLower(a.Description), query) {
			matched = append(matched, a)
		}
	}
	return matched
}
