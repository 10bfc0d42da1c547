package domain

import "strings"

// virtueNames maps known virtue identifiers to their display names.
var virtueNames = map[string]string{
	"courage":       "Courage",
	"empathy":       "Empathy",
	"humility":      "Humility",
	"resilience":    "Resilience",
	"integrity":     "Integrity",
	"growth_mindset": "Growth Mindset",
	"teamwork":      "Teamwork",
	"wisdom":        "Wisdom",
	"curiosity":     "Curiosity",
	"adaptability":  "Adaptability",
}

// VirtueName returns the display name for a virtue identifier. Unknown
// identifiers are capitalized as-is.
func VirtueName(virtueID string) string {
	if name, ok := virtueNames[virtueID]; ok {
		return name
	}
	if virtueID == "" {
		return ""
	}
	return strings.ToUpper(virtueID[:1]) + virtueID[1:]
}

// virtueFeedback holds the encouragement line returned when a moment is
// logged against a known virtue.
var virtueFeedback = map[string]string{
	"wisdom":        "Reflecting on your experiences is the key to wisdom. Well done!",
	"courage":       "It takes strength to face challenges. You showed great courage!",
	"justice":       "Acting with fairness creates a better world. Great job!",
	"humanity":      "Kindness and love are powerful. You made a difference!",
	"temperance":    "Self-control is a true strength. Keep it up!",
	"transcendence": "Seeing the bigger picture brings meaning. Wonderful!",
	"curiosity":     "Asking questions leads to new discoveries. Keep exploring!",
	"judgment":      "Thinking things through is important. Good critical thinking!",
	"honesty":       "Truthfulness builds trust. Thank you for being honest.",
	"kindness":      "A small act of kindness goes a long way. Beautiful!",
	"leadership":    "Guiding others is a noble responsibility. well led!",
	"forgiveness":   "Letting go brings peace. You showed great grace.",
	"humility":      "Knowing yourself is the start of growth. Stay grounded!",
	"gratitude":     "Being thankful changes your perspective. Keep appreciating!",
	"hope":          "Optimism lights the path forward. Keep believing!",
	"humor":         "Laughter lightens the load. Thanks for the smile!",
	"spirituality":  "Connecting to something greater brings peace. Deep work!",
}

// FeedbackFor returns the canned feedback line for a logged moment.
func FeedbackFor(virtueID string) string {
	if fb, ok := virtueFeedback[strings.ToLower(virtueID)]; ok {
		return fb
	}
	return "Great job practicing " + virtueID + "!"
}
