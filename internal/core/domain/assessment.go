package domain

import (
	"errors"
	"time"
)

var ErrAssessmentNotFound = errors.New("assessment not found")

// VirtueScore is a single virtue rating on a 0–10 scale.
type VirtueScore struct {
	VirtueID string  `json:"virtueId" bson:"virtueId"`
	Score    float64 `json:"score" bson:"score"`
}

// Assessment is the result of a self-assessment questionnaire. The latest
// assessment per user is the authoritative one.
type Assessment struct {
	ID               string        `json:"id" bson:"_id,omitempty"`
	UserID           string        `json:"user_id" bson:"user_id"`
	Scores           []VirtueScore `json:"scores" bson:"scores"`
	NarrativeProfile string        `json:"narrative_profile" bson:"narrative_profile"`
	CreatedAt        time.Time     `json:"-" bson:"created_at"`
}

// questionVirtues maps questionnaire question IDs to the virtue each one
// measures. One question per virtue.
var questionVirtues = map[string]string{
	"q1":  "resilience",
	"q2":  "integrity",
	"q3":  "growth_mindset",
	"q4":  "humility",
	"q5":  "teamwork",
	"q6":  "courage",
	"q7":  "empathy",
	"q8":  "wisdom",
	"q9":  "curiosity",
	"q10": "adaptability",
}

// assessedVirtues fixes the scoring order so repeated submissions produce
// stable output.
var assessedVirtues = []string{
	"resilience", "integrity", "growth_mindset", "humility", "teamwork",
	"courage", "empathy", "wisdom", "curiosity", "adaptability",
}

// ScoreAnswers converts raw questionnaire answers into virtue scores.
// Unanswered virtues (zero or missing) are omitted.
func ScoreAnswers(answers map[string]int) []VirtueScore {
	byVirtue := make(map[string]int, len(answers))
	for qID, value := range answers {
		if virtue, ok := questionVirtues[qID]; ok {
			byVirtue[virtue] = value
		}
	}

	scores := make([]VirtueScore, 0, len(byVirtue))
	for _, virtue := range assessedVirtues {
		if v := byVirtue[virtue]; v > 0 {
			scores = append(scores, VirtueScore{VirtueID: virtue, Score: float64(v)})
		}
	}
	return scores
}
