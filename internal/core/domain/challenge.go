package domain

import (
	"errors"
	"time"
)

// ChallengeStatus represents the completion state of a weekly challenge.
type ChallengeStatus string

const (
	ChallengePending   ChallengeStatus = "pending"
	ChallengeCompleted ChallengeStatus = "completed"
)

var ErrChallengeNotFound = errors.New("challenge not found")
var ErrChallengeExists = errors.New("challenges already generated for this week")
var ErrInvalidStatus = errors.New("invalid status")
var ErrInvalidChallengeID = errors.New("invalid challenge ID")

// ValidStatus reports whether s is a settable challenge status.
func ValidStatus(s ChallengeStatus) bool {
	return s == ChallengePending || s == ChallengeCompleted
}

// Challenge is a single practice task generated for one user and one week.
// Challenges are locked in once generated: goal changes mid-week do not
// regenerate them.
type Challenge struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	UserID      string          `json:"user_id" bson:"user_id"`
	Title       string          `json:"title" bson:"title"`
	Description string          `json:"description" bson:"description"`
	VirtueID    string          `json:"virtueId" bson:"virtueId"`
	Status      ChallengeStatus `json:"status" bson:"status"`
	WeekStart   time.Time       `json:"week_start" bson:"week_start"`
}

// ChallengeTemplate is a catalog entry expanded into a Challenge at
// generation time.
type ChallengeTemplate struct {
	Title       string
	Description string
}

// curatedTemplates holds the hand-written challenges for virtues with
// dedicated content. Every other virtue falls back to a single generic
// template.
var curatedTemplates = map[string][]ChallengeTemplate{
	"courage": {
		{
			Title:       "Speak Up with Courage",
			Description: "In your next team meeting, identify one point where you can respectfully challenge an idea or offer a new perspective, even if it feels uncomfortable.",
		},
		{
			Title:       "Embrace a New Task",
			Description: "Volunteer for a task or project that is outside your comfort zone and requires you to learn something new.",
		},
	},
	"empathy": {
		{
			Title:       "Active Listening Exercise",
			Description: "In your next one-on-one conversation, practice active listening by focusing entirely on the other person without interrupting or formulating your response. Summarize their points back to them.",
		},
		{
			Title:       "Understand a Different Perspective",
			Description: "Seek out a colleague with a different viewpoint on a current project and ask open-ended questions to truly understand their rationale.",
		},
	},
	"humility": {
		{
			Title:       "Ask for Feedback",
			Description: "Proactively ask a peer or manager for constructive feedback on a recent piece of your work, and listen openly to their suggestions.",
		},
		{
			Title:       "Acknowledge Others' Contributions",
			Description: "Publicly acknowledge a colleague's contribution or idea that helped improve your work or a team project.",
		},
	},
}

// TemplatesFor returns the challenge templates for a virtue, in a fixed
// order. Unknown virtues get exactly one generic template interpolating the
// virtue's display name.
func TemplatesFor(virtueID string) []ChallengeTemplate {
	if tpls, ok := curatedTemplates[virtueID]; ok {
		out := make([]ChallengeTemplate, len(tpls))
		copy(out, tpls)
		return out
	}
	name := VirtueName(virtueID)
	return []ChallengeTemplate{{
		Title:       "Apply " + name + " in a Daily Task",
		Description: "Identify one routine task today and consciously think about how you can apply " + name + " while performing it.",
	}}
}

// WeekStartUTC returns the Monday 00:00:00 UTC of the week containing t.
// It is the idempotency key for challenge generation together with the
// user ID.
func WeekStartUTC(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
}
