package domain

import (
	"errors"
	"time"
)

var ErrGoalNotFound = errors.New("goals not found")

// Goal holds a user's prioritized virtues and their free-text innovation
// statement. Users may submit multiple goals; the most recently created one
// is current.
type Goal struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	UserID          string    `json:"user_id" bson:"user_id"`
	PriorityVirtues []string  `json:"priority_virtues" bson:"priority_virtues"`
	InnovationGoal  string    `json:"innovation_goal" bson:"innovation_goal"`
	CreatedAt       time.Time `json:"-" bson:"created_at"`
}
