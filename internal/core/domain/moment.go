package domain

import "time"

// Moment is a reflective journal entry tagged with a virtue.
type Moment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Content   string    `json:"content" bson:"content"`
	VirtueID  string    `json:"virtue_id" bson:"virtue_id"`
	Feedback  string    `json:"feedback" bson:"feedback"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
