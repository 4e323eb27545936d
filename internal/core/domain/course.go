package domain

import "time"

// Course is a unit of published learning content, owned by a mentor.
type Course struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	MentorID   string    `json:"mentor_id"`
	MentorName string    `json:"mentor_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
