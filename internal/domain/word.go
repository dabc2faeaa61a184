package domain

import "time"

// Word represents a vocabulary item in both languages
type Word struct {
	ID        int64
	TopicID   int64
	Origin    string
	Target    string
	CreatedAt time.Time
}

// Topic groups words into a quizzable unit
type Topic struct {
	ID        int64
	Name      string
	ShortDesc string
	LongDesc  string
	IsHidden  bool
	CreatedAt time.Time
}
