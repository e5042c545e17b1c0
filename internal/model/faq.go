package model

import "time"

// FAQ is a single knowledge-base entry. The set is loaded once per conversation
// and treated as a read-only snapshot during matching.
type FAQ struct {
	ID        string
	Question  string
	Answer    string
	Category  string
	Keywords  []string
	CreatedAt time.Time
}
