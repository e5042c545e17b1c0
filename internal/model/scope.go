package model

// Scope carries the authenticated caller identity through use cases.
type Scope struct {
	SessionID string
	Mobile    string
}
