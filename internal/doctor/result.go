// Package doctor inspects the host without changing it.
package doctor

// Status classifies a check outcome.
type Status int

// Check statuses, ordered by severity.
const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Result is one check outcome.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}
