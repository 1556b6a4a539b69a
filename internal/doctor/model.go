// Package doctor runs release-readiness checks against a project.
package doctor

// Status is the outcome level of a single check.
type Status int

const (
	// StatusOK means the check passed.
	StatusOK Status = iota
	// StatusWarn means the check found something worth fixing but not fatal.
	StatusWarn
	// StatusFail means the check failed and release should not proceed.
	StatusFail
)

// Result is the outcome of a single check.
type Result struct {
	Status    Status
	CheckName string
	Message   string
	// Recommendation suggests a fix; empty when nothing actionable applies.
	Recommendation string
}
