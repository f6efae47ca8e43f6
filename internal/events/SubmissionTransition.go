package events

var SubmissionTransitionTopic = "submission:transition"

// SubmissionTransition is published on every workflow state change so
// observers (progress output, metrics) can follow a run without the
// workflow knowing about them.
type SubmissionTransition struct {
	RunID string
	From  string
	To    string
	Note  string
}
