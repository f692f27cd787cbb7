package domain

// FlowStatus is the tri-state result of a workflow invocation.
type FlowStatus string

const (
	// FlowCompleted means every step of the flow succeeded.
	FlowCompleted FlowStatus = "completed"
	// FlowSkipped means there was nothing to do; not an error.
	FlowSkipped FlowStatus = "skipped"
	// FlowAborted means a step failed or input was withheld. Side effects
	// from steps completed before the abort persist; nothing is rolled back.
	FlowAborted FlowStatus = "aborted"
)

// SyncResult reports the outcome of the stage-commit-push flow. Committed
// and Pushed record partial completion precisely: a push failure leaves
// Committed true so the caller can tell the user a manual push is needed.
type SyncResult struct {
	Status    FlowStatus
	Reason    string
	Committed bool
	Pushed    bool
	// ServerOutput carries the push confirmation text. Git often writes it
	// to stderr, so this is whichever stream was non-empty.
	ServerOutput string
}

// ReleaseResult reports the outcome of the sync-tag-publish flow.
type ReleaseResult struct {
	Status     FlowStatus
	Reason     string
	Sync       *SyncResult
	Remote     RemoteRef
	TagName    string
	TagCreated bool
	TagPushed  bool
	Published  bool
	ReleaseURL string
}

// Aborted builds an aborted SyncResult with the given reason.
func SyncAborted(reason string) *SyncResult {
	return &SyncResult{Status: FlowAborted, Reason: reason}
}
