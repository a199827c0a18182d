package recorder

import "github.com/Lejoon/mortage-repayment/internal/simulate"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ *RunRecord, _ []simulate.PathOutcome) error { return nil }
func (n *NoopRecorder) Close() error                                           { return nil }
