package balance

import "errors"

var (
	// ErrHistoryDisabled is returned when no history database is connected.
	ErrHistoryDisabled = errors.New("run history is disabled")
	// ErrPublishDisabled is returned when no storage client is configured.
	ErrPublishDisabled = errors.New("publishing is disabled")
)
