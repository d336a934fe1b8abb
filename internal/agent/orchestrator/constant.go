package orchestrator

// Log prefixes
const (
	LogPrefixProcessQuery = "internal.agent.orchestrator.ProcessQuery"
	LogPrefixClearHistory = "internal.agent.orchestrator.ClearHistory"
	LogPrefixHistory      = "internal.agent.orchestrator.History"
)

// Log messages
const (
	LogMsgStage            = "session %s: %s"
	LogMsgClassifyFailed   = "classifier failed, using general: %v"
	LogMsgLoadFailed       = "load history for %s failed, continuing with empty history: %v"
	LogMsgSaveFailed       = "save history for %s failed: %v"
	LogMsgQueryDone        = "session %s answered via %s with plan %v"
	LogMsgHistoryTruncated = "session %s history truncated to %d turns"
)

// Configuration
const (
	DefaultHistoryLimit = 20
)
