package dispatcher

import "time"

// Log prefixes
const (
	LogPrefixDispatch = "internal.dispatcher.Dispatcher.Dispatch"
	LogPrefixInvoke   = "internal.dispatcher.Dispatcher.invoke"
)

// Defaults applied when Config leaves a field zero
const (
	DefaultProviderTimeout = 20 * time.Second
	DefaultDeadline        = 45 * time.Second
)

const TracerName = "travel-assistant/internal/dispatcher"

// Explanatory partial results recorded for a failed capability. %s is the capability label.
const (
	MsgTimeout = "抱歉，%s查詢逾時，請稍後再試。"
	MsgFailure = "抱歉，目前無法取得%s，請稍後再試。"
)
