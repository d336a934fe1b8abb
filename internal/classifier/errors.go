package classifier

import "errors"

var (
	// ErrNoCapabilities is returned when a strategy selected nothing usable.
	ErrNoCapabilities = errors.New("classifier: no capabilities selected")

	// ErrUnparseableReply is returned when the model reply holds no capability list.
	ErrUnparseableReply = errors.New("classifier: unparseable model reply")
)
