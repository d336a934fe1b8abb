package synthesizer

import "errors"

// ErrSynthesisUnavailable is returned by the model path when it cannot produce an answer.
var ErrSynthesisUnavailable = errors.New("synthesizer: synthesis unavailable")
