package notify

import "errors"

// ErrChannelDisabled is returned by Send on a channel that is not enabled.
var ErrChannelDisabled = errors.New("notification channel is disabled")

// ErrInvalidReport is returned when a nil report is dispatched.
var ErrInvalidReport = errors.New("digest report must not be nil")
