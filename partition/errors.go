package partition

import "errors"

// ErrUnknownStrategy indicates a string failed to parse to a known Strategy.
var ErrUnknownStrategy = errors.New("partition: unknown strategy")
