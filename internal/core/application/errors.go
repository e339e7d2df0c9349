package application

import "errors"

// ErrDecode is thrown when a remote response cannot be decoded into domain
// values. For unspent-output and transaction fetches the whole response is
// rejected: a partially decoded unspent set is unsafe to spend from. Balance
// aggregation recovers per entry instead and never surfaces this error.
var ErrDecode = errors.New("explorer response failed to decode")
