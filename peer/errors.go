package peer

import "errors"

// ErrPeerStatus is returned when a peer answers with an unexpected HTTP
// status.
var ErrPeerStatus = errors.New("peer: unexpected status")
