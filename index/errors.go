package index

import "errors"

// ErrMalformedConfig is returned when the index_files configuration section
// is neither a record nor an array of records. It is fatal for service
// startup, never a per-request error.
var ErrMalformedConfig = errors.New("index: malformed index_files configuration")
