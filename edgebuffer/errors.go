package edgebuffer

import "errors"

// Sentinel errors for Buffer.Sample.
var (
	// ErrNotFound indicates the buffer holds no entries at all.
	ErrNotFound = errors.New("edgebuffer: no samples in buffer")

	// ErrBeforeBuffer indicates the query time is strictly older than
	// the oldest stored entry. Terminal: expired/missing data predating
	// the buffer's window will never arrive (see registry package).
	ErrBeforeBuffer = errors.New("edgebuffer: query time precedes oldest sample")

	// ErrAfterBuffer indicates the query time is strictly newer than
	// the newest stored entry. Non-terminal: a future Insert may bring
	// in data that answers it.
	ErrAfterBuffer = errors.New("edgebuffer: query time is newer than latest sample")
)
