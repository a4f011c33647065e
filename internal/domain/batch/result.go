// Package batch holds per-item outcome values for fan-out operations.
package batch

// ItemStatus is the processing outcome of a single batch item.
type ItemStatus string

// Batch item status values.
const (
	StatusOK    ItemStatus = "ok"
	StatusError ItemStatus = "error"
)

// Result is the outcome of processing one item in a batch operation.
// Failures are isolated per item: one bad query or payload never aborts its
// siblings.
type Result struct {
	index  int
	ref    string
	status ItemStatus
	err    error
}

// NewOK creates a successful batch result for the item at index.
func NewOK(index int, ref string) Result {
	return Result{index: index, ref: ref, status: StatusOK}
}

// NewError creates a failed batch result for the item at index.
func NewError(index int, ref string, err error) Result {
	return Result{index: index, ref: ref, status: StatusError, err: err}
}

// Index returns the item's position in the submitted batch.
func (r Result) Index() int { return r.index }

// Ref returns the item identifier (record ID or query text).
func (r Result) Ref() string { return r.ref }

// Status returns the processing outcome.
func (r Result) Status() ItemStatus { return r.status }

// Err returns the error, if any.
func (r Result) Err() error { return r.err }

// OK reports whether the item succeeded.
func (r Result) OK() bool { return r.status == StatusOK }
