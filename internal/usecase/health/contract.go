package health

import "context"

// APIPinger checks Attio API reachability and credential validity.
type APIPinger interface {
	Ping(ctx context.Context) error
}
