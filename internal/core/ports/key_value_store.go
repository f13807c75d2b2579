package ports

import "context"

// KeyValueStore is the durable, origin-scoped store every collection lives in.
// Values are opaque strings; a missing key is reported with ok == false.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Pinger is implemented by backends that can report their reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
