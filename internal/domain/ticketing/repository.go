package ticketing

import "context"

// EventRepository persists the event list. Loads fall back to the default
// list and saves are best-effort, per the persisted-store contract.
type EventRepository interface {
	List(ctx context.Context) List
	Replace(ctx context.Context, events List)
}
