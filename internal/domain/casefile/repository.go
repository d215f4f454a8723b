package casefile

import "context"

// CaseRepository persists the case list. Loads fall back to the default
// list and saves are best-effort, per the persisted-store contract.
type CaseRepository interface {
	List(ctx context.Context) List
	Replace(ctx context.Context, cases List)
}
