package dashboard

import "context"

// invoicesViewPath is the cached listing view dropped after every
// successful invoice mutation
const invoicesViewPath = "/dashboard/invoices"

// ViewInvalidator broadcasts that a cached rendering of a view path is
// stale. Implementations live in infrastructure; the core only emits
// paths.
type ViewInvalidator interface {
	Invalidate(ctx context.Context, path string) error
}
