package ports

import "context"

// Navigator moves the caller's browsing context to another console path.
type Navigator interface {
	Navigate(path string)
}

type navigatorKey struct{}

// WithNavigator attaches a request-scoped navigator to ctx.
func WithNavigator(ctx context.Context, nav Navigator) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, navigatorKey{}, nav)
}

// NavigatorFrom returns the navigator attached to ctx, or nil.
func NavigatorFrom(ctx context.Context) Navigator {
	if ctx == nil {
		return nil
	}
	nav, _ := ctx.Value(navigatorKey{}).(Navigator)
	return nav
}
