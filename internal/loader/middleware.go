package loader

import (
	"context"
	"net/http"
)

type ctxKey struct{}

// Middleware attaches fresh Loaders to every request context, giving
// each request its own batch cache.
func Middleware(users UserReader, categories CategoryReader, comments CommentReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), New(users, categories, comments))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithLoaders stores the loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromCtx extracts the request's loaders. The second return is false
// when the middleware did not run.
func FromCtx(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(ctxKey{}).(*Loaders)
	return l, ok
}
