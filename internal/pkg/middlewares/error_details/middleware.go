package error_details

import (
	"context"
	"net/http"
)

type exposeKey struct{}

// Middleware кладет в ctx признак, можно ли отдавать клиенту причину ошибки.
func Middleware(expose bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithExpose(r.Context(), expose)))
		})
	}
}

func WithExpose(ctx context.Context, expose bool) context.Context {
	return context.WithValue(ctx, exposeKey{}, expose)
}

// Expose по умолчанию false: без middleware детали не раскрываются.
func Expose(ctx context.Context) bool {
	expose, _ := ctx.Value(exposeKey{}).(bool)
	return expose
}
