package middleware

import "github.com/openburn/motordoc/pkg/ports"

// Middleware allows wrapping a DesignStore to add behavior.
type Middleware func(ports.DesignStore) ports.DesignStore

// Chain applies the middlewares to the store, first middleware
// outermost.
func Chain(store ports.DesignStore, mws ...Middleware) ports.DesignStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}

// normalizePath forwards path normalization to the wrapped store when
// it supports it, so extension handling survives wrapping.
func normalizePath(next ports.DesignStore, path string) string {
	if n, ok := next.(ports.PathNormalizer); ok {
		return n.NormalizePath(path)
	}
	return path
}
