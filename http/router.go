package http

import "bytes"

type Router struct {
	Routes []Route
}

func NewRouter() Router {
	return Router{
		Routes: make([]Route, 0),
	}
}

func (router *Router) GET(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"GET"}, path, handler, middleware...)
}

func (router *Router) PUT(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"PUT"}, path, handler, middleware...)
}

func (router *Router) DELETE(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"DELETE"}, path, handler, middleware...)
}

func (router *Router) Any(methods []string, path string, handler Handler, middleware ...Middleware) {
	router.add(methods, path, false, handler, middleware...)
}

// Prefix registers a route matching every path that starts with prefix.
func (router *Router) Prefix(methods []string, prefix string, handler Handler, middleware ...Middleware) {
	router.add(methods, prefix, true, handler, middleware...)
}

func (router *Router) add(methods []string, path string, prefix bool, handler Handler, middleware ...Middleware) {
	for _, middleware := range middleware {
		handler = middleware(handler)
	}

	router.Routes = append(router.Routes, Route{
		Methods: methods,
		Path:    path,
		Prefix:  prefix,
		Handler: handler,
	})
}

// Handler dispatches by first matching route. A path that matches some route
// but none of its methods answers 405; a path matching nothing answers 404.
func (router *Router) Handler() Handler {
	return func(ctx *RequestCtx) {
		pathMatched := false

		for _, route := range router.Routes {
			if route.Prefix {
				if !bytes.HasPrefix(ctx.Request.Path, []byte(route.Path)) {
					continue
				}
			} else if route.Path != string(ctx.Request.Path) {
				continue
			}

			pathMatched = true
			for _, method := range route.Methods {
				if !bytes.EqualFold([]byte(method), ctx.Request.Method) {
					continue
				}

				route.Handler(ctx)
				return
			}
		}

		if pathMatched {
			MethodNotAllowedHandler(ctx)
		} else {
			NotFoundHandler(ctx)
		}
	}
}
