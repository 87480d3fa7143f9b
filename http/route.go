package http

type Route struct {
	Methods []string
	Path    string
	Prefix  bool
	Handler Handler
}

var NotFoundHandler Handler = func(ctx *RequestCtx) {
	ctx.Response.WithStatus(StatusNotFound).WithText("Resource Not Found")
}

var MethodNotAllowedHandler Handler = func(ctx *RequestCtx) {
	ctx.Response.WithStatus(StatusMethodNotAllowed).WithText("Method Not Allowed")
}
