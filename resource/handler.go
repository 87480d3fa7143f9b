package resource

import (
	"bytes"
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/cairnhq/cairn/http"
)

const scopeName = "github.com/cairnhq/cairn/resource"

var (
	tracer = otel.Tracer(scopeName)
	meter  = otel.Meter(scopeName)

	methodHead = []byte("HEAD")
)

// Handlers maps (method, path prefix) onto the static table and the store.
type Handlers struct {
	Static *Table
	Store  *Store
	Logger *slog.Logger

	requests metric.Int64Counter
}

func NewHandlers(static *Table, store *Store, logger *slog.Logger) *Handlers {
	requests, err := meter.Int64Counter("cairn.requests",
		metric.WithDescription("The number of handled requests by operation and status"),
		metric.WithUnit("{request}"))
	if err != nil {
		panic(err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Handlers{
		Static:   static,
		Store:    store,
		Logger:   logger,
		requests: requests,
	}
}

// Handler builds the route table:
//
//	/static/*   GET            static lookup
//	/dynamic/*  GET/PUT/DELETE store lookup / create-or-update / delete
//	HEAD        anywhere       501
//	otherwise                  404, or 405 on a path match without a method
func (h *Handlers) Handler() http.Handler {
	router := http.NewRouter()
	router.Prefix([]string{"GET"}, "/static/", h.StaticShow)
	router.Prefix([]string{"GET"}, "/dynamic/", h.Show)
	router.Prefix([]string{"PUT"}, "/dynamic/", h.Put)
	router.Prefix([]string{"DELETE"}, "/dynamic/", h.Delete)
	routed := router.Handler()

	return func(ctx *http.RequestCtx) {
		// HEAD is not implemented for any path, checked before routing.
		if bytes.EqualFold(ctx.Request.Method, methodHead) {
			ctx.Response.WithStatus(http.StatusNotImplemented)
			h.count("head", http.StatusNotImplemented)
			return
		}

		routed(ctx)
	}
}

func (h *Handlers) StaticShow(ctx *http.RequestCtx) {
	content, found := h.Static.Get(string(ctx.Request.Path))
	if !found {
		ctx.Response.WithStatus(http.StatusNotFound).WithText("Resource Not Found")
	} else {
		ctx.Response.WithStatus(http.StatusOK).WithBody(content)
	}
	h.count("static.show", ctx.Response.Status)
}

func (h *Handlers) Show(ctx *http.RequestCtx) {
	content, err := h.Store.Get(string(ctx.Request.Path))
	if err != nil {
		ctx.Response.WithStatus(http.StatusNotFound).WithText("Resource Not Found")
	} else {
		ctx.Response.WithStatus(http.StatusOK).WithBody(content)
	}
	h.count("show", ctx.Response.Status)
}

func (h *Handlers) Put(ctx *http.RequestCtx) {
	path := string(ctx.Request.Path)
	spanCtx, span := tracer.Start(context.Background(), "resource.put",
		trace.WithAttributes(attribute.String("resource.path", path)))
	defer span.End()

	// The body was already framed from Content-Length, but PUT specifically
	// demands the header be present.
	if _, found := ctx.Request.HeaderValue("Content-Length"); !found {
		ctx.Response.WithStatus(http.StatusLengthRequired).WithText("Content-Length Header Missing")
		h.count("put", ctx.Response.Status)
		return
	}

	created, err := h.Store.Put(path, ctx.Request.Body)
	switch {
	case errors.Is(err, ErrTooLarge):
		ctx.Response.WithStatus(http.StatusBadRequest).WithText("Content Too Large")
	case errors.Is(err, ErrFull):
		ctx.Response.WithStatus(http.StatusInsufficientStorage)
	case created:
		ctx.Response.WithStatus(http.StatusCreated)
	default:
		ctx.Response.WithStatus(http.StatusNoContent)
	}

	if err == nil {
		span.SetAttributes(attribute.Bool("resource.created", created))
		h.Logger.InfoContext(spanCtx, "resource stored", "path", path, "created", created)
	}
	h.count("put", ctx.Response.Status)
}

func (h *Handlers) Delete(ctx *http.RequestCtx) {
	path := string(ctx.Request.Path)
	spanCtx, span := tracer.Start(context.Background(), "resource.delete",
		trace.WithAttributes(attribute.String("resource.path", path)))
	defer span.End()

	if err := h.Store.Delete(path); err != nil {
		ctx.Response.WithStatus(http.StatusNotFound)
	} else {
		ctx.Response.WithStatus(http.StatusNoContent)
		h.Logger.InfoContext(spanCtx, "resource deleted", "path", path)
	}
	h.count("delete", ctx.Response.Status)
}

func (h *Handlers) count(op string, status uint16) {
	h.requests.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.Int("status", int(status))))
}
