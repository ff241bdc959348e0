package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"

	"travelrest/pkg/events"
	"travelrest/pkg/logger"
	"travelrest/pkg/lookup"
	"travelrest/pkg/metrics"
	"travelrest/pkg/otel"
	"travelrest/pkg/store"
	"travelrest/pkg/validation"
)

const maxBodyBytes = 1 << 20

// ResourceConfig wires the collaborators of a Resource.
type ResourceConfig[T store.Entity, R any] struct {
	// Name is both the collection path segment and the route name prefix.
	Name      string
	Repo      store.Repository[T]
	Project   func(T) R
	Normalize func(T) T
	Publisher events.Publisher
	Metrics   *metrics.Metrics
	Log       *logger.Logger
}

// Resource serves one collection: index, retrieval by id and insertion.
type Resource[T store.Entity, R any] struct {
	name      string
	repo      store.Repository[T]
	lookup    *lookup.Service[T]
	project   func(T) R
	normalize func(T) T
	publisher events.Publisher
	metrics   *metrics.Metrics
	log       *logger.Logger
	uris      URIBuilder
}

// NewResource builds a Resource. uris resolves the canonical location of new
// entities; it is normally the Router the resource's routes are registered on.
func NewResource[T store.Entity, R any](cfg ResourceConfig[T, R], uris URIBuilder) *Resource[T, R] {
	res := &Resource[T, R]{
		name:      cfg.Name,
		repo:      cfg.Repo,
		lookup:    lookup.New[T](cfg.Repo),
		project:   cfg.Project,
		normalize: cfg.Normalize,
		publisher: cfg.Publisher,
		metrics:   cfg.Metrics,
		log:       cfg.Log,
		uris:      uris,
	}
	if res.normalize == nil {
		res.normalize = func(e T) T { return e }
	}
	if res.publisher == nil {
		res.publisher = events.Nop{}
	}
	return res
}

// Routes returns the resource's entries for the route table.
func (res *Resource[T, R]) Routes() []Route {
	base := "/" + res.name
	return []Route{
		{Name: res.routeName("index"), Method: http.MethodGet, Pattern: base, Handler: res.Index},
		{Name: res.routeName("get"), Method: http.MethodGet, Pattern: base + "/{id}", Handler: res.Get},
		{Name: res.routeName("add"), Method: http.MethodPost, Pattern: base, Handler: res.Add},
	}
}

func (res *Resource[T, R]) routeName(action string) string {
	return RouteName(res.name, action)
}

// RouteName is the route table name of a resource action: "hotels.get".
// Add resolves new locations through the "get" name.
func RouteName(resource, action string) string {
	return resource + "." + action
}

// Get handles GET /{name}/{id}. A missing entity is answered with a bare 404.
func (res *Resource[T, R]) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ctx, span := otel.AddSpan(r.Context(), res.routeName("get"), attribute.String("id", id))
	defer span.End()

	e, ok, err := res.lookup.Retrieve(ctx, id)
	if err != nil {
		res.log.Error(ctx, "retrieve", "resource", res.name, "id", id, "error", err)
		writeError(ctx, res.log, w, http.StatusInternalServerError, "Failed to retrieve "+res.name, "")
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(ctx, res.log, w, http.StatusOK, res.project(e))
}

// Add handles POST /{name}: it stores the posted entity and answers 201 with
// the entity's canonical location.
func (res *Resource[T, R]) Add(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), res.routeName("add"))
	defer span.End()

	var e T
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&e); err != nil {
		writeError(ctx, res.log, w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	e = res.normalize(e)
	if err := validation.Struct(e); err != nil {
		writeError(ctx, res.log, w, http.StatusBadRequest, "Invalid "+res.name, err.Error())
		return
	}

	location, err := res.uris.URIFor(res.routeName("get"), "id", e.Key())
	if err != nil {
		writeError(ctx, res.log, w, http.StatusBadRequest, "Invalid id", err.Error())
		return
	}
	span.SetAttributes(attribute.String("id", e.Key()))

	if err := res.repo.Save(ctx, e); err != nil {
		res.log.Error(ctx, "save", "resource", res.name, "id", e.Key(), "error", err)
		writeError(ctx, res.log, w, http.StatusInternalServerError, "Failed to save "+res.name, "")
		return
	}
	res.publish(r, events.Created(res.name, e.Key(), location))

	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusCreated)
}

// Index handles GET /{name} with a link to every stored entity.
func (res *Resource[T, R]) Index(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), res.routeName("index"))
	defer span.End()

	all, err := res.repo.List(ctx)
	if err != nil {
		res.log.Error(ctx, "list", "resource", res.name, "error", err)
		writeError(ctx, res.log, w, http.StatusInternalServerError, "Failed to list "+res.name, "")
		return
	}
	links := make([]Link, 0, len(all))
	for _, e := range all {
		href, err := res.uris.URIFor(res.routeName("get"), "id", e.Key())
		if err != nil {
			res.log.Warn(ctx, "skipping unaddressable entity", "resource", res.name, "id", e.Key(), "error", err)
			continue
		}
		links = append(links, Link{ID: e.Key(), Href: href})
	}
	writeJSON(ctx, res.log, w, http.StatusOK, links)
}

// publish never fails the request; the entity is already stored.
func (res *Resource[T, R]) publish(r *http.Request, ev events.Event) {
	status := "ok"
	if err := res.publisher.Publish(r.Context(), ev); err != nil {
		status = "failed"
		res.log.Warn(r.Context(), "publish event", "type", ev.Type, "id", ev.ID, "error", err)
	}
	if res.metrics != nil {
		res.metrics.EventsPublished.WithLabelValues(ev.Type, status).Inc()
	}
}
