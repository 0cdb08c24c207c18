package results

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
)

// Endpoint describes a route registered with Map.
type Endpoint struct {
	Method   string
	Pattern  string
	Metadata []any
}

// HandlerFunc produces the Result for a request.
type HandlerFunc[T Result] func(r *http.Request) T

// ErrorHandler is called when executing a Result fails. The response may
// already be partially written.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// MapOption configures Map.
type MapOption func(*mapOptions)

type mapOptions struct {
	onError ErrorHandler
}

// WithErrorHandler replaces the default error handler, which answers 500.
func WithErrorHandler(h ErrorHandler) MapOption {
	return func(o *mapOptions) {
		o.onError = h
	}
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Map registers handler on router for method and pattern. The endpoint
// metadata is populated from T before the route is mounted, so a union return
// type contributes the metadata of every alternative it may hold.
func Map[T Result](router chi.Router, method, pattern string, handler HandlerFunc[T], opts ...MapOption) (*Endpoint, error) {
	if router == nil {
		return nil, errors.New("results: router must not be nil")
	}
	if handler == nil {
		return nil, errors.Newf("results: nil handler for %s %s", method, pattern)
	}

	o := mapOptions{onError: defaultErrorHandler}
	for _, opt := range opts {
		opt(&o)
	}

	mc := &EndpointMetadataContext{Method: method, Pattern: pattern}
	if err := PopulateMetadata[T](mc); err != nil {
		return nil, errors.Wrapf(err, "populating metadata for %s %s", method, pattern)
	}

	router.Method(method, pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := handler(r).Execute(NewHTTPContext(w, r)); err != nil {
			o.onError(w, r, err)
		}
	}))

	return &Endpoint{
		Method:   method,
		Pattern:  pattern,
		Metadata: mc.Metadata,
	}, nil
}
