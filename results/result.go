package results

import (
	"net/http"
	"reflect"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNilHTTPContext is returned when a Result is executed without an HTTPContext.
	ErrNilHTTPContext = errors.New("results: http context must not be nil")

	// ErrNilResult is returned when a union result holds no alternative. This
	// only happens for the zero value, which bypasses the conversion functions.
	ErrNilResult = errors.New("results: the Result held by the union must not be nil")

	// ErrNilMetadataContext is returned when metadata is populated without a context.
	ErrNilMetadataContext = errors.New("results: endpoint metadata context must not be nil")
)

// Result writes an HTTP response.
type Result interface {
	Execute(hc *HTTPContext) error
}

// HTTPContext is the per-request state a Result executes against.
type HTTPContext struct {
	Response http.ResponseWriter
	Request  *http.Request

	// Items is a scratch space shared by everything handling the request.
	Items map[string]any
}

// NewHTTPContext returns an HTTPContext for w and r with an empty Items map.
func NewHTTPContext(w http.ResponseWriter, r *http.Request) *HTTPContext {
	return &HTTPContext{
		Response: w,
		Request:  r,
		Items:    make(map[string]any),
	}
}

// EndpointMetadataContext collects metadata while an endpoint is being built.
type EndpointMetadataContext struct {
	Method  string
	Pattern string

	// Metadata is appended to by every EndpointMetadataProvider involved.
	Metadata []any
}

// EndpointMetadataProvider is implemented by result types that describe
// themselves to the endpoint they are returned from.
//
// PopulateMetadata is called on the zero value of the type, so implementations
// must not depend on instance state.
type EndpointMetadataProvider interface {
	PopulateMetadata(mc *EndpointMetadataContext) error
}

// metadataResult is implemented by every generated union type.
type metadataResult interface {
	Result
	EndpointMetadataProvider
}

var providerType = reflect.TypeFor[EndpointMetadataProvider]()

// ProvidesMetadata reports whether T implements EndpointMetadataProvider.
// Interface types report false since their zero value holds no type.
func ProvidesMetadata[T any]() bool {
	t := reflect.TypeFor[T]()
	return t.Kind() != reflect.Interface && t.Implements(providerType)
}

// PopulateMetadata populates mc from T if T implements
// EndpointMetadataProvider, and does nothing otherwise.
func PopulateMetadata[T any](mc *EndpointMetadataContext) error {
	if mc == nil {
		return ErrNilMetadataContext
	}
	if !ProvidesMetadata[T]() {
		return nil
	}
	return instance[T]().(EndpointMetadataProvider).PopulateMetadata(mc)
}

// instance returns the zero value of T, except that pointer types yield a
// pointer to a new zero value so value-receiver methods can be called.
func instance[T any]() any {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return *new(T)
}
