package results

import (
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"
)

// ProducesStatusCode is endpoint metadata recording a status code the
// endpoint may answer with.
type ProducesStatusCode struct {
	StatusCode int
}

// StatusCode writes a bare status code.
type StatusCode int

func (s StatusCode) Execute(hc *HTTPContext) error {
	if hc == nil {
		return ErrNilHTTPContext
	}
	hc.Response.WriteHeader(int(s))
	return nil
}

// NoContent writes 204 No Content.
type NoContent struct{}

func (NoContent) Execute(hc *HTTPContext) error {
	return StatusCode(http.StatusNoContent).Execute(hc)
}

func (NoContent) PopulateMetadata(mc *EndpointMetadataContext) error {
	mc.Metadata = append(mc.Metadata, ProducesStatusCode{StatusCode: http.StatusNoContent})
	return nil
}

// NotFound writes 404 Not Found.
type NotFound struct{}

func (NotFound) Execute(hc *HTTPContext) error {
	return StatusCode(http.StatusNotFound).Execute(hc)
}

func (NotFound) PopulateMetadata(mc *EndpointMetadataContext) error {
	mc.Metadata = append(mc.Metadata, ProducesStatusCode{StatusCode: http.StatusNotFound})
	return nil
}

// JSON writes Value as a 200 OK JSON body.
type JSON struct {
	Value any
}

func (j JSON) Execute(hc *HTTPContext) error {
	if hc == nil {
		return ErrNilHTTPContext
	}
	hc.Response.Header().Set("Content-Type", "application/json")
	hc.Response.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(hc.Response).Encode(j.Value); err != nil {
		return errors.Wrap(err, "encoding json result")
	}
	return nil
}

func (JSON) PopulateMetadata(mc *EndpointMetadataContext) error {
	mc.Metadata = append(mc.Metadata, ProducesStatusCode{StatusCode: http.StatusOK})
	return nil
}
