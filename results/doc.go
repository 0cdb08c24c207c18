// Package results provides union result types for HTTP endpoints.
//
// A handler that can answer in more than one way declares its return type as
// one of the generated ResultsN types, for example
//
//	func getTodo(r *http.Request) results.Results2[results.JSON, results.NotFound]
//
// Each ResultsN holds exactly one of its type arguments and executes it when
// the response is written. Because the alternatives are part of the type,
// endpoint metadata such as the possible status codes can be collected from
// the signature alone; see Map and PopulateMetadata.
//
// The ResultsN types and their tests are generated by cmd/resultsgen.
package results

//go:generate go run ../cmd/resultsgen generate results_gen.go results_gen_test.go
