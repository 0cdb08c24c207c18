package generator

import (
	"fmt"
	"strings"
)

// Identifiers shared by the class output and the test output. Both files are
// only valid together, so every name is derived from here.
const (
	capabilityType        = "Result"
	typeParamPrefix       = "TResult"
	recordingFixtureBase  = "RecordingFixture"
	metadataFixturePrefix = "MetadataFixture"
	checksumItemKey       = "checksumItemKey"
	providedMetadataType  = "resultTypeProvidedMetadata"
)

func typeName(k int) string {
	return fmt.Sprintf("Results%d", k)
}

func constructorName(k int) string {
	return fmt.Sprintf("newResults%d", k)
}

func conversionName(k, j int) string {
	return fmt.Sprintf("Results%dFrom%d", k, j)
}

func typeParam(j int) string {
	return fmt.Sprintf("%s%d", typeParamPrefix, j)
}

// typeParams returns TResult1 … TResultK in slot order.
func typeParams(k int) []string {
	params := make([]string, k)
	for j := 1; j <= k; j++ {
		params[j-1] = typeParam(j)
	}
	return params
}

// typeParamDecl renders one constraint clause per parameter, e.g.
// "TResult1 Result, TResult2 Result".
func typeParamDecl(k int) string {
	clauses := make([]string, k)
	for j, p := range typeParams(k) {
		clauses[j] = p + " " + capabilityType
	}
	return strings.Join(clauses, ", ")
}

// instantiate renders ResultsK[args...].
func instantiate(args []string) string {
	return typeName(len(args)) + "[" + strings.Join(args, ", ") + "]"
}

// convert renders a call converting value through slot j of ResultsK[args...].
func convert(args []string, j int, value string) string {
	return conversionName(len(args), j) + "[" + strings.Join(args, ", ") + "](" + value + ")"
}

func recordingFixture(i int) string {
	return fmt.Sprintf("%s%d", recordingFixtureBase, i)
}

func metadataFixture(i int) string {
	return fmt.Sprintf("%s%d", metadataFixturePrefix, i)
}

// recordingValue renders a RecordingFixtureI literal carrying checksum.
func recordingValue(i int, checksum string) string {
	return fmt.Sprintf("%s{%s{Checksum: %s}}", recordingFixture(i), recordingFixtureBase, checksum)
}

func fixtures(name func(int) string, k int) []string {
	out := make([]string, k)
	for i := 1; i <= k; i++ {
		out[i-1] = name(i)
	}
	return out
}

// testPrefix renders TestResultsOfTResult1…TResultK.
func testPrefix(k int) string {
	return "TestResultsOf" + strings.Join(typeParams(k), "")
}
