package generator

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/goatx/resultsgen/internal/emit"
)

var (
	testFuncPattern = regexp.MustCompile(`(?m)^func (Test\w+)\(t \*testing\.T\) \{$`)
	fixturePattern  = regexp.MustCompile(`(?:RecordingFixture|MetadataFixture)(\d+)`)
)

func emitTests(t *testing.T, maxArity int) string {
	t.Helper()
	var buf bytes.Buffer
	if err := EmitTests(emit.New(&buf, emit.DefaultIndent), maxArity); err != nil {
		t.Fatalf("EmitTests(%d) failed: %v", maxArity, err)
	}
	return buf.String()
}

// testFuncs splits the output into test function bodies keyed by name.
func testFuncs(src string) ([]string, map[string]string) {
	locs := testFuncPattern.FindAllStringSubmatchIndex(src, -1)
	names := make([]string, 0, len(locs))
	bodies := make(map[string]string, len(locs))
	for i, loc := range locs {
		end := len(src)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		body := src[loc[0]:end]
		if j := strings.Index(body, "\n}\n"); j >= 0 {
			body = body[:j+3]
		}
		name := src[loc[2]:loc[3]]
		names = append(names, name)
		bodies[name] = body
	}
	return names, bodies
}

func TestEmitTestsCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		maxArity int
		want     int
	}{
		{"One", 1, 0},
		{"Two", 2, 10},
		{"Three", 3, 22},
		{"Six", 6, 10 + 12 + 14 + 16 + 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			names, bodies := testFuncs(emitTests(t, tt.maxArity))
			if len(names) != tt.want {
				t.Fatalf("got %d test functions, want %d", len(names), tt.want)
			}
			if len(bodies) != len(names) {
				t.Fatalf("got %d distinct test names, want %d", len(bodies), len(names))
			}
		})
	}
}

func TestEmitTestsPerSlotCounts(t *testing.T) {
	t.Parallel()

	const maxArity = 4
	names, _ := testFuncs(emitTests(t, maxArity))

	for k := 2; k <= maxArity; k++ {
		prefix := testPrefix(k) + "_"
		capability, nested := 0, 0
		for _, name := range names {
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			switch {
			case strings.Contains(name, "_AcceptsResult_"):
				capability++
			case strings.Contains(name, "_AcceptsNestedResults_"):
				nested++
			}
		}
		if capability != k || nested != k {
			t.Errorf("arity %d: got %d capability and %d nested tests, want %d each", k, capability, nested, k)
		}
	}
}

func TestEmitTestsFixtureSuffixes(t *testing.T) {
	t.Parallel()

	const maxArity = 5
	src := emitTests(t, maxArity)
	names, bodies := testFuncs(src)

	for _, name := range names {
		k := strings.Count(strings.SplitN(name, "_", 2)[0], typeParamPrefix)
		for _, m := range fixturePattern.FindAllStringSubmatch(bodies[name], -1) {
			n, _ := strconv.Atoi(m[1])
			if n < 1 || n > k+1 {
				t.Errorf("%s references %s, outside [1, %d]", name, m[0], k+1)
			}
		}
	}

	for i := 1; i <= maxArity+1; i++ {
		for _, decl := range []string{
			"type " + recordingFixture(i) + " struct{ RecordingFixture }",
			"type " + metadataFixture(i) + " struct{}",
		} {
			if n := strings.Count(src, decl+"\n"); n != 1 {
				t.Errorf("%q declared %d times, want 1", decl, n)
			}
		}
	}
	for _, undeclared := range []string{recordingFixture(maxArity + 2), metadataFixture(maxArity + 2)} {
		if strings.Contains(src, undeclared) {
			t.Errorf("output references %s", undeclared)
		}
	}
}

func TestEmitTestsNestedSlot(t *testing.T) {
	t.Parallel()

	_, bodies := testFuncs(emitTests(t, 2))
	body := bodies["TestResultsOfTResult1TResult2_AcceptsNestedResults_AsSecondTypeArg"]
	if body == "" {
		t.Fatal("nested test for the second slot is missing")
	}

	for _, want := range []string{
		"myAPI := func(id int) Results2[RecordingFixture3, Results2[RecordingFixture1, RecordingFixture2]] {",
		"return Results2From2[RecordingFixture3, Results2[RecordingFixture1, RecordingFixture2]](Results2From1[RecordingFixture1, RecordingFixture2](RecordingFixture1{RecordingFixture{Checksum: 1}}))",
		"return Results2From1[RecordingFixture3, Results2[RecordingFixture1, RecordingFixture2]](RecordingFixture3{RecordingFixture{Checksum: 3}})",
		"{3, RecordingFixture3{}},",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("nested test is missing %q", want)
		}
	}
}

func TestEmitTestsOnlyFixturesBelowTwo(t *testing.T) {
	t.Parallel()

	got := emitTests(t, 1)
	if names, _ := testFuncs(got); len(names) != 0 {
		t.Fatalf("got test functions %v, want none", names)
	}
	if !strings.HasPrefix(got, "const checksumItemKey = \"Checksum\"\n") {
		t.Errorf("output does not start with the fixtures:\n%s", got)
	}
	if !strings.Contains(got, "type MetadataFixture2 struct{}") {
		t.Error("fixtures for arity 1 do not include the spare member")
	}
	if strings.Contains(got, "newHTTPContext") {
		t.Error("the HTTP context helper is emitted although no test uses it")
	}
}

func TestEmitTestsDeclaresHTTPContextHelper(t *testing.T) {
	t.Parallel()

	got := emitTests(t, 3)
	decl := "func newHTTPContext() *HTTPContext {\n"
	if n := strings.Count(got, decl); n != 1 {
		t.Fatalf("newHTTPContext declared %d times, want 1", n)
	}
	if strings.Index(got, decl) > strings.Index(got, "const checksumItemKey") {
		t.Error("helper is emitted after the fixtures")
	}
}

func TestEmitTestsDeterministic(t *testing.T) {
	t.Parallel()

	if emitTests(t, 4) != emitTests(t, 4) {
		t.Fatal("two runs with the same arity produced different output")
	}
}
