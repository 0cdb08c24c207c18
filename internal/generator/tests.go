package generator

import (
	"strconv"
	"strings"

	"github.com/goatx/resultsgen/internal/emit"
)

// EmitTests writes the test functions for every arity from 1 to maxArity,
// skipping 1 since there is no single-alternative union, followed by the
// newHTTPContext helper when any test was written and the fixture types the
// tests refer to.
func EmitTests(w *emit.Writer, maxArity int) error {
	first := true
	for k := 1; k <= maxArity; k++ {
		for _, s := range Scenarios(k) {
			if !first {
				w.Blank()
			}
			first = false

			if err := emitScenario(w, s); err != nil {
				return err
			}
		}
	}

	if !first {
		w.Blank()
		emitHTTPContextHelper(w)
		w.Blank()
	}
	return emitFixtures(w, maxArity)
}

func emitHTTPContextHelper(w *emit.Writer) {
	w.WriteLine(0, "// newHTTPContext returns an HTTPContext backed by a response recorder.")
	w.WriteLine(0, "func newHTTPContext() *HTTPContext {")
	w.WriteLine(1, "return NewHTTPContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, \"/\", nil))")
	w.WriteLine(0, "}")
}

func emitScenario(w *emit.Writer, s Scenario) error {
	name, err := s.TestName()
	if err != nil {
		return err
	}

	w.Linef(0, "func %s(t *testing.T) {", name)
	switch s.Kind {
	case AssignedResult:
		emitAssignedResult(w, s.Arity)
	case ExecutedResult:
		emitExecutedResult(w, s.Arity)
	case NilHTTPContext:
		emitNilHTTPContext(w, s.Arity)
	case NilResult:
		emitNilResult(w, s.Arity)
	case CapabilitySlot:
		emitCapabilitySlot(w, s.Arity, s.Slot)
	case NestedSlot:
		emitNestedSlot(w, s.Arity, s.Slot)
	case MetadataPopulated:
		emitMetadataPopulated(w, s.Arity)
	case MetadataNilContext:
		emitMetadataNilContext(w, s.Arity)
	}
	w.WriteLine(0, "}")

	return w.Err()
}

// switchCase is one arm of the arranged selector function.
type switchCase struct {
	selector int
	body     string
}

// emitTable writes the rows of a {input, want} test table.
func emitTable(w *emit.Writer, rows []switchCase) {
	w.WriteLine(1, "tests := []struct {")
	w.WriteLine(2, "input int")
	w.WriteLine(2, "want  any")
	w.WriteLine(1, "}{")
	for _, r := range rows {
		w.Linef(2, "{%d, %s},", r.selector, r.body)
	}
	w.WriteLine(1, "}")
	w.Blank()
}

// emitSelector writes a closure mapping an int selector to a union value.
// The last case becomes the default branch.
func emitSelector(w *emit.Writer, level int, param, returnType string, cases []switchCase) {
	w.Linef(level, "myAPI := func(%s int) %s {", param, returnType)
	w.Linef(level+1, "switch %s {", param)
	for i, c := range cases {
		if i == len(cases)-1 {
			w.WriteLine(level+1, "default:")
		} else {
			w.Linef(level+1, "case %d:", c.selector)
		}
		w.WriteLine(level+2, "return "+c.body)
	}
	w.WriteLine(level+1, "}")
	w.WriteLine(level, "}")
}

// emitSubtestExecution writes the act and assert steps shared by the table
// tests that execute the union and inspect both the held type and the
// recorded checksum.
func emitSubtestExecution(w *emit.Writer) {
	w.WriteLine(3, "hc := newHTTPContext()")
	w.Blank()
	w.WriteLine(3, "// Act")
	w.WriteLine(3, "result := myAPI(tt.input)")
	w.WriteLine(3, "err := result.Execute(hc)")
	w.Blank()
	w.WriteLine(3, "// Assert")
	w.WriteLine(3, "require.NoError(t, err)")
	w.WriteLine(3, "assert.IsType(t, tt.want, result.Result())")
	w.Linef(3, "assert.Equal(t, tt.input, hc.Items[%s])", checksumItemKey)
}

func emitAssignedResult(w *emit.Writer, k int) {
	args := fixtures(recordingFixture, k)

	var rows, cases []switchCase
	for j := 1; j <= k; j++ {
		rows = append(rows, switchCase{j, recordingFixture(j) + "{}"})
		cases = append(cases, switchCase{j, convert(args, j, recordingFixture(j)+"{}")})
	}

	emitTable(w, rows)
	w.WriteLine(1, "for _, tt := range tests {")
	w.WriteLine(2, "t.Run(strconv.Itoa(tt.input), func(t *testing.T) {")
	w.WriteLine(3, "// Arrange")
	emitSelector(w, 3, "id", instantiate(args), cases)
	w.Blank()
	w.WriteLine(3, "// Act")
	w.WriteLine(3, "result := myAPI(tt.input)")
	w.Blank()
	w.WriteLine(3, "// Assert")
	w.WriteLine(3, "assert.IsType(t, tt.want, result.Result())")
	w.WriteLine(2, "})")
	w.WriteLine(1, "}")
}

func emitExecutedResult(w *emit.Writer, k int) {
	args := fixtures(recordingFixture, k)

	inputs := make([]string, k)
	var cases []switchCase
	for j := 1; j <= k; j++ {
		inputs[j-1] = strconv.Itoa(j)
		cases = append(cases, switchCase{j, convert(args, j, recordingValue(j, "checksum"))})
	}

	w.Linef(1, "for _, input := range []int{%s} {", strings.Join(inputs, ", "))
	w.WriteLine(2, "t.Run(strconv.Itoa(input), func(t *testing.T) {")
	w.WriteLine(3, "// Arrange")
	emitSelector(w, 3, "checksum", instantiate(args), cases)
	w.WriteLine(3, "hc := newHTTPContext()")
	w.Blank()
	w.WriteLine(3, "// Act")
	w.WriteLine(3, "result := myAPI(input)")
	w.WriteLine(3, "err := result.Execute(hc)")
	w.Blank()
	w.WriteLine(3, "// Assert")
	w.WriteLine(3, "require.NoError(t, err)")
	w.Linef(3, "assert.Equal(t, input, hc.Items[%s])", checksumItemKey)
	w.WriteLine(2, "})")
	w.WriteLine(1, "}")
}

func emitNilHTTPContext(w *emit.Writer, k int) {
	args := fixtures(recordingFixture, k)

	w.WriteLine(1, "// Arrange")
	w.Linef(1, "myAPI := func() %s {", instantiate(args))
	w.Linef(2, "return %s", convert(args, 1, recordingValue(1, "1")))
	w.WriteLine(1, "}")
	w.WriteLine(1, "var hc *HTTPContext")
	w.Blank()
	w.WriteLine(1, "// Act")
	w.WriteLine(1, "result := myAPI()")
	w.WriteLine(1, "err := result.Execute(hc)")
	w.Blank()
	w.WriteLine(1, "// Assert")
	w.WriteLine(1, "assert.ErrorIs(t, err, ErrNilHTTPContext)")
}

// emitNilResult arranges the zero value of the union, the only way to obtain
// one that holds no alternative.
func emitNilResult(w *emit.Writer, k int) {
	args := fixtures(recordingFixture, k)

	w.WriteLine(1, "// Arrange")
	w.Linef(1, "var result %s", instantiate(args))
	w.WriteLine(1, "hc := newHTTPContext()")
	w.Blank()
	w.WriteLine(1, "// Act")
	w.WriteLine(1, "err := result.Execute(hc)")
	w.Blank()
	w.WriteLine(1, "// Assert")
	w.WriteLine(1, "assert.ErrorIs(t, err, ErrNilResult)")
	w.WriteLine(1, "assert.Nil(t, result.Result())")
}

func emitCapabilitySlot(w *emit.Writer, k, slot int) {
	args := fixtures(recordingFixture, k)
	args[slot-1] = capabilityType

	var rows, cases []switchCase
	for j := 1; j <= k; j++ {
		rows = append(rows, switchCase{j, recordingFixture(j) + "{}"})
		cases = append(cases, switchCase{j, convert(args, j, recordingValue(j, strconv.Itoa(j)))})
	}

	emitTable(w, rows)
	w.WriteLine(1, "for _, tt := range tests {")
	w.WriteLine(2, "t.Run(strconv.Itoa(tt.input), func(t *testing.T) {")
	w.WriteLine(3, "// Arrange")
	emitSelector(w, 3, "id", instantiate(args), cases)
	emitSubtestExecution(w)
	w.WriteLine(2, "})")
	w.WriteLine(1, "}")
}

// emitNestedSlot places ResultsK[RecordingFixture1…K] at the given slot of an
// outer ResultsK whose other slots are RecordingFixture{K+1}. Selectors 1…K
// arrive through the nested union, selector K+1 through the first other slot.
func emitNestedSlot(w *emit.Writer, k, slot int) {
	inner := fixtures(recordingFixture, k)
	nested := instantiate(inner)
	plain := recordingFixture(k + 1)

	outer := make([]string, k)
	plainSlot := 0
	for j := 1; j <= k; j++ {
		if j == slot {
			outer[j-1] = nested
			continue
		}
		outer[j-1] = plain
		if plainSlot == 0 {
			plainSlot = j
		}
	}

	var rows, cases []switchCase
	for j := 1; j <= k; j++ {
		rows = append(rows, switchCase{j, nested + "{}"})
		cases = append(cases, switchCase{j, convert(outer, slot, convert(inner, j, recordingValue(j, strconv.Itoa(j))))})
	}
	rows = append(rows, switchCase{k + 1, plain + "{}"})
	cases = append(cases, switchCase{k + 1, convert(outer, plainSlot, recordingValue(k+1, strconv.Itoa(k+1)))})

	emitTable(w, rows)
	w.WriteLine(1, "for _, tt := range tests {")
	w.WriteLine(2, "t.Run(strconv.Itoa(tt.input), func(t *testing.T) {")
	w.WriteLine(3, "// Arrange")
	emitSelector(w, 3, "id", instantiate(outer), cases)
	emitSubtestExecution(w)
	w.WriteLine(2, "})")
	w.WriteLine(1, "}")
}

func emitMetadataPopulated(w *emit.Writer, k int) {
	args := fixtures(metadataFixture, k)

	w.WriteLine(1, "// Arrange")
	w.WriteLine(1, "mc := &EndpointMetadataContext{}")
	w.Blank()
	w.WriteLine(1, "// Act")
	w.Linef(1, "err := PopulateMetadata[%s](mc)", instantiate(args))
	w.Blank()
	w.WriteLine(1, "// Assert")
	w.WriteLine(1, "require.NoError(t, err)")
	w.Linef(1, "assert.Len(t, mc.Metadata, %d)", k)
	for _, name := range args {
		w.Linef(1, "assert.Contains(t, mc.Metadata, %s{SourceTypeName: %q})", providedMetadataType, name)
	}
}

func emitMetadataNilContext(w *emit.Writer, k int) {
	args := fixtures(metadataFixture, k)

	w.WriteLine(1, "// Act")
	w.Linef(1, "err := %s{}.PopulateMetadata(nil)", instantiate(args))
	w.Blank()
	w.WriteLine(1, "// Assert")
	w.WriteLine(1, "assert.ErrorIs(t, err, ErrNilMetadataContext)")
}
