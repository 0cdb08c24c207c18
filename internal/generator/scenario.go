package generator

import (
	"github.com/goatx/resultsgen/internal/wording"
)

// Kind identifies one category of generated test.
type Kind int

const (
	// AssignedResult checks the exposed alternative has the expected type.
	AssignedResult Kind = iota
	// ExecutedResult checks executing the union executes the held alternative.
	ExecutedResult
	// NilHTTPContext checks executing with a nil context fails.
	NilHTTPContext
	// NilResult checks executing a zero-value union fails.
	NilResult
	// CapabilitySlot declares one slot as the Result interface itself.
	CapabilitySlot
	// NestedSlot declares one slot as a nested union of the same arity.
	NestedSlot
	// MetadataPopulated checks every alternative contributes its metadata.
	MetadataPopulated
	// MetadataNilContext checks populating metadata with a nil context fails.
	MetadataNilContext
)

var kindSuffixes = map[Kind]string{
	AssignedResult:     "_Result_IsAssignedResult",
	ExecutedResult:     "_ExecuteResult_ExecutesAssignedResult",
	NilHTTPContext:     "_Execute_ReturnsErrNilHTTPContext_WhenHTTPContextIsNil",
	NilResult:          "_Execute_ReturnsErrNilResult_WhenResultIsNil",
	CapabilitySlot:     "_AcceptsResult",
	NestedSlot:         "_AcceptsNestedResults",
	MetadataPopulated:  "_PopulateMetadata_PopulatesMetadataFromTypeArgsThatProvideMetadata",
	MetadataNilContext: "_PopulateMetadata_ReturnsErrNilMetadataContext_WhenContextIsNil",
}

// PerSlot reports whether the kind is emitted once per slot.
func (k Kind) PerSlot() bool {
	return k == CapabilitySlot || k == NestedSlot
}

// Scenario fully determines one generated test function.
type Scenario struct {
	Arity int
	Kind  Kind
	// Slot is the 1-based slot under test for per-slot kinds, 0 otherwise.
	Slot int
}

// Scenarios returns the scenarios for arity k in emission order. Arities
// below two have no union type and yield nothing.
func Scenarios(k int) []Scenario {
	if k < 2 {
		return nil
	}

	out := []Scenario{
		{Arity: k, Kind: AssignedResult},
		{Arity: k, Kind: ExecutedResult},
		{Arity: k, Kind: NilHTTPContext},
		{Arity: k, Kind: NilResult},
	}
	for _, kind := range []Kind{CapabilitySlot, NestedSlot} {
		for j := 1; j <= k; j++ {
			out = append(out, Scenario{Arity: k, Kind: kind, Slot: j})
		}
	}
	return append(out,
		Scenario{Arity: k, Kind: MetadataPopulated},
		Scenario{Arity: k, Kind: MetadataNilContext},
	)
}

// TestName returns the name of the generated test function.
func (s Scenario) TestName() (string, error) {
	name := testPrefix(s.Arity) + kindSuffixes[s.Kind]
	if !s.Kind.PerSlot() {
		return name, nil
	}

	ordinal, err := wording.Ordinal(s.Slot)
	if err != nil {
		return "", err
	}
	return name + "_As" + wording.TitleCase(ordinal) + "TypeArg", nil
}
