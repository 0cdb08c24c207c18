package generator

import (
	"strings"

	"github.com/goatx/resultsgen/internal/emit"
	"github.com/goatx/resultsgen/internal/wording"
)

// EmitClasses writes one union type definition per arity from 2 to maxArity,
// separated by a single blank line.
func EmitClasses(w *emit.Writer, maxArity int) error {
	for k := 2; k <= maxArity; k++ {
		if err := emitClass(w, k); err != nil {
			return err
		}
		if k != maxArity {
			w.Blank()
		}
	}
	return w.Err()
}

func emitClass(w *emit.Writer, k int) error {
	name := typeName(k)
	params := typeParams(k)
	self := instantiate(params)
	decl := typeParamDecl(k)

	count, err := wording.Cardinal(k)
	if err != nil {
		return err
	}

	// Summary and remarks.
	w.Linef(0, "// %s is a %s that could be one of %s different %s types. On", name, capabilityType, count, capabilityType)
	w.Linef(0, "// execution it executes the underlying %s that was actually returned by", capabilityType)
	w.WriteLine(0, "// the endpoint handler.")
	w.WriteLine(0, "//")
	w.Linef(0, "// A %s cannot be created directly. Use one of the conversion functions", name)
	w.WriteLine(0, "// to create an instance from a value of one of the declared type arguments,")
	w.WriteLine(0, "// e.g.")
	w.WriteLine(0, "//")
	w.Linef(0, "//\t%s", usageExample(k))
	w.WriteLine(0, "//")

	// Type parameters.
	for j, p := range params {
		ordinal, err := wording.Ordinal(j + 1)
		if err != nil {
			return err
		}
		w.Linef(0, "// %s is the %s result type.", p, ordinal)
	}

	// Header and declared capabilities.
	w.Linef(0, "type %s[%s] struct {", name, decl)
	w.WriteLine(1, "result "+capabilityType)
	w.WriteLine(0, "}")
	w.Blank()
	w.Linef(0, "var _ metadataResult = %s{}", instantiate(repeat(capabilityType, k)))
	w.Blank()

	// Constructor.
	w.Linef(0, "// %s is the only constructor. Use the conversion functions to create an instance.", constructorName(k))
	w.Linef(0, "func %s[%s](activeResult %s) %s {", constructorName(k), decl, capabilityType, self)
	w.Linef(1, "return %s{result: activeResult}", self)
	w.WriteLine(0, "}")
	w.Blank()

	// Accessor.
	w.Linef(0, "// Result returns the %s actually returned by the endpoint handler.", capabilityType)
	w.Linef(0, "func (r %s) Result() %s {", self, capabilityType)
	w.WriteLine(1, "return r.result")
	w.WriteLine(0, "}")
	w.Blank()

	// Execute.
	w.Linef(0, "// Execute implements %s.", capabilityType)
	w.Linef(0, "func (r %s) Execute(hc *HTTPContext) error {", self)
	w.WriteLine(1, "if hc == nil {")
	w.WriteLine(2, "return ErrNilHTTPContext")
	w.WriteLine(1, "}")
	w.Blank()
	w.WriteLine(1, "if r.result == nil {")
	w.WriteLine(2, "return ErrNilResult")
	w.WriteLine(1, "}")
	w.Blank()
	w.WriteLine(1, "return r.result.Execute(hc)")
	w.WriteLine(0, "}")
	w.Blank()

	// Conversions, in slot order.
	for j, p := range params {
		w.Linef(0, "// %s converts a %s to a %s.", conversionName(k, j+1), p, self)
		w.Linef(0, "func %s[%s](result %s) %s {", conversionName(k, j+1), decl, p, self)
		w.Linef(1, "return %s[%s](result)", constructorName(k), strings.Join(params, ", "))
		w.WriteLine(0, "}")
		w.Blank()
	}

	// Metadata.
	w.WriteLine(0, "// PopulateMetadata implements EndpointMetadataProvider. It populates mc from")
	w.WriteLine(0, "// every type argument that implements EndpointMetadataProvider.")
	w.Linef(0, "func (%s) PopulateMetadata(mc *EndpointMetadataContext) error {", self)
	w.WriteLine(1, "if mc == nil {")
	w.WriteLine(2, "return ErrNilMetadataContext")
	w.WriteLine(1, "}")
	w.Blank()
	w.WriteLine(1, "for _, populate := range []func(*EndpointMetadataContext) error{")
	for _, p := range params {
		w.Linef(2, "PopulateMetadata[%s],", p)
	}
	w.WriteLine(1, "} {")
	w.WriteLine(2, "if err := populate(mc); err != nil {")
	w.WriteLine(3, "return err")
	w.WriteLine(2, "}")
	w.WriteLine(1, "}")
	w.WriteLine(1, "return nil")
	w.WriteLine(0, "}")

	return w.Err()
}

// usageExample renders a conversion into a union of the built-in results,
// padding with StatusCode where there are not enough of them.
func usageExample(k int) string {
	builtin := []string{"NoContent", "NotFound", "JSON"}
	args := make([]string, k)
	for j := range args {
		if j < len(builtin) {
			args[j] = builtin[j]
		} else {
			args[j] = "StatusCode"
		}
	}
	return "var result " + instantiate(args) + " = " + convert(args, 2, "NotFound{}")
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}
