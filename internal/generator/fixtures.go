package generator

import (
	"github.com/goatx/resultsgen/internal/emit"
)

// emitFixtures writes the types the generated tests refer to: a recording
// family that stores its checksum in the context items and a metadata family
// that contributes its own type name. Each family has maxArity+1 members so
// the nested tests have one spare type.
func emitFixtures(w *emit.Writer, maxArity int) error {
	w.Linef(0, "const %s = \"Checksum\"", checksumItemKey)
	w.Blank()

	w.Linef(0, "type %s struct {", providedMetadataType)
	w.WriteLine(1, "SourceTypeName string")
	w.WriteLine(0, "}")
	w.Blank()

	w.Linef(0, "// %s records its Checksum in the context items when executed.", recordingFixtureBase)
	w.Linef(0, "type %s struct {", recordingFixtureBase)
	w.WriteLine(1, "Checksum int")
	w.WriteLine(0, "}")
	w.Blank()
	w.Linef(0, "func (f %s) Execute(hc *HTTPContext) error {", recordingFixtureBase)
	w.Linef(1, "hc.Items[%s] = f.Checksum", checksumItemKey)
	w.WriteLine(1, "return nil")
	w.WriteLine(0, "}")

	for i := 1; i <= maxArity+1; i++ {
		w.Blank()
		emitRecordingFixture(w, i)
	}
	for i := 1; i <= maxArity+1; i++ {
		w.Blank()
		emitMetadataFixture(w, i)
	}

	return w.Err()
}

func emitRecordingFixture(w *emit.Writer, i int) {
	w.Linef(0, "type %s struct{ %s }", recordingFixture(i), recordingFixtureBase)
}

func emitMetadataFixture(w *emit.Writer, i int) {
	name := metadataFixture(i)

	w.Linef(0, "type %s struct{}", name)
	w.Blank()
	w.Linef(0, "func (%s) Execute(*HTTPContext) error {", name)
	w.WriteLine(1, "return nil")
	w.WriteLine(0, "}")
	w.Blank()
	w.Linef(0, "func (%s) PopulateMetadata(mc *EndpointMetadataContext) error {", name)
	w.Linef(1, "mc.Metadata = append(mc.Metadata, %s{SourceTypeName: %q})", providedMetadataType, name)
	w.WriteLine(1, "return nil")
	w.WriteLine(0, "}")
}
