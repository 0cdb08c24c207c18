package emit

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		unit  string
		write func(w *Writer)
		want  string
	}{
		{
			name: "level zero",
			write: func(w *Writer) {
				w.WriteLine(0, "package results")
			},
			want: "package results\n",
		},
		{
			name: "nested levels with default tab",
			write: func(w *Writer) {
				w.WriteLine(0, "func f() {")
				w.WriteLine(1, "if ok {")
				w.WriteLine(2, "return")
				w.WriteLine(1, "}")
				w.WriteLine(0, "}")
			},
			want: "func f() {\n\tif ok {\n\t\treturn\n\t}\n}\n",
		},
		{
			name: "custom unit",
			unit: "    ",
			write: func(w *Writer) {
				w.WriteLine(2, "x")
			},
			want: "        x\n",
		},
		{
			name: "write then continue line",
			write: func(w *Writer) {
				w.Write(1, "Results<")
				w.Write(0, "A, B")
				w.WriteLine(0, ">")
			},
			want: "\tResults<A, B>\n",
		},
		{
			name: "empty line carries no indentation",
			write: func(w *Writer) {
				w.WriteLine(3, "")
				w.Blank()
			},
			want: "\n\n",
		},
		{
			name: "formatted variants",
			write: func(w *Writer) {
				w.Printf(1, "case %d:", 1)
				w.Linef(0, " // %s", "first")
			},
			want: "\tcase 1: // first\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var b strings.Builder
			w := New(&b, tt.unit)
			tt.write(w)

			if err := w.Err(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, b.String()); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type failingWriter struct {
	calls int
}

var errSink = errors.New("sink closed")

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errSink
}

func TestWriterStickyError(t *testing.T) {
	t.Parallel()

	fw := &failingWriter{}
	w := New(fw, "")
	w.WriteLine(1, "first")
	w.WriteLine(1, "second")
	w.Blank()

	if !errors.Is(w.Err(), errSink) {
		t.Fatalf("Err() = %v, want %v", w.Err(), errSink)
	}
	if fw.calls != 1 {
		t.Fatalf("underlying writer called %d times, want 1", fw.calls)
	}
}
