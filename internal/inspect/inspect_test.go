package inspect

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inspectSource(t *testing.T, src string) FileReport {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "src.go", src, 0)
	require.NoError(t, err)
	return InspectFile(fset, "src.go", f)
}

func TestInspectFileCounts(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want map[Feature]int
	}{
		{
			name: "enum and switch",
			src: `package p
type Color int
const (
	Red Color = iota
	Green
)
func name(c Color) string {
	switch c {
	case Red:
		return "Red"
	}
	return ""
}`,
			want: map[Feature]int{FeatEnums: 1, FeatControlFlow: 1, FeatBindings: 2},
		},
		{
			name: "alias and generics",
			src: `package p
type Int = int32
type Pair[A, B any] struct{ First A; Second B }
func Id[T any](v T) T { return v }`,
			want: map[Feature]int{FeatTypes: 1, FeatGenerics: 2, FeatRecords: 1},
		},
		{
			name: "pointers and literals",
			src: `package p
func f() {
	x := 1
	r := &x
	_ = *r
	_ = ` + "`raw`" + `
	_ = 'c'
}`,
			want: map[Feature]int{FeatBindings: 2, FeatPointers: 2, FeatLiterals: 2},
		},
		{
			name: "unsafe and qualified calls",
			src: `package p
import "unsafe"
func f(a *[3]int) int {
	return *(*int)(unsafe.Pointer(&a[0]))
}`,
			want: map[Feature]int{FeatUnsafe: 1, FeatNamespaces: 1, FeatPointers: 4},
		},
		{
			name: "interface and comma-ok",
			src: `package p
type Drawable interface{ Draw() error }
type Point struct{}
func (Point) Draw() error { return nil }
func f(m map[string]int) int {
	v, ok := m["k"]
	if !ok {
		return 0
	}
	return v
}`,
			want: map[Feature]int{
				FeatInterfaces:  2,
				FeatRecords:     1,
				FeatErrors:      2,
				FeatCollections: 1,
				FeatBindings:    1,
				FeatControlFlow: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inspectSource(t, tt.src)
			if diff := cmp.Diff(tt.want, got.Counts); diff != "" {
				t.Errorf("counts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMethodCallIsNotNamespace(t *testing.T) {
	got := inspectSource(t, `package p
import "fmt"
type T struct{}
func (T) Println() {}
func f() {
	var t T
	t.Println()
	fmt.Println()
}`)
	assert.Equal(t, 1, got.Counts[FeatNamespaces])
}

func TestShadowedImportIsNotNamespace(t *testing.T) {
	got := inspectSource(t, `package p
import "fmt"
type T struct{}
func (T) Println() {}
func f() {
	fmt := T{}
	fmt.Println()
}
func g() {
	if fmt := (T{}); true {
		_ = func() { fmt.Println() }
	}
	fmt.Println()
}`)
	assert.Equal(t, 1, got.Counts[FeatNamespaces])
}

func TestImportName(t *testing.T) {
	tests := map[string]string{
		"fmt":                          "fmt",
		"github.com/x/tour/utils":      "utils",
		"gopkg.in/yaml.v3":             "yaml",
		"github.com/go-git/go-git/v5":  "git",
		"github.com/google/go-cmp/cmp": "cmp",
	}
	for path, want := range tests {
		assert.Equal(t, want, importName(path), path)
	}
}
