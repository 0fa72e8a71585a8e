// --- syntour/internal/tour/format.go ---

package tour

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// formatList renders a slice as "[a, b, c]" in debug format.
func formatList(f Format, xs []int) string {
	if f == FormatGo {
		return fmt.Sprint(xs)
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatMap renders a map as {"k": v, ...} in debug format. Keys are
// sorted so the output is stable across runs.
func formatMap(f Format, m map[string]int) string {
	if f == FormatGo {
		return fmt.Sprint(m)
	}
	var sb strings.Builder
	sb.WriteString("{")
	for i, k := range slices.Sorted(maps.Keys(m)) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q: %d", k, m[k])
	}
	sb.WriteString("}")
	return sb.String()
}
