package alphabet

import (
	"fmt"
	"strings"
)

// String renders a classified atom as `{i, j, k}`, matching the Pretty
// impl for `Vec<u32>` in original_source/rlex/src/ast.rs and spec.md §8
// scenario 1's expected `{1} | {5} | {3}`.
func (c Classes) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, x := range c {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", x)
	}
	b.WriteByte('}')
	return b.String()
}
