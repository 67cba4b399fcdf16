package stats

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes aligned key=value lines.
type Printer struct {
	W       io.Writer
	Padding int
}

// Print writes one line, left-padding the key to the printer width.
func (p Printer) Print(key string, value any) {
	fmt.Fprintf(p.W, "%s%s=%v\n", strings.Repeat(" ", max(0, p.Padding-len(key))), key, value)
}
