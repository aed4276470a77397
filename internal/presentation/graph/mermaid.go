package graph

import (
	"fmt"
	"strings"

	"github.com/openburn/motordoc/pkg/workspace"
)

// GenerateMermaid produces a Mermaid flowchart of the document's undo
// timeline. Versions up to the cursor are joined with solid arrows,
// the redo tail with dotted ones, and the current version is
// highlighted (annotated with "saved" when the document is clean).
func GenerateMermaid(st workspace.State) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for i := 0; i < st.Versions; i++ {
		opener, closer := "[", "]"
		if i == 0 {
			opener, closer = "((", "))"
		}

		label := fmt.Sprintf("v%d", i+1)
		if i == st.Cursor && !st.Dirty {
			label += " (saved)"
		}
		sb.WriteString(fmt.Sprintf("    v%d%s\"%s\"%s\n", i, opener, label, closer))

		if i > 0 {
			arrow := "-->"
			if i > st.Cursor {
				// Redo tail, only reachable while no new edit lands.
				arrow = "-.->"
			}
			sb.WriteString(fmt.Sprintf("    v%d %s v%d\n", i-1, arrow, i))
		}
	}

	sb.WriteString("\n    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
	sb.WriteString(fmt.Sprintf("    class v%d current;\n", st.Cursor))

	return sb.String()
}
