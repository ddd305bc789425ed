package export

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/domain"
)

// ToDOT renders the project as a Graphviz digraph. Layers with substacks
// become clusters, connections are solid edges and dependencies dashed
// edges pointing at the required layer.
func ToDOT(p domain.Project) string {
	var b strings.Builder
	b.WriteString("digraph G {\n  rankdir=TB;\n  node [shape=box, style=\"rounded,filled\", fontname=\"Helvetica\"];\n")
	if p.Name != "" {
		b.WriteString(fmt.Sprintf("  labelloc=\"t\"; label=\"%s\"; fontname=\"Helvetica\";\n", escape(p.Name)))
	}

	writeLayers(&b, p.Layers, "  ")

	p.Walk(func(l *domain.Layer, _ int) bool {
		for _, to := range l.Connections {
			b.WriteString(fmt.Sprintf("  \"L%d\" -> \"L%d\" [label=\"connects\"];\n", l.ID, to))
		}
		for _, dep := range l.Dependencies {
			b.WriteString(fmt.Sprintf("  \"L%d\" -> \"L%d\" [label=\"depends on\", style=dashed];\n", l.ID, dep))
		}
		return true
	})

	b.WriteString("}\n")
	return b.String()
}

func writeLayers(b *strings.Builder, layers []domain.Layer, indent string) {
	for _, l := range layers {
		color, ok := domain.ColorOf(l.Type)
		if !ok {
			color, _ = domain.ColorOf(domain.TypeOther)
		}
		node := fmt.Sprintf("%s\"L%d\" [label=\"%s\\n(%s)\", fillcolor=\"%s\", fontcolor=\"white\"",
			indent, l.ID, escape(l.Name), escape(string(l.Type)), color)
		if !l.Visible {
			node += ", style=\"rounded,dashed\""
		}
		b.WriteString(node + "];\n")

		if len(l.Substacks) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("%ssubgraph \"cluster_%d\" {\n", indent, l.ID))
		b.WriteString(fmt.Sprintf("%s  label=\"%s\"; style=rounded; color=\"%s\";\n", indent, escape(l.Name), color))
		writeLayers(b, l.Substacks, indent+"  ")
		b.WriteString(indent + "}\n")
	}
}

func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s)
}
