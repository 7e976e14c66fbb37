// Package graph exports machine definitions as Mermaid diagrams.
package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/spool/pkg/domain"
)

// GenerateMermaid produces a Mermaid state diagram from a machine
// definition. Transitions between the same pair of states are collapsed
// into one edge labeled with every read/write/move triple, keeping the
// diagram readable for dense tables.
//
// Styling:
//   - the initial state is marked from the [*] start marker
//   - accepting states get the `accepting` class, rejecting ones `rejecting`
func GenerateMermaid(m *domain.Machine) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", sanitizeMermaidID(string(m.InitialState))))

	// Group rules by (from, to) edge with deterministic ordering.
	type edge struct{ from, to domain.State }
	labels := make(map[edge][]string)

	keys := make([]domain.TransitionKey, 0, len(m.Transitions))
	for key := range m.Transitions {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].State != keys[j].State {
			return keys[i].State < keys[j].State
		}
		return keys[i].Read < keys[j].Read
	})

	edges := make([]edge, 0, len(keys))
	for _, key := range keys {
		rule := m.Transitions[key]
		e := edge{from: key.State, to: rule.Next}
		if _, seen := labels[e]; !seen {
			edges = append(edges, e)
		}
		labels[e] = append(labels[e], fmt.Sprintf("%c→%c,%s", key.Read, rule.Write, rule.Move))
	}

	for _, e := range edges {
		sb.WriteString(fmt.Sprintf("    %s --> %s: %s\n",
			sanitizeMermaidID(string(e.from)),
			sanitizeMermaidID(string(e.to)),
			strings.Join(labels[e], " / ")))
	}

	sb.WriteString("\n    classDef accepting fill:#e8f5e9,stroke:#2e7d32,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef rejecting fill:#ffebee,stroke:#c62828,stroke-width:2px,color:#000;\n")
	for _, s := range m.AcceptStates {
		sb.WriteString(fmt.Sprintf("    class %s accepting\n", sanitizeMermaidID(string(s))))
	}
	for _, s := range m.RejectStates {
		sb.WriteString(fmt.Sprintf("    class %s rejecting\n", sanitizeMermaidID(string(s))))
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
