// gen-docs writes a markdown reference page per registered machine:
// the description followed by the Mermaid transition diagram. Used to
// regenerate docs/machines/.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/spool/internal/presentation/graph"
	"github.com/aretw0/spool/pkg/machines"
)

func main() {
	targetDir := "docs/machines"
	if len(os.Args) > 1 {
		targetDir = os.Args[1]
	}

	// Ensure dir exists
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		panic(err)
	}

	fmt.Printf("Generating machine docs in: %s\n", targetDir)

	reg := machines.Builtin()
	for _, name := range reg.Names() {
		m, err := reg.Get(name)
		check(err)

		var b strings.Builder
		b.WriteString(m.Description)
		if !strings.HasSuffix(m.Description, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n## Transition diagram\n\n```mermaid\n")
		b.WriteString(graph.GenerateMermaid(m))
		b.WriteString("```\n")

		path := filepath.Join(targetDir, name+".md")
		check(os.WriteFile(path, []byte(b.String()), 0644))
		fmt.Println("wrote", path)
	}

	fmt.Println("Done.")
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
