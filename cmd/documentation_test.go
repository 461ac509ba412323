package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeCommands extracts every `cdash <name>` invocation from the README's
// fenced code blocks.
func readmeCommands(t *testing.T) map[string]bool {
	t.Helper()
	source, err := os.ReadFile("../README.md")
	if err != nil {
		t.Fatal(err)
	}

	commands := make(map[string]bool)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		for i := 0; i < block.Lines().Len(); i++ {
			seg := block.Lines().At(i)
			fields := strings.Fields(string(seg.Value(source)))
			if len(fields) >= 2 && fields[0] == "cdash" {
				commands[fields[1]] = true
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return commands
}

// Every subcommand must be shown in the README, and the README must not
// show commands that do not exist.
func TestReadmeCoversCommands(t *testing.T) {
	documented := readmeCommands(t)
	registered := make(map[string]bool)
	for _, name := range Names() {
		registered[name] = true
	}

	for _, name := range Names() {
		if !documented[name] {
			t.Errorf("command %q is not documented in README.md", name)
		}
	}
	for name := range documented {
		if !registered[name] {
			t.Errorf("README.md documents unknown command %q", name)
		}
	}
}
