package cmd

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/smarted/studykit/internal/notes"
)

func TestPrintMindMap(t *testing.T) {
	root := notes.Node{Topic: "Cells", Children: []notes.Node{
		{Topic: "Organelles", Children: []notes.Node{{Topic: "Nucleus"}, {Topic: "Mitochondria"}}},
		{Topic: "Division"},
	}}

	var buf bytes.Buffer
	printMindMap(&buf, root)

	want := "Cells\n" +
		"├── Organelles\n" +
		"│   ├── Nucleus\n" +
		"│   └── Mitochondria\n" +
		"└── Division\n"
	assert.Equal(t, want, ansi.Strip(buf.String()))
}

func TestPrintMindMap_DeepBranches(t *testing.T) {
	root := notes.Node{Topic: "Energy", Children: []notes.Node{
		{Topic: "Kinetic", Children: []notes.Node{
			{Topic: "Motion", Children: []notes.Node{{Topic: "Speed"}}},
		}},
	}}

	var buf bytes.Buffer
	printMindMap(&buf, root)

	want := "Energy\n" +
		"└── Kinetic\n" +
		"    └── Motion\n" +
		"        └── Speed\n"
	assert.Equal(t, want, ansi.Strip(buf.String()))
}

func TestTruncate_RuneSafe(t *testing.T) {
	assert.Equal(t, "héllo", truncate("héllo wörld", 5))
	assert.Equal(t, "short", truncate("short", 10))
}

func TestOrToday(t *testing.T) {
	assert.Equal(t, "2024-05-10", orToday(" 2024-05-10 "))
	assert.Len(t, orToday(""), len("2006-01-02"))
}
