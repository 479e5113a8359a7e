package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarted/studykit/internal/store"
)

func TestPrintDocuments_StarsBookmarks(t *testing.T) {
	added := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	docs := []store.Document{
		{ID: "0a1b2c3d-aaaa", Title: "Cells", Tags: []string{"biology"}, Bookmarked: true, CreatedAt: added},
		{ID: "9f8e7d6c-bbbb", Title: "Atoms", CreatedAt: added},
	}

	var buf bytes.Buffer
	printDocuments(&buf, docs)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "★  0a1b2c3d"), lines[2])
	assert.Contains(t, lines[2], "biology")
	assert.True(t, strings.HasPrefix(lines[3], "   9f8e7d6c"), lines[3])
}
