package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/junkyard"
	main "github.com/fwojciec/junkyard/cmd/junkyard"
	"github.com/fwojciec/junkyard/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const savedPage = "## Matching Vehicles\n\n" +
	"| Photo | Year | Make | Model | Row | Set Date |\n" +
	"| --- | --- | --- | --- | --- | --- |\n" +
	"| photo | 2005 | Subaru | Impreza Wagon | 132 | 04/02/2025 |\n"

func writePage(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints extracted vehicles", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Parser: markdown.NewParser(),
		}

		require.NoError(t, (&main.ParseCmd{File: writePage(t, savedPage)}).Run(deps))

		assert.Contains(t, stdout.String(), "Found 1 vehicles")
		assert.Contains(t, stdout.String(), "2005 Subaru Impreza Wagon  Row 132, Unknown Location  added 2025-04-02")
	})

	t.Run("prints JSON records", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Parser: markdown.NewParser(),
		}

		require.NoError(t, (&main.ParseCmd{File: writePage(t, savedPage), JSON: true}).Run(deps))

		var records []*junkyard.InventoryRecord
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &records))
		require.Len(t, records, 1)
		assert.Equal(t, "2005_subaru_impreza_wagon_132", records[0].ID)
	})

	t.Run("prints empty JSON array for no vehicles page", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Parser: markdown.NewParser(),
		}

		require.NoError(t, (&main.ParseCmd{File: writePage(t, "### No Vehicles Found\n"), JSON: true}).Run(deps))

		assert.JSONEq(t, "[]", stdout.String())
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Parser: markdown.NewParser(),
		}

		err := (&main.ParseCmd{File: filepath.Join(t.TempDir(), "missing.md")}).Run(deps)

		require.Error(t, err)
	})
}
