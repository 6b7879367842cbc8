package markdown_test

import (
	"testing"
	"time"

	"github.com/fwojciec/junkyard"
	"github.com/fwojciec/junkyard/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sourceURL = "https://www.picknpull.com/check-inventory/vehicle-search?make=226&model=4154&distance=50&zip=84104&year=2000-2006"

var fixedNow = time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

func newTestParser() *markdown.Parser {
	return markdown.NewParser(markdown.WithClock(func() time.Time { return fixedNow }))
}

const resultsPage = `# Vehicle Search

## Matching Vehicles

[Pick-n-Pull - Salt Lake City](https://www.picknpull.com/locations/salt-lake-city)

| Photo | Year | Make | Model | Row | Set Date |
| --- | --- | --- | --- | --- | --- |
| ![2005 Subaru](https://cdn.example.com/1.jpg) | 2005 | Subaru | Impreza Wagon | 132 | 04/02/2025 |
| ![2003 Subaru](https://cdn.example.com/2.jpg) | 2003 | Subaru | Impreza Wagon | A 7 | 2025-03-15 |
`

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("extracts single table row", func(t *testing.T) {
		t.Parallel()

		text := "## Matching Vehicles\n\n" +
			"| Photo | Year | Make | Model | Row | Set Date |\n" +
			"| --- | --- | --- | --- | --- | --- |\n" +
			"| photo | 2005 | Subaru | Impreza Wagon | 132 | 04/02/2025 |\n"

		records := newTestParser().Parse(text, sourceURL)

		require.Len(t, records, 1)
		r := records[0]
		require.NotNil(t, r.Year)
		assert.Equal(t, uint(2005), *r.Year)
		assert.Equal(t, "Subaru", r.Make)
		assert.Equal(t, "Impreza Wagon", r.Model)
		assert.Equal(t, "2005_subaru_impreza_wagon_132", r.ID)
		assert.True(t, r.Availability)
		assert.Equal(t, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), r.AddedDate)
		require.NotNil(t, r.Location)
		assert.Equal(t, "Row 132, Unknown Location", *r.Location)
	})

	t.Run("extracts rows in table order with facility location", func(t *testing.T) {
		t.Parallel()

		records := newTestParser().Parse(resultsPage, sourceURL)

		require.Len(t, records, 2)
		assert.Equal(t, "2005_subaru_impreza_wagon_132", records[0].ID)
		assert.Equal(t, "2003_subaru_impreza_wagon_A_7", records[1].ID)
		assert.Equal(t, "Row 132, Salt Lake City", *records[0].Location)
		assert.Equal(t, "Row A 7, Salt Lake City", *records[1].Location)
		assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), records[1].AddedDate)
	})

	t.Run("uses street address when no facility name is present", func(t *testing.T) {
		t.Parallel()

		text := "## Matching Vehicles\n\n" +
			"3730 S 500 W • Salt Lake City, UT [Directions](https://maps.example.com)\n\n" +
			"| Photo | Year | Make | Model | Row | Set Date |\n" +
			"| --- | --- | --- | --- | --- | --- |\n" +
			"| photo | 2004 | Subaru | Outback | 12 | 01/15/2025 |\n"

		records := newTestParser().Parse(text, sourceURL)

		require.Len(t, records, 1)
		assert.Equal(t, "Row 12, 3730 S 500 W, Salt Lake City, UT", *records[0].Location)
	})

	t.Run("returns empty result for no vehicles marker", func(t *testing.T) {
		t.Parallel()

		text := "### No Vehicles Found\n\n" + resultsPage + "\n2005 Subaru Impreza Wagon Row 132 Set: 04/02/2025"

		records := newTestParser().Parse(text, sourceURL)

		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("falls back when section has only the header row", func(t *testing.T) {
		t.Parallel()

		text := "## Matching Vehicles\n\n" +
			"| Photo | Year | Make | Model | Row | Set Date |\n" +
			"| --- | --- | --- | --- | --- | --- |\n\n" +
			"2005 Subaru Impreza Wagon Row 132 Set: 04/02/2025\n"

		records := newTestParser().Parse(text, sourceURL)

		require.Len(t, records, 1)
		assert.Equal(t, "2005_subaru_impreza_wagon_132", records[0].ID)
	})

	t.Run("falls back when section is missing", func(t *testing.T) {
		t.Parallel()

		text := "Inventory\n\n2005 Subaru Impreza Wagon Row 132 Set: 04/02/2025\n"

		records := newTestParser().Parse(text, sourceURL)

		require.Len(t, records, 1)
		r := records[0]
		assert.Equal(t, uint(2005), *r.Year)
		assert.Equal(t, "Subaru", r.Make)
		assert.Equal(t, "Impreza Wagon", r.Model)
		assert.Equal(t, "Row 132, Unknown Location", *r.Location)
	})

	t.Run("skips rows with empty make or model", func(t *testing.T) {
		t.Parallel()

		text := "## Matching Vehicles\n\n" +
			"| Photo | Year | Make | Model | Row | Set Date |\n" +
			"| --- | --- | --- | --- | --- | --- |\n" +
			"| photo | 2001 |   | Legacy | 3 | 01/01/2025 |\n" +
			"| photo | 2002 | Subaru |   | 4 | 01/01/2025 |\n" +
			"| photo | 2005 | Subaru | Forester | 5 | 01/01/2025 |\n"

		records := newTestParser().Parse(text, sourceURL)

		require.Len(t, records, 1)
		assert.Equal(t, "Forester", records[0].Model)
		for _, r := range records {
			assert.NotEmpty(t, r.Make)
			assert.NotEmpty(t, r.Model)
			assert.NotNil(t, r.Year)
		}
	})

	t.Run("uses clock for unparseable set date", func(t *testing.T) {
		t.Parallel()

		text := "## Matching Vehicles\n\n" +
			"| photo | 2005 | Subaru | Baja | 9 | last week |\n"

		records := newTestParser().Parse(text, sourceURL)

		require.Len(t, records, 1)
		assert.Equal(t, fixedNow, records[0].AddedDate)
	})

	t.Run("ignores tables before the section marker", func(t *testing.T) {
		t.Parallel()

		text := "| photo | 1999 | Honda | Civic | 1 | 01/01/2025 |\n\n" +
			"## Matching Vehicles\n\n" +
			"| photo | 2005 | Subaru | Baja | 9 | 01/01/2025 |\n"

		records := newTestParser().Parse(text, sourceURL)

		require.Len(t, records, 1)
		assert.Equal(t, "Baja", records[0].Model)
	})

	t.Run("returns empty result for text matching no strategy", func(t *testing.T) {
		t.Parallel()

		records := newTestParser().Parse("Nothing to see here.", sourceURL)

		assert.Empty(t, records)
	})
}

func TestParser_ParseAlternative(t *testing.T) {
	t.Parallel()

	t.Run("extracts inline listings in document order", func(t *testing.T) {
		t.Parallel()

		text := "Pick-n-Pull - Newark]\n" +
			"2005 Subaru Impreza Wagon Row 132 Set: 04/02/2025\n" +
			"1998 Honda Civic Row 7 Set:03/01/2025\n"

		records := newTestParser().ParseAlternative(text, sourceURL)

		require.Len(t, records, 2)
		assert.Equal(t, "2005_subaru_impreza_wagon_132", records[0].ID)
		assert.Equal(t, "1998_honda_civic_7", records[1].ID)
		assert.Equal(t, "Row 132, Newark", *records[0].Location)
		assert.Equal(t, "Row 7, Newark", *records[1].Location)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), records[1].AddedDate)
	})

	t.Run("returns empty result when nothing matches", func(t *testing.T) {
		t.Parallel()

		records := newTestParser().ParseAlternative("no listings", "")

		assert.NotNil(t, records)
		assert.Empty(t, records)
	})
}

func TestParser_ConcurrentUse(t *testing.T) {
	t.Parallel()

	p := newTestParser()
	done := make(chan []*junkyard.InventoryRecord)
	for range 8 {
		go func() {
			done <- p.Parse(resultsPage, sourceURL)
		}()
	}
	for range 8 {
		assert.Len(t, <-done, 2)
	}
}
