package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropbook/entities"
)

func TestParseFieldRows_Basic(t *testing.T) {
	grid := [][]string{
		{"h"},
		{"A1", "Tomato:Roma", "4", "2", "5/1", "note"},
	}
	recs := ParseFieldRows(grid, "Field 3")
	require.Len(t, recs, 1)

	r := recs[0]
	assert.Equal(t, "Field 3", r.Field)
	assert.Equal(t, "A1", r.Bed)
	assert.Equal(t, "Tomato", r.Crop)
	assert.Equal(t, "Roma", r.Variety)
	assert.Equal(t, "4", r.TrayCount)
	assert.Equal(t, "2", r.RowCount)
	assert.Equal(t, "5/1", r.PlantedDate)
	assert.Equal(t, "note", r.Notes)
	assert.Equal(t, entities.LocationOpenField, r.Location)
	assert.Nil(t, r.ReplantedFrom)
}

func TestParseFieldRows_BlankAndSpacerRows(t *testing.T) {
	grid := [][]string{
		{"bed", "crop", "trays", "rows", "date", "notes"},
		{"", "", "", "", "", ""},
		{"", ""},
		{},
	}
	assert.Empty(t, ParseFieldRows(grid, "Field 1"))
}

func TestParseFieldRows_HeaderOnly(t *testing.T) {
	assert.Empty(t, ParseFieldRows([][]string{{"h"}}, "Field 1"))
	assert.Empty(t, ParseFieldRows(nil, "Field 1"))
}

func TestParseFieldRows_NoVariety(t *testing.T) {
	grid := [][]string{{"h"}, {"B2", "Basil", "1", "", "", ""}}
	recs := ParseFieldRows(grid, "Field 1")
	require.Len(t, recs, 1)
	assert.Equal(t, "Basil", recs[0].Crop)
	assert.Equal(t, "", recs[0].Variety)
}

func TestParseFieldRows_RaggedRowPadded(t *testing.T) {
	grid := [][]string{{"h"}, {"A1", "Kale: Lacinato"}}
	recs := ParseFieldRows(grid, "Field 2")
	require.Len(t, recs, 1)
	assert.Equal(t, "Kale", recs[0].Crop)
	assert.Equal(t, "Lacinato", recs[0].Variety)
	assert.Equal(t, "", recs[0].TrayCount)
	assert.Equal(t, "", recs[0].Notes)
}

func TestParseFieldRows_CropMissingDropped(t *testing.T) {
	grid := [][]string{
		{"h"},
		{"A1", ": Roma", "4", "2", "5/1", ""}, // no crop before the colon
		{"A2", "", "4", "2", "5/1", ""},       // bed only
	}
	assert.Empty(t, ParseFieldRows(grid, "Field 1"))
}

func TestParseFieldRows_MultiCropSplit(t *testing.T) {
	grid := [][]string{
		{"h"},
		{"A1", "Cucumber: Mini Me / Cucumber: Tasty Green", "1 / 0.2", "2", "5/1", "shared"},
	}
	recs := ParseFieldRows(grid, "Field 1")
	require.Len(t, recs, 2)

	assert.Equal(t, "Mini Me", recs[0].Variety)
	assert.Equal(t, "1", recs[0].TrayCount)
	assert.Equal(t, "Tasty Green", recs[1].Variety)
	assert.Equal(t, "0.2", recs[1].TrayCount)
	for _, r := range recs {
		assert.Equal(t, "Cucumber", r.Crop)
		assert.Equal(t, "A1", r.Bed)
		assert.Equal(t, "2", r.RowCount)
		assert.Equal(t, "5/1", r.PlantedDate)
		assert.Equal(t, "shared", r.Notes)
	}
}

func TestParseFieldRows_MultiCropTrayCountMismatch(t *testing.T) {
	grid := [][]string{
		{"h"},
		{"A1", "Sage / Oregano / Mint", "3", "1", "4/15", ""},
	}
	recs := ParseFieldRows(grid, "Field 1")
	require.Len(t, recs, 3)
	for _, r := range recs {
		assert.Equal(t, "3", r.TrayCount)
	}
}

func TestParseFieldRows_MultiCropNoReplantDetection(t *testing.T) {
	grid := [][]string{
		{"h"},
		{"A1", "Sage / Mint", "1 / 1", "1", "", "Tomato replaced with Sage"},
	}
	recs := ParseFieldRows(grid, "Field 1")
	require.Len(t, recs, 2)
	for _, r := range recs {
		assert.Nil(t, r.ReplantedFrom)
	}
}

func TestParseFieldRows_Replanting(t *testing.T) {
	t.Run("crop and variety original", func(t *testing.T) {
		grid := [][]string{
			{"h"},
			{"A1", "Cucumber: Mini Me", "1", "1", "5/1", "Tomato: Roma replaced with Cucumber: Mini Me"},
		}
		recs := ParseFieldRows(grid, "Field 1")
		require.Len(t, recs, 1)
		rf := recs[0].ReplantedFrom
		require.NotNil(t, rf)
		assert.Equal(t, "Tomato", rf.Crop)
		assert.Equal(t, "Roma", rf.Variety)
		assert.Equal(t, "Tomato: Roma replaced with Cucumber: Mini Me", rf.Notes)
		assert.Equal(t, "", rf.Date)
	})

	t.Run("crop only original", func(t *testing.T) {
		grid := [][]string{{"h"}, {"A1", "Cucumber", "1", "1", "", "Tomato replaced with Cucumber"}}
		recs := ParseFieldRows(grid, "Field 1")
		require.Len(t, recs, 1)
		rf := recs[0].ReplantedFrom
		require.NotNil(t, rf)
		assert.Equal(t, "Tomato", rf.Crop)
		assert.Equal(t, "", rf.Variety)
	})

	t.Run("replaced by, no original", func(t *testing.T) {
		grid := [][]string{{"h"}, {"A1", "Cucumber", "1", "1", "", "replaced by Cucumber in June"}}
		recs := ParseFieldRows(grid, "Field 1")
		require.Len(t, recs, 1)
		rf := recs[0].ReplantedFrom
		require.NotNil(t, rf)
		assert.Equal(t, "", rf.Crop)
		assert.Equal(t, "", rf.Variety)
		assert.Equal(t, "replaced by Cucumber in June", rf.Notes)
	})

	t.Run("replanted with, no original", func(t *testing.T) {
		grid := [][]string{{"h"}, {"A1", "Cucumber", "1", "1", "", "replanted with Cucumber"}}
		recs := ParseFieldRows(grid, "Field 1")
		require.Len(t, recs, 1)
		rf := recs[0].ReplantedFrom
		require.NotNil(t, rf)
		assert.Equal(t, "", rf.Crop)
		assert.Equal(t, "replanted with Cucumber", rf.Notes)
	})

	t.Run("case insensitive", func(t *testing.T) {
		grid := [][]string{{"h"}, {"A1", "Cucumber", "1", "1", "", "Tomato REPLACED WITH Cucumber"}}
		recs := ParseFieldRows(grid, "Field 1")
		require.Len(t, recs, 1)
		require.NotNil(t, recs[0].ReplantedFrom)
		assert.Equal(t, "Tomato", recs[0].ReplantedFrom.Crop)
	})

	t.Run("plain note is not a replant", func(t *testing.T) {
		grid := [][]string{{"h"}, {"A1", "Cucumber", "1", "1", "", "looking healthy"}}
		recs := ParseFieldRows(grid, "Field 1")
		require.Len(t, recs, 1)
		assert.Nil(t, recs[0].ReplantedFrom)
	})
}

func TestClassifyLocation(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"HT 1", entities.LocationHighTunnel},
		{"High Tunnel East", entities.LocationHighTunnel},
		{"Greenhouse", entities.LocationGreenhouse},
		{"GH 2", entities.LocationGreenhouse},
		{"Field 3", entities.LocationOpenField},
		{"", entities.LocationOpenField},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyLocation(tc.name), "field %q", tc.name)
	}
}
