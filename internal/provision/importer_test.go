// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package provision

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestDecodeCSV verifies header-keyed row decoding, including short rows and
ragged trailing cells.
*/
func TestDecodeCSV(t *testing.T) {
	input := strings.Join([]string{
		"id,name,logo_url",
		"b-1,Audi,https://cdn.example.com/audi.svg",
		"b-2,BMW",
	}, "\n")

	records, err := decodeCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Audi", records[0].get("name"))
	require.NotNil(t, records[0].optional("logo_url"))
	assert.Equal(t, "https://cdn.example.com/audi.svg", *records[0].optional("logo_url"))

	// Missing trailing cell reads as empty and persists as NULL.
	assert.Equal(t, "BMW", records[1].get("name"))
	assert.Nil(t, records[1].optional("logo_url"))
}

/*
TestDecodeCSV_Empty verifies that an empty file and a header-only file both
decode to zero records.
*/
func TestDecodeCSV_Empty(t *testing.T) {
	records, err := decodeCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = decodeCSV(strings.NewReader("id,name\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

/*
TestRecord_Parsers covers the typed cell accessors used by the per-table
importers.
*/
func TestRecord_Parsers(t *testing.T) {
	row := record{
		"year_from":  "2015",
		"bore_mm":    "82.5",
		"is_enabled": "false",
		"stock_hp":   "190",
		"bad_int":    "abc",
	}

	require.NotNil(t, row.optionalInt("year_from"))
	assert.Equal(t, 2015, *row.optionalInt("year_from"))
	assert.Nil(t, row.optionalInt("bad_int"))
	assert.Nil(t, row.optionalInt("missing"))

	require.NotNil(t, row.optionalFloat("bore_mm"))
	assert.Equal(t, 82.5, *row.optionalFloat("bore_mm"))

	assert.False(t, row.boolDefault("is_enabled", true))
	assert.True(t, row.boolDefault("missing", true))

	value, err := row.requiredInt("stock_hp")
	require.NoError(t, err)
	assert.Equal(t, 190, value)

	_, err = row.requiredInt("bad_int")
	assert.Error(t, err)
}
