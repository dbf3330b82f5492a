package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteTimeUnmarshal(t *testing.T) {
	cases := []struct {
		name      string
		input     string
		wantValid bool
		wantTime  time.Time
	}{
		{
			name:      "seconds object",
			input:     `{"seconds": 1756500000}`,
			wantValid: true,
			wantTime:  time.Unix(1756500000, 0),
		},
		{
			name:      "rfc3339 string",
			input:     `"2026-08-30T12:00:00Z"`,
			wantValid: true,
			wantTime:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			name:      "datetime without zone",
			input:     `"2026-08-30T12:00:00"`,
			wantValid: true,
			wantTime:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			name:      "date only",
			input:     `"2026-08-30"`,
			wantValid: true,
			wantTime:  time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "unparseable string",
			input:     `"next tuesday"`,
			wantValid: false,
		},
		{
			name:      "empty string",
			input:     `""`,
			wantValid: false,
		},
		{
			name:      "null",
			input:     `null`,
			wantValid: false,
		},
		{
			name:      "object without seconds",
			input:     `{"nanos": 12}`,
			wantValid: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var rt RemoteTime
			require.NoError(t, json.Unmarshal([]byte(tc.input), &rt))
			assert.Equal(t, tc.wantValid, rt.Valid)
			if tc.wantValid {
				assert.True(t, rt.Time.Equal(tc.wantTime), "got %v, want %v", rt.Time, tc.wantTime)
			}
		})
	}
}

func TestRemoteTimeMarshal(t *testing.T) {
	rt := RemoteTime{Time: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), Valid: true}
	data, err := json.Marshal(rt)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-30T12:00:00Z"`, string(data))

	data, err = json.Marshal(RemoteTime{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestOrderUnmarshalMixedTimestampShapes(t *testing.T) {
	payload := `[
		{"id": "a", "total": 10, "created_at": {"seconds": 1756500000}},
		{"id": "b", "total": 20, "created_at": "2026-08-30T09:00:00Z"},
		{"id": "c", "total": 30, "date": "2026-08-29"}
	]`

	var orders []Order
	require.NoError(t, json.Unmarshal([]byte(payload), &orders))
	require.Len(t, orders, 3)

	require.NotNil(t, orders[0].CreatedAt)
	assert.True(t, orders[0].CreatedAt.Valid)
	assert.True(t, orders[1].CreatedAt.Valid)
	assert.Nil(t, orders[2].CreatedAt)
	assert.Equal(t, "2026-08-29", orders[2].Date)
}

func TestInventoryItemMarshalIncludesDerivedStatus(t *testing.T) {
	item := InventoryItem{ID: 1, Name: "Oil", Category: "ingredients", Stock: 3, MinStock: 5, Unit: "l"}

	data, err := json.Marshal(item)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "low", decoded["stock_status"])
}

func TestTableStatusCycle(t *testing.T) {
	assert.Equal(t, TableStatusOccupied, TableStatusFree.Next())
	assert.Equal(t, TableStatusReserved, TableStatusOccupied.Next())
	assert.Equal(t, TableStatusFree, TableStatusReserved.Next())
}
