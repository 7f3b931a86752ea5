package models

import (
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Date
		wantErr bool
	}{
		{name: "iso", value: "2024-01-10", want: NewDate(2024, time.January, 10)},
		{name: "day first", value: "10-01-2024", want: NewDate(2024, time.January, 10)},
		{name: "timestamp", value: "2024-01-10 15:04:05", want: NewDate(2024, time.January, 10)},
		{name: "rfc3339", value: "2024-01-10T15:04:05Z", want: NewDate(2024, time.January, 10)},
		{name: "padded", value: "  2024-01-10  ", want: NewDate(2024, time.January, 10)},
		{name: "empty", value: "", wantErr: true},
		{name: "garbage", value: "next tuesday", wantErr: true},
		{name: "impossible day", value: "2024-02-31", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

// A day-first formatted string sorts wrong lexicographically across month and
// year boundaries. Ordering must come from the calendar value.
func TestDateOrderingIsChronological(t *testing.T) {
	dates := []Date{}
	for _, raw := range []string{"05-01-2023", "01-12-2023", "01-01-2024"} {
		d, err := ParseDate(raw)
		assert.NoError(t, err)
		dates = append(dates, d)
	}

	sort.SliceStable(dates, func(i, j int) bool {
		return dates[i].After(dates[j])
	})

	assert.Equal(t, "2024-01-01", dates[0].String())
	assert.Equal(t, "2023-12-01", dates[1].String())
	assert.Equal(t, "2023-01-05", dates[2].String())
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.January, 10)

	encoded, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2024-01-10"`, string(encoded))

	var decoded Date
	assert.NoError(t, json.Unmarshal([]byte(`"10-01-2024"`), &decoded))
	assert.True(t, decoded.Equal(d))

	assert.Error(t, json.Unmarshal([]byte(`"bogus"`), &decoded))
}

func TestDateScan(t *testing.T) {
	var d Date

	assert.NoError(t, d.Scan(time.Date(2024, time.January, 10, 13, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-10", d.String())

	assert.NoError(t, d.Scan([]byte("2024-06-01")))
	assert.Equal(t, "2024-06-01", d.String())

	assert.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
