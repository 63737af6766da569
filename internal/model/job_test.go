package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantZero bool
		wantDate string
	}{
		{
			name:     "valid date",
			input:    `"2025-03-14"`,
			wantDate: "2025-03-14",
		},
		{
			name:     "null",
			input:    `null`,
			wantZero: true,
		},
		{
			name:     "empty string",
			input:    `""`,
			wantZero: true,
		},
		{
			name:     "malformed date degrades to zero",
			input:    `"03/14/2025"`,
			wantZero: true,
		},
		{
			name:     "garbage degrades to zero",
			input:    `"not a date"`,
			wantZero: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			require.NoError(t, err)

			if tt.wantZero {
				assert.True(t, d.IsZero())
				return
			}
			assert.Equal(t, tt.wantDate, d.Format("2006-01-02"))
		})
	}
}

func TestDate_LocalMidnight(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-14"`), &d))

	parsed := d.Time()
	assert.Equal(t, time.Local, parsed.Location())
	assert.Equal(t, 0, parsed.Hour())
}

func TestJob_ClassificationSource(t *testing.T) {
	tests := []struct {
		name string
		job  Job
		want string
	}{
		{
			name: "service_type wins over title",
			job:  Job{Title: "Smith residence", ServiceType: "Deep Clean"},
			want: "Deep Clean",
		},
		{
			name: "title used when service_type absent",
			job:  Job{Title: "Airbnb Turnover - Lakeview"},
			want: "Airbnb Turnover - Lakeview",
		},
		{
			name: "both absent yields empty",
			job:  Job{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.job.ClassificationSource())
		})
	}
}

func TestJob_DecodeOptionalFields(t *testing.T) {
	raw := `{"date":"2025-03-14","client":"Smith Family","start":"09:00"}`

	var job Job
	require.NoError(t, json.Unmarshal([]byte(raw), &job))

	assert.Equal(t, "Smith Family", job.Client)
	assert.Equal(t, "09:00", job.Start)
	assert.Empty(t, job.Title)
	assert.Empty(t, job.Notes)
	assert.Equal(t, "09:00", job.TimeRange())
	assert.False(t, job.Date.IsZero())
}

func TestParseWindowMode(t *testing.T) {
	tests := []struct {
		input   string
		want    WindowMode
		wantErr bool
	}{
		{input: "today", want: WindowToday},
		{input: "week", want: WindowThisWeek},
		{input: "this-week", want: WindowThisWeek},
		{input: "all", want: WindowAll},
		{input: "yesterday", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWindowMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
