package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sudsywork/sudsy/internal/model"
	"github.com/sudsywork/sudsy/internal/service"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "service account path suffices",
			config: Config{ServiceAccountPath: "/path/to/key.json"},
		},
		{
			name: "complete oauth credentials suffice",
			config: Config{
				ClientID:     "id",
				ClientSecret: "secret",
				RefreshToken: "token",
			},
		},
		{
			name: "partial oauth credentials fail",
			config: Config{
				ClientID: "id",
			},
			wantErr: true,
		},
		{
			name:    "no auth fails",
			config:  Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfig_ValidateFillsDefaults(t *testing.T) {
	config := Config{ServiceAccountPath: "/path/to/key.json"}
	require.NoError(t, config.Validate())

	assert.Equal(t, "Cleaning Schedule", config.SpreadsheetName)
	assert.Equal(t, 500, config.BatchSize)
}

func TestBuildScheduleValues(t *testing.T) {
	day := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local)
	rows := []service.ScheduleRow{
		{
			Job: model.Job{
				Date:    model.Date(day),
				Start:   "09:00",
				End:     "12:00",
				Client:  "Host A",
				Address: "42 Lakeview Dr",
			},
			Tag:            model.TagAirbnbTurnover,
			ChecklistItems: 24,
		},
		{
			Job: model.Job{
				Date:   model.Date(day),
				Client: "Smith Family",
			},
			Tag:            model.TagStandard,
			ChecklistItems: 19,
		},
	}

	values := BuildScheduleValues(rows, time.Date(2025, time.March, 12, 8, 0, 0, 0, time.Local))

	// Title, blank, summary header, two tag counts, blank, column header,
	// then one line per job.
	require.Len(t, values, 9)
	assert.Equal(t, "Cleaning Schedule", values[0][0])
	assert.Equal(t, []any{"Airbnb Turnover", 1}, values[3])
	assert.Equal(t, []any{"Standard Clean", 1}, values[4])

	jobRow := values[7]
	assert.Equal(t, "2025-03-12", jobRow[0])
	assert.Equal(t, "09:00 - 12:00", jobRow[1])
	assert.Equal(t, "Host A", jobRow[2])
	assert.Equal(t, 24, jobRow[5])
}
