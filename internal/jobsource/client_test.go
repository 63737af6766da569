package jobsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sudsywork/sudsy/internal/service"
)

func fastRetries() service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestClient_FetchJobs(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		status    int
		wantCount int
		wantErr   bool
	}{
		{
			name:      "happy path",
			status:    http.StatusOK,
			body:      `{"events":[{"date":"2025-03-12","title":"Airbnb Turnover","client":"Host A"},{"date":"2025-03-13","title":"Deep Clean"}]}`,
			wantCount: 2,
		},
		{
			name:      "empty events array",
			status:    http.StatusOK,
			body:      `{"events":[]}`,
			wantCount: 0,
		},
		{
			name:      "absent events field degrades to empty",
			status:    http.StatusOK,
			body:      `{}`,
			wantCount: 0,
		},
		{
			name:      "malformed body degrades to empty",
			status:    http.StatusOK,
			body:      `{"events": "oops`,
			wantCount: 0,
		},
		{
			name:    "client error is not retried and fails",
			status:  http.StatusNotFound,
			body:    `not found`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/jobs", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, WithRetryOptions(fastRetries()))
			jobs, err := client.FetchJobs(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, jobs, tt.wantCount)
		})
	}
}

func TestClient_FetchJobs_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"events":[{"date":"2025-03-12","title":"Standard Clean"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithRetryOptions(fastRetries()))
	jobs, err := client.FetchJobs(context.Background())

	require.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_FetchJobs_ExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithRetryOptions(fastRetries()))
	_, err := client.FetchJobs(context.Background())

	require.Error(t, err)
}

func TestClient_FetchOrEmpty_DegradesOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	srv.Close() // unreachable server

	client := NewClient(srv.URL, WithRetryOptions(fastRetries()))
	jobs := client.FetchOrEmpty(context.Background())

	assert.Empty(t, jobs)
}

func TestClient_FetchJobs_DecodesOptionalFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"events":[{"id":"j1","date":"2025-03-12","start":"09:00","end":"12:00","client":"Smith Family","address":"42 Lakeview Dr","service_type":"Move Out Clean","notes":"keys in lockbox"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithRetryOptions(fastRetries()))
	jobs, err := client.FetchJobs(context.Background())

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	job := jobs[0]
	assert.Equal(t, "j1", job.ID)
	assert.Equal(t, "Smith Family", job.Client)
	assert.Equal(t, "Move Out Clean", job.ServiceType)
	assert.Equal(t, "2025-03-12", job.Date.Format("2006-01-02"))
	assert.Equal(t, "09:00 - 12:00", job.TimeRange())
}
