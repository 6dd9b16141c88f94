package prayer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchTimings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.NotEmpty(t, r.URL.Query().Get("latitude"))
		assert.NotEmpty(t, r.URL.Query().Get("longitude"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"timings":{
			"Fajr":"04:45","Dhuhr":"13:05","Asr":"17:30","Maghrib":"20:12","Isha":"21:45","Sunrise":"05:59"
		}}}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	timings, err := client.FetchTimings(context.Background(), 51.5175, -0.0649)
	assert.NoError(t, err)
	assert.Equal(t, Timings{
		Fajr:    "04:45",
		Dhuhr:   "13:05",
		Asr:     "17:30",
		Maghrib: "20:12",
		Isha:    "21:45",
	}, timings)
}

func TestFetchTimingsRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	_, err := client.FetchTimings(context.Background(), 0, 0)
	assert.Error(t, err)
}

func TestFetchTimingsRejectsEmptyTimings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"timings":{}}}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	_, err := client.FetchTimings(context.Background(), 0, 0)
	assert.Error(t, err)
}
