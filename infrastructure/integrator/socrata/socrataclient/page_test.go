package socrataclient

import (
	"context"
	stdjson "encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/advanced-computing/bouncing-penguin/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(token string) Client {
	cfg := &config.Config{}
	cfg.Socrata.AppToken = token
	return NewClient(cfg)
}

func TestSocrataClient_GetPage_QueryAndDecode(t *testing.T) {
	var received url.Values
	var receivedToken string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.URL.Query()
		receivedToken = r.Header.Get("X-App-Token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"date": "2020-03-01T00:00:00.000", "subways_total_estimated_ridership": "2212965", "buses_pct_of_comparable_pre_pandemic_day": 0.99},
			{"date": "2020-03-02T00:00:00.000", "subways_total_estimated_ridership": null}
		]`))
	}))
	defer server.Close()

	client := newTestClient("secret-token")
	records, err := client.GetPage(context.Background(), PageParams{
		URL:       server.URL + "/resource/vxuj-8kew.json",
		Limit:     50000,
		Offset:    100000,
		Order:     "date",
		Paginated: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "50000", received.Get("$limit"))
	assert.Equal(t, "100000", received.Get("$offset"))
	assert.Equal(t, "date", received.Get("$order"))
	assert.Equal(t, "secret-token", receivedToken)

	require.Len(t, records, 2)
	assert.Equal(t, "2212965", records[0]["subways_total_estimated_ridership"])
	assert.Equal(t, stdjson.Number("0.99"), records[0]["buses_pct_of_comparable_pre_pandemic_day"])
	assert.True(t, records[1].Has("subways_total_estimated_ridership"))
	assert.Nil(t, records[1]["subways_total_estimated_ridership"])
}

func TestSocrataClient_GetPage_SinglePageHasNoOffset(t *testing.T) {
	var received url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient("")
	records, err := client.GetPage(context.Background(), PageParams{
		URL:    server.URL,
		Limit:  50000,
		Order:  "date_of_interest",
		Params: url.Values{"$where": []string{"case_count > 0"}},
	})
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.False(t, received.Has("$offset"))
	assert.Equal(t, "50000", received.Get("$limit"))
	assert.Equal(t, "date_of_interest", received.Get("$order"))
	assert.Equal(t, "case_count > 0", received.Get("$where"))
}

func TestSocrataClient_GetPage_Failures(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		errContains string
	}{
		{
			name:        "api error body",
			status:      http.StatusBadRequest,
			body:        `{"code":"query.soql.no-such-column","error":true,"message":"No such column: dat"}`,
			errContains: "No such column: dat",
		},
		{
			name:        "plain server error",
			status:      http.StatusServiceUnavailable,
			body:        `<html>down</html>`,
			errContains: "503",
		},
		{
			name:        "non json body",
			status:      http.StatusOK,
			body:        `<html>maintenance</html>`,
			errContains: "error decoding page",
		},
		{
			name:        "object instead of array",
			status:      http.StatusOK,
			body:        `{"date":"2020-03-01"}`,
			errContains: "error decoding page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient("")
			records, err := client.GetPage(context.Background(), PageParams{URL: server.URL, Limit: 10, Paginated: true})
			require.Error(t, err)
			assert.Nil(t, records)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestSocrataClient_GetPage_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := newTestClient("")
	_, err := client.GetPage(context.Background(), PageParams{URL: serverURL, Limit: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error executing request")
}
