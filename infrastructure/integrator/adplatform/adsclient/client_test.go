package adsclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/negative-keywords-api/internal/config"
)

func newTestClient(serverURL string) Client {
	return NewClient(&config.Config{
		AdPlatform: config.AdPlatform{
			URL:            serverURL,
			CustomerID:     "cust-001",
			AccessToken:    "test-token",
			TimeoutSeconds: 5,
		},
	})
}

func TestAdsClient_GetCampaignByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/cust-001/campaigns/cmp-1002", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Write([]byte(`{"id":"cmp-1002","name":"Search - Running Shoes","status":"ENABLED"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	campaign, err := client.GetCampaignByID("cmp-1002")

	assert.NoError(t, err)
	assert.Equal(t, "cmp-1002", campaign.ID)
	assert.Equal(t, "Search - Running Shoes", campaign.Name)
}

func TestAdsClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name            string
		handler         http.HandlerFunc
		wantUnreachable bool
		wantMessage     string
	}{
		{
			name: "Erro 4xx com envelope da plataforma preserva a mensagem literal",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":{"code":"INVALID_KEYWORD","message":"Keyword text contains forbidden characters"}}`))
			},
			wantUnreachable: false,
			wantMessage:     "Keyword text contains forbidden characters",
		},
		{
			name: "Erro 401 é transitório: a mutação não foi avaliada",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			wantUnreachable: true,
		},
		{
			name: "Erro 5xx é transitório",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantUnreachable: true,
		},
		{
			name: "Erro 4xx sem envelope ainda é definitivo",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte("not found"))
			},
			wantUnreachable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := newTestClient(server.URL)

			err := client.AddCampaignNegativeKeyword("cmp-1002", "free running shoes", "PHRASE")

			assert.Error(t, err)
			assert.Equal(t, tt.wantUnreachable, IsUnreachable(err))
			if tt.wantMessage != "" {
				assert.EqualError(t, err, tt.wantMessage)
			}
		})
	}
}

func TestAdsClient_TransportErrorIsUnreachable(t *testing.T) {
	// Servidor fechado imediatamente: conexão recusada
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)

	err := client.AddCampaignNegativeKeyword("cmp-1002", "free running shoes", "PHRASE")

	assert.Error(t, err)
	assert.True(t, IsUnreachable(err))
}

func TestAdsClient_ListCampaigns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/cust-001/campaigns", r.URL.Path)

		w.Write([]byte(`{"data":[{"id":"cmp-1001","name":"Search - Brand","status":"ENABLED"},{"id":"cmp-1002","name":"Search - Running Shoes","status":"ENABLED"}],"paging":{}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	campaigns, err := client.ListCampaigns()

	assert.NoError(t, err)
	assert.Len(t, campaigns, 2)
	assert.Equal(t, "Search - Brand", campaigns[0].Name)
}
