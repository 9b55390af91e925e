package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billettlyst/config"
	"billettlyst/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.ContentSettings{BaseURL: server.URL})
}

func TestQueryEncodesDollarParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `*[_type == "user" && name == $username][0]`, r.URL.Query().Get("query"))
		// Params travel JSON-encoded, so strings keep their quotes.
		assert.Equal(t, `"Ola Nordmann"`, r.URL.Query().Get("$username"))

		w.Write([]byte(`{"result": {"name": "Ola Nordmann", "email": "ola@example.com"}}`))
	})

	var user models.UserProfile
	err := client.Query(context.Background(),
		`*[_type == "user" && name == $username][0]`,
		map[string]string{"username": "Ola Nordmann"},
		&user)
	require.NoError(t, err)
	assert.Equal(t, "Ola Nordmann", user.Name)
	assert.Equal(t, "ola@example.com", user.Email)
}

func TestQueryNullResultLeavesOutUntouched(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": null}`))
	})

	var user models.UserProfile
	err := client.Query(context.Background(), `*[_id == $id][0]`, map[string]string{"id": "missing"}, &user)
	require.NoError(t, err)
	assert.Equal(t, models.UserProfile{}, user)
}

func TestQuerySurfacesServerErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "query parse error", http.StatusBadRequest)
	})

	err := client.Query(context.Background(), `*[`, nil, &struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestNewClientDerivesBaseURL(t *testing.T) {
	client := NewClient(config.ContentSettings{
		ProjectID:  "abc123",
		Dataset:    "production",
		APIVersion: "2023-08-01",
	})
	assert.Equal(t, "https://abc123.api.sanity.io/v2023-08-01/data/query/production", client.baseURL)
}
