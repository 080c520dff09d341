package endpoints_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aircast-fm/aircast/internal/db"
	"github.com/aircast-fm/aircast/internal/http/api"
	"github.com/aircast-fm/aircast/internal/http/api/station/endpoints"
	"github.com/aircast-fm/aircast/internal/http/middleware"
	"github.com/aircast-fm/aircast/internal/model"
)

type feedStore struct {
	db.Store
	clients  map[string]model.Client
	stations []model.Station
}

func (s *feedStore) GetClientByAPIKey(apiKey string) (model.Client, error) {
	c, ok := s.clients[apiKey]
	if !ok {
		return model.Client{}, db.ErrNotFound
	}
	return c, nil
}

func (s *feedStore) ListStations(filter db.StationFilter) ([]model.Station, error) {
	out := []model.Station{}
	for _, st := range s.stations {
		if filter.ClientID != nil && st.ClientID != *filter.ClientID {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}

func feedTestRouter(store db.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{
		Prefix:     "/api/station",
		Middleware: []gin.HandlerFunc{middleware.APIKeyMiddleware(store)},
	}, endpoints.PromptFeedModule(store))
	return r
}

func TestPromptFeedScopedToClient(t *testing.T) {
	system := "You are a cheerful radio host."
	store := &feedStore{
		clients: map[string]model.Client{
			"key-one": {ID: 1, Name: "Radio Group", Status: "active"},
		},
		stations: []model.Station{
			{ID: 10, Name: "Radio Demo", ClientID: 1, StationPrompts: model.StationPrompts{SystemPrompt: &system}},
			{ID: 20, Name: "Other Station", ClientID: 2},
		},
	}
	r := feedTestRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/station/prompts", nil)
	req.Header.Set("X-API-Key", "key-one")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var feed []model.StationPromptSet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed, 1, "only the key owner's stations are exposed")
	assert.Equal(t, 10, feed[0].ID)
	require.NotNil(t, feed[0].SystemPrompt)
	assert.Equal(t, system, *feed[0].SystemPrompt)
}

func TestPromptFeedRejectsMissingKey(t *testing.T) {
	r := feedTestRouter(&feedStore{clients: map[string]model.Client{}})

	req := httptest.NewRequest(http.MethodGet, "/api/station/prompts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
