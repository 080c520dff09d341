package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aircast-fm/aircast/internal/db"
	"github.com/aircast-fm/aircast/internal/http/api"
	"github.com/aircast-fm/aircast/internal/model"
)

type FeedController struct {
	store db.Store
}

// PromptFeedModule mounts the station-facing prompt feed. Requests carry the
// owning client's API key; the feed only ever exposes that client's stations.
func PromptFeedModule(store db.Store) api.Module {
	ctl := &FeedController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.CLIENT_GET("/prompts", ctl.listClientPrompts)
	})
}

// GET /api/station/prompts
func (t *FeedController) listClientPrompts(ctx *gin.Context, client *model.Client) (any, *api.APIError) {
	stations, err := t.store.ListStations(db.StationFilter{ClientID: &client.ID})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load prompts"}
	}

	out := make([]model.StationPromptSet, 0, len(stations))
	for _, s := range stations {
		out = append(out, model.StationPromptSet{ID: s.ID, StationPrompts: s.StationPrompts})
	}
	return out, nil
}
