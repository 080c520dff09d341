package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aircast-fm/aircast/internal/db"
	"github.com/aircast-fm/aircast/internal/http/api"
	"github.com/aircast-fm/aircast/internal/http/api/admin/packets"
	"github.com/aircast-fm/aircast/internal/model"
	"github.com/aircast-fm/aircast/internal/notify"
)

type PromptController struct {
	store     db.Store
	publisher notify.Publisher
}

// PromptModule mounts the prompts-only station view. Successful updates are
// fanned out to the station's playout integration via the publisher.
func PromptModule(store db.Store, publisher notify.Publisher) api.Module {
	ctl := &PromptController{store: store, publisher: publisher}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/prompts", ctl.listPrompts)
		c.PUT("/prompts", ctl.updatePrompts)
	})
}

// GET /api/admin/prompts?stationId=
func (t *PromptController) listPrompts(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	var stationID *int
	if raw := ctx.Query("stationId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid stationId"}
		}
		stationID = &id
	}

	prompts, err := t.store.ListStationPrompts(stationID)
	if err != nil {
		return nil, mapStoreError(err, "prompts")
	}
	return prompts, nil
}

// PUT /api/admin/prompts
func (t *PromptController) updatePrompts(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	var request packets.UpdatePromptsRequest
	if apiErr := api.BindJSON(ctx, &request); apiErr != nil {
		return nil, apiErr
	}

	prompts, err := t.store.UpdateStationPrompts(request.ID, request.StationPrompts)
	if err != nil {
		return nil, mapStoreError(err, "station")
	}

	if err := t.publisher.PromptsUpdated(prompts.ID, prompts); err != nil {
		// fanout is best-effort; the row is already persisted
		log.Error().Err(err).Int("station_id", prompts.ID).Msg("failed to publish prompt update")
	}

	return prompts, nil
}
