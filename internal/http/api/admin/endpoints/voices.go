package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/aircast-fm/aircast/internal/db"
	"github.com/aircast-fm/aircast/internal/http/api"
	"github.com/aircast-fm/aircast/internal/http/api/admin/packets"
	"github.com/aircast-fm/aircast/internal/model"
)

type VoiceController struct {
	store db.Store
}

func VoiceModule(store db.Store) api.Module {
	ctl := &VoiceController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/voices", ctl.listVoices)
		c.GET("/voices/:id", ctl.getVoice)
		c.POST("/voices", ctl.createVoice)
		c.PUT("/voices/:id", ctl.updateVoice)
		c.DELETE("/voices/:id", ctl.deleteVoice)
	})
}

// GET /api/admin/voices
func (t *VoiceController) listVoices(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	voices, err := t.store.ListVoices()
	if err != nil {
		return nil, mapStoreError(err, "voices")
	}
	return voices, nil
}

// GET /api/admin/voices/:id
func (t *VoiceController) getVoice(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	voice, err := t.store.GetVoiceByID(id)
	if err != nil {
		return nil, mapStoreError(err, "voice")
	}
	return voice, nil
}

// POST /api/admin/voices
func (t *VoiceController) createVoice(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	var request packets.CreateVoiceRequest
	if apiErr := api.BindJSON(ctx, &request); apiErr != nil {
		return nil, apiErr
	}

	voice, err := t.store.CreateVoice(db.NewVoice{
		Name:     request.Name,
		VoiceID:  request.VoiceID,
		Gender:   request.Gender,
		Language: request.Language,
		Accent:   request.Accent,
		Age:      request.Age,
		Category: request.Category,
		Country:  request.Country,
		Status:   defaultStatus(request.Status),
	})
	if err != nil {
		return nil, mapStoreError(err, "voice")
	}
	return voice, nil
}

// PUT /api/admin/voices/:id
func (t *VoiceController) updateVoice(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateVoiceRequest
	if apiErr := api.BindJSON(ctx, &request); apiErr != nil {
		return nil, apiErr
	}

	voice, err := t.store.UpdateVoice(id, db.VoiceUpdate{
		Name:     request.Name,
		VoiceID:  request.VoiceID,
		Gender:   request.Gender,
		Language: request.Language,
		Accent:   request.Accent,
		Age:      request.Age,
		Category: request.Category,
		Country:  request.Country,
		Status:   request.Status,
	})
	if err != nil {
		return nil, mapStoreError(err, "voice")
	}
	return voice, nil
}

// DELETE /api/admin/voices/:id
func (t *VoiceController) deleteVoice(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := t.store.DeleteVoice(id); err != nil {
		return nil, mapStoreError(err, "voice")
	}
	return gin.H{"success": true}, nil
}
