package endpoints

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aircast-fm/aircast/internal/db"
	"github.com/aircast-fm/aircast/internal/http/api"
	"github.com/aircast-fm/aircast/internal/http/api/admin/packets"
	"github.com/aircast-fm/aircast/internal/model"
	"github.com/aircast-fm/aircast/internal/redis"
)

const apiKeyBytes = 32

type ClientController struct {
	store db.Store
}

// ClientModule mounts the client CRUD endpoints plus API-key issuance.
func ClientModule(store db.Store) api.Module {
	ctl := &ClientController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/clients", ctl.listClients)
		c.GET("/clients/:id", ctl.getClient)
		c.POST("/clients", ctl.createClient)
		c.PUT("/clients/:id", ctl.updateClient)
		c.DELETE("/clients/:id", ctl.deleteClient)
		c.POST("/clients/:id/generate-key", ctl.generateKey)
	})
}

// GET /api/admin/clients
func (t *ClientController) listClients(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	clients, err := t.store.ListClients()
	if err != nil {
		return nil, mapStoreError(err, "clients")
	}
	return clients, nil
}

// GET /api/admin/clients/:id
func (t *ClientController) getClient(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	client, err := t.store.GetClientByID(id)
	if err != nil {
		return nil, mapStoreError(err, "client")
	}
	return client, nil
}

// POST /api/admin/clients
func (t *ClientController) createClient(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	var request packets.CreateClientRequest
	if apiErr := api.BindJSON(ctx, &request); apiErr != nil {
		return nil, apiErr
	}

	client, err := t.store.CreateClient(
		request.Name, request.Email, request.Company,
		optionalString(request.Website), optionalString(request.Logo),
		defaultStatus(request.Status))
	if err != nil {
		return nil, mapStoreError(err, "client")
	}
	return client, nil
}

// PUT /api/admin/clients/:id
func (t *ClientController) updateClient(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateClientRequest
	if apiErr := api.BindJSON(ctx, &request); apiErr != nil {
		return nil, apiErr
	}

	client, err := t.store.UpdateClient(id,
		request.Name, request.Email, request.Company,
		request.Website, request.Logo, request.Status)
	if err != nil {
		return nil, mapStoreError(err, "client")
	}
	return client, nil
}

// DELETE /api/admin/clients/:id
func (t *ClientController) deleteClient(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := t.store.DeleteClient(id); err != nil {
		if apiErr := mapStoreError(err, "client"); apiErr.Code != http.StatusBadRequest {
			return nil, apiErr
		}
		// FK restrict: stations still reference this client
		return nil, &api.APIError{Code: http.StatusConflict, Message: "client still has stations"}
	}
	return gin.H{"success": true}, nil
}

// POST /api/admin/clients/:id/generate-key
//
// Issues a fresh random key, fully replacing the previous one. The old key
// stops working immediately; there is no rotation window.
func (t *ClientController) generateKey(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	// fetched first so the stale cache entry can be dropped below
	existing, err := t.store.GetClientByID(id)
	if err != nil {
		return nil, mapStoreError(err, "client")
	}

	key, err := generateAPIKey()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate api key")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate api key"}
	}

	updated, err := t.store.SetClientAPIKey(id, key, time.Now())
	if err != nil {
		return nil, mapStoreError(err, "client")
	}

	if existing.APIKey != nil {
		redis.Del(ctx, "apikey:"+*existing.APIKey)
	}

	return packets.GenerateKeyResponse{
		APIKey:        key,
		LastGenerated: *updated.APIKeyLastGenerated,
	}, nil
}

func generateAPIKey() (string, error) {
	buf := make([]byte, apiKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
