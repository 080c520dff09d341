package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aircast-fm/aircast/internal/db"
	"github.com/aircast-fm/aircast/internal/http/api"
	"github.com/aircast-fm/aircast/internal/http/api/admin/packets"
	"github.com/aircast-fm/aircast/internal/model"
)

type LocationController struct {
	store db.Store
}

func LocationModule(store db.Store) api.Module {
	ctl := &LocationController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/locations", ctl.listLocations)
		c.GET("/locations/:id", ctl.getLocation)
		c.POST("/locations", ctl.createLocation)
		c.PUT("/locations/:id", ctl.updateLocation)
		c.DELETE("/locations/:id", ctl.deleteLocation)
	})
}

// GET /api/admin/locations
func (t *LocationController) listLocations(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	locations, err := t.store.ListLocations()
	if err != nil {
		return nil, mapStoreError(err, "locations")
	}
	return locations, nil
}

// GET /api/admin/locations/:id
func (t *LocationController) getLocation(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	location, err := t.store.GetLocationByID(id)
	if err != nil {
		return nil, mapStoreError(err, "location")
	}
	return location, nil
}

// POST /api/admin/locations
func (t *LocationController) createLocation(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	var request packets.CreateLocationRequest
	if apiErr := api.BindJSON(ctx, &request); apiErr != nil {
		return nil, apiErr
	}

	location, err := t.store.CreateLocation(
		request.Name, request.Code, request.Country, request.City, request.Timezone)
	if err != nil {
		return nil, mapStoreError(err, "location")
	}
	return location, nil
}

// PUT /api/admin/locations/:id
func (t *LocationController) updateLocation(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateLocationRequest
	if apiErr := api.BindJSON(ctx, &request); apiErr != nil {
		return nil, apiErr
	}

	location, err := t.store.UpdateLocation(id,
		request.Name, request.Code, request.Country, request.City, request.Timezone)
	if err != nil {
		return nil, mapStoreError(err, "location")
	}
	return location, nil
}

// DELETE /api/admin/locations/:id
func (t *LocationController) deleteLocation(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	location, err := t.store.GetLocationByID(id)
	if err != nil {
		return nil, mapStoreError(err, "location")
	}

	if err := t.store.DeleteLocation(id); err != nil {
		if apiErr := mapStoreError(err, "location"); apiErr.Code != http.StatusBadRequest {
			return nil, apiErr
		}
		// FK restrict: stations still reference this location
		return nil, &api.APIError{Code: http.StatusConflict, Message: "location still has stations"}
	}
	return location, nil
}
