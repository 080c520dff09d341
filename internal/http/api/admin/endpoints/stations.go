package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aircast-fm/aircast/internal/db"
	"github.com/aircast-fm/aircast/internal/http/api"
	"github.com/aircast-fm/aircast/internal/http/api/admin/packets"
	"github.com/aircast-fm/aircast/internal/model"
)

type StationController struct {
	store db.Store
}

func StationModule(store db.Store) api.Module {
	ctl := &StationController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/stations", ctl.listStations)
		c.GET("/stations/:id", ctl.getStation)
		c.POST("/stations", ctl.createStation)
		c.PUT("/stations/:id", ctl.updateStation)
		c.DELETE("/stations/:id", ctl.deleteStation)
	})
}

// GET /api/admin/stations?locationId=&clientId=&status=
func (t *StationController) listStations(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	var filter db.StationFilter
	if raw := ctx.Query("locationId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid locationId filter"}
		}
		filter.LocationID = &id
	}
	if raw := ctx.Query("clientId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid clientId filter"}
		}
		filter.ClientID = &id
	}
	if raw := ctx.Query("status"); raw != "" {
		if raw != "active" && raw != "inactive" {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid status filter"}
		}
		filter.Status = &raw
	}

	stations, err := t.store.ListStations(filter)
	if err != nil {
		return nil, mapStoreError(err, "stations")
	}
	return stations, nil
}

// GET /api/admin/stations/:id
func (t *StationController) getStation(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	station, err := t.store.GetStationByID(id)
	if err != nil {
		return nil, mapStoreError(err, "station")
	}
	return station, nil
}

// POST /api/admin/stations
func (t *StationController) createStation(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	var request packets.CreateStationRequest
	if apiErr := api.BindJSON(ctx, &request); apiErr != nil {
		return nil, apiErr
	}

	station, err := t.store.CreateStation(db.NewStation{
		Name:          request.Name,
		LocationID:    request.LocationID,
		Website:       optionalString(request.Website),
		Status:        defaultStatus(request.Status),
		OmniplayerURL: optionalString(request.OmniplayerURL),
		ClientID:      request.ClientID,
		ClientSecret:  request.ClientSecret,
		Username:      request.Username,
		Password:      request.Password,
		Prompts:       request.StationPrompts,
	})
	if err != nil {
		return nil, mapStoreError(err, "station")
	}
	return station, nil
}

// PUT /api/admin/stations/:id
func (t *StationController) updateStation(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateStationRequest
	if apiErr := api.BindJSON(ctx, &request); apiErr != nil {
		return nil, apiErr
	}

	station, err := t.store.UpdateStation(id, db.StationUpdate{
		Name:          request.Name,
		LocationID:    request.LocationID,
		Website:       request.Website,
		Status:        request.Status,
		OmniplayerURL: request.OmniplayerURL,
		ClientID:      request.ClientID,
		ClientSecret:  request.ClientSecret,
		Username:      request.Username,
		Password:      request.Password,
		Prompts:       request.StationPrompts,
	})
	if err != nil {
		return nil, mapStoreError(err, "station")
	}
	return station, nil
}

// DELETE /api/admin/stations/:id
func (t *StationController) deleteStation(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := t.store.DeleteStation(id); err != nil {
		return nil, mapStoreError(err, "station")
	}
	return gin.H{"success": true}, nil
}
