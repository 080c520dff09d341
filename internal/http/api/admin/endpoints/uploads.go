package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aircast-fm/aircast/internal/http/api"
	"github.com/aircast-fm/aircast/internal/http/api/admin/packets"
	"github.com/aircast-fm/aircast/internal/model"
	"github.com/aircast-fm/aircast/internal/storage"
)

type UploadController struct {
	storage storage.Storage
}

// UploadModule mounts the logo/image upload endpoint. The returned URL is
// what dashboards store in Client.logo.
func UploadModule(storageSystem storage.Storage) api.Module {
	ctl := &UploadController{storage: storageSystem}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/uploads", ctl.uploadFile)
	})
}

// POST /api/admin/uploads
func (t *UploadController) uploadFile(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "missing file field"}
	}

	url, err := t.storage.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("failed to save upload")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save file"}
	}

	return packets.UploadResponse{URL: url}, nil
}
