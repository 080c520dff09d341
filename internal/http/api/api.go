package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aircast-fm/aircast/internal/http/middleware"
	"github.com/aircast-fm/aircast/internal/model"
)

// APIError is what a handler returns on failure. Fields carries one message
// per invalid field for validation failures and is omitted otherwise.
type APIError struct {
	Code    int
	Message string
	Fields  map[string]string
}

type HandlerFuncWithAuth func(ctx *gin.Context, user *model.User) (any, *APIError)
type HandlerFuncWithClient func(ctx *gin.Context, client *model.Client) (any, *APIError)
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

func renderError(ctx *gin.Context, apiErr *APIError) {
	body := gin.H{"error": apiErr.Message}
	if len(apiErr.Fields) > 0 {
		body["fields"] = apiErr.Fields
	}
	ctx.JSON(apiErr.Code, body)
}

func ResolveEndpointWithAuth(h HandlerFuncWithAuth) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middleware.GetCurrentUser(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		result, apiErr := h(ctx, user)
		if apiErr != nil {
			renderError(ctx, apiErr)
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}

// ResolveEndpointWithClient adapts handlers behind APIKeyMiddleware, which
// resolves the calling client instead of a dashboard user.
func ResolveEndpointWithClient(h HandlerFuncWithClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		client, ok := middleware.GetCurrentClient(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		result, apiErr := h(ctx, client)
		if apiErr != nil {
			renderError(ctx, apiErr)
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}

func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			renderError(ctx, apiErr)
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}
