package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/2001Hector/api-movil/internal/apierror"
	"github.com/2001Hector/api-movil/internal/envelope"

	"github.com/gin-gonic/gin"
)

// respond writes the success envelope and ends the request — nothing may
// write to the response after this.
func respond(c *gin.Context, data any) {
	c.AbortWithStatusJSON(http.StatusOK, envelope.Success(data))
}

// respondError maps a service error to the failure envelope. Unknown
// error types land on 500 so the process never leaks a raw failure.
func respondError(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) {
		apiErr = apierror.Internal("Error interno: " + err.Error())
	}
	c.AbortWithStatusJSON(apiErr.Status, envelope.Failure(apiErr.Message))
}

// RouteNotFound answers any unmatched route. The /api prefix is stripped
// from the reported path, matching what the client sends under either
// mount.
func RouteNotFound(c *gin.Context) {
	path := strings.TrimPrefix(c.Request.URL.Path, "/api")
	c.AbortWithStatusJSON(http.StatusNotFound, envelope.Failure("Ruta no encontrada: "+path))
}

// bindInput decodes the JSON body into a key-presence-preserving map.
// A malformed or empty body reads as no fields at all, which the required
// -field check then reports — the legacy contract, kept for the client.
func bindInput(c *gin.Context) map[string]any {
	input := map[string]any{}
	if err := c.ShouldBindJSON(&input); err != nil {
		return map[string]any{}
	}
	return input
}

// parseID accepts only unsigned integer literals. Anything else means the
// URL never matched a real route, so it reports route-not-found rather
// than a record-level 404.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil {
		RouteNotFound(c)
		return 0, false
	}
	return int64(id), true
}

// requestOrigin rebuilds the scheme+host the client reached us on, for
// image URL resolution.
func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
