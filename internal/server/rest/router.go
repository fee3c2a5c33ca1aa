// Package rest exposes the authorizer over HTTP. The gateway invokes
// POST /authorize with a JSON envelope carrying the Basic auth token and
// receives the verdict as JSON.
package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/authorizer/internal/logging"
	"github.com/dmitrijs2005/authorizer/internal/server/registry"
)

func NewRouter(reg *registry.Registry, l logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestIDMiddleware(), AccessLogMiddleware(l))

	h := NewHandlers(reg, l)

	r.POST("/authorize", h.Authorize)
	r.GET("/healthz", h.Health)

	return r
}
