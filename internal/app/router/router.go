package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/app/gqlapi"
	jwtmw "blog_backend/internal/platform/jwt"
	"blog_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine for the API.
// metrics may be nil, in which case /metrics is not mounted.
func NewRouter(gql *gqlapi.Handler, verifier jwtmw.Verifier, health *handler.HealthHandler, metrics http.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", health.Live)
	r.HEAD("/healthz", health.Live)
	r.GET("/readyz", health.Ready)
	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics))
	}

	// GraphQL
	// トークンの有無にかかわらず通過し、検証できた場合のみ identity をコンテキストに載せる
	api := r.Group("/")
	api.Use(jwtmw.Authenticate(verifier))
	{
		api.POST("/graphql", gql.Serve)
		api.GET("/graphql", gql.Serve)
	}

	return r
}
