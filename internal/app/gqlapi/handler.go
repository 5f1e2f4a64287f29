package gqlapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/graphql-go"
)

// Request is a GraphQL-over-HTTP request.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// RequestObserver records per-request timing.
type RequestObserver interface {
	ObserveRequest(status string, d time.Duration)
}

// errNoMutations is graphql-go's response to a mutation on a schema without a mutation root.
const errNoMutations = "no mutations are offered by the schema"

// Handler serves Schemas on gin.
type Handler struct {
	schemas *Schemas
	metrics RequestObserver
}

// NewHandler creates a Handler. obs may be nil.
func NewHandler(schemas *Schemas, obs RequestObserver) *Handler {
	return &Handler{schemas: schemas, metrics: obs}
}

// Serve は POST（JSONボディ）と GET（クエリパラメータ）の両方を処理します。
// - リクエスト形式が不正な場合は400を返却
// - GET ではクエリのみ実行し、ミューテーションは405を返却
// - GraphQLエラーはレスポンスの errors に含め、ステータスは200
func (h *Handler) Serve(c *gin.Context) {
	start := time.Now()

	req, ok := bindRequest(c)
	if !ok {
		return
	}

	schema := h.schemas.ReadWrite
	if c.Request.Method == http.MethodGet {
		// URLに認証情報が残らないよう、GETでは書き込みを受け付けない
		schema = h.schemas.ReadOnly
	}

	resp := schema.Exec(c.Request.Context(), req.Query, req.OperationName, req.Variables)
	if c.Request.Method == http.MethodGet && isMutationRefused(resp) {
		slog.Warn("graphql mutation over GET rejected", "remote_addr", c.ClientIP())
		c.Header("Allow", http.MethodPost)
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "mutations require POST"})
		return
	}

	status := "ok"
	if len(resp.Errors) > 0 {
		status = "error"
		slog.DebugContext(c.Request.Context(), "graphql errors", "operation", req.OperationName, "errors", resp.Errors)
	}
	if h.metrics != nil {
		h.metrics.ObserveRequest(status, time.Since(start))
	}

	c.JSON(http.StatusOK, resp)
}

func isMutationRefused(resp *graphql.Response) bool {
	for _, e := range resp.Errors {
		if e.Message == errNoMutations {
			return true
		}
	}
	return false
}

func bindRequest(c *gin.Context) (Request, bool) {
	var req Request
	switch c.Request.Method {
	case http.MethodGet:
		req.Query = c.Query("query")
		req.OperationName = c.Query("operationName")
		if v := c.Query("variables"); v != "" {
			if err := json.Unmarshal([]byte(v), &req.Variables); err != nil {
				slog.Warn("graphql request rejected", "error", err, "remote_addr", c.ClientIP())
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid variables"})
				return req, false
			}
		}
	default:
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.Warn("graphql request rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return req, false
		}
	}
	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query"})
		return req, false
	}
	return req, true
}
