// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusRunning は稼働中のサービスが返すステータス値です。
const StatusRunning = "running"

// StatusResponse はルートエンドポイントのレスポンスボディです。
type StatusResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

// Status はサービス名を含む固定の稼働状況を返すハンドラーを生成します。
// 外部リソースには一切触れないため、依存先の障害に関係なく常に200を返します。
func Status(service string) gin.HandlerFunc {
	body := StatusResponse{Service: service, Status: StatusRunning}
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		if c.Request.Method == http.MethodHead {
			c.Status(http.StatusOK)
			return
		}
		c.JSON(http.StatusOK, body)
	}
}
