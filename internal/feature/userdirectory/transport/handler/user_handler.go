// Package handler はuserdirectoryフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ums_backend/internal/feature/userdirectory/domain/entity"
	"ums_backend/internal/feature/userdirectory/transport/http/dto"
)

// UserUsecase はユーザー一覧に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
}

// UserHandler はユーザー一覧に関するHTTPリクエストを処理します。
type UserHandler struct {
	uc UserUsecase
}

// NewUserHandler は新しい UserHandler を作成します。
func NewUserHandler(uc UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List は全ユーザーの一覧を返すAPIです。
// 0件の場合も空配列で200を返します。
// ストアのエラーは詳細を隠して500 Internal Server Errorを返します。
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	out := make([]dto.UserItem, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserItem{ID: u.ID, Username: u.Username, Email: u.Email})
	}
	c.JSON(http.StatusOK, out)
}
