package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "ums_backend/internal/feature/auth/transport/handler"
	userhandler "ums_backend/internal/feature/userdirectory/transport/handler"
	platformhandler "ums_backend/internal/platform/http/handler"
)

const (
	// AuthServiceName is reported by the auth-service status probe.
	AuthServiceName = "auth-service"
	// UserServiceName is reported by the user-service status probe.
	UserServiceName = "user-service"
)

// newEngine はすべてのサービスで共通のミドルウェアを設定したエンジンを生成します。
func newEngine(service string) *gin.Engine {
	r := gin.Default()

	// 全オリジンからのクロスオリジンリクエストを許可
	r.Use(cors.Default())

	// 導通確認用
	status := platformhandler.Status(service)
	r.GET("/", status)
	r.HEAD("/", status)

	return r
}

// NewAuthRouter はauth-serviceのルーターを生成します。
func NewAuthRouter(auth *authhandler.AuthHandler) *gin.Engine {
	r := newEngine(AuthServiceName)

	// ログイン（資格情報の照合のみ。トークンは発行しない）
	r.POST("/login", auth.Login)

	return r
}

// NewUserRouter はuser-serviceのルーターを生成します。
func NewUserRouter(users *userhandler.UserHandler) *gin.Engine {
	r := newEngine(UserServiceName)

	// ユーザー一覧（読み取り専用）
	r.GET("/users", users.List)

	return r
}
