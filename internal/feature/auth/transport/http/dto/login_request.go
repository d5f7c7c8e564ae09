// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
// 省略されたフィールドは空文字列となり、認証失敗として扱われます。
type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRes は認証成功時のレスポンスボディです。
type LoginRes struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

// ErrorRes はエラー時のレスポンスボディです。
type ErrorRes struct {
	Error string `json:"error"`
}
