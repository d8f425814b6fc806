package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
// ログインの検索キーは名（nome）、照合キーはメールアドレスです。
// 書式チェックは行わず、保存済みメールアドレスとの照合のみを行います。
type LoginReq struct {
	Name     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"senha" binding:"required"`
}
