// Package dto はaccountsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
// JSONフィールド名は元のAPI仕様に合わせてポルトガル語です。
package dto

// RegisterReq は/registerエンドポイントのリクエストボディを表します。
// 全フィールド必須とメール形式のバリデーションを含みます。
type RegisterReq struct {
	FirstName string `json:"nome" binding:"required"`
	LastName  string `json:"sobrenome" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"senha" binding:"required"`
}
