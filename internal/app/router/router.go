package router

import (
	accounthandler "account_backend/internal/feature/accounts/transport/handler"
	platformhandler "account_backend/internal/platform/http/handler"
	jwtmw "account_backend/internal/platform/jwt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(accounts *accounthandler.AccountHandler, verifier jwtmw.Verifier) *gin.Engine {
	r := gin.Default()
	// CORS のデフォルト設定を有効
	r.Use(cors.Default())

	// 認証不要
	// 公開ルート
	r.GET("/", platformhandler.Welcome)
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// 新規ユーザー登録
	r.POST("/register", accounts.Register)
	// ログイン（トークン発行）
	r.POST("/login", accounts.Login)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーにBearerトークンが必要になる
	auth.Use(jwtmw.AuthRequired(verifier))
	{
		auth.GET("/user", accounts.Profile)
		auth.DELETE("/delete", accounts.Delete)
	}

	return r
}
