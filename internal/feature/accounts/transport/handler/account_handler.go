// Package handler はaccountsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"account_backend/internal/feature/accounts/domain/entity"
	"account_backend/internal/feature/accounts/transport/http/dto"
	"account_backend/internal/feature/accounts/usecase"
	jwtmw "account_backend/internal/platform/jwt"
)

// AccountUsecase はアカウント操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AccountUsecase interface {
	// Register は指定されたプロフィールとパスワードで新規ユーザーを登録します。
	Register(ctx context.Context, firstName, lastName, email, password string) error
	// Login はユーザーを認証し、成功時に署名済みトークンを返します。
	Login(ctx context.Context, name, email, password string) (string, error)
	// GetProfile は指定されたIDのユーザーを取得します。
	GetProfile(ctx context.Context, id string) (*entity.User, error)
	// DeleteAccount は指定されたIDのユーザーを削除します。
	DeleteAccount(ctx context.Context, id string) error
}

// AccountHandler はアカウント操作のHTTPリクエストを処理します。
// AccountUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AccountHandler struct {
	accounts AccountUsecase
}

// NewAccountHandler はAccountHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAccountUsecaseを注入します。
func NewAccountHandler(accounts AccountUsecase) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// bindErrorMessage はバインドエラーをクライアント向けメッセージへ変換します。
// メール形式エラーのみ区別し、それ以外は必須フィールド不足として扱います。
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "email" {
				return "invalid email"
			}
		}
		return "all fields are required"
	}
	return "invalid request body"
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - バリデーションエラー時は422を返却
// - メールアドレス重複時は422を返却
// - 成功時は201を返却（作成されたレコードは返さない）
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, dto.MessageResp{Msg: bindErrorMessage(err)})
		return
	}

	if err := h.accounts.Register(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password); err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register rejected: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnprocessableEntity, dto.MessageResp{Msg: "user already exists, use another email"})
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.MessageResp{Msg: "server error, try again later"})
		return
	}

	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.MessageResp{Msg: "user created successfully"})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は422を返却
// - 名に一致するユーザーが存在しない場合は404を返却
// - メール不一致・パスワード不一致時は422を返却
// - 認証成功時はトークン付きで200を返却
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, dto.MessageResp{Msg: bindErrorMessage(err)})
		return
	}

	token, err := h.accounts.Login(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			slog.Warn("login rejected: user not found", "name", req.Name, "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, dto.MessageResp{Msg: "user not found"})
		case errors.Is(err, usecase.ErrEmailMismatch):
			slog.Warn("login rejected: email mismatch", "name", req.Name, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnprocessableEntity, dto.MessageResp{Msg: "invalid email"})
		case errors.Is(err, usecase.ErrInvalidPassword):
			slog.Warn("login rejected: invalid password", "name", req.Name, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnprocessableEntity, dto.MessageResp{Msg: "invalid password"})
		default:
			slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.MessageResp{Msg: "server error, try again later"})
		}
		return
	}

	slog.Info("user login successful", "name", req.Name, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginResp{Msg: "authentication successful", Token: token})
}

// Profile は認証済みユーザーの情報取得APIエンドポイントを処理します。
// 認可ミドルウェアが設定したユーザーIDで検索し、パスワードハッシュを
// 除外したユーザー情報を返します。
func (h *AccountHandler) Profile(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)

	user, err := h.accounts.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResp{Msg: "user not found"})
			return
		}
		slog.Error("profile lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.MessageResp{Msg: "failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResp(user))
}

// Delete は認証済みユーザーのアカウント削除APIエンドポイントを処理します。
// 対象が既に存在しない場合は404を返します。
func (h *AccountHandler) Delete(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)

	if err := h.accounts.DeleteAccount(c.Request.Context(), userID); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResp{Msg: "user not found"})
			return
		}
		slog.Error("account deletion failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.MessageResp{Msg: "server error, try again later"})
		return
	}

	slog.Info("user deleted", "user_id", userID)
	c.JSON(http.StatusOK, dto.MessageResp{Msg: "user deleted successfully"})
}
