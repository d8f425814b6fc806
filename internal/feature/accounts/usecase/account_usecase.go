// Package usecase はaccountsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"account_backend/internal/feature/accounts/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByName は指定された名（FirstName）に一致する最初のユーザーを取得します。
	// 名はユニークではないため、複数存在する場合は最初の1件を返します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByName(ctx context.Context, name string) (*entity.User, error)

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Delete は指定されたIDのユーザーを削除します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	Delete(ctx context.Context, id string) error
}

// Hasher はパスワードのハッシュ化と検証のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/hasher）ではなくコンシューマー（usecase）が定義します。
type Hasher interface {
	// Hash は平文パスワードからソルト付きハッシュを生成します。
	Hash(plaintext string) (string, error)
	// Verify は平文パスワードと保存済みハッシュを比較します。
	// ハッシュが不正な形式の場合もfalseを返します。
	Verify(plaintext, hash string) bool
}

// TokenIssuer は署名付きトークン発行のインターフェースを定義します。
type TokenIssuer interface {
	// Issue は指定されたユーザーIDを埋め込んだ署名済みトークンを発行します。
	Issue(userID string) (string, error)
}

// accountUsecase はアカウント管理のビジネスロジックを実装します。
type accountUsecase struct {
	users  UserRepository
	hasher Hasher
	tokens TokenIssuer
}

// NewAccountUsecase はaccountUsecaseの新しいインスタンスを生成します。
func NewAccountUsecase(users UserRepository, hasher Hasher, tokens TokenIssuer) *accountUsecase {
	return &accountUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録します。
// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
// 事前の存在チェックはアトミックではないため、最終的な一意性はストレージ層の
// ユニーク制約が保証します（adapters側で制約違反をErrEmailAlreadyExistsへ変換）。
func (u *accountUsecase) Register(ctx context.Context, firstName, lastName, email, password string) error {
	// メールアドレスの重複チェック
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hashed,
	}
	return u.users.Create(ctx, user)
}

// Login はユーザーを認証し、成功時に署名済みトークンを返します。
// 検索キーは名（ユニークではない）、照合キーはメールアドレスという
// 元仕様の非対称な認証フローをそのまま実装しています。
func (u *accountUsecase) Login(ctx context.Context, name, email, password string) (string, error) {
	// 名でユーザーを検索
	user, err := u.users.FindByName(ctx, name)
	if err != nil {
		return "", err
	}

	// 保存済みメールアドレスと照合
	if user.Email != email {
		return "", ErrEmailMismatch
	}

	// パスワードを検証
	if !u.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidPassword
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// GetProfile は指定されたIDのユーザーを取得します。
// パスワードハッシュの除外はレスポンスDTO側で行います。
func (u *accountUsecase) GetProfile(ctx context.Context, id string) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// DeleteAccount は指定されたIDのユーザーを削除します。
// 既に削除済みの場合、ErrUserNotFoundを返します。
func (u *accountUsecase) DeleteAccount(ctx context.Context, id string) error {
	return u.users.Delete(ctx, id)
}
