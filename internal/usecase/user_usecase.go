package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/repository"
)

// UserUsecase はログイン済みユーザー向けのユーザーCRUD。
type UserUsecase struct {
	users     repository.UserRepository
	validator AuthValidator
}

func NewUserUsecase(users repository.UserRepository, validator AuthValidator) *UserUsecase {
	return &UserUsecase{users: users, validator: validator}
}

type UpdateUserInput struct {
	Email string
	// nilなら現状維持（bodyの省略で勝手に停止させない）
	IsActive *bool
}

func (u *UserUsecase) List(ctx context.Context, callerID int64) ([]UserDTO, error) {
	if callerID <= 0 {
		return []UserDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	users, err := u.users.List(ctx)
	if err != nil {
		return []UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, toUserDTO(&users[i]))
	}
	return out, nil
}

func (u *UserUsecase) Get(ctx context.Context, callerID int64, userID int64) (UserDTO, error) {
	if callerID <= 0 {
		return UserDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if userID <= 0 {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return UserDTO{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	return toUserDTO(user), nil
}

func (u *UserUsecase) Update(ctx context.Context, callerID int64, userID int64, in UpdateUserInput) (UserDTO, error) {
	if callerID <= 0 {
		return UserDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if userID <= 0 {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	email := strings.TrimSpace(in.Email)
	if err := u.validator.ValidateEmail(ctx, email); err != nil {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return UserDTO{}, NewHTTPError(http.StatusNotFound, "user not found")
	}

	//email変更は重複チェック
	if email != user.Email {
		existing, err := u.users.FindByEmail(ctx, email)
		if err != nil {
			return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if existing != nil {
			return UserDTO{}, NewHTTPError(http.StatusConflict, "email already used")
		}
	}

	user.Email = email
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	if err := u.users.Update(ctx, user); err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toUserDTO(user), nil
}

func (u *UserUsecase) Delete(ctx context.Context, callerID int64, userID int64) error {
	if callerID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if userID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "user not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
