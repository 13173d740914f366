package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserUsecase_Get_NotFound(t *testing.T) {
	users := new(MockUserRepo)
	uc := usecase.NewUserUsecase(users, new(MockAuthValidator))

	users.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := uc.Get(context.Background(), 1, 99)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestUserUsecase_Update_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepo)
	v := new(MockAuthValidator)
	uc := usecase.NewUserUsecase(users, v)

	v.On("ValidateEmail", mock.Anything, "new@example.com").Return(nil)
	users.On("FindByID", mock.Anything, int64(1)).
		Return(&model.User{ID: 1, Email: "old@example.com", IsActive: true}, nil)
	users.On("FindByEmail", mock.Anything, "new@example.com").
		Return(&model.User{ID: 2, Email: "new@example.com"}, nil)

	active := true
	_, err := uc.Update(context.Background(), 1, 1, usecase.UpdateUserInput{Email: "new@example.com", IsActive: &active})
	assertHTTPStatus(t, err, http.StatusConflict)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserUsecase_Update_Success(t *testing.T) {
	users := new(MockUserRepo)
	v := new(MockAuthValidator)
	uc := usecase.NewUserUsecase(users, v)

	v.On("ValidateEmail", mock.Anything, "new@example.com").Return(nil)
	users.On("FindByID", mock.Anything, int64(1)).
		Return(&model.User{ID: 1, Email: "old@example.com", IsActive: true}, nil)
	users.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	active := false
	out, err := uc.Update(context.Background(), 1, 1, usecase.UpdateUserInput{Email: "new@example.com", IsActive: &active})
	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", out.Email)
	assert.False(t, out.IsActive)
}

// is_active省略（nil）は現状維持。勝手に停止させない。
func TestUserUsecase_Update_OmittedIsActiveKeepsCurrent(t *testing.T) {
	users := new(MockUserRepo)
	v := new(MockAuthValidator)
	uc := usecase.NewUserUsecase(users, v)

	v.On("ValidateEmail", mock.Anything, "new@example.com").Return(nil)
	users.On("FindByID", mock.Anything, int64(1)).
		Return(&model.User{ID: 1, Email: "old@example.com", IsActive: true}, nil)
	users.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	out, err := uc.Update(context.Background(), 1, 1, usecase.UpdateUserInput{Email: "new@example.com"})
	assert.NoError(t, err)
	assert.True(t, out.IsActive)
}

func TestUserUsecase_List_Success(t *testing.T) {
	users := new(MockUserRepo)
	uc := usecase.NewUserUsecase(users, new(MockAuthValidator))

	users.On("List", mock.Anything).Return([]model.User{
		{ID: 1, Email: "a@example.com", IsActive: true},
		{ID: 2, Email: "b@example.com", IsActive: false},
	}, nil)

	out, err := uc.List(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
}
