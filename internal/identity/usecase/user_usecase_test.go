package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fiscalhub/fiscalhub/internal/identity/domain"
	"github.com/fiscalhub/fiscalhub/internal/identity/usecase/mocks"
)

// TestUserUseCase_Create tests the Create method of userUseCase.
func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("GetByCPF", ctx, "52998224725").Return(nil, domain.ErrUserNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		uc := NewUserUseCase(repo)
		user, err := uc.Create(ctx, CreateUserInput{
			CPF:      "529.982.247-25",
			Name:     "Maria Silva",
			Email:    "maria@example.com",
			Password: "s3cret-pass",
		})

		require.NoError(t, err)
		assert.Equal(t, "52998224725", user.CPF)
		assert.Equal(t, domain.RoleStandard, user.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
		repo.AssertExpectations(t)
	})

	t.Run("InvalidCheckDigits", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)

		uc := NewUserUseCase(repo)
		_, err := uc.Create(ctx, CreateUserInput{
			CPF:      "52998224726",
			Name:     "Maria Silva",
			Password: "s3cret-pass",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCPF)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("AlreadyExists", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("GetByCPF", ctx, "52998224725").Return(&domain.User{CPF: "52998224725"}, nil)

		uc := NewUserUseCase(repo)
		_, err := uc.Create(ctx, CreateUserInput{
			CPF:      "52998224725",
			Name:     "Maria Silva",
			Password: "s3cret-pass",
		})

		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ExplicitAdminRole", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("GetByCPF", ctx, "52998224725").Return(nil, domain.ErrUserNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		uc := NewUserUseCase(repo)
		user, err := uc.Create(ctx, CreateUserInput{
			CPF:      "52998224725",
			Name:     "Maria Silva",
			Password: "s3cret-pass",
			Role:     domain.RoleAdmin,
		})

		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
	})
}

// TestUserUseCase_Update tests the Update method of userUseCase.
func TestUserUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("KeepsPasswordWhenEmpty", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		stored := &domain.User{
			CPF:          "52998224725",
			Name:         "Maria Silva",
			PasswordHash: "$2a$10$existinghash",
			Role:         domain.RoleStandard,
		}
		repo.On("GetByCPFWithPassword", ctx, "52998224725").Return(stored, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.PasswordHash == "$2a$10$existinghash" && u.Name == "Maria Souza"
		})).Return(nil)

		uc := NewUserUseCase(repo)
		user, err := uc.Update(ctx, "52998224725", UpdateUserInput{Name: "Maria Souza"})

		require.NoError(t, err)
		assert.Equal(t, "Maria Souza", user.Name)
		assert.Empty(t, user.PasswordHash)
		repo.AssertExpectations(t)
	})

	t.Run("RehashesNewPassword", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		stored := &domain.User{
			CPF:          "52998224725",
			PasswordHash: "$2a$10$existinghash",
		}
		repo.On("GetByCPFWithPassword", ctx, "52998224725").Return(stored, nil)

		var savedHash string
		repo.On("Update", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				savedHash = args.Get(1).(*domain.User).PasswordHash
			}).
			Return(nil)

		uc := NewUserUseCase(repo)
		_, err := uc.Update(ctx, "52998224725", UpdateUserInput{Password: "new-pass"})

		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedHash), []byte("new-pass")))
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("GetByCPFWithPassword", ctx, "52998224725").Return(nil, domain.ErrUserNotFound)

		uc := NewUserUseCase(repo)
		_, err := uc.Update(ctx, "52998224725", UpdateUserInput{Name: "X"})

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

// TestUserUseCase_HasUsers tests the HasUsers method of userUseCase.
func TestUserUseCase_HasUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("Count", ctx).Return(int64(0), nil)

		uc := NewUserUseCase(repo)
		has, err := uc.HasUsers(ctx)

		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("Populated", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("Count", ctx).Return(int64(5), nil)

		uc := NewUserUseCase(repo)
		has, err := uc.HasUsers(ctx)

		require.NoError(t, err)
		assert.True(t, has)
	})
}

// TestUserUseCase_Delete tests the Delete method of userUseCase.
func TestUserUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("GetByCPF", ctx, "52998224725").
			Return(&domain.User{CPF: "52998224725", Role: domain.RoleStandard}, nil)
		repo.On("Delete", ctx, "52998224725").Return(nil)

		uc := NewUserUseCase(repo)
		err := uc.Delete(ctx, "529.982.247-25")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("GetByCPF", ctx, "52998224725").Return(nil, domain.ErrUserNotFound)

		uc := NewUserUseCase(repo)
		err := uc.Delete(ctx, "52998224725")

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("LastAdminRefused", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("GetByCPF", ctx, "52998224725").
			Return(&domain.User{CPF: "52998224725", Role: domain.RoleAdmin}, nil)
		repo.On("CountAdmins", ctx).Return(int64(1), nil)

		uc := NewUserUseCase(repo)
		err := uc.Delete(ctx, "52998224725")

		assert.ErrorIs(t, err, domain.ErrLastAdmin)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("AdminWithAnotherAdmin", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("GetByCPF", ctx, "52998224725").
			Return(&domain.User{CPF: "52998224725", Role: domain.RoleAdmin}, nil)
		repo.On("CountAdmins", ctx).Return(int64(2), nil)
		repo.On("Delete", ctx, "52998224725").Return(nil)

		uc := NewUserUseCase(repo)
		err := uc.Delete(ctx, "52998224725")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
