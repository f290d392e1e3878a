package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fiscalhub/fiscalhub/internal/identity/domain"
	"github.com/fiscalhub/fiscalhub/internal/validation"
)

// bcryptCost matches the cost of existing password hashes so old and new
// credentials verify with the same parameters.
const bcryptCost = 10

// userUseCase implements the UserUseCase interface for managing user accounts.
type userUseCase struct {
	userRepo UserRepository
}

// NewUserUseCase creates a new user use case.
func NewUserUseCase(userRepo UserRepository) UserUseCase {
	return &userUseCase{userRepo: userRepo}
}

// Create registers a new user account. The CPF is normalized to bare digits
// and must carry valid check digits.
func (u *userUseCase) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	cpf := validation.NormalizeDocument(input.CPF)
	if !validation.IsValidCPF(cpf) {
		return nil, domain.ErrInvalidCPF
	}

	existing, err := u.userRepo.GetByCPF(ctx, cpf)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleStandard
	}

	now := time.Now().UTC()
	user := &domain.User{
		CPF:          cpf,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get retrieves a user by CPF.
func (u *userUseCase) Get(ctx context.Context, cpf string) (*domain.User, error) {
	return u.userRepo.GetByCPF(ctx, validation.NormalizeDocument(cpf))
}

// List retrieves all users.
func (u *userUseCase) List(ctx context.Context) ([]*domain.User, error) {
	return u.userRepo.List(ctx)
}

// SearchByName retrieves users whose name contains the given fragment.
func (u *userUseCase) SearchByName(ctx context.Context, name string) ([]*domain.User, error) {
	return u.userRepo.SearchByName(ctx, name)
}

// Update modifies an existing user. An empty password keeps the current hash.
func (u *userUseCase) Update(ctx context.Context, cpf string, input UpdateUserInput) (*domain.User, error) {
	cpf = validation.NormalizeDocument(cpf)

	user, err := u.userRepo.GetByCPFWithPassword(ctx, cpf)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Role != "" {
		user.Role = input.Role
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Delete removes a user by CPF. Deleting the last administrator is
// refused; with no administrator left, nobody could manage users and
// the unauthenticated bootstrap rule would reopen once the table
// empties out.
func (u *userUseCase) Delete(ctx context.Context, cpf string) error {
	normalized := validation.NormalizeDocument(cpf)

	user, err := u.userRepo.GetByCPF(ctx, normalized)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		admins, err := u.userRepo.CountAdmins(ctx)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return domain.ErrLastAdmin
		}
	}

	return u.userRepo.Delete(ctx, normalized)
}

// HasUsers reports whether at least one user account exists.
func (u *userUseCase) HasUsers(ctx context.Context) (bool, error) {
	count, err := u.userRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
