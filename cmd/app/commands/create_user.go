package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	identitydomain "github.com/fiscalhub/fiscalhub/internal/identity/domain"
	identityUseCase "github.com/fiscalhub/fiscalhub/internal/identity/usecase"
)

// RunCreateUser creates a user account from the command line. It is the
// operational path for provisioning the first administrator before the
// HTTP bootstrap window closes, and works for regular accounts as well.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	userUseCase identityUseCase.UserUseCase,
	logger *slog.Logger,
	cpf, name, email, password, role string,
	format string,
	io IOTuple,
) error {
	logger.Info("creating user", slog.String("name", name))

	if role == "" {
		role = identitydomain.RoleStandard
	}

	user, err := userUseCase.Create(ctx, identityUseCase.CreateUserInput{
		CPF:      cpf,
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		encoder := json.NewEncoder(io.Writer)
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(map[string]string{
			"cpf":  user.CPF,
			"name": user.Name,
			"role": user.Role,
		})
	} else {
		_, _ = fmt.Fprintf(io.Writer, "User created\n")
		_, _ = fmt.Fprintf(io.Writer, "  CPF:  %s\n", user.CPF)
		_, _ = fmt.Fprintf(io.Writer, "  Name: %s\n", user.Name)
		_, _ = fmt.Fprintf(io.Writer, "  Role: %s\n", user.Role)
	}

	logger.Info("user created successfully",
		slog.String("name", user.Name),
		slog.String("role", user.Role),
	)

	return nil
}
