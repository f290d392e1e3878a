package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/fiscalhub/fiscalhub/internal/database"
	"github.com/fiscalhub/fiscalhub/internal/link/domain"
	"github.com/fiscalhub/fiscalhub/internal/validation"
)

// linkUseCase implements the LinkUseCase interface.
type linkUseCase struct {
	txManager database.TxManager
	linkRepo  LinkRepository
}

// NewLinkUseCase creates a new link use case.
func NewLinkUseCase(txManager database.TxManager, linkRepo LinkRepository) LinkUseCase {
	return &linkUseCase{
		txManager: txManager,
		linkRepo:  linkRepo,
	}
}

// normalizeDocuments validates and strips formatting from a CPF/CNPJ pair.
func normalizeDocuments(cpf, cnpj string) (string, string, error) {
	normalizedCPF := validation.NormalizeDocument(cpf)
	if !validation.IsValidCPF(normalizedCPF) {
		return "", "", domain.ErrInvalidCPF
	}
	normalizedCNPJ := validation.NormalizeDocument(cnpj)
	if !validation.IsValidCNPJ(normalizedCNPJ) {
		return "", "", domain.ErrInvalidCNPJ
	}
	return normalizedCPF, normalizedCNPJ, nil
}

// buildLink validates an input and produces a link entity.
func buildLink(input CreateLinkInput, now time.Time) (*domain.Link, error) {
	cpf, cnpj, err := normalizeDocuments(input.CPF, input.CNPJ)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.StatusActive
	}

	return &domain.Link{
		CPF:            cpf,
		CNPJ:           cnpj,
		PermissionCode: input.PermissionCode,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Create creates a single link.
func (u *linkUseCase) Create(ctx context.Context, input CreateLinkInput) (*domain.Link, error) {
	link, err := buildLink(input, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	existing, err := u.linkRepo.Get(ctx, link.CPF, link.CNPJ)
	if err != nil && !errors.Is(err, domain.ErrLinkNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrLinkAlreadyExists
	}

	if err := u.linkRepo.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// CreateBatch creates several links inside a single transaction. Validation
// runs up front so no statement executes when any input is malformed.
func (u *linkUseCase) CreateBatch(ctx context.Context, inputs []CreateLinkInput) ([]*domain.Link, error) {
	now := time.Now().UTC()

	links := make([]*domain.Link, 0, len(inputs))
	for _, input := range inputs {
		link, err := buildLink(input, now)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	err := u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		for _, link := range links {
			if err := u.linkRepo.Create(txCtx, link); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}

// Get retrieves a link by its composite key.
func (u *linkUseCase) Get(ctx context.Context, cpf, cnpj string) (*domain.Link, error) {
	normalizedCPF, normalizedCNPJ, err := normalizeDocuments(cpf, cnpj)
	if err != nil {
		return nil, err
	}
	return u.linkRepo.Get(ctx, normalizedCPF, normalizedCNPJ)
}

// List retrieves all links.
func (u *linkUseCase) List(ctx context.Context) ([]*domain.Link, error) {
	return u.linkRepo.List(ctx)
}

// ListByCPF retrieves all links for a user.
func (u *linkUseCase) ListByCPF(ctx context.Context, cpf string) ([]*domain.Link, error) {
	normalized := validation.NormalizeDocument(cpf)
	if !validation.IsValidCPF(normalized) {
		return nil, domain.ErrInvalidCPF
	}
	return u.linkRepo.ListByCPF(ctx, normalized)
}

// ListByCNPJ retrieves all links for an organization. Returns ErrLinkNotFound
// when the organization has no links.
func (u *linkUseCase) ListByCNPJ(ctx context.Context, cnpj string) ([]*domain.Link, error) {
	normalized := validation.NormalizeDocument(cnpj)
	if !validation.IsValidCNPJ(normalized) {
		return nil, domain.ErrInvalidCNPJ
	}

	links, err := u.linkRepo.ListByCNPJ(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, domain.ErrLinkNotFound
	}
	return links, nil
}

// Update modifies a link's permission code and status.
func (u *linkUseCase) Update(ctx context.Context, cpf, cnpj string, input UpdateLinkInput) (*domain.Link, error) {
	normalizedCPF, normalizedCNPJ, err := normalizeDocuments(cpf, cnpj)
	if err != nil {
		return nil, err
	}

	link, err := u.linkRepo.Get(ctx, normalizedCPF, normalizedCNPJ)
	if err != nil {
		return nil, err
	}

	if input.PermissionCode != "" {
		link.PermissionCode = input.PermissionCode
	}
	if input.Status != "" {
		link.Status = input.Status
	}
	link.UpdatedAt = time.Now().UTC()

	if err := u.linkRepo.Update(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// Delete removes a link by its composite key.
func (u *linkUseCase) Delete(ctx context.Context, cpf, cnpj string) error {
	normalizedCPF, normalizedCNPJ, err := normalizeDocuments(cpf, cnpj)
	if err != nil {
		return err
	}
	return u.linkRepo.Delete(ctx, normalizedCPF, normalizedCNPJ)
}
