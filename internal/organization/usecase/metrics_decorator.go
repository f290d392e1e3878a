package usecase

import (
	"context"
	"time"

	"github.com/fiscalhub/fiscalhub/internal/metrics"
	"github.com/fiscalhub/fiscalhub/internal/organization/domain"
)

// organizationUseCaseWithMetrics decorates OrganizationUseCase with metrics
// instrumentation.
type organizationUseCaseWithMetrics struct {
	next    OrganizationUseCase
	metrics metrics.BusinessMetrics
}

// NewOrganizationUseCaseWithMetrics wraps an OrganizationUseCase with metrics recording.
func NewOrganizationUseCaseWithMetrics(useCase OrganizationUseCase, m metrics.BusinessMetrics) OrganizationUseCase {
	return &organizationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *organizationUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	u.metrics.RecordOperation(ctx, "organization", operation, status)
	u.metrics.RecordDuration(ctx, "organization", operation, time.Since(start), status)
}

func (u *organizationUseCaseWithMetrics) Create(ctx context.Context, input CreateOrganizationInput) (*domain.Organization, error) {
	start := time.Now()
	org, err := u.next.Create(ctx, input)
	u.record(ctx, "organization_create", start, err)
	return org, err
}

func (u *organizationUseCaseWithMetrics) Get(ctx context.Context, cnpj string) (*domain.Organization, error) {
	start := time.Now()
	org, err := u.next.Get(ctx, cnpj)
	u.record(ctx, "organization_get", start, err)
	return org, err
}

func (u *organizationUseCaseWithMetrics) List(ctx context.Context) ([]*domain.Organization, error) {
	start := time.Now()
	orgs, err := u.next.List(ctx)
	u.record(ctx, "organization_list", start, err)
	return orgs, err
}

func (u *organizationUseCaseWithMetrics) SearchByName(ctx context.Context, name string) ([]*domain.Organization, error) {
	start := time.Now()
	orgs, err := u.next.SearchByName(ctx, name)
	u.record(ctx, "organization_search", start, err)
	return orgs, err
}

func (u *organizationUseCaseWithMetrics) Update(ctx context.Context, cnpj string, input UpdateOrganizationInput) (*domain.Organization, error) {
	start := time.Now()
	org, err := u.next.Update(ctx, cnpj, input)
	u.record(ctx, "organization_update", start, err)
	return org, err
}

func (u *organizationUseCaseWithMetrics) Delete(ctx context.Context, cnpj string) error {
	start := time.Now()
	err := u.next.Delete(ctx, cnpj)
	u.record(ctx, "organization_delete", start, err)
	return err
}

func (u *organizationUseCaseWithMetrics) UploadCertificate(
	ctx context.Context,
	cnpj string,
	certificate []byte,
	passphrase string,
) (*domain.CertificateStatus, error) {
	start := time.Now()
	status, err := u.next.UploadCertificate(ctx, cnpj, certificate, passphrase)
	u.record(ctx, "certificate_upload", start, err)
	return status, err
}

func (u *organizationUseCaseWithMetrics) CertificateStatus(ctx context.Context, cnpj string) (*domain.CertificateStatus, error) {
	start := time.Now()
	status, err := u.next.CertificateStatus(ctx, cnpj)
	u.record(ctx, "certificate_status", start, err)
	return status, err
}

func (u *organizationUseCaseWithMetrics) RemoveCertificate(ctx context.Context, cnpj string) error {
	start := time.Now()
	err := u.next.RemoveCertificate(ctx, cnpj)
	u.record(ctx, "certificate_remove", start, err)
	return err
}

func (u *organizationUseCaseWithMetrics) FetchCertificate(ctx context.Context, cnpj string) (*domain.CertificateBundle, error) {
	start := time.Now()
	bundle, err := u.next.FetchCertificate(ctx, cnpj)
	u.record(ctx, "certificate_fetch", start, err)
	return bundle, err
}

func (u *organizationUseCaseWithMetrics) CertificateInfo(ctx context.Context, cnpj string) (*domain.CertificateInfo, error) {
	start := time.Now()
	info, err := u.next.CertificateInfo(ctx, cnpj)
	u.record(ctx, "certificate_info", start, err)
	return info, err
}
