package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/italosilvaf/TesteSolfacil/internal/auth"
	apperrors "github.com/italosilvaf/TesteSolfacil/pkg/util"
)

func newPartnerService(partners *fakePartnerRepo, plants *fakePlantRepo) *PartnerService {
	authSvc := NewAuthService(testAuthConfig(), partners)
	return NewPartnerService(partners, plants, authSvc, nil, nil, zap.NewNop())
}

func domainCode(t *testing.T, err error) (string, int) {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	return domainErr.Code, domainErr.HTTPStatus
}

func TestSignup(t *testing.T) {
	partners := newFakePartnerRepo()
	svc := newPartnerService(partners, newFakePlantRepo())

	partner, err := svc.Signup(context.Background(), "Acme Solar", "61.577.705/0001-60", "acme@example.com", "s3cret")
	require.NoError(t, err)

	// CNPJ stored normalized, password stored only as a verifiable hash.
	assert.Equal(t, "61577705000160", partner.CNPJ)
	assert.NotEqual(t, "s3cret", partner.PasswordHash)
	assert.NoError(t, auth.ComparePassword(partner.PasswordHash, "s3cret"))
	assert.NotEqual(t, int64(0), partner.ID)
}

func TestSignupInvalidCNPJ(t *testing.T) {
	svc := newPartnerService(newFakePartnerRepo(), newFakePlantRepo())

	_, err := svc.Signup(context.Background(), "Acme", "34427619999907", "acme@example.com", "s3cret")
	code, status := domainCode(t, err)
	assert.Equal(t, "VALIDATION_FAILED", code)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSignupDuplicate(t *testing.T) {
	partners := newFakePartnerRepo()
	svc := newPartnerService(partners, newFakePlantRepo())

	_, err := svc.Signup(context.Background(), "Acme", "34427619000107", "acme@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), "Other", "34427619000107", "other@example.com", "s3cret")
	code, status := domainCode(t, err)
	assert.Equal(t, "CONFLICT", code)
	assert.Equal(t, http.StatusNotAcceptable, status)
}

func TestUpdateSelfOnly(t *testing.T) {
	partners := newFakePartnerRepo()
	svc := newPartnerService(partners, newFakePlantRepo())

	a, err := svc.Signup(context.Background(), "Partner A", "34427619000107", "a@example.com", "s3cret")
	require.NoError(t, err)
	b, err := svc.Signup(context.Background(), "Partner B", "61577705000160", "b@example.com", "s3cret")
	require.NoError(t, err)

	// A may not edit B; B's record stays untouched.
	_, err = svc.Update(context.Background(), a.ID, b.ID, PartnerUpdate{Name: "Hijacked"})
	code, status := domainCode(t, err)
	assert.Equal(t, "FORBIDDEN", code)
	assert.Equal(t, http.StatusForbidden, status)

	stored, err := partners.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Partner B", stored.Name)

	// B edits itself.
	updated, err := svc.Update(context.Background(), b.ID, b.ID, PartnerUpdate{Name: "Partner B Ltda"})
	require.NoError(t, err)
	assert.Equal(t, "Partner B Ltda", updated.Name)
	assert.Equal(t, "61577705000160", updated.CNPJ)
}

func TestUpdateRehashesPassword(t *testing.T) {
	partners := newFakePartnerRepo()
	svc := newPartnerService(partners, newFakePlantRepo())

	partner, err := svc.Signup(context.Background(), "Acme", "34427619000107", "acme@example.com", "old-pass")
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), partner.ID, partner.ID, PartnerUpdate{Password: "new-pass"})
	require.NoError(t, err)

	stored, err := partners.GetByID(context.Background(), partner.ID)
	require.NoError(t, err)
	assert.NoError(t, auth.ComparePassword(stored.PasswordHash, "new-pass"))
	assert.Error(t, auth.ComparePassword(stored.PasswordHash, "old-pass"))
}

func TestDeleteSelfOnly(t *testing.T) {
	partners := newFakePartnerRepo()
	svc := newPartnerService(partners, newFakePlantRepo())

	a, err := svc.Signup(context.Background(), "Partner A", "34427619000107", "a@example.com", "s3cret")
	require.NoError(t, err)
	b, err := svc.Signup(context.Background(), "Partner B", "61577705000160", "b@example.com", "s3cret")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), a.ID, b.ID)
	code, _ := domainCode(t, err)
	assert.Equal(t, "FORBIDDEN", code)
	_, err = partners.GetByID(context.Background(), b.ID)
	assert.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), b.ID, b.ID))
	_, err = partners.GetByID(context.Background(), b.ID)
	assert.Error(t, err)
}

func TestGetReturnsPlants(t *testing.T) {
	partners := newFakePartnerRepo()
	plants := newFakePlantRepo()
	svc := newPartnerService(partners, plants)
	plantSvc := NewPlantService(plants, nil, nil, zap.NewNop())

	partner, err := svc.Signup(context.Background(), "Acme", "34427619000107", "acme@example.com", "s3cret")
	require.NoError(t, err)
	_, err = plantSvc.Register(context.Background(), partner.ID, PlantInput{Name: "North Field", CEP: "01310930", MaxCapacityGW: 12})
	require.NoError(t, err)

	got, ownedPlants, err := svc.Get(context.Background(), partner.ID)
	require.NoError(t, err)
	assert.Equal(t, partner.ID, got.ID)
	require.Len(t, ownedPlants, 1)
	assert.Equal(t, "North Field", ownedPlants[0].Name)
}

func TestListEmpty(t *testing.T) {
	svc := newPartnerService(newFakePartnerRepo(), newFakePlantRepo())

	_, err := svc.List(context.Background())
	code, status := domainCode(t, err)
	assert.Equal(t, "NOT_FOUND", code)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestLastPartnersOrder(t *testing.T) {
	partners := newFakePartnerRepo()
	svc := newPartnerService(partners, newFakePlantRepo())

	_, err := svc.Signup(context.Background(), "First", "34427619000107", "first@example.com", "s3cret")
	require.NoError(t, err)
	second, err := svc.Signup(context.Background(), "Second", "61577705000160", "second@example.com", "s3cret")
	require.NoError(t, err)

	last, err := svc.LastPartners(context.Background())
	require.NoError(t, err)
	require.Len(t, last, 2)
	assert.Equal(t, second.ID, last[0].ID)
}
