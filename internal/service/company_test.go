package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	apperrors "github.com/vendira/commerce/internal/errors"
	"github.com/vendira/commerce/internal/models"
	"github.com/vendira/commerce/internal/pkg/utils"
)

func TestCompanyCreateAggregate(t *testing.T) {
	store, gdb := setupStore(t)
	svc := NewCompany(store, &mockProducer{}, zaptest.NewLogger(t))

	company, err := svc.Create(context.Background(), &CreateCompanyInput{
		Name:    "Acme",
		Email:   "a@acme.com",
		Address: testAddressInput(),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(company.ID, "com_"))
	assert.Len(t, company.ID, 25)

	got, err := svc.GetOrFail(context.Background(), company.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Address)
	assert.Equal(t, "Lisbon", got.Address.City)
	assert.Equal(t, int64(1), countRows(t, gdb, &models.Address{}))
}

func TestCompanyCreateDuplicateEmailAtomic(t *testing.T) {
	store, gdb := setupStore(t)
	svc := NewCompany(store, &mockProducer{}, zaptest.NewLogger(t))

	_, err := svc.Create(context.Background(), &CreateCompanyInput{
		Name: "First", Email: "same@acme.com", Address: testAddressInput(),
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &CreateCompanyInput{
		Name: "Second", Email: "same@acme.com", Address: testAddressInput(),
	})
	assert.True(t, apperrors.Is(err, apperrors.KindDuplicate))

	// The second aggregate's address insert must have rolled back with it.
	assert.Equal(t, int64(1), countRows(t, gdb, &models.Address{}))
	assert.Equal(t, int64(1), countRows(t, gdb, &models.Company{}))
}

func TestCompanyGetNilWhenMissing(t *testing.T) {
	store, _ := setupStore(t)
	svc := NewCompany(store, &mockProducer{}, zaptest.NewLogger(t))

	got, err := svc.Get(context.Background(), "com_abcdefghijABCDEFGHIJ0")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = svc.GetOrFail(context.Background(), "com_abcdefghijABCDEFGHIJ0")
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestCompanyUpdateNestedAddress(t *testing.T) {
	store, _ := setupStore(t)
	svc := NewCompany(store, &mockProducer{}, zaptest.NewLogger(t))
	company := createTestCompany(t, store, "u@acme.com")

	updated, err := svc.Update(context.Background(), &UpdateCompanyInput{
		ID:      company.ID,
		Name:    utils.Ptr("Acme Renamed"),
		Address: &AddressPatch{City: utils.Ptr("Porto")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Renamed", updated.Name)
	require.NotNil(t, updated.Address)
	assert.Equal(t, "Porto", updated.Address.City)
	// Untouched address columns survive the patch.
	assert.Equal(t, "1 Main St", updated.Address.Line1)
}

func TestCompanyUpdateNotFound(t *testing.T) {
	store, _ := setupStore(t)
	svc := NewCompany(store, &mockProducer{}, zaptest.NewLogger(t))

	_, err := svc.Update(context.Background(), &UpdateCompanyInput{
		ID:   "com_abcdefghijABCDEFGHIJ0",
		Name: utils.Ptr("X"),
	})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestCompanyDeleteAggregate(t *testing.T) {
	store, gdb := setupStore(t)
	svc := NewCompany(store, &mockProducer{}, zaptest.NewLogger(t))
	company := createTestCompany(t, store, "d@acme.com")

	require.NoError(t, svc.Delete(context.Background(), company.ID))

	got, err := svc.Get(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, int64(0), countRows(t, gdb, &models.Address{}), "owned address is deleted with its parent")

	err = svc.Delete(context.Background(), company.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestCompanyListFilters(t *testing.T) {
	store, _ := setupStore(t)
	svc := NewCompany(store, &mockProducer{}, zaptest.NewLogger(t))

	createTestCompany(t, store, "one@acme.com")
	createTestCompany(t, store, "two@acme.com")

	all, err := svc.List(context.Background(), &ListCompaniesInput{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byEmail, err := svc.List(context.Background(), &ListCompaniesInput{Email: utils.Ptr("one@acme.com")})
	require.NoError(t, err)
	require.Len(t, byEmail, 1)

	byCity, err := svc.List(context.Background(), &ListCompaniesInput{
		Address: &AddressFilterInput{City: utils.Ptr("Nowhere")},
	})
	require.NoError(t, err)
	assert.Empty(t, byCity)
}
