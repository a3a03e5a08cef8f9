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

func TestHashPassword(t *testing.T) {
	hash, salt, err := hashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEmpty(t, salt)
	assert.NotEqual(t, "s3cret-pass", hash)

	// Fresh salt per call means distinct hashes for the same password.
	hash2, salt2, err := hashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, salt, salt2)
	assert.NotEqual(t, hash, hash2)

	ok, err := verifyPassword("s3cret-pass", hash, salt)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verifyPassword("wrong-pass", hash, salt)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompanyUserCreate(t *testing.T) {
	store, gdb := setupStore(t)
	company := createTestCompany(t, store, "cu@acme.com")
	svc := NewCompanyUser(store, &mockProducer{}, zaptest.NewLogger(t))
	ctx := context.Background()

	cu, err := svc.Create(ctx, &CreateCompanyUserInput{
		Email:     "admin@acme.com",
		Password:  "s3cret-pass",
		CompanyID: company.ID,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cu.ID, "cou_"))
	assert.True(t, strings.HasPrefix(cu.UserID, "usr_"))
	assert.Equal(t, "admin@acme.com", cu.Email)

	// The stored credentials never carry the plaintext password.
	var user models.User
	require.NoError(t, gdb.First(&user, "id = ?", cu.UserID).Error)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEmpty(t, user.Salt)
	assert.NotContains(t, user.PasswordHash, "s3cret-pass")

	ok, err := verifyPassword("s3cret-pass", user.PasswordHash, user.Salt)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompanyUserCreateRequiresCompany(t *testing.T) {
	store, gdb := setupStore(t)
	svc := NewCompanyUser(store, &mockProducer{}, zaptest.NewLogger(t))

	_, err := svc.Create(context.Background(), &CreateCompanyUserInput{
		Email:     "admin@acme.com",
		Password:  "s3cret-pass",
		CompanyID: "com_abcdefghijABCDEFGHIJ0",
	})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidRequest))
	assert.Equal(t, int64(0), countRows(t, gdb, &models.User{}), "no orphan user row behind the failed link")
}

func TestCompanyUserOnePerCompany(t *testing.T) {
	store, gdb := setupStore(t)
	company := createTestCompany(t, store, "cu@acme.com")
	svc := NewCompanyUser(store, &mockProducer{}, zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateCompanyUserInput{
		Email: "first@acme.com", Password: "s3cret-pass", CompanyID: company.ID,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &CreateCompanyUserInput{
		Email: "second@acme.com", Password: "s3cret-pass", CompanyID: company.ID,
	})
	assert.True(t, apperrors.Is(err, apperrors.KindDuplicate))
	assert.Equal(t, int64(1), countRows(t, gdb, &models.User{}), "rejected link rolls back its user insert")
}

func TestCompanyUserDeleteCascades(t *testing.T) {
	store, gdb := setupStore(t)
	company := createTestCompany(t, store, "cu@acme.com")
	svc := NewCompanyUser(store, &mockProducer{}, zaptest.NewLogger(t))
	ctx := context.Background()

	cu, err := svc.Create(ctx, &CreateCompanyUserInput{
		Email: "admin@acme.com", Password: "s3cret-pass", CompanyID: company.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, cu.ID))
	assert.Equal(t, int64(0), countRows(t, gdb, &models.CompanyUser{}))
	assert.Equal(t, int64(0), countRows(t, gdb, &models.User{}))

	// The company is free for a new user, and the email is reusable.
	_, err = svc.Create(ctx, &CreateCompanyUserInput{
		Email: "admin@acme.com", Password: "s3cret-pass", CompanyID: company.ID,
	})
	require.NoError(t, err)
}

func TestCompanyUserGetAndList(t *testing.T) {
	store, _ := setupStore(t)
	companyA := createTestCompany(t, store, "a@acme.com")
	companyB := createTestCompany(t, store, "b@acme.com")
	svc := NewCompanyUser(store, &mockProducer{}, zaptest.NewLogger(t))
	ctx := context.Background()

	cuA, err := svc.Create(ctx, &CreateCompanyUserInput{
		Email: "a-admin@acme.com", Password: "s3cret-pass", CompanyID: companyA.ID,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CreateCompanyUserInput{
		Email: "b-admin@acme.com", Password: "s3cret-pass", CompanyID: companyB.ID,
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, cuA.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a-admin@acme.com", got.Email)

	missing, err := svc.Get(ctx, "cou_abcdefghijABCDEFGHIJ0")
	require.NoError(t, err)
	assert.Nil(t, missing)

	forA, err := svc.List(ctx, &ListCompanyUsersInput{CompanyID: utils.Ptr(companyA.ID)})
	require.NoError(t, err)
	require.Len(t, forA, 1)
	assert.Equal(t, cuA.ID, forA[0].ID)
}
