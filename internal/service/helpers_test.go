package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vendira/commerce/internal/db"
	"github.com/vendira/commerce/internal/events"
	"github.com/vendira/commerce/internal/models"
)

// setupStore opens an in-memory SQLite database. The raw gorm handle is
// returned alongside for row-count assertions.
func setupStore(t *testing.T) (*db.Store, *gorm.DB) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, db.Migrate(gdb), "failed to migrate test database")
	return db.New(gdb), gdb
}

// mockProducer records produced events; safe for the fire-and-forget
// goroutines the services use.
type mockProducer struct {
	mu       sync.Mutex
	produced []events.EventType
}

func (m *mockProducer) Produce(eventType events.EventType, _ string, _ any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.produced = append(m.produced, eventType)
}

func testAddressInput() AddressInput {
	return AddressInput{
		Line1:    "1 Main St",
		Postcode: "1000-001",
		City:     "Lisbon",
		Province: "Lisboa",
		Country:  "PT",
	}
}

func createTestCompany(t *testing.T, store *db.Store, email string) *models.Company {
	t.Helper()
	svc := NewCompany(store, &mockProducer{}, zaptest.NewLogger(t))
	company, err := svc.Create(context.Background(), &CreateCompanyInput{
		Name:    "Acme",
		Email:   email,
		Address: testAddressInput(),
	})
	require.NoError(t, err)
	return company
}

func createTestCustomer(t *testing.T, store *db.Store, companyID, email string) *models.Customer {
	t.Helper()
	svc := NewCustomer(store, &mockProducer{}, zaptest.NewLogger(t))
	customer, err := svc.Create(context.Background(), &CreateCustomerInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		CompanyID: companyID,
		Address:   testAddressInput(),
	})
	require.NoError(t, err)
	return customer
}

func createTestProduct(t *testing.T, store *db.Store, companyID, sku string, price int64) *models.Product {
	t.Helper()
	svc := NewProduct(store, &mockProducer{}, zaptest.NewLogger(t))
	product, err := svc.Create(context.Background(), &CreateProductInput{
		Name:      "Widget " + sku,
		SKU:       sku,
		Price:     price,
		Currency:  "EUR",
		CompanyID: companyID,
	})
	require.NoError(t, err)
	return product
}

func countRows(t *testing.T, gdb *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, gdb.Model(model).Count(&count).Error)
	return count
}
