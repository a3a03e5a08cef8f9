package dto

import "github.com/vendira/commerce/internal/id"

// SaleItemCreate deliberately does not expose a line total: totals are
// recomputed server-side from quantity and pricePerUnit.
var SaleItemCreate = &Contract{Fields: []Field{
	{Name: "productId", Exposed: true, Rules: []Rule{ResourceID(id.Product)}},
	{Name: "quantity", Exposed: true, Rules: []Rule{Positive()}},
	{Name: "pricePerUnit", Exposed: true, Rules: []Rule{Range(0, maxPrice)}},
}}

var SaleCreate = &Contract{Fields: []Field{
	{Name: "companyId", Exposed: true, Rules: []Rule{ResourceID(id.Company)}},
	{Name: "customerId", Exposed: true, Rules: []Rule{ResourceID(id.Customer)}},
	{Name: "comments", Exposed: true, Optional: true, Nullable: true, Rules: []Rule{Length(1, 3000)}},
	{Name: "items", Exposed: true, Rules: []Rule{MinItems(1)}, Elem: SaleItemCreate},
}}

// SaleUpdate covers the only mutable column; status changes go through the
// transition endpoints.
var SaleUpdate = &Contract{Fields: []Field{
	{Name: "id", Exposed: true, Rules: []Rule{ResourceID(id.Sale)}},
	{Name: "comments", Exposed: true, Optional: true, Nullable: true, Rules: []Rule{Length(1, 3000)}},
}}

var SaleList = &Contract{Fields: []Field{
	{Name: "companyId", Exposed: true, Optional: true, Rules: []Rule{ResourceID(id.Company)}},
	{Name: "customerId", Exposed: true, Optional: true, Rules: []Rule{ResourceID(id.Customer)}},
	{Name: "statusCode", Exposed: true, Optional: true, Rules: []Rule{Enum("CREATED", "PAID", "CANCELLED", "REFUNDED")}},
	{Name: "options", Exposed: true, Optional: true, Nested: ListOptionsContract},
}}

var SaleItemResponse = &Contract{Fields: append(modelFields(id.SaleItem),
	Field{Name: "saleId", Exposed: true},
	Field{Name: "productId", Exposed: true},
	Field{Name: "quantity", Exposed: true},
	Field{Name: "pricePerUnit", Exposed: true},
	Field{Name: "total", Exposed: true},
)}

var SaleResponse = &Contract{Fields: append(modelFields(id.Sale),
	Field{Name: "statusCode", Exposed: true},
	Field{Name: "total", Exposed: true},
	Field{Name: "comments", Exposed: true, Optional: true, Nullable: true},
	Field{Name: "companyId", Exposed: true},
	Field{Name: "customerId", Exposed: true},
	Field{Name: "items", Exposed: true, Optional: true, Elem: SaleItemResponse},
)}
