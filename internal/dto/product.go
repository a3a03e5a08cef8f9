package dto

import "github.com/vendira/commerce/internal/id"

// Prices are integer minor currency units.
const maxPrice = 99_999_999

var ProductCreate = &Contract{Fields: []Field{
	{Name: "name", Exposed: true, Rules: []Rule{Length(1, 255)}},
	{Name: "description", Exposed: true, Optional: true, Nullable: true, Rules: []Rule{Length(1, 3000)}},
	{Name: "sku", Exposed: true, Rules: []Rule{Length(1, 100)}},
	{Name: "price", Exposed: true, Rules: []Rule{Range(0, maxPrice)}},
	{Name: "currency", Exposed: true, Rules: []Rule{Length(3, 3)}},
	{Name: "companyId", Exposed: true, Rules: []Rule{ResourceID(id.Company)}},
}}

var ProductUpdate = &Contract{Fields: []Field{
	{Name: "id", Exposed: true, Rules: []Rule{ResourceID(id.Product)}},
	{Name: "name", Exposed: true, Optional: true, Rules: []Rule{Length(1, 255)}},
	{Name: "description", Exposed: true, Optional: true, Nullable: true, Rules: []Rule{Length(1, 3000)}},
	{Name: "sku", Exposed: true, Optional: true, Rules: []Rule{Length(1, 100)}},
	{Name: "price", Exposed: true, Optional: true, Rules: []Rule{Range(0, maxPrice)}},
	{Name: "currency", Exposed: true, Optional: true, Rules: []Rule{Length(3, 3)}},
}}

var ProductList = &Contract{Fields: []Field{
	{Name: "name", Exposed: true, Optional: true, Rules: []Rule{String()}},
	{Name: "sku", Exposed: true, Optional: true, Rules: []Rule{String()}},
	{Name: "currency", Exposed: true, Optional: true, Rules: []Rule{String()}},
	{Name: "companyId", Exposed: true, Optional: true, Rules: []Rule{ResourceID(id.Company)}},
	{Name: "options", Exposed: true, Optional: true, Nested: ListOptionsContract},
}}

var ProductResponse = &Contract{Fields: append(modelFields(id.Product),
	Field{Name: "name", Exposed: true},
	Field{Name: "description", Exposed: true, Optional: true, Nullable: true},
	Field{Name: "sku", Exposed: true},
	Field{Name: "price", Exposed: true},
	Field{Name: "currency", Exposed: true},
	Field{Name: "companyId", Exposed: true},
)}
