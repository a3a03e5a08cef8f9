package dto

import "github.com/vendira/commerce/internal/id"

var CustomerCreate = &Contract{Fields: []Field{
	{Name: "firstName", Exposed: true, Rules: []Rule{Length(1, 100)}},
	{Name: "lastName", Exposed: true, Rules: []Rule{Length(1, 100)}},
	{Name: "email", Exposed: true, Rules: []Rule{Email()}},
	{Name: "companyId", Exposed: true, Rules: []Rule{ResourceID(id.Company)}},
	{Name: "address", Exposed: true, Nested: AddressCreate},
}}

var CustomerUpdate = &Contract{Fields: []Field{
	{Name: "id", Exposed: true, Rules: []Rule{ResourceID(id.Customer)}},
	{Name: "firstName", Exposed: true, Optional: true, Rules: []Rule{Length(1, 100)}},
	{Name: "lastName", Exposed: true, Optional: true, Rules: []Rule{Length(1, 100)}},
	{Name: "email", Exposed: true, Optional: true, Rules: []Rule{Email()}},
	{Name: "address", Exposed: true, Optional: true, Nested: AddressUpdate},
}}

var CustomerList = &Contract{Fields: []Field{
	{Name: "firstName", Exposed: true, Optional: true, Rules: []Rule{String()}},
	{Name: "lastName", Exposed: true, Optional: true, Rules: []Rule{String()}},
	{Name: "email", Exposed: true, Optional: true, Rules: []Rule{String()}},
	{Name: "companyId", Exposed: true, Optional: true, Rules: []Rule{ResourceID(id.Company)}},
	{Name: "address", Exposed: true, Optional: true, Nested: AddressFilter},
	{Name: "options", Exposed: true, Optional: true, Nested: ListOptionsContract},
}}

var CustomerResponse = &Contract{Fields: append(modelFields(id.Customer),
	Field{Name: "firstName", Exposed: true},
	Field{Name: "lastName", Exposed: true},
	Field{Name: "email", Exposed: true},
	Field{Name: "companyId", Exposed: true},
	Field{Name: "address", Exposed: true, Optional: true, Nested: AddressResponse},
)}
