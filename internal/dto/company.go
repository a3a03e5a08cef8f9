package dto

import "github.com/vendira/commerce/internal/id"

var CompanyCreate = &Contract{Fields: []Field{
	{Name: "name", Exposed: true, Rules: []Rule{Length(1, 255)}},
	{Name: "email", Exposed: true, Rules: []Rule{Email()}},
	{Name: "address", Exposed: true, Nested: AddressCreate},
}}

var CompanyUpdate = &Contract{Fields: []Field{
	{Name: "id", Exposed: true, Rules: []Rule{ResourceID(id.Company)}},
	{Name: "name", Exposed: true, Optional: true, Rules: []Rule{Length(1, 255)}},
	{Name: "email", Exposed: true, Optional: true, Rules: []Rule{Email()}},
	{Name: "address", Exposed: true, Optional: true, Nested: AddressUpdate},
}}

var CompanyList = &Contract{Fields: []Field{
	{Name: "name", Exposed: true, Optional: true, Rules: []Rule{String()}},
	{Name: "email", Exposed: true, Optional: true, Rules: []Rule{String()}},
	{Name: "address", Exposed: true, Optional: true, Nested: AddressFilter},
	{Name: "options", Exposed: true, Optional: true, Nested: ListOptionsContract},
}}

var CompanyResponse = &Contract{Fields: append(modelFields(id.Company),
	Field{Name: "name", Exposed: true},
	Field{Name: "email", Exposed: true},
	Field{Name: "address", Exposed: true, Optional: true, Nested: AddressResponse},
)}
