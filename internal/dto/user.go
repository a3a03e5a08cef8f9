package dto

import "github.com/vendira/commerce/internal/id"

// CompanyUserCreate provisions a user bound to a company. The password only
// exists in flight; responses never expose credential material.
var CompanyUserCreate = &Contract{Fields: []Field{
	{Name: "email", Exposed: true, Rules: []Rule{Email()}},
	{Name: "password", Exposed: true, Rules: []Rule{Length(8, 72)}},
	{Name: "companyId", Exposed: true, Rules: []Rule{ResourceID(id.Company)}},
}}

var CompanyUserList = &Contract{Fields: []Field{
	{Name: "companyId", Exposed: true, Optional: true, Rules: []Rule{ResourceID(id.Company)}},
	{Name: "options", Exposed: true, Optional: true, Nested: ListOptionsContract},
}}

// CompanyUserResponse is a flattened view over CompanyUser and its User.
// passwordHash and salt are not declared, so they can never leak.
var CompanyUserResponse = &Contract{Fields: append(modelFields(id.CompanyUser),
	Field{Name: "companyId", Exposed: true},
	Field{Name: "userId", Exposed: true},
	Field{Name: "email", Exposed: true},
)}
