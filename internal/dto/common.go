package dto

import "github.com/vendira/commerce/internal/id"

// modelFields is the shared response fragment carried by every resource:
// identifier and timestamps. Composition instead of contract inheritance.
func modelFields(prefix string) []Field {
	return []Field{
		{Name: "id", Exposed: true, Rules: []Rule{ResourceID(prefix)}},
		{Name: "createdAt", Exposed: true, Optional: true},
		{Name: "updatedAt", Exposed: true, Optional: true},
	}
}

// IDOnly is the contract for path-parameter-only requests (get, delete,
// sale transitions).
func IDOnly(prefix string) *Contract {
	return &Contract{Fields: []Field{
		{Name: "id", Exposed: true, Rules: []Rule{ResourceID(prefix)}},
	}}
}

// ListOptionsContract bounds pagination. Absent values fall back to the
// storage defaults (limit 10, page 1).
var ListOptionsContract = &Contract{Fields: []Field{
	{Name: "limit", Exposed: true, Optional: true, Rules: []Rule{Range(1, 100)}},
	{Name: "page", Exposed: true, Optional: true, Rules: []Rule{Range(1, 1_000_000)}},
}}

// AddressCreate is the nested address fragment for aggregate creates.
var AddressCreate = &Contract{Fields: []Field{
	{Name: "line1", Exposed: true, Rules: []Rule{Length(1, 255)}},
	{Name: "postcode", Exposed: true, Rules: []Rule{Length(1, 20)}},
	{Name: "city", Exposed: true, Rules: []Rule{Length(1, 100)}},
	{Name: "province", Exposed: true, Rules: []Rule{Length(1, 100)}},
	{Name: "country", Exposed: true, Rules: []Rule{Length(1, 100)}},
}}

// AddressUpdate accepts any subset of address columns.
var AddressUpdate = &Contract{Fields: []Field{
	{Name: "line1", Exposed: true, Optional: true, Rules: []Rule{Length(1, 255)}},
	{Name: "postcode", Exposed: true, Optional: true, Rules: []Rule{Length(1, 20)}},
	{Name: "city", Exposed: true, Optional: true, Rules: []Rule{Length(1, 100)}},
	{Name: "province", Exposed: true, Optional: true, Rules: []Rule{Length(1, 100)}},
	{Name: "country", Exposed: true, Optional: true, Rules: []Rule{Length(1, 100)}},
}}

// AddressFilter is the one-level-deep nested filter for list endpoints.
var AddressFilter = &Contract{Fields: []Field{
	{Name: "postcode", Exposed: true, Optional: true, Rules: []Rule{String()}},
	{Name: "city", Exposed: true, Optional: true, Rules: []Rule{String()}},
	{Name: "province", Exposed: true, Optional: true, Rules: []Rule{String()}},
	{Name: "country", Exposed: true, Optional: true, Rules: []Rule{String()}},
}}

// AddressResponse exposes the owned address inside parent responses. The
// address is never addressable on its own, so it carries no top-level route.
var AddressResponse = &Contract{Fields: append(modelFields(id.Address),
	Field{Name: "line1", Exposed: true},
	Field{Name: "postcode", Exposed: true},
	Field{Name: "city", Exposed: true},
	Field{Name: "province", Exposed: true},
	Field{Name: "country", Exposed: true},
)}
