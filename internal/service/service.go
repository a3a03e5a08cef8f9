// Package service implements the per-entity business logic: CRUD flows,
// aggregate transactions spanning owned entities, and the sale lifecycle.
// Services are stateless; all durable state lives in storage, so one
// instance is safely shared across concurrent requests.
package service

import (
	"github.com/vendira/commerce/internal/db"
	"github.com/vendira/commerce/internal/events"
)

// EventProducer publishes entity lifecycle events after a successful commit.
type EventProducer interface {
	Produce(eventType events.EventType, resourceID string, payload any)
}

// ListOptionsInput is the decoded pagination fragment of list requests.
type ListOptionsInput struct {
	Limit int `json:"limit"`
	Page  int `json:"page"`
}

func listOptions(in *ListOptionsInput) db.ListOptions {
	if in == nil {
		return db.ListOptions{}
	}
	return db.ListOptions{Limit: in.Limit, Page: in.Page}
}

// AddressInput is the nested address fragment of aggregate creates.
type AddressInput struct {
	Line1    string `json:"line1"`
	Postcode string `json:"postcode"`
	City     string `json:"city"`
	Province string `json:"province"`
	Country  string `json:"country"`
}

// AddressPatch is the nested address fragment of aggregate updates.
type AddressPatch struct {
	Line1    *string `json:"line1"`
	Postcode *string `json:"postcode"`
	City     *string `json:"city"`
	Province *string `json:"province"`
	Country  *string `json:"country"`
}

func (p *AddressPatch) changes() map[string]any {
	out := map[string]any{}
	if p.Line1 != nil {
		out["line1"] = *p.Line1
	}
	if p.Postcode != nil {
		out["postcode"] = *p.Postcode
	}
	if p.City != nil {
		out["city"] = *p.City
	}
	if p.Province != nil {
		out["province"] = *p.Province
	}
	if p.Country != nil {
		out["country"] = *p.Country
	}
	return out
}

// AddressFilterInput is the nested address fragment of list filters.
type AddressFilterInput struct {
	Postcode *string `json:"postcode"`
	City     *string `json:"city"`
	Province *string `json:"province"`
	Country  *string `json:"country"`
}

func addressFilter(in *AddressFilterInput) db.AddressFilter {
	if in == nil {
		return db.AddressFilter{}
	}
	return db.AddressFilter{
		Postcode: in.Postcode,
		City:     in.City,
		Province: in.Province,
		Country:  in.Country,
	}
}
