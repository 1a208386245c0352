package gildedrose

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Shop owns an ordered collection of items and advances them one day at a time.
type Shop struct {
	items []*Item
}

func NewShop(items ...*Item) *Shop {
	owned := make([]*Item, len(items))
	copy(owned, items)
	return &Shop{items: owned}
}

// UpdateQuality advances every item by one day, in collection order.
func (s *Shop) UpdateQuality() {
	for _, item := range s.items {
		item.Update()
	}
}

// Items returns the held items in collection order. The returned slice is a
// copy; replacing its elements does not change the shop's stock.
func (s *Shop) Items() []*Item {
	items := make([]*Item, len(s.items))
	copy(items, s.items)
	return items
}

// Item looks up a held item by its ID.
func (s *Shop) Item(id uuid.UUID) (*Item, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return nil, false
}

// Summary is a point-in-time view of the shop's stock.
type Summary struct {
	Items          int
	Expired        int
	TotalQuality   int
	AverageQuality decimal.Decimal
}

// Summary aggregates the current stock. Legendary items are counted but
// left out of the quality figures since they sit outside the normal scale.
func (s *Shop) Summary() Summary {
	sum := Summary{Items: len(s.items), AverageQuality: decimal.Zero}

	rated := 0
	for _, item := range s.items {
		if item.Kind() == KindLegendary {
			continue
		}
		if item.Expired() {
			sum.Expired++
		}
		sum.TotalQuality += item.Quality
		rated++
	}

	if rated > 0 {
		sum.AverageQuality = decimal.NewFromInt(int64(sum.TotalQuality)).
			Div(decimal.NewFromInt(int64(rated))).
			Round(2)
	}

	return sum
}
