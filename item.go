package gildedrose

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	minQuality = 0
	maxQuality = 50
)

// Item is a single stock-keeping unit. Its update policy is bound once at
// construction and never re-derived from the name.
type Item struct {
	ID      uuid.UUID
	Name    string
	SellIn  int
	Quality int

	kind Kind
}

// Kind returns the update policy the item was created with.
func (i *Item) Kind() Kind {
	return i.kind
}

// Expired reports whether the sell-by date has passed.
func (i *Item) Expired() bool {
	return i.SellIn < 0
}

// IncrementQuality raises quality by one without bounds checks.
func (i *Item) IncrementQuality() {
	i.Quality++
}

// DecrementQuality lowers quality by one without bounds checks.
func (i *Item) DecrementQuality() {
	i.Quality--
}

// DecrementSellIn moves the sell-by date one day closer.
func (i *Item) DecrementSellIn() {
	i.SellIn--
}

// Update applies one day of the bound policy to the item.
func (i *Item) Update() {
	i.kind.Update(i)
}

// String renders the item as "name, sellIn, quality".
func (i *Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}
