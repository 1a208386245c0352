package gildedrose

import "github.com/google/uuid"

// NewItem creates an item bound to kind. An invalid kind falls back to the
// policy resolved from the name.
func NewItem(name string, kind Kind, sellIn, quality int) *Item {
	if !kind.IsValid() {
		kind = KindForName(name)
	}
	return &Item{
		ID:      uuid.New(),
		Name:    name,
		SellIn:  sellIn,
		Quality: quality,
		kind:    kind,
	}
}

// NewItemByName creates an item whose policy is resolved from its name once.
func NewItemByName(name string, sellIn, quality int) *Item {
	return NewItem(name, KindForName(name), sellIn, quality)
}

func NewDexterityVest(sellIn, quality int) *Item {
	return NewItem(NameDexterityVest, KindStandard, sellIn, quality)
}

func NewAgedBrie(sellIn, quality int) *Item {
	return NewItem(NameAgedBrie, KindAgedCheese, sellIn, quality)
}

func NewElixirOfTheMongoose(sellIn, quality int) *Item {
	return NewItem(NameElixir, KindStandard, sellIn, quality)
}

func NewSulfuras(sellIn, quality int) *Item {
	return NewItem(NameSulfuras, KindLegendary, sellIn, quality)
}

func NewBackstagePass(sellIn, quality int) *Item {
	return NewItem(NameBackstagePass, KindEventTicket, sellIn, quality)
}

func NewConjuredManaCake(sellIn, quality int) *Item {
	return NewItem(NameConjuredCake, KindConjured, sellIn, quality)
}
