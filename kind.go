package gildedrose

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a kind string is not one of the supported policies.
var ErrUnknownKind = errors.New("unknown item kind")

// Kind selects the update policy for an item.
type Kind string

const (
	// KindStandard loses one quality per day, two once expired.
	KindStandard Kind = "standard"
	// KindAgedCheese gains one quality per day, two once expired.
	KindAgedCheese Kind = "aged_cheese"
	// KindLegendary never changes.
	KindLegendary Kind = "legendary"
	// KindEventTicket gains value as the event approaches and is worthless after it.
	KindEventTicket Kind = "event_ticket"
	// KindConjured currently degrades at the standard rate.
	KindConjured Kind = "conjured"
)

// Catalogue names recognised by KindForName, plus the two standard items.
const (
	NameDexterityVest = "+5 Dexterity Vest"
	NameAgedBrie      = "Aged Brie"
	NameElixir        = "Elixir of the Mongoose"
	NameSulfuras      = "Sulfuras, Hand of Ragnaros"
	NameBackstagePass = "Backstage passes to a TAFKAL80ETC concert"
	NameConjuredCake  = "Conjured Mana Cake"
)

// Ticket quality rises by an extra point below each of these sell-in values.
const (
	ticketFirstRaise  = 11
	ticketSecondRaise = 6
)

// IsValid checks if the kind is one of the supported enum values.
func (k Kind) IsValid() bool {
	switch k {
	case KindStandard, KindAgedCheese, KindLegendary, KindEventTicket, KindConjured:
		return true
	}
	return false
}

// String returns the string representation.
func (k Kind) String() string {
	return string(k)
}

// ParseKind creates a Kind from a string, validating it.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// KindForName resolves the policy for a catalogue name. Names that are not
// special-cased fall back to the standard policy.
func KindForName(name string) Kind {
	switch name {
	case NameAgedBrie:
		return KindAgedCheese
	case NameSulfuras:
		return KindLegendary
	case NameBackstagePass:
		return KindEventTicket
	case NameConjuredCake:
		return KindConjured
	default:
		return KindStandard
	}
}

// Update applies one simulated day to item. Threshold checks use the sell-in
// value from before the daily decrement; the expiry rule runs against the
// value after it. Every quality step is guarded so non-legendary items stay
// within [0, 50].
func (k Kind) Update(item *Item) {
	switch k {
	case KindLegendary:
		return
	case KindAgedCheese:
		updateAgedCheese(item)
	case KindEventTicket:
		updateEventTicket(item)
	case KindConjured:
		// Same shape as standard; the doubled degrade rate is not applied.
		updateStandard(item)
	default:
		updateStandard(item)
	}
}

func updateStandard(item *Item) {
	if item.Quality > minQuality {
		item.DecrementQuality()
	}

	item.DecrementSellIn()

	if item.Expired() && item.Quality > minQuality {
		item.DecrementQuality()
	}
}

func updateAgedCheese(item *Item) {
	if item.Quality < maxQuality {
		item.IncrementQuality()
	}

	item.DecrementSellIn()

	if item.Expired() && item.Quality < maxQuality {
		item.IncrementQuality()
	}
}

func updateEventTicket(item *Item) {
	if item.Quality < maxQuality {
		item.IncrementQuality()
	}

	if item.Quality < maxQuality && item.SellIn < ticketFirstRaise {
		item.IncrementQuality()
	}

	if item.Quality < maxQuality && item.SellIn < ticketSecondRaise {
		item.IncrementQuality()
	}

	item.DecrementSellIn()

	if item.Expired() {
		item.Quality = minQuality
	}
}
