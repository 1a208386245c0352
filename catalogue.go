package gildedrose

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyCatalogue = errors.New("catalogue has no items")
	ErrEmptyName      = errors.New("catalogue entry has no name")

	// ErrQualityOutOfRange is returned for a non-legendary entry whose quality
	// falls outside [0, 50].
	ErrQualityOutOfRange = errors.New("catalogue entry quality out of range")
)

// CatalogueEntry describes one item to stock at startup. Kind may be left
// empty, in which case it is resolved from Name.
type CatalogueEntry struct {
	Name    string `yaml:"name"`
	Kind    Kind   `yaml:"kind,omitempty"`
	SellIn  int    `yaml:"sell_in"`
	Quality int    `yaml:"quality"`
}

type catalogueFile struct {
	Items []CatalogueEntry `yaml:"items"`
}

// DefaultCatalogue returns the fixed starting stock.
func DefaultCatalogue() []CatalogueEntry {
	return []CatalogueEntry{
		{Name: NameDexterityVest, Kind: KindStandard, SellIn: 10, Quality: 20},
		{Name: NameAgedBrie, Kind: KindAgedCheese, SellIn: 2, Quality: 0},
		{Name: NameElixir, Kind: KindStandard, SellIn: 5, Quality: 7},
		{Name: NameSulfuras, Kind: KindLegendary, SellIn: 0, Quality: 80},
		{Name: NameSulfuras, Kind: KindLegendary, SellIn: -1, Quality: 80},
		{Name: NameBackstagePass, Kind: KindEventTicket, SellIn: 15, Quality: 20},
		{Name: NameBackstagePass, Kind: KindEventTicket, SellIn: 10, Quality: 49},
		{Name: NameBackstagePass, Kind: KindEventTicket, SellIn: 5, Quality: 49},
		{Name: NameConjuredCake, Kind: KindConjured, SellIn: 3, Quality: 6},
	}
}

// LoadCatalogue decodes a YAML catalogue of the form:
//
//	items:
//	  - name: Aged Brie
//	    kind: aged_cheese
//	    sell_in: 2
//	    quality: 0
func LoadCatalogue(r io.Reader) ([]CatalogueEntry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogueFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalogue
		}
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}

	if len(file.Items) == 0 {
		return nil, ErrEmptyCatalogue
	}

	for i, entry := range file.Items {
		if err := entry.validate(); err != nil {
			return nil, fmt.Errorf("catalogue entry %d: %w", i, err)
		}
	}

	return file.Items, nil
}

func (e CatalogueEntry) validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	kind := KindForName(e.Name)
	if e.Kind != "" {
		parsed, err := ParseKind(string(e.Kind))
		if err != nil {
			return err
		}
		kind = parsed
	}
	if kind != KindLegendary && (e.Quality < minQuality || e.Quality > maxQuality) {
		return fmt.Errorf("%w: %d", ErrQualityOutOfRange, e.Quality)
	}
	return nil
}

// Build creates the item described by the entry.
func (e CatalogueEntry) Build() (*Item, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	if e.Kind == "" {
		return NewItemByName(e.Name, e.SellIn, e.Quality), nil
	}
	return NewItem(e.Name, e.Kind, e.SellIn, e.Quality), nil
}

// BuildItems creates one item per entry, preserving order.
func BuildItems(entries []CatalogueEntry) ([]*Item, error) {
	items := make([]*Item, 0, len(entries))
	for i, entry := range entries {
		item, err := entry.Build()
		if err != nil {
			return nil, fmt.Errorf("catalogue entry %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}
