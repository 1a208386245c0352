package gildedrose

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogue(t *testing.T) {
	entries := DefaultCatalogue()

	require.Len(t, entries, 9)
	for _, entry := range entries {
		assert.Equal(t, KindForName(entry.Name), entry.Kind, entry.Name)
	}
}

func TestLoadCatalogue_File(t *testing.T) {
	file, err := os.Open("testdata/catalogue.yaml")
	require.NoError(t, err)
	defer file.Close()

	entries, err := LoadCatalogue(file)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	items, err := BuildItems(entries)
	require.NoError(t, err)

	want := []struct {
		name    string
		kind    Kind
		sellIn  int
		quality int
	}{
		{NameDexterityVest, KindStandard, 10, 20},
		{NameAgedBrie, KindAgedCheese, 2, 0},
		{NameSulfuras, KindLegendary, 0, 80},
		{NameBackstagePass, KindEventTicket, 15, 20},
		{"Starlight Tonic", KindConjured, 3, 6},
	}
	for i, w := range want {
		assert.Equal(t, w.name, items[i].Name)
		assert.Equal(t, w.kind, items[i].Kind())
		assert.Equal(t, w.sellIn, items[i].SellIn)
		assert.Equal(t, w.quality, items[i].Quality)
	}
}

func TestLoadCatalogue_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		wantMsg string
	}{
		{
			name:    "empty document",
			doc:     "",
			wantErr: ErrEmptyCatalogue,
		},
		{
			name:    "no items",
			doc:     "items: []\n",
			wantErr: ErrEmptyCatalogue,
		},
		{
			name:    "unknown kind",
			doc:     "items:\n  - name: Rusty Sword\n    kind: cursed\n    sell_in: 1\n    quality: 1\n",
			wantErr: ErrUnknownKind,
		},
		{
			name:    "blank name",
			doc:     "items:\n  - name: \"  \"\n    sell_in: 1\n    quality: 1\n",
			wantErr: ErrEmptyName,
		},
		{
			name:    "quality above fifty",
			doc:     "items:\n  - name: Aged Brie\n    sell_in: 2\n    quality: 70\n",
			wantErr: ErrQualityOutOfRange,
		},
		{
			name:    "negative quality",
			doc:     "items:\n  - name: Elixir of the Mongoose\n    sell_in: 2\n    quality: -4\n",
			wantErr: ErrQualityOutOfRange,
		},
		{
			name:    "explicit kind overrides legendary name",
			doc:     "items:\n  - name: Sulfuras, Hand of Ragnaros\n    kind: standard\n    sell_in: 0\n    quality: 80\n",
			wantErr: ErrQualityOutOfRange,
		},
		{
			name:    "unknown field",
			doc:     "items:\n  - name: Typo Vest\n    sellin: 9\n    quality: 5\n",
			wantMsg: "sellin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := LoadCatalogue(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Nil(t, entries)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoadCatalogue_QualityBounds(t *testing.T) {
	doc := `items:
  - name: Aged Brie
    sell_in: 2
    quality: 50
  - name: Elixir of the Mongoose
    sell_in: 2
    quality: 0
  - name: Sulfuras, Hand of Ragnaros
    sell_in: -1
    quality: 80
  - name: Ancient Relic
    kind: legendary
    sell_in: 0
    quality: -3
`

	entries, err := LoadCatalogue(strings.NewReader(doc))
	require.NoError(t, err)

	items, err := BuildItems(entries)
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, 50, items[0].Quality)
	assert.Equal(t, 0, items[1].Quality)
	assert.Equal(t, 80, items[2].Quality)
	assert.Equal(t, -3, items[3].Quality)
}

func TestCatalogueEntry_Build_RejectsOutOfRangeQuality(t *testing.T) {
	_, err := CatalogueEntry{Name: NameAgedBrie, SellIn: 2, Quality: 51}.Build()

	assert.ErrorIs(t, err, ErrQualityOutOfRange)
}

func TestLoadCatalogue_Malformed(t *testing.T) {
	_, err := LoadCatalogue(strings.NewReader("items: [name: {"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalogue")
}

func TestBuildItems_RejectsInvalidEntry(t *testing.T) {
	entries := []CatalogueEntry{
		{Name: NameAgedBrie, SellIn: 2, Quality: 0},
		{Name: "Rusty Sword", Kind: "cursed", SellIn: 1, Quality: 1},
	}

	_, err := BuildItems(entries)

	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), "catalogue entry 1")
}
