package extractor

import (
	"strings"
	"testing"

	"github.com/housestock/backend/internal/domain"
)

func TestExtractPageContent_Title(t *testing.T) {
	testCases := []struct {
		name string
		html string
		want string
	}{
		{
			name: "uses first h1",
			html: `<body><h1>Barbera d'Alba</h1><h1>Second</h1></body>`,
			want: "Barbera d'Alba",
		},
		{
			name: "falls back to product name class",
			html: `<body><div class="pdp-product-name__title">Gevrey-Chambertin</div></body>`,
			want: "Gevrey-Chambertin",
		},
		{
			name: "falls back to camelCase product name class",
			html: `<body><span class="productName">Meursault</span></body>`,
			want: "Meursault",
		},
		{
			name: "rejects titles of 200 characters or more",
			html: `<body><h1>` + strings.Repeat("x", 200) + `</h1></body>`,
			want: "<nil>",
		},
		{
			name: "no title element",
			html: `<body><p>Text</p></body>`,
			want: "<nil>",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := extractPageContent(parseDoc(t, tc.html), 2026)
			if deref(got.Name) != tc.want {
				t.Errorf("Name = %v, want %v", deref(got.Name), tc.want)
			}
		})
	}
}

func TestExtractPageContent_Price(t *testing.T) {
	testCases := []struct {
		name string
		html string
		want float64 // 0 means unset
	}{
		{
			name: "skips old price and reads first qualifying element",
			html: `<body><span class="price-old">60.00</span><span class="price">CHF 42.50 (was 60.00)</span></body>`,
			want: 42.5,
		},
		{
			name: "skips crossed price",
			html: `<body><s class="price crossed">30.00</s><b class="final-price">25.00</b></body>`,
			want: 25,
		},
		{
			name: "comma as decimal separator in microdata",
			html: `<body><p itemprop="price">19,90 €</p></body>`,
			want: 19.9,
		},
		{
			name: "no decimal pattern",
			html: `<body><span class="price">42 Franken</span></body>`,
			want: 0,
		},
		{
			name: "no price element",
			html: `<body><span>12.50</span></body>`,
			want: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := extractPageContent(parseDoc(t, tc.html), 2026)
			if tc.want == 0 {
				if got.PurchasePrice != nil {
					t.Errorf("PurchasePrice = %v, want unset", *got.PurchasePrice)
				}
				return
			}
			if got.PurchasePrice == nil || *got.PurchasePrice != tc.want {
				t.Errorf("PurchasePrice = %v, want %v", got.PurchasePrice, tc.want)
			}
		})
	}
}

func TestExtractWineDetailsFromText(t *testing.T) {
	t.Run("matches reference tables case-insensitively", func(t *testing.T) {
		var data domain.ExtractionResult
		extractWineDetailsFromText("Ein kräftiger Wein aus dem PIEMONT, Italia. Traube: nebbiolo", 2026, &data)

		if deref(data.Region) != "Piemont" {
			t.Errorf("Region = %v, want Piemont", deref(data.Region))
		}
		if deref(data.Country) != "Italien" {
			t.Errorf("Country = %v, want Italien", deref(data.Country))
		}
		if deref(data.Grape) != "Nebbiolo" {
			t.Errorf("Grape = %v, want Nebbiolo", deref(data.Grape))
		}
	})

	t.Run("first entry in table order wins", func(t *testing.T) {
		var data domain.ExtractionResult
		extractWineDetailsFromText("Merlot und Sangiovese aus Toskana und Bordeaux", 2026, &data)

		if deref(data.Grape) != "Sangiovese" {
			t.Errorf("Grape = %v, want Sangiovese", deref(data.Grape))
		}
		if deref(data.Region) != "Toskana" {
			t.Errorf("Region = %v, want Toskana", deref(data.Region))
		}
	})

	t.Run("keeps fields that are already set", func(t *testing.T) {
		data := domain.ExtractionResult{Country: stringPtr("Schweiz")}
		extractWineDetailsFromText("Produced in France", 2026, &data)

		if deref(data.Country) != "Schweiz" {
			t.Errorf("Country = %v, want Schweiz", deref(data.Country))
		}
	})

	vintageCases := []struct {
		name string
		text string
		want int // 0 means unset
	}{
		{"jahrgang with colon", "Jahrgang: 2018", 2018},
		{"no-break space after colon", "Jahrgang:\u00a02018", 2018},
		{"vintage keyword", "VINTAGE 2019 release", 2019},
		{"accented keyword", "Millésime 2012", 2012},
		{"before 1900 rejected", "Jahrgang 1756", 0},
		{"future year rejected", "Vintage 2099", 0},
		{"no keyword", "Abgefüllt 2018", 0},
	}

	for _, tc := range vintageCases {
		t.Run("vintage "+tc.name, func(t *testing.T) {
			var data domain.ExtractionResult
			extractWineDetailsFromText(tc.text, 2026, &data)
			if tc.want == 0 {
				if data.Vintage != nil {
					t.Errorf("Vintage = %d, want unset", *data.Vintage)
				}
				return
			}
			if data.Vintage == nil || *data.Vintage != tc.want {
				t.Errorf("Vintage = %v, want %d", data.Vintage, tc.want)
			}
		})
	}
}
