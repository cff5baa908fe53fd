package models

import "time"

// DefaultRating is applied to seed records that leave the rating unset.
const DefaultRating = 4.8

// DefaultCatalog returns a fresh copy of the canonical product list, in seed
// order, with defaults applied and CreatedAt stamped with createdAt.
func DefaultCatalog(createdAt time.Time) []Product {
	products := []Product{
		{
			ID:          "akb-001",
			Name:        "German Eagle (Federal Court Eagle)",
			Description: "German Eagle (Federal Court Eagle) zinc alloy materials, size 90mm FRONT HOOD BADGE FIT LIKE THE ORIGINAL VW EMBLEM FITS THE 1956-1960 (3 holes hood) & 1961-1976 BEETLE",
			Price:       39.99,
			Stock:       UnlimitedStock,
			Category:    "Hood Badges",
			Image:       "/r0002.png",
			Images:      []string{"/r0002.png"},
			Tags:        []string{"German", "Eagle", "Hood Badge", "90mm", "1956-1976"},
			Rating:      4.9,
			Reviews:     156,
			SKU:         "AKB-001-GE-90",
		},
		{
			ID:          "akb-002",
			Name:        "German Eagle Shift Knob",
			Description: "Wolfsburg Shift Knob Ivory / Black Threaded, 3 size in one shift knob (7mm,10mm,12mm) fit all VW type also we have adapters for after market shifters 1946-1979 Beetle 1952-1979 Bus 1956-1974 Ghia 1962-1974 Type 3 Thing",
			Price:       49.99,
			Stock:       2,
			Category:    "Shift Knobs",
			Image:       "/images/r0003.png",
			Images:      []string{"/images/r0003.png"},
			Tags:        []string{"Wolfsburg", "Shift Knob", "Threaded", "Multi-size"},
			Rating:      4.8,
			Reviews:     89,
			SKU:         "AKB-002-WS-THR",
		},
		{
			ID:          "akb-003",
			Name:        "German Deutschland Hood Badge Crest",
			Description: "GERMAN DEUTSCHLAND HOOD BADGE CREST Zinc Alloy Material fit like the original Size is 38mm x 54mm",
			Price:       19.99,
			Stock:       44,
			Category:    "Hood Crests",
			Image:       "/images/r0004.png",
			Images:      []string{"/images/r0004.png"},
			Tags:        []string{"Deutschland", "Hood Crest", "38x54mm", "Germany"},
			Rating:      4.7,
			Reviews:     203,
			SKU:         "AKB-003-DE-38",
		},
		{
			ID:          "akb-004",
			Name:        "Wolfsburg Crest Hood",
			Description: "WOLFSBURG CREST HOOD EMBLEM SIZE 38mm x 54mm Zinc alloy metal",
			Price:       19.99,
			Stock:       5,
			Category:    "Hood Crests",
			Image:       "/images/r0005.png",
			Images:      []string{"/images/r0005.png"},
			Tags:        []string{"Wolfsburg", "Hood Crest", "38x54mm", "Zinc Alloy"},
			Rating:      4.9,
			Reviews:     127,
			SKU:         "AKB-004-WB-38",
		},
		{
			ID:          "akb-005",
			Name:        "VW Shift knob with Wolfsburg emblem",
			Description: "Wolfsburg Shift Knob Ivory / Black Threaded, 3 size in one shift knob also we have adapters for after market shifters (7mm,10mm,12mm) fit all VW type 1946-1979 Beetle 1952-1979 Bus 1956-1974 Ghia 1962-1974 Type 3 Thing",
			Price:       49.99,
			Stock:       6,
			Category:    "Shift Knobs",
			Image:       "/images/r0006.png",
			Images:      []string{"/images/r0006.png"},
			Tags:        []string{"Wolfsburg", "Shift Knob", "VW Emblem", "Multi-size"},
			Rating:      5.0,
			Reviews:     98,
			SKU:         "AKB-005-VW-WB",
		},
		{
			ID:          "akb-006",
			Name:        "Eagle Horn Grill",
			Description: "Eagle Horn Grill (Federal Coat of Arm Germany) Fit 1953-1967 Beetle Made of Polished Aluminum Fit perfectly, NO Drilling Just tight it from the back it Add a adorable touch and make your ride looks different.",
			Price:       49.99,
			Stock:       9,
			Category:    "Horn Grills",
			Image:       "/images/r0007.png",
			Images:      []string{"/images/r0007.png"},
			Tags:        []string{"Eagle", "Horn Grill", "1953-1967", "Polished Aluminum"},
			Rating:      4.8,
			Reviews:     74,
			SKU:         "AKB-006-EG-AL",
		},
		{
			ID:          "akb-007",
			Name:        "German Deutschland Hood Badge Crest",
			Description: "GERMAN DEUTSCHLAND HOOD BADGE CREST Zinc Alloy Material fit like the original Size is 38mm x 54mm",
			Price:       19.99,
			Stock:       19,
			Category:    "Hood Crests",
			Image:       "/images/r0008.png",
			Images:      []string{"/images/r0008.png"},
			Tags:        []string{"Deutschland", "Hood Crest", "38x54mm", "Germany"},
			Rating:      4.6,
			Reviews:     145,
			SKU:         "AKB-007-DE-38B",
		},
		{
			ID:          "akb-008",
			Name:        "Hawaii Front Hood Badge",
			Description: "HAWAII FRONT HOOD BADGE FIT LIKE THE ORIGINAL VW EMBLEM FITS THE 1961-1972 BEETLE (3 holes hood) ASK PLS FOR THE YEAR 1956-60, 3 HOLS HOOD TYPE 3 1963-69 also on BAYWINDOW BUS FRONT VENT",
			Price:       55.0,
			Stock:       2,
			Category:    "Hood Badges",
			Image:       "/images/r0009.png",
			Images:      []string{"/images/r0009.png"},
			Tags:        []string{"Hawaii", "Front Hood", "1961-1972", "3 holes"},
			Rating:      4.9,
			Reviews:     34,
			SKU:         "AKB-008-HW-90",
		},
		{
			ID:          "akb-009",
			Name:        "St. Christophorus Hood Badge Crest",
			Description: "ST. CHRISTOPHORUS HOOD BADGE CREST SIZE 38mm x 54mm Zinc alloy metal",
			Price:       19.99,
			Stock:       21,
			Category:    "Hood Crests",
			Image:       "/images/r0010.png",
			Images:      []string{"/images/r0010.png"},
			Tags:        []string{"St. Christophorus", "Hood Crest", "38x54mm", "Religious"},
			Rating:      4.7,
			Reviews:     67,
			SKU:         "AKB-009-SC-38",
		},
		{
			ID:          "akb-010",
			Name:        "Wolfsburg Crest Hood Emblem",
			Description: "WOLFSBURG CREST HOOD EMBLEM SIZE 38mm x 54mm Zinc alloy metal",
			Price:       19.99,
			Stock:       4,
			Category:    "Hood Crests",
			Image:       "/images/r0011.png",
			Images:      []string{"/images/r0011.png"},
			Tags:        []string{"Wolfsburg", "Hood Emblem", "38x54mm", "Classic"},
			Rating:      4.8,
			Reviews:     189,
			SKU:         "AKB-010-WB-38B",
		},
		{
			ID:          "akb-011",
			Name:        "Wolfsburg Shift Knob - Gold Castle",
			Description: "Wolfsburg Shift Knob Ivory / Black Threaded, 3 size in one shift knob also we have adapters for after market shifters (7mm,10mm,12mm) fit all VW type 1946-1979 Beetle 1952-1979 Bus 1956-1974 Ghia 1962-1974 Type 3 Thing",
			Price:       49.99,
			Stock:       6,
			Category:    "Shift Knobs",
			Image:       "/images/r0012.png",
			Images:      []string{"/images/r0012.png"},
			Tags:        []string{"Wolfsburg", "Shift Knob", "Gold Castle", "Premium"},
			Rating:      4.9,
			Reviews:     112,
			SKU:         "AKB-011-WS-GC",
		},
		{
			ID:          "akb-012",
			Name:        "Mexico Flag Hood Crest Emblem",
			Description: "MEXICO FLAG HOOD CREST EMBLEM Zinc Alloy Materials, size 38mm X 54mm Fit VW Beetle like the original",
			Price:       19.99,
			Stock:       5,
			Category:    "Hood Crests",
			Image:       "/images/r0013.png",
			Images:      []string{"/images/r0013.png"},
			Tags:        []string{"Mexico", "Flag", "Hood Crest", "38x54mm"},
			Rating:      4.8,
			Reviews:     91,
			SKU:         "AKB-012-MX-38",
		},
		{
			ID:          "akb-013",
			Name:        "VW Eagle Crest Wolfsburg Hood Badge",
			Description: "VW EAGLE CREST WOLFSBURG HOOD BADGE CREST Zinc Alloy Material fit like the original Size is 38mm x 54mm",
			Price:       19.99,
			Stock:       7,
			Category:    "Hood Crests",
			Image:       "/images/r0014.png",
			Images:      []string{"/images/r0014.png"},
			Tags:        []string{"VW Eagle", "Wolfsburg", "Hood Badge", "38x54mm"},
			Rating:      4.7,
			Reviews:     156,
			SKU:         "AKB-013-VWE-38",
		},
		{
			ID:          "akb-014",
			Name:        "Wolfsburg Front Hood Badge",
			Description: "WOLFSBURG FRONT HOOD BADGE Zinc Alloy Materials, size 90mm FIT LIKE THE ORIGINAL VW EMBLEM FITS THE 1956-1960 (3 Holes Hood) 1961-1976 BEETLE also fit (bay window bus vent)",
			Price:       39.99,
			Stock:       5,
			Category:    "Hood Badges",
			Image:       "/images/r0015.png",
			Images:      []string{"/images/r0015.png"},
			Tags:        []string{"Wolfsburg", "Front Hood", "90mm", "1956-1976"},
			Rating:      4.9,
			Reviews:     143,
			SKU:         "AKB-014-WB-90",
		},
		{
			ID:          "akb-015",
			Name:        "Wolfsburg Shift Knob - Gold Wolf",
			Description: "Wolfsburg Shift Knob Ivory / Black Threaded, 3 size in one shift knob also we have adapters for after market shifters (7mm,10mm,12mm) fit all VW type 1946-1979 Beetle 1952-1979 Bus 1956-1974 Ghia 1962-1974 Type 3 Thing",
			Price:       49.99,
			Stock:       9,
			Category:    "Shift Knobs",
			Image:       "/images/r0016.png",
			Images:      []string{"/images/r0016.png"},
			Tags:        []string{"Wolfsburg", "Shift Knob", "Gold Wolf", "Limited Edition"},
			Rating:      5.0,
			Reviews:     78,
			SKU:         "AKB-015-WS-GW",
		},
		{
			ID:          "akb-016",
			Name:        "VW Shift Knob with Wolfsburg Emblem Logo",
			Description: "Wolfsburg Shift Knob Ivory / Black Threaded, 3 size in one shift knob (7mm,10mm,12mm) fit all VW type also we have adapters for after market shifters 1946-1979 Beetle 1952-1979 Bus 1956-1974 Ghia 1962-1974 Type 3 Thing",
			Price:       49.99,
			Stock:       10,
			Category:    "Shift Knobs",
			Image:       "/images/r0017.png",
			Images:      []string{"/images/r0017.png"},
			Tags:        []string{"VW", "Wolfsburg", "Shift Knob", "Logo"},
			Rating:      4.8,
			Reviews:     167,
			SKU:         "AKB-016-VW-WL",
		},
		{
			ID:          "akb-017",
			Name:        "Wolfsburg Horn Grill",
			Description: "Wolfsburg Horn Grill Fit 1953-1967 Beetle Made of Polished Aluminum Fit perfectly, NO Drilling Just tight it from the back it Add a adorable touch and make your ride looks different.",
			Price:       49.99,
			Stock:       7,
			Category:    "Horn Grills",
			Image:       "/images/r0018.png",
			Images:      []string{"/images/r0018.png"},
			Tags:        []string{"Wolfsburg", "Horn Grill", "1953-1967", "New"},
			Rating:      4.9,
			Reviews:     45,
			SKU:         "AKB-017-WH-AL",
		},
		{
			ID:          "akb-018",
			Name:        "Coat of Arms of Brandenburg Hood Badge",
			Description: "COAT OF ARMS OF BRANDENBURG HOOD BADGE CREST Zinc Alloy Material fit like the original Size is 38mm x 54mm",
			Price:       19.99,
			Stock:       7,
			Category:    "Hood Crests",
			Image:       "/images/r0019.png",
			Images:      []string{"/images/r0019.png"},
			Tags:        []string{"Brandenburg", "Coat of Arms", "Hood Badge", "German"},
			Rating:      4.6,
			Reviews:     34,
			SKU:         "AKB-018-BR-38",
		},
		{
			ID:          "akb-019",
			Name:        "Coat of Arms of Sao Bernardo do Campo",
			Description: "COAT OF ARMS OF SAO BERNARDO DO CAMPO (BRAZIL) Zinc Alloy materials fit like the original size 38mm x 54mm",
			Price:       19.99,
			Stock:       9,
			Category:    "Hood Crests",
			Image:       "/images/r0020.png",
			Images:      []string{"/images/r0020.png"},
			Tags:        []string{"Brazil", "Sao Bernardo", "Coat of Arms", "Rare"},
			Rating:      4.8,
			Reviews:     23,
			SKU:         "AKB-019-BR-38",
		},
		{
			ID:          "akb-020",
			Name:        "Mexico Flag Front Hood Badge",
			Description: "MEXICO FLAG FRONT HOOD BADGE Zinc Alloy Materials, size 90mm FIT LIKE THE ORIGINAL VW EMBLEM FITS THE 1956-1960 (3 Holes Hood) 1961-1976 BEETLE also fit (bay window bus vent)",
			Price:       39.99,
			Stock:       9,
			Category:    "Hood Badges",
			Image:       "/images/r0021.png",
			Images:      []string{"/images/r0021.png"},
			Tags:        []string{"Mexico", "Flag", "Front Hood", "90mm"},
			Rating:      4.7,
			Reviews:     67,
			SKU:         "AKB-020-MX-90",
		},
	}
	for i := range products {
		ApplyDefaults(&products[i], createdAt)
	}
	return products
}

// ApplyDefaults fills the optional fields of p the way a freshly inserted
// record expects them.
func ApplyDefaults(p *Product, createdAt time.Time) {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Rating == 0 {
		p.Rating = DefaultRating
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = createdAt
	}
}
