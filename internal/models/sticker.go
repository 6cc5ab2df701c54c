package models

// Sticker is a single word printed on a sticker sheet
type Sticker struct {
	Word   string `json:"word" yaml:"word"`
	Vowels int    `json:"vowels" yaml:"vowels"`
}

// StickerSheet groups the stickers that share one image asset
type StickerSheet struct {
	ID       string    `json:"sheet" yaml:"sheet"`
	Image    string    `json:"image" yaml:"image"`
	Stickers []Sticker `json:"stickers" yaml:"stickers"`
}

// Catalog is the ordered, read-only list of sheets loaded at startup
type Catalog []StickerSheet

// Len returns the number of usable sheets
func (c Catalog) Len() int {
	return len(c)
}

// CanDraw reports whether the catalog holds enough sheets for a draw
func (c Catalog) CanDraw() bool {
	return len(c) >= SheetsPerDraw
}

// IDs returns sheet identifiers in catalog order
func (c Catalog) IDs() []string {
	ids := make([]string, len(c))
	for i, sheet := range c {
		ids[i] = sheet.ID
	}
	return ids
}

// StickerCount returns the total number of stickers across all sheets
func (c Catalog) StickerCount() int {
	total := 0
	for _, sheet := range c {
		total += len(sheet.Stickers)
	}
	return total
}
