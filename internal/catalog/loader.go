// Package catalog turns raw sticker-sheet records into a validated Catalog.
//
// Loading never fails as a whole: each malformed record is dropped and
// reported as a Rejection, and the remaining records keep their input order.
package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"sticker-goblin/internal/models"
)

// Rejection reasons
const (
	ReasonNotObject  = "record is not an object"
	ReasonNoSheet    = "missing sheet identifier"
	ReasonBadSheet   = "sheet identifier is not a string or integer"
	ReasonEmptySheet = "sheet identifier is empty"
	ReasonNoImage    = "missing image reference"
	ReasonNotList    = "stickers is not a list"
	ReasonNoStickers = "no valid stickers"
)

// Options controls how sticker records are interpreted
type Options struct {
	VowelSource models.VowelSource
}

// Rejection describes one discarded record
type Rejection struct {
	Index  int
	Sheet  string
	Reason string
}

func (r Rejection) String() string {
	if r.Sheet == "" {
		return fmt.Sprintf("record %d: %s", r.Index, r.Reason)
	}
	return fmt.Sprintf("record %d (sheet %s): %s", r.Index, r.Sheet, r.Reason)
}

// Load validates raw records, as produced by Decode, into a Catalog.
// Calling it twice on the same input yields equal catalogs.
func Load(records []any, opts Options) (models.Catalog, []Rejection) {
	catalog := make(models.Catalog, 0, len(records))
	var rejected []Rejection

	for i, raw := range records {
		sheet, reason := parseSheet(raw, opts)
		if reason != "" {
			rejected = append(rejected, Rejection{Index: i, Sheet: sheet.ID, Reason: reason})
			continue
		}
		catalog = append(catalog, sheet)
	}

	return catalog, rejected
}

func parseSheet(raw any, opts Options) (models.StickerSheet, string) {
	var sheet models.StickerSheet

	record, ok := asObject(raw)
	if !ok {
		return sheet, ReasonNotObject
	}

	rawID, ok := record["sheet"]
	if !ok || rawID == nil {
		return sheet, ReasonNoSheet
	}
	id, ok := sheetID(rawID)
	if !ok {
		return sheet, ReasonBadSheet
	}
	if id == "" {
		return sheet, ReasonEmptySheet
	}
	sheet.ID = id

	image, ok := record["image"].(string)
	if !ok || strings.TrimSpace(image) == "" {
		return sheet, ReasonNoImage
	}
	sheet.Image = image

	rawStickers, present := record["stickers"]
	if !present || rawStickers == nil {
		return sheet, ReasonNoStickers
	}
	list, ok := rawStickers.([]any)
	if !ok {
		return sheet, ReasonNotList
	}

	for _, rawSticker := range list {
		if sticker, ok := parseSticker(rawSticker, opts); ok {
			sheet.Stickers = append(sheet.Stickers, sticker)
		}
	}
	if len(sheet.Stickers) == 0 {
		return sheet, ReasonNoStickers
	}

	return sheet, ""
}

func parseSticker(raw any, opts Options) (models.Sticker, bool) {
	record, ok := asObject(raw)
	if !ok {
		return models.Sticker{}, false
	}

	if opts.VowelSource == models.VowelsCounted {
		word, ok := wordField(record, "word", "Word")
		if !ok {
			return models.Sticker{}, false
		}
		return models.Sticker{Word: word, Vowels: CountVowels(word)}, true
	}

	word, ok := wordField(record, "word")
	if !ok {
		return models.Sticker{}, false
	}

	// A present "vowels" key wins even when null; "Vowels" is only the
	// fallback for records that lack the lower-case key entirely.
	rawVowels, present := record["vowels"]
	if !present {
		rawVowels = record["Vowels"]
	}
	vowels, ok := nonNegativeInt(rawVowels)
	if !ok {
		return models.Sticker{}, false
	}

	return models.Sticker{Word: word, Vowels: vowels}, true
}

func wordField(record map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		raw, present := record[key]
		if !present {
			continue
		}
		word, ok := raw.(string)
		if !ok || strings.TrimSpace(word) == "" {
			return "", false
		}
		return word, true
	}
	return "", false
}

// asObject accepts both JSON objects and YAML mappings
func asObject(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func sheetID(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v), true
	case bool:
		return "", false
	default:
		n, ok := integer(raw)
		if !ok {
			return "", false
		}
		return strconv.FormatInt(n, 10), true
	}
}

func nonNegativeInt(raw any) (int, bool) {
	if _, isBool := raw.(bool); isBool {
		return 0, false
	}
	n, ok := integer(raw)
	if !ok || n < 0 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

// integer accepts the numeric types produced by encoding/json (with
// UseNumber or without) and yaml.v3, rejecting fractional values
func integer(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || v > math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		return int64(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return integer(f)
	default:
		return 0, false
	}
}
