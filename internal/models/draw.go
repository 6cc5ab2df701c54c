package models

import "fmt"

// SheetsPerDraw is the number of distinct sheets shown by one draw
const SheetsPerDraw = 3

// TieMode selects how a draw resolves several words sharing the top count
type TieMode int

const (
	// TieReport lists every tied word
	TieReport TieMode = iota
	// TieRandom picks one tied word uniformly at random
	TieRandom
)

func (m TieMode) String() string {
	switch m {
	case TieReport:
		return "report"
	case TieRandom:
		return "random"
	default:
		return fmt.Sprintf("TieMode(%d)", int(m))
	}
}

// ParseTieMode converts a configuration value into a TieMode
func ParseTieMode(s string) (TieMode, error) {
	switch s {
	case "", "report":
		return TieReport, nil
	case "random":
		return TieRandom, nil
	default:
		return TieReport, fmt.Errorf("unknown tie mode %q", s)
	}
}

// VowelSource selects where a sticker's vowel count comes from
type VowelSource int

const (
	// VowelsRecorded trusts the count stored in the catalog record
	VowelsRecorded VowelSource = iota
	// VowelsCounted derives the count from the word itself
	VowelsCounted
)

func (s VowelSource) String() string {
	switch s {
	case VowelsRecorded:
		return "recorded"
	case VowelsCounted:
		return "counted"
	default:
		return fmt.Sprintf("VowelSource(%d)", int(s))
	}
}

// ParseVowelSource converts a configuration value into a VowelSource
func ParseVowelSource(s string) (VowelSource, error) {
	switch s {
	case "", "recorded":
		return VowelsRecorded, nil
	case "counted":
		return VowelsCounted, nil
	default:
		return VowelsRecorded, fmt.Errorf("unknown vowel source %q", s)
	}
}

// PoolEntry is one sticker from a drawn sheet, tagged with its origin
type PoolEntry struct {
	Word   string
	Vowels int
	Sheet  string
}

// DrawResult is built fresh for every draw and discarded once rendered
type DrawResult struct {
	Sheets    []StickerSheet
	Pool      []PoolEntry
	MaxVowels int
	Winners   []PoolEntry
	Mode      TieMode

	// TiedCount is the number of pool entries sharing MaxVowels; it can
	// exceed len(Winners) when a random tie-break was applied
	TiedCount int
}

// Tied reports whether more than one pool entry reached MaxVowels
func (r *DrawResult) Tied() bool {
	return r.TiedCount > 1
}

// SheetIDs returns the identifiers of the chosen sheets in display order
func (r *DrawResult) SheetIDs() []string {
	ids := make([]string, len(r.Sheets))
	for i, sheet := range r.Sheets {
		ids[i] = sheet.ID
	}
	return ids
}
