package draw

import (
	"fmt"
	"strings"

	"sticker-goblin/internal/models"
)

// SlotLabel is the text shown in place of a sheet image that could not be
// decoded
func SlotLabel(sheetID string) string {
	return fmt.Sprintf("[sheet %s]", sheetID)
}

// EmptySlotLabel is the text of a slot with no sheet assigned; slot is
// zero-based
func EmptySlotLabel(slot int) string {
	return fmt.Sprintf("[slot %d]", slot+1)
}

// Report renders a draw as the multi-line text of the result panel
func Report(result *models.DrawResult) string {
	var b strings.Builder

	b.WriteString("Selected cards (sheets): ")
	b.WriteString(strings.Join(result.SheetIDs(), ", "))
	b.WriteString("\n\nStickers from these cards:")
	for _, entry := range result.Pool {
		fmt.Fprintf(&b, "\n- %s - %d (sheet %s)", entry.Word, entry.Vowels, entry.Sheet)
	}

	switch {
	case len(result.Winners) == 0:
		b.WriteString("\n\nNo stickers to compare.")
	case len(result.Winners) == 1:
		w := result.Winners[0]
		fmt.Fprintf(&b, "\n\nTop vowel word: %s - %d", w.Word, w.Vowels)
		if result.Tied() {
			fmt.Fprintf(&b, " (tie broken at random among %d)", result.TiedCount)
		}
	default:
		b.WriteString("\n\nTop vowel words (tie):")
		for _, w := range result.Winners {
			fmt.Fprintf(&b, "\n- %s - %d (sheet %s)", w.Word, w.Vowels, w.Sheet)
		}
	}

	return b.String()
}
