package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const vowelSet = "aeiouy"

var folder = cases.Fold()

// CountVowels counts the runes of word in {a,e,i,o,u,y}, ignoring case.
// The word is NFKC-normalised first so full-width letters count too.
func CountVowels(word string) int {
	folded := folder.String(norm.NFKC.String(word))

	count := 0
	for _, r := range folded {
		if strings.ContainsRune(vowelSet, r) {
			count++
		}
	}
	return count
}
