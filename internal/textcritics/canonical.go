package textcritics

import (
	"strconv"

	"github.com/lili041/tkkunify/pkg/tkkunify"
)

// AssignCanonicalIDs derives the canonical ID for every non-deferred
// record as "<prefix><n>". Numbering restarts at 1 for each metadata
// entry and counts block comments in document order; deferred records
// consume no number and numbering continues past them:
// g-tkk-1, g-tkk-2, TODO, g-tkk-3, ...
//
// The unification core treats CanonicalID as caller-supplied; this is
// the one place the derivation convention lives.
func AssignCanonicalIDs(records []*tkkunify.GroupRecord, prefix string) {
	counter := 0
	currentEntry := ""

	for i, record := range records {
		if i == 0 || record.EntryID != currentEntry {
			currentEntry = record.EntryID
			counter = 0
		}
		if record.Deferred {
			continue
		}
		counter++
		record.CanonicalID = prefix + strconv.Itoa(counter)
	}
}
