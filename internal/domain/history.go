package domain

import "strconv"

// HistoryEntry is one numbered line of the session history log. Text is
// the command line encoded so that re-tokenizing it restores the tokens.
type HistoryEntry struct {
	Number int
	Text   string
}

// String renders the entry in its persisted form, without the newline.
func (e HistoryEntry) String() string {
	return strconv.Itoa(e.Number) + " " + e.Text
}
