package mailbox

import "strings"

// Search filters records against a free-text query. The match is a
// case-insensitive substring test over From, Subject, Body, and Preview;
// a record is kept if any of the four fields contains the query.
// An empty or whitespace-only query returns records as-is; whitespace
// inside a non-empty query is significant. The filter is
// stable: survivors keep their original relative order. Search never
// mutates its input.
func Search(records []Record, query string) []Record {
	if strings.TrimSpace(query) == "" {
		return records
	}
	q := strings.ToLower(query)

	var matched []Record
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.From), q) ||
			strings.Contains(strings.ToLower(r.Subject), q) ||
			strings.Contains(strings.ToLower(r.Body), q) ||
			strings.Contains(strings.ToLower(r.Preview), q) {
			matched = append(matched, r)
		}
	}
	return matched
}

// ToggleStarred returns a new slice in which every record whose ID
// matches has Starred negated. Other records are copied through
// untouched; order and count are preserved. An absent id is a no-op.
func ToggleStarred(records []Record, id string) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		if r.ID == id {
			r.Starred = !r.Starred
		}
		out[i] = r
	}
	return out
}

// MarkRead returns a new slice in which every record whose ID matches
// has Read set to true. Idempotent: reapplying has no further effect.
// An absent id is a no-op.
func MarkRead(records []Record, id string) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		if r.ID == id {
			r.Read = true
		}
		out[i] = r
	}
	return out
}

// UnreadCount returns the number of unread records, used for the
// inbox badge.
func UnreadCount(records []Record) int {
	n := 0
	for _, r := range records {
		if !r.Read {
			n++
		}
	}
	return n
}
