package domain

import (
	"encoding/json"
	"fmt"
)

// NavEntry is one top-level navigation link
type NavEntry struct {
	Text string
	Link string

	fields fieldSet
}

var navFields = []string{"text", "link"}

// UnmarshalJSON decodes an entry and keeps fields such as activeMatch
func (e *NavEntry) UnmarshalJSON(data []byte) error {
	*e = NavEntry{}
	return e.fields.decode(data, func(key string, dec *json.Decoder) (bool, error) {
		switch key {
		case "text":
			return true, dec.Decode(&e.Text)
		case "link":
			return true, dec.Decode(&e.Link)
		}
		return false, nil
	})
}

// MarshalJSON writes the entry back with its original field order
func (e *NavEntry) MarshalJSON() ([]byte, error) {
	return e.fields.encode(navFields, func(key string, had bool) (any, bool) {
		switch key {
		case "text":
			return e.Text, true
		case "link":
			return e.Link, had || e.Link != ""
		}
		return nil, false
	})
}

// Nav is the ordered navigation bar. Its last entry is reserved and stays last.
type Nav struct {
	Entries []*NavEntry
}

// ParseNav decodes the nav JSON document
func ParseNav(data []byte) (*Nav, error) {
	var entries []*NavEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse nav: %w", err)
	}
	if entries == nil {
		entries = []*NavEntry{}
	}
	return &Nav{Entries: entries}, nil
}

// Encode serializes the nav with two-space indentation
func (n *Nav) Encode() ([]byte, error) {
	compact, err := marshalJSON(n.Entries)
	if err != nil {
		return nil, err
	}
	return indentJSON(compact)
}

// Contains reports whether any entry uses the given text or link
func (n *Nav) Contains(text, link string) bool {
	for _, e := range n.Entries {
		if e.Text == text || e.Link == link {
			return true
		}
	}
	return false
}

// InsertBeforeLast inserts entry ahead of the reserved final entry
func (n *Nav) InsertBeforeLast(entry *NavEntry) {
	if len(n.Entries) == 0 {
		n.Entries = append(n.Entries, entry)
		return
	}
	last := len(n.Entries) - 1
	n.Entries = append(n.Entries[:last], append([]*NavEntry{entry}, n.Entries[last:]...)...)
}

// Remove drops every entry with the given text and returns how many went
func (n *Nav) Remove(text string) int {
	kept := n.Entries[:0]
	removed := 0
	for _, e := range n.Entries {
		if e.Text == text {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	n.Entries = kept
	return removed
}
