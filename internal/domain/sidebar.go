package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NodeKind tells category nodes apart from leaf documents
type NodeKind int

const (
	KindCategory NodeKind = iota
	KindDocument
)

func (k NodeKind) String() string {
	switch k {
	case KindCategory:
		return "category"
	case KindDocument:
		return "document"
	default:
		return "unknown"
	}
}

// Node is one entry of the sidebar tree. A nil Items means the node has no
// items field at all; an empty non-nil Items is an empty category.
type Node struct {
	Text  string
	Link  string
	Items []*Node

	fields fieldSet
}

var nodeFields = []string{"text", "link", "items"}

// NewCategory creates a category node with an empty item list
func NewCategory(text string) *Node {
	return &Node{Text: text, Items: []*Node{}}
}

// NewDocument creates a leaf document node
func NewDocument(text, link string) *Node {
	return &Node{Text: text, Link: link}
}

// Kind reports whether the node is a category or a document
func (n *Node) Kind() NodeKind {
	if n.Items != nil {
		return KindCategory
	}
	return KindDocument
}

// Child returns the first child whose text matches, or nil
func (n *Node) Child(text string) *Node {
	return childByText(n.Items, text)
}

// InsertChild appends child in display order, creating Items if absent
func InsertChild(parent, child *Node) {
	if parent.Items == nil {
		parent.Items = []*Node{}
	}
	parent.Items = append(parent.Items, child)
}

// RemoveChild removes the first child whose text matches.
// It reports whether anything was removed.
func RemoveChild(parent *Node, text string) bool {
	for i, child := range parent.Items {
		if child != nil && child.Text == text {
			parent.Items = append(parent.Items[:i], parent.Items[i+1:]...)
			return true
		}
	}
	return false
}

// FindNode walks segments from a sequence of top-level nodes. Every
// non-final segment must name a node that has items.
func FindNode(nodes []*Node, segments []string) (*Node, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrNotFound)
	}

	current := nodes
	for i, seg := range segments {
		node := childByText(current, seg)
		if node == nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, strings.Join(segments[:i+1], "/"))
		}
		if i == len(segments)-1 {
			return node, nil
		}
		if node.Items == nil {
			return nil, fmt.Errorf("%w: %s has no items", ErrNotFound, strings.Join(segments[:i+1], "/"))
		}
		current = node.Items
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, strings.Join(segments, "/"))
}

func childByText(nodes []*Node, text string) *Node {
	for _, n := range nodes {
		if n != nil && n.Text == text {
			return n
		}
	}
	return nil
}

// UnmarshalJSON decodes a node and remembers its key order and unknown fields
func (n *Node) UnmarshalJSON(data []byte) error {
	*n = Node{}
	return n.fields.decode(data, func(key string, dec *json.Decoder) (bool, error) {
		switch key {
		case "text":
			return true, dec.Decode(&n.Text)
		case "link":
			return true, dec.Decode(&n.Link)
		case "items":
			var items []*Node
			if err := dec.Decode(&items); err != nil {
				return true, err
			}
			n.Items = items
			return true, nil
		}
		return false, nil
	})
}

// MarshalJSON writes the node back with its original field order
func (n *Node) MarshalJSON() ([]byte, error) {
	return n.fields.encode(nodeFields, func(key string, had bool) (any, bool) {
		switch key {
		case "text":
			return n.Text, true
		case "link":
			return n.Link, had || n.Link != ""
		case "items":
			return n.Items, had || n.Items != nil
		}
		return nil, false
	})
}

// Section is one top-level sidebar key together with its nodes
type Section struct {
	Key   string
	Nodes []*Node
}

// Sidebar is the whole navigation index, keyed by section path in file order
type Sidebar struct {
	Sections []*Section
}

// ParseSidebar decodes the sidebar JSON document
func ParseSidebar(data []byte) (*Sidebar, error) {
	var s Sidebar
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse sidebar: %w", err)
	}
	return &s, nil
}

// Encode serializes the sidebar with two-space indentation
func (s *Sidebar) Encode() ([]byte, error) {
	compact, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return indentJSON(compact)
}

// Section returns the section with the given key, or nil
func (s *Sidebar) Section(key string) *Section {
	for _, sec := range s.Sections {
		if sec.Key == key {
			return sec
		}
	}
	return nil
}

// AddSection appends a new top-level section
func (s *Sidebar) AddSection(key string, nodes []*Node) error {
	if s.Section(key) != nil {
		return fmt.Errorf("%w: section %s", ErrAlreadyExists, key)
	}
	s.Sections = append(s.Sections, &Section{Key: key, Nodes: nodes})
	return nil
}

// RemoveSection deletes the section with the given key
func (s *Sidebar) RemoveSection(key string) bool {
	for i, sec := range s.Sections {
		if sec.Key == key {
			s.Sections = append(s.Sections[:i], s.Sections[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveTopLevel removes the first top-level node with the given text from
// whichever section holds it
func (s *Sidebar) RemoveTopLevel(text string) bool {
	for _, sec := range s.Sections {
		for i, n := range sec.Nodes {
			if n != nil && n.Text == text {
				sec.Nodes = append(sec.Nodes[:i], sec.Nodes[i+1:]...)
				return true
			}
		}
	}
	return false
}

// TopLevel returns the top-level nodes of every section in file order
func (s *Sidebar) TopLevel() []*Node {
	var nodes []*Node
	for _, sec := range s.Sections {
		nodes = append(nodes, sec.Nodes...)
	}
	return nodes
}

// Find walks segments across all sections
func (s *Sidebar) Find(segments []string) (*Node, error) {
	return FindNode(s.TopLevel(), segments)
}

// UnmarshalJSON decodes the section map while keeping its key order
func (s *Sidebar) UnmarshalJSON(data []byte) error {
	s.Sections = nil
	var fields fieldSet
	return fields.decode(data, func(key string, dec *json.Decoder) (bool, error) {
		var nodes []*Node
		if err := dec.Decode(&nodes); err != nil {
			return true, err
		}
		if sec := s.Section(key); sec != nil {
			sec.Nodes = nodes
			return true, nil
		}
		s.Sections = append(s.Sections, &Section{Key: key, Nodes: nodes})
		return true, nil
	})
}

// MarshalJSON writes sections in order
func (s *Sidebar) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, sec := range s.Sections {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := marshalJSON(sec.Key)
		if err != nil {
			return nil, err
		}
		nodes, err := marshalJSON(sec.Nodes)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", sec.Key, err)
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(nodes)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}
