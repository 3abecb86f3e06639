package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// fieldSet remembers the key order of a decoded JSON object and keeps the
// fields a type does not model, so a rewrite reproduces the original object.
type fieldSet struct {
	keys  []string
	extra map[string]json.RawMessage
}

func (f *fieldSet) has(key string) bool {
	return slices.Contains(f.keys, key)
}

// decode walks a JSON object. known is offered every key first and reports
// whether it consumed the value from dec.
func (f *fieldSet) decode(data []byte, known func(key string, dec *json.Decoder) (bool, error)) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	f.keys = nil
	f.extra = nil
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		if !f.has(key) {
			f.keys = append(f.keys, key)
		}

		handled, err := known(key, dec)
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		if handled {
			continue
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		if f.extra == nil {
			f.extra = make(map[string]json.RawMessage)
		}
		f.extra[key] = raw
	}

	_, err = dec.Token()
	return err
}

// encode writes the object back in its original key order. Modeled keys the
// original lacked are appended in the order given by modeled. value reports
// a modeled key's current value and whether it should be written; had tells
// it whether the decoded object carried the key.
func (f *fieldSet) encode(modeled []string, value func(key string, had bool) (any, bool)) ([]byte, error) {
	keys := slices.Clone(f.keys)
	for _, key := range modeled {
		if !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, key := range keys {
		var (
			encoded []byte
			err     error
		)
		if slices.Contains(modeled, key) {
			v, ok := value(key, f.has(key))
			if !ok {
				continue
			}
			encoded, err = marshalJSON(v)
		} else {
			encoded = f.extra[key]
		}
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}

		if !first {
			buf.WriteByte(',')
		}
		first = false

		name, err := marshalJSON(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalJSON encodes v without HTML escaping, matching what the site tooling writes
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// indentJSON pretty-prints a compact document with two-space indentation
func indentJSON(compact []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
