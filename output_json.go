package debugscreens

import (
	"bytes"
	"encoding/json"
	"io"
)

// MarshalJSON encodes the tree body as an ordered object: base declarations
// first, then one nested object per media query.
//
//	{"content": "...", "position": "fixed", ..., "@media (min-width: 640px)": {"content": "..."}}
func (t *StyleTree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	writeKey := func(key string) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		return writeJSONString(&buf, key)
	}

	for _, d := range t.Declarations {
		if err := writeKey(d.Property); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, d.Value); err != nil {
			return nil, err
		}
	}

	for _, m := range t.Media {
		if err := writeKey(m.Query); err != nil {
			return nil, err
		}
		buf.WriteString(":{")
		for i, d := range m.Declarations {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(&buf, d.Property); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			if err := writeJSONString(&buf, d.Value); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteJSON writes tree keyed by its selector, the shape the host's
// component registration takes.
func WriteJSON(w io.Writer, tree *StyleTree) error {
	body, err := json.Marshal(tree)
	if err != nil {
		return err
	}

	var raw bytes.Buffer
	raw.WriteByte('{')
	if err := writeJSONString(&raw, tree.Selector); err != nil {
		return err
	}
	raw.WriteByte(':')
	raw.Write(body)
	raw.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, raw.Bytes(), "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')

	_, err = w.Write(out.Bytes())
	return err
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
