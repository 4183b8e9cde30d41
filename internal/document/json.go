package document

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// Parse decodes a JSON document into a Value, preserving object key order
// and raw number text.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return Value{}, err
	}

	// Reject trailing garbage after the document.
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, errors.New("trailing data after JSON document")
	}

	return v, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, errors.Wrap(err, "reading JSON token")
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return Value{}, errors.Newf("unexpected delimiter %q", t.String())
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, errors.Newf("unexpected JSON token %v", tok)
	}
}

func parseObject(dec *json.Decoder) (Value, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, errors.Wrap(err, "reading object key")
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, errors.Newf("object key is not a string: %v", keyTok)
		}

		member, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		obj.Set(key, member)
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return Value{}, errors.Wrap(err, "reading object end")
	}
	return obj, nil
}

func parseArray(dec *json.Decoder) (Value, error) {
	var items []Value
	for dec.More() {
		item, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return Value{}, errors.Wrap(err, "reading array end")
	}
	return NewArray(items...), nil
}

// Indent is the indentation unit used when persisting config documents.
const Indent = "  "

// MarshalIndent encodes the value as 2-space-indented JSON with a trailing
// newline. Non-ASCII characters and HTML metacharacters are written
// verbatim, matching the persisted layout of the config files ocfg manages.
func (v Value) MarshalIndent() []byte {
	var buf bytes.Buffer
	v.encode(&buf, "")
	buf.WriteByte('\n')
	return buf.Bytes()
}

// Encode writes the value as 2-space-indented JSON to w, without a trailing
// newline.
func (v Value) Encode(w io.Writer) error {
	var buf bytes.Buffer
	v.encode(&buf, "")
	_, err := w.Write(buf.Bytes())
	return err
}

func (v Value) encode(buf *bytes.Buffer, prefix string) {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		buf.WriteString(v.num)
	case KindString:
		buf.WriteString(quoteString(v.str))
	case KindObject:
		if len(v.obj.keys) == 0 {
			buf.WriteString("{}")
			return
		}
		inner := prefix + Indent
		buf.WriteString("{\n")
		for i, k := range v.obj.keys {
			buf.WriteString(inner)
			buf.WriteString(quoteString(k))
			buf.WriteString(": ")
			v.obj.vals[k].encode(buf, inner)
			if i < len(v.obj.keys)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(prefix)
		buf.WriteByte('}')
	case KindArray:
		if len(v.arr) == 0 {
			buf.WriteString("[]")
			return
		}
		inner := prefix + Indent
		buf.WriteString("[\n")
		for i, item := range v.arr {
			buf.WriteString(inner)
			item.encode(buf, inner)
			if i < len(v.arr)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(prefix)
		buf.WriteByte(']')
	}
}

// quoteString encodes s as a JSON string literal without escaping HTML
// metacharacters or non-ASCII text.
func quoteString(s string) string {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	// Encode cannot fail for a plain string.
	_ = enc.Encode(s)
	return strings.TrimSuffix(sb.String(), "\n")
}
