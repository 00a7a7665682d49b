package jsonl

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"

	"jsonlscope/internal/domain"
	"jsonlscope/internal/ports"
)

// Non-finite literals accepted as numbers, each with a valid JSON number of
// the same length standing in for it during validation and traversal
var nonFinite = []struct {
	literal     []byte
	placeholder []byte
}{
	{[]byte("-Infinity"), []byte("-0e000000")},
	{[]byte("Infinity"), []byte("0e000000")},
	{[]byte("NaN"), []byte("0e0")},
}

// Decoder implements ports.RecordDecoder.
// Object members are kept in the order they appear in the line.
type Decoder struct{}

// Ensure Decoder implements RecordDecoder
var _ ports.RecordDecoder = (*Decoder)(nil)

// NewDecoder creates a new Decoder
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses a single JSON value.
// The line must hold exactly one value, optionally surrounded by whitespace.
// NaN, Infinity and -Infinity are accepted as numbers.
func (d *Decoder) Decode(line []byte) (domain.Value, error) {
	data := replaceNonFinite(line)

	// jsonparser is lenient, so strictness comes from the standard validator
	if !json.Valid(data) {
		return domain.Value{}, domain.ErrInvalidJSON
	}

	raw, dataType, end, err := jsonparser.Get(data)
	if err != nil {
		return domain.Value{}, fmt.Errorf("%w: %v", domain.ErrInvalidJSON, err)
	}

	c := converter{src: line}
	v, err := c.convert(raw, dataType, end-len(raw))
	if err != nil {
		return domain.Value{}, fmt.Errorf("%w: %v", domain.ErrInvalidJSON, err)
	}
	return v, nil
}

// converter builds Values from the jsonparser walk over a line.
// Offsets index both the walked data and src, which have the same length.
type converter struct {
	src []byte
}

// convert turns raw into a Value; start is the offset of raw in the line,
// only meaningful for numbers and containers
func (c converter) convert(raw []byte, dataType jsonparser.ValueType, start int) (domain.Value, error) {
	switch dataType {
	case jsonparser.Null:
		return domain.NullValue(), nil

	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return domain.Value{}, err
		}
		return domain.BoolValue(b), nil

	case jsonparser.Number:
		// the source keeps NaN and Infinity where the data has placeholders
		return domain.NumberValue(string(c.src[start : start+len(raw)])), nil

	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return domain.Value{}, err
		}
		return domain.StringValue(s), nil

	case jsonparser.Array:
		return c.convertArray(raw, start)

	case jsonparser.Object:
		return c.convertObject(raw, start)

	default:
		return domain.Value{}, fmt.Errorf("unsupported value type %s", dataType)
	}
}

func (c converter) convertArray(raw []byte, start int) (domain.Value, error) {
	items := []domain.Value{}
	var walkErr error

	// offset is where the item starts inside raw
	_, err := jsonparser.ArrayEach(raw, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if walkErr != nil {
			return
		}
		if err != nil {
			walkErr = err
			return
		}
		item, err := c.convert(value, dataType, start+offset)
		if err != nil {
			walkErr = err
			return
		}
		items = append(items, item)
	})
	if err != nil {
		return domain.Value{}, err
	}
	if walkErr != nil {
		return domain.Value{}, walkErr
	}

	return domain.ListValue(items...), nil
}

func (c converter) convertObject(raw []byte, start int) (domain.Value, error) {
	var members []domain.Member

	// key arrives unescaped; offset is where the value ends inside raw
	err := jsonparser.ObjectEach(raw, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		item, err := c.convert(value, dataType, start+offset-len(value))
		if err != nil {
			return err
		}
		members = append(members, domain.Member{Key: string(key), Value: item})
		return nil
	})
	if err != nil {
		return domain.Value{}, err
	}

	return domain.ObjectValue(members...), nil
}

// replaceNonFinite returns line with every bare NaN, Infinity and -Infinity
// token swapped for its placeholder. Text inside strings is left alone.
// The line itself is returned when there is nothing to replace.
func replaceNonFinite(line []byte) []byte {
	var out []byte
	inString, escaped := false, false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		if ch == '"' {
			inString = true
			continue
		}
		if i > 0 && !isDelimiter(line[i-1]) {
			continue
		}

		for _, nf := range nonFinite {
			end := i + len(nf.literal)
			if !bytes.HasPrefix(line[i:], nf.literal) || (end < len(line) && !isDelimiter(line[end])) {
				continue
			}
			if out == nil {
				out = bytes.Clone(line)
			}
			copy(out[i:end], nf.placeholder)
			i = end - 1
			break
		}
	}

	if out == nil {
		return line
	}
	return out
}

func isDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', ',', ':', '[', ']', '{', '}':
		return true
	}
	return false
}
