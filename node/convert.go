package node

import (
	"math"

	"github.com/goccy/go-yaml"
)

// FromAny converts a value produced by a generic YAML or JSON decode into a
// Node. Mappings become hashes, sequences become arrays, scalars map to the
// corresponding variant and nil becomes null. Anything the document model
// cannot represent (non-string hash keys, out-of-range integers, unknown Go
// types) becomes a bad-value node rather than an error, mirroring how a
// tolerant parser marks unusable data.
func FromAny(v any) *Node {
	switch val := v.(type) {
	case nil:
		return NewNull()
	case string:
		return NewString(val)
	case bool:
		return NewBool(val)
	case int:
		return NewInt(int64(val))
	case int8:
		return NewInt(int64(val))
	case int16:
		return NewInt(int64(val))
	case int32:
		return NewInt(int64(val))
	case int64:
		return NewInt(val)
	case uint:
		return fromUint(uint64(val))
	case uint8:
		return NewInt(int64(val))
	case uint16:
		return NewInt(int64(val))
	case uint32:
		return NewInt(int64(val))
	case uint64:
		return fromUint(val)
	case float32:
		return NewFloat(float64(val))
	case float64:
		return NewFloat(val)
	case map[string]any:
		entries := make(map[string]*Node, len(val))
		for k, child := range val {
			entries[k] = FromAny(child)
		}

		return NewHash(entries)
	case map[any]any:
		entries := make(map[string]*Node, len(val))

		for k, child := range val {
			key, ok := k.(string)
			if !ok {
				return NewBadValue()
			}

			entries[key] = FromAny(child)
		}

		return NewHash(entries)
	case []any:
		elements := make([]*Node, 0, len(val))
		for _, child := range val {
			elements = append(elements, FromAny(child))
		}

		return NewArray(elements...)
	default:
		return NewBadValue()
	}
}

func fromUint(u uint64) *Node {
	if u > math.MaxInt64 {
		return NewBadValue()
	}

	return NewInt(int64(u))
}

// UnmarshalYAML decodes YAML bytes into the node, replacing its contents.
// It implements yaml.BytesUnmarshaler so a *Node can be a decode target.
func (n *Node) UnmarshalYAML(data []byte) error {
	var doc any

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return err
	}

	*n = *FromAny(doc)

	return nil
}
