package ir

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"
)

// Decode parses a JSON or YAML document into a node tree. YAML is a
// superset of JSON, so a single decoder covers both on-disk forms of
// schema declarations and signal payloads. Object field order is
// preserved.
func Decode(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return FromGo(v)
}

// FromGo converts a decoded Go value into a node tree. Ordered maps
// (yaml.MapSlice) keep field order; plain maps fall back to sorted
// keys via FromMap.
func FromGo(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return &Node{Type: NumberType, Number: strconv.FormatUint(t, 10)}, nil
		}
		return FromInt(int64(t)), nil
	case float64:
		// Integral floats decode as integers so that payloads read
		// from JSON keep satisfying integer constraints.
		if t == math.Trunc(t) && math.Abs(t) < 1<<53 {
			return FromInt(int64(t)), nil
		}
		return FromFloat(t), nil
	case float32:
		return FromGo(float64(t))
	case yaml.MapSlice:
		kvs := make([]KeyVal, 0, len(t))
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string object key %v", ErrDecode, item.Key)
			}
			val, err := FromGo(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, KeyVal{Key: key, Val: val})
		}
		return FromKeyVals(kvs), nil
	case map[string]any:
		yMap := make(map[string]*Node, len(t))
		for k, v := range t {
			node, err := FromGo(v)
			if err != nil {
				return nil, err
			}
			yMap[k] = node
		}
		return FromMap(yMap), nil
	case []any:
		elems := make([]*Node, 0, len(t))
		for _, e := range t {
			node, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, node)
		}
		return FromSlice(elems), nil
	default:
		return nil, fmt.Errorf("%w: unsupported value %T", ErrDecode, v)
	}
}

// ToGo converts a node tree back to plain Go values (objects become
// map[string]any; field order is lost).
func ToGo(y *Node) any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return y.Number
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToGo(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f.String] = ToGo(y.Values[i])
		}
		return res
	}
	return nil
}
