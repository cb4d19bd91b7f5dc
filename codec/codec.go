// Package codec converts between ir trees, plain Go values and YAML/JSON
// document bytes. Loading goes through ordered maps so object key order
// survives a load/dump cycle.
package codec

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/pathstore/pathstore/ir"
)

// FromAny builds an ir tree from a plain Go value: nil, bool, string,
// integer and float scalars, []any, map[string]any and yaml.MapSlice
// containers, or an existing *ir.Node (cloned).
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return x.Clone(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return ir.FromInt(int64(x)), nil
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, elt := range x {
			node, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = node
		}
		return ir.FromSlice(vals), nil
	case yaml.MapSlice:
		res := ir.Object()
		for i := range x {
			item := &x[i]
			val, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.SetField(anyKey(item.Key), val)
		}
		return res, nil
	case map[string]any:
		yMap := make(map[string]*ir.Node, len(x))
		for k, elt := range x {
			node, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			yMap[k] = node
		}
		return ir.FromMap(yMap), nil
	case map[any]any:
		yMap := make(map[string]*ir.Node, len(x))
		for k, elt := range x {
			node, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			yMap[anyKey(k)] = node
		}
		return ir.FromMap(yMap), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

func anyKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

// ToAny projects an ir tree onto plain Go values: map[string]any, []any and
// scalars. Object key order is not represented; see toOrdered for dumping.
func ToAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// toOrdered is ToAny with objects as yaml.MapSlice, keeping key order.
func toOrdered(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		n := len(node.Fields)
		res := make(yaml.MapSlice, n)
		for i := range n {
			res[i] = yaml.MapItem{
				Key:   node.Fields[i].String,
				Value: toOrdered(node.Values[i]),
			}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = toOrdered(elt)
		}
		return res
	default:
		return ToAny(node)
	}
}

// Load parses one YAML or JSON document into an ir tree.
func Load(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return FromAny(v)
}

// LoadString is Load over a string, converting a bare scalar argument
// (e.g. a CLI value) into an ir node.
func LoadString(s string) (*ir.Node, error) {
	return Load([]byte(s))
}

// MarshalJSON encodes an ir tree as JSON.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	d, err := yaml.Marshal(toOrdered(node))
	if err != nil {
		return nil, err
	}
	return yaml.YAMLToJSON(d)
}
