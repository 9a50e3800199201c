// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package jsonvalue

import (
	"encoding/json"
	"sort"
)

// FromInterface converts a value of the shape produced by
// encoding/json when unmarshaling into an interface{} (nil, bool,
// float64, json.Number, string, []interface{}, map[string]interface{})
// into a Value. Integer types are accepted too. Map keys are sorted,
// since Go maps have no order.
func FromInterface(x interface{}) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t.Clone(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return Number(string(t))
	case float64:
		return Float(t), nil
	case float32:
		return Float(float64(t)), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Uint(uint64(t)), nil
	case uint8:
		return Uint(uint64(t)), nil
	case uint16:
		return Uint(uint64(t)), nil
	case uint32:
		return Uint(uint64(t)), nil
	case uint64:
		return Uint(t), nil
	case []interface{}:
		elems := make([]Value, len(t))
		for i := range t {
			v, err := FromInterface(t[i])
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return Array(elems...), nil
	case map[string]interface{}:
		o, err := ObjectFromMap(t)
		if err != nil {
			return Value{}, err
		}
		return ObjectValue(o), nil
	default:
		return Value{}, fmtErr("cannot convert %T to a JSON value", x)
	}
}

// ObjectFromMap converts m into an object whose members are sorted by
// name.
func ObjectFromMap(m map[string]interface{}) (*Object, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	o := &Object{}
	for _, name := range names {
		v, err := FromInterface(m[name])
		if err != nil {
			return nil, wrapErr("member %q", err, name)
		}
		o.members = append(o.members, Member{Name: name, Value: v})
	}
	return o, nil
}

// Interface converts v into the shape encoding/json produces when
// unmarshaling into an interface{}. Numbers become float64, or
// json.Number if they overflow it, and objects become
// map[string]interface{}, losing member order.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		if f, err := v.AsFloat(); err == nil {
			return f
		}
		return json.Number(v.s)
	case KindString:
		return v.s
	case KindArray:
		a := make([]interface{}, len(v.a))
		for i := range v.a {
			a[i] = v.a[i].Interface()
		}
		return a
	case KindObject:
		return v.o.Map()
	default:
		return nil
	}
}

// Map converts o into a map[string]interface{} using Value.Interface.
func (o *Object) Map() map[string]interface{} {
	m := make(map[string]interface{}, o.Len())
	for _, mem := range o.Members() {
		m[mem.Name] = mem.Value.Interface()
	}
	return m
}
