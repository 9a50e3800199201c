// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"encoding"
	"encoding/base64"
	"reflect"
	"sort"
	"strings"

	"github.com/gogama/geojson/jsonvalue"
)

var (
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// checkValueType reports an error if values of type t cannot be
// represented as JSON property values.
func checkValueType(t reflect.Type, seen map[reflect.Type]bool) error {
	if t == valueType || t == objectPointerType || t.Implements(textMarshalerType) {
		return nil
	}
	if seen[t] {
		return nil
	}
	seen[t] = true
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Interface:
		return nil
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return checkValueType(t.Elem(), seen)
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return fmtErr("map key type %s is not a string", t.Key())
		}
		return checkValueType(t.Elem(), seen)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() || sf.Tag.Get("geojson") == "-" {
				continue
			}
			if err := checkValueType(sf.Type, seen); err != nil {
				return wrapErr("field %s", err, sf.Name)
			}
		}
		return nil
	default:
		return fmtErr("unsupported type %s", t)
	}
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	default:
		return false
	}
}

func propertyName(sf reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := sf.Tag.Get("geojson")
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = sf.Name
	}
	for _, opt := range strings.Split(opts, ",") {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

func encodeValue(v reflect.Value) (jsonvalue.Value, error) {
	if !v.IsValid() {
		return jsonvalue.Null(), nil
	}
	t := v.Type()
	switch t {
	case valueType:
		return v.Interface().(jsonvalue.Value).Clone(), nil
	case objectPointerType:
		if v.IsNil() {
			return jsonvalue.Null(), nil
		}
		return jsonvalue.ObjectValue(v.Interface().(*jsonvalue.Object).Clone()), nil
	}
	if t.Implements(textMarshalerType) {
		if t.Kind() == reflect.Pointer && v.IsNil() {
			return jsonvalue.Null(), nil
		}
		text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return jsonvalue.Value{}, err
		}
		return jsonvalue.String(string(text)), nil
	}
	switch v.Kind() {
	case reflect.Bool:
		return jsonvalue.Bool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return jsonvalue.Int(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return jsonvalue.Uint(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return jsonvalue.Float(v.Float()), nil
	case reflect.String:
		return jsonvalue.String(v.String()), nil
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return jsonvalue.Null(), nil
		}
		return encodeValue(v.Elem())
	case reflect.Slice:
		if v.IsNil() {
			return jsonvalue.Null(), nil
		}
		if t.Elem().Kind() == reflect.Uint8 && !t.Elem().Implements(textMarshalerType) {
			return jsonvalue.String(base64.StdEncoding.EncodeToString(v.Bytes())), nil
		}
		fallthrough
	case reflect.Array:
		elems := make([]jsonvalue.Value, v.Len())
		for i := range elems {
			e, err := encodeValue(v.Index(i))
			if err != nil {
				return jsonvalue.Value{}, err
			}
			elems[i] = e
		}
		return jsonvalue.Array(elems...), nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return jsonvalue.Value{}, fmtErr("map key type %s is not a string", t.Key())
		}
		if v.IsNil() {
			return jsonvalue.Null(), nil
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		o := &jsonvalue.Object{}
		for _, k := range keys {
			e, err := encodeValue(v.MapIndex(k))
			if err != nil {
				return jsonvalue.Value{}, wrapErr("key %q", err, k.String())
			}
			o.Set(k.String(), e)
		}
		return jsonvalue.ObjectValue(o), nil
	case reflect.Struct:
		o := &jsonvalue.Object{}
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			name, omitEmpty, skip := propertyName(sf)
			if skip {
				continue
			}
			fv := v.Field(i)
			if omitEmpty && isEmptyValue(fv) {
				continue
			}
			e, err := encodeValue(fv)
			if err != nil {
				return jsonvalue.Value{}, wrapErr("field %s", err, sf.Name)
			}
			o.Set(name, e)
		}
		return jsonvalue.ObjectValue(o), nil
	default:
		return jsonvalue.Value{}, fmtErr("unsupported type %s", t)
	}
}

func decodeMismatch(v jsonvalue.Value, t reflect.Type) error {
	return fmtErr("cannot decode %s into %s", v.Kind(), t)
}

func decodeValue(v jsonvalue.Value, rv reflect.Value) error {
	t := rv.Type()
	switch t {
	case valueType:
		rv.Set(reflect.ValueOf(v.Clone()))
		return nil
	case objectPointerType:
		if v.IsNull() {
			rv.SetZero()
			return nil
		}
		o := v.AsObject()
		if o == nil {
			return decodeMismatch(v, t)
		}
		rv.Set(reflect.ValueOf(o.Clone()))
		return nil
	}
	if v.IsNull() {
		rv.SetZero()
		return nil
	}
	if t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(textUnmarshalerType) {
		s, ok := v.AsString()
		if !ok {
			return decodeMismatch(v, t)
		}
		return rv.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
	}
	switch t.Kind() {
	case reflect.Bool:
		b, ok := v.AsBool()
		if !ok {
			return decodeMismatch(v, t)
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Kind() != jsonvalue.KindNumber {
			return decodeMismatch(v, t)
		}
		i, err := v.AsInt()
		if err != nil {
			return err
		}
		if rv.OverflowInt(i) {
			return fmtErr("number %d overflows %s", i, t)
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v.Kind() != jsonvalue.KindNumber {
			return decodeMismatch(v, t)
		}
		u, err := v.AsUint()
		if err != nil {
			return err
		}
		if rv.OverflowUint(u) {
			return fmtErr("number %d overflows %s", u, t)
		}
		rv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		if v.Kind() != jsonvalue.KindNumber {
			return decodeMismatch(v, t)
		}
		f, err := v.AsFloat()
		if err != nil {
			return err
		}
		if rv.OverflowFloat(f) {
			return fmtErr("number %g overflows %s", f, t)
		}
		rv.SetFloat(f)
	case reflect.String:
		s, ok := v.AsString()
		if !ok {
			return decodeMismatch(v, t)
		}
		rv.SetString(s)
	case reflect.Interface:
		if t.NumMethod() != 0 {
			return fmtErr("cannot decode into non-empty interface %s", t)
		}
		rv.Set(reflect.ValueOf(v.Interface()))
	case reflect.Pointer:
		p := reflect.New(t.Elem())
		if err := decodeValue(v, p.Elem()); err != nil {
			return err
		}
		rv.Set(p)
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 && v.Kind() == jsonvalue.KindString {
			s, _ := v.AsString()
			b, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return wrapErr("invalid base64", err)
			}
			rv.SetBytes(b)
			return nil
		}
		elems, ok := v.AsArray()
		if !ok {
			return decodeMismatch(v, t)
		}
		s := reflect.MakeSlice(t, len(elems), len(elems))
		for i := range elems {
			if err := decodeValue(elems[i], s.Index(i)); err != nil {
				return wrapErr("element %d", err, i)
			}
		}
		rv.Set(s)
	case reflect.Array:
		elems, ok := v.AsArray()
		if !ok {
			return decodeMismatch(v, t)
		}
		for i := 0; i < rv.Len(); i++ {
			if i < len(elems) {
				if err := decodeValue(elems[i], rv.Index(i)); err != nil {
					return wrapErr("element %d", err, i)
				}
			} else {
				rv.Index(i).SetZero()
			}
		}
	case reflect.Map:
		o := v.AsObject()
		if o == nil || t.Key().Kind() != reflect.String {
			return decodeMismatch(v, t)
		}
		m := reflect.MakeMapWithSize(t, o.Len())
		for _, mem := range o.Members() {
			e := reflect.New(t.Elem()).Elem()
			if err := decodeValue(mem.Value, e); err != nil {
				return wrapErr("key %q", err, mem.Name)
			}
			m.SetMapIndex(reflect.ValueOf(mem.Name).Convert(t.Key()), e)
		}
		rv.Set(m)
	case reflect.Struct:
		o := v.AsObject()
		if o == nil {
			return decodeMismatch(v, t)
		}
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			name, _, skip := propertyName(sf)
			if skip {
				continue
			}
			mv, ok := o.Get(name)
			if !ok {
				continue
			}
			if err := decodeValue(mv, rv.Field(i)); err != nil {
				return wrapErr("field %s", err, sf.Name)
			}
		}
	default:
		return fmtErr("unsupported type %s", t)
	}
	return nil
}
