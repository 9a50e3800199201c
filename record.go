// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gogama/geojson/jsonvalue"
	"github.com/paulmach/orb"
	"github.com/rs/zerolog"
)

// A RecordCodec converts between application records of type R and
// GeoJSON Features.
type RecordCodec[R any] interface {
	EncodeRecord(r *R) (*Feature, error)
	DecodeRecord(f *Feature, r *R) error
}

// FeatureMarshaler is implemented by types that convert themselves
// into a Feature. StructCodec uses it in place of reflection.
type FeatureMarshaler interface {
	MarshalFeature() (*Feature, error)
}

// FeatureUnmarshaler is implemented by types that fill themselves in
// from a Feature. StructCodec uses it in place of reflection.
type FeatureUnmarshaler interface {
	UnmarshalFeature(f *Feature) error
}

// StructCodec returns a codec that maps the fields of the struct type R
// to and from a Feature, using the "geojson" key of each field's tag.
//
// The field tagged `geojson:",geometry"` holds the geometry. If no
// field has that tag, a field named Geometry is used if there is one.
// The geometry field may be a Geometry, a *Geometry, an orb.Geometry,
// or any concrete orb geometry type or pointer to one. A nil pointer or
// interface corresponds to a feature without geometry.
//
// The field tagged `geojson:",id"` holds the identifier. It may be a
// string, an integer, a float, an ID or an *ID.
//
// Every other exported field is a property, named by its tag or else
// by the field name. A tag of "-" skips the field, and the omitempty
// option leaves out zero values. Properties may be booleans, numbers,
// strings, slices, arrays, maps with string keys, structs, pointers to
// any of these, jsonvalue.Value, or types implementing
// encoding.TextMarshaler and encoding.TextUnmarshaler. A record type
// holding anything else, such as a channel, is reported as a
// *RecordTypeError.
//
// If *R implements FeatureMarshaler or FeatureUnmarshaler, the codec
// calls it instead.
//
// The only option StructCodec uses is WithLogger.
func StructCodec[R any](opts ...Option) RecordCodec[R] {
	o := newOptions(opts)
	return &structCodec[R]{log: o.logger}
}

type structCodec[R any] struct {
	log zerolog.Logger
}

func (c *structCodec[R]) EncodeRecord(r *R) (*Feature, error) {
	if r == nil {
		textPanic("nil record")
	}
	if m, ok := any(r).(FeatureMarshaler); ok {
		return m.MarshalFeature()
	}
	return encodeStruct(reflect.ValueOf(r).Elem())
}

func (c *structCodec[R]) DecodeRecord(f *Feature, r *R) error {
	if f == nil || r == nil {
		textPanic("nil feature or record")
	}
	if u, ok := any(r).(FeatureUnmarshaler); ok {
		return u.UnmarshalFeature(f)
	}
	if f.ForeignMembers.Len() > 0 {
		c.log.Debug().
			Strs("members", f.ForeignMembers.Names()).
			Str("type", reflect.TypeFor[R]().String()).
			Msg("foreign members not mapped to record")
	}
	return decodeStruct(f, reflect.ValueOf(r).Elem())
}

// ToFeature converts v, a struct or pointer to a struct, into a Feature
// using the rules of StructCodec.
func ToFeature(v any) (*Feature, error) {
	if m, ok := v.(FeatureMarshaler); ok {
		return m.MarshalFeature()
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			textPanic("nil record")
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		textPanic("nil record")
	}
	return encodeStruct(rv)
}

// FromFeature converts f into a new record of type R using the rules
// of StructCodec.
func FromFeature[R any](f *Feature) (R, error) {
	var r R
	err := StructCodec[R]().DecodeRecord(f, &r)
	return r, err
}

type fieldRole int

const (
	roleProperty fieldRole = iota
	roleGeometry
	roleID
)

type recordField struct {
	name      string
	index     []int
	typ       reflect.Type
	omitEmpty bool
	role      fieldRole
}

type recordInfo struct {
	geometry *recordField
	id       *recordField
	props    []recordField
}

type recordInfoEntry struct {
	info *recordInfo
	err  error
}

var recordInfos sync.Map // map[reflect.Type]recordInfoEntry

func recordInfoOf(t reflect.Type) (*recordInfo, error) {
	if e, ok := recordInfos.Load(t); ok {
		entry := e.(recordInfoEntry)
		return entry.info, entry.err
	}
	info, err := buildRecordInfo(t)
	e, _ := recordInfos.LoadOrStore(t, recordInfoEntry{info, err})
	entry := e.(recordInfoEntry)
	return entry.info, entry.err
}

func buildRecordInfo(t reflect.Type) (*recordInfo, error) {
	if t.Kind() != reflect.Struct {
		return nil, &RecordTypeError{Type: t.String(), Err: textErr("not a struct")}
	}
	fields, err := structFields(t)
	if err != nil {
		return nil, err
	}
	info := &recordInfo{}
	var byName *recordField
	for i := range fields {
		f := &fields[i]
		switch f.role {
		case roleGeometry:
			if info.geometry != nil {
				return nil, &RecordTypeError{Type: t.String(), Field: f.name, Err: textErr("more than one geometry field")}
			}
			info.geometry = f
		case roleID:
			if info.id != nil {
				return nil, &RecordTypeError{Type: t.String(), Field: f.name, Err: textErr("more than one id field")}
			}
			info.id = f
		default:
			if byName == nil && f.name == "Geometry" && isGeometryType(f.typ) {
				byName = f
			}
		}
	}
	if info.geometry == nil && byName != nil {
		byName.role = roleGeometry
		info.geometry = byName
	}
	for i := range fields {
		f := &fields[i]
		switch f.role {
		case roleGeometry:
			if !isGeometryType(f.typ) {
				return nil, &RecordTypeError{Type: t.String(), Field: f.name, Err: fmtErr("%s is not a geometry type", f.typ)}
			}
		case roleID:
			if !isIDType(f.typ) {
				return nil, &RecordTypeError{Type: t.String(), Field: f.name, Err: fmtErr("%s is not an id type", f.typ)}
			}
		default:
			if err = checkValueType(f.typ, map[reflect.Type]bool{}); err != nil {
				return nil, &RecordTypeError{Type: t.String(), Field: f.name, Err: err}
			}
			info.props = append(info.props, *f)
		}
	}
	return info, nil
}

// structFields lists the mappable fields of t, flattening untagged
// embedded structs.
func structFields(t reflect.Type) ([]recordField, error) {
	var fields []recordField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, hasTag := sf.Tag.Lookup("geojson")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if sf.Anonymous && name == "" && sf.Type.Kind() == reflect.Struct && opts == "" {
			inner, err := structFields(sf.Type)
			if err != nil {
				return nil, err
			}
			for _, f := range inner {
				f.index = append([]int{i}, f.index...)
				fields = append(fields, f)
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}
		f := recordField{name: sf.Name, index: []int{i}, typ: sf.Type}
		if hasTag && name != "" {
			f.name = name
		}
		for _, opt := range strings.Split(opts, ",") {
			switch opt {
			case "":
			case "omitempty":
				f.omitEmpty = true
			case "geometry":
				f.role = roleGeometry
			case "id":
				f.role = roleID
			default:
				return nil, &RecordTypeError{Type: t.String(), Field: sf.Name, Err: fmtErr("unknown tag option %q", opt)}
			}
		}
		fields = append(fields, f)
	}
	return fields, nil
}

var (
	geometryType      = reflect.TypeFor[Geometry]()
	orbGeometryType   = reflect.TypeFor[orb.Geometry]()
	idType            = reflect.TypeFor[ID]()
	valueType         = reflect.TypeFor[jsonvalue.Value]()
	objectPointerType = reflect.TypeFor[*jsonvalue.Object]()
)

var orbConcreteTypes = map[reflect.Type]bool{
	reflect.TypeFor[orb.Point]():           true,
	reflect.TypeFor[orb.MultiPoint]():      true,
	reflect.TypeFor[orb.LineString]():      true,
	reflect.TypeFor[orb.MultiLineString](): true,
	reflect.TypeFor[orb.Ring]():            true,
	reflect.TypeFor[orb.Polygon]():         true,
	reflect.TypeFor[orb.MultiPolygon]():    true,
	reflect.TypeFor[orb.Collection]():      true,
	reflect.TypeFor[orb.Bound]():           true,
}

func isGeometryType(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t == geometryType || t == orbGeometryType || orbConcreteTypes[t]
}

func isIDType(t reflect.Type) bool {
	if t == idType || t == reflect.PointerTo(idType) {
		return true
	}
	switch t.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func encodeStruct(rv reflect.Value) (*Feature, error) {
	info, err := recordInfoOf(rv.Type())
	if err != nil {
		return nil, err
	}
	f := &Feature{}
	if info.geometry != nil {
		if f.Geometry, err = encodeGeometry(rv.FieldByIndex(info.geometry.index)); err != nil {
			return nil, wrapErr("field %s", err, info.geometry.name)
		}
	}
	if info.id != nil {
		if f.ID, err = encodeID(rv.FieldByIndex(info.id.index), info.id.omitEmpty); err != nil {
			return nil, wrapErr("field %s", err, info.id.name)
		}
	}
	f.Properties = &jsonvalue.Object{}
	for i := range info.props {
		p := &info.props[i]
		fv := rv.FieldByIndex(p.index)
		if p.omitEmpty && isEmptyValue(fv) {
			continue
		}
		v, err := encodeValue(fv)
		if err != nil {
			return nil, &RecordTypeError{Type: rv.Type().String(), Field: p.name, Err: err}
		}
		f.Properties.Set(p.name, v)
	}
	return f, nil
}

func decodeStruct(f *Feature, rv reflect.Value) error {
	info, err := recordInfoOf(rv.Type())
	if err != nil {
		return err
	}
	if info.geometry != nil {
		if err = decodeGeometry(f.Geometry, rv.FieldByIndex(info.geometry.index)); err != nil {
			return wrapErr("field %s", err, info.geometry.name)
		}
	}
	if info.id != nil {
		if err = decodeID(f.ID, rv.FieldByIndex(info.id.index)); err != nil {
			return wrapErr("field %s", err, info.id.name)
		}
	}
	for i := range info.props {
		p := &info.props[i]
		v, ok := f.Properties.Get(p.name)
		if !ok {
			continue
		}
		if err = decodeValue(v, rv.FieldByIndex(p.index)); err != nil {
			return wrapErr("property %q", err, p.name)
		}
	}
	return nil
}

func encodeGeometry(fv reflect.Value) (*Geometry, error) {
	switch fv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if fv.IsNil() {
			return nil, nil
		}
		if fv.Kind() == reflect.Pointer && fv.Type().Elem() == geometryType {
			return fv.Interface().(*Geometry).Clone(), nil
		}
		fv = fv.Elem()
		// A *orb.Geometry may point at a nil interface.
		if fv.Kind() == reflect.Interface && fv.IsNil() {
			return nil, nil
		}
	}
	if fv.Type() == geometryType {
		g := fv.Interface().(Geometry)
		if g.Value == nil {
			return nil, nil
		}
		return g.Clone(), nil
	}
	return FromOrb(fv.Interface().(orb.Geometry))
}

func decodeGeometry(g *Geometry, fv reflect.Value) error {
	t := fv.Type()
	if g == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface:
			fv.SetZero()
			return nil
		}
		if t == geometryType {
			fv.SetZero()
			return nil
		}
		return ErrNoGeometry
	}
	if t.Kind() == reflect.Pointer {
		p := reflect.New(t.Elem())
		if err := decodeGeometry(g, p.Elem()); err != nil {
			return err
		}
		fv.Set(p)
		return nil
	}
	switch t {
	case geometryType:
		fv.Set(reflect.ValueOf(*g.Clone()))
		return nil
	case orbGeometryType:
		o, err := ToOrb(g)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(&o).Elem())
		return nil
	case reflect.TypeFor[orb.Ring]():
		r, err := ConvertTo[orb.Ring](g)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(r))
		return nil
	case reflect.TypeFor[orb.Bound]():
		p, err := ConvertTo[orb.Polygon](g)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(p.Bound()))
		return nil
	}
	o, err := ToOrb(g)
	if err != nil {
		return err
	}
	ov := reflect.ValueOf(o)
	if ov.Type() != t {
		return &ConversionError{Expected: t.String(), Actual: string(g.Type()), Index: -1}
	}
	fv.Set(ov)
	return nil
}

func encodeID(fv reflect.Value, omitEmpty bool) (*ID, error) {
	switch fv.Type() {
	case idType:
		id := fv.Interface().(ID)
		if id.v.IsNull() {
			return nil, nil
		}
		return &id, nil
	case reflect.PointerTo(idType):
		if fv.IsNil() {
			return nil, nil
		}
		id := *fv.Interface().(*ID)
		return &id, nil
	}
	if omitEmpty && fv.IsZero() {
		return nil, nil
	}
	v, err := encodeValue(fv)
	if err != nil {
		return nil, err
	}
	return IDFromValue(v)
}

func decodeID(id *ID, fv reflect.Value) error {
	switch fv.Type() {
	case idType:
		if id == nil {
			fv.SetZero()
		} else {
			fv.Set(reflect.ValueOf(*id))
		}
		return nil
	case reflect.PointerTo(idType):
		if id == nil {
			fv.SetZero()
		} else {
			c := *id
			fv.Set(reflect.ValueOf(&c))
		}
		return nil
	}
	if id == nil {
		fv.SetZero()
		return nil
	}
	if fv.Kind() == reflect.String {
		fv.SetString(id.String())
		return nil
	}
	return decodeValue(id.v, fv)
}
