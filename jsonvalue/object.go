// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package jsonvalue

import "iter"

// A Member is one name/value pair of a JSON object.
type Member struct {
	Name  string
	Value Value
}

// An Object is a JSON object whose members keep their insertion order.
// Member names are unique.
//
// A nil *Object behaves as an empty object for all read methods.
type Object struct {
	members []Member
}

// NewObject returns an object holding the given members in order. If
// a name repeats, the later value replaces the earlier one in the
// earlier position.
func NewObject(members ...Member) *Object {
	o := &Object{}
	for _, m := range members {
		o.Set(m.Name, m.Value)
	}
	return o
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

func (o *Object) index(name string) int {
	if o == nil {
		return -1
	}
	for i := range o.members {
		if o.members[i].Name == name {
			return i
		}
	}
	return -1
}

// Get returns the value of the named member and whether it exists.
func (o *Object) Get(name string) (Value, bool) {
	if i := o.index(name); i >= 0 {
		return o.members[i].Value, true
	}
	return Value{}, false
}

// Has reports whether the named member exists.
func (o *Object) Has(name string) bool {
	return o.index(name) >= 0
}

// Set sets the named member to v. An existing member keeps its
// position; a new member is appended.
func (o *Object) Set(name string, v Value) {
	if o == nil {
		textPanic("Set on nil object")
	}
	if i := o.index(name); i >= 0 {
		o.members[i].Value = v
		return
	}
	o.members = append(o.members, Member{Name: name, Value: v})
}

// Delete removes the named member, returning its value and whether it
// existed.
func (o *Object) Delete(name string) (Value, bool) {
	i := o.index(name)
	if i < 0 {
		return Value{}, false
	}
	v := o.members[i].Value
	o.members = append(o.members[:i], o.members[i+1:]...)
	if len(o.members) == 0 {
		o.members = nil
	}
	return v, true
}

// Members returns the members in order. The returned slice must not be
// modified.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	return o.members
}

// Names returns the member names in order.
func (o *Object) Names() []string {
	if o.Len() == 0 {
		return nil
	}
	names := make([]string, len(o.members))
	for i := range o.members {
		names[i] = o.members[i].Name
	}
	return names
}

// All returns an iterator over the members in order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, m := range o.Members() {
			if !yield(m.Name, m.Value) {
				return
			}
		}
	}
}

// Clone returns a deep copy of o. Cloning a nil object returns an
// empty object.
func (o *Object) Clone() *Object {
	c := &Object{}
	if o.Len() == 0 {
		return c
	}
	c.members = make([]Member, len(o.members))
	for i := range o.members {
		c.members[i] = Member{Name: o.members[i].Name, Value: o.members[i].Value.Clone()}
	}
	return c
}

// Equal reports whether o and p hold the same members in the same
// order. A nil object equals an empty one.
func (o *Object) Equal(p *Object) bool {
	if o.Len() != p.Len() {
		return false
	}
	for i := range o.Members() {
		a, b := &o.members[i], &p.members[i]
		if a.Name != b.Name || !a.Value.Equal(b.Value) {
			return false
		}
	}
	return true
}

// String returns the compact JSON text of o.
func (o *Object) String() string {
	return ObjectValue(o).String()
}
