// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

// Attribute is a single name/value pair from an element.
type Attribute struct {
	Name  string
	Value string
}

// Attributes is an ordered attribute bag. Order is document order; parsers
// visit attributes in this order.
type Attributes []Attribute

// Get returns the value of the last attribute called name.
func (a Attributes) Get(name string) (string, bool) {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i].Name == name {
			return a[i].Value, true
		}
	}
	return "", false
}

// Element is a filter primitive element: its local name (for example
// "feBlend") and its attributes.
type Element struct {
	Name  string
	Attrs Attributes
}
