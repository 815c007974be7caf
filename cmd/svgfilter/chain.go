// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/svgfilter"
	"github.com/gogpu/svgfilter/filters"
)

// chainDocument is the YAML description of one filter element:
//
//	filter:
//	  attributes:
//	    color-interpolation-filters: sRGB
//	  bbox: [0, 0, 100, 100]
//	primitives:
//	  - element: feGaussianBlur
//	    attributes:
//	      in: SourceAlpha
//	      stdDeviation: 4
//	      result: blur
//	  - element: feOffset
//	    attributes:
//	      dx: 4
//	      dy: 4
//
// Attributes are kept in document order.
type chainDocument struct {
	Filter     filterSpec      `yaml:"filter"`
	Primitives []primitiveSpec `yaml:"primitives" validate:"required,min=1,dive"`
}

type filterSpec struct {
	Attributes attributeList `yaml:"attributes"`

	// BoundingBox and Viewport are x, y, width, height in user units.
	BoundingBox []float64 `yaml:"bbox" validate:"omitempty,rect"`
	Viewport    []float64 `yaml:"viewport" validate:"omitempty,rect"`
}

type primitiveSpec struct {
	Element    string        `yaml:"element" validate:"required,startswith=fe"`
	Attributes attributeList `yaml:"attributes"`
}

// attributeList decodes a YAML mapping into attributes without losing the
// key order.
type attributeList filters.Attributes

func (a *attributeList) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attributes must be a mapping", n.Line)
	}
	out := make(attributeList, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: attribute %q must be a scalar", v.Line, k.Value)
		}
		out = append(out, filters.Attribute{Name: k.Value, Value: v.Value})
	}
	*a = out
	return nil
}

var chainValidate *validator.Validate

func init() {
	chainValidate = validator.New()
	_ = chainValidate.RegisterValidation("rect", validateRect)
}

// validateRect accepts x, y, width, height with a positive size.
func validateRect(fl validator.FieldLevel) bool {
	v, ok := fl.Field().Interface().([]float64)
	return ok && len(v) == 4 && v[2] > 0 && v[3] > 0
}

// loadChain reads and validates a chain document.
func loadChain(path string) (*chainDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := parseChain(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func parseChain(data []byte) (*chainDocument, error) {
	var doc chainDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty chain document")
		}
		return nil, err
	}
	if err := chainValidate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid chain document: %w", err)
	}
	return &doc, nil
}

// filter parses the document into a filter.
func (d *chainDocument) filter() *filters.Filter {
	children := make([]filters.Element, len(d.Primitives))
	for i, p := range d.Primitives {
		children[i] = filters.Element{Name: p.Element, Attrs: filters.Attributes(p.Attributes)}
	}
	return filters.ParseFilter(filters.Attributes(d.Filter.Attributes), children)
}

func toRect(v []float64) svgfilter.Rect {
	if len(v) != 4 {
		return svgfilter.Rect{}
	}
	return svgfilter.XYWH(v[0], v[1], v[2], v[3])
}
