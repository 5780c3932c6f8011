// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Bind sets the register fields of the struct pointed to by v from the wires
// in s. Fields are identified by their tag.
//
// The field tag must be `ns:"in"` or `ns:"out"`. By default, the wire name is
// the field name in lowercase. A specific name can be forced by adding it in
// the tag: `ns:"in,wire_name"`. Input wires must exist in s, output wires are
// allocated if needed.
//
// Register fields must be of type int, buses must be arrays of int.
//
//	var io struct {
//		A   [4]int `ns:"in"`
//		B   [4]int `ns:"in"`
//		Sum [4]int `ns:"out"`
//		C   int    `ns:"out,carry"`
//	}
//	err := s.Bind(&io)
func (s *Socket) Bind(v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return errors.Errorf("unsupported type %T, expected pointer to struct", v)
	}
	e := rv.Elem()
	typ := e.Type()

	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("ns")
		if !ok {
			continue
		}
		name := strings.ToLower(f.Name)
		tv := strings.Split(tag, ",")
		if len(tv) > 2 {
			return errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name())
		}
		if len(tv) == 2 && tv[1] != "" {
			name = tv[1]
		}
		var pin func(name string) (int, error)
		switch tv[0] {
		case "in":
			pin = func(name string) (int, error) {
				n, ok := s.m[name]
				if !ok {
					return 0, errors.Errorf("input wire %s does not exist", name)
				}
				return n, nil
			}
		case "out":
			pin = func(name string) (int, error) { return s.PinOrNew(name), nil }
		default:
			return errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name())
		}

		fv := e.Field(i)
		if !fv.CanSet() {
			return errors.Errorf("field %q in %q is not exported", f.Name, typ.Name())
		}
		ft := f.Type
		switch k := ft.Kind(); {
		case k == reflect.Array && ft.Elem().Kind() == reflect.Int:
			// bus
			for j := 0; j < fv.Len(); j++ {
				n, err := pin(BusPinName(name, j))
				if err != nil {
					return errors.Wrapf(err, "field %q", f.Name)
				}
				fv.Index(j).SetInt(int64(n))
			}
		case k == reflect.Int:
			n, err := pin(name)
			if err != nil {
				return errors.Wrapf(err, "field %q", f.Name)
			}
			fv.SetInt(int64(n))
		default:
			return errors.Errorf("unsupported type %q for field %q in %q", k, f.Name, typ.Name())
		}
	}
	return nil
}
