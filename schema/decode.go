// Package schema decodes untyped documents (the tree produced by parsing
// JSON) into typed Go values while enforcing which fields are required,
// which are optional and which fall back to a default.
//
// Field rules come from struct tags:
//
//	ID      string   `json:"id"`                       // required
//	Nick    *string  `json:"nick,omitempty"`           // optional, nullable
//	Regions []string `json:"regions" schema:"default"` // absent decodes to an empty list
//
// Types implementing Unmarshaler decode themselves, which is how untagged
// unions and validated scalars take part.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/WelcomerTeam/Sandwich-Ready/sandwichjson"
)

// Unmarshaler is implemented by types that decode themselves from a document
// node. Errors should be built with Mismatch or NoVariant; the engine adds the
// field path.
type Unmarshaler interface {
	UnmarshalDocument(node any) error
}

var (
	unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()

	errMapKey = errors.New("map keys must be strings")
)

// Decode decodes node into out, which must be a non-nil pointer. out is only
// written when the whole document decodes.
func Decode(node any, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrInvalidTarget
	}

	scratch := reflect.New(rv.Elem().Type()).Elem()

	if err := decodeValue(scratch, node, ""); err != nil {
		return err
	}

	rv.Elem().Set(scratch)

	return nil
}

// Unmarshal parses data as JSON, keeping numbers exact, and decodes it into out.
func Unmarshal(data []byte, out any) error {
	document, err := sandwichjson.UnmarshalDocument(data)
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	return Decode(document, out)
}

func decodeValue(rv reflect.Value, node any, path string) error {
	if rv.CanAddr() && rv.Addr().Type().Implements(unmarshalerType) {
		err := rv.Addr().Interface().(Unmarshaler).UnmarshalDocument(node)
		if err != nil {
			return wrapForeign(err, rv.Type(), node, path)
		}

		return nil
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if node == nil {
			rv.Set(reflect.Zero(rv.Type()))

			return nil
		}

		elem := reflect.New(rv.Type().Elem())
		if err := decodeValue(elem.Elem(), node, path); err != nil {
			return err
		}

		rv.Set(elem)

		return nil
	case reflect.Interface:
		if node == nil {
			return nil
		}

		value := reflect.ValueOf(node)
		if !value.Type().AssignableTo(rv.Type()) {
			return &TypeMismatchError{Field: path, Expected: rv.Type().String(), Found: KindOf(node)}
		}

		rv.Set(value)

		return nil
	case reflect.String:
		s, err := String(node)
		if err != nil {
			return Prefix(err, path)
		}

		rv.SetString(s)

		return nil
	case reflect.Bool:
		b, err := Bool(node)
		if err != nil {
			return Prefix(err, path)
		}

		rv.SetBool(b)

		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := Int64(node)
		if err != nil {
			return Prefix(err, path)
		}

		if rv.OverflowInt(i) {
			return &TypeMismatchError{
				Field:    path,
				Expected: rv.Type().String(),
				Found:    KindNumber,
				Err:      fmt.Errorf("%d overflows %s", i, rv.Type()),
			}
		}

		rv.SetInt(i)

		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := Uint64(node)
		if err != nil {
			return Prefix(err, path)
		}

		if rv.OverflowUint(u) {
			return &TypeMismatchError{
				Field:    path,
				Expected: rv.Type().String(),
				Found:    KindNumber,
				Err:      fmt.Errorf("%d overflows %s", u, rv.Type()),
			}
		}

		rv.SetUint(u)

		return nil
	case reflect.Float32, reflect.Float64:
		f, err := Float64(node)
		if err != nil {
			return Prefix(err, path)
		}

		rv.SetFloat(f)

		return nil
	case reflect.Slice:
		return decodeSlice(rv, node, path)
	case reflect.Array:
		return decodeArray(rv, node, path)
	case reflect.Map:
		return decodeMap(rv, node, path)
	case reflect.Struct:
		return decodeStruct(rv, node, path)
	}

	return &TypeMismatchError{
		Field:    path,
		Expected: rv.Type().String(),
		Found:    KindOf(node),
		Err:      fmt.Errorf("unsupported kind %s", rv.Kind()),
	}
}

func decodeSlice(rv reflect.Value, node any, path string) error {
	items, err := Array(node)
	if err != nil {
		return Prefix(err, path)
	}

	slice := reflect.MakeSlice(rv.Type(), len(items), len(items))

	for i, item := range items {
		if err := decodeValue(slice.Index(i), item, indexPath(path, i)); err != nil {
			return err
		}
	}

	rv.Set(slice)

	return nil
}

func decodeArray(rv reflect.Value, node any, path string) error {
	items, err := Array(node)
	if err != nil {
		return Prefix(err, path)
	}

	if len(items) != rv.Len() {
		return &TypeMismatchError{
			Field:    path,
			Expected: fmt.Sprintf("array of %d elements", rv.Len()),
			Found:    fmt.Sprintf("array of %d elements", len(items)),
		}
	}

	for i, item := range items {
		if err := decodeValue(rv.Index(i), item, indexPath(path, i)); err != nil {
			return err
		}
	}

	return nil
}

func decodeMap(rv reflect.Value, node any, path string) error {
	if rv.Type().Key().Kind() != reflect.String {
		return &TypeMismatchError{
			Field:    path,
			Expected: rv.Type().String(),
			Found:    KindOf(node),
			Err:      errMapKey,
		}
	}

	object, err := Object(node)
	if err != nil {
		return Prefix(err, path)
	}

	m := reflect.MakeMapWithSize(rv.Type(), len(object))

	for key, value := range object {
		elem := reflect.New(rv.Type().Elem()).Elem()
		if err := decodeValue(elem, value, joinPath(path, key)); err != nil {
			return err
		}

		m.SetMapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()), elem)
	}

	rv.Set(m)

	return nil
}

func decodeStruct(rv reflect.Value, node any, path string) error {
	object, err := Object(node)
	if err != nil {
		return Prefix(err, path)
	}

	info := cachedStructInfo(rv.Type())

	for _, field := range info.fields {
		fv := rv.Field(field.index)
		fieldPath := joinPath(path, field.name)

		value, ok := object[field.name]
		if !ok {
			switch {
			case field.optional:
				fv.Set(reflect.Zero(fv.Type()))
			case field.defaulted:
				setDefault(fv)
			default:
				return &MissingFieldError{Field: fieldPath}
			}

			continue
		}

		if err := decodeValue(fv, value, fieldPath); err != nil {
			return err
		}
	}

	return nil
}

// setDefault stores the documented default for a missing field: an empty,
// non-nil container for lists and maps, the zero value otherwise.
func setDefault(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Slice:
		rv.Set(reflect.MakeSlice(rv.Type(), 0, 0))
	case reflect.Map:
		rv.Set(reflect.MakeMap(rv.Type()))
	default:
		rv.Set(reflect.Zero(rv.Type()))
	}
}

// wrapForeign re-roots errors returned by an Unmarshaler. Errors from outside
// the taxonomy become type mismatches so callers only ever see the four kinds.
func wrapForeign(err error, t reflect.Type, node any, path string) error {
	switch err.(type) {
	case *MissingFieldError, *TypeMismatchError, *NoMatchingVariantError, *EncodingError:
		return Prefix(err, path)
	}

	return &TypeMismatchError{
		Field:    path,
		Expected: t.String(),
		Found:    KindOf(node),
		Err:      err,
	}
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
