package argv

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Bind copies resolved values into the exported fields of the struct that
// target points to. A field is matched by its `arg:"name"` tag, or by its
// name with the first letter lowercased; `arg:"-"` skips the field.
// Numbers convert to any integer or float field, sequences to slices of a
// compatible element type. Keys without a value leave the field untouched.
func (m *ValueMap) Bind(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return errors.New("argv: Bind target must be a non-nil pointer to struct")
	}
	return m.bindStruct(rv.Elem())
}

func (m *ValueMap) bindStruct(sv reflect.Value) error {
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		fv := sv.Field(i)
		if !field.IsExported() || !fv.CanSet() {
			continue
		}
		name := bindName(field)
		if name == "" {
			continue
		}
		if field.Anonymous && fv.Kind() == reflect.Struct {
			if err := m.bindStruct(fv); err != nil {
				return err
			}
			continue
		}

		if v, ok := m.scalars[name]; ok {
			if err := setScalar(fv, v); err != nil {
				return fmt.Errorf("argv: field %s: %w", field.Name, err)
			}
			continue
		}
		if l, ok := m.lists[name]; ok {
			if err := setList(fv, l); err != nil {
				return fmt.Errorf("argv: field %s: %w", field.Name, err)
			}
		}
	}
	return nil
}

func bindName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("arg"); ok {
		if tag == "-" {
			return ""
		}
		return tag
	}
	r, size := utf8.DecodeRuneInString(f.Name)
	return string(unicode.ToLower(r)) + f.Name[size:]
}

// Bounds of the int64 and uint64 ranges, exact as float64.
const (
	two63 = 1 << 63
	two64 = 1 << 64
)

// isWhole reports whether f is a finite integer.
func isWhole(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}

func setScalar(fv reflect.Value, v Value) error {
	switch fv.Kind() {
	case reflect.Bool:
		if v.Kind() != KindBool {
			break
		}
		fv.SetBool(v.Bool())
		return nil
	case reflect.String:
		if v.Kind() != KindString {
			break
		}
		fv.SetString(v.Text())
		return nil
	case reflect.Float32, reflect.Float64:
		if v.Kind() != KindNumber {
			break
		}
		fv.SetFloat(v.Number())
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Kind() != KindNumber {
			break
		}
		f := v.Number()
		if !isWhole(f) || f < -two63 || f >= two63 {
			return fmt.Errorf("%s is not representable as %s", v, fv.Type())
		}
		n := int64(f)
		if fv.OverflowInt(n) {
			return fmt.Errorf("%s overflows %s", v, fv.Type())
		}
		fv.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Kind() != KindNumber || v.Number() < 0 {
			break
		}
		f := v.Number()
		if !isWhole(f) || f >= two64 {
			return fmt.Errorf("%s is not representable as %s", v, fv.Type())
		}
		n := uint64(f)
		if fv.OverflowUint(n) {
			return fmt.Errorf("%s overflows %s", v, fv.Type())
		}
		fv.SetUint(n)
		return nil
	case reflect.Interface:
		if fv.NumMethod() == 0 {
			fv.Set(reflect.ValueOf(v.Any()))
			return nil
		}
	}
	return fmt.Errorf("cannot assign %s %q to %s", v.Kind(), v.String(), fv.Type())
}

func setList(fv reflect.Value, l []Value) error {
	if fv.Kind() != reflect.Slice {
		return fmt.Errorf("cannot assign a sequence to %s", fv.Type())
	}
	out := reflect.MakeSlice(fv.Type(), len(l), len(l))
	for i, v := range l {
		if err := setScalar(out.Index(i), v); err != nil {
			return err
		}
	}
	fv.Set(out)
	return nil
}
