package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var dateTimeType = reflect.TypeOf(DateTime{})

// Decode unmarshals the JSON document in data into v, which must be a non-nil
// pointer. Nothing is written to v unless the whole document decodes.
//
// When a date-time field fails, the returned *DecodeError names the field by its
// dotted JSON path (for example "deployment.created_at" or "commits[2].timestamp").
func Decode(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &json.InvalidUnmarshalError{Type: reflect.TypeOf(v)}
	}
	target := rv.Elem().Type()
	fresh := reflect.New(target)
	if err := json.Unmarshal(data, fresh.Interface()); err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			annotated := *de
			if tree, perr := ParseJSON(data); perr == nil {
				if path, ok := locateDateTimeFailure(tree, target, ""); ok {
					annotated.Field = path
				}
			}
			return &annotated
		}
		return fmt.Errorf("decode %s: %w", target, err)
	}
	rv.Elem().Set(fresh.Elem())
	return nil
}

// locateDateTimeFailure walks node alongside t in document order and returns the
// path of the first DateTime slot whose node does not decode.
func locateDateTimeFailure(node Value, t reflect.Type, path string) (string, bool) {
	for t.Kind() == reflect.Pointer {
		if node.Kind() == KindNull {
			return "", false
		}
		t = t.Elem()
	}
	if t == dateTimeType {
		if _, err := DecodeDateTime(node, true); err != nil {
			return path, true
		}
		return "", false
	}

	switch t.Kind() {
	case reflect.Struct:
		if node.Kind() != KindObject {
			return "", false
		}
		fields := jsonFields(t)
		for _, m := range node.members {
			f, ok := matchField(fields, m.Key)
			if !ok {
				continue
			}
			if p, ok := locateDateTimeFailure(m.Value, f.typ, joinPath(path, f.name)); ok {
				return p, true
			}
		}
	case reflect.Slice, reflect.Array:
		if node.Kind() != KindArray || t.Elem().Kind() == reflect.Uint8 {
			return "", false
		}
		for i, item := range node.items {
			if p, ok := locateDateTimeFailure(item, t.Elem(), path+"["+strconv.Itoa(i)+"]"); ok {
				return p, true
			}
		}
	case reflect.Map:
		if node.Kind() != KindObject {
			return "", false
		}
		for _, m := range node.members {
			if p, ok := locateDateTimeFailure(m.Value, t.Elem(), joinPath(path, m.Key)); ok {
				return p, true
			}
		}
	}
	return "", false
}

type jsonField struct {
	name string
	typ  reflect.Type
}

// jsonFields lists the JSON-visible fields of a struct type, with promoted fields
// of untagged embedded structs after the direct ones.
func jsonFields(t reflect.Type) []jsonField {
	var direct, promoted []jsonField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if sf.Anonymous && name == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				promoted = append(promoted, jsonFields(ft)...)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		direct = append(direct, jsonField{name: name, typ: sf.Type})
	}
	return append(direct, promoted...)
}

// matchField prefers an exact name and falls back to a case-insensitive match,
// as encoding/json does.
func matchField(fields []jsonField, key string) (jsonField, bool) {
	for _, f := range fields {
		if f.name == key {
			return f, true
		}
	}
	for _, f := range fields {
		if strings.EqualFold(f.name, key) {
			return f, true
		}
	}
	return jsonField{}, false
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
