package schema

import (
	"reflect"
	"strings"
	"sync"
)

const (
	tagName      = "schema"
	tagDefault   = "default"
	tagWireName  = "json"
	tagSkipField = "-"
)

type fieldInfo struct {
	name      string
	index     int
	optional  bool
	defaulted bool
}

type structInfo struct {
	fields []fieldInfo
}

// typeCache is a type-safe wrapper around sync.Map keyed by struct type.
type typeCache struct {
	m sync.Map
}

func (c *typeCache) Load(key reflect.Type) (*structInfo, bool) {
	value, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}

	return value.(*structInfo), true
}

func (c *typeCache) LoadOrStore(key reflect.Type, value *structInfo) *structInfo {
	actual, _ := c.m.LoadOrStore(key, value)

	return actual.(*structInfo)
}

var structCache typeCache

func cachedStructInfo(t reflect.Type) *structInfo {
	if info, ok := structCache.Load(t); ok {
		return info
	}

	return structCache.LoadOrStore(t, buildStructInfo(t))
}

func buildStructInfo(t reflect.Type) *structInfo {
	info := &structInfo{
		fields: make([]fieldInfo, 0, t.NumField()),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Name

		if tag, ok := field.Tag.Lookup(tagWireName); ok {
			wire, _, _ := strings.Cut(tag, ",")
			if wire == tagSkipField {
				continue
			}

			if wire != "" {
				name = wire
			}
		}

		kind := field.Type.Kind()

		info.fields = append(info.fields, fieldInfo{
			name:      name,
			index:     i,
			optional:  kind == reflect.Pointer || kind == reflect.Interface,
			defaulted: hasOption(field.Tag.Get(tagName), tagDefault),
		})
	}

	return info
}

func hasOption(tag, option string) bool {
	for tag != "" {
		var name string

		name, tag, _ = strings.Cut(tag, ",")
		if name == option {
			return true
		}
	}

	return false
}
