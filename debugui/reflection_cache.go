package debugui

import (
	"fmt"
	"image/color"
	"reflect"
	"sync"
)

type FieldInfo struct {
	Name  string
	Type  reflect.Type
	Index int
	Leaf  bool
}

// Row is one line of the state inspector. Rows with children render as tree
// nodes.
type Row struct {
	Name     string
	Value    string
	Children []Row
}

type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

var (
	stringerType = reflect.TypeFor[fmt.Stringer]()
	rgbaType     = reflect.TypeFor[color.RGBA]()
)

// isLeaf reports whether values of t print on a single line.
func isLeaf(t reflect.Type) bool {
	if t == rgbaType || t.Implements(stringerType) {
		return true
	}
	return t.Kind() != reflect.Struct
}

func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, FieldInfo{
				Name:  field.Name,
				Type:  field.Type,
				Index: i,
				Leaf:  isLeaf(field.Type),
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

// Describe flattens a struct value into inspector rows. Nested structs become
// rows with children; slices and maps show their length only.
func (rc *ReflectionCache) Describe(v any) []Row {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	return rc.describe(val)
}

func (rc *ReflectionCache) describe(val reflect.Value) []Row {
	fields := rc.GetFields(val.Type())
	rows := make([]Row, 0, len(fields))
	for _, f := range fields {
		fv := val.Field(f.Index)
		if f.Leaf {
			rows = append(rows, Row{Name: f.Name, Value: formatValue(fv)})
			continue
		}
		rows = append(rows, Row{Name: f.Name, Children: rc.describe(fv)})
	}
	return rows
}

func formatValue(val reflect.Value) string {
	if val.Type() == rgbaType {
		c := val.Interface().(color.RGBA)
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	if s, ok := val.Interface().(fmt.Stringer); ok {
		return s.String()
	}

	switch val.Kind() {
	case reflect.Slice:
		if val.Len() <= 8 {
			return fmt.Sprintf("%v", val.Interface())
		}
		return fmt.Sprintf("[%d items]", val.Len())
	case reflect.Map:
		return fmt.Sprintf("map[%d items]", val.Len())
	}
	return fmt.Sprintf("%v", val.Interface())
}

var globalReflectionCache = NewReflectionCache()
