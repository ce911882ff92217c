package visitor

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/tagly/format/text"
	"github.com/viant/traversal"
	"github.com/viant/xunsafe"
)

var structCache = NewSyncMap[structKey, *structInfo]()

type structKey struct {
	t          reflect.Type
	caseFormat text.CaseFormat
}

type structInfo struct {
	xStruct *xunsafe.Struct
	names   []string
}

func newStructInfo(key structKey) *structInfo {
	xStruct := xunsafe.NewStruct(key.t)
	info := &structInfo{xStruct: xStruct, names: make([]string, len(xStruct.Fields))}
	for i := range xStruct.Fields {
		info.names[i] = formatName(xStruct.Fields[i].Name, key.caseFormat)
	}
	return info
}

func formatName(name string, caseFormat text.CaseFormat) string {
	if caseFormat == text.CaseFormatUndefined {
		return name
	}
	src := text.DetectCaseFormat(name)
	if src == text.CaseFormatUndefined {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(name, caseFormat)
}

var _ traversal.IndexedValueIterator[any] = (*StructIterator)(nil)

// StructIterator is an indexed value iterator over struct fields in declaration order.
// Field values are boxed into interface{}, so unlike traversal.ArrayIterator each Next may allocate.
type StructIterator struct {
	ptr   unsafe.Pointer
	info  *structInfo
	index int
}

// StructIteratorOf creates a StructIterator from a struct or a non nil pointer to struct.
func StructIteratorOf(value interface{}, opts ...Option) (*StructIterator, error) {
	ptr, info, err := structOf(value, opts)
	if err != nil {
		return nil, err
	}
	return &StructIterator{ptr: ptr, info: info}, nil
}

func structOf(value interface{}, opts []Option) (unsafe.Pointer, *structInfo, error) {
	if value == nil {
		return nil, nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	valueType := reflect.TypeOf(value)
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		structType = valueType.Elem()
		if structType.Kind() != reflect.Struct {
			return nil, nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
		if reflect.ValueOf(value).IsNil() {
			return nil, nil, fmt.Errorf("expected non nil %T", value)
		}
	case reflect.Struct:
		structType = valueType
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	default:
		return nil, nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	o := &options{}
	Options(opts).Apply(o)
	key := structKey{t: structType, caseFormat: o.caseFormat}
	info := structCache.GetOrPut(key, func() *structInfo { return newStructInfo(key) })
	return xunsafe.AsPointer(value), info, nil
}

// Size returns the number of struct fields.
func (it *StructIterator) Size() int { return len(it.info.names) }

// ZeroValue returns nil.
func (it *StructIterator) ZeroValue() any { return nil }

// HasNext returns whether another field remains.
func (it *StructIterator) HasNext() bool { return it.index < len(it.info.names) }

// Name returns the (formatted) name of the field at index, or an empty string when out of range.
func (it *StructIterator) Name(index int) string {
	if index < 0 || index >= len(it.info.names) {
		return ""
	}
	return it.info.names[index]
}

// Next delivers (field index, field value) to consumer.
func (it *StructIterator) Next(consumer traversal.Consumer[any]) error {
	size := len(it.info.names)
	if it.index >= size {
		return &traversal.OutOfBoundsError{Index: it.index, Size: size}
	}
	if consumer != nil {
		xField := it.info.xStruct.Fields[it.index]
		consumer(it.index, xField.Value(it.ptr))
	}
	it.index++
	return nil
}

// StructVisitorOf creates a Visitor keyed by field name; each visit walks a fresh StructIterator.
func StructVisitorOf(value interface{}, opts ...Option) (Visitor[string, interface{}], error) {
	ptr, info, err := structOf(value, opts)
	if err != nil {
		return nil, err
	}
	return func(f func(key string, element interface{}) (bool, error)) error {
		it := &StructIterator{ptr: ptr, info: info}
		return visit[any](it, func(index int, element any) (bool, error) {
			return f(it.Name(index), element)
		})
	}, nil
}
