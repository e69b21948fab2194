package teachta

import (
	"reflect"
	"sync"
)

// reflectionCache caches per-type reflection metadata used by the
// definition-time accessor probe and the call-time field lookup. Only type
// metadata is cached; resolved delegation targets never are.
type reflectionCache struct {
	mu sync.RWMutex

	// Exported field name -> field index, per struct type
	fields map[reflect.Type]map[string]int

	// Method name -> takes zero arguments, per type
	methods map[reflect.Type]map[string]bool
}

// newReflectionCache creates a new reflection cache.
func newReflectionCache() *reflectionCache {
	return &reflectionCache{
		fields:  make(map[reflect.Type]map[string]int),
		methods: make(map[reflect.Type]map[string]bool),
	}
}

// exportedField returns the index of the exported field with the given
// name on the struct type.
func (rc *reflectionCache) exportedField(typ reflect.Type, name string) (int, bool) {
	index, ok := rc.fieldIndex(typ)[name]
	return index, ok
}

// fieldIndex retrieves or computes the exported field table for a type.
func (rc *reflectionCache) fieldIndex(typ reflect.Type) map[string]int {
	// Fast path: check cache with read lock
	rc.mu.RLock()
	fields, exists := rc.fields[typ]
	rc.mu.RUnlock()

	if exists {
		return fields
	}

	// Slow path: compute and cache with write lock
	rc.mu.Lock()
	defer rc.mu.Unlock()

	// Double-check after acquiring write lock
	fields, exists = rc.fields[typ]
	if exists {
		return fields
	}

	if typ.Kind() != reflect.Struct {
		rc.fields[typ] = nil
		return nil
	}

	fields = make(map[string]int, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			// Unexported fields cannot be read through reflection
			continue
		}
		fields[field.Name] = i
	}

	rc.fields[typ] = fields
	return fields
}

// hasZeroArgMethod reports whether the type, or its pointer type, declares
// a method with the given name taking no arguments beyond the receiver.
func (rc *reflectionCache) hasZeroArgMethod(typ reflect.Type, name string) bool {
	if rc.methodTable(typ)[name] {
		return true
	}
	if typ.Kind() != reflect.Ptr && typ.Kind() != reflect.Interface {
		return rc.methodTable(reflect.PtrTo(typ))[name]
	}
	return false
}

// methodTable retrieves or computes the zero-arg method table for a type.
func (rc *reflectionCache) methodTable(typ reflect.Type) map[string]bool {
	rc.mu.RLock()
	methods, exists := rc.methods[typ]
	rc.mu.RUnlock()

	if exists {
		return methods
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	methods, exists = rc.methods[typ]
	if exists {
		return methods
	}

	methods = make(map[string]bool, typ.NumMethod())
	for i := 0; i < typ.NumMethod(); i++ {
		method := typ.Method(i)
		numIn := method.Type.NumIn()
		if typ.Kind() != reflect.Interface {
			// Concrete method types include the receiver
			numIn--
		}
		methods[method.Name] = numIn == 0
	}

	rc.methods[typ] = methods
	return methods
}

// clear clears all cached metadata.
func (rc *reflectionCache) clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.fields = make(map[reflect.Type]map[string]int)
	rc.methods = make(map[reflect.Type]map[string]bool)
}
