package signature

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jonathan/signature-customizer/internal/types"
)

var signatureType = reflect.TypeOf(types.Signature{})

// legacyKeys are retired keys still read during migration, per struct type
var legacyKeys = map[reflect.Type][]string{
	reflect.TypeOf(types.ImageOptions{}): {"shadowSize"},
}

// checkKeyCase rejects object keys that match a field of t only when case is
// ignored. encoding/json would accept them, but the migration steps and the
// schema look keys up exactly, so such input would be read inconsistently.
// Keys unrelated to any field are ignored.
func checkKeyCase(value any, t reflect.Type, path string) error {
	switch t.Kind() {
	case reflect.Struct:
		obj, ok := value.(map[string]any)
		if !ok {
			return nil
		}
		fields := jsonFields(t)
		for key, v := range obj {
			if fieldType, ok := fields[key]; ok {
				if err := checkKeyCase(v, fieldType, joinPath(path, key)); err != nil {
					return err
				}
				continue
			}
			for name := range fields {
				if strings.EqualFold(key, name) {
					return malformed("key %q must be spelled %q", joinPath(path, key), name)
				}
			}
		}
	case reflect.Slice:
		items, ok := value.([]any)
		if !ok {
			return nil
		}
		for i, item := range items {
			if err := checkKeyCase(item, t.Elem(), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

// jsonFields maps the JSON names of t's fields, plus its legacy keys, to their types.
func jsonFields(t reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		fields[name] = f.Type
	}
	for _, key := range legacyKeys[t] {
		fields[key] = reflect.TypeOf("")
	}
	return fields
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
