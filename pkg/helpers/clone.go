package helpers

import "reflect"

// DeepClone returns a copy of v that shares no pointers, slices or maps with
// it. Unexported struct fields and map keys are copied shallowly; channels
// and funcs are shared. Cyclic values are not supported.
func DeepClone[T any](v T) T {
	src := reflect.ValueOf(&v).Elem()
	dst := reflect.New(src.Type()).Elem()
	cloneValue(dst, src)
	out, _ := dst.Interface().(T)
	return out
}

func cloneValue(dst, src reflect.Value) {
	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return
		}
		p := reflect.New(src.Elem().Type())
		cloneValue(p.Elem(), src.Elem())
		dst.Set(p)

	case reflect.Interface:
		if src.IsNil() {
			return
		}
		inner := src.Elem()
		c := reflect.New(inner.Type()).Elem()
		cloneValue(c, inner)
		dst.Set(c)

	case reflect.Struct:
		dst.Set(src)
		for i := range src.NumField() {
			if dst.Field(i).CanSet() {
				cloneValue(dst.Field(i), src.Field(i))
			}
		}

	case reflect.Slice:
		if src.IsNil() {
			return
		}
		s := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		for i := range src.Len() {
			cloneValue(s.Index(i), src.Index(i))
		}
		dst.Set(s)

	case reflect.Array:
		for i := range src.Len() {
			cloneValue(dst.Index(i), src.Index(i))
		}

	case reflect.Map:
		if src.IsNil() {
			return
		}
		m := reflect.MakeMapWithSize(src.Type(), src.Len())
		iter := src.MapRange()
		for iter.Next() {
			val := reflect.New(src.Type().Elem()).Elem()
			cloneValue(val, iter.Value())
			m.SetMapIndex(iter.Key(), val)
		}
		dst.Set(m)

	default:
		dst.Set(src)
	}
}
