package comparer

import (
	"fmt"
	"reflect"
)

// FindCycle walks v and returns the path to the first pointer that is reached
// again while it is still being walked, or nil when v holds no cycle.
func FindCycle(v any) []string {
	onPath := map[uintptr]bool{}
	return walk(reflect.ValueOf(v), "$", onPath)
}

func walk(v reflect.Value, path string, onPath map[uintptr]bool) []string {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		addr := v.Pointer()
		if onPath[addr] {
			return []string{path}
		}
		onPath[addr] = true
		defer delete(onPath, addr)
		if cycle := walk(v.Elem(), path, onPath); cycle != nil {
			return append([]string{path}, cycle...)
		}

	case reflect.Interface:
		if !v.IsNil() {
			return walk(v.Elem(), path, onPath)
		}

	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if cycle := walk(v.Field(i), path+"."+v.Type().Field(i).Name, onPath); cycle != nil {
				return cycle
			}
		}

	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if cycle := walk(v.Index(i), fmt.Sprintf("%s[%d]", path, i), onPath); cycle != nil {
				return cycle
			}
		}

	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if cycle := walk(iter.Value(), fmt.Sprintf("%s[%v]", path, iter.Key()), onPath); cycle != nil {
				return cycle
			}
		}
	}

	return nil
}
