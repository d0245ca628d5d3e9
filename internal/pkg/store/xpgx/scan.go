package xpgx

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
)

// scanAll scans every row into *[]T or *[]*T, matching columns against
// `db` struct tags (falling back to the lower-cased field name).
func scanAll(rows pgx.Rows, dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("xpgx: dst must be a pointer to a slice, got %T", dst)
	}

	slice := v.Elem()
	elemType := slice.Type().Elem()
	isPtr := elemType.Kind() == reflect.Pointer
	if isPtr {
		elemType = elemType.Elem()
	}

	for rows.Next() {
		elem := reflect.New(elemType)
		if err := scanRow(rows, elem.Elem()); err != nil {
			return err
		}
		if isPtr {
			slice = reflect.Append(slice, elem)
		} else {
			slice = reflect.Append(slice, elem.Elem())
		}
	}
	v.Elem().Set(slice)

	return rows.Err()
}

func scanOne(rows pgx.Rows, dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("xpgx: dst must be a pointer to a struct, got %T", dst)
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return pgx.ErrNoRows
	}
	if err := scanRow(rows, v.Elem()); err != nil {
		return err
	}

	return rows.Err()
}

func scanRow(rows pgx.Rows, structVal reflect.Value) error {
	fields := fieldIndexByColumn(structVal.Type())

	descs := rows.FieldDescriptions()
	targets := make([]any, len(descs))
	var discard any
	for i, fd := range descs {
		idx, ok := fields[string(fd.Name)]
		if !ok {
			targets[i] = &discard
			continue
		}
		targets[i] = structVal.FieldByIndex(idx).Addr().Interface()
	}

	return rows.Scan(targets...)
}

func fieldIndexByColumn(t reflect.Type) map[string][]int {
	out := make(map[string][]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			for col, idx := range fieldIndexByColumn(f.Type) {
				out[col] = append([]int{i}, idx...)
			}
			continue
		}

		col := f.Tag.Get("db")
		if col == "-" {
			continue
		}
		if col == "" {
			col = strings.ToLower(f.Name)
		}
		out[col] = []int{i}
	}

	return out
}
