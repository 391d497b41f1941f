package repository

import (
	"reflect"
)

const primaryColumn = "id"

func getColumns(reflectType reflect.Type) []string {
	columns := []string{}

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, getColumns(field.Type)...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		columns = append(columns, dbTag)
	}

	return columns
}

// columnValues flattens a model into its db columns, embedded structs included.
func columnValues(model any) map[string]any {
	row := map[string]any{}
	collectValues(reflect.ValueOf(model), row)

	return row
}

func collectValues(val reflect.Value, row map[string]any) {
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return
		}

		val = val.Elem()
	}

	reflectType := val.Type()

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			collectValues(val.Field(i), row)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" || !field.IsExported() {
			continue
		}

		row[dbTag] = val.Field(i).Interface()
	}
}

func reflectTypeOf(model any) reflect.Type {
	reflectType := reflect.TypeOf(model)
	for reflectType.Kind() == reflect.Pointer {
		reflectType = reflectType.Elem()
	}

	return reflectType
}
