package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
	"time"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq is_null is_not_null"`
	Table    string
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	column := f.Field
	if f.Table != "" {
		column = fmt.Sprintf("%s.%s", f.Table, f.Field)
	}

	argName := f.ArgName
	if argName == "" {
		argName = f.Field
	}

	switch f.Operator {
	case FilterOperatorEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s = :%s", column, argName), args
	case FilterOperatorLike:
		args[argName] = fmt.Sprintf("%%%s%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", column, argName), args
	case FilterOperatorIn:
		val := reflect.ValueOf(f.Value)

		switch val.Kind() {
		case reflect.Array, reflect.Slice:
			if val.Len() == 0 {
				return "FALSE", args
			}

			named := make([]string, val.Len())

			for idx := range val.Len() {
				args[fmt.Sprintf("%s_%d", argName, idx)] = val.Index(idx).Interface()

				named[idx] = fmt.Sprintf(":%s_%d", argName, idx)
			}

			return fmt.Sprintf("%s IN (%s)", column, strings.Join(named, ", ")), args
		default:
			args[argName] = f.Value

			return fmt.Sprintf("%s IN (:%s)", column, argName), args
		}
	case FilterOperatorNotEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s != :%s", column, argName), args
	case FilterOperatorLessEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s <= :%s", column, argName), args
	case FilterOperatorGreaterEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s >= :%s", column, argName), args
	case FilterIsNotNull:
		return column + " IS NOT NULL", args
	case FilterIsNull:
		return column + " IS NULL", args
	default:
		return "", args
	}
}

// Match evaluates the filter against a row keyed by column name.
func (f *Filter) Match(row map[string]any) bool {
	value := normalize(row[f.Field])

	switch f.Operator {
	case FilterOperatorEq:
		return equal(value, normalize(f.Value))
	case FilterOperatorNotEq:
		return !equal(value, normalize(f.Value))
	case FilterOperatorLike:
		str, ok := value.(string)
		if !ok {
			return false
		}

		return strings.Contains(strings.ToLower(str), strings.ToLower(fmt.Sprint(f.Value)))
	case FilterOperatorIn:
		val := reflect.ValueOf(f.Value)
		if val.Kind() != reflect.Array && val.Kind() != reflect.Slice {
			return equal(value, normalize(f.Value))
		}

		for idx := range val.Len() {
			if equal(value, normalize(val.Index(idx).Interface())) {
				return true
			}
		}

		return false
	case FilterOperatorLessEq:
		cmp, ok := compare(value, normalize(f.Value))

		return ok && cmp <= 0
	case FilterOperatorGreaterEq:
		cmp, ok := compare(value, normalize(f.Value))

		return ok && cmp >= 0
	case FilterIsNull:
		return value == nil
	case FilterIsNotNull:
		return value != nil
	default:
		return false
	}
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) operator() string {
	if strings.EqualFold(f.Operator, FilterGroupOperatorOr) {
		return FilterGroupOperatorOr
	}

	return FilterGroupOperatorAnd
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	for _, filter := range f.Filters {
		switch fill := filter.(type) {
		case Filter:
			where, arg := fill.GetWhereClause()
			whereClause = append(whereClause, where)

			maps.Copy(args, arg)
		case FilterGroup:
			where, arg := fill.GetWhereClause()
			if where == "" {
				continue
			}

			whereClause = append(whereClause, where)

			maps.Copy(args, arg)
		}
	}

	if len(whereClause) == 0 {
		return "", args
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " "+f.operator()+" ")), args
}

// Match evaluates the group against a row keyed by column name. An empty group matches everything.
func (f *FilterGroup) Match(row map[string]any) bool {
	or := f.operator() == FilterGroupOperatorOr
	evaluated := false

	for _, filter := range f.Filters {
		var matched bool

		switch fill := filter.(type) {
		case Filter:
			matched = fill.Match(row)
		case FilterGroup:
			if len(fill.Filters) == 0 {
				continue
			}

			matched = fill.Match(row)
		default:
			continue
		}

		evaluated = true

		if or && matched {
			return true
		}

		if !or && !matched {
			return false
		}
	}

	return !or || !evaluated
}

func normalize(value any) any {
	if value == nil {
		return nil
	}

	val := reflect.ValueOf(value)
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil
		}

		val = val.Elem()
	}

	if t, ok := val.Interface().(time.Time); ok {
		return t
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(val.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(val.Uint())
	case reflect.Float32, reflect.Float64:
		return val.Float()
	case reflect.String:
		return val.String()
	case reflect.Bool:
		return val.Bool()
	default:
		return val.Interface()
	}
}

func equal(left, right any) bool {
	if lt, ok := left.(time.Time); ok {
		rt, ok := right.(time.Time)

		return ok && lt.Equal(rt)
	}

	return reflect.DeepEqual(left, right)
}

func compare(left, right any) (int, bool) {
	switch l := left.(type) {
	case float64:
		r, ok := right.(float64)
		if !ok {
			return 0, false
		}

		switch {
		case l < r:
			return -1, true
		case l > r:
			return 1, true
		default:
			return 0, true
		}
	case string:
		r, ok := right.(string)
		if !ok {
			return 0, false
		}

		return strings.Compare(l, r), true
	case time.Time:
		r, ok := right.(time.Time)
		if !ok {
			return 0, false
		}

		return l.Compare(r), true
	default:
		return 0, false
	}
}
