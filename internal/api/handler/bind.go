// Package handler contains HTTP handlers grouped by resource.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/d9705996/kysai/internal/api/render"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON decodes the request body into dst and validates it. A nil
// result means dst is ready to use.
func decodeJSON(r *http.Request, dst any) []render.ValidationError {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return []render.ValidationError{decodeError(err)}
	}
	if err := validate.Struct(dst); err != nil {
		return validationErrors(err)
	}
	return nil
}

func decodeError(err error) render.ValidationError {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return render.ValidationError{Loc: []any{"body"}, Msg: "Field required", Type: "missing"}
	case errors.As(err, &syntaxErr):
		return render.ValidationError{Loc: []any{"body", syntaxErr.Offset}, Msg: "JSON decode error", Type: "json_invalid"}
	case errors.As(err, &typeErr):
		return render.ValidationError{
			Loc:  bodyLoc(typeErr.Field),
			Msg:  "Input should be a valid " + typeName(typeErr.Type),
			Type: "type_error",
		}
	default:
		return render.ValidationError{Loc: []any{"body"}, Msg: err.Error(), Type: "value_error"}
	}
}

func validationErrors(err error) []render.ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []render.ValidationError{{Loc: []any{"body"}, Msg: err.Error(), Type: "value_error"}}
	}
	out := make([]render.ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		ve := render.ValidationError{Loc: []any{"body", fe.Field()}, Type: "value_error"}
		switch fe.Tag() {
		case "required":
			ve.Msg, ve.Type = "Field required", "missing"
		case "email":
			ve.Msg = "value is not a valid email address"
		default:
			ve.Msg = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		}
		out = append(out, ve)
	}
	return out
}

func bodyLoc(field string) []any {
	loc := []any{"body"}
	if field == "" {
		return loc
	}
	for _, part := range strings.Split(field, ".") {
		loc = append(loc, part)
	}
	return loc
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map, reflect.Struct:
		return "dictionary"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Ptr:
		return typeName(t.Elem())
	default:
		return t.String()
	}
}
