package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// LenientFloat decodes a JSON number or a numeric string. Anything else decodes to zero.
type LenientFloat float64

func (f *LenientFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*f = 0

	if bytes.Equal(data, jsonNull) {
		return nil
	}

	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		*f = LenientFloat(number)

		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return nil //nolint:nilerr
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil //nolint:nilerr
	}

	*f = LenientFloat(parsed)

	return nil
}

func (f LenientFloat) Float64() float64 {
	return float64(f)
}

// LenientString decodes a JSON string or the literal text of a JSON number.
type LenientString string

func (s *LenientString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*s = ""

	if bytes.Equal(data, jsonNull) {
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*s = LenientString(text)

		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err //nolint:wrapcheck
	}

	*s = LenientString(number.String())

	return nil
}

func (s LenientString) String() string {
	return string(s)
}

// StringPtr converts an optional lenient value into an optional string.
func (s *LenientString) StringPtr() *string {
	if s == nil {
		return nil
	}

	text := string(*s)

	return &text
}
