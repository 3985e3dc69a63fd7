package form

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	urlPattern   = regexp.MustCompile(`^https?://.+\..+`)
)

// Rule checks one value and returns the error message when it fails.
type Rule func(v Value) (message string, failed bool)

// Required fails on an empty value.
func Required(message string) Rule {
	return func(v Value) (string, bool) {
		return message, v.IsEmpty()
	}
}

// Email fails when a non-empty value does not look like an address.
func Email(message string) Rule {
	return func(v Value) (string, bool) {
		if v.IsEmpty() {
			return "", false
		}
		return message, !emailPattern.MatchString(v.Text)
	}
}

// PositiveNumber fails unless the value parses as a number greater than zero.
func PositiveNumber(message string) Rule {
	return func(v Value) (string, bool) {
		n, ok := parseNumber(v.Text)
		return message, !ok || n <= 0
	}
}

// URL fails unless the value is an http(s) URL with a dotted host.
func URL(message string) Rule {
	return func(v Value) (string, bool) {
		return message, !urlPattern.MatchString(v.Text)
	}
}

// MinLength fails when the text has fewer than n characters.
func MinLength(n int, message string) Rule {
	return func(v Value) (string, bool) {
		return message, utf8.RuneCountInString(v.Text) < n
	}
}

// NonEmptyList fails when no option is selected.
func NonEmptyList(message string) Rule {
	return func(v Value) (string, bool) {
		return message, len(v.List) == 0
	}
}

// OneOf fails when a non-empty value is not one of options.
func OneOf(options []string, message string) Rule {
	return func(v Value) (string, bool) {
		if v.IsEmpty() {
			return "", false
		}
		if v.isList() {
			for _, item := range v.List {
				if !contains(options, item) {
					return message, true
				}
			}
			return "", false
		}
		return message, !contains(options, v.Text)
	}
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

func contains(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}

var dateTimeLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05", time.RFC3339}

// DateTime fails when a non-empty value is not a datetime-local timestamp.
func DateTime(message string) Rule {
	return func(v Value) (string, bool) {
		if v.IsEmpty() {
			return "", false
		}
		for _, layout := range dateTimeLayouts {
			if _, err := time.Parse(layout, v.Text); err == nil {
				return "", false
			}
		}
		return message, true
	}
}
