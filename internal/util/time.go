package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseTimeFlexible accepts RFC3339, epoch milliseconds, or any layout
// dateparse recognises (interpreted as UTC when it carries no zone).
func ParseTimeFlexible(timeStr string) (time.Time, error) {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}, fmt.Errorf("empty time")
	}
	if t, err := time.Parse(time.RFC3339Nano, timeStr); err == nil {
		return t.UTC(), nil
	}
	if ms, err := strconv.ParseInt(timeStr, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	if t, err := dateparse.ParseIn(timeStr, time.UTC); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid time format: %s", timeStr)
}

// SplitCSV splits a comma-separated query value, dropping blanks.
func SplitCSV(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func SplitCSVInts(raw string) ([]int, error) {
	items := SplitCSV(raw)
	out := make([]int, 0, len(items))
	for _, item := range items {
		n, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", item)
		}
		out = append(out, n)
	}
	return out, nil
}
