package rules

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/formkit"
)

// DateBefore fails unless the value is strictly before the bound.
func DateBefore(before time.Time) formkit.Rule[time.Time] {
	return formkit.Rule[time.Time]{
		Check: func(value time.Time, _ formkit.Context) bool {
			return value.Before(before)
		},
		Error: beforeMessage(before),
	}
}

// DateAfter fails unless the value is strictly after the bound.
func DateAfter(after time.Time) formkit.Rule[time.Time] {
	return formkit.Rule[time.Time]{
		Check: func(value time.Time, _ formkit.Context) bool {
			return value.After(after)
		},
		Error: afterMessage(after),
	}
}

// DateBeforeString parses the value with layout and fails unless the parsed
// date is strictly before the bound. Input that does not parse fails with a
// distinct message naming the expected layout. A layout without reference
// time elements panics at construction.
func DateBeforeString(layout string, before time.Time) formkit.Rule[string] {
	mustLayout(layout)
	bound := beforeMessage(before)
	unparsable := unparsableDate(layout)
	return formkit.Rule[string]{
		Check: func(value string, _ formkit.Context) bool {
			t, err := time.Parse(layout, value)
			return err == nil && t.Before(before)
		},
		Error: bound,
		Explain: func(value string, _ formkit.Context) formkit.Message {
			if _, err := time.Parse(layout, value); err != nil {
				return unparsable
			}
			return bound
		},
	}
}

// DateAfterString parses the value with layout and fails unless the parsed
// date is strictly after the bound. Input that does not parse fails with a
// distinct message naming the expected layout.
func DateAfterString(layout string, after time.Time) formkit.Rule[string] {
	mustLayout(layout)
	bound := afterMessage(after)
	unparsable := unparsableDate(layout)
	return formkit.Rule[string]{
		Check: func(value string, _ formkit.Context) bool {
			t, err := time.Parse(layout, value)
			return err == nil && t.After(after)
		},
		Error: bound,
		Explain: func(value string, _ formkit.Context) formkit.Message {
			if _, err := time.Parse(layout, value); err != nil {
				return unparsable
			}
			return bound
		},
	}
}

func beforeMessage(before time.Time) formkit.Message {
	return formkit.Message{
		Text:   fmt.Sprintf("date must be before %s", before.Format("2006-01-02")),
		Key:    "validation.date_before",
		Values: map[string]any{"before": before.Format("2006-01-02")},
	}
}

func afterMessage(after time.Time) formkit.Message {
	return formkit.Message{
		Text:   fmt.Sprintf("date must be after %s", after.Format("2006-01-02")),
		Key:    "validation.date_after",
		Values: map[string]any{"after": after.Format("2006-01-02")},
	}
}

func unparsableDate(layout string) formkit.Message {
	return formkit.Message{
		Text:   fmt.Sprintf("must be a valid date in %s format", layout),
		Key:    "validation.date_format",
		Values: map[string]any{"layout": layout},
	}
}

// mustLayout rejects layouts that carry no reference time elements or
// produce output time.Parse cannot read back. It catches typos like
// "YYYY-MM-DD" at construction instead of on every input later.
func mustLayout(layout string) {
	probe := time.Date(2023, time.March, 7, 17, 39, 41, 0, time.UTC)
	s := probe.Format(layout)
	if s == layout {
		panic(fmt.Sprintf("rules: date layout %q contains no reference time elements", layout))
	}
	if _, err := time.Parse(layout, s); err != nil {
		panic(fmt.Sprintf("rules: invalid date layout %q: %v", layout, err))
	}
}
