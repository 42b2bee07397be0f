package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RepeatKind identifies the variant of a Repeat rule.
type RepeatKind string

const (
	RepeatNever      RepeatKind = "Never"
	RepeatDaily      RepeatKind = "Daily"
	RepeatWeekly     RepeatKind = "Weekly"
	RepeatMonthly    RepeatKind = "Monthly"
	RepeatYearly     RepeatKind = "Yearly"
	RepeatDaysOfWeek RepeatKind = "DaysOfWeek"
)

// Repeat is the recurrence policy attached to a task. Days is only
// meaningful for RepeatDaysOfWeek and keeps the order it was parsed in.
type Repeat struct {
	Kind RepeatKind
	Days []DayOfWeek
}

// Never, Daily, Weekly, Monthly and Yearly return the keyword rules.
func Never() Repeat   { return Repeat{Kind: RepeatNever} }
func Daily() Repeat   { return Repeat{Kind: RepeatDaily} }
func Weekly() Repeat  { return Repeat{Kind: RepeatWeekly} }
func Monthly() Repeat { return Repeat{Kind: RepeatMonthly} }
func Yearly() Repeat  { return Repeat{Kind: RepeatYearly} }

// DaysOf returns a day-of-week rule. Duplicates are dropped, first one wins.
func DaysOf(days ...DayOfWeek) Repeat {
	seen := make(map[DayOfWeek]bool, len(days))
	unique := make([]DayOfWeek, 0, len(days))
	for _, d := range days {
		if seen[d] {
			continue
		}
		seen[d] = true
		unique = append(unique, d)
	}
	return Repeat{Kind: RepeatDaysOfWeek, Days: unique}
}

var repeatKeywords = map[string]RepeatKind{
	"never":   RepeatNever,
	"daily":   RepeatDaily,
	"weekly":  RepeatWeekly,
	"monthly": RepeatMonthly,
	"yearly":  RepeatYearly,
}

// ParseRepeat parses a keyword (case-insensitive) or a comma separated list
// of weekday abbreviations such as "Mon, Wed,fri". An empty string means
// Never. Any unrecognised token rejects the whole input.
func ParseRepeat(s string) (Repeat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Never(), nil
	}
	if kind, ok := repeatKeywords[strings.ToLower(s)]; ok {
		return Repeat{Kind: kind}, nil
	}

	tokens := strings.Split(s, ",")
	days := make([]DayOfWeek, 0, len(tokens))
	for _, token := range tokens {
		day, err := ParseDayOfWeek(token)
		if err != nil {
			return Repeat{}, fmt.Errorf("invalid repeat %q: %w", s, err)
		}
		days = append(days, day)
	}
	return DaysOf(days...), nil
}

// IsNever reports whether the rule never recurs. The zero Repeat is Never.
func (r Repeat) IsNever() bool {
	return r.Kind == RepeatNever || r.Kind == ""
}

// Contains reports whether a day-of-week rule includes day.
func (r Repeat) Contains(day DayOfWeek) bool {
	for _, d := range r.Days {
		if d == day {
			return true
		}
	}
	return false
}

// Equal compares kind and, for day-of-week rules, the ordered day list.
func (r Repeat) Equal(other Repeat) bool {
	if r.IsNever() && other.IsNever() {
		return true
	}
	if r.Kind != other.Kind || len(r.Days) != len(other.Days) {
		return false
	}
	for i := range r.Days {
		if r.Days[i] != other.Days[i] {
			return false
		}
	}
	return true
}

// String renders the rule in the same grammar ParseRepeat accepts.
func (r Repeat) String() string {
	if r.IsNever() {
		return string(RepeatNever)
	}
	if r.Kind != RepeatDaysOfWeek {
		return string(r.Kind)
	}
	names := make([]string, len(r.Days))
	for i, d := range r.Days {
		names[i] = d.String()
	}
	return strings.Join(names, ",")
}

// MarshalJSON writes keyword rules as a bare string and day-of-week rules
// as {"DaysOfWeek": ["Mon", ...]}.
func (r Repeat) MarshalJSON() ([]byte, error) {
	if r.IsNever() {
		return json.Marshal(string(RepeatNever))
	}
	if r.Kind == RepeatDaysOfWeek {
		days := r.Days
		if days == nil {
			days = []DayOfWeek{}
		}
		return json.Marshal(map[string][]DayOfWeek{string(RepeatDaysOfWeek): days})
	}
	return json.Marshal(string(r.Kind))
}

// UnmarshalJSON accepts both shapes produced by MarshalJSON.
func (r *Repeat) UnmarshalJSON(data []byte) error {
	var keyword string
	if err := json.Unmarshal(data, &keyword); err == nil {
		kind, ok := repeatKeywords[strings.ToLower(keyword)]
		if !ok {
			return fmt.Errorf("unknown repeat rule %q", keyword)
		}
		*r = Repeat{Kind: kind}
		return nil
	}

	var tagged map[string][]DayOfWeek
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("invalid repeat rule: %w", err)
	}
	days, ok := tagged[string(RepeatDaysOfWeek)]
	if !ok || len(tagged) != 1 {
		return fmt.Errorf("invalid repeat rule: %s", string(data))
	}
	*r = DaysOf(days...)
	return nil
}
