package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// listSeparator joins every delimited column in the schema.
const listSeparator = ","

// OrderIndex is an ordered, duplicate-free list of integers. It is stored as a
// comma-joined string ("3,1,2") and is only ever converted in this file.
type OrderIndex []int

// NewOrderIndex de-duplicates values keeping the first occurrence of each.
func NewOrderIndex(values []int) OrderIndex {
	seen := make(map[int]struct{}, len(values))
	out := make(OrderIndex, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ParseOrderIndex decodes the persisted form. An empty string yields an empty index.
func ParseOrderIndex(s string) (OrderIndex, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return OrderIndex{}, nil
	}
	parts := strings.Split(s, listSeparator)
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid order index element %q: %w", p, err)
		}
		values = append(values, v)
	}
	return NewOrderIndex(values), nil
}

func (o OrderIndex) String() string {
	parts := make([]string, len(o))
	for i, v := range o {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, listSeparator)
}

func (o OrderIndex) Value() (driver.Value, error) {
	return o.String(), nil
}

func (o *OrderIndex) Scan(src interface{}) error {
	raw, err := scanString(src)
	if err != nil {
		return fmt.Errorf("order index: %w", err)
	}
	parsed, err := ParseOrderIndex(raw)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// TechnologyTags is the list of technology references carried by a group,
// project or category-person row. Elements are technology names or ids.
type TechnologyTags []string

// ParseTechnologyTags splits the persisted form, trimming blanks and dropping empty elements.
func ParseTechnologyTags(s string) TechnologyTags {
	tags := TechnologyTags{}
	for _, p := range strings.Split(s, listSeparator) {
		p = strings.TrimSpace(p)
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// NewTechnologyTags normalizes a request-side list the same way ParseTechnologyTags does.
func NewTechnologyTags(values []string) TechnologyTags {
	return ParseTechnologyTags(strings.Join(values, listSeparator))
}

func (t TechnologyTags) String() string {
	return strings.Join(t, listSeparator)
}

func (t TechnologyTags) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *TechnologyTags) Scan(src interface{}) error {
	raw, err := scanString(src)
	if err != nil {
		return fmt.Errorf("technology tags: %w", err)
	}
	*t = ParseTechnologyTags(raw)
	return nil
}

func scanString(src interface{}) (string, error) {
	switch v := src.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unsupported source type %T", src)
	}
}
