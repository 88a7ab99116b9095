package wikia

import (
	"net/url"
	"strconv"
	"strings"
)

// query accumulates request parameters. Only values the caller actually
// supplied are added; zero values never reach the wire. The API treats a
// comma-joined string and a list as the same thing, so list setters join
// with commas and a pre-joined single element passes through unchanged.
type query struct {
	url.Values
}

func newQuery() query {
	return query{Values: url.Values{}}
}

// setAlways adds a parameter unconditionally. Required positional
// arguments use this; everything else goes through the conditional
// setters.
func (q query) setAlways(key, value string) {
	q.Set(key, value)
}

func (q query) set(key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func (q query) setInt(key string, value int) {
	if value != 0 {
		q.Set(key, strconv.Itoa(value))
	}
}

func (q query) setInt64(key string, value int64) {
	if value != 0 {
		q.Set(key, strconv.FormatInt(value, 10))
	}
}

func (q query) setBool(key string, value bool) {
	if value {
		q.Set(key, "true")
	}
}

// setFlag adds an expand-style parameter. The API expects the literal 1
// for these, not true.
func (q query) setFlag(key string, value bool) {
	if value {
		q.Set(key, "1")
	}
}

func (q query) setList(key string, values []string) {
	if len(values) > 0 {
		q.Set(key, strings.Join(values, ","))
	}
}

func (q query) setInts(key string, values []int) {
	if len(values) > 0 {
		q.Set(key, joinInts(values))
	}
}

// joinInts renders a list of IDs in the comma-joined form the API expects.
func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
