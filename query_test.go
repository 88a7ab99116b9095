package wikia

import "testing"

func TestQueryOmitsZeroValues(t *testing.T) {
	q := newQuery()
	q.set("category", "")
	q.setInt("limit", 0)
	q.setInt64("wam_day", 0)
	q.setBool("allowDuplicates", false)
	q.setFlag("expand", false)
	q.setList("titles", nil)
	q.setInts("namespaces", nil)

	if len(q.Values) != 0 {
		t.Errorf("expected no parameters, got %v", q.Values)
	}
}

func TestQuerySetsSuppliedValues(t *testing.T) {
	q := newQuery()
	q.set("category", "Dragons")
	q.setInt("limit", 25)
	q.setInt64("wam_day", 1389312000)
	q.setBool("allowDuplicates", true)
	q.setFlag("expand", true)
	q.setList("titles", []string{"A", "B"})
	q.setInts("namespaces", []int{0, 14})

	want := map[string]string{
		"category":        "Dragons",
		"limit":           "25",
		"wam_day":         "1389312000",
		"allowDuplicates": "true",
		"expand":          "1",
		"titles":          "A,B",
		"namespaces":      "0,14",
	}
	for key, value := range want {
		if got := q.Get(key); got != value {
			t.Errorf("%s = %q, want %q", key, got, value)
		}
	}
	if len(q.Values) != len(want) {
		t.Errorf("expected %d parameters, got %d", len(want), len(q.Values))
	}
}

func TestQueryFlagIsLiteralOne(t *testing.T) {
	q := newQuery()
	q.setFlag("expand", true)
	if got := q.Get("expand"); got != "1" {
		t.Errorf("expand = %q, want literal 1", got)
	}
}

func TestQueryListEqualsJoinedString(t *testing.T) {
	asList := newQuery()
	asList.setList("titles", []string{"Dragon", "Sword"})

	preJoined := newQuery()
	preJoined.setList("titles", []string{"Dragon,Sword"})

	if asList.Encode() != preJoined.Encode() {
		t.Errorf("list form %q != pre-joined form %q", asList.Encode(), preJoined.Encode())
	}
}

func TestQuerySetAlways(t *testing.T) {
	q := newQuery()
	q.setAlways("query", "")
	if _, ok := q.Values["query"]; !ok {
		t.Error("setAlways should set the key even for an empty value")
	}
}

func TestJoinInts(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   string
	}{
		{"empty", nil, ""},
		{"single", []int{50}, "50"},
		{"multiple", []int{50, 2231, 9}, "50,2231,9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinInts(tt.values); got != tt.want {
				t.Errorf("joinInts(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}
