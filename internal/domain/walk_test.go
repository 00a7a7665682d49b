package domain

import (
	"slices"
	"testing"
)

func obj(members ...Member) Value { return ObjectValue(members...) }

func m(key string, v Value) Member { return Member{Key: key, Value: v} }

func TestMapStructure(t *testing.T) {
	tests := []struct {
		name    string
		records []Value
		want    []string
	}{
		{
			name: "flat object keeps key order",
			records: []Value{
				obj(m("z", NumberValue("1")), m("a", NumberValue("2"))),
			},
			want: []string{"z", "a"},
		},
		{
			name: "nested objects are dotted",
			records: []Value{
				obj(m("a", NumberValue("1")), m("b", obj(m("c", NullValue())))),
			},
			want: []string{"a", "b", "b.c"},
		},
		{
			name: "list of objects shares one marked path",
			records: []Value{
				obj(m("items", ListValue(
					obj(m("id", NumberValue("1"))),
					obj(m("id", NumberValue("2")), m("tag", StringValue("x"))),
				))),
			},
			want: []string{"items", "items[].id", "items[].tag"},
		},
		{
			name: "list of scalars adds nothing beyond its field",
			records: []Value{
				obj(m("tags", ListValue(StringValue("a"), StringValue("b")))),
			},
			want: []string{"tags"},
		},
		{
			name: "nested lists stack markers",
			records: []Value{
				obj(m("grid", ListValue(ListValue(obj(m("v", NumberValue("0"))))))),
			},
			want: []string{"grid", "grid[][].v"},
		},
		{
			name: "top level list",
			records: []Value{
				ListValue(obj(m("x", BoolValue(true)))),
			},
			want: []string{"[].x"},
		},
		{
			name: "top level scalar",
			records: []Value{
				StringValue("hello"),
				NumberValue("42"),
				NullValue(),
			},
			want: []string{},
		},
		{
			name: "first occurrence wins across records",
			records: []Value{
				obj(m("b", NumberValue("1"))),
				obj(m("a", NumberValue("1")), m("b", NumberValue("2"))),
				obj(m("c", NumberValue("1")), m("a", NumberValue("1"))),
			},
			want: []string{"b", "a", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			for _, r := range tt.records {
				MapStructure(r, reg, "")
			}
			if got := reg.Paths(); !slices.Equal(got, tt.want) {
				t.Errorf("paths = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapStructure_IsDeterministic(t *testing.T) {
	records := []Value{
		obj(m("user", obj(m("id", NumberValue("1")), m("name", StringValue("a"))))),
		obj(m("order", obj(m("id", NumberValue("2")))), m("user", obj(m("email", NullValue())))),
	}

	first := NewRegistry()
	second := NewRegistry()
	for _, r := range records {
		MapStructure(r, first, "")
	}
	for _, r := range records {
		MapStructure(r, second, "")
	}

	if !slices.Equal(first.Paths(), second.Paths()) {
		t.Errorf("runs differ: %v vs %v", first.Paths(), second.Paths())
	}
}

func TestCountEmpty(t *testing.T) {
	tests := []struct {
		name    string
		records []Value
		want    map[string]int
	}{
		{
			name: "all four empty shapes count",
			records: []Value{
				obj(
					m("n", NullValue()),
					m("s", StringValue("")),
					m("l", ListValue()),
					m("o", obj()),
				),
			},
			want: map[string]int{"n": 1, "s": 1, "l": 1, "o": 1},
		},
		{
			name: "false and zero are not empty",
			records: []Value{
				obj(m("flag", BoolValue(false)), m("count", NumberValue("0")), m("name", StringValue(" "))),
			},
			want: map[string]int{},
		},
		{
			name: "same leaf name under different paths collapses",
			records: []Value{
				obj(
					m("user", obj(m("id", NullValue()))),
					m("order", obj(m("id", StringValue("")))),
				),
			},
			want: map[string]int{"id": 2},
		},
		{
			name: "fields inside list elements count per element",
			records: []Value{
				obj(m("items", ListValue(
					obj(m("note", NullValue())),
					obj(m("note", NullValue())),
					obj(m("note", StringValue("ok"))),
				))),
			},
			want: map[string]int{"note": 2},
		},
		{
			name: "empty list inside list is not counted at list level",
			records: []Value{
				obj(m("rows", ListValue(ListValue(), obj()))),
			},
			want: map[string]int{},
		},
		{
			name: "counts accumulate across records",
			records: []Value{
				obj(m("a", NullValue())),
				obj(m("a", NullValue())),
				obj(m("a", NumberValue("1"))),
			},
			want: map[string]int{"a": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := EmptyCounts{}
			for _, r := range tt.records {
				CountEmpty(r, counts)
			}
			if len(counts) != len(tt.want) {
				t.Fatalf("counts = %v, want %v", counts, tt.want)
			}
			for k, v := range tt.want {
				if counts[k] != v {
					t.Errorf("counts[%q] = %d, want %d", k, counts[k], v)
				}
			}
		})
	}
}

func TestReport_AddRecord_Scenario(t *testing.T) {
	// {"a":1,"b":{"c":null}} and {"a":2,"b":{}}
	rep := NewReport(FileInfo{Path: "sample.jsonl"})
	rep.AddRecord(obj(m("a", NumberValue("1")), m("b", obj(m("c", NullValue())))))
	rep.AddRecord(obj(m("a", NumberValue("2")), m("b", obj())))

	wantPaths := []string{"a", "b", "b.c"}
	if got := rep.Structure.Paths(); !slices.Equal(got, wantPaths) {
		t.Errorf("paths = %v, want %v", got, wantPaths)
	}
	if rep.EmptyCounts["b"] != 1 || rep.EmptyCounts["c"] != 1 || len(rep.EmptyCounts) != 2 {
		t.Errorf("empty counts = %v, want map[b:1 c:1]", rep.EmptyCounts)
	}
}
