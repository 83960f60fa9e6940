package classname_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/setclassname/pkg/classname"
)

func TestPasses(t *testing.T) {
	props := classname.Props{
		"foo": classname.String("bar"),
		"baz": classname.Bool(false),
		"n":   classname.Int(1),
		"nil": classname.NullValue(),
	}

	tests := []struct {
		name string
		cond classname.Condition
		want bool
	}{
		{"bare literal", classname.Use("a"), true},
		{"nil when", classname.Condition{Use: "a"}, true},
		{"empty when", classname.When(classname.Props{}, "a"), true},
		{"matching string", classname.When(classname.Props{"foo": classname.String("bar")}, "a"), true},
		{"mismatched string", classname.When(classname.Props{"foo": classname.String("buzz")}, "a"), false},
		{"all keys match", classname.When(classname.Props{"foo": classname.String("bar"), "baz": classname.Bool(false)}, "a"), true},
		{"one key fails", classname.When(classname.Props{"foo": classname.String("bar"), "baz": classname.Bool(true)}, "a"), false},
		{"number matches", classname.When(classname.Props{"n": classname.Number(1.0)}, "a"), true},
		{"string is not number", classname.When(classname.Props{"n": classname.String("1")}, "a"), false},
		{"null matches null", classname.When(classname.Props{"nil": classname.NullValue()}, "a"), true},
		{"null is not absent", classname.When(classname.Props{"missing": classname.NullValue()}, "a"), false},
		{"absent matches undefined", classname.When(classname.Props{"missing": {}}, "a"), true},
		{"absent fails a value", classname.When(classname.Props{"missing": classname.Bool(false)}, "a"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classname.Passes(props, tt.cond))
		})
	}
}

func TestPassesIgnoresUnrelatedKeys(t *testing.T) {
	cond := classname.When(classname.Props{"k": classname.String("v")}, "a")

	base := classname.Props{"k": classname.String("v")}
	other := classname.Props{"k": classname.String("v"), "unrelated": classname.Int(42)}

	assert.True(t, classname.Passes(base, cond))
	assert.True(t, classname.Passes(other, cond))

	other["k"] = classname.String("w")
	assert.False(t, classname.Passes(other, cond))
}

func TestNaNNeverMatches(t *testing.T) {
	nan := classname.Number(math.NaN())
	props := classname.Props{"x": nan}
	assert.False(t, classname.Passes(props, classname.When(classname.Props{"x": nan}, "a")))
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		prefix string
		want   string
	}{
		{"leading space", " a b c", "", "a b c"},
		{"interior runs and newline", "a   b\nc", "", "a b c"},
		{"indented template text", "\n\t\tflex\n\t\titems-center\n\t", "", "flex items-center"},
		{"empty", "   ", "", ""},
		{"prefix each class", "a b c", "tw-", "tw-a tw-b tw-c"},
		{"namespace marker untouched", "hover:bar", "tw-", "hover:bar"},
		{"mixed", "p-4 md:p-8 text-sm", "tw-", "tw-p-4 md:p-8 tw-text-sm"},
		{"base name only", "w-1/2", "tw-", "tw-w-1/2"},
		{"important modifier", "!mt-2", "tw-", "!tw-mt-2"},
		{"no words", "/", "tw-", "/"},
		{"collapse before prefix", "  a\n\nb ", "x-", "x-a x-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classname.Render(tt.text, classname.Config{Prefix: tt.prefix})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderDebug(t *testing.T) {
	props := classname.Props{"foo": classname.String("bar")}
	conds := []classname.Condition{
		classname.When(classname.Props{"foo": classname.String("buzz")}, "a b c"),
		classname.When(classname.Props{"foo": classname.String("bar")}, "d e f"),
	}

	lines := classname.RenderDebug(props, conds, classname.Config{Debug: true})
	require.Len(t, lines, 2)
	assert.Equal(t, "✕\u200da\u200db\u200dc", lines[0])
	assert.Equal(t, "• d e f", lines[1])

	out := classname.Assemble(props, conds, classname.Config{Debug: true})
	assert.Equal(t, "\r\n✕\u200da\u200db\u200dc\r\n• d e f", out)
}

func TestAssemble(t *testing.T) {
	props := classname.Props{"type": classname.String("A")}

	tests := []struct {
		name  string
		conds []classname.Condition
		want  string
	}{
		{"no conditions", nil, ""},
		{"all fail", []classname.Condition{classname.When(classname.Props{"type": classname.String("B")}, "b")}, ""},
		{"order kept", []classname.Condition{classname.Use("z"), classname.When(classname.Props{"type": classname.String("A")}, "a"), classname.Use("m")}, "z a m"},
		{"empty text adds no separator", []classname.Condition{classname.Use("a"), classname.Use("  "), classname.Use("b")}, "a b"},
		{"duplicates kept", []classname.Condition{classname.Use("a"), classname.Use("a")}, "a a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classname.Assemble(props, tt.conds, classname.Config{}))
		})
	}
}

func TestResolverEndToEnd(t *testing.T) {
	cache := classname.NewCache()

	r := cache.Resolver(classname.Props{"foo": classname.String("bar")}, classname.Config{})
	assert.Equal(t, "a b c", r.Resolve([]classname.Condition{
		classname.When(classname.Props{"foo": classname.String("bar")}, "a b c"),
	}))
	assert.Equal(t, "", r.Resolve([]classname.Condition{
		classname.When(classname.Props{"foo": classname.String("buzz")}, "a b c"),
	}))

	empty := cache.Resolver(nil, classname.Config{})
	assert.Equal(t, "a b c d e f", empty.Resolve([]classname.Condition{
		{Use: " a b c"},
		{Use: "d e f "},
	}))
}

func TestShorthandLiteral(t *testing.T) {
	r := classname.NewCache().Resolver(classname.Props{"foo": classname.String("bar")}, classname.Config{})
	set := r.Func()

	got := set(classname.When(classname.Props{"foo": classname.String("bar")}, "a b c"), classname.Use("default"))
	assert.Equal(t, "a b c default", got)
}

func TestResolverCacheReturnsSameInstance(t *testing.T) {
	cache := classname.NewCache()

	a := cache.Resolver(classname.Props{"x": classname.Int(1), "y": classname.String("z")}, classname.Config{Prefix: "tw-"})
	b := cache.Resolver(classname.Props{"y": classname.String("z"), "x": classname.Int(1)}, classname.Config{Prefix: "tw-"})
	assert.Same(t, a, b)

	c := cache.Resolver(classname.Props{"x": classname.Int(1), "y": classname.String("z")}, classname.Config{})
	assert.NotSame(t, a, c)

	d := cache.Resolver(classname.Props{"x": classname.String("1"), "y": classname.String("z")}, classname.Config{Prefix: "tw-"})
	assert.NotSame(t, a, d)

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats.ResolverHits)
	assert.Equal(t, int64(3), stats.ResolverMisses)
	assert.Equal(t, 3, stats.Resolvers)
}

func TestResultCacheIsContentKeyed(t *testing.T) {
	cache := classname.NewCache()
	r := cache.Resolver(classname.Props{"foo": classname.String("bar")}, classname.Config{})

	build := func() []classname.Condition {
		return []classname.Condition{
			classname.When(classname.Props{"foo": classname.String("bar"), "n": {}}, "a b c"),
			classname.Use("d"),
		}
	}

	first, cached := r.ResolveCached(build())
	assert.False(t, cached)
	second, cached := r.ResolveCached(build())
	assert.True(t, cached)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.Len())

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats.ResultHits)
	assert.Equal(t, int64(1), stats.ResultMisses)
	assert.Equal(t, 1, stats.Results)
}

func TestMemoizationIsTransparent(t *testing.T) {
	propsSets := []classname.Props{
		nil,
		{"type": classname.String("A")},
		{"type": classname.String("A"), "color": classname.String("B")},
	}
	conds := []classname.Condition{
		classname.When(classname.Props{"type": classname.String("A")}, "a"),
		classname.When(classname.Props{"type": classname.String("A"), "color": classname.String("B")}, "ab"),
		classname.Use("  base\n"),
	}

	for _, cfg := range []classname.Config{{}, {Prefix: "tw-"}, {Debug: true}} {
		cache := classname.NewCache()
		for _, props := range propsSets {
			want := classname.Assemble(props, conds, cfg)
			for i := 0; i < 3; i++ {
				assert.Equal(t, want, cache.Resolver(props, cfg).Resolve(conds))
			}
		}
	}
}

func TestResolverPropsSnapshot(t *testing.T) {
	props := classname.Props{"foo": classname.String("bar")}
	r := classname.NewCache().Resolver(props, classname.Config{})

	props["foo"] = classname.String("changed")
	assert.Equal(t, "a", r.Resolve([]classname.Condition{classname.When(classname.Props{"foo": classname.String("bar")}, "a")}))
	assert.Equal(t, classname.String("bar"), r.Props()["foo"])
}

type countingObserver struct {
	hits, misses map[classname.Layer]int
}

func (o *countingObserver) Hit(l classname.Layer)  { o.hits[l]++ }
func (o *countingObserver) Miss(l classname.Layer) { o.misses[l]++ }

func TestObserver(t *testing.T) {
	obs := &countingObserver{hits: map[classname.Layer]int{}, misses: map[classname.Layer]int{}}
	cache := classname.NewCache(classname.WithObserver(obs))

	conds := []classname.Condition{classname.Use("a")}
	cache.Resolver(nil, classname.Config{}).Resolve(conds)
	cache.Resolver(nil, classname.Config{}).Resolve(conds)

	assert.Equal(t, 1, obs.misses[classname.LayerResolver])
	assert.Equal(t, 1, obs.hits[classname.LayerResolver])
	assert.Equal(t, 1, obs.misses[classname.LayerResult])
	assert.Equal(t, 1, obs.hits[classname.LayerResult])
}

func TestCreateUsesDefaultCache(t *testing.T) {
	a := classname.Create(classname.Props{"create": classname.Bool(true)}, classname.Config{})
	b := classname.Create(classname.Props{"create": classname.Bool(true)}, classname.Config{})
	assert.Same(t, a, b)
	assert.Same(t, classname.Default(), classname.Default())
}

func TestPropsOf(t *testing.T) {
	props := classname.PropsOf(map[string]any{
		"s":     "x",
		"b":     true,
		"i":     int64(3),
		"f":     float32(1.5),
		"nil":   nil,
		"slice": []string{"a"},
		"map":   map[string]any{},
		"fn":    func() {},
	})

	assert.Len(t, props, 5)
	assert.True(t, props["i"].Equal(classname.Int(3)))
	assert.True(t, props["f"].Equal(classname.Number(1.5)))
	assert.Equal(t, classname.Null, props["nil"].Kind())
	assert.False(t, props.Get("slice").IsDefined())
}

func TestConditionsKey(t *testing.T) {
	a := classname.ConditionsKey([]classname.Condition{
		classname.When(classname.Props{"a": classname.Int(1), "b": classname.String("2")}, "x"),
	})
	b := classname.ConditionsKey([]classname.Condition{
		classname.When(classname.Props{"b": classname.String("2"), "a": classname.Int(1)}, "x"),
	})
	assert.Equal(t, a, b)

	split := classname.ConditionsKey([]classname.Condition{classname.Use("a,b")})
	pair := classname.ConditionsKey([]classname.Condition{classname.Use("a"), classname.Use("b")})
	assert.NotEqual(t, split, pair)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want classname.Value
	}{
		{"true", classname.Bool(true)},
		{"false", classname.Bool(false)},
		{"null", classname.NullValue()},
		{"2", classname.Int(2)},
		{"-1.5", classname.Number(-1.5)},
		{"primary", classname.String("primary")},
		{"Inf", classname.String("Inf")},
		{"", classname.String("")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, classname.ParseValue(tt.in))
		})
	}
}

func TestConditionJSON(t *testing.T) {
	var conds []classname.Condition
	err := json.Unmarshal([]byte(`[
		"a b",
		{"use": "c"},
		{"when": {}, "use": "d"},
		{"when": {"s": "x", "b": true, "n": 2, "z": null}, "use": "e"}
	]`), &conds)
	require.NoError(t, err)
	require.Len(t, conds, 4)

	assert.Equal(t, classname.Use("a b"), conds[0])
	assert.Nil(t, conds[1].When)
	assert.NotNil(t, conds[2].When)
	assert.Empty(t, conds[2].When)
	assert.Equal(t, classname.Props{
		"s": classname.String("x"),
		"b": classname.Bool(true),
		"n": classname.Int(2),
		"z": classname.NullValue(),
	}, conds[3].When)

	out, err := json.Marshal([]classname.Condition{classname.Use("a"), classname.When(classname.Props{"k": classname.Bool(true)}, "b")})
	require.NoError(t, err)
	assert.JSONEq(t, `["a", {"when": {"k": true}, "use": "b"}]`, string(out))
}

func TestConditionJSONKeepsEmptyWhen(t *testing.T) {
	conds := []classname.Condition{
		classname.When(classname.Props{}, "x"),
		classname.Use("y"),
	}

	out, err := json.Marshal(conds)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"when": {}, "use": "x"}, "y"]`, string(out))

	var back []classname.Condition
	require.NoError(t, json.Unmarshal(out, &back))
	require.Len(t, back, 2)
	assert.NotNil(t, back[0].When)
	assert.Nil(t, back[1].When)
	assert.Equal(t, classname.ConditionsKey(conds), classname.ConditionsKey(back))
}

func TestConditionJSONErrors(t *testing.T) {
	var c classname.Condition
	assert.ErrorIs(t, json.Unmarshal([]byte(`42`), &c), classname.ErrInvalidCondition)

	var conds []classname.Condition
	assert.ErrorIs(t, json.Unmarshal([]byte(`[{"when": {"k": [1]}, "use": "a"}]`), &conds), classname.ErrInvalidValue)
}
