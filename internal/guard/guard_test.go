package guard

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPredicateZeroValueAlwaysPasses(t *testing.T) {
	t.Parallel()

	var p Predicate
	require.True(t, p.Eval(nil))
	require.Equal(t, "always", p.String())
}

func TestPredicateYAMLForms(t *testing.T) {
	t.Parallel()

	table := NewTable()
	table.Define("is_front_page", func([]string) bool { return true })
	table.Define("is_singular", func(args []string) bool {
		return len(args) == 2 && args[0] == "page" && args[1] == "post"
	})

	cases := []struct {
		name     string
		doc      string
		expected bool
		deferred bool
	}{
		{name: "static false", doc: "conditional: false", expected: false},
		{name: "static true", doc: "conditional: true", expected: true},
		{name: "null", doc: "conditional: ~", expected: true},
		{name: "reference", doc: "conditional: is_front_page", expected: true, deferred: true},
		{name: "reference with args", doc: "conditional: 'is_singular:page, post'", expected: true, deferred: true},
		{name: "unknown reference", doc: "conditional: is_nothing", expected: false, deferred: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var holder struct {
				Conditional Predicate `yaml:"conditional"`
			}
			require.NoError(t, yaml.Unmarshal([]byte(tc.doc), &holder))
			require.Equal(t, tc.expected, holder.Conditional.Eval(table))
			require.Equal(t, tc.deferred, holder.Conditional.Deferred())
		})
	}
}

func TestPredicateRejectsSequences(t *testing.T) {
	t.Parallel()

	var holder struct {
		Conditional Predicate `yaml:"conditional"`
	}
	err := yaml.Unmarshal([]byte("conditional: [a, b]"), &holder)
	require.Error(t, err)
}

func TestDeferredPredicateWithoutResolverFails(t *testing.T) {
	t.Parallel()

	require.False(t, Ref("is_home").Eval(nil))
}

func TestParsePredicate(t *testing.T) {
	t.Parallel()

	p, err := ParsePredicate("is_tax:product_cat,product_tag")
	require.NoError(t, err)
	require.Equal(t, "is_tax", p.Name())
	require.Equal(t, "is_tax:product_cat,product_tag", p.String())

	_, err = ParsePredicate(" ")
	require.Error(t, err)
	_, err = ParsePredicate(":x")
	require.Error(t, err)
}

func TestValueForms(t *testing.T) {
	t.Parallel()

	table := NewTable()
	table.DefineValue("open_markup", func() string { return "<div>" })

	var holder struct {
		Before Value  `yaml:"before"`
		After  *Value `yaml:"after"`
		Other  *Value `yaml:"other"`
	}
	doc := "before: {callback: open_markup}\nafter: '</div>'\n"
	require.NoError(t, yaml.Unmarshal([]byte(doc), &holder))

	before, ok := holder.Before.Resolve(table)
	require.True(t, ok)
	require.Equal(t, "<div>", before)
	require.True(t, holder.Before.IsComputed())

	require.NotNil(t, holder.After)
	after, ok := holder.After.Resolve(nil)
	require.True(t, ok)
	require.Equal(t, "</div>", after)

	require.Nil(t, holder.Other)

	_, ok = Computed("missing").Resolve(table)
	require.False(t, ok)
}

func TestValueRejectsEmptyCallback(t *testing.T) {
	t.Parallel()

	var holder struct {
		Before Value `yaml:"before"`
	}
	require.Error(t, yaml.Unmarshal([]byte("before: {callback: ''}"), &holder))
}
