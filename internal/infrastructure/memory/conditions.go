package memory

import (
	"strings"

	"github.com/alexisbeaulieu97/themecore/internal/guard"
)

// conditionalTags are the host predicates a configuration may reference even
// when the request does not set them.
var conditionalTags = []string{
	"is_admin",
	"is_front_page",
	"is_home",
	"is_singular",
	"is_single",
	"is_page",
	"is_page_template",
	"is_404",
	"is_search",
	"is_attachment",
	"is_author",
	"is_date",
	"is_category",
	"is_tag",
	"is_tax",
	"is_archive",
	"is_post_type_archive",
	"is_shop",
	"is_woocommerce",
	"is_customize_preview",
	"wp_is_mobile",
}

type condition struct {
	name string
	args []string
}

// conditions is the set of conditional tags true for the current request.
// An entry `is_singular:page,post` answers is_singular(), is_singular('page')
// and is_singular('post', 'product').
type conditions []condition

func parseConditions(raw []string) conditions {
	out := make(conditions, 0, len(raw))
	for _, entry := range raw {
		name, rest, _ := strings.Cut(strings.TrimSpace(entry), ":")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var args []string
		for _, arg := range strings.Split(rest, ",") {
			if arg = strings.TrimSpace(arg); arg != "" {
				args = append(args, arg)
			}
		}
		out = append(out, condition{name: name, args: args})
	}
	return out
}

// Has reports whether the named tag is true for any of the given arguments.
// Without arguments any entry of that name matches.
func (c conditions) Has(name string, args ...string) bool {
	for _, cond := range c {
		if cond.name != name {
			continue
		}
		if len(args) == 0 {
			return true
		}
		for _, want := range args {
			for _, have := range cond.args {
				if want == have {
					return true
				}
			}
		}
	}
	return false
}

func (c conditions) names() []string {
	seen := make(map[string]struct{}, len(c))
	var out []string
	for _, cond := range c {
		if _, ok := seen[cond.name]; ok {
			continue
		}
		seen[cond.name] = struct{}{}
		out = append(out, cond.name)
	}
	return out
}

// resolverTable builds the predicate and value table for guard evaluation.
func resolverTable(req Request, conds conditions) *guard.Table {
	table := guard.NewTable()

	define := func(name string) {
		table.Define(name, func(args []string) bool {
			return conds.Has(name, args...)
		})
	}
	for _, name := range conditionalTags {
		define(name)
	}
	for _, name := range conds.names() {
		define(name)
	}

	table.Define("is_child_theme", func([]string) bool { return req.Theme.Child })
	table.Define("__return_true", func([]string) bool { return true })
	table.Define("__return_false", func([]string) bool { return false })

	for name, value := range req.Predicates {
		value := value
		table.Define(name, func([]string) bool { return value })
	}
	for name, value := range req.Values {
		value := value
		table.DefineValue(name, func() string { return value })
	}
	return table
}
