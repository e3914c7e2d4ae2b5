// Package css holds the small text helpers used to emit inline styles.
package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

type rule struct {
	re   *regexp2.Regexp
	repl string
}

func mustRule(pattern, repl string, opts regexp2.RegexOptions) rule {
	return rule{re: regexp2.MustCompile(pattern, opts), repl: repl}
}

// space is ASCII whitespace only; \s in regexp2 also matches U+00A0 and
// friends, which must survive inside string values.
const space = `[ \t\n\r\f\v]`

// trimSet is what the surrounding trim removes.
const trimSet = " \t\n\r\x00\x0b"

// The order matters: later rules assume whitespace was already collapsed.
var minifyRules = []rule{
	mustRule(space+`+`, " ", regexp2.None),
	mustRule(`(`+space+`+)(\/\*(.*?)\*\/)(`+space+`+)`, "$2", regexp2.None),
	mustRule(`/\*(?![\!|\*])(.*?)\*/`, "", regexp2.None),
	mustRule(`;(?=`+space+`*})`, "", regexp2.None),
	mustRule(`(,|:|;|\{|}|\*/|>) `, "$1", regexp2.None),
	mustRule(` (,|;|\{|}|\(|\)|>)`, "$1", regexp2.None),
	mustRule(`(:| )0\.([0-9]+)(%|em|ex|px|in|cm|mm|pt|pc)`, "${1}.${2}${3}", regexp2.IgnoreCase),
	mustRule(`(:| )(\.?)0(%|em|ex|px|in|cm|mm|pt|pc)`, "${1}0", regexp2.IgnoreCase),
	mustRule(`0 0 0 0`, "0", regexp2.None),
	mustRule(`#([a-f0-9])\1([a-f0-9])\2([a-f0-9])\3`, "#$1$2$3", regexp2.IgnoreCase),
}

// Minify compacts a stylesheet with a fixed chain of substitutions: it
// collapses whitespace, drops comments that are not marked `/*!` or `/**`,
// drops the last semicolon of each block, strips leading zeros from unit
// values, collapses `0 0 0 0` to `0` and shortens #aabbcc colors to #abc.
func Minify(css string) string {
	for _, r := range minifyRules {
		out, err := r.re.Replace(css, r.repl, -1, -1)
		if err != nil {
			// regexp2 only fails on match timeouts, which are not configured.
			continue
		}
		css = out
	}
	return strings.Trim(css, trimSet)
}

// HexToRGB converts "#rrggbb" into "r,g,b" with decimal components.
func HexToRGB(color string) (string, error) {
	hex := strings.TrimPrefix(color, "#")
	if len(hex) != 6 {
		return "", fmt.Errorf("color %q is not in #rrggbb form", color)
	}
	parts := make([]string, 0, 3)
	for i := 0; i < 6; i += 2 {
		v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return "", fmt.Errorf("color %q: %w", color, err)
		}
		parts = append(parts, strconv.FormatUint(v, 10))
	}
	return strings.Join(parts, ","), nil
}
