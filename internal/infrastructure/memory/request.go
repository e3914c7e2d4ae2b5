// Package memory is an in-memory host for running a theme configuration
// outside a real site. Every call a component makes is recorded in a trace.
package memory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themecore/internal/ports"
	themeerrors "github.com/alexisbeaulieu97/themecore/pkg/errors"
)

// Request describes the simulated request and the stored state it starts from.
//
//	theme: {name: Business Pro, template: genesis, stylesheet_dir: ./theme, child: true}
//	conditions: [is_singular:page, is_page_template:page_blog.php]
//	post_id: 12
//	options: {show_on_front: page}
type Request struct {
	Theme       ports.ThemeInfo   `yaml:"theme"`
	Conditions  []string          `yaml:"conditions"`
	Predicates  map[string]bool   `yaml:"predicates"`
	Values      map[string]string `yaml:"values"`
	PostID      int               `yaml:"post_id"`
	Search      string            `yaml:"search"`
	QueryVars   map[string]string `yaml:"query_vars"`
	Posts       []ports.Post      `yaml:"posts"`
	Attachments []ports.Post      `yaml:"attachments"`
	Menus       map[string]int    `yaml:"menus"`
	ShopPageID  int               `yaml:"shop_page_id"`
	HeaderImage string            `yaml:"header_image"`
	Templates   map[string]string `yaml:"templates"`
	Events      []string          `yaml:"events"`
	Import      bool              `yaml:"import"`

	Form         map[string]string `yaml:"form"`
	Nonces       map[string]string `yaml:"nonces"`
	Capabilities []string          `yaml:"capabilities"`
	SavePost     int               `yaml:"save_post"`

	Constants    map[string]any         `yaml:"constants"`
	ThemeSupport map[string]any         `yaml:"theme_support"`
	Options      map[string]any         `yaml:"options"`
	ThemeMods    map[string]any         `yaml:"theme_mods"`
	PostMeta     map[int]map[string]any `yaml:"post_meta"`
}

// LoadRequest reads a request document. An empty path yields the zero request.
func LoadRequest(path string) (Request, error) {
	var req Request
	if path == "" {
		return req, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return req, themeerrors.NewParseError(path, 0, err)
	}
	if err := yaml.Unmarshal(data, &req); err != nil {
		return req, themeerrors.NewParseError(path, 0, fmt.Errorf("request: %w", err))
	}
	return req, nil
}
