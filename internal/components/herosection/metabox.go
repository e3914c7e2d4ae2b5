package herosection

import (
	"context"
	"fmt"
	"html"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Choices are the values the meta box offers and the only ones it saves.
var Choices = []string{"featured_image", "default_image", "no_image", "disable"}

const (
	nonceAction = "hero_section_nonce_action"
	nonceName   = "hero_section_nonce"
	fieldName   = "hero_section"
)

var choiceCaser = cases.Title(language.Und)

func (h *HeroSection) addMetaBox(context.Context, ...any) any {
	h.Svc.MetaBoxes.AddMetaBox(ports.MetaBox{
		ID:       "hero-section",
		Title:    "Hero Section",
		Screens:  []string{"post", "page", "product", "portfolio"},
		Context:  "side",
		Priority: "low",
		Render:   h.renderMetaBox,
	})
	return nil
}

// ChoiceLabel is the label shown next to a choice: "no_image" becomes "No Image".
func ChoiceLabel(choice string) string {
	return choiceCaser.String(strings.ReplaceAll(choice, "_", " "))
}

func (h *HeroSection) renderMetaBox(ctx context.Context, post ports.Post) {
	current := h.postSetting(ctx, post.ID)

	var b strings.Builder
	for _, choice := range Choices {
		id := fieldName + "_" + choice
		checked := ""
		if choice == current {
			checked = ` checked='checked'`
		}
		fmt.Fprintf(&b, `<label for="%s"><input type="radio" name="%s" id="%s" value="%s"%s> %s</label><br>`,
			id, fieldName, id, html.EscapeString(choice), checked, ChoiceLabel(choice))
	}
	b.WriteString(h.Svc.Request.NonceField(nonceAction, nonceName))
	h.Svc.Output.Write(b.String())
}

// saveMetaBox stores the submitted choice. Requests without a valid nonce,
// autosaves and users without the edit capability change nothing.
func (h *HeroSection) saveMetaBox(ctx context.Context, args ...any) any {
	postID, ok := component.Arg(args, 0).(int)
	if !ok {
		h.Log.Warn("save_post fired without a post id")
		return nil
	}
	req := h.Svc.Request

	nonce, ok := req.PostValue(nonceName)
	if !ok || !req.VerifyNonce(nonce, nonceAction) {
		return postID
	}
	if autosave, _ := h.Svc.Constants.Constant("DOING_AUTOSAVE"); autosave == true {
		return postID
	}

	capability := "edit_post"
	if postType, _ := req.PostValue("post_type"); postType == "page" {
		capability = "edit_page"
	}
	if !req.CurrentUserCan(capability, postID) {
		return postID
	}

	value, ok := req.PostValue(fieldName)
	if !ok {
		return postID
	}
	if !validChoice(value) {
		h.Log.With("value", value).Warn("ignoring unknown hero setting")
		return postID
	}
	if err := h.Svc.Options.UpdatePostMeta(ctx, postID, MetaKey, value); err != nil {
		h.Log.Error(err, "save hero setting")
	}
	return postID
}

func validChoice(value string) bool {
	for _, choice := range Choices {
		if value == choice {
			return true
		}
	}
	return false
}
