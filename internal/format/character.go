package format

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"twd-lookup/pkg/models"
)

// CharacterView renders a single character result
type CharacterView struct {
	Result models.CharacterResult
}

// Character creates the view of a character result
func Character(res models.CharacterResult) CharacterView {
	return CharacterView{Result: res}
}

// Text implements View
func (v CharacterView) Text() string {
	r := v.Result

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:\n", r.Name)
	fmt.Fprintf(&sb, "  First:  S%d ep.%d \"%s\"\n", r.FirstSeason, r.FirstEpisode, r.FirstTitle)
	if r.IsDead() {
		fmt.Fprintf(&sb, "  Death:  S%d ep.%d \"%s\"\n", r.DeathSeason, r.DeathEpisode, r.DeathTitle)
	} else {
		sb.WriteString("  Death:  -\n")
	}
	fmt.Fprintf(&sb, "  Status: %s", r.Status)
	return sb.String()
}

// HTML implements View
func (v CharacterView) HTML() templ.Component {
	return characterHTML(v.Result)
}

// Data implements View
func (v CharacterView) Data() any {
	return v.Result
}
