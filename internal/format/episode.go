package format

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"twd-lookup/pkg/models"
)

// EpisodeView renders the first appearances and deaths of an episode.
// Query is the identifier the user asked for and is echoed when nothing matched.
type EpisodeView struct {
	Query  string
	Result models.EpisodeResult
}

// Episode creates the view of an episode result
func Episode(query string, res models.EpisodeResult) EpisodeView {
	return EpisodeView{Query: query, Result: res}
}

// Text implements View
func (v EpisodeView) Text() string {
	if !v.Result.Found() {
		return fmt.Sprintf("There's no episode named \"%s\"", v.Query)
	}

	ep := v.Result.Episode
	label := fmt.Sprintf("\"%s\" S%dx%d", ep.Title, ep.Season, ep.Episode)

	var sb strings.Builder
	fmt.Fprintf(&sb, "First Appearances in %s:\n", label)
	for _, name := range v.Result.FirstAppearances {
		fmt.Fprintf(&sb, "  - %s\n", name)
	}
	fmt.Fprintf(&sb, "\nDeaths in %s:", label)
	for _, name := range v.Result.Deaths {
		fmt.Fprintf(&sb, "\n  - %s", name)
	}
	return sb.String()
}

// HTML implements View
func (v EpisodeView) HTML() templ.Component {
	return episodeHTML(v.Query, v.Result)
}

// Data implements View
func (v EpisodeView) Data() any {
	return v.Result
}
