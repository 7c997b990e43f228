package format

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"twd-lookup/pkg/models"
)

// SeasonView renders the first appearances and deaths of a season
type SeasonView struct {
	Season int
	Result models.SeasonResult
}

// Season creates the view of a season result
func Season(season int, res models.SeasonResult) SeasonView {
	return SeasonView{Season: season, Result: res}
}

// Text implements View
func (v SeasonView) Text() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "New Characters in Season %d:", v.Season)
	for _, g := range v.Result.FirstAppearances {
		fmt.Fprintf(&sb, "\n  Ep.%d: %s", g.N, strings.Join(g.Characters, ", "))
	}

	fmt.Fprintf(&sb, "\nDeaths in Season %d:", v.Season)
	for _, g := range v.Result.Deaths {
		fmt.Fprintf(&sb, "\n  Ep.%d: %s", g.N, strings.Join(g.Characters, ", "))
	}

	return sb.String()
}

// HTML implements View
func (v SeasonView) HTML() templ.Component {
	return seasonHTML(v.Season, v.Result)
}

// Data implements View
func (v SeasonView) Data() any {
	return v.Result
}
