package render

import (
	"fmt"
	"strings"

	"vehicle/finder/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

// Scheme is the colour set of a match tier.
type Scheme struct {
	Name   string
	Accent lipgloss.Color
}

var tierSchemes = map[domain.MatchTier]Scheme{
	domain.MatchTierHigh:   {Name: "green", Accent: lipgloss.Color("#4ade80")},
	domain.MatchTierMedium: {Name: "amber", Accent: lipgloss.Color("#f59e0b")},
	domain.MatchTierLow:    {Name: "purple", Accent: lipgloss.Color("#a855f7")},
}

func SchemeFor(tier domain.MatchTier) Scheme {
	if s, ok := tierSchemes[tier]; ok {
		return s
	}
	return tierSchemes[domain.MatchTierLow]
}

type medalStyle struct {
	label string
	color lipgloss.Color
}

var medalStyles = map[domain.Medal]medalStyle{
	domain.MedalGold:   {label: "GOLD", color: lipgloss.Color("#ffd700")},
	domain.MedalSilver: {label: "SILVER", color: lipgloss.Color("#c0c0c0")},
	domain.MedalBronze: {label: "BRONZE", color: lipgloss.Color("#cd7f32")},
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60a5fa"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3a3a3"))
	brandStyle = lipgloss.NewStyle().Bold(true)
)

// Card renders one result card.
func Card(r domain.RankedCandidate) string {
	scheme := SchemeFor(r.MatchTier)
	medal := medalStyles[r.Medal]
	if medal.label == "" {
		medal = medalStyles[domain.MedalBronze]
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(medal.color).Render(fmt.Sprintf("* %s *", medal.label)),
		brandStyle.Render(r.Brand),
		r.Model,
		"",
		fmt.Sprintf("Price: ₺%s", r.Price),
		fmt.Sprintf("Engine: %s", r.Engine),
		fmt.Sprintf("Fuel: %s L", r.FuelConsumption),
		"",
		lipgloss.NewStyle().Bold(true).Foreground(scheme.Accent).Render(fmt.Sprintf("%d%% MATCH", r.MatchPercentage)),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(scheme.Accent).
		Padding(0, 2).
		Width(40).
		Render(strings.Join(lines, "\n"))
}

// Results renders the full result view, or the empty-state text.
func Results(category domain.VehicleCategory, results []domain.RankedCandidate, totalFound *int64) string {
	if len(results) == 0 {
		return mutedStyle.Render(fmt.Sprintf("No %s recommendations to show.", strings.ToLower(category.Label())))
	}

	header := titleStyle.Render(fmt.Sprintf("Your %s matches", strings.ToLower(category.Label())))
	if totalFound != nil {
		header += mutedStyle.Render(fmt.Sprintf(" (%d found)", *totalFound))
	}

	cards := make([]string, 0, len(results))
	for _, r := range results {
		cards = append(cards, Card(r))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinVertical(lipgloss.Left, cards...))
}

// ValidationErrors renders inline messages in field order.
func ValidationErrors(errs domain.ValidationErrors) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171"))
	lines := make([]string, 0, len(errs))
	for _, f := range domain.FormFields {
		if msg, ok := errs[f]; ok {
			lines = append(lines, style.Render(fmt.Sprintf("%s: %s", f, msg)))
		}
	}
	return strings.Join(lines, "\n")
}
