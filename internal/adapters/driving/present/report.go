package present

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

// Notes printed under every plan.
var Notes = []string{
	"Yeast amounts are heuristic (Q10≈2/10°C; mild W effect). Fridge counted at configurable factor.",
	"If dough rises too fast in warm conditions (>27°C), shorten bulk or reduce yeast slightly.",
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
)

// Options control text rendering.
type Options struct {
	// Start is the wall-clock start. Zero omits end times.
	Start time.Time

	// Width limits the table width. Zero lets the table size itself.
	Width int
}

// IngredientRows returns the ingredient table body: name, amount, note.
func IngredientRows(plan *domain.BakePlan) [][]string {
	ing := plan.Ingredients
	spec := plan.Dough

	rows := [][]string{
		{"Balls", fmt.Sprintf("%d × %.0f g", spec.BallCount, spec.BallWeightG), ""},
		{"Flour", FormatGrams(ing.FlourG), fmt.Sprintf("W=%.0f | H=%.0f%%", float64(plan.Strength), spec.Hydration*100)},
		{"Water", FormatGrams(ing.WaterG), ""},
		{"Salt", FormatGrams(ing.SaltG), fmt.Sprintf("%.1f g/kg", spec.SaltPerKg)},
	}
	return append(rows, []string{spec.Yeast.Description(), FormatGrams(ing.YeastG), yeastNote(plan)})
}

func yeastNote(plan *domain.BakePlan) string {
	if plan.Dough.Yeast == domain.YeastFresh {
		return "~3× dry yeast"
	}
	if plan.Estimate == nil {
		return fmt.Sprintf("%.2f%% of flour (set)", plan.YeastPercent*100)
	}
	return fmt.Sprintf("~%.2f%% of flour (estimate)", plan.YeastPercent*100)
}

// IngredientTable renders the ingredient rows as a bordered table.
func IngredientTable(plan *domain.BakePlan, width int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Ingredient", "Amount", "Notes").
		Rows(IngredientRows(plan)...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t.Render()
}

// TimelineLines renders one line per phase plus the total.
func TimelineLines(plan *domain.BakePlan, start time.Time) []string {
	var lines []string
	for _, p := range Schedule(plan.Timeline, start) {
		line := fmt.Sprintf("- %-24s %.1f h", p.Label+":", p.Hours)
		if p.HasEnd() {
			line += " → ~end at " + p.End.Format("15:04")
		}
		lines = append(lines, line)
	}
	return append(lines, fmt.Sprintf("- %-24s %.1f h", "Total:", plan.Timeline.TotalHours()))
}

// Render writes the full human-readable report.
func Render(w io.Writer, plan *domain.BakePlan, opts Options) error {
	var b strings.Builder

	b.WriteString("\n=== Ingredients summary ===\n")
	b.WriteString(IngredientTable(plan, opts.Width))
	b.WriteString("\n\n=== Timeline ===\n")
	for _, line := range TimelineLines(plan, opts.Start) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if len(plan.Advisories) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, a := range plan.Advisories {
			b.WriteString(warnStyle.Render("! " + a))
			b.WriteByte('\n')
		}
	}

	b.WriteString("\nNotes:\n")
	for _, n := range Notes {
		b.WriteString("• " + n + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
