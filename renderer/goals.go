package renderer

import (
	"bytes"

	"github.com/Pradeep-Sekar/investrak"
	md "github.com/nao1215/markdown"
)

// GoalsMarkdown renders the goal list to a markdown table.
func GoalsMarkdown(goals []investrak.Goal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Financial Goals")
	if len(goals) == 0 {
		doc.PlainText("No goals found.")
		return doc.String()
	}

	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, []string{
			g.ID,
			g.Name,
			g.TargetAmount.String(),
			day(g.TargetDate),
			g.Status.String(),
			orDash(g.Category),
			orDash(g.PortfolioID),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Target", "Target Date", "Status", "Category", "Portfolio"},
		Rows:   rows,
	})

	return doc.String()
}
