package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/obdlog/internal/application"
	"github.com/bnema/obdlog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	cellWidth   = 4
	cellsPerRow = 16
	timeLayout  = "2006-01-02 15:04:05"
)

// RenderSession renders the protocol, commands, PID responses and the
// second-to-last PID recovered from a transcript.
func RenderSession(session domain.Session) (string, error) {
	return render(func(s styles) string { return sessionView(session, s) })
}

func RenderPIDs(records []domain.PIDRecord) (string, error) {
	return render(func(s styles) string { return pidsView(records, s) })
}

// RenderEvaluation renders an evaluation result with the byte strip of the
// response, highlighting every byte the expression read.
func RenderEvaluation(evaluation application.Evaluation) (string, error) {
	return render(func(s styles) string { return evaluationView(evaluation, s) })
}

func RenderFormulaResults(results []application.FormulaResult) (string, error) {
	return render(func(s styles) string { return formulaResultsView(results, s) })
}

func RenderFormulas(formulas []domain.Formula) (string, error) {
	return render(func(s styles) string { return formulasView(formulas, s) })
}

func RenderHistory(pid string, history []domain.ArchivedResponse) (string, error) {
	return render(func(s styles) string { return historyView(pid, history, s) })
}

func sessionView(session domain.Session, s styles) string {
	protocol := session.LastProtocol
	if protocol == "" {
		protocol = "n/a"
	}

	lines := []string{
		s.title.Render("Session Report"),
		s.header.Render(fmt.Sprintf("protocol: %s", protocol)),
	}

	commands := []string{s.title.Render(fmt.Sprintf("commands: %d", len(session.Commands)))}
	if len(session.Commands) == 0 {
		commands = append(commands, s.empty.Render("No commands found."))
	}
	for _, command := range session.Commands {
		commands = append(commands, recordLine(command.Name, command.Response, s))
	}
	if len(session.Suppressed) > 0 {
		names := make([]string, 0, len(session.Suppressed))
		for _, command := range session.Suppressed {
			names = append(names, command.Name)
		}
		commands = append(commands, s.empty.Render(fmt.Sprintf("suppressed: %s", strings.Join(names, ", "))))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, commands...)))

	lines = append(lines, s.section.Render(pidsView(session.PIDResponses.Entries(), s)))

	secondToLast := []string{s.title.Render("second-to-last PID")}
	if session.SecondToLastPID == nil {
		secondToLast = append(secondToLast, s.empty.Render("none"))
	} else {
		secondToLast = append(secondToLast, recordLine(session.SecondToLastPID.Request, session.SecondToLastPID.Response, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, secondToLast...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func pidsView(records []domain.PIDRecord, s styles) string {
	lines := []string{s.title.Render(fmt.Sprintf("PID responses: %d", len(records)))}
	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No PID responses found."))
	}
	for _, record := range records {
		lines = append(lines, recordLine(record.Request, record.Response, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func recordLine(name string, response []string, s styles) string {
	text := strings.Join(response, " | ")
	if text == "" {
		text = "-"
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, "  ", s.key.Render(name), "  ", s.detail.Render(text))
}

func evaluationView(evaluation application.Evaluation, s styles) string {
	lines := []string{
		s.title.Render("Evaluation"),
		s.header.Render(fmt.Sprintf("pid: %s  expression: %s  V: %s",
			evaluation.PID, evaluation.Expression, formatNumber(evaluation.Variable))),
		lipgloss.JoinHorizontal(lipgloss.Top, s.detail.Render("result: "), s.value.Render(formatNumber(evaluation.Result.Value))),
		s.section.Render(byteStrip(evaluation, s)),
		s.detail.Render("accessed: " + formatIndices(evaluation.Result.Accessed)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// byteStrip lays the buffer out in rows of index labels, hex cells and a
// marker row under the cells the expression read.
func byteStrip(evaluation application.Evaluation, s styles) string {
	if evaluation.Buffer.Len() == 0 {
		return s.empty.Render("empty buffer")
	}

	hex := evaluation.Buffer.Hex()
	rows := make([]string, 0, len(hex)/cellsPerRow+1)
	for start := 0; start < len(hex); start += cellsPerRow {
		end := min(start+cellsPerRow, len(hex))

		var indices, cells, markers []string
		for i := start; i < end; i++ {
			indices = append(indices, s.index.Render(strconv.Itoa(i)))
			if evaluation.Accessed(i) {
				cells = append(cells, s.cellActive.Render(hex[i]))
				markers = append(markers, s.marker.Render("^"))
			} else {
				cells = append(cells, s.cell.Render(hex[i]))
				markers = append(markers, s.marker.Render(""))
			}
		}

		rows = append(rows, lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, indices...),
			lipgloss.JoinHorizontal(lipgloss.Top, cells...),
			lipgloss.JoinHorizontal(lipgloss.Top, markers...),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func formulaResultsView(results []application.FormulaResult, s styles) string {
	lines := []string{s.title.Render(fmt.Sprintf("formulas: %d", len(results)))}
	if len(results) == 0 {
		lines = append(lines, s.empty.Render("No formulas saved."))
	}

	for _, result := range results {
		label := s.key.Render(result.Formula.Name)
		if result.Err != nil {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
				"  ", label, "  ", s.warning.Render("error: "+result.Err.Error())))
			continue
		}

		value := formatNumber(result.Evaluation.Result.Value)
		if result.Formula.Unit != "" {
			value += " " + result.Formula.Unit
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			"  ", label, "  ", s.value.Render(value), "  ", s.header.Render("("+result.Evaluation.PID+")")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formulasView(formulas []domain.Formula, s styles) string {
	lines := []string{s.title.Render(fmt.Sprintf("formulas: %d", len(formulas)))}
	if len(formulas) == 0 {
		lines = append(lines, s.empty.Render("No formulas saved."))
	}

	for _, formula := range formulas {
		pid := formula.PID
		if pid == "" {
			pid = "second-to-last"
		}
		parts := []string{"  ", s.key.Render(formula.Name), "  ", s.detail.Render(formula.Expression), "  ", s.header.Render("pid: " + pid)}
		if formula.Unit != "" {
			parts = append(parts, "  ", s.header.Render("unit: "+formula.Unit))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
		if formula.Description != "" {
			lines = append(lines, s.empty.Render("    "+formula.Description))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func historyView(pid string, history []domain.ArchivedResponse, s styles) string {
	lines := []string{
		s.title.Render("History " + strings.ToUpper(pid)),
		s.header.Render(fmt.Sprintf("responses: %d", len(history))),
	}
	if len(history) == 0 {
		lines = append(lines, s.empty.Render("No archived responses."))
	}

	for _, entry := range history {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			"  ", s.header.Render(entry.IngestedAt.Format(timeLayout)),
			"  ", s.key.Render(entry.Source),
			"  ", s.detail.Render(strings.Join(entry.Response, " | ")),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatIndices(indices []int) string {
	if len(indices) == 0 {
		return "none"
	}

	parts := make([]string, 0, len(indices))
	for _, index := range indices {
		parts = append(parts, strconv.Itoa(index))
	}
	return strings.Join(parts, ", ")
}
