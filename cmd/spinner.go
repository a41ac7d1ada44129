package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

// statusFunc replaces the text shown next to the spinner.
type statusFunc func(label string)

type (
	workDoneMsg struct{ err error }
	statusMsg   string
)

// progressModel shows a spinner with a status line while work runs in the
// background. The status line is updated through statusMsg.
type progressModel struct {
	spinner spinner.Model
	status  string
	work    tea.Cmd
	err     error
	done    bool
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.status = string(msg)
		return m, nil
	case workDoneMsg:
		m.done, m.err = true, msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.status
}

// runSpinner runs work while drawing a spinner on output. work may call its
// statusFunc to change the label; the work error is returned once it ends.
func runSpinner(ctx context.Context, output io.Writer, label string, work func(context.Context, statusFunc) error) error {
	var program *tea.Program
	status := func(label string) {
		program.Send(statusMsg(label))
	}

	program = tea.NewProgram(
		progressModel{
			spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
			status:  label,
			work: func() tea.Msg {
				return workDoneMsg{err: work(ctx, status)}
			},
		},
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		return err
	}
	model, ok := final.(progressModel)
	if !ok {
		return fmt.Errorf("unexpected spinner model %T", final)
	}
	return model.err
}
