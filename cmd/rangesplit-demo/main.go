package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/rangesplit/bytebuf"
	"github.com/iw2rmb/rangesplit/internal/grapheme"
	"github.com/iw2rmb/rangesplit/span"
	"github.com/iw2rmb/rangesplit/strspan"
)

var samples = []string{
	"Hello, world",
	"Привет, мир",
	"naïve café",
	"a👨‍👩‍👧‍👦b",
}

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	taken lipgloss.Style
	rest  lipgloss.Style
	ok    lipgloss.Style
	bad   lipgloss.Style
	hint  lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true),
		label: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		taken: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		rest:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ok:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		bad:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		hint:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	}
}

type model struct {
	input  textinput.Model
	sample int
	styles styles
}

func newModel() model {
	ti := textinput.New()
	ti.Placeholder = "..5"
	ti.Prompt = "span> "
	ti.Focus()
	ti.CharLimit = 24

	return model{input: ti, styles: defaultStyles()}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.sample = (m.sample + 1) % len(samples)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	st := m.styles
	text := samples[m.sample]

	out := st.title.Render("rangesplit demo") + "\n\n"
	out += fmt.Sprintf("%s %q  (%d bytes, %d graphemes)\n\n",
		st.label.Render("text:"), text, len(text), grapheme.Count(text))
	out += m.input.View() + "\n\n"

	sp, err := span.Parse(m.input.Value())
	switch {
	case m.input.Value() == "":
		out += st.hint.Render("type a span: \"..\", \"3..\", \"..5\", or \"..=5\"") + "\n"
	case err != nil:
		out += st.bad.Render(err.Error()) + "\n"
	default:
		out += m.viewSplit(text, sp)
	}

	out += "\n" + st.hint.Render("tab: next sample · esc: quit") + "\n"
	return out
}

func (m model) viewSplit(text string, sp span.Span) string {
	st := m.styles

	if !strspan.IsValid(text, sp) {
		return st.bad.Render("✗ "+diagnose(text, sp)) + "\n"
	}

	out := st.ok.Render("✓ splits on code point boundaries") + "\n"
	if strspan.IsValidGraphemes(text, sp) {
		out += st.ok.Render("✓ splits on grapheme boundaries") + "\n"
	} else {
		out += st.bad.Render("✗ cuts through a grapheme cluster") + "\n"
	}

	view := bytebuf.OfString(text)
	taken := view.TakeRange(sp)
	out += fmt.Sprintf("\n%s %s + %s\n",
		st.label.Render("take:"),
		st.taken.Render(fmt.Sprintf("%q", taken.String())),
		st.rest.Render(fmt.Sprintf("%q", view.String())))

	buf := bytebuf.NewMutString(text)
	buf.RemoveRange(sp)
	out += fmt.Sprintf("%s %s\n",
		st.label.Render("remove:"),
		st.rest.Render(fmt.Sprintf("%q", buf.String())))
	return out
}

// diagnose captures the Assert diagnostic without terminating the program.
func diagnose(text string, sp span.Span) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprint(r)
		}
	}()
	strspan.Assert(text, sp)
	return "span is valid"
}

func main() {
	p := tea.NewProgram(newModel())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
