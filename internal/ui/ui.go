// Package ui implements the insert/edit video dialog as a terminal form.
// The form is the dialog controller's FormHost: it owns the widgets and
// reports their values, the controller decides what they mean.
package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"vidembed/internal/dialog"
	"vidembed/internal/media"
	"vidembed/internal/provider"
)

// ErrCancelled is returned when the user closes the dialog without inserting.
var ErrCancelled = errors.New("dialog cancelled")

// Field indexes; option checkboxes follow fieldFullscreen.
const (
	fieldURL = iota
	fieldWidth
	fieldHeight
	fieldFullscreen
	fieldOptions
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("245"))
	focusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(72)
)

// Dialog is a bubbletea model for one insert/edit dialog.
type Dialog struct {
	ctrl *dialog.Controller
	keys keyMap
	help help.Model

	inputs     [3]textinput.Model // url, width, height
	fullscreen bool
	defs       []provider.OptionDescriptor
	checked    map[string]bool
	focus      int

	preview string
	status  string
	result  string
	err     error
}

// NewDialog creates a dialog over reg, filled from initial.
func NewDialog(reg *provider.Registry, initial media.EmbedRequest, log logrus.FieldLogger) *Dialog {
	d := &Dialog{
		keys:    newKeyMap(),
		help:    help.New(),
		checked: map[string]bool{},
	}

	d.inputs[fieldURL] = newInput("https://youtu.be/…", 256)
	d.inputs[fieldWidth] = newInput("400", 5)
	d.inputs[fieldHeight] = newInput("300", 5)
	d.inputs[fieldURL].Focus()

	d.ctrl = dialog.New(reg, d, log)
	d.ctrl.Open(initial)
	return d
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Prompt = ""
	return in
}

// Run shows the dialog on stderr and returns the inserted markup, leaving
// stdout free for the caller.
func Run(reg *provider.Registry, initial media.EmbedRequest, log logrus.FieldLogger) (string, error) {
	d := NewDialog(reg, initial, log)
	if _, err := tea.NewProgram(d, tea.WithOutput(os.Stderr)).Run(); err != nil {
		return "", fmt.Errorf("running dialog: %w", err)
	}
	return d.Result()
}

// Result returns the inserted markup, or the reason nothing was inserted.
func (d *Dialog) Result() (string, error) {
	if d.err != nil {
		return "", d.err
	}
	if d.result == "" {
		return "", ErrCancelled
	}
	return d.result, nil
}

// Values implements dialog.FormHost.
func (d *Dialog) Values() media.EmbedRequest {
	opts := make(media.FormValues, len(d.checked))
	for k, v := range d.checked {
		opts[k] = v
	}
	return media.EmbedRequest{
		URL:        strings.TrimSpace(d.inputs[fieldURL].Value()),
		Width:      strings.TrimSpace(d.inputs[fieldWidth].Value()),
		Height:     strings.TrimSpace(d.inputs[fieldHeight].Value()),
		Fullscreen: d.fullscreen,
		Options:    opts,
	}
}

// Fill implements dialog.FormHost.
func (d *Dialog) Fill(req media.EmbedRequest) {
	d.inputs[fieldURL].SetValue(req.URL)
	d.inputs[fieldWidth].SetValue(req.Width)
	d.inputs[fieldHeight].SetValue(req.Height)
	d.fullscreen = req.Fullscreen
	d.checked = make(map[string]bool, len(req.Options))
	for k, v := range req.Options {
		d.checked[k] = !provider.IsDisabled(v)
	}
}

// ShowOptions implements dialog.FormHost.
func (d *Dialog) ShowOptions(defs []provider.OptionDescriptor, checked map[string]bool) {
	d.defs = defs
	d.checked = make(map[string]bool, len(checked))
	for k, v := range checked {
		d.checked[k] = v
	}
	if d.focus >= d.fieldCount() {
		d.focus = d.fieldCount() - 1
	}
}

// ShowPreview implements dialog.FormHost.
func (d *Dialog) ShowPreview(html string) {
	d.preview = html
}

// Insert implements dialog.FormHost.
func (d *Dialog) Insert(html string) error {
	d.result = html
	return nil
}

// Init implements tea.Model.
func (d *Dialog) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, d.updateInput(msg)
	}

	switch {
	case key.Matches(keyMsg, d.keys.cancel):
		d.err = ErrCancelled
		return d, tea.Quit
	case key.Matches(keyMsg, d.keys.submit):
		if _, err := d.ctrl.Submit(); err != nil {
			d.status = err.Error()
			return d, nil
		}
		return d, tea.Quit
	case key.Matches(keyMsg, d.keys.next):
		return d, d.setFocus(d.focus + 1)
	case key.Matches(keyMsg, d.keys.prev):
		return d, d.setFocus(d.focus - 1)
	}

	if d.focus >= fieldFullscreen {
		if key.Matches(keyMsg, d.keys.toggle) {
			d.toggleFocused()
			d.status = ""
			d.ctrl.Refresh()
		}
		return d, nil
	}

	cmd := d.updateInput(msg)
	d.status = ""
	d.ctrl.Refresh()
	return d, cmd
}

func (d *Dialog) updateInput(msg tea.Msg) tea.Cmd {
	if d.focus >= fieldFullscreen {
		return nil
	}
	var cmd tea.Cmd
	d.inputs[d.focus], cmd = d.inputs[d.focus].Update(msg)
	return cmd
}

func (d *Dialog) fieldCount() int {
	return fieldOptions + len(d.defs)
}

func (d *Dialog) setFocus(i int) tea.Cmd {
	n := d.fieldCount()
	d.focus = ((i % n) + n) % n
	for j := range d.inputs {
		d.inputs[j].Blur()
	}
	if d.focus < fieldFullscreen {
		return d.inputs[d.focus].Focus()
	}
	return nil
}

func (d *Dialog) toggleFocused() {
	if d.focus == fieldFullscreen {
		d.fullscreen = !d.fullscreen
		return
	}
	name := d.defs[d.focus-fieldOptions].Name
	d.checked[name] = !d.checked[name]
}

// View implements tea.Model.
func (d *Dialog) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Insert a video"))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Source") + d.inputs[fieldURL].View() + "\n")
	b.WriteString(labelStyle.Render("Dimensions") +
		d.inputs[fieldWidth].View() + " x " + d.inputs[fieldHeight].View() + "  " +
		d.checkbox(fieldFullscreen, "Allow fullscreen", d.fullscreen) + "\n")

	if len(d.defs) > 0 {
		b.WriteString(labelStyle.Render("Options") + "\n")
		for i, o := range d.defs {
			b.WriteString(strings.Repeat(" ", 12))
			b.WriteString(d.checkbox(fieldOptions+i, o.Label, d.checked[o.Name]))
			b.WriteString("\n")
		}
	} else if video := d.ctrl.Video(); video.Provider == media.UnknownProvider && d.inputs[fieldURL].Value() != "" {
		b.WriteString(labelStyle.Render("Options") + "unrecognized provider, the URL is embedded as is\n")
	}

	if d.preview != "" {
		b.WriteString("\n" + previewStyle.Render(d.preview) + "\n")
	}
	if d.status != "" {
		b.WriteString(errorStyle.Render(d.status) + "\n")
	}

	b.WriteString("\n" + d.help.View(d.keys) + "\n")
	return b.String()
}

func (d *Dialog) checkbox(field int, label string, on bool) string {
	box := "[ ] "
	if on {
		box = "[x] "
	}
	s := box + label
	if d.focus == field {
		return focusStyle.Render("> " + s)
	}
	return "  " + s
}
