package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	playPause key.Binding
	reset     key.Binding
	save      key.Binding
	editName  key.Binding
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	choose    key.Binding
	deselect  key.Binding
	delete    key.Binding
	clearAll  key.Binding
	addNote   key.Binding
	addList   key.Binding
	addItem   key.Binding
	edit      key.Binding
	toggle    key.Binding
	nextView  key.Binding
	quit      key.Binding
	confirm   key.Binding
	cancel    key.Binding
}

var defaultKeymap = keymap{
	playPause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "play/pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	editName: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "name"),
	),
	up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "down"),
	),
	left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("←/h", "prev item"),
	),
	right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("→/l", "next item"),
	),
	choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit tracker"),
	),
	deselect: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "new timer"),
	),
	delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	clearAll: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "clear all"),
	),
	addNote: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new note"),
	),
	addList: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "new checklist"),
	),
	addItem: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add item"),
	),
	edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle item"),
	),
	nextView: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}
