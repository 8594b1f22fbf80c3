package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/maze-engine/pkg/dungeon"
	"github.com/jwebster45206/maze-engine/pkg/effect"
	"github.com/jwebster45206/maze-engine/pkg/rules"
	"github.com/jwebster45206/maze-engine/pkg/turn"
)

const PlaceHolderText = "n / s / e / w, choice number, use <item>..."

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	game         *Game
	logViewport  viewport.Model
	metaViewport viewport.Model
	input        textinput.Model
	ready        bool
	width        int
	height       int

	// Encounter currently presented in the player's room, if any.
	current *turn.EncounterView

	// Accumulated log entries, reflowed on resize.
	entries []logEntry

	showQuitModal bool
}

type logEntry struct {
	style lipgloss.Style
	text  string
}

var (
	logPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	roomStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	narrativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewConsoleUI(game *Game) ConsoleUI {
	ti := textinput.New()
	ti.Placeholder = PlaceHolderText
	ti.Focus()
	ti.Prompt = promptStyle.Render(":: ")
	ti.CharLimit = 200
	ti.Width = 50

	logVp := viewport.New(50, 20)
	logVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	ui := ConsoleUI{
		game:         game,
		input:        ti,
		logViewport:  logVp,
		metaViewport: metaVp,
	}
	ui.addEntry(titleStyle, "MAZE ENGINE")
	ui.addEntry(lipgloss.NewStyle(), "You wake at the northwest corner of the maze. "+
		"The exit lies somewhere to the southeast. Move with n/s/e/w, pick choices "+
		"by number, and type help for the full command list.")
	return ui
}

func (m ConsoleUI) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ConsoleUI) addEntry(style lipgloss.Style, text string) {
	m.entries = append(m.entries, logEntry{style: style, text: text})
}

// writeLogContent reflows the whole log for the current viewport width.
func (m *ConsoleUI) writeLogContent() {
	logWidth := m.logViewport.Width - 6
	if logWidth < 10 {
		logWidth = 10
	}

	var content strings.Builder
	for _, e := range m.entries {
		content.WriteString(e.style.Render(wordwrap.String(e.text, logWidth)))
		content.WriteString("\n\n")
	}
	m.logViewport.SetContent(content.String())
	m.logViewport.GotoBottom()
}

func (m *ConsoleUI) writeMetadata() {
	gs := m.game.gs
	var content strings.Builder
	content.WriteString(titleStyle.Render("EXPEDITION") + "\n\n")

	content.WriteString("Game ID:\n")
	content.WriteString(gs.ID.String()[:8] + "...\n\n")

	content.WriteString(fmt.Sprintf("Turn: %d\n", gs.Turn))
	x, y := int(gs.Location)%gs.Session.Grid.Width, int(gs.Location)/gs.Session.Grid.Width
	content.WriteString(fmt.Sprintf("Room: %d (%d,%d)\n\n", gs.Location, x, y))

	content.WriteString("Stats:\n")
	ps := gs.Player.Stats
	content.WriteString(fmt.Sprintf("• HP:      %3d\n", ps.HP))
	content.WriteString(fmt.Sprintf("• Sanity:  %3d\n", ps.Sanity))
	content.WriteString(fmt.Sprintf("• Fitness: %3d\n", ps.Fitness))
	content.WriteString(fmt.Sprintf("• Hunger:  %3d\n\n", ps.Hunger))

	content.WriteString("Inventory:\n")
	if len(gs.Player.Inventory) == 0 {
		content.WriteString("Empty\n")
	}
	for _, slot := range gs.Player.Inventory {
		content.WriteString(fmt.Sprintf("• %s ×%d\n", effect.DisplayName(slot.ItemID), slot.Quantity))
	}
	content.WriteString("\n")

	if len(gs.Player.Statuses) > 0 {
		content.WriteString("Status Effects:\n")
		for _, inst := range gs.Player.Statuses {
			if inst.Stacks > 1 {
				content.WriteString(fmt.Sprintf("• %s ×%d\n", effect.DisplayName(inst.ID), inst.Stacks))
			} else {
				content.WriteString(fmt.Sprintf("• %s\n", effect.DisplayName(inst.ID)))
			}
		}
		content.WriteString("\n")
	}

	content.WriteString("Exits: ")
	var exits []string
	for _, dir := range dungeon.Directions {
		if _, ok := gs.Session.Grid.Neighbor(gs.Location, dir); ok {
			exits = append(exits, string(dir))
		}
	}
	content.WriteString(strings.Join(exits, ", ") + "\n\n")

	content.WriteString("Commands:\n")
	content.WriteString("• n/s/e/w: Move\n")
	content.WriteString("• 1..9: Pick choice\n")
	content.WriteString("• use <item>\n")
	content.WriteString("• copy: Game ID\n")
	content.WriteString("• Ctrl+C: Quit\n")

	m.metaViewport.SetContent(content.String())
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.logViewport, vpCmd = m.logViewport.Update(msg)
		return m, vpCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		logWidth := int(float64(m.width)*0.7) - 4
		metaWidth := m.width - logWidth - 6

		m.logViewport.Width = logWidth - 2
		m.logViewport.Height = m.height - 6
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.input.Width = logWidth - 6

		m.ready = true
		m.writeLogContent()
		m.writeMetadata()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			command := strings.TrimSpace(m.input.Value())
			if command == "" {
				return m, nil
			}
			m.input.Reset()
			m.handleCommand(command)
			m.writeLogContent()
			m.writeMetadata()
			return m, nil
		}
	}

	m.input, tiCmd = m.input.Update(msg)
	m.logViewport, vpCmd = m.logViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m *ConsoleUI) handleCommand(command string) {
	m.addEntry(playerStyle, "> "+command)

	lower := strings.ToLower(command)
	switch {
	case lower == "n" || lower == "north":
		m.move(dungeon.North)
	case lower == "s" || lower == "south":
		m.move(dungeon.South)
	case lower == "e" || lower == "east":
		m.move(dungeon.East)
	case lower == "w" || lower == "west":
		m.move(dungeon.West)
	case strings.HasPrefix(lower, "use "):
		m.useItem(strings.TrimSpace(command[4:]))
	case lower == "copy":
		if err := clipboard.WriteAll(m.game.gs.ID.String()); err != nil {
			m.addEntry(errorStyle, "Could not copy game ID: "+err.Error())
		} else {
			m.addEntry(promptStyle, "Game ID copied to clipboard.")
		}
	case lower == "help":
		m.addEntry(promptStyle, "Move with n/s/e/w. When an encounter offers choices, "+
			"type the choice number. Use items with 'use <item id>'. 'copy' puts the "+
			"game ID on the clipboard. Ctrl+C quits.")
	case lower == "quit":
		m.showQuitModal = true
	default:
		if idx, err := strconv.Atoi(lower); err == nil {
			m.pickChoice(idx)
			return
		}
		m.addEntry(errorStyle, "Unknown command. Type help for the command list.")
	}
}

func (m *ConsoleUI) move(dir dungeon.Direction) {
	gs := m.game.gs
	if gs.IsEnded {
		m.addEntry(errorStyle, "The expedition is over.")
		return
	}
	next, ok := gs.Session.Grid.Neighbor(gs.Location, dir)
	if !ok {
		m.addEntry(warningStyle, "You can't go that way.")
		return
	}

	view, err := m.game.engine.EnterRoom(gs, next)
	if err != nil {
		m.addEntry(errorStyle, err.Error())
		return
	}
	m.current = view

	if !view.TickReport.IsEmpty() {
		m.addEntry(warningStyle, view.TickReport.Describe())
	}
	if gs.IsEnded {
		m.addEntry(errorStyle, "Your strength gives out. The maze claims another explorer.")
		m.saveQuietly()
		return
	}

	m.addEntry(roomStyle, view.Encounter.Name)
	if view.Encounter.Description != "" {
		m.addEntry(narrativeStyle, view.Encounter.Description)
	}
	m.showChoices(view)

	if next == gs.Session.Grid.Exit {
		gs.IsEnded = true
		m.addEntry(titleStyle, "Daylight. You have found the exit and escaped the maze!")
	}
	m.saveQuietly()
}

func (m *ConsoleUI) showChoices(view *turn.EncounterView) {
	for _, cv := range view.Choices {
		line := fmt.Sprintf("%d. %s", cv.Index+1, cv.Choice.Text)
		if !cv.Availability.IsAvailable {
			line += " [unavailable: " + strings.Join(cv.Availability.FailureReasons, "; ") + "]"
			m.addEntry(promptStyle, line)
			continue
		}
		m.addEntry(lipgloss.NewStyle(), line)
	}
}

func (m *ConsoleUI) pickChoice(number int) {
	if m.current == nil {
		m.addEntry(warningStyle, "There is nothing to choose here.")
		return
	}

	result, err := m.game.engine.SelectChoice(m.game.gs, m.current, number-1)
	if err != nil {
		var reqErr *rules.RequirementError
		if errors.As(err, &reqErr) {
			m.addEntry(warningStyle, "You can't do that: "+
				strings.Join(reqErr.Result.FailureReasons, "; "))
			return
		}
		m.addEntry(errorStyle, err.Error())
		return
	}

	if !result.Success {
		m.addEntry(errorStyle, "It goes badly. "+result.Description)
	} else {
		m.addEntry(narrativeStyle, result.Description)
	}

	if m.current.Encounter.IsOneTime() {
		m.current = nil
	}
	if m.game.gs.IsEnded {
		m.addEntry(errorStyle, "Your strength gives out. The maze claims another explorer.")
	}
	m.saveQuietly()
}

func (m *ConsoleUI) useItem(itemID string) {
	id := strings.ReplaceAll(strings.ToLower(itemID), " ", "_")
	result, err := m.game.engine.UseItem(m.game.gs, id)
	if err != nil {
		m.addEntry(errorStyle, err.Error())
		if suggestion := m.game.catalog.SuggestItem(id); suggestion != "" {
			m.addEntry(promptStyle, fmt.Sprintf("Did you mean %q?", suggestion))
		}
		return
	}
	m.addEntry(narrativeStyle, result.Description)
	m.saveQuietly()
}

func (m *ConsoleUI) saveQuietly() {
	if err := m.game.save(); err != nil {
		m.addEntry(warningStyle, "Save failed: "+err.Error())
	}
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.input.Focus()
				return m, textinput.Blink
			}
		}
	}
	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Leave the Maze?"))
	content.WriteString("\n\n")
	content.WriteString("Your session is saved; the same seed rebuilds the same maze.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	logWidth := int(float64(m.width)*0.7) - 4
	metaWidth := m.width - logWidth - 6

	logPanel := logPanelStyle.Width(logWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.logViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(logWidth-4, 1))),
			m.input.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, logPanel, metaPanel)
}
