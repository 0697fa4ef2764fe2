// Package tui is an interactive terminal client for the session/engine
// API, adapted from the teacher's own internal/solitaire Bubble Tea
// model. It drives session.Registry and engine.Engine directly,
// in-process, rather than a standalone Game type — this is a
// development/demo aid, not part of the façade's external contract.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sde-casino/solitaire/internal/card"
	"github.com/sde-casino/solitaire/internal/deal"
	"github.com/sde-casino/solitaire/internal/deck"
	"github.com/sde-casino/solitaire/internal/engine"
	"github.com/sde-casino/solitaire/internal/game"
	"github.com/sde-casino/solitaire/internal/session"
)

type phase int

const (
	phasePlaying phase = iota
	phaseGameOver
)

// selection tracks what the player has picked up.
type selection struct {
	source  string // "talon", "tableau"
	col     int    // tableau column (0-6)
	cardIdx int    // index within tableau column
	active  bool
}

// Model is the Bubble Tea model for an in-process Solitaire session.
type Model struct {
	sessions  *session.Registry
	eng       *engine.Engine
	sessionID string
	decks     deck.Source

	g       *game.Game
	phase   phase
	cursor  string // "stock", "talon", "foundation", "tableau"
	tabCol  int
	tabRow  int
	sel     selection
	width   int
	height  int
	done    bool
	message string
	moves   int
}

// New deals a fresh game against an in-memory deck source and returns
// a ready-to-run model.
func New() Model {
	sessions := session.NewRegistry()
	decks := deck.NewMemorySource(nil)

	deckID, cards, err := decks.NewDeck(context.Background())
	if err != nil {
		panic(err) // the in-memory source never fails
	}
	g, err := deal.Build(deckID, cards[:])
	if err != nil {
		panic(err)
	}

	const sessionID = "local"
	sessions.Create(sessionID, g)

	return Model{
		sessions:  sessions,
		eng:       engine.New(),
		sessionID: sessionID,
		decks:     decks,
		g:         g,
		phase:     phasePlaying,
		cursor:    "tableau",
	}
}

// Init returns nil; no initial command needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// apply runs fn against the session and updates the cached state on
// success, clearing the selection either way.
func (m *Model) apply(fn func(g *game.Game) (*game.Game, error)) bool {
	next, err := m.sessions.With(m.sessionID, fn)
	m.clearSelection()
	if err != nil {
		m.message = err.Error()
		return false
	}
	m.g = next
	m.moves++
	m.message = ""
	return true
}

func (m *Model) newGame() {
	deckID, cards, err := m.decks.NewDeck(context.Background())
	if err != nil {
		m.message = err.Error()
		return
	}
	g, err := deal.Build(deckID, cards[:])
	if err != nil {
		m.message = err.Error()
		return
	}
	m.sessions.Create(m.sessionID, g)
	m.g = g
	m.moves = 0
	m.phase = phasePlaying
	m.clearSelection()
	m.message = "New game!"
}

// Update handles input and advances game state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.phase {
		case phasePlaying:
			return m.updatePlaying(key)
		case phaseGameOver:
			return m.updateGameOver(key)
		}
	}

	return m, nil
}

func (m Model) updatePlaying(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "d":
		m.apply(func(g *game.Game) (*game.Game, error) { return m.eng.DrawFromStock(g) })
	case "1", "2", "3", "4", "5", "6", "7":
		col := int(key[0]-'0') - 1
		m.cursor = "tableau"
		m.tabCol = col
		m.tabRow = m.defaultTabRow(col)
		m.message = ""
	case "s":
		m.cursor = "stock"
		m.message = ""
	case "w":
		m.cursor = "talon"
		m.message = ""
	case "left":
		m.moveLeft()
	case "right":
		m.moveRight()
	case "up":
		m.moveUp()
	case "down":
		m.moveDown()
	case "f":
		m.tryMoveToFoundation()
	case "enter", " ":
		m.handleSelect()
	case "tab":
		m.cycleArea()
	case "r":
		m.apply(func(g *game.Game) (*game.Game, error) { return m.eng.ResetStock(g) })
	case "n":
		m.newGame()
	case "q", "esc":
		m.done = true
		return m, tea.Quit
	}

	if m.g.Won && m.phase == phasePlaying {
		m.phase = phaseGameOver
		m.message = fmt.Sprintf("YOU WIN! %d moves!", m.moves)
	}

	return m, nil
}

func (m Model) updateGameOver(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "enter":
		m.newGame()
		m.cursor = "tableau"
		m.tabCol = 0
		m.tabRow = 0
	case "q", "esc":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// Done returns true when the player wants to exit.
func (m Model) Done() bool {
	return m.done
}

// --- Navigation helpers ---

func (m *Model) clearSelection() {
	m.sel = selection{}
}

func (m *Model) tableauLen(col int) int {
	return m.g.Tableau[col].Len()
}

func (m *Model) defaultTabRow(col int) int {
	n := m.tableauLen(col)
	if n == 0 {
		return 0
	}
	return n - 1
}

func (m *Model) faceUpIndex(col int) int {
	return m.g.Tableau[col].FaceUpFrom()
}

func (m *Model) moveLeft() {
	switch m.cursor {
	case "tableau":
		if m.tabCol > 0 {
			m.tabCol--
			m.tabRow = m.defaultTabRow(m.tabCol)
		}
	case "talon":
		m.cursor = "stock"
	case "foundation":
		m.cursor = "talon"
	}
}

func (m *Model) moveRight() {
	switch m.cursor {
	case "tableau":
		if m.tabCol < 6 {
			m.tabCol++
			m.tabRow = m.defaultTabRow(m.tabCol)
		}
	case "stock":
		m.cursor = "talon"
	case "talon":
		m.cursor = "foundation"
	}
}

func (m *Model) moveUp() {
	if m.cursor == "tableau" {
		fui := m.faceUpIndex(m.tabCol)
		if fui >= 0 && m.tabRow > fui {
			m.tabRow--
		} else {
			m.cursor = "stock"
		}
	}
}

func (m *Model) moveDown() {
	switch m.cursor {
	case "stock", "talon", "foundation":
		m.cursor = "tableau"
		m.tabRow = m.defaultTabRow(m.tabCol)
	case "tableau":
		if m.tabRow < m.tableauLen(m.tabCol)-1 {
			m.tabRow++
		}
	}
}

func (m *Model) cycleArea() {
	switch m.cursor {
	case "stock":
		m.cursor = "talon"
	case "talon":
		m.cursor = "foundation"
	case "foundation":
		m.cursor = "tableau"
		m.tabRow = m.defaultTabRow(m.tabCol)
	case "tableau":
		m.cursor = "stock"
	}
}

func (m *Model) handleSelect() {
	switch m.cursor {
	case "stock":
		m.apply(func(g *game.Game) (*game.Game, error) { return m.eng.DrawFromStock(g) })
	case "talon":
		if m.sel.active && m.sel.source == "talon" {
			m.clearSelection()
			return
		}
		if _, ok := m.g.Talon.Top(); ok {
			m.sel = selection{source: "talon", active: true}
			m.message = "Card selected. Move to a column and press Enter, or press F for its foundation."
		}
	case "tableau":
		if m.sel.active {
			m.placeSelection()
			return
		}
		n := m.tableauLen(m.tabCol)
		if n == 0 {
			return
		}
		slots := m.g.Tableau[m.tabCol].Slots()
		if m.tabRow >= 0 && m.tabRow < n && slots[m.tabRow].FaceUp {
			m.sel = selection{source: "tableau", col: m.tabCol, cardIdx: m.tabRow, active: true}
			m.message = "Stack selected. Move to a column and press Enter to place."
		}
	case "foundation":
		m.message = "Cannot pick up from foundation."
	}
}

func (m *Model) placeSelection() {
	switch m.sel.source {
	case "talon":
		if m.cursor == "tableau" {
			m.apply(func(g *game.Game) (*game.Game, error) { return m.eng.TalonToTableau(g, m.tabCol) })
		}
	case "tableau":
		if m.cursor == "tableau" {
			fromCol, fromRow := m.sel.col, m.sel.cardIdx
			count := m.g.Tableau[fromCol].Len() - fromRow
			m.apply(func(g *game.Game) (*game.Game, error) {
				return m.eng.TableauToTableau(g, fromCol, m.tabCol, count)
			})
		}
	}
	m.tabRow = m.defaultTabRow(m.tabCol)
}

func (m *Model) tryMoveToFoundation() {
	switch m.cursor {
	case "talon":
		top, ok := m.g.Talon.Top()
		if !ok {
			m.message = "Talon is empty."
			return
		}
		m.apply(func(g *game.Game) (*game.Game, error) { return m.eng.TalonToFoundation(g, top.Suit) })
	case "tableau":
		tc, ok := m.g.Tableau[m.tabCol].Top()
		if !ok {
			m.message = "Column is empty."
			return
		}
		fromCol := m.tabCol
		m.apply(func(g *game.Game) (*game.Game, error) { return m.eng.TableauToFoundation(g, fromCol, tc.Suit) })
	default:
		m.message = "Select talon or tableau first."
	}
}

// --- View rendering ---

// View renders the complete game screen.
func (m Model) View() string {
	info := scoreStyle.Render(fmt.Sprintf("Moves: %d", m.moves))

	msg := ""
	if m.message != "" {
		msg = messageStyle.Render(m.message)
	}

	var footer string
	switch m.phase {
	case phasePlaying:
		footer = "D Draw | R Reset Stock | 1-7 Column | Enter Select/Place | F Foundation | N New | Q Quit"
	case phaseGameOver:
		footer = "N New Game | Q Quit"
	}

	sections := []string{
		titleStyle.Render("S O L I T A I R E"),
		info,
		"",
		m.renderTopRow(),
		"",
		m.renderTableau(),
		"",
		msg,
		footerStyle.Render(footer),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderTopRow() string {
	var stockStr string
	if m.g.Stock.Len() > 0 {
		stockStr = faceDownStyle.Render("[##]")
	} else {
		stockStr = emptyStyle.Render("[  ]")
	}
	if m.cursor == "stock" {
		if m.g.Stock.Len() == 0 {
			stockStr = selectedStyle.Render("[  ]")
		} else {
			stockStr = selectedStyle.Render("[##]")
		}
	}

	var talonStr string
	if c, ok := m.g.Talon.Top(); ok {
		style := m.cardStyle(c)
		if m.cursor == "talon" || (m.sel.active && m.sel.source == "talon") {
			style = selectedStyle
		}
		talonStr = style.Render(m.cardText(c))
	} else if m.cursor == "talon" {
		talonStr = selectedStyle.Render("[  ]")
	} else {
		talonStr = emptyStyle.Render("[  ]")
	}

	gap := "    "

	fStrs := make([]string, 4)
	for i, suit := range card.Suits {
		f := m.g.Foundation(suit)
		if c, ok := f.Top(); ok {
			style := m.cardStyle(c)
			if f.Complete() {
				style = foundationCompleteStyle
			}
			if m.cursor == "foundation" {
				style = selectedStyle
			}
			fStrs[i] = style.Render(m.cardText(c))
		} else if m.cursor == "foundation" {
			fStrs[i] = selectedStyle.Render("[  ]")
		} else {
			fStrs[i] = emptyStyle.Render("[  ]")
		}
	}

	return stockStr + " " + talonStr + gap +
		fStrs[0] + " " + fStrs[1] + " " + fStrs[2] + " " + fStrs[3]
}

func (m Model) renderTableau() string {
	maxLen := 0
	for col := 0; col < 7; col++ {
		if n := m.tableauLen(col); n > maxLen {
			maxLen = n
		}
	}
	if maxLen == 0 {
		maxLen = 1
	}

	var rows []string
	for row := 0; row < maxLen; row++ {
		var cols []string
		for col := 0; col < 7; col++ {
			slots := m.g.Tableau[col].Slots()
			if row >= len(slots) {
				if row == 0 {
					if m.cursor == "tableau" && m.tabCol == col {
						cols = append(cols, selectedStyle.Render("[  ]"))
					} else {
						cols = append(cols, emptyStyle.Render("[  ]"))
					}
				} else {
					cols = append(cols, "    ")
				}
				continue
			}

			slot := slots[row]
			isSelected := m.sel.active && m.sel.source == "tableau" &&
				m.sel.col == col && row >= m.sel.cardIdx
			isCursor := m.cursor == "tableau" && m.tabCol == col && m.tabRow == row

			switch {
			case !slot.FaceUp:
				cols = append(cols, faceDownStyle.Render("[##]"))
			case isSelected, isCursor:
				cols = append(cols, selectedStyle.Render(m.cardText(slot.Card)))
			default:
				cols = append(cols, m.cardStyle(slot.Card).Render(m.cardText(slot.Card)))
			}
		}
		rows = append(rows, strings.Join(cols, " "))
	}

	return strings.Join(rows, "\n")
}

func (m Model) cardText(c card.Card) string {
	return "[" + c.Label() + "]"
}

func (m Model) cardStyle(c card.Card) lipgloss.Style {
	if c.Colour() == card.Red {
		return redCardStyle
	}
	return blackCardStyle
}

// --- Styles ---

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#DCFFDC"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DCFFDC"))

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	faceDownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("15"))

	foundationCompleteStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#00E632"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DCFFDC"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
