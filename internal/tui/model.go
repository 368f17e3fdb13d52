package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/headsup/indianpoker/internal/protocol"
)

// resetAfter is the delay between the disconnect notice and the full
// client reset
const resetAfter = 2 * time.Second

// Messages delivered into the bubbletea loop
type (
	serverEventMsg    struct{ event protocol.Event }
	eventsClosedMsg   struct{}
	notifierHiddenMsg struct{ gen int }
	resetMsg          struct{ gen int }
)

// Model is the bubbletea model for the whole client: screens, session
// context, the last snapshot and the transient raise sub-dialog state.
// Every inbound event and every gesture is processed to completion inside
// Update, so no render ever observes a half-applied change.
type Model struct {
	logger     *log.Logger
	clock      quartz.Clock
	screens    *Screens
	session    *Session
	notifier   *Notifier
	dispatcher *Dispatcher
	events     <-chan protocol.Event

	// deliverFn routes timer callbacks back into the update loop; wired to
	// program.Send before the program runs.
	deliverFn func(tea.Msg)

	state     *protocol.GameState
	raiseOpen bool
	resetGen  int

	nameInput  textinput.Model
	codeInput  textinput.Model
	raiseInput textinput.Model
	lobbyFocus int // 0 = name, 1 = code

	width    int
	height   int
	quitting bool
}

// NewModel creates the client model
func NewModel(sender Sender, events <-chan protocol.Event, clock quartz.Clock, logger *log.Logger) *Model {
	name := textinput.New()
	name.Placeholder = "your name"
	name.CharLimit = 32
	name.Width = 24
	name.Prompt = "Name: "
	name.Focus()

	code := textinput.New()
	code.Placeholder = "leave empty to create"
	code.CharLimit = 4
	code.Width = 24
	code.Prompt = "Room: "

	raise := textinput.New()
	raise.Placeholder = "amount"
	raise.CharLimit = 6
	raise.Width = 12
	raise.Prompt = "Raise to: "

	session := &Session{}

	m := &Model{
		logger:     logger.WithPrefix("tui"),
		clock:      clock,
		screens:    NewScreens(),
		session:    session,
		dispatcher: NewDispatcher(sender, session, logger),
		events:     events,
		nameInput:  name,
		codeInput:  code,
		raiseInput: raise,
	}
	m.notifier = NewNotifier(clock, func(gen int) {
		m.deliver(notifierHiddenMsg{gen: gen})
	})
	return m
}

// SetDeliver wires the hook timers use to re-enter the update loop,
// normally program.Send.
func (m *Model) SetDeliver(fn func(tea.Msg)) {
	m.deliverFn = fn
}

// PrefillName seeds the lobby name input, e.g. from configuration
func (m *Model) PrefillName(name string) {
	m.nameInput.SetValue(name)
}

func (m *Model) deliver(msg tea.Msg) {
	if m.deliverFn != nil {
		m.deliverFn(msg)
	}
}

// Init starts listening for server events
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenEvents())
}

// listenEvents returns a command that waits for the next server event
func (m *Model) listenEvents() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.events
		if !ok {
			return eventsClosedMsg{}
		}
		return serverEventMsg{event: event}
	}
}

// Update handles one message to completion
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case serverEventMsg:
		m.handleServerEvent(msg.event)
		return m, m.listenEvents()

	case eventsClosedMsg:
		// The transport already delivered a final PeerDisconnected; nothing
		// left to listen for.
		return m, nil

	case notifierHiddenMsg:
		m.notifier.Expire(msg.gen)
		return m, nil

	case resetMsg:
		if msg.gen == m.resetGen {
			m.reset()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleServerEvent is the dispatch table over inbound event kinds
func (m *Model) handleServerEvent(event protocol.Event) {
	switch event := event.(type) {
	case protocol.RoomCreated:
		m.session.RoomCode = event.RoomCode
		m.screens.Activate(ScreenWaiting)

	case protocol.PeerJoined:
		m.screens.Activate(ScreenGame)

	case protocol.StateSnapshot:
		// Replace wholesale; the snapshot alone decides what controls
		// exist, so an open raise dialog closes unconditionally.
		m.state = event.State
		m.session.RoomCode = event.State.RoomCode
		m.raiseOpen = false

	case protocol.ServerError:
		m.notifier.Show(event.Message)

	case protocol.PeerDisconnected:
		m.notifier.Show("Opponent disconnected")
		m.resetGen++
		gen := m.resetGen
		m.clock.AfterFunc(resetAfter, func() {
			m.deliver(resetMsg{gen: gen})
		})

	case protocol.GameConcluded:
		// Banner only; a following snapshot re-renders the result surface
		// on its own and this notice times out independently.
		m.notifier.Show(fmt.Sprintf("Game Over! %s wins!", event.Winner))

	default:
		m.logger.Warn("Unhandled server event", "event", fmt.Sprintf("%T", event))
	}
}

// reset returns the client to its initial state: lobby screen, empty
// session, no snapshot. Nothing is preserved and no reconnect is attempted.
func (m *Model) reset() {
	m.logger.Info("Resetting client after disconnect")

	m.session.Reset()
	m.state = nil
	m.raiseOpen = false
	m.notifier.Clear()

	m.nameInput.SetValue("")
	m.codeInput.SetValue("")
	m.raiseInput.SetValue("")
	m.lobbyFocus = 0
	m.nameInput.Focus()
	m.codeInput.Blur()

	m.screens.Activate(ScreenLobby)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)
	}

	switch m.screens.Active() {
	case ScreenLobby:
		return m.handleLobbyKey(msg)
	case ScreenGame:
		return m.handleGameKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleLobbyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		if m.lobbyFocus == 0 {
			m.lobbyFocus = 1
			m.nameInput.Blur()
			m.codeInput.Focus()
		} else {
			m.lobbyFocus = 0
			m.codeInput.Blur()
			m.nameInput.Focus()
		}
		return m, nil

	case "enter":
		var err error
		if strings.TrimSpace(m.codeInput.Value()) == "" {
			err = m.dispatcher.CreateRoom(m.nameInput.Value())
		} else {
			err = m.dispatcher.JoinRoom(m.nameInput.Value(), m.codeInput.Value())
		}
		if err != nil {
			m.notifier.Show(err.Error())
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.lobbyFocus == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.codeInput, cmd = m.codeInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == nil {
		return m, nil
	}
	view := BuildView(m.state, m.raiseOpen)

	if m.raiseOpen {
		switch msg.String() {
		case "enter":
			if err := m.dispatcher.Raise(m.raiseInput.Value(), m.state.MinRaise); err != nil {
				m.notifier.Show(err.Error())
				return m, nil
			}
			m.raiseOpen = false
			return m, nil
		case "esc":
			m.raiseOpen = false
			return m, nil
		}

		var cmd tea.Cmd
		m.raiseInput, cmd = m.raiseInput.Update(msg)
		return m, cmd
	}

	var err error
	switch msg.String() {
	case "f":
		if view.Controls.FoldEnabled {
			err = m.dispatcher.Fold()
		}
	case "k":
		if view.Controls.CheckEnabled {
			err = m.dispatcher.Check()
		}
	case "c":
		if view.Controls.CallEnabled {
			err = m.dispatcher.Call()
		}
	case "r":
		if view.Controls.RaiseEnabled {
			m.raiseOpen = true
			m.raiseInput.SetValue("")
			m.raiseInput.Focus()
		}
	case "n":
		if view.Result.NextHand {
			err = m.dispatcher.NextHand()
		}
	case "g":
		if view.Result.Visible {
			err = m.dispatcher.NewGame()
		}
	}
	if err != nil {
		m.notifier.Show(err.Error())
	}
	return m, nil
}

// View renders the active screen with the error banner on top
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.screens.Active() {
	case ScreenLobby:
		body = m.viewLobby()
	case ScreenWaiting:
		body = m.viewWaiting()
	case ScreenGame:
		body = m.viewGame()
	}

	if message := m.notifier.Message(); message != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, ErrorStyle.Render(message), "", body)
	}

	return body
}

func (m *Model) viewLobby() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Indian Poker"))
	b.WriteString("\n\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	b.WriteString(m.codeInput.View())
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("enter: create room (or join with a code) • tab: switch field • ctrl+c: quit"))
	return b.String()
}

func (m *Model) viewWaiting() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Indian Poker"))
	b.WriteString("\n\n")
	b.WriteString("Room code: ")
	b.WriteString(HeaderStyle.Render(m.session.RoomCode))
	b.WriteString("\n\n")
	b.WriteString(WaitingStyle.Render("Waiting for an opponent to join..."))
	return b.String()
}

func (m *Model) viewGame() string {
	if m.state == nil {
		return WaitingStyle.Render("Waiting for game state...")
	}

	view := BuildView(m.state, m.raiseOpen)

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("Hand #%d  •  Pot: $%d  •  Room: %s",
		view.HandNumber, view.Pot, view.RoomCode)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s  $%d  (bet $%d)  %s\n",
		view.OpponentName, view.OpponentChips, view.OpponentBet, renderCard(view.OpponentCard)))
	b.WriteString(fmt.Sprintf("%s  $%d  (bet $%d)  %s\n",
		view.YourName, view.YourChips, view.YourBet, renderCard(view.YourCard)))
	b.WriteString("\n")

	if view.TurnActive {
		b.WriteString(TurnActiveStyle.Render(view.TurnLabel))
	} else {
		b.WriteString(WaitingStyle.Render(view.TurnLabel))
	}
	b.WriteString("\n\n")

	switch {
	case view.Result.Visible:
		b.WriteString(renderResult(view.Result))
	case view.RaiseOpen:
		b.WriteString(m.raiseInput.View())
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render(fmt.Sprintf("min %d • enter: confirm • esc: cancel", view.Controls.MinRaise)))
	case view.ControlsVisible:
		b.WriteString(renderControls(view.Controls))
	}

	return b.String()
}

func renderCard(card CardView) string {
	label := "[" + card.Label + "]"
	switch {
	case card.FaceDown:
		return FaceDownStyle.Render(label)
	case card.Red:
		return RedCardStyle.Render(label)
	default:
		return BlackCardStyle.Render(label)
	}
}

func renderControls(controls Controls) string {
	style := func(enabled bool) lipgloss.Style {
		if enabled {
			return ActionStyle
		}
		return DisabledStyle
	}

	parts := []string{style(controls.FoldEnabled).Render("[f]old")}
	if controls.CheckVisible {
		parts = append(parts, style(controls.CheckEnabled).Render("chec[k]"))
	}
	if controls.CallVisible {
		parts = append(parts, style(controls.CallEnabled).Render(fmt.Sprintf("[c]all $%d", controls.CallAmount)))
	}
	parts = append(parts, style(controls.RaiseEnabled).Render(
		fmt.Sprintf("[r]aise (min $%d, %d left)", controls.MinRaise, controls.RaisesLeft)))

	return strings.Join(parts, "  ")
}

func renderResult(result Result) string {
	var b strings.Builder
	switch result.Outcome {
	case OutcomeWin:
		b.WriteString(WinStyle.Render(result.Outcome.Message()))
	case OutcomeLose:
		b.WriteString(LoseStyle.Render(result.Outcome.Message()))
	default:
		b.WriteString(TieStyle.Render(result.Outcome.Message()))
	}
	b.WriteString("\n\n")

	if result.NextHand {
		b.WriteString(ActionStyle.Render("[n]ext hand"))
		b.WriteString("  ")
	}
	b.WriteString(ActionStyle.Render("[g] new game"))
	return b.String()
}

// Session exposes the session context, mainly for tests
func (m *Model) Session() *Session {
	return m.session
}

// ActiveScreen returns the currently active screen
func (m *Model) ActiveScreen() Screen {
	return m.screens.Active()
}
