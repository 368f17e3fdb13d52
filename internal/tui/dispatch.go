package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/headsup/indianpoker/internal/protocol"
)

// Sender queues an outbound message to the server
type Sender interface {
	Send(*protocol.Message) error
}

// Dispatcher validates user gestures locally and emits the corresponding
// outbound requests. Validation here only catches what the user can fix
// immediately (empty name, malformed code, raise below minimum); the server
// re-validates everything and its rejections come back on the error path.
type Dispatcher struct {
	sender  Sender
	session *Session
	logger  *log.Logger
}

// NewDispatcher creates a dispatcher bound to the given session context
func NewDispatcher(sender Sender, session *Session, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		sender:  sender,
		session: session,
		logger:  logger.WithPrefix("dispatch"),
	}
}

// CreateRoom asks the server to open a new room
func (d *Dispatcher) CreateRoom(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("Please enter your name")
	}

	d.session.PlayerName = name
	d.logger.Info("Creating room", "player", name)

	return d.send(protocol.TypeCreateRoom, protocol.CreateRoomData{PlayerName: name})
}

// JoinRoom asks the server to join an existing room by code
func (d *Dispatcher) JoinRoom(name, code string) error {
	name = strings.TrimSpace(name)
	code = strings.ToUpper(strings.TrimSpace(code))

	if name == "" {
		return fmt.Errorf("Please enter your name")
	}
	if len([]rune(code)) != 4 {
		return fmt.Errorf("Please enter a valid 4-letter room code")
	}

	d.session.PlayerName = name
	d.session.RoomCode = code
	d.logger.Info("Joining room", "player", name, "room", code)

	return d.send(protocol.TypeJoinRoom, protocol.JoinRoomData{PlayerName: name, RoomCode: code})
}

// Fold folds the current hand
func (d *Dispatcher) Fold() error {
	return d.action(protocol.ActionFold, 0)
}

// Check checks. Legality is the server's call; the client does not block it.
func (d *Dispatcher) Check() error {
	return d.action(protocol.ActionCheck, 0)
}

// Call matches the current bet
func (d *Dispatcher) Call() error {
	return d.action(protocol.ActionCall, 0)
}

// Raise validates the entered amount against the last known minimum and
// sends the raise. There is no client-side upper bound; the server alone
// enforces the raise cap.
func (d *Dispatcher) Raise(input string, minRaise int) error {
	amount, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || amount <= 0 || amount < minRaise {
		return fmt.Errorf("Minimum raise is %d", minRaise)
	}

	return d.action(protocol.ActionRaise, amount)
}

// NextHand requests the next hand
func (d *Dispatcher) NextHand() error {
	return d.send(protocol.TypeNextHand, protocol.NextHandData{RoomCode: d.session.RoomCode})
}

// NewGame requests a fresh game with reset chip stacks
func (d *Dispatcher) NewGame() error {
	return d.send(protocol.TypeNewGame, protocol.NewGameData{RoomCode: d.session.RoomCode})
}

func (d *Dispatcher) action(action string, amount int) error {
	d.logger.Info("Sending action", "action", action, "amount", amount, "room", d.session.RoomCode)

	return d.send(protocol.TypePlayerAction, protocol.PlayerActionData{
		RoomCode: d.session.RoomCode,
		Action:   action,
		Amount:   amount,
	})
}

func (d *Dispatcher) send(messageType protocol.MessageType, data interface{}) error {
	msg, err := protocol.NewMessage(messageType, data)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", messageType, err)
	}

	if err := d.sender.Send(msg); err != nil {
		return fmt.Errorf("sending %s: %w", messageType, err)
	}
	return nil
}
