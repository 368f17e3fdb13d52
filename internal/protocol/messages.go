package protocol

import "encoding/json"

// MessageType identifies a wire message kind
type MessageType string

const (
	// Client -> Server
	TypeCreateRoom   MessageType = "create_room"
	TypeJoinRoom     MessageType = "join_room"
	TypePlayerAction MessageType = "player_action"
	TypeNextHand     MessageType = "next_hand"
	TypeNewGame      MessageType = "new_game"

	// Server -> Client
	TypeRoomCreated        MessageType = "room_created"
	TypePlayerJoined       MessageType = "player_joined"
	TypeGameState          MessageType = "game_state"
	TypeError              MessageType = "error"
	TypePlayerDisconnected MessageType = "player_disconnected"
	TypeGameOver           MessageType = "game_over"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}

// Message is the envelope every wire message travels in
type Message struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewMessage wraps a payload in an envelope
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	if data == nil {
		return &Message{Type: messageType}, nil
	}

	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{Type: messageType, Data: dataBytes}, nil
}

// Client -> Server payloads

// CreateRoomData opens a new room for the named player
type CreateRoomData struct {
	PlayerName string `json:"player_name"`
}

// JoinRoomData joins an existing room by its 4-letter code
type JoinRoomData struct {
	PlayerName string `json:"player_name"`
	RoomCode   string `json:"room_code"`
}

// PlayerActionData carries an in-hand action: fold, check, call or raise.
// Amount is only meaningful for raise.
type PlayerActionData struct {
	RoomCode string `json:"room_code"`
	Action   string `json:"action"`
	Amount   int    `json:"amount,omitempty"`
}

// In-hand action names accepted by the server
const (
	ActionFold  = "fold"
	ActionCheck = "check"
	ActionCall  = "call"
	ActionRaise = "raise"
)

// NextHandData asks the server to deal the next hand
type NextHandData struct {
	RoomCode string `json:"room_code"`
}

// NewGameData asks the server to reset chips and start over
type NewGameData struct {
	RoomCode string `json:"room_code"`
}

// Server -> Client payloads

// RoomCreatedData confirms room creation with the assigned code
type RoomCreatedData struct {
	RoomCode   string `json:"room_code"`
	PlayerName string `json:"player_name,omitempty"`
}

// PlayerJoinedData announces the second player; hand play begins
type PlayerJoinedData struct {
	PlayerName string `json:"player_name,omitempty"`
}

// ErrorData carries a human-readable server error
type ErrorData struct {
	Message string `json:"message"`
}

// GameOverData announces the match winner once a player is out of chips
type GameOverData struct {
	Winner string `json:"winner"`
}

// GameState is the full authoritative snapshot of one moment of play,
// rendered from the receiving player's perspective. Each snapshot replaces
// the previous one wholesale; the client never merges or caches fields
// across snapshots.
type GameState struct {
	RoomCode   string `json:"room_code"`
	HandNumber int    `json:"hand_number"`

	YourName     string `json:"your_name"`
	OpponentName string `json:"opponent_name"`

	Pot           int `json:"pot"`
	YourChips     int `json:"your_chips"`
	OpponentChips int `json:"opponent_chips"`
	YourBet       int `json:"your_bet"`
	OpponentBet   int `json:"opponent_bet"`
	CurrentBet    int `json:"current_bet"`

	// Cards as rank+suit strings, e.g. "A♥". YourCard is only present once
	// the hand has ended; while the hand is live you see only the
	// opponent's card.
	OpponentCard string `json:"opponent_card"`
	YourCard     string `json:"your_card,omitempty"`

	IsYourTurn bool `json:"is_your_turn"`
	CanCheck   bool `json:"can_check"`
	CanRaise   bool `json:"can_raise"`
	MinRaise   int  `json:"min_raise"`
	RaisesLeft int  `json:"raises_left"`

	HandOver bool `json:"hand_over"`
	// Winner is the winning player's display name, or "Tie". Empty while
	// the hand is live.
	Winner string `json:"winner,omitempty"`
}

// WinnerTie is the winner value the server sends for a split pot. Player
// names are compared exactly, so it never collides with a real winner as
// long as nobody names themselves "Tie".
const WinnerTie = "Tie"
