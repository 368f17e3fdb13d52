package tui

import (
	"github.com/headsup/indianpoker/internal/deck"
	"github.com/headsup/indianpoker/internal/protocol"
)

// Turn indicator labels
const (
	labelYourTurn = "Your Turn"
	labelWaiting  = "Waiting for opponent..."
	labelHandOver = "Hand Over"
)

// CardView is a card ready for display. A face-down card shows the
// placeholder label with neutral styling regardless of its true value.
type CardView struct {
	Label    string
	Red      bool
	FaceDown bool
}

// Controls describes the four in-hand action controls. Check and call are
// hidden outright (not merely disabled) when illegal on the player's own
// turn; on the opponent's turn all four stay visible but disabled.
type Controls struct {
	FoldEnabled bool

	CheckVisible bool
	CheckEnabled bool

	CallVisible bool
	CallEnabled bool
	CallAmount  int

	RaiseEnabled bool
	MinRaise     int
	RaisesLeft   int
}

// Outcome is the three-way result of a finished hand
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
	OutcomeTie
)

// Message returns the result banner text
func (o Outcome) Message() string {
	switch o {
	case OutcomeWin:
		return "🎉 You Win! 🎉"
	case OutcomeLose:
		return "You Lose"
	case OutcomeTie:
		return "It's a Tie!"
	default:
		return ""
	}
}

// Result is the hand-over surface
type Result struct {
	Visible bool
	Outcome Outcome
	// NextHand is shown only while both players still have chips; once a
	// player is eliminated only a new game can continue play.
	NextHand bool
}

// View is the fully determined visual state for one snapshot. BuildView is
// pure, so rendering the same snapshot twice yields the same View.
type View struct {
	RoomCode   string
	HandNumber int
	Pot        int

	YourName     string
	OpponentName string

	YourChips     int
	OpponentChips int
	YourBet       int
	OpponentBet   int

	YourCard     CardView
	OpponentCard CardView

	TurnLabel  string
	TurnActive bool

	ControlsVisible bool
	Controls        Controls
	RaiseOpen       bool

	Result Result
}

// BuildView maps a snapshot (plus the local raise sub-dialog flag) to its
// visual state. The snapshot is the sole source of truth: nothing is
// carried over from any earlier snapshot.
func BuildView(state *protocol.GameState, raiseOpen bool) View {
	v := View{
		RoomCode:      state.RoomCode,
		HandNumber:    state.HandNumber,
		Pot:           state.Pot,
		YourName:      state.YourName,
		OpponentName:  state.OpponentName,
		YourChips:     state.YourChips,
		OpponentChips: state.OpponentChips,
		YourBet:       state.YourBet,
		OpponentBet:   state.OpponentBet,
	}

	v.OpponentCard = faceUpCard(state.OpponentCard)

	// Your own card stays face down until the hand ends, even if a value
	// leaks into the payload early.
	if state.HandOver && state.YourCard != "" {
		v.YourCard = faceUpCard(state.YourCard)
	} else {
		v.YourCard = CardView{Label: "?", FaceDown: true}
	}

	if state.HandOver {
		// Turn and legal-move flags are meaningless now; no control may
		// key off them.
		v.TurnLabel = labelHandOver
		v.Result = Result{
			Visible:  true,
			Outcome:  handOutcome(state),
			NextHand: state.YourChips > 0 && state.OpponentChips > 0,
		}
		return v
	}

	v.ControlsVisible = true
	v.RaiseOpen = raiseOpen

	callAmount := state.CurrentBet - state.YourBet
	if callAmount < 0 {
		callAmount = 0
	}

	if state.IsYourTurn {
		v.TurnLabel = labelYourTurn
		v.TurnActive = true
		v.Controls = Controls{
			FoldEnabled:  true,
			CheckVisible: state.CanCheck,
			CheckEnabled: state.CanCheck,
			CallVisible:  callAmount > 0,
			CallEnabled:  callAmount > 0,
			CallAmount:   callAmount,
			RaiseEnabled: state.CanRaise,
			MinRaise:     state.MinRaise,
			RaisesLeft:   state.RaisesLeft,
		}
	} else {
		v.TurnLabel = labelWaiting
		v.Controls = Controls{
			CheckVisible: true,
			CallVisible:  true,
			CallAmount:   callAmount,
			MinRaise:     state.MinRaise,
			RaisesLeft:   state.RaisesLeft,
		}
	}

	return v
}

func faceUpCard(s string) CardView {
	card, err := deck.Parse(s)
	if err != nil {
		// Unparseable cards render as-is in the neutral style
		return CardView{Label: s}
	}
	return CardView{Label: card.String(), Red: card.IsRed()}
}

func handOutcome(state *protocol.GameState) Outcome {
	switch state.Winner {
	case state.YourName:
		return OutcomeWin
	case state.OpponentName:
		return OutcomeLose
	default:
		return OutcomeTie
	}
}
