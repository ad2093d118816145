package game

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// ErrNotEnoughChips is returned when the chips balance cannot cover a cost
var ErrNotEnoughChips = UserError("not enough chips")

// ErrNotEnoughMoney is returned when a purchase would drop money below the spending floor
var ErrNotEnoughMoney = UserError("not enough money")

// ErrHandFull is returned when drawing into a full hand
var ErrHandFull = UserError("hand is full")

// ErrNoCardsLeft is returned when both the deck and discard pile are empty
var ErrNoCardsLeft = UserError("no cards left to draw")

// ErrInvalidHandIndex is returned when a hand position does not exist
var ErrInvalidHandIndex = UserError("invalid hand index")

// ErrSlotLocked is returned when placing a card in a locked or missing slot
var ErrSlotLocked = UserError("slot is locked")

// ErrAllSlotsUnlocked is returned when buying a slot past the maximum
var ErrAllSlotsUnlocked = UserError("every slot is already unlocked")

// ErrUnknownJoker is returned when a joker id is not in the catalog
var ErrUnknownJoker = UserError("unknown joker")

// ErrJokersFull is returned when the joker collection is at capacity
var ErrJokersFull = UserError("no room for another joker")

// ErrInvalidJokerIndex is returned when an owned joker position does not exist
var ErrInvalidJokerIndex = UserError("invalid joker index")

// ErrUnknownPack is returned when a pack id is not in the catalog
var ErrUnknownPack = UserError("unknown pack")

// ErrPackAlreadyOpen is returned when buying a pack while another is open
var ErrPackAlreadyOpen = UserError("a pack is already open")

// ErrNoPackOpen is returned when resolving or skipping without an open pack
var ErrNoPackOpen = UserError("no pack is open")
