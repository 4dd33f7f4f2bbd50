package favorites

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/equipbook/equipbook/shared/domain"
)

type State string

const (
	Idle         State = "idle"
	Pending      State = "pending"
	Favorited    State = "favorited"
	NotFavorited State = "not-favorited"
)

// Icons are the label of a button in each state.
const (
	IconFavorited    = "fas fa-heart"
	IconNotFavorited = "far fa-heart"
	IconPending      = "fas fa-spinner fa-spin"
)

const (
	ClassButton    = "favorite-btn"
	ClassFavorited = "favorited"
	ClassPulse     = "favorite-pulse"
)

// PulseDuration is how long the enlarge-then-restore animation of a just
// toggled button runs.
const PulseDuration = 200 * time.Millisecond

// Button is a rendered favorite toggle. Values handed out by a Document are
// snapshots; changing them does not change the document.
type Button struct {
	EquipmentId domain.EquipmentId
	State       State
	Icon        string
	Disabled    bool
	// Pulse marks a button that just changed on a successful toggle.
	Pulse bool

	previous     State
	previousIcon string
}

func newButton(id domain.EquipmentId) *Button {
	return &Button{EquipmentId: id, State: Idle, Icon: IconNotFavorited}
}

func (b Button) IsFavorited() bool {
	return b.State == Favorited
}

// Class is the value of the button's class attribute.
func (b Button) Class() string {
	classes := []string{ClassButton}
	if b.IsFavorited() {
		classes = append(classes, ClassFavorited)
	}
	if b.Pulse {
		classes = append(classes, ClassPulse)
	}
	return strings.Join(classes, " ")
}

func (b *Button) setFavorited(favorited bool) {
	if favorited {
		b.State, b.Icon = Favorited, IconFavorited
	} else {
		b.State, b.Icon = NotFavorited, IconNotFavorited
	}
}

// Document holds the favorite buttons a user currently has on screen, keyed
// by equipment id. It is safe for concurrent use.
type Document struct {
	mu      sync.Mutex
	buttons map[domain.EquipmentId]*Button
}

func NewDocument() *Document {
	return &Document{buttons: make(map[domain.EquipmentId]*Button)}
}

// Add attaches an idle button for id. A button already attached is kept as
// it is, so rendering a page twice does not reset a pending toggle.
func (d *Document) Add(id domain.EquipmentId) Button {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buttons[id]
	if !ok {
		b = newButton(id)
		d.buttons[id] = b
	}
	return *b
}

func (d *Document) Button(id domain.EquipmentId) (Button, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buttons[id]
	if !ok {
		return Button{}, false
	}
	return *b, true
}

func (d *Document) Remove(id domain.EquipmentId) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.buttons, id)
}

// Buttons returns every attached button ordered by equipment id.
func (d *Document) Buttons() []Button {
	d.mu.Lock()
	defer d.mu.Unlock()

	buttons := make([]Button, 0, len(d.buttons))
	for _, b := range d.buttons {
		buttons = append(buttons, *b)
	}
	slices.SortFunc(buttons, func(a, b Button) int {
		return cmp.Compare(a.EquipmentId, b.EquipmentId)
	})
	return buttons
}

// update runs fn on the attached button for id under the document lock. It
// reports false, without calling fn, when no such button is attached.
func (d *Document) update(id domain.EquipmentId, fn func(b *Button) error) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buttons[id]
	if !ok {
		return false, nil
	}
	return true, fn(b)
}

// Documents keeps one Document per signed-in user.
type Documents struct {
	mu     sync.Mutex
	byUser map[domain.UserId]*Document
}

func NewDocuments() *Documents {
	return &Documents{byUser: make(map[domain.UserId]*Document)}
}

func (ds *Documents) For(user domain.UserId) *Document {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	doc, ok := ds.byUser[user]
	if !ok {
		doc = NewDocument()
		ds.byUser[user] = doc
	}
	return doc
}
