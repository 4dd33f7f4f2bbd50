// Package favorites drives the favorite buttons: one toggle at a time per
// button, and a bulk pass that aligns every button with the user's listing.
package favorites

//go:generate mockgen -source=controller.go -destination=mock/controller.go -package=mock

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"

	"github.com/equipbook/equipbook/frontend/internal/notify"
	"github.com/equipbook/equipbook/shared/api"
	"github.com/equipbook/equipbook/shared/domain"
	"github.com/equipbook/equipbook/shared/logger"
)

var (
	// ErrPending rejects a click on a button whose toggle is still in flight.
	ErrPending        = errors.New("favorite toggle already in progress")
	ErrNoButton       = errors.New("no favorite button for this equipment")
	ErrAlreadyMounted = errors.New("favorite toggle route already mounted")
)

const (
	ToggleRoute = "/equipment/{id}/favorite"

	msgToggleFailed = "Failed to update favorites"
)

type Toggler interface {
	ToggleFavorite(r *http.Request, id domain.EquipmentId) api.ToggleFavoriteResult
}

type Lister interface {
	GetUserFavorites(r *http.Request) api.UserFavoritesResponse
}

// Notifier receives the one notification each toggle produces.
type Notifier interface {
	Notify(message string, severity notify.Severity)
}

type Controller struct {
	toggler Toggler
	lister  Lister
	mounted atomic.Bool
}

func NewController(toggler Toggler, lister Lister) *Controller {
	return &Controller{toggler: toggler, lister: lister}
}

// Toggle handles a click on the button for id. The button is disabled for
// the duration of the backend call; the outcome is applied only if the
// button is still attached when the call returns. The server decides the
// direction and its answer is trusted.
func (c *Controller) Toggle(r *http.Request, doc *Document, id domain.EquipmentId, n Notifier) (api.ToggleFavoriteResult, error) {
	attached, err := doc.update(id, func(b *Button) error {
		if b.Disabled {
			return ErrPending
		}
		b.previous, b.previousIcon = b.State, b.Icon
		b.State, b.Icon = Pending, IconPending
		b.Disabled = true
		b.Pulse = false
		return nil
	})
	if err != nil {
		return api.ToggleFavoriteResult{}, err
	}
	if !attached {
		return api.ToggleFavoriteResult{}, ErrNoButton
	}

	result := c.toggler.ToggleFavorite(r, id)

	attached, _ = doc.update(id, func(b *Button) error {
		b.Disabled = false
		if result.Success {
			b.setFavorited(result.Favorited)
			b.Pulse = true
		} else {
			b.State, b.Icon = b.previous, b.previousIcon
		}
		return nil
	})
	if !attached {
		logger.Log.Debug("favorite button detached before toggle completed", "equipment_id", id)
	}

	switch {
	case !result.Success:
		message := result.Error
		if message == "" {
			message = msgToggleFailed
		}
		n.Notify(message, notify.Error)
	case result.Favorited:
		n.Notify(result.Message, notify.Success)
	default:
		n.Notify(result.Message, notify.Info)
	}
	return result, nil
}

// Reconcile sets every idle or settled button from the user's favorites
// listing. Buttons with a toggle in flight are left to that toggle. When the
// listing cannot be loaded nothing changes and false is returned.
func (c *Controller) Reconcile(r *http.Request, doc *Document) bool {
	listing := c.lister.GetUserFavorites(r)
	if !listing.Success {
		return false
	}
	favorites := domain.NewFavoriteSet(listing.Favorites)

	doc.mu.Lock()
	defer doc.mu.Unlock()
	for id, b := range doc.buttons {
		if b.Disabled {
			continue
		}
		b.setFavorited(favorites.Contains(id))
		b.Pulse = false
	}
	return true
}

// Mount registers the toggle handler. Every button on every page posts to
// the same route, so it is registered exactly once.
func (c *Controller) Mount(router chi.Router, handler http.HandlerFunc) error {
	if !c.mounted.CompareAndSwap(false, true) {
		return ErrAlreadyMounted
	}
	router.Post(ToggleRoute, handler)
	return nil
}
