package favorites

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/equipbook/equipbook/frontend/internal/favorites/mock"
	"github.com/equipbook/equipbook/frontend/internal/notify"
	"github.com/equipbook/equipbook/shared/api"
	"github.com/equipbook/equipbook/shared/domain"
)

// --- hand-written mocks ---

type MockBackend struct {
	MockToggleFavorite   func(r *http.Request, id domain.EquipmentId) api.ToggleFavoriteResult
	MockGetUserFavorites func(r *http.Request) api.UserFavoritesResponse
}

func (m *MockBackend) ToggleFavorite(r *http.Request, id domain.EquipmentId) api.ToggleFavoriteResult {
	if m.MockToggleFavorite != nil {
		return m.MockToggleFavorite(r, id)
	}
	return api.ToggleFavoriteResult{Success: true, Favorited: true, Message: "Added to favorites"}
}

func (m *MockBackend) GetUserFavorites(r *http.Request) api.UserFavoritesResponse {
	if m.MockGetUserFavorites != nil {
		return m.MockGetUserFavorites(r)
	}
	return api.UserFavoritesResponse{Success: true, Favorites: []domain.Equipment{}}
}

type notification struct {
	Message  string
	Severity notify.Severity
}

type recordingNotifier struct {
	mu   sync.Mutex
	seen []notification
}

func (n *recordingNotifier) Notify(message string, severity notify.Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seen = append(n.seen, notification{message, severity})
}

func clickRequest(id string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/equipment/"+id+"/favorite", nil)
}

// --- Toggle ---

func TestToggle_FavoritesUnfavoritedButton(t *testing.T) {
	ctrl := gomock.NewController(t)
	toggler := mock.NewMockToggler(ctrl)
	notifier := mock.NewMockNotifier(ctrl)
	c := NewController(toggler, mock.NewMockLister(ctrl))

	doc := NewDocument()
	doc.Add(7)

	toggler.EXPECT().ToggleFavorite(gomock.Any(), domain.EquipmentId(7)).
		DoAndReturn(func(r *http.Request, id domain.EquipmentId) api.ToggleFavoriteResult {
			b, ok := doc.Button(7)
			require.True(t, ok)
			assert.True(t, b.Disabled, "button is disabled while the request is in flight")
			assert.Equal(t, Pending, b.State)
			assert.Equal(t, IconPending, b.Icon)
			return api.ToggleFavoriteResult{Success: true, Favorited: true, Message: "ok"}
		})
	notifier.EXPECT().Notify("ok", notify.Success).Times(1)

	result, err := c.Toggle(clickRequest("7"), doc, 7, notifier)

	require.NoError(t, err)
	assert.True(t, result.Favorited)
	b, _ := doc.Button(7)
	assert.False(t, b.Disabled)
	assert.Equal(t, Favorited, b.State)
	assert.Equal(t, IconFavorited, b.Icon)
	assert.Contains(t, b.Class(), ClassFavorited)
	assert.True(t, b.Pulse)
}

func TestToggle_RemovedNotifiesInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	toggler := mock.NewMockToggler(ctrl)
	notifier := mock.NewMockNotifier(ctrl)
	c := NewController(toggler, mock.NewMockLister(ctrl))

	doc := NewDocument()
	doc.Add(4)
	doc.update(4, func(b *Button) error { b.setFavorited(true); return nil })

	toggler.EXPECT().ToggleFavorite(gomock.Any(), domain.EquipmentId(4)).
		Return(api.ToggleFavoriteResult{Success: true, Favorited: false, Message: "Removed from favorites"})
	notifier.EXPECT().Notify("Removed from favorites", notify.Info)

	_, err := c.Toggle(clickRequest("4"), doc, 4, notifier)

	require.NoError(t, err)
	b, _ := doc.Button(4)
	assert.Equal(t, NotFavorited, b.State)
	assert.NotContains(t, b.Class(), ClassFavorited)
}

func TestToggle_FailureRestoresButton(t *testing.T) {
	tests := []struct {
		name    string
		result  api.ToggleFavoriteResult
		message string
	}{
		{"server message", api.ToggleFavoriteResult{Success: false, Error: "login required"}, "login required"},
		{"generic message", api.ToggleFavoriteResult{Success: false}, "Failed to update favorites"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &MockBackend{
				MockToggleFavorite: func(r *http.Request, id domain.EquipmentId) api.ToggleFavoriteResult {
					return tt.result
				},
			}
			notifier := &recordingNotifier{}
			c := NewController(backend, backend)

			doc := NewDocument()
			doc.Add(2)
			doc.update(2, func(b *Button) error { b.setFavorited(true); return nil })

			result, err := c.Toggle(clickRequest("2"), doc, 2, notifier)

			require.NoError(t, err)
			assert.False(t, result.Success)
			b, _ := doc.Button(2)
			assert.False(t, b.Disabled)
			assert.Equal(t, Favorited, b.State)
			assert.Equal(t, IconFavorited, b.Icon)
			assert.False(t, b.Pulse)
			assert.Equal(t, []notification{{tt.message, notify.Error}}, notifier.seen)
		})
	}
}

func TestToggle_RejectsClickWhilePending(t *testing.T) {
	ctrl := gomock.NewController(t)
	toggler := mock.NewMockToggler(ctrl)
	notifier := mock.NewMockNotifier(ctrl)
	c := NewController(toggler, mock.NewMockLister(ctrl))

	doc := NewDocument()
	doc.Add(7)

	toggler.EXPECT().ToggleFavorite(gomock.Any(), domain.EquipmentId(7)).
		DoAndReturn(func(r *http.Request, id domain.EquipmentId) api.ToggleFavoriteResult {
			_, err := c.Toggle(r, doc, 7, notifier)
			assert.ErrorIs(t, err, ErrPending)
			return api.ToggleFavoriteResult{Success: true, Favorited: true, Message: "Added to favorites"}
		}).
		Times(1)
	notifier.EXPECT().Notify(gomock.Any(), notify.Success).Times(1)

	_, err := c.Toggle(clickRequest("7"), doc, 7, notifier)
	require.NoError(t, err)
}

func TestToggle_DetachedButtonIsLeftAlone(t *testing.T) {
	notifier := &recordingNotifier{}
	doc := NewDocument()
	doc.Add(7)
	backend := &MockBackend{
		MockToggleFavorite: func(r *http.Request, id domain.EquipmentId) api.ToggleFavoriteResult {
			doc.Remove(7)
			return api.ToggleFavoriteResult{Success: true, Favorited: true, Message: "Added to favorites"}
		},
	}
	c := NewController(backend, backend)

	result, err := c.Toggle(clickRequest("7"), doc, 7, notifier)

	require.NoError(t, err)
	assert.True(t, result.Success)
	_, ok := doc.Button(7)
	assert.False(t, ok, "removed button must not come back")
	assert.Len(t, notifier.seen, 1)
}

func TestToggle_NoButton(t *testing.T) {
	backend := &MockBackend{
		MockToggleFavorite: func(r *http.Request, id domain.EquipmentId) api.ToggleFavoriteResult {
			t.Fatal("backend must not be called")
			return api.ToggleFavoriteResult{}
		},
	}
	notifier := &recordingNotifier{}

	_, err := NewController(backend, backend).Toggle(clickRequest("1"), NewDocument(), 1, notifier)

	assert.ErrorIs(t, err, ErrNoButton)
	assert.Empty(t, notifier.seen)
}

func TestToggle_IndependentButtonsRace(t *testing.T) {
	release := make(chan struct{})
	backend := &MockBackend{
		MockToggleFavorite: func(r *http.Request, id domain.EquipmentId) api.ToggleFavoriteResult {
			<-release
			return api.ToggleFavoriteResult{Success: true, Favorited: id == 1, Message: "done"}
		},
	}
	notifier := &recordingNotifier{}
	c := NewController(backend, backend)
	doc := NewDocument()
	doc.Add(1)
	doc.Add(2)

	var wg sync.WaitGroup
	for _, id := range []domain.EquipmentId{1, 2} {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Toggle(clickRequest("x"), doc, id, notifier)
			assert.NoError(t, err)
		}()
	}
	close(release)
	wg.Wait()

	b1, _ := doc.Button(1)
	b2, _ := doc.Button(2)
	assert.Equal(t, Favorited, b1.State)
	assert.Equal(t, NotFavorited, b2.State)
	assert.Len(t, notifier.seen, 2)
}

// --- Reconcile ---

func TestReconcile(t *testing.T) {
	backend := &MockBackend{
		MockGetUserFavorites: func(r *http.Request) api.UserFavoritesResponse {
			return api.UserFavoritesResponse{Success: true, Favorites: []domain.Equipment{{Id: 3}, {Id: 9}}}
		},
	}
	c := NewController(backend, backend)
	doc := NewDocument()
	for _, id := range []domain.EquipmentId{3, 5, 9} {
		doc.Add(id)
	}

	ok := c.Reconcile(httptest.NewRequest(http.MethodGet, "/equipment", nil), doc)

	require.True(t, ok)
	b3, _ := doc.Button(3)
	b5, _ := doc.Button(5)
	b9, _ := doc.Button(9)
	assert.Equal(t, "favorite-btn favorited", b3.Class())
	assert.Equal(t, IconFavorited, b3.Icon)
	assert.Equal(t, "favorite-btn", b5.Class())
	assert.Equal(t, IconNotFavorited, b5.Icon)
	assert.Equal(t, "favorite-btn favorited", b9.Class())
}

func TestReconcile_ListingFailureChangesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mock.NewMockLister(ctrl)
	lister.EXPECT().GetUserFavorites(gomock.Any()).
		Return(api.UserFavoritesResponse{Success: false, Favorites: []domain.Equipment{}})
	c := NewController(mock.NewMockToggler(ctrl), lister)

	doc := NewDocument()
	doc.Add(3)
	doc.update(3, func(b *Button) error { b.setFavorited(true); return nil })

	assert.False(t, c.Reconcile(httptest.NewRequest(http.MethodGet, "/", nil), doc))
	b, _ := doc.Button(3)
	assert.Equal(t, Favorited, b.State)
}

func TestReconcile_SkipsPendingButtons(t *testing.T) {
	backend := &MockBackend{
		MockGetUserFavorites: func(r *http.Request) api.UserFavoritesResponse {
			return api.UserFavoritesResponse{Success: true, Favorites: []domain.Equipment{{Id: 1}}}
		},
	}
	c := NewController(backend, backend)
	doc := NewDocument()
	doc.Add(1)
	doc.update(1, func(b *Button) error { b.State, b.Icon, b.Disabled = Pending, IconPending, true; return nil })

	c.Reconcile(httptest.NewRequest(http.MethodGet, "/", nil), doc)

	b, _ := doc.Button(1)
	assert.Equal(t, Pending, b.State)
}

// --- Mount ---

func TestMount(t *testing.T) {
	backend := &MockBackend{}
	c := NewController(backend, backend)
	router := chi.NewRouter()
	var gotID string
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotID = chi.URLParam(r, "id")
		w.WriteHeader(http.StatusNoContent)
	}

	require.NoError(t, c.Mount(router, handler))
	assert.ErrorIs(t, c.Mount(router, handler), ErrAlreadyMounted)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, clickRequest("12"))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "12", gotID)
}
