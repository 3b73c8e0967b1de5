package http

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

// flashSessionName is the cookie holding pending flash messages.
const flashSessionName = "keygen_flash"

// FlashStore carries one-shot notices across a redirect in a signed session
// cookie. Messages added during one request are shown on the next page load
// and then discarded.
type FlashStore struct {
	store *sessions.CookieStore
}

// NewFlashStore creates a flash store signing its cookies with secretKey.
func NewFlashStore(secretKey string) *FlashStore {
	store := sessions.NewCookieStore([]byte(secretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
	}
	return &FlashStore{store: store}
}

// Add queues a notice to be displayed on the next rendered page.
func (f *FlashStore) Add(c echo.Context, message string) error {
	// Get returns a fresh session on decode errors
	session, _ := f.store.Get(c.Request(), flashSessionName)
	session.AddFlash(message)
	return session.Save(c.Request(), c.Response())
}

// Pop returns all pending notices and clears them from the cookie.
func (f *FlashStore) Pop(c echo.Context) []string {
	session, _ := f.store.Get(c.Request(), flashSessionName)

	flashes := session.Flashes()
	if len(flashes) > 0 {
		// Saving after Flashes() clears them from the cookie
		_ = session.Save(c.Request(), c.Response())
	}

	messages := make([]string, 0, len(flashes))
	for _, flash := range flashes {
		if msg, ok := flash.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
