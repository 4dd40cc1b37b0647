// Package session is the explicit client session: the signed-in user and the
// cart store, both persisted through one Storage backend instead of ambient
// lookups scattered through the UI layer.
package session

import (
	"encoding/json"
	"log"

	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/cart"
)

// UserKey is the storage key the signed-in user is persisted under.
const UserKey = "currentUser"

// User is the locally cached identity returned by the auth API.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

// Session owns the per-client state for one browsing context.
type Session struct {
	storage cart.Storage
	cart    *cart.Store
	user    *User
}

// New rehydrates the session: the saved user (if any, malformed data is
// dropped) and the cart store.
func New(storage cart.Storage) *Session {
	s := &Session{
		storage: storage,
		cart:    cart.NewStore(storage),
	}

	data, err := storage.Get(UserKey)
	if err != nil {
		return s
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		log.Printf("Failed to load saved user, starting signed out: %v", err)
		return s
	}
	s.user = &u
	return s
}

// Cart returns the session's cart store.
func (s *Session) Cart() *cart.Store {
	return s.cart
}

// CurrentUser returns the signed-in user, or nil.
func (s *Session) CurrentUser() *User {
	return s.user
}

// SignIn records the authenticated user and persists it.
func (s *Session) SignIn(u User) {
	s.user = &u
	data, err := json.Marshal(u)
	if err != nil {
		log.Printf("Failed to encode user: %v", err)
		return
	}
	if err := s.storage.Set(UserKey, data); err != nil {
		log.Printf("Failed to save user: %v", err)
	}
}

// SignOut clears the cached user. The cart survives sign-out; it belongs to
// the browsing context, not the account.
func (s *Session) SignOut() {
	s.user = nil
	if err := s.storage.Remove(UserKey); err != nil {
		log.Printf("Failed to remove saved user: %v", err)
	}
}
