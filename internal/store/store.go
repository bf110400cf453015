// Package store is the single source of truth for all mutable app data.
// Every mutator applies its change under one lock and writes the whole
// serialized tree to the snapshot repository before returning, so the
// persisted state never captures a half-applied mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kaepilz/ghar-joy/internal/models"
	"github.com/Kaepilz/ghar-joy/internal/progression"
	"github.com/Kaepilz/ghar-joy/internal/storage"
)

// DefaultSpins is the spin allowance a fresh store starts with.
const DefaultSpins = 3

var (
	// ErrUserNotFound is returned when a user ID has no record.
	ErrUserNotFound = errors.New("store: user not found")
	// ErrPostNotFound is returned when a post ID has no record.
	ErrPostNotFound = errors.New("store: post not found")
	// ErrInsufficientTokens is returned when a spend exceeds the balance.
	ErrInsufficientTokens = errors.New("store: insufficient bazaar tokens")
	// ErrNoSpinsLeft is returned when the spin counter is already zero.
	ErrNoSpinsLeft = errors.New("store: no spins available")
)

// state is the serialized store tree. Field names match the blob layout the
// web client persisted, so old exports still rehydrate.
type state struct {
	CurrentUserID  string                 `json:"currentUser"`
	Users          []*models.User         `json:"users"`
	Products       []*models.Product      `json:"products"`
	Posts          []*models.Post         `json:"posts"`
	Wishlist       []*models.WishlistItem `json:"wishlist"`
	SpinResults    []*models.SpinResult   `json:"spinResults"`
	SpinsAvailable int                    `json:"spinsAvailable"`
	MentorChat     []*models.ChatMessage  `json:"mentorChat"`
	BargainChat    []*models.ChatMessage  `json:"bargainChat"`
}

func defaultState() state {
	return state{SpinsAvailable: DefaultSpins}
}

// Store holds the state tree behind a single mutex.
type Store struct {
	mu   sync.Mutex
	st   state
	repo storage.Repository
	log  *zap.SugaredLogger
	now  func() time.Time
}

// Open rehydrates a store from the repository. A missing or malformed
// snapshot falls back to defaults instead of failing startup.
func Open(ctx context.Context, repo storage.Repository, log *zap.SugaredLogger) (*Store, error) {
	s := &Store{
		st:   defaultState(),
		repo: repo,
		log:  log,
		now:  time.Now,
	}

	blob, found, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		var st state
		if err := json.Unmarshal(blob, &st); err != nil {
			log.Warnw("snapshot is corrupt, starting from defaults", "error", err)
		} else {
			s.st = st
		}
	}
	return s, nil
}

// persistLocked serializes the whole tree and hands it to the repository.
// Callers must hold the mutex.
func (s *Store) persistLocked() {
	blob, err := json.Marshal(s.st)
	if err != nil {
		s.log.Errorw("marshal state failed", "error", err)
		return
	}
	if err := s.repo.Save(context.Background(), blob); err != nil {
		s.log.Errorw("persist state failed", "error", err)
	}
}

func (s *Store) newID() string {
	return uuid.NewString()
}

func (s *Store) userLocked(id string) *models.User {
	for _, u := range s.st.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func copyUser(u *models.User) models.User {
	out := *u
	out.Friends = append([]string(nil), u.Friends...)
	return out
}

// === Users ===

// AddUser registers a user. The stored level is recomputed from XP so the
// two can never drift.
func (s *Store) AddUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == "" {
		u.ID = s.newID()
	}
	if u.JoinedDate.IsZero() {
		u.JoinedDate = s.now()
	}
	if u.Friends == nil {
		u.Friends = []string{}
	}
	u.Level = progression.LevelFor(u.XP)

	stored := u
	s.st.Users = append(s.st.Users, &stored)
	s.persistLocked()
	return copyUser(&stored)
}

// SetCurrentUser marks the session user. The user must exist.
func (s *Store) SetCurrentUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userLocked(id) == nil {
		return ErrUserNotFound
	}
	s.st.CurrentUserID = id
	s.persistLocked()
	return nil
}

// CurrentUser returns the session user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.userLocked(s.st.CurrentUserID)
	if u == nil {
		return models.User{}, false
	}
	return copyUser(u), true
}

// UserByID looks up a user.
func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.userLocked(id)
	if u == nil {
		return models.User{}, false
	}
	return copyUser(u), true
}

// UserByUsername looks up a user by username.
func (s *Store) UserByUsername(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.st.Users {
		if u.Username == username {
			return copyUser(u), true
		}
	}
	return models.User{}, false
}

// Users returns all users.
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, 0, len(s.st.Users))
	for _, u := range s.st.Users {
		out = append(out, copyUser(u))
	}
	return out
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Name     string
	Email    string
	Avatar   string
	Bio      string
	Location string
}

// UpdateProfile edits a user's profile fields. Name and email are required.
func (s *Store) UpdateProfile(id string, upd ProfileUpdate) (models.User, error) {
	if upd.Name == "" || upd.Email == "" {
		return models.User{}, errors.New("store: name and email are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.userLocked(id)
	if u == nil {
		return models.User{}, ErrUserNotFound
	}
	u.Name = upd.Name
	u.Email = upd.Email
	u.Avatar = upd.Avatar
	u.Bio = upd.Bio
	u.Location = upd.Location
	s.persistLocked()
	return copyUser(u), nil
}

// === Friends ===

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// AddFriend links two users symmetrically in one mutation. Adding an
// existing friend is a no-op.
func (s *Store) AddFriend(userID, friendID string) error {
	if userID == friendID {
		return errors.New("store: cannot befriend yourself")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, f := s.userLocked(userID), s.userLocked(friendID)
	if u == nil || f == nil {
		return ErrUserNotFound
	}
	if !contains(u.Friends, friendID) {
		u.Friends = append(u.Friends, friendID)
	}
	if !contains(f.Friends, userID) {
		f.Friends = append(f.Friends, userID)
	}
	s.persistLocked()
	return nil
}

// RemoveFriend unlinks both directions in one mutation.
func (s *Store) RemoveFriend(userID, friendID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, f := s.userLocked(userID), s.userLocked(friendID)
	if u == nil || f == nil {
		return ErrUserNotFound
	}
	u.Friends = remove(u.Friends, friendID)
	f.Friends = remove(f.Friends, userID)
	s.persistLocked()
	return nil
}

// MutualFriends returns users befriended by both.
func (s *Store) MutualFriends(user1ID, user2ID string) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u1, u2 := s.userLocked(user1ID), s.userLocked(user2ID)
	if u1 == nil || u2 == nil {
		return nil
	}
	var out []models.User
	for _, id := range u1.Friends {
		if contains(u2.Friends, id) {
			if m := s.userLocked(id); m != nil {
				out = append(out, copyUser(m))
			}
		}
	}
	return out
}

// === Bazaar tokens & XP ===

// AddBazaarTokens credits a user's token balance.
func (s *Store) AddBazaarTokens(userID string, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.userLocked(userID)
	if u == nil {
		return ErrUserNotFound
	}
	u.BazaarTokens += amount
	s.persistLocked()
	return nil
}

// SpendBazaarTokens debits the balance. It fails without touching the
// balance when the user cannot cover the amount.
func (s *Store) SpendBazaarTokens(userID string, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.userLocked(userID)
	if u == nil {
		return ErrUserNotFound
	}
	if amount > u.BazaarTokens {
		return ErrInsufficientTokens
	}
	u.BazaarTokens -= amount
	s.persistLocked()
	return nil
}

// XPGrant reports the outcome of an XP award.
type XPGrant struct {
	XP        int              `json:"xp"`
	LeveledUp bool             `json:"leveledUp"`
	Level     progression.Info `json:"level"`
}

// AddXP awards XP and recomputes the stored level through the level table.
func (s *Store) AddXP(userID string, amount int) (XPGrant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.userLocked(userID)
	if u == nil {
		return XPGrant{}, ErrUserNotFound
	}
	before := u.Level
	u.XP += amount
	if u.XP < 0 {
		u.XP = 0
	}
	info := progression.Resolve(u.XP)
	u.Level = info.Level.Level
	s.persistLocked()
	return XPGrant{XP: u.XP, LeveledUp: u.Level > before, Level: info}, nil
}

// === Products ===

// AddProduct stores a new listing. Products are immutable once created.
func (s *Store) AddProduct(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = s.newID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	stored := p
	s.st.Products = append(s.st.Products, &stored)
	s.persistLocked()
	return stored
}

// ProductByID looks up a product.
func (s *Store) ProductByID(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.st.Products {
		if p.ID == id {
			return *p, true
		}
	}
	return models.Product{}, false
}

// Products returns all listings.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, 0, len(s.st.Products))
	for _, p := range s.st.Products {
		out = append(out, *p)
	}
	return out
}

// ProductsBySeller returns the listings owned by a seller.
func (s *Store) ProductsBySeller(sellerID string) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Product
	for _, p := range s.st.Products {
		if p.SellerID == sellerID {
			out = append(out, *p)
		}
	}
	return out
}
