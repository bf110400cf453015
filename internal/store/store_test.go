package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Kaepilz/ghar-joy/internal/models"
	"github.com/Kaepilz/ghar-joy/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	repo, err := storage.NewFileRepository(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	s, err := Open(context.Background(), repo, zap.NewNop().Sugar())
	require.NoError(t, err)
	return s
}

func addUser(t *testing.T, s *Store, username string) models.User {
	t.Helper()
	return s.AddUser(models.User{Username: username, Name: username, Email: username + "@example.com"})
}

func TestAddUserDefaults(t *testing.T) {
	s := newTestStore(t)
	u := addUser(t, s, "ramesh")

	assert.NotEmpty(t, u.ID)
	assert.False(t, u.JoinedDate.IsZero())
	assert.Equal(t, 1, u.Level)
	assert.NotNil(t, u.Friends)
}

func TestSetCurrentUser(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.CurrentUser()
	assert.False(t, ok)

	require.ErrorIs(t, s.SetCurrentUser("ghost"), ErrUserNotFound)

	u := addUser(t, s, "ramesh")
	require.NoError(t, s.SetCurrentUser(u.ID))
	cur, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, u.ID, cur.ID)
}

func TestUpdateProfileRequiresNameAndEmail(t *testing.T) {
	s := newTestStore(t)
	u := addUser(t, s, "ramesh")

	_, err := s.UpdateProfile(u.ID, ProfileUpdate{Name: "", Email: "r@example.com"})
	assert.Error(t, err)

	got, err := s.UpdateProfile(u.ID, ProfileUpdate{Name: "Ramesh", Email: "r@example.com", Bio: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Bio)
}

func TestFriendSymmetry(t *testing.T) {
	s := newTestStore(t)
	a := addUser(t, s, "a")
	b := addUser(t, s, "b")

	require.NoError(t, s.AddFriend(a.ID, b.ID))
	// Adding again is a no-op, not a duplicate entry.
	require.NoError(t, s.AddFriend(b.ID, a.ID))

	gotA, _ := s.UserByID(a.ID)
	gotB, _ := s.UserByID(b.ID)
	assert.Equal(t, []string{b.ID}, gotA.Friends)
	assert.Equal(t, []string{a.ID}, gotB.Friends)

	require.NoError(t, s.RemoveFriend(a.ID, b.ID))
	gotA, _ = s.UserByID(a.ID)
	gotB, _ = s.UserByID(b.ID)
	assert.Empty(t, gotA.Friends)
	assert.Empty(t, gotB.Friends)
}

func TestAddFriendRejectsSelf(t *testing.T) {
	s := newTestStore(t)
	a := addUser(t, s, "a")
	assert.Error(t, s.AddFriend(a.ID, a.ID))
}

func TestMutualFriends(t *testing.T) {
	s := newTestStore(t)
	a := addUser(t, s, "a")
	b := addUser(t, s, "b")
	c := addUser(t, s, "c")

	require.NoError(t, s.AddFriend(a.ID, c.ID))
	require.NoError(t, s.AddFriend(b.ID, c.ID))

	mutual := s.MutualFriends(a.ID, b.ID)
	require.Len(t, mutual, 1)
	assert.Equal(t, c.ID, mutual[0].ID)

	assert.Empty(t, s.MutualFriends(a.ID, c.ID))
}

func TestSpendTokensFailureLeavesBalance(t *testing.T) {
	s := newTestStore(t)
	u := addUser(t, s, "ramesh")

	require.NoError(t, s.AddBazaarTokens(u.ID, 10))
	require.ErrorIs(t, s.SpendBazaarTokens(u.ID, 11), ErrInsufficientTokens)

	got, _ := s.UserByID(u.ID)
	assert.Equal(t, 10, got.BazaarTokens)

	require.NoError(t, s.SpendBazaarTokens(u.ID, 10))
	got, _ = s.UserByID(u.ID)
	assert.Equal(t, 0, got.BazaarTokens)
}

func TestAddXPRecomputesLevel(t *testing.T) {
	s := newTestStore(t)
	u := addUser(t, s, "ramesh")

	grant, err := s.AddXP(u.ID, 99)
	require.NoError(t, err)
	assert.False(t, grant.LeveledUp)
	assert.Equal(t, 1, grant.Level.Level.Level)

	grant, err = s.AddXP(u.ID, 1)
	require.NoError(t, err)
	assert.True(t, grant.LeveledUp)
	assert.Equal(t, 2, grant.Level.Level.Level)

	got, _ := s.UserByID(u.ID)
	assert.Equal(t, 100, got.XP)
	assert.Equal(t, 2, got.Level)
}

func TestAddXPClampsAtZero(t *testing.T) {
	s := newTestStore(t)
	u := addUser(t, s, "ramesh")

	grant, err := s.AddXP(u.ID, -500)
	require.NoError(t, err)
	assert.Equal(t, 0, grant.XP)
	assert.Equal(t, 1, grant.Level.Level.Level)
}

func TestLikePostIdempotent(t *testing.T) {
	s := newTestStore(t)
	u := addUser(t, s, "ramesh")
	p := s.AddPost(models.Post{UserID: u.ID, Content: "selling my bike"})

	got, err := s.LikePost(p.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{u.ID}, got.Likes)

	got, err = s.LikePost(p.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{u.ID}, got.Likes)

	got, err = s.UnlikePost(p.ID, u.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Likes)

	// Unliking again stays a no-op.
	got, err = s.UnlikePost(p.ID, u.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Likes)
}

func TestPostsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	u := addUser(t, s, "ramesh")
	s.AddPost(models.Post{UserID: u.ID, Content: "first"})
	s.AddPost(models.Post{UserID: u.ID, Content: "second"})

	posts := s.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].Content)
	assert.Equal(t, "first", posts[1].Content)
}

func TestAddComment(t *testing.T) {
	s := newTestStore(t)
	u := addUser(t, s, "ramesh")
	p := s.AddPost(models.Post{UserID: u.ID, Content: "selling my bike"})

	got, err := s.AddComment(p.ID, models.Comment{UserID: u.ID, Content: "still available?"})
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.NotEmpty(t, got.Comments[0].ID)
	assert.False(t, got.Comments[0].CreatedAt.IsZero())

	_, err = s.AddComment("missing", models.Comment{UserID: u.ID, Content: "hi"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestWishlistIdempotent(t *testing.T) {
	s := newTestStore(t)
	u := addUser(t, s, "ramesh")

	first := s.AddToWishlist(u.ID, "prod_1")
	second := s.AddToWishlist(u.ID, "prod_1")
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, s.WishlistByUser(u.ID), 1)
	assert.True(t, s.IsInWishlist(u.ID, "prod_1"))

	s.RemoveFromWishlist(u.ID, "prod_1")
	assert.False(t, s.IsInWishlist(u.ID, "prod_1"))

	// Removing a missing pair does nothing.
	s.RemoveFromWishlist(u.ID, "prod_1")
	assert.Empty(t, s.WishlistByUser(u.ID))
}

func TestSpinCounterFloorsAtZero(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, DefaultSpins, s.SpinsAvailable())

	for i := DefaultSpins - 1; i >= 0; i-- {
		left, err := s.UseSpin()
		require.NoError(t, err)
		assert.Equal(t, i, left)
	}

	_, err := s.UseSpin()
	assert.ErrorIs(t, err, ErrNoSpinsLeft)
	assert.Equal(t, 0, s.SpinsAvailable())

	assert.Equal(t, 1, s.GrantSpin())
}

func TestClaimSpinResultOneWay(t *testing.T) {
	s := newTestStore(t)
	r := s.AddSpinResult(models.SpinResult{Value: "🎁 Free Gift!", Type: models.SpinGift})
	require.NotEmpty(t, r.ID)
	assert.False(t, r.Claimed)

	got, err := s.ClaimSpinResult(r.ID)
	require.NoError(t, err)
	assert.True(t, got.Claimed)

	got, err = s.ClaimSpinResult(r.ID)
	require.NoError(t, err)
	assert.True(t, got.Claimed)

	_, err = s.ClaimSpinResult("missing")
	assert.Error(t, err)
}

func TestChatLogsAreIndependent(t *testing.T) {
	s := newTestStore(t)
	s.AppendChatMessage(MentorChat, models.ChatMessage{Sender: models.SenderUser, Content: "hi mentor"})
	s.AppendChatMessage(BargainChat, models.ChatMessage{Sender: models.SenderUser, Content: "hi bargain"})

	mentor := s.ChatMessages(MentorChat)
	require.Len(t, mentor, 1)
	assert.Equal(t, "hi mentor", mentor[0].Content)
	require.Len(t, s.ChatMessages(BargainChat), 1)

	s.ClearChat(MentorChat)
	assert.Empty(t, s.ChatMessages(MentorChat))
	assert.Len(t, s.ChatMessages(BargainChat), 1)
}

func TestPersistenceRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	repo, err := storage.NewFileRepository(path)
	require.NoError(t, err)
	s, err := Open(context.Background(), repo, zap.NewNop().Sugar())
	require.NoError(t, err)

	u := addUser(t, s, "ramesh")
	require.NoError(t, s.SetCurrentUser(u.ID))
	require.NoError(t, s.AddBazaarTokens(u.ID, 42))
	s.AddPost(models.Post{UserID: u.ID, Content: "hello"})
	_, err = s.UseSpin()
	require.NoError(t, err)

	// Reopen from the same file and check the tree came back whole.
	repo2, err := storage.NewFileRepository(path)
	require.NoError(t, err)
	s2, err := Open(context.Background(), repo2, zap.NewNop().Sugar())
	require.NoError(t, err)

	cur, ok := s2.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, u.ID, cur.ID)
	assert.Equal(t, 42, cur.BazaarTokens)
	require.Len(t, s2.Posts(), 1)
	assert.Equal(t, DefaultSpins-1, s2.SpinsAvailable())
}

func TestCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo, err := storage.NewFileRepository(path)
	require.NoError(t, err)
	s, err := Open(context.Background(), repo, zap.NewNop().Sugar())
	require.NoError(t, err)

	assert.Empty(t, s.Users())
	assert.Equal(t, DefaultSpins, s.SpinsAvailable())
}
