package store

import (
	"github.com/Kaepilz/ghar-joy/internal/models"
)

func copyPost(p *models.Post) models.Post {
	out := *p
	out.Likes = append([]string(nil), p.Likes...)
	out.Comments = append([]models.Comment(nil), p.Comments...)
	return out
}

func (s *Store) postLocked(id string) *models.Post {
	for _, p := range s.st.Posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// === Posts ===

// AddPost prepends a post to the feed (newest first).
func (s *Store) AddPost(p models.Post) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = s.newID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	if p.Likes == nil {
		p.Likes = []string{}
	}
	if p.Comments == nil {
		p.Comments = []models.Comment{}
	}
	stored := p
	s.st.Posts = append([]*models.Post{&stored}, s.st.Posts...)
	s.persistLocked()
	return copyPost(&stored)
}

// Posts returns the feed, newest first.
func (s *Store) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Post, 0, len(s.st.Posts))
	for _, p := range s.st.Posts {
		out = append(out, copyPost(p))
	}
	return out
}

// PostsByUser returns a user's posts.
func (s *Store) PostsByUser(userID string) []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Post
	for _, p := range s.st.Posts {
		if p.UserID == userID {
			out = append(out, copyPost(p))
		}
	}
	return out
}

// LikePost records a like. Liking twice is the same as liking once.
func (s *Store) LikePost(postID, userID string) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.postLocked(postID)
	if p == nil {
		return models.Post{}, ErrPostNotFound
	}
	if !contains(p.Likes, userID) {
		p.Likes = append(p.Likes, userID)
		s.persistLocked()
	}
	return copyPost(p), nil
}

// UnlikePost removes a like. Unliking a non-liker is a no-op.
func (s *Store) UnlikePost(postID, userID string) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.postLocked(postID)
	if p == nil {
		return models.Post{}, ErrPostNotFound
	}
	if contains(p.Likes, userID) {
		p.Likes = remove(p.Likes, userID)
		s.persistLocked()
	}
	return copyPost(p), nil
}

// AddComment appends a comment to a post.
func (s *Store) AddComment(postID string, c models.Comment) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.postLocked(postID)
	if p == nil {
		return models.Post{}, ErrPostNotFound
	}
	if c.ID == "" {
		c.ID = s.newID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	p.Comments = append(p.Comments, c)
	s.persistLocked()
	return copyPost(p), nil
}

// === Wishlist ===

// AddToWishlist saves a (user, product) pair. Duplicate adds return the
// existing entry unchanged.
func (s *Store) AddToWishlist(userID, productID string) models.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.st.Wishlist {
		if item.UserID == userID && item.ProductID == productID {
			return *item
		}
	}
	item := &models.WishlistItem{
		ID:        s.newID(),
		UserID:    userID,
		ProductID: productID,
		AddedAt:   s.now(),
	}
	s.st.Wishlist = append(s.st.Wishlist, item)
	s.persistLocked()
	return *item
}

// RemoveFromWishlist drops a pair. Removing a missing pair is a no-op.
func (s *Store) RemoveFromWishlist(userID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.st.Wishlist[:0]
	removed := false
	for _, item := range s.st.Wishlist {
		if item.UserID == userID && item.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	s.st.Wishlist = kept
	if removed {
		s.persistLocked()
	}
}

// IsInWishlist reports whether the pair exists.
func (s *Store) IsInWishlist(userID, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.st.Wishlist {
		if item.UserID == userID && item.ProductID == productID {
			return true
		}
	}
	return false
}

// WishlistByUser returns a user's wishlist entries.
func (s *Store) WishlistByUser(userID string) []models.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.WishlistItem
	for _, item := range s.st.Wishlist {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out
}
