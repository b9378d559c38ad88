package graph

import (
	"errors"
	"sync"
)

// Graph-level outcomes, translated to status strings at the service layer
var (
	ErrUnknownUser      = errors.New("requested user does not exist")
	ErrSelfFollow       = errors.New("can't follow yourself")
	ErrAlreadyFollowing = errors.New("already following")
	ErrNotFollowing     = errors.New("not following")
)

// User is a read-only snapshot of one account
type User struct {
	Username  string
	Connected bool
	Following []string
	Followers []string
}

type user struct {
	username  string
	connected bool
	following map[string]struct{}
	followers map[string]struct{}
}

// Graph holds the follow graph for the users assigned to this shard.
// All mutations run under one shard-wide lock so the edge symmetry
// (A in B.followers iff B in A.following) can never tear.
type Graph struct {
	users map[string]*user
	order []string
	mu    sync.RWMutex
}

// New creates an empty follow graph
func New() *Graph {
	return &Graph{
		users: make(map[string]*user),
	}
}

func newUser(username string) *user {
	return &user{
		username:  username,
		following: make(map[string]struct{}),
		followers: make(map[string]struct{}),
	}
}

func (g *Graph) getOrCreate(username string) *user {
	u := g.users[username]
	if u == nil {
		u = newUser(username)
		g.users[username] = u
		g.order = append(g.order, username)
	}
	return u
}

// GetOrCreate registers username if unseen and returns its snapshot
func (g *Graph) GetOrCreate(username string) User {
	g.mu.Lock()
	defer g.mu.Unlock()
	return snapshot(g.getOrCreate(username))
}

// Login registers username if unseen and marks it connected.
// Returns true when the user was already connected (informational,
// re-login is allowed).
func (g *Graph) Login(username string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	u := g.getOrCreate(username)
	if u.connected {
		return true
	}
	u.connected = true
	return false
}

// Lookup returns a snapshot of username or ErrUnknownUser
func (g *Graph) Lookup(username string) (User, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	u := g.users[username]
	if u == nil {
		return User{}, ErrUnknownUser
	}
	return snapshot(u), nil
}

// SetConnected toggles the connected flag as the timeline stream opens and closes
func (g *Graph) SetConnected(username string, connected bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	u := g.users[username]
	if u == nil {
		return ErrUnknownUser
	}
	u.connected = connected
	return nil
}

// IsConnected reports whether username is logged in with an active stream
func (g *Graph) IsConnected(username string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	u := g.users[username]
	return u != nil && u.connected
}

// Follow inserts the follower->followee edge on both sides
func (g *Graph) Follow(follower string, followee string) error {
	if follower == followee {
		return ErrSelfFollow
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	f := g.users[follower]
	t := g.users[followee]
	if f == nil || t == nil {
		return ErrUnknownUser
	}

	// checked on both sides so a torn edge can never look new
	_, onFollowee := t.followers[follower]
	_, onFollower := f.following[followee]
	if onFollowee && onFollower {
		return ErrAlreadyFollowing
	}

	t.followers[follower] = struct{}{}
	f.following[followee] = struct{}{}
	return nil
}

// Unfollow removes the follower->followee edge from both sides
func (g *Graph) Unfollow(follower string, followee string) error {
	if follower == followee {
		return ErrNotFollowing
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	f := g.users[follower]
	t := g.users[followee]
	if t == nil {
		return ErrUnknownUser
	}
	if f == nil {
		return ErrNotFollowing
	}

	if _, ok := f.following[followee]; !ok {
		return ErrNotFollowing
	}

	delete(f.following, followee)
	delete(t.followers, follower)
	return nil
}

// ListAll returns every registered username in insertion order
func (g *Graph) ListAll() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	all := make([]string, len(g.order))
	copy(all, g.order)
	return all
}

// ListFollowers returns the usernames following username
func (g *Graph) ListFollowers(username string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	u := g.users[username]
	if u == nil {
		return nil, ErrUnknownUser
	}
	return setToSlice(u.followers), nil
}

// Len returns the number of registered users
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.users)
}

func snapshot(u *user) User {
	return User{
		Username:  u.username,
		Connected: u.connected,
		Following: setToSlice(u.following),
		Followers: setToSlice(u.followers),
	}
}

func setToSlice(set map[string]struct{}) []string {
	s := make([]string, 0, len(set))
	for k := range set {
		s = append(s, k)
	}
	return s
}
