// Package memstore is an in-memory implementation of the store
// contracts, used by the service tests.
package memstore

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/Srinandan2003/CollabSphere/models"
	"github.com/Srinandan2003/CollabSphere/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds every collection behind one mutex.
type Store struct {
	mu         sync.Mutex
	users      map[primitive.ObjectID]models.User
	posts      map[primitive.ObjectID]models.Post
	comments   map[primitive.ObjectID]models.Comment
	categories map[primitive.ObjectID]models.Category
	media      map[primitive.ObjectID][]byte
}

func New() *Store {
	return &Store{
		users:      make(map[primitive.ObjectID]models.User),
		posts:      make(map[primitive.ObjectID]models.Post),
		comments:   make(map[primitive.ObjectID]models.Comment),
		categories: make(map[primitive.ObjectID]models.Category),
		media:      make(map[primitive.ObjectID][]byte),
	}
}

// Users

type Users struct{ s *Store }

func (s *Store) Users() *Users { return &Users{s: s} }

func (u *Users) Insert(_ context.Context, user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for _, existing := range u.s.users {
		if existing.Email == user.Email {
			return store.ErrDuplicate
		}
	}
	u.s.users[user.ID] = *user
	return nil
}

func (u *Users) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	user, ok := u.s.users[id]
	if !ok {
		return nil, store.ErrNoDocument
	}
	return &user, nil
}

func (u *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for _, user := range u.s.users {
		if user.Email == email {
			user := user
			return &user, nil
		}
	}
	return nil, store.ErrNoDocument
}

func (u *Users) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	var out []models.User
	for _, id := range ids {
		if user, ok := u.s.users[id]; ok {
			out = append(out, user)
		}
	}
	return out, nil
}

func (u *Users) Update(_ context.Context, user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, ok := u.s.users[user.ID]; !ok {
		return store.ErrNoDocument
	}
	u.s.users[user.ID] = *user
	return nil
}

// Posts

type Posts struct{ s *Store }

func (s *Store) Posts() *Posts { return &Posts{s: s} }

func (p *Posts) Insert(_ context.Context, post *models.Post) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	p.s.posts[post.ID] = clonePost(*post)
	return nil
}

func (p *Posts) FindByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	post, ok := p.s.posts[id]
	if !ok {
		return nil, store.ErrNoDocument
	}
	post = clonePost(post)
	return &post, nil
}

func (p *Posts) FindAll(ctx context.Context) ([]models.Post, error) {
	return p.SearchByTitle(ctx, "")
}

func (p *Posts) SearchByTitle(_ context.Context, query string) ([]models.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	query = strings.ToLower(query)
	out := make([]models.Post, 0)
	for _, post := range p.s.posts {
		if query == "" || strings.Contains(strings.ToLower(post.Title), query) {
			out = append(out, clonePost(post))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update mirrors the mongo implementation: only the editable fields
// are written, never the comment refs or like set.
func (p *Posts) Update(_ context.Context, post *models.Post) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	cur, ok := p.s.posts[post.ID]
	if !ok {
		return store.ErrNoDocument
	}
	cur.Title = post.Title
	cur.Content = post.Content
	cur.Media = post.Media
	cur.Category = post.Category
	p.s.posts[post.ID] = cur
	return nil
}

func (p *Posts) Delete(_ context.Context, id primitive.ObjectID) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if _, ok := p.s.posts[id]; !ok {
		return store.ErrNoDocument
	}
	delete(p.s.posts, id)
	return nil
}

func (p *Posts) AddLike(_ context.Context, postID, userID primitive.ObjectID) (*models.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	post, ok := p.s.posts[postID]
	if !ok {
		return nil, store.ErrNoDocument
	}
	if !post.LikedBy(userID) {
		post.Likes = append(post.Likes, userID)
		p.s.posts[postID] = post
	}
	post = clonePost(post)
	return &post, nil
}

func (p *Posts) RemoveLike(_ context.Context, postID, userID primitive.ObjectID) (*models.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	post, ok := p.s.posts[postID]
	if !ok {
		return nil, store.ErrNoDocument
	}
	likes := post.Likes[:0]
	for _, id := range post.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	post.Likes = likes
	p.s.posts[postID] = post
	post = clonePost(post)
	return &post, nil
}

func (p *Posts) PushComment(_ context.Context, postID, commentID primitive.ObjectID) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	post, ok := p.s.posts[postID]
	if !ok {
		return store.ErrNoDocument
	}
	post.Comments = append(post.Comments, commentID)
	p.s.posts[postID] = post
	return nil
}

func (p *Posts) PullComment(_ context.Context, postID, commentID primitive.ObjectID) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	post, ok := p.s.posts[postID]
	if !ok {
		return store.ErrNoDocument
	}
	refs := post.Comments[:0]
	for _, id := range post.Comments {
		if id != commentID {
			refs = append(refs, id)
		}
	}
	post.Comments = refs
	p.s.posts[postID] = post
	return nil
}

// Comments

type Comments struct{ s *Store }

func (s *Store) Comments() *Comments { return &Comments{s: s} }

func (c *Comments) Insert(_ context.Context, comment *models.Comment) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.comments[comment.ID] = *comment
	return nil
}

func (c *Comments) FindByID(_ context.Context, id primitive.ObjectID) (*models.Comment, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	comment, ok := c.s.comments[id]
	if !ok {
		return nil, store.ErrNoDocument
	}
	return &comment, nil
}

func (c *Comments) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Comment, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	var out []models.Comment
	for _, id := range ids {
		if comment, ok := c.s.comments[id]; ok {
			out = append(out, comment)
		}
	}
	return out, nil
}

func (c *Comments) Delete(_ context.Context, id primitive.ObjectID) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.comments[id]; !ok {
		return store.ErrNoDocument
	}
	delete(c.s.comments, id)
	return nil
}

func (c *Comments) DeleteByPost(_ context.Context, postID primitive.ObjectID) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for id, comment := range c.s.comments {
		if comment.Post == postID {
			delete(c.s.comments, id)
		}
	}
	return nil
}

// Categories

type Categories struct{ s *Store }

func (s *Store) Categories() *Categories { return &Categories{s: s} }

func (c *Categories) Insert(_ context.Context, category *models.Category) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for _, existing := range c.s.categories {
		if existing.Name == category.Name {
			return store.ErrDuplicate
		}
	}
	c.s.categories[category.ID] = *category
	return nil
}

func (c *Categories) FindAll(_ context.Context) ([]models.Category, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	out := make([]models.Category, 0, len(c.s.categories))
	for _, category := range c.s.categories {
		out = append(out, category)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (c *Categories) Delete(_ context.Context, id primitive.ObjectID) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.categories[id]; !ok {
		return store.ErrNoDocument
	}
	delete(c.s.categories, id)
	return nil
}

// Media

type Media struct{ s *Store }

func (s *Store) Media() *Media { return &Media{s: s} }

func (m *Media) Upload(_ string, r io.Reader) (primitive.ObjectID, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.media[id] = data
	return id, nil
}

func (m *Media) Open(id primitive.ObjectID) (io.ReadCloser, error) {
	m.s.mu.Lock()
	data, ok := m.s.media[id]
	m.s.mu.Unlock()
	if !ok {
		return nil, store.ErrNoDocument
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *Media) Delete(id primitive.ObjectID) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.media[id]; !ok {
		return store.ErrNoDocument
	}
	delete(m.s.media, id)
	return nil
}

func clonePost(p models.Post) models.Post {
	p.Comments = append([]primitive.ObjectID(nil), p.Comments...)
	p.Likes = append([]primitive.ObjectID(nil), p.Likes...)
	return p
}
