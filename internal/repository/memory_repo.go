package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"creatorlab/internal/mockdata"
	"creatorlab/internal/model"
)

type memoryStore struct {
	mu    sync.RWMutex
	items []*model.Content
}

// NewMemoryStore creates an in-process content store holding copies of seed
func NewMemoryStore(seed []model.Content) ContentStore {
	s := &memoryStore{items: make([]*model.Content, 0, len(seed))}
	for _, c := range seed {
		cp := mockdata.CopyContent(c)
		if cp.ID == "" {
			cp.ID = uuid.NewString()
		}
		s.items = append(s.items, &cp)
	}
	return s
}

func (s *memoryStore) Save(ctx context.Context, content *model.Content) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", storeErr("save", err)
	}
	cp := mockdata.CopyContent(*content)
	cp.ID = uuid.NewString()
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.items = append([]*model.Content{&cp}, s.items...)
	s.mu.Unlock()

	content.ID = cp.ID
	content.CreatedAt = cp.CreatedAt
	return cp.ID, nil
}

func (s *memoryStore) AppendComment(ctx context.Context, contentID string, comment model.CommunityComment) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", storeErr("append comment", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.items {
		if c.ID == contentID {
			c.CommunityFeedback = append(c.CommunityFeedback, comment)
			return comment.ID, nil
		}
	}
	return "", storeErr("append comment", ErrNotFound)
}

func (s *memoryStore) List(ctx context.Context) ([]*model.Content, error) {
	return s.filter(ctx, "list", func(*model.Content) bool { return true })
}

func (s *memoryStore) ListByAuthor(ctx context.Context, authorName string) ([]*model.Content, error) {
	return s.filter(ctx, "list by author", func(c *model.Content) bool { return c.Author.Name == authorName })
}

func (s *memoryStore) filter(ctx context.Context, op string, keep func(*model.Content) bool) ([]*model.Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr(op, err)
	}
	s.mu.RLock()
	out := make([]*model.Content, 0, len(s.items))
	for _, c := range s.items {
		if keep(c) {
			cp := mockdata.CopyContent(*c)
			out = append(out, &cp)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *memoryStore) GetByID(ctx context.Context, id string) (*model.Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("get", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.items {
		if c.ID == id {
			cp := mockdata.CopyContent(*c)
			return &cp, nil
		}
	}
	return nil, storeErr("get", ErrNotFound)
}
