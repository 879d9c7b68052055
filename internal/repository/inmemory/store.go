package inmemory

import (
	"sort"
	"sync"

	"github.com/BloggingApp/content-service/internal/model"
)

// Store keeps posts and comments in process memory behind a single
// RWMutex, so every mutation (cascade deletes included) is atomic with
// respect to readers. It backs the dev-mode storage and the service
// tests.
type Store struct {
	mu               sync.RWMutex
	posts            map[int64]*model.Post
	comments         map[int64]*model.Comment
	commentsByPost   map[int64][]int64 // top-level only
	repliesByComment map[int64][]int64
	nextPostID       int64
	nextCommentID    int64
}

func New() *Store {
	return &Store{
		posts:            make(map[int64]*model.Post),
		comments:         make(map[int64]*model.Comment),
		commentsByPost:   make(map[int64][]int64),
		repliesByComment: make(map[int64][]int64),
	}
}

func (s *Store) Posts() *PostStore {
	return &PostStore{s: s}
}

func (s *Store) Comments() *CommentStore {
	return &CommentStore{s: s}
}

func (s *Store) sortedPosts(keep func(*model.Post) bool) []*model.Post {
	all := make([]*model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if keep(p) {
			copied := *p
			all = append(all, &copied)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	return all
}

func pageOf[T any](items []T, limit int, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func removeID(ids []int64, id int64) []int64 {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
