package store

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/josephgoksu/todolist/models"
)

// MemoryTaskStore keeps tasks in a slice, in the order they were added.
// It does no locking; callers that share it between goroutines must serialize access.
type MemoryTaskStore struct {
	tasks []models.Task
}

// NewMemoryTaskStore creates an empty store.
func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{}
}

var _ TaskStore = (*MemoryTaskStore)(nil)

func (s *MemoryTaskStore) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
}

func (s *MemoryTaskStore) Add(id, name string, dueDate time.Time, priority models.Priority) error {
	if s.indexOf(id) >= 0 {
		return fmt.Errorf("task with ID '%s' already exists: %w", id, ErrDuplicateID)
	}
	s.tasks = append(s.tasks, models.NewTask(id, name, dueDate, priority))
	return nil
}

func (s *MemoryTaskStore) Edit(id, name string, dueDate time.Time, priority models.Priority) error {
	i := s.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	task := &s.tasks[i]
	task.Name = name
	task.DueDate = models.DateOnly(dueDate)
	task.Priority = priority
	return nil
}

func (s *MemoryTaskStore) Delete(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return nil
}

func (s *MemoryTaskStore) MarkComplete(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	s.tasks[i].IsCompleted = true
	return nil
}

func (s *MemoryTaskStore) Exists(id string) bool {
	return s.indexOf(id) >= 0
}

func (s *MemoryTaskStore) Get(id string) (models.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, notFound(id)
	}
	return s.tasks[i], nil
}

func (s *MemoryTaskStore) ListAll() []models.Task {
	return slices.Clone(s.tasks)
}

func (s *MemoryTaskStore) ListByDate() []models.Task {
	sorted := s.ListAll()
	slices.SortStableFunc(sorted, func(a, b models.Task) int {
		return a.DueDate.Compare(b.DueDate)
	})
	return sorted
}

func (s *MemoryTaskStore) ListByPriority() []models.Task {
	sorted := s.ListAll()
	slices.SortStableFunc(sorted, func(a, b models.Task) int {
		return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
	})
	return sorted
}

func (s *MemoryTaskStore) Len() int {
	return len(s.tasks)
}

func notFound(id string) error {
	return fmt.Errorf("task with ID '%s' not found: %w", id, ErrNotFound)
}
