package stub

import (
	"sort"
	"sync"
)

// TaskStorage holds registered tasks in memory, keyed by task name.
// Registering an existing name overwrites it, matching queue semantics
// where the task name is the deduplication key.
type TaskStorage struct {
	mu    sync.RWMutex
	tasks map[string]StoredTask
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		tasks: make(map[string]StoredTask),
	}
}

func (s *TaskStorage) Put(task StoredTask) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.Name] = task
}

// Delete removes a task by name and reports whether it existed.
func (s *TaskStorage) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[name]; !ok {
		return false
	}
	delete(s.tasks, name)
	return true
}

// List returns tasks ordered by schedule time, optionally filtered by
// queue and plan ID.
func (s *TaskStorage) List(queue, planID string) []StoredTask {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]StoredTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		if queue != "" && task.Queue != queue {
			continue
		}
		if planID != "" && task.Payload.PlanID != planID {
			continue
		}
		tasks = append(tasks, task)
	}

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].ScheduleTime.Equal(tasks[j].ScheduleTime) {
			return tasks[i].Name < tasks[j].Name
		}
		return tasks[i].ScheduleTime.Before(tasks[j].ScheduleTime)
	})

	return tasks
}

func (s *TaskStorage) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make(map[string]StoredTask)
}
