package service

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/Susenthrakumar/word2pdf/config"
	"github.com/Susenthrakumar/word2pdf/model"
)

// JobStore is an in-memory store for conversion jobs.
// It exists for introspection only; conversion itself is synchronous and
// never coordinates through the store.
type JobStore struct {
	jobs    map[string]*model.Job
	mu      sync.RWMutex
	maxJobs int // Maximum jobs to keep, 0 = unlimited
}

var (
	globalStore *JobStore
	storeOnce   sync.Once
)

// InitJobStore initializes the global job store with configuration
func InitJobStore(cfg *config.StoreConfig) {
	storeOnce.Do(func() {
		maxJobs := cfg.MaxJobs
		if maxJobs < 0 {
			maxJobs = 0
		}
		globalStore = &JobStore{
			jobs:    make(map[string]*model.Job),
			maxJobs: maxJobs,
		}
		slog.Info("job store initialized", "max_jobs", maxJobs)
	})
}

// GetJobStore returns the global job store
func GetJobStore() *JobStore {
	if globalStore == nil {
		// Fallback initialization with default settings
		globalStore = &JobStore{
			jobs:    make(map[string]*model.Job),
			maxJobs: 100,
		}
	}
	return globalStore
}

func (s *JobStore) Save(job *model.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job.UpdatedAt = time.Now()
	s.jobs[job.ID] = job

	s.cleanupIfNeeded()
}

func (s *JobStore) Get(id string) *model.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobs[id]
}

// List returns all jobs, newest first
func (s *JobStore) List() []*model.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		result = append(result, j)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (s *JobStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.jobs, id)
}

func (s *JobStore) UpdateStatus(id, status string, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[id]; ok {
		j.Status = status
		j.ErrorMsg = errMsg
		j.UpdatedAt = time.Now()
	}
}

// MarkCompleted records the winning converter and output name on success
func (s *JobStore) MarkCompleted(id, converter, outputName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[id]; ok {
		j.Status = model.StatusCompleted
		j.Converter = converter
		j.OutputName = outputName
		j.ErrorMsg = ""
		j.UpdatedAt = time.Now()
	}
}

// cleanupIfNeeded removes oldest jobs if store exceeds maxJobs
// Must be called with lock held
func (s *JobStore) cleanupIfNeeded() {
	if s.maxJobs <= 0 {
		return // Unlimited
	}

	if len(s.jobs) <= s.maxJobs {
		return
	}

	jobs := make([]*model.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		jobs = append(jobs, j)
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.Before(jobs[j].CreatedAt)
	})

	removeCount := len(jobs) - s.maxJobs
	for i := 0; i < removeCount; i++ {
		slog.Info("auto-cleaning old job",
			"job_id", jobs[i].ID,
			"created_at", jobs[i].CreatedAt,
		)
		delete(s.jobs, jobs[i].ID)
	}
}

// Count returns the number of jobs in the store
func (s *JobStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}
