package Recurring

import (
	"fmt"
	"log"
	"sync"

	"Momentum/Models"
)

// Planner owns the in-memory working set of recurring tasks for the
// day-planning view and keeps it reconciled against the persistent cache.
type Planner struct {
	mu    sync.RWMutex
	db    *TaskDB
	tasks []Models.RecurringTask
}

func NewPlanner(db *TaskDB) *Planner {
	return &Planner{db: db}
}

// Load reconciles the cache against the current goal set and persists the
// result when it changed. A cache read failure is absorbed: reconciliation
// proceeds against an empty cache and the working set stays usable for the
// session. A failed persist is returned; the working set is already
// updated by then.
func (p *Planner) Load(goals []Models.Goal) error {
	cached, err := p.db.GetAll()
	if err != nil {
		log.Printf("Recurring task cache unavailable, rebuilding from goals: %v", err)
		cached = nil
	}

	reconciled, shouldPersist := Reconcile(goals, cached)

	p.mu.Lock()
	p.tasks = reconciled
	p.mu.Unlock()

	if shouldPersist {
		if err := p.db.SaveAll(reconciled); err != nil {
			return fmt.Errorf("failed to persist recurring tasks: %w", err)
		}
	}
	return nil
}

// Tasks returns a copy of the working set.
func (p *Planner) Tasks() []Models.RecurringTask {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Models.RecurringTask, len(p.tasks))
	copy(out, p.tasks)
	return out
}

// ToggleCompletion flips the completed flag on the matching instance and
// persists the whole working set. Completion is local only; no backend
// call is made.
func (p *Planner) ToggleCompletion(taskID string) (Models.RecurringTask, error) {
	p.mu.Lock()
	var toggled *Models.RecurringTask
	for i := range p.tasks {
		if p.tasks[i].TaskID == taskID {
			p.tasks[i].Completed = !p.tasks[i].Completed
			toggled = &p.tasks[i]
			break
		}
	}
	snapshot := make([]Models.RecurringTask, len(p.tasks))
	copy(snapshot, p.tasks)
	p.mu.Unlock()

	if toggled == nil {
		return Models.RecurringTask{}, fmt.Errorf("no recurring task with id %s", taskID)
	}

	if err := p.db.SaveAll(snapshot); err != nil {
		log.Printf("Failed to persist recurring task toggle: %v", err)
	}
	return *toggled, nil
}

// ResetForNewDay clears the cache and rebuilds the working set straight
// from the current goals; every instance is new, so no reconciliation
// against the (now empty) cache is needed. Runs at local midnight.
func (p *Planner) ResetForNewDay(goals []Models.Goal) {
	if err := p.db.Clear(); err != nil {
		log.Printf("Failed to clear recurring task cache at midnight: %v", err)
	}

	fresh, _ := Reconcile(goals, nil)

	p.mu.Lock()
	p.tasks = fresh
	p.mu.Unlock()

	if err := p.db.SaveAll(fresh); err != nil {
		log.Printf("Failed to persist regenerated recurring tasks: %v", err)
	}
}
