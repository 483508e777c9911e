package Recurring

import (
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Momentum/Models"
)

// TaskDB is the persistent cache of recurring task instances. It owns the
// records between sessions; the planner's in-memory set is a working copy.
type TaskDB struct {
	DB *gorm.DB
}

func NewTaskDB(db *gorm.DB) *TaskDB {
	return &TaskDB{DB: db}
}

// GetAll returns every cached instance in insertion order.
func (t *TaskDB) GetAll() ([]Models.RecurringTask, error) {
	var tasks []Models.RecurringTask
	if err := t.DB.Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to read recurring task cache: %w", err)
	}
	return tasks, nil
}

// Upsert writes a single instance keyed by its task identifier. Instances
// missing an identifier are skipped with a warning rather than aborting
// the batch.
func (t *TaskDB) Upsert(task Models.RecurringTask) error {
	if task.TaskID == "" {
		log.Printf("Skipping recurring task with no identifier: %q", task.Title)
		return nil
	}
	err := t.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "task_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "description", "step", "completed", "status", "target_date", "every_day_action",
		}),
	}).Create(&task).Error
	if err != nil {
		return fmt.Errorf("failed to upsert recurring task %s: %w", task.TaskID, err)
	}
	return nil
}

// SaveAll replaces the whole cache with the given set in one transaction,
// so entries whose backing milestone disappeared cannot linger. Instances
// missing an identifier are skipped with a warning.
func (t *TaskDB) SaveAll(tasks []Models.RecurringTask) error {
	return t.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(&Models.RecurringTask{}).Error; err != nil {
			return fmt.Errorf("failed to clear recurring task cache: %w", err)
		}
		for _, task := range tasks {
			if task.TaskID == "" {
				log.Printf("Skipping recurring task with no identifier: %q", task.Title)
				continue
			}
			task.ID = 0
			if err := tx.Create(&task).Error; err != nil {
				return fmt.Errorf("failed to save recurring task %s: %w", task.TaskID, err)
			}
		}
		return nil
	})
}

// Clear drops every cached instance.
func (t *TaskDB) Clear() error {
	err := t.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().Delete(&Models.RecurringTask{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear recurring task cache: %w", err)
	}
	return nil
}
