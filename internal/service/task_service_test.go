package service

import (
	"errors"
	"testing"

	"github.com/suganya-startShine/todo-list-app/internal/dto"
	"github.com/suganya-startShine/todo-list-app/internal/models"
	"github.com/suganya-startShine/todo-list-app/internal/repository"

	"gorm.io/gorm"
)

func newTaskService(db *gorm.DB, trackCompletion bool) *TaskService {
	return NewTaskService(repository.NewTaskRepository(db), trackCompletion)
}

// createTask 创建任务并可选地调整状态
func createTask(t *testing.T, tasks *TaskService, scope repository.OwnerScope, title, priority, status string) *models.Task {
	t.Helper()

	task, err := tasks.Create(scope, dto.TaskForm{Title: title, Priority: priority})
	if err != nil {
		t.Fatalf("create task %q: %v", title, err)
	}
	if status != models.StatusPending {
		if err := tasks.UpdateStatus(scope, task.ID, status); err != nil {
			t.Fatalf("set status of %q: %v", title, err)
		}
	}
	return task
}

func TestListOrderStatusDominatesPriority(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "alice", "secret1")
	scope := repository.ForUser(user.ID)
	tasks := newTaskService(db, false)

	createTask(t, tasks, scope, "done", models.PriorityLow, models.StatusCompleted)
	createTask(t, tasks, scope, "todo", models.PriorityHigh, models.StatusPending)
	createTask(t, tasks, scope, "doing", models.PriorityMedium, models.StatusInProgress)

	list, err := tasks.List(scope)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(list))
	}

	want := []string{"doing", "todo", "done"}
	for i, title := range want {
		if list[i].Title != title {
			t.Fatalf("position %d: expected %q, got %q", i, title, list[i].Title)
		}
	}
}

func TestListOrderPriorityWithinStatus(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "alice", "secret1")
	scope := repository.ForUser(user.ID)
	tasks := newTaskService(db, false)

	createTask(t, tasks, scope, "low", models.PriorityLow, models.StatusPending)
	createTask(t, tasks, scope, "high", models.PriorityHigh, models.StatusPending)
	createTask(t, tasks, scope, "medium", models.PriorityMedium, models.StatusPending)

	list, err := tasks.List(scope)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}

	want := []string{"high", "medium", "low"}
	for i, title := range want {
		if list[i].Title != title {
			t.Fatalf("position %d: expected %q, got %q", i, title, list[i].Title)
		}
	}
}

func TestStatsEmptyScopeIsAllZero(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "alice", "secret1")
	tasks := newTaskService(db, false)

	stats, err := tasks.Stats(repository.ForUser(user.ID))
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 0 || stats.Completed != 0 || stats.Pending != 0 || stats.InProgress != 0 {
		t.Fatalf("expected all-zero stats, got %+v", stats)
	}
}

func TestStatsCountsByStatus(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "alice", "secret1")
	scope := repository.ForUser(user.ID)
	tasks := newTaskService(db, false)

	createTask(t, tasks, scope, "a", models.PriorityMedium, models.StatusPending)
	createTask(t, tasks, scope, "b", models.PriorityMedium, models.StatusPending)
	createTask(t, tasks, scope, "c", models.PriorityMedium, models.StatusInProgress)
	createTask(t, tasks, scope, "d", models.PriorityMedium, models.StatusCompleted)

	stats, err := tasks.Stats(scope)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 4 || stats.Pending != 2 || stats.InProgress != 1 || stats.Completed != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestCreateValidation(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "alice", "secret1")
	scope := repository.ForUser(user.ID)
	tasks := newTaskService(db, false)

	if _, err := tasks.Create(scope, dto.TaskForm{Title: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank title, got %v", err)
	}
	if _, err := tasks.Create(scope, dto.TaskForm{Title: "x", Priority: "urgent"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown priority, got %v", err)
	}
}

func TestCreateDefaultsAndNormalization(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "alice", "secret1")
	scope := repository.ForUser(user.ID)
	tasks := newTaskService(db, false)

	task, err := tasks.Create(scope, dto.TaskForm{Title: "  Buy milk  "})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if task.Title != "Buy milk" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
	if task.Priority != models.PriorityMedium {
		t.Fatalf("expected default priority medium, got %q", task.Priority)
	}
	if task.Status != models.StatusPending {
		t.Fatalf("expected initial status pending, got %q", task.Status)
	}
	if task.CategoryID != nil {
		t.Fatalf("expected absent category to stay nil")
	}
	if task.DueDate != nil {
		t.Fatalf("expected absent due date to stay nil")
	}
}

func TestUpdateStatusScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	alice := registerUser(t, db, "alice", "secret1")
	bob := registerUser(t, db, "bob", "secret2")
	tasks := newTaskService(db, false)

	task := createTask(t, tasks, repository.ForUser(alice.ID), "mine", models.PriorityMedium, models.StatusPending)

	// 他人更新等同于目标不存在
	err := tasks.UpdateStatus(repository.ForUser(bob.ID), task.ID, models.StatusCompleted)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-user update, got %v", err)
	}

	var reloaded models.Task
	if err := db.First(&reloaded, task.ID).Error; err != nil {
		t.Fatalf("reload task: %v", err)
	}
	if reloaded.Status != models.StatusPending {
		t.Fatalf("task changed by non-owner: status %q", reloaded.Status)
	}

	// 本人更新成功
	if err := tasks.UpdateStatus(repository.ForUser(alice.ID), task.ID, models.StatusCompleted); err != nil {
		t.Fatalf("owner update: %v", err)
	}
}

func TestDeleteScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	alice := registerUser(t, db, "alice", "secret1")
	bob := registerUser(t, db, "bob", "secret2")
	tasks := newTaskService(db, false)

	task := createTask(t, tasks, repository.ForUser(alice.ID), "mine", models.PriorityMedium, models.StatusPending)

	err := tasks.Delete(repository.ForUser(bob.ID), task.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-user delete, got %v", err)
	}

	var count int64
	db.Model(&models.Task{}).Where("id = ?", task.ID).Count(&count)
	if count != 1 {
		t.Fatalf("task deleted by non-owner")
	}

	if err := tasks.Delete(repository.ForUser(alice.ID), task.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}

func TestCompletedAtTracking(t *testing.T) {
	db := newTestDB(t)
	scope := repository.Shared()
	tasks := newTaskService(db, true)

	task := createTask(t, tasks, scope, "shared", models.PriorityMedium, models.StatusPending)
	if err := tasks.UpdateStatus(scope, task.ID, models.StatusCompleted); err != nil {
		t.Fatalf("complete task: %v", err)
	}

	var reloaded models.Task
	if err := db.First(&reloaded, task.ID).Error; err != nil {
		t.Fatalf("reload task: %v", err)
	}
	if reloaded.CompletedAt == nil {
		t.Fatalf("expected completed_at to be set in standalone mode")
	}
}

func TestCompletedAtNotTrackedInMultiTenant(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "alice", "secret1")
	scope := repository.ForUser(user.ID)
	tasks := newTaskService(db, false)

	task := createTask(t, tasks, scope, "mine", models.PriorityMedium, models.StatusCompleted)

	var reloaded models.Task
	if err := db.First(&reloaded, task.ID).Error; err != nil {
		t.Fatalf("reload task: %v", err)
	}
	if reloaded.CompletedAt != nil {
		t.Fatalf("completed_at should stay nil in multi-tenant mode")
	}
}

func TestUnscopedAndScopedTasksIsolated(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "alice", "secret1")
	tasks := newTaskService(db, false)

	createTask(t, tasks, repository.ForUser(user.ID), "mine", models.PriorityMedium, models.StatusPending)
	createTask(t, tasks, repository.Shared(), "shared", models.PriorityMedium, models.StatusPending)

	mine, err := tasks.List(repository.ForUser(user.ID))
	if err != nil {
		t.Fatalf("list user tasks: %v", err)
	}
	if len(mine) != 1 || mine[0].Title != "mine" {
		t.Fatalf("user scope leaked: %+v", mine)
	}

	shared, err := tasks.List(repository.Shared())
	if err != nil {
		t.Fatalf("list shared tasks: %v", err)
	}
	if len(shared) != 1 || shared[0].Title != "shared" {
		t.Fatalf("shared scope leaked: %+v", shared)
	}
}
