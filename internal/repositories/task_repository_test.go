package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-management.com/task-management/internal/dto"
	model "task-management.com/task-management/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&model.Task{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func strPtr(s string) *string { return &s }

func seedTask(t *testing.T, repo *TaskRepository, task model.Task) model.Task {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &task))
	return task
}

func TestTaskFilter_CompletedAndAssignee(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	a := seedTask(t, repo, model.Task{Title: "A", IsCompleted: true, AssignedTo: strPtr("Bob")})
	b := seedTask(t, repo, model.Task{Title: "B", IsCompleted: false, AssignedTo: strPtr("alice")})

	completed := true
	tasks, total, err := repo.FindPage(ctx, TaskFilter{Completed: &completed}, dto.DefaultPageRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, tasks, 1)
	assert.Equal(t, a.ID, tasks[0].ID)

	tasks, total, err = repo.FindPage(ctx, TaskFilter{AssignedTo: "ALICE"}, dto.DefaultPageRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, tasks, 1)
	assert.Equal(t, b.ID, tasks[0].ID)
}

func TestTaskFilter_CriteriaCompose(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	seedTask(t, repo, model.Task{Title: "done bob", IsCompleted: true, AssignedTo: strPtr("bob")})
	seedTask(t, repo, model.Task{Title: "open bob", IsCompleted: false, AssignedTo: strPtr("bob")})
	seedTask(t, repo, model.Task{Title: "done alice", IsCompleted: true, AssignedTo: strPtr("alice")})

	completed := true
	tasks, total, err := repo.FindPage(ctx, TaskFilter{Completed: &completed, AssignedTo: " Bob "}, dto.DefaultPageRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, tasks, 1)
	assert.Equal(t, "done bob", tasks[0].Title)
}

func TestTaskFilter_EmptyMatchesEverything(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))

	seedTask(t, repo, model.Task{Title: "one"})
	seedTask(t, repo, model.Task{Title: "two", IsCompleted: true})

	_, total, err := repo.FindPage(context.Background(), TaskFilter{}, dto.DefaultPageRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestFindPage_DefaultOrderNewestFirstWithIDTieBreak(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	older := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	// autoCreateTime leaves a preset CreatedAt alone, so ordering and
	// the equal-timestamp tie-break are testable directly.
	first := seedTask(t, repo, model.Task{Title: "first", CreatedAt: newer})
	second := seedTask(t, repo, model.Task{Title: "second", CreatedAt: newer})
	third := seedTask(t, repo, model.Task{Title: "third", CreatedAt: older})

	tasks, total, err := repo.FindPage(ctx, TaskFilter{}, dto.DefaultPageRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, tasks, 3)
	assert.Equal(t, first.ID, tasks[0].ID)
	assert.Equal(t, second.ID, tasks[1].ID)
	assert.Equal(t, third.ID, tasks[2].ID)
}

func TestFindPage_SortOverride(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	seedTask(t, repo, model.Task{Title: "banana"})
	seedTask(t, repo, model.Task{Title: "apple"})
	seedTask(t, repo, model.Task{Title: "cherry"})

	page := dto.DefaultPageRequest()
	page.Sort = []dto.SortOrder{{Field: "title", Direction: dto.SortAsc}}

	tasks, _, err := repo.FindPage(ctx, TaskFilter{}, page)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "apple", tasks[0].Title)
	assert.Equal(t, "banana", tasks[1].Title)
	assert.Equal(t, "cherry", tasks[2].Title)
}

func TestFindPage_OffsetAndLimit(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seedTask(t, repo, model.Task{Title: "task", CreatedAt: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)})
	}

	page := dto.PageRequest{Page: 1, Size: 2}
	tasks, total, err := repo.FindPage(ctx, TaskFilter{}, page)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, tasks, 2)
}

func TestSave_RefreshesUpdatedAtAndKeepsCreatedAt(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task := seedTask(t, repo, model.Task{Title: "stable"})
	createdAt := task.CreatedAt

	time.Sleep(10 * time.Millisecond)
	task.Title = "renamed"
	require.NoError(t, repo.Save(ctx, &task))

	stored, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", stored.Title)
	assert.True(t, stored.CreatedAt.Equal(createdAt))
	assert.True(t, stored.UpdatedAt.After(createdAt))
}

func TestSave_ClearsNullableColumns(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()
	now := time.Now()

	task := seedTask(t, repo, model.Task{Title: "assigned", AssignedTo: strPtr("bob"), AssignedAt: &now})

	task.AssignedTo = nil
	task.AssignedAt = nil
	require.NoError(t, repo.Save(ctx, &task))

	stored, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.AssignedTo)
	assert.Nil(t, stored.AssignedAt)
}

func TestExistsAndDelete(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task := seedTask(t, repo, model.Task{Title: "doomed"})

	exists, err := repo.ExistsByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.DeleteByID(ctx, task.ID))

	exists, err = repo.ExistsByID(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.FindByID(ctx, task.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTransaction_RollsBackOnError(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task := seedTask(t, repo, model.Task{Title: "keep me"})

	err := repo.Transaction(ctx, func(tx *TaskRepository) error {
		if err := tx.DeleteByID(ctx, task.ID); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	exists, err := repo.ExistsByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}
