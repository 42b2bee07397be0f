package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
	apperrors "todo-tracker/internal/errors"
	"todo-tracker/internal/form"
	"todo-tracker/internal/repository"
	"todo-tracker/internal/validation"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 23, 59, 59, 0, time.Local)
}

func openStore(t *testing.T, tasks ...domain.Task) (*Store, *repository.MemoryStorage) {
	t.Helper()
	storage := repository.NewMemoryStorage(tasks...)
	s, err := Open(context.Background(), storage)
	require.NoError(t, err)
	return s, storage
}

func TestOpen_SeedsCurrentID(t *testing.T) {
	tests := []struct {
		name   string
		tasks  []domain.Task
		wantID int64
	}{
		{"empty", nil, 0},
		{"max id wins", []domain.Task{{ID: 3, Name: "a"}, {ID: 11, Name: "b"}, {ID: 7, Name: "c"}}, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := openStore(t, tt.tasks...)

			assert.Equal(t, tt.wantID, s.CurrentID())
			assert.Equal(t, len(tt.tasks), s.Len())
		})
	}
}

func TestOpen_AssignsIDsToUnnumberedTasks(t *testing.T) {
	s, _ := openStore(t, domain.Task{ID: 4, Name: "a"}, domain.Task{Name: "b"})

	assert.Equal(t, int64(5), s.CurrentID())
	got, ok := s.Get(5)
	require.True(t, ok)
	assert.Equal(t, "b", got.Name)
}

func TestOpen_Errors(t *testing.T) {
	t.Run("load failure is a storage error", func(t *testing.T) {
		storage := repository.NewMemoryStorage()
		storage.LoadErr = errors.New("permission denied")

		_, err := Open(context.Background(), storage)

		assert.True(t, apperrors.IsStorage(err))
	})

	t.Run("duplicate ids", func(t *testing.T) {
		storage := repository.NewMemoryStorage(domain.Task{ID: 1, Name: "a"}, domain.Task{ID: 1, Name: "b"})

		_, err := Open(context.Background(), storage)

		assert.True(t, apperrors.IsStorage(err))
	})
}

func TestStore_Add(t *testing.T) {
	// Arrange
	s, storage := openStore(t, domain.Task{ID: 2, Name: "existing", Date: day(2024, 1, 2)})
	ctx := context.Background()

	// Act
	first, err := s.Add(ctx, domain.Task{ID: 99, Name: "later", Date: day(2024, 3, 1)})
	require.NoError(t, err)
	second, err := s.Add(ctx, domain.Task{Name: "earlier", Date: day(2024, 1, 1)})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, int64(3), first, "caller supplied ids are ignored")
	assert.Equal(t, int64(4), second)
	assert.Equal(t, int64(4), s.CurrentID())
	assert.Equal(t, 2, storage.Saves)

	saved := storage.Snapshot()
	require.Len(t, saved, 3)
	assert.Equal(t, []string{"earlier", "existing", "later"}, []string{saved[0].Name, saved[1].Name, saved[2].Name}, "saved sorted by date")
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s, _ := openStore(t, domain.Task{ID: 1, Name: "a", Repeats: domain.DaysOf(domain.Monday)})

	got, ok := s.Get(1)
	require.True(t, ok)
	got.Name = "changed"
	got.Repeats.Days[0] = domain.Sunday

	again, _ := s.Get(1)
	assert.Equal(t, "a", again.Name)
	assert.Equal(t, domain.Monday, again.Repeats.Days[0])

	_, ok = s.Get(42)
	assert.False(t, ok)
}

func TestStore_Delete(t *testing.T) {
	t.Run("existing id", func(t *testing.T) {
		s, storage := openStore(t, domain.Task{ID: 1, Name: "a"}, domain.Task{ID: 2, Name: "b"})

		id, err := s.Delete(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
		assert.Equal(t, 1, s.Len())
		assert.Equal(t, 1, storage.Saves)
		assert.Equal(t, int64(2), s.CurrentID(), "ids are never reused")
	})

	t.Run("missing id leaves store and storage untouched", func(t *testing.T) {
		s, storage := openStore(t, domain.Task{ID: 1, Name: "a"})

		_, err := s.Delete(context.Background(), 5)

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
		assert.Equal(t, "Task with id 5 not found", apperrors.GetUserMessage(err))
		assert.Equal(t, 1, s.Len())
		assert.Zero(t, storage.Saves)
	})
}

func TestStore_SetComplete_PayRentScenario(t *testing.T) {
	// Arrange
	s, storage := openStore(t)
	ctx := context.Background()
	a, err := s.Add(ctx, domain.Task{Name: "Pay rent", Date: day(2024, 1, 31), Repeats: domain.Monthly()})
	require.NoError(t, err)

	// Act
	b, err := s.SetComplete(ctx, a, true)

	// Assert
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	original, ok := s.Get(a)
	require.True(t, ok)
	assert.True(t, original.Complete)
	assert.True(t, day(2024, 1, 31).Equal(original.Date))

	successor, ok := s.Get(b)
	require.True(t, ok)
	assert.False(t, successor.Complete)
	assert.True(t, day(2024, 2, 29).Equal(successor.Date), "got %v", successor.Date)
	assert.Equal(t, "Pay rent", successor.Name)
	assert.True(t, domain.Monthly().Equal(successor.Repeats))

	assert.Equal(t, 2, s.Len())
	assert.Len(t, storage.Snapshot(), 2)
}

func TestStore_SetComplete(t *testing.T) {
	tests := []struct {
		name         string
		task         domain.Task
		complete     bool
		wantLen      int
		wantNewID    bool
		wantComplete bool
	}{
		{"never repeats", domain.Task{ID: 1, Name: "once", Date: day(2024, 1, 1), Repeats: domain.Never()}, true, 1, false, true},
		{"daily adds successor", domain.Task{ID: 1, Name: "daily", Date: day(2024, 1, 1), Repeats: domain.Daily()}, true, 2, true, true},
		{"mark incomplete", domain.Task{ID: 1, Name: "done", Date: day(2024, 1, 1), Repeats: domain.Daily(), Complete: true}, false, 1, false, false},
		{"incomplete is idempotent", domain.Task{ID: 1, Name: "open", Date: day(2024, 1, 1), Repeats: domain.Weekly()}, false, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, storage := openStore(t, tt.task)

			id, err := s.SetComplete(context.Background(), tt.task.ID, tt.complete)

			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, s.Len())
			assert.Equal(t, tt.wantNewID, id != tt.task.ID)
			assert.Equal(t, 1, storage.Saves)

			original, _ := s.Get(tt.task.ID)
			assert.Equal(t, tt.wantComplete, original.Complete)
			assert.Equal(t, tt.task.Name, original.Name)
			assert.True(t, tt.task.Date.Equal(original.Date))
		})
	}
}

func TestStore_SetComplete_DailySuccessorDate(t *testing.T) {
	s, _ := openStore(t, domain.Task{ID: 1, Name: "water plants", Date: time.Date(2024, 3, 9, 18, 0, 0, 0, time.Local), Repeats: domain.Daily()})

	id, err := s.SetComplete(context.Background(), 1, true)

	require.NoError(t, err)
	successor, _ := s.Get(id)
	assert.Equal(t, int64(2), id)
	assert.True(t, time.Date(2024, 3, 10, 18, 0, 0, 0, time.Local).Equal(successor.Date))
}

func TestStore_SetComplete_NotFound(t *testing.T) {
	s, storage := openStore(t)

	_, err := s.SetComplete(context.Background(), 3, true)

	assert.True(t, apperrors.IsNotFound(err))
	assert.Zero(t, storage.Saves)
}

func TestStore_ToggleComplete(t *testing.T) {
	s, _ := openStore(t, domain.Task{ID: 1, Name: "a", Date: day(2024, 1, 1), Repeats: domain.Never()})
	ctx := context.Background()

	_, err := s.ToggleComplete(ctx, 1)
	require.NoError(t, err)
	got, _ := s.Get(1)
	assert.True(t, got.Complete)

	_, err = s.ToggleComplete(ctx, 1)
	require.NoError(t, err)
	got, _ = s.Get(1)
	assert.False(t, got.Complete)

	_, err = s.ToggleComplete(ctx, 9)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStore_Update(t *testing.T) {
	s, storage := openStore(t, domain.Task{ID: 1, Name: "a", Date: day(2024, 1, 1)})
	ctx := context.Background()

	err := s.Update(ctx, domain.Task{ID: 1, Name: "renamed", Date: day(2024, 2, 1), Group: "Work"})

	require.NoError(t, err)
	got, _ := s.Get(1)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, "Work", got.Group)
	assert.Equal(t, 1, storage.Saves)
	assert.Equal(t, int64(1), s.CurrentID())

	err = s.Update(ctx, domain.Task{ID: 8, Name: "ghost"})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStore_SaveFailureIsStorageError(t *testing.T) {
	s, storage := openStore(t)
	storage.SaveErr = errors.New("disk full")

	_, err := s.Add(context.Background(), domain.Task{Name: "a", Date: day(2024, 1, 1)})

	require.Error(t, err)
	assert.True(t, apperrors.IsStorage(err))
}

func TestStore_Tasks_SortedByDateThenID(t *testing.T) {
	s, _ := openStore(t,
		domain.Task{ID: 3, Name: "c", Date: day(2024, 1, 2)},
		domain.Task{ID: 1, Name: "a", Date: day(2024, 1, 2)},
		domain.Task{ID: 2, Name: "b", Date: day(2024, 1, 1)},
	)

	tasks := s.Tasks()

	require.Len(t, tasks, 3)
	assert.Equal(t, []int64{2, 1, 3}, []int64{tasks[0].ID, tasks[1].ID, tasks[2].ID})
}

func TestStore_RoundTripThroughStorage(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemoryStorage()
	s, err := Open(ctx, storage)
	require.NoError(t, err)
	_, err = s.Add(ctx, domain.Task{Name: "b", Date: day(2024, 5, 2), Repeats: domain.DaysOf(domain.Friday, domain.Monday)})
	require.NoError(t, err)
	_, err = s.Add(ctx, domain.Task{Name: "a", Date: day(2024, 5, 1), Group: "Home"})
	require.NoError(t, err)

	reopened, err := Open(ctx, storage)
	require.NoError(t, err)

	assert.Equal(t, s.Tasks(), reopened.Tasks())
	assert.Equal(t, s.CurrentID(), reopened.CurrentID())
}

func TestStore_EmptyNameNeverReachesStore(t *testing.T) {
	s, storage := openStore(t)

	_, err := form.TaskForm{Name: ""}.Submit(validation.NewTaskValidator(), config.DefaultSettings().DateFormats, time.Now())

	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeValidation))
	assert.Zero(t, s.Len())
	assert.Zero(t, s.CurrentID())
	assert.Zero(t, storage.Saves)
}
