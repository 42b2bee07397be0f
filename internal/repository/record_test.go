package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/domain"
)

func TestRecord_JSONShape(t *testing.T) {
	task := domain.Task{
		ID:      4,
		Name:    "Stretch",
		Date:    time.Date(2024, 2, 5, 7, 30, 0, 0, time.Local),
		Repeats: domain.DaysOf(domain.Monday, domain.Wednesday),
		Group:   "Health",
	}

	data, err := json.Marshal(ToRecord(task))

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 4,
		"name": "Stretch",
		"date": "2024-02-05T07:30:00",
		"repeats": {"DaysOfWeek": ["Mon", "Wed"]},
		"group": "Health",
		"complete": false
	}`, string(data))
}

func TestRecord_Task(t *testing.T) {
	tests := []struct {
		name    string
		record  Record
		want    time.Time
		wantErr bool
	}{
		{"current layout", Record{ID: 1, Name: "a", Date: "2024-01-31T23:59:59", Repeats: domain.Monthly()}, time.Date(2024, 1, 31, 23, 59, 59, 0, time.Local), false},
		{"legacy date only", Record{ID: 2, Name: "b", Date: "2023-06-01"}, time.Date(2023, 6, 1, 23, 59, 59, 0, time.Local), false},
		{"rfc3339", Record{ID: 3, Name: "c", Date: time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local).Format(time.RFC3339)}, time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local), false},
		{"garbage", Record{ID: 4, Name: "d", Date: "tomorrow"}, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.record.Task()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Date), "got %v want %v", got.Date, tt.want)
			assert.False(t, got.Repeats.Kind == "", "repeats defaults to Never")
		})
	}
}

func TestRecord_OptionalFields(t *testing.T) {
	task := domain.Task{ID: 1, Name: "Read", Date: time.Now(), Repeats: domain.Never(), Description: "chapter 3", URL: "https://example.com"}

	back, err := ToRecord(task).Task()

	require.NoError(t, err)
	assert.Equal(t, "chapter 3", back.Description)
	assert.Equal(t, "https://example.com", back.URL)
	assert.Empty(t, back.Group)
}
