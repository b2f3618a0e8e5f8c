package index

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/agenda/pkg/agenda"
)

var base = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

func sample() []agenda.Task {
	return []agenda.Task{
		{ID: "t1", Title: "Campaign", Deadline: "2024-03-01", ClientID: "cli1", Priority: agenda.High, CreatedAt: base},
		{ID: "t2", Title: "Video", Deadline: "2024-03-03", ClientID: "cli2", Priority: agenda.Medium, CreatedAt: base.Add(time.Minute)},
		{ID: "t3", Title: "Posts", Deadline: "2024-03-01", ClientID: "cli3", Priority: agenda.Low, CreatedAt: base.Add(2 * time.Minute)},
		{ID: "t4", Title: "Call", ClientID: "cli1", Priority: agenda.Low, CreatedAt: base.Add(3 * time.Minute)},
		{ID: "t5", Title: "Invoice", ClientID: "cli2", Priority: agenda.Medium, CreatedAt: base.Add(-time.Hour)},
	}
}

func ids(tasks []agenda.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestTasksOnDate(t *testing.T) {
	tasks := sample()

	assert.Equal(t, []string{"t1", "t3"}, ids(TasksOnDate(tasks, "2024-03-01")))
	assert.Equal(t, []string{"t2"}, ids(TasksOnDate(tasks, "2024-03-03")))

	none := TasksOnDate(tasks, "2024-03-02")
	require.NotNil(t, none)
	assert.Empty(t, none)
}

func TestTasksOnDateDoesNotMutate(t *testing.T) {
	tasks := sample()
	before := ids(tasks)
	_ = TasksOnDate(tasks, "2024-03-01")
	_ = TasksWithoutDeadline(tasks)
	_ = SortTasks(tasks, &SortConfig{Key: ByPriority, Direction: Descending})
	assert.Equal(t, before, ids(tasks))
}

func TestPreview(t *testing.T) {
	tasks := TasksOnDate(sample(), "2024-03-01")

	shown, remaining := Preview(tasks, 1)
	assert.Equal(t, []string{"t1"}, ids(shown))
	assert.Equal(t, 1, remaining)

	shown, remaining = Preview(tasks, 5)
	assert.Len(t, shown, 2)
	assert.Zero(t, remaining)

	shown, remaining = Preview(tasks, 0)
	assert.Empty(t, shown)
	assert.Equal(t, 2, remaining)
}

func TestPreviewDoesNotAlias(t *testing.T) {
	tasks := TasksOnDate(sample(), "2024-03-01")

	shown, _ := Preview(tasks, 1)
	shown = append(shown, agenda.Task{ID: "extra"})
	shown[0].Title = "changed"
	assert.Equal(t, []string{"t1", "t3"}, ids(tasks))
	assert.NotEqual(t, "changed", tasks[0].Title)
}

func TestTasksWithoutDeadline(t *testing.T) {
	inbox := TasksWithoutDeadline(sample())
	assert.Equal(t, []string{"t4", "t5"}, ids(inbox))
	for _, task := range inbox {
		assert.False(t, task.HasDeadline())
	}
	for i := 1; i < len(inbox); i++ {
		assert.True(t, inbox[i-1].CreatedAt.After(inbox[i].CreatedAt))
	}
}

func TestSortTasksPriorityReverses(t *testing.T) {
	tasks := sample()
	asc := SortTasks(tasks, &SortConfig{Key: ByPriority, Direction: Ascending})
	desc := SortTasks(tasks, &SortConfig{Key: ByPriority, Direction: Descending})

	assert.Equal(t, []string{"t3", "t4", "t2", "t5", "t1"}, ids(asc))

	reversed := ids(asc)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	assert.Equal(t, reversed, ids(desc))
}

func TestSortTasksDeadline(t *testing.T) {
	sorted := SortTasks(sample(), DefaultSort())
	assert.Equal(t, []string{"t4", "t5", "t1", "t3", "t2"}, ids(sorted))
}

func TestSortTasksNilConfig(t *testing.T) {
	tasks := sample()
	sorted := SortTasks(tasks, nil)
	assert.Equal(t, ids(tasks), ids(sorted))
	sorted[0].Title = "changed"
	assert.Equal(t, "Campaign", tasks[0].Title)
}

func TestSortConfigToggle(t *testing.T) {
	c := DefaultSort()
	c = c.Toggle(ByDeadline)
	assert.Equal(t, &SortConfig{Key: ByDeadline, Direction: Descending}, c)
	c = c.Toggle(ByDeadline)
	assert.Equal(t, &SortConfig{Key: ByDeadline, Direction: Ascending}, c)
	c = c.Toggle(ByTitle)
	assert.Equal(t, &SortConfig{Key: ByTitle, Direction: Ascending}, c)

	var none *SortConfig
	assert.Equal(t, &SortConfig{Key: ByPriority, Direction: Ascending}, none.Toggle(ByPriority))
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("ClientID")
	require.NoError(t, err)
	assert.Equal(t, ByClient, key)

	key, err = ParseSortKey("created")
	require.NoError(t, err)
	assert.Equal(t, ByCreatedAt, key)

	_, err = ParseSortKey("color")
	assert.Error(t, err)
}

func TestClientLookups(t *testing.T) {
	clients := []agenda.Client{{ID: "cli1", Name: "Panther Blazz"}}
	assert.Equal(t, "Panther Blazz", ClientName(clients, "cli1"))
	assert.Equal(t, UnknownClient, ClientName(clients, "cli9"))
	assert.Equal(t, []string{"t1", "t4"}, ids(TasksForClient(sample(), "cli1")))
}
