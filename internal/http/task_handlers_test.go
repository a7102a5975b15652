package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolify/internal/domain"
)

func (a *testAPI) createTask(session *http.Cookie, body map[string]string) TaskResponse {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/tasks", body, session)
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[TaskResponse](a.t, rec)
}

func TestCreateTaskDefaultsToTodo(t *testing.T) {
	api := newTestAPI(t)
	session, _ := api.signup("alice")

	task := api.createTask(session, map[string]string{"name": " Math ", "date": "2025-05-08", "time": "08:00"})
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Math", task.Name)
	assert.Equal(t, domain.TaskStatusTodo, task.Status)
}

func TestCreateTaskValidation(t *testing.T) {
	api := newTestAPI(t)
	session, _ := api.signup("alice")

	rec := api.do(http.MethodPost, "/api/tasks", map[string]string{"date": "2025-05-08", "time": "08:00"}, session)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPost, "/api/tasks", map[string]string{"name": "x", "date": "2025-05-08", "time": "08:00", "status": "later"}, session)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Statut invalide", decode[map[string]string](t, rec)["message"])

	rec = api.do(http.MethodPost, "/api/tasks", map[string]string{"name": "x", "date": "2025-05-08", "time": "8:00"}, session)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Heure invalide (HH:MM)", decode[map[string]string](t, rec)["message"])

	task := api.createTask(session, map[string]string{"name": "x", "date": "2025-05-08", "time": "08:00"})
	rec = api.do(http.MethodPut, "/api/tasks/"+task.ID, map[string]string{"time": "9:30"}, session)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatusRoundTrip(t *testing.T) {
	api := newTestAPI(t)
	session, _ := api.signup("alice")

	task := api.createTask(session, map[string]string{"name": "Math", "date": "2025-05-08", "time": "08:00"})

	rec := api.do(http.MethodPut, "/api/tasks/"+task.ID, map[string]string{"status": "doing"}, session)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(http.MethodGet, "/api/tasks/date/2025-05-08", nil, session)
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := decode[[]TaskResponse](t, rec)
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.TaskStatusDoing, tasks[0].Status)
	assert.Equal(t, "Math", tasks[0].Name)
	assert.Equal(t, "08:00", tasks[0].Time)
}

func TestPartialUpdateLeavesOtherFields(t *testing.T) {
	api := newTestAPI(t)
	session, _ := api.signup("alice")

	task := api.createTask(session, map[string]string{"name": "Math", "date": "2025-05-08", "time": "08:00", "notes": "ch. 4"})

	rec := api.do(http.MethodPut, "/api/tasks/"+task.ID, map[string]string{"status": "done"}, session)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[TaskResponse](t, rec)
	assert.Equal(t, domain.TaskStatusDone, got.Status)
	assert.Equal(t, "Math", got.Name)
	assert.Equal(t, "2025-05-08", got.Date)
	assert.Equal(t, "08:00", got.Time)
	assert.Equal(t, "ch. 4", got.Notes)

	rec = api.do(http.MethodPut, "/api/tasks/"+task.ID, map[string]string{"notes": ""}, session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", decode[TaskResponse](t, rec).Notes)
}

func TestListAllSortedByDateThenTime(t *testing.T) {
	api := newTestAPI(t)
	session, _ := api.signup("alice")

	inputs := [][2]string{
		{"2025-05-10", "18:00"},
		{"2025-05-10", "07:30"},
		{"2025-05-09", "12:00"},
		{"2025-05-08", "09:00"},
		{"2025-05-08", "08:00"},
	}
	for _, in := range inputs {
		api.createTask(session, map[string]string{"name": "t", "date": in[0], "time": in[1]})
	}

	rec := api.do(http.MethodGet, "/api/tasks", nil, session)
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := decode[[]TaskResponse](t, rec)
	require.Len(t, tasks, len(inputs))
	for i := range inputs {
		want := inputs[len(inputs)-1-i]
		assert.Equal(t, want[0], tasks[i].Date)
		assert.Equal(t, want[1], tasks[i].Time)
	}
}

func TestTasksIsolatedBetweenOwners(t *testing.T) {
	api := newTestAPI(t)
	alice, _ := api.signup("alice")
	bob, _ := api.signup("bob")

	task := api.createTask(alice, map[string]string{"name": "Math", "date": "2025-05-08", "time": "08:00"})

	rec := api.do(http.MethodGet, "/api/tasks", nil, bob)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]TaskResponse](t, rec))

	rec = api.do(http.MethodGet, "/api/tasks/dates", nil, bob)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[map[string]domain.MarkedDate](t, rec))

	assert.Equal(t, http.StatusForbidden, api.do(http.MethodPut, "/api/tasks/"+task.ID, map[string]string{"status": "done"}, bob).Code)
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodDelete, "/api/tasks/"+task.ID, nil, bob).Code)

	rec = api.do(http.MethodGet, "/api/tasks", nil, alice)
	tasks := decode[[]TaskResponse](t, rec)
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.TaskStatusTodo, tasks[0].Status)
}

func TestUnknownTaskIsNotFound(t *testing.T) {
	api := newTestAPI(t)
	session, _ := api.signup("alice")

	rec := api.do(http.MethodPut, "/api/tasks/does-not-exist", map[string]string{"status": "done"}, session)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgTaskNotFound, decode[map[string]string](t, rec)["message"])

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, "/api/tasks/does-not-exist", nil, session).Code)
}

func TestMarkedDatesAfterCreateAndDelete(t *testing.T) {
	api := newTestAPI(t)
	session, _ := api.signup("alice")

	task := api.createTask(session, map[string]string{"name": "Math", "date": "2025-05-08", "time": "08:00"})
	api.createTask(session, map[string]string{"name": "SVT", "date": "2025-05-09", "time": "10:00"})

	rec := api.do(http.MethodGet, "/api/tasks/dates", nil, session)
	require.Equal(t, http.StatusOK, rec.Code)
	marked := decode[map[string]domain.MarkedDate](t, rec)
	assert.Equal(t, domain.MarkedDate{Marked: true, DotColor: domain.DefaultDotColor}, marked["2025-05-08"])
	assert.Contains(t, marked, "2025-05-09")

	rec = api.do(http.MethodDelete, "/api/tasks/"+task.ID, nil, session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Tâche supprimée", decode[map[string]string](t, rec)["message"])

	marked = decode[map[string]domain.MarkedDate](t, api.do(http.MethodGet, "/api/tasks/dates", nil, session))
	assert.NotContains(t, marked, "2025-05-08")
	assert.Contains(t, marked, "2025-05-09")
}

func TestListByDateRejectsBadDate(t *testing.T) {
	api := newTestAPI(t)
	session, _ := api.signup("alice")

	rec := api.do(http.MethodGet, "/api/tasks/date/08-05-2025", nil, session)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
