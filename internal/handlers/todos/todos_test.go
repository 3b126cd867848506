package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	handlers "todosapp/internal/handlers/todos"
	"todosapp/internal/middleware"
	"todosapp/internal/mocks"
	"todosapp/internal/models"
	"todosapp/internal/stores"
)

const callerID uint = 7

func testContext(t *testing.T, method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	ctx.Request = req
	ctx.Set(middleware.ContextUserID, callerID)
	ctx.Set(middleware.ContextUsername, "alice")
	return ctx, w
}

func withID(ctx *gin.Context, id string) *gin.Context {
	ctx.Params = gin.Params{{Key: "id", Value: id}}
	return ctx
}

func TestCreateTodo(t *testing.T) {
	ctx, w := testContext(t, http.MethodPost, "/todo",
		`{"title":"Go to the store","description":"Pick up eggs","priority":5,"complete":false}`)

	store := new(mocks.TodoStore)
	store.On("Create", mock.MatchedBy(func(todo *models.Todo) bool {
		return todo.Title == "Go to the store" &&
			todo.Description == "Pick up eggs" &&
			todo.Priority == 5 &&
			!todo.Complete &&
			todo.OwnerID == callerID
	})).Return(nil)

	handlers.NewTodoHandler(store).Create(ctx)
	ctx.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	store.AssertExpectations(t)
}

func TestCreateTodoInvalidPriority(t *testing.T) {
	ctx, w := testContext(t, http.MethodPost, "/todo",
		`{"title":"Go to the store","description":"Pick up eggs","priority":6}`)

	store := new(mocks.TodoStore)
	handlers.NewTodoHandler(store).Create(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateTodoShortTitle(t *testing.T) {
	ctx, w := testContext(t, http.MethodPost, "/todo",
		`{"title":"Go","description":"Pick up eggs","priority":3}`)

	store := new(mocks.TodoStore)
	handlers.NewTodoHandler(store).Create(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "Create", mock.Anything)
}

func TestGetTodoByID(t *testing.T) {
	ctx, w := testContext(t, http.MethodGet, "/todo/42", "")
	withID(ctx, "42")

	store := new(mocks.TodoStore)
	store.On("GetByID", callerID, uint(42)).
		Return(&models.Todo{ID: 42, Title: "Found", Description: "it", Priority: 2, OwnerID: callerID}, nil)

	handlers.NewTodoHandler(store).GetByID(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	var todo models.Todo
	_ = json.Unmarshal(w.Body.Bytes(), &todo)
	assert.Equal(t, uint(42), todo.ID)
	assert.Equal(t, "Found", todo.Title)
}

func TestGetTodoByIDNotFound(t *testing.T) {
	ctx, w := testContext(t, http.MethodGet, "/todo/42", "")
	withID(ctx, "42")

	store := new(mocks.TodoStore)
	store.On("GetByID", callerID, uint(42)).Return(nil, stores.ErrNotFound)

	handlers.NewTodoHandler(store).GetByID(ctx)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTodosBuildsFilter(t *testing.T) {
	ctx, w := testContext(t, http.MethodGet, "/todo/?priority=3&complete=false", "")

	store := new(mocks.TodoStore)
	store.On("List", callerID, mock.MatchedBy(func(f stores.TodoFilter) bool {
		return f.Title == nil &&
			f.Priority != nil && *f.Priority == 3 &&
			f.Complete != nil && !*f.Complete
	})).Return([]models.Todo{{ID: 1, Title: "Match", Priority: 3, OwnerID: callerID}}, nil)

	handlers.NewTodoHandler(store).List(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	var todos []models.Todo
	_ = json.Unmarshal(w.Body.Bytes(), &todos)
	assert.Len(t, todos, 1)

	store.AssertExpectations(t)
}

func TestListTodosPriorityOutOfRange(t *testing.T) {
	ctx, w := testContext(t, http.MethodGet, "/todo/?priority=6", "")

	store := new(mocks.TodoStore)
	handlers.NewTodoHandler(store).List(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestReplaceTodo(t *testing.T) {
	ctx, w := testContext(t, http.MethodPut, "/todo/42",
		`{"title":"New title","description":"New description","priority":1,"complete":true}`)
	withID(ctx, "42")

	store := new(mocks.TodoStore)
	store.On("Replace", mock.MatchedBy(func(todo *models.Todo) bool {
		return todo.ID == 42 &&
			todo.OwnerID == callerID &&
			todo.Title == "New title" &&
			todo.Complete
	})).Return(nil)

	handlers.NewTodoHandler(store).Replace(ctx)
	ctx.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	store.AssertExpectations(t)
}

func TestReplaceTodoNotFound(t *testing.T) {
	ctx, w := testContext(t, http.MethodPut, "/todo/42",
		`{"title":"New title","description":"New description","priority":1}`)
	withID(ctx, "42")

	store := new(mocks.TodoStore)
	store.On("Replace", mock.Anything).Return(stores.ErrNotFound)

	handlers.NewTodoHandler(store).Replace(ctx)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatchTodoSingleField(t *testing.T) {
	ctx, w := testContext(t, http.MethodPatch, "/todo/42", `{"priority":3}`)
	withID(ctx, "42")

	store := new(mocks.TodoStore)
	store.On("Patch", callerID, uint(42), stores.TodoPatch{"priority": 3}).Return(nil)

	handlers.NewTodoHandler(store).Patch(ctx)
	ctx.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	store.AssertExpectations(t)
}

func TestPatchTodoEmptyBody(t *testing.T) {
	ctx, w := testContext(t, http.MethodPatch, "/todo/42", "")
	withID(ctx, "42")

	store := new(mocks.TodoStore)
	store.On("Patch", callerID, uint(42), stores.TodoPatch{}).Return(nil)

	handlers.NewTodoHandler(store).Patch(ctx)
	ctx.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	store.AssertExpectations(t)
}

func TestPatchTodoNullField(t *testing.T) {
	ctx, w := testContext(t, http.MethodPatch, "/todo/42", `{"title":null}`)
	withID(ctx, "42")

	store := new(mocks.TodoStore)
	handlers.NewTodoHandler(store).Patch(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func TestPatchTodoInvalidValue(t *testing.T) {
	ctx, w := testContext(t, http.MethodPatch, "/todo/42", `{"description":"no"}`)
	withID(ctx, "42")

	store := new(mocks.TodoStore)
	handlers.NewTodoHandler(store).Patch(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteTodo(t *testing.T) {
	ctx, w := testContext(t, http.MethodDelete, "/todo/42", "")
	withID(ctx, "42")

	store := new(mocks.TodoStore)
	store.On("Delete", callerID, uint(42)).Return(nil)

	handlers.NewTodoHandler(store).Delete(ctx)
	ctx.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	store.AssertExpectations(t)
}

func TestDeleteTodoNotFound(t *testing.T) {
	ctx, w := testContext(t, http.MethodDelete, "/todo/42", "")
	withID(ctx, "42")

	store := new(mocks.TodoStore)
	store.On("Delete", callerID, uint(42)).Return(stores.ErrNotFound)

	handlers.NewTodoHandler(store).Delete(ctx)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
