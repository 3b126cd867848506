package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todosapp/internal/field"
	"todosapp/internal/middleware"
	"todosapp/internal/models"
	"todosapp/internal/stores"
)

// TodoRequest is the full payload used by POST and PUT.
type TodoRequest struct {
	Title       string `json:"title"       binding:"required,min=3"`
	Description string `json:"description" binding:"required,min=3,max=100"`
	Priority    int    `json:"priority"    binding:"required,gte=1,lte=5"`
	Complete    bool   `json:"complete"`
}

// TodoPartialUpdate is the PATCH payload. Each field is tri-state so a field
// sent as null can be told apart from a field not sent at all.
type TodoPartialUpdate struct {
	Title       field.Optional[string] `json:"title"`
	Description field.Optional[string] `json:"description"`
	Priority    field.Optional[int]    `json:"priority"`
	Complete    field.Optional[bool]   `json:"complete"`
}

type TodoHandler struct {
	Store stores.TodoStore
}

func NewTodoHandler(store stores.TodoStore) *TodoHandler {
	return &TodoHandler{Store: store}
}

func (h *TodoHandler) List(c *gin.Context) {
	id, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate user"})
		return
	}

	var f stores.TodoFilter
	if v := c.Query("title"); v != "" {
		f.Title = &v
	}
	if v := c.Query("complete"); v != "" {
		complete, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "complete must be a boolean"})
			return
		}
		f.Complete = &complete
	}
	if v := c.Query("priority"); v != "" {
		priority, err := strconv.Atoi(v)
		if err != nil || priority < 1 || priority > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "priority must be between 1 and 5"})
			return
		}
		f.Priority = &priority
	}

	todos, err := h.Store.List(id.UserID, f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, todos)
}

func (h *TodoHandler) GetByID(c *gin.Context) {
	id, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate user"})
		return
	}

	todoID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	todo, err := h.Store.GetByID(id.UserID, todoID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

func (h *TodoHandler) Create(c *gin.Context) {
	id, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate user"})
		return
	}

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo := &models.Todo{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
		OwnerID:     id.UserID,
	}

	if err := h.Store.Create(todo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create todo"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TodoHandler) Replace(c *gin.Context) {
	id, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate user"})
		return
	}

	todoID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo := &models.Todo{
		ID:          todoID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
		OwnerID:     id.UserID,
	}

	if err := h.Store.Replace(todo); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TodoHandler) Patch(c *gin.Context) {
	id, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate user"})
		return
	}

	todoID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	// An empty body is a valid no-op patch.
	var req TodoPartialUpdate
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch, err := buildPatch(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.Patch(id.UserID, todoID, patch); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate user"})
		return
	}

	todoID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	if err := h.Store.Delete(id.UserID, todoID); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid todo id")
	}
	return uint(id), nil
}

// buildPatch keeps only fields the payload explicitly set, validating each.
// None of the columns are nullable, so an explicit null is rejected.
func buildPatch(req TodoPartialUpdate) (stores.TodoPatch, error) {
	patch := stores.TodoPatch{}

	if req.Title.Set {
		if !req.Title.Valid {
			return nil, errors.New("title may not be null")
		}
		if len(req.Title.Value) < 3 {
			return nil, errors.New("title must be at least 3 characters")
		}
		patch["title"] = req.Title.Value
	}
	if req.Description.Set {
		if !req.Description.Valid {
			return nil, errors.New("description may not be null")
		}
		if n := len(req.Description.Value); n < 3 || n > 100 {
			return nil, errors.New("description must be 3 to 100 characters")
		}
		patch["description"] = req.Description.Value
	}
	if req.Priority.Set {
		if !req.Priority.Valid {
			return nil, errors.New("priority may not be null")
		}
		if req.Priority.Value < 1 || req.Priority.Value > 5 {
			return nil, errors.New("priority must be between 1 and 5")
		}
		patch["priority"] = req.Priority.Value
	}
	if req.Complete.Set {
		if !req.Complete.Valid {
			return nil, errors.New("complete may not be null")
		}
		patch["complete"] = req.Complete.Value
	}

	return patch, nil
}
