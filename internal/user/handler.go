package user

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/usersvc/internal/pkg/message"
	"github.com/ferdiebergado/usersvc/internal/pkg/web"
)

type Service interface {
	List() []User
	Find(id string) (User, bool)
	Create(params CreateParams) (User, error)
	Update(id string, params UpdateParams) (User, bool)
	Delete(id string) bool
}

// PathID is the route parameter holding the user id.
const PathID = "id"

var errNotFound = errors.New("user not found")

type Handler struct {
	svc Service
}

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (h *Handler) List(w http.ResponseWriter, _ *http.Request) {
	users := h.svc.List()
	if users == nil {
		users = []User{}
	}
	web.RespondOK(w, users)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue(PathID)
	u, ok := h.svc.Find(id)
	if !ok {
		web.RespondNotFound(w, errNotFound, message.UserNotFound, nil)
		return
	}
	web.RespondOK(w, u)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[CreateUserRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidData, nil)
		return
	}

	u, err := h.svc.Create(CreateParams(req))
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = message.InvalidData
		}

		var valErr *ValidationError
		if errors.As(err, &valErr) {
			web.RespondBadRequest(w, err, msg, valErr.Fields)
			return
		}

		web.RespondBadRequest(w, err, msg, nil)
		return
	}

	web.RespondCreated(w, u)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[UpdateUserRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidData, nil)
		return
	}

	id := r.PathValue(PathID)
	u, ok := h.svc.Update(id, UpdateParams(req))
	if !ok {
		web.RespondNotFound(w, errNotFound, message.UserNotFound, nil)
		return
	}
	web.RespondOK(w, u)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue(PathID)
	if !h.svc.Delete(id) {
		web.RespondNotFound(w, errNotFound, message.UserNotFound, nil)
		return
	}
	web.RespondNoContent(w)
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}
