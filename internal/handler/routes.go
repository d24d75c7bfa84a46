package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/posts", h.GetPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}", h.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", h.DeletePost).Methods(http.MethodDelete)

	api.HandleFunc("/users/signup", h.Signup).Methods(http.MethodPost)
	api.HandleFunc("/users/login", h.Login).Methods(http.MethodPost)

	api.HandleFunc("/comments", h.CreateComment).Methods(http.MethodPost)
	api.HandleFunc("/comments/{post_id}", h.GetComments).Methods(http.MethodGet)

	api.HandleFunc("/likes", h.ToggleLike).Methods(http.MethodPost)
	api.HandleFunc("/likes/{post_id}", h.GetLikes).Methods(http.MethodGet)

	api.HandleFunc("/images", h.UploadImage).Methods(http.MethodPost)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	r.PathPrefix("/").Handler(spaHandler{dir: h.Cfg.StaticDir}).Methods(http.MethodGet, http.MethodHead)

	// Set on the subrouter too, so an unknown /api path is a 404 whatever the
	// method, instead of falling through to the static catch-all.
	api.NotFoundHandler = http.HandlerFunc(notFound)
	api.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, "Not found", http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
}
