package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the chi router with the full middleware chain and every route
// of the API. Only the two profile routes sit behind the auth gate.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.health)

		r.Post("/register", h.register)
		r.Post("/login-user", h.login)

		r.Get("/get-data", h.listUsers)
		r.Get("/user/{email}", h.getUserByEmail)
		r.Get("/users/course/{courseTitle}", h.listUsersByCourse)
		r.Delete("/delete-data/{name}", h.deleteUserByName)

		r.Post("/courses", h.addCourse)
		r.Get("/courses", h.listCourses)
		r.Post("/videos", h.addVideo)
		r.Get("/courses/{courseTitle}/videos", h.listVideosByCourse)
	})

	// routes behind the auth gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/profile", h.profile)
		r.Put("/profile", h.updateProfile)
	})

	return router
}
