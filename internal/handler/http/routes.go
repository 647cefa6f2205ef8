package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/health", h.health)

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		// categories are global and, like the rest of the catalogue, readable
		// and writable without a token
		r.Get("/api/expenses/categories/", h.listCategories)
		r.Post("/api/expenses/categories/", h.createCategory)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/me", h.me)

		r.Route("/api/expenses", func(r chi.Router) {
			r.Post("/", h.createExpense)
			r.Get("/", h.listExpenses)
			r.Get("/{id}", h.getExpense)
			r.Put("/{id}", h.updateExpense)
			r.Delete("/{id}", h.deleteExpense)
		})

		r.Route("/api/salaries", func(r chi.Router) {
			r.Post("/", h.createSalary)
			r.Get("/", h.listSalaries)
			r.Get("/{id}", h.getSalary)
			r.Put("/{id}", h.updateSalary)
			r.Delete("/{id}", h.deleteSalary)
		})
	})

	router.MethodNotAllowed(methodNotAllowed)

	return router
}
