package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/camden-git/hrmbackend/permissions"
)

// Router holds every handler mounted by NewRouter
type Router struct {
	Auth          Authenticator
	AuthHandler   *AuthHandler
	Persons       *PersonHandler
	PersonDetails *PersonDetailsHandler
	Technologies  *TechnologyHandler
	Categories    *CategoryHandler
	Groups        *GroupHandler
	Locations     *LocationHandler
	Accounts      *AccountHandler
	Reports       *ReportHandler
	Permissions   *PermissionsHandler
	Avatars       http.HandlerFunc
	AvatarsSubDir string
	WebSocket     http.HandlerFunc

	AllowedOrigins []string
	Logger         *zap.Logger
}

// NewRouter builds the chi router with the API under /api/v1
func NewRouter(rt Router) http.Handler {
	r := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   rt.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(rt.Logger))
	r.Use(middleware.Recoverer)
	r.Use(corsHandler.Handler)

	authenticated := AuthMiddleware(rt.Auth, rt.Logger)
	can := RequirePermission

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if rt.Avatars != nil {
		r.Get("/api/"+rt.AvatarsSubDir+"/*", rt.Avatars)
	}
	if rt.WebSocket != nil {
		r.With(authenticated).Get("/ws", rt.WebSocket)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Post("/auth/login", rt.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)

			r.Get("/auth/me", rt.AuthHandler.Me)
			r.Get("/permissions", rt.Permissions.ListDefinedPermissions)
			r.Get("/permissions/me", rt.Permissions.ListMyPermissions)

			r.Route("/persons", func(r chi.Router) {
				r.With(can(permissions.PermPersonView)).Get("/", rt.Persons.ListPersons)
				r.With(can(permissions.PermPersonEdit)).Post("/", rt.Persons.CreatePerson)
				r.With(can(permissions.PermPersonExport)).Get("/export", rt.Persons.ExportPersons)
				r.With(can(permissions.PermPersonView)).Get("/count", rt.Persons.CountPersons)

				r.Route("/{person_id}", func(r chi.Router) {
					r.With(can(permissions.PermPersonView)).Get("/", rt.Persons.GetPerson)
					r.With(can(permissions.PermPersonEdit)).Put("/", rt.Persons.UpdatePerson)
					r.With(can(permissions.PermPersonDelete)).Delete("/", rt.Persons.DeletePerson)
					r.With(can(permissions.PermPersonEdit)).Put("/component", rt.Persons.AssignComponent)
					r.With(can(permissions.PermPersonEdit)).Put("/avatar", rt.Persons.UploadAvatar)

					r.With(can(permissions.PermPersonView)).Get("/projects", rt.PersonDetails.ListProjects)
					r.With(can(permissions.PermPersonEdit)).Post("/projects", rt.PersonDetails.CreateProject)
					r.With(can(permissions.PermPersonView)).Get("/category-persons", rt.PersonDetails.ListCategoryPersons)
					r.With(can(permissions.PermPersonEdit)).Post("/category-persons", rt.PersonDetails.CreateCategoryPerson)
					r.With(can(permissions.PermPersonView)).Get("/educations", rt.PersonDetails.ListEducations)
					r.With(can(permissions.PermPersonEdit)).Post("/educations", rt.PersonDetails.CreateEducation)
				})
			})

			r.Route("/projects/{project_id}", func(r chi.Router) {
				r.With(can(permissions.PermPersonEdit)).Put("/", rt.PersonDetails.UpdateProject)
				r.With(can(permissions.PermPersonDelete)).Delete("/", rt.PersonDetails.DeleteProject)
			})
			r.Route("/category-persons/{category_person_id}", func(r chi.Router) {
				r.With(can(permissions.PermPersonEdit)).Put("/", rt.PersonDetails.UpdateCategoryPerson)
				r.With(can(permissions.PermPersonDelete)).Delete("/", rt.PersonDetails.DeleteCategoryPerson)
			})
			r.Route("/educations/{education_id}", func(r chi.Router) {
				r.With(can(permissions.PermPersonEdit)).Put("/", rt.PersonDetails.UpdateEducation)
				r.With(can(permissions.PermPersonDelete)).Delete("/", rt.PersonDetails.DeleteEducation)
			})

			r.Route("/technologies", func(r chi.Router) {
				r.With(can(permissions.PermCatalogView)).Get("/", rt.Technologies.ListTechnologies)
				r.With(can(permissions.PermCatalogEdit)).Post("/", rt.Technologies.CreateTechnology)
				r.Route("/{technology_id}", func(r chi.Router) {
					r.With(can(permissions.PermCatalogView)).Get("/", rt.Technologies.GetTechnology)
					r.With(can(permissions.PermCatalogEdit)).Put("/", rt.Technologies.UpdateTechnology)
					r.With(can(permissions.PermCatalogDelete)).Delete("/", rt.Technologies.DeleteTechnology)
				})
			})

			r.Route("/categories", func(r chi.Router) {
				r.With(can(permissions.PermCatalogView)).Get("/", rt.Categories.ListCategories)
				r.With(can(permissions.PermCatalogEdit)).Post("/", rt.Categories.CreateCategory)
				r.Route("/{category_id}", func(r chi.Router) {
					r.With(can(permissions.PermCatalogView)).Get("/", rt.Categories.GetCategory)
					r.With(can(permissions.PermCatalogEdit)).Put("/", rt.Categories.UpdateCategory)
					r.With(can(permissions.PermCatalogDelete)).Delete("/", rt.Categories.DeleteCategory)
					r.With(can(permissions.PermCatalogView)).Get("/technologies", rt.Technologies.ListTechnologiesByCategory)
				})
			})

			r.Route("/groups", func(r chi.Router) {
				r.With(can(permissions.PermOrganizationView)).Get("/", rt.Groups.ListGroups)
				r.With(can(permissions.PermOrganizationView)).Get("/search", rt.Groups.SearchGroups)
				r.With(can(permissions.PermOrganizationEdit)).Post("/", rt.Groups.CreateGroup)
				r.Route("/{group_id}", func(r chi.Router) {
					r.With(can(permissions.PermOrganizationView)).Get("/", rt.Groups.GetGroup)
					r.With(can(permissions.PermOrganizationEdit)).Put("/", rt.Groups.UpdateGroup)
					r.With(can(permissions.PermOrganizationDelete)).Delete("/", rt.Groups.DeleteGroup)
				})
			})

			r.Route("/locations", func(r chi.Router) {
				r.With(can(permissions.PermOrganizationView)).Get("/", rt.Locations.ListLocations)
				r.With(can(permissions.PermOrganizationEdit)).Post("/", rt.Locations.CreateLocation)
				r.Route("/{location_id}", func(r chi.Router) {
					r.With(can(permissions.PermOrganizationView)).Get("/", rt.Locations.GetLocation)
					r.With(can(permissions.PermOrganizationEdit)).Put("/", rt.Locations.UpdateLocation)
					r.With(can(permissions.PermOrganizationDelete)).Delete("/", rt.Locations.DeleteLocation)
					r.With(can(permissions.PermPersonView)).Get("/persons", rt.Persons.ListPersonsByLocation)
				})
			})

			r.Route("/accounts", func(r chi.Router) {
				r.Use(can(permissions.PermAccountManage))
				r.Get("/", rt.Accounts.ListAccounts)
				r.Post("/", rt.Accounts.CreateAccount)
				r.Route("/{account_id}", func(r chi.Router) {
					r.Get("/", rt.Accounts.GetAccount)
					r.Put("/", rt.Accounts.UpdateAccount)
					r.Delete("/", rt.Accounts.DeleteAccount)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(can(permissions.PermReportView))
				r.Get("/headcount-by-location", rt.Reports.HeadcountByLocation)
				r.Get("/usage-by-category", rt.Reports.UsageByCategory)
			})
		})
	})

	return r
}

// requestLogger logs one line per request through zap
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("http request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
