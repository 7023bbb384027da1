package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/fabtrack/shopfloor-backend-go/internal/config"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/user"
	"github.com/fabtrack/shopfloor-backend-go/internal/handler/http/middleware"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/jwt"
)

type RouterHandlers struct {
	Auth       AuthHandler
	Tenant     TenantHandler
	Shift      ShiftHandler
	Master     MasterHandler
	Product    ProductHandler
	Machinery  MachineryHandler
	Inspection InspectionHandler
	Production ProductionHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h RouterHandlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shopfloor-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// First-run setup; refuses once any user exists.
		r.Post("/admin/bootstrap", h.Tenant.Bootstrap)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/auth/change-password", h.Auth.ChangePassword)
			r.With(middleware.AdminOnly).Post("/auth/reset-password", h.Auth.ResetPassword)

			r.With(middleware.AdminOnly).Post("/admin/tenants", h.Tenant.CreateTenant)

			r.Get("/tenants/my", h.Tenant.GetMyTenant)

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Tenant.CreateUser)
				r.Get("/", h.Tenant.ListUsers)
				r.Post("/change-role", h.Tenant.ChangeRole)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Shift.ListShifts)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Shift.CreateShifts)
					r.Delete("/{id}", h.Shift.DeleteShift)
				})
			})

			r.Route("/catalogs", func(r chi.Router) {
				r.Get("/departments", h.Master.ListDepartments)
				r.Get("/operations", h.Master.ListOperations)
				r.Get("/defects", h.Master.ListDefects)
				r.Get("/downtimes", h.Master.ListDowntimes)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/departments", h.Master.CreateDepartments)
					r.Post("/operations", h.Master.CreateOperations)
					r.Post("/defects", h.Master.CreateDefects)
					r.Post("/downtimes", h.Master.CreateDowntimes)
					r.Post("/operations/departments", h.Master.LinkOperationDepartments)
					r.Post("/defects/departments", h.Master.LinkDefectDepartments)
					r.Post("/downtimes/departments", h.Master.LinkDowntimeDepartments)
				})
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.Product.ListProducts)
				r.Get("/{id}", h.Product.GetProduct)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Product.CreateProduct)
					r.Delete("/{id}", h.Product.DeleteProduct)
					r.Post("/drawings", h.Product.CreateDrawing)
					r.Post("/drawings/inspections", h.Product.CreateInspection)
					r.Delete("/drawings/inspections/{id}", h.Product.DeleteInspection)
				})

				r.Get("/drawings/{drawingID}/inspections", h.Product.ListInspections)
			})

			r.Route("/machinery", func(r chi.Router) {
				r.Get("/machines", h.Machinery.ListMachines)
				r.Get("/molds", h.Machinery.ListMolds)
				r.Get("/mold-machines", h.Machinery.ListMoldMachines)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/machines", h.Machinery.CreateMachine)
					r.Delete("/machines/{id}", h.Machinery.DeleteMachine)
					r.Post("/molds", h.Machinery.CreateMold)
					r.Delete("/molds/{id}", h.Machinery.DeleteMold)
					r.Post("/mold-machines", h.Machinery.CreateMoldMachine)
					r.Delete("/mold-machines/{id}", h.Machinery.DeleteMoldMachine)
				})
			})

			r.Route("/inspection-results", func(r chi.Router) {
				r.Get("/", h.Inspection.ListResults)
				r.Get("/{id}", h.Inspection.GetResult)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleInspector, user.RoleSupervisor))
					r.Post("/", h.Inspection.RecordResult)
					r.Put("/{id}", h.Inspection.UpdateResult)
					r.Delete("/{id}", h.Inspection.DeleteResult)
				})
			})

			r.Route("/production-logs", func(r chi.Router) {
				r.Get("/", h.Production.ListLogs)
				r.Get("/{id}", h.Production.GetLog)

				r.With(middleware.RequireRoles(user.RoleOperator, user.RoleSupervisor)).
					Post("/", h.Production.CreateLog)
			})
		})
	})
	return r
}
