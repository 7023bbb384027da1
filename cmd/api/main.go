package main

import (
	"fmt"
	"net/http"

	"github.com/fabtrack/shopfloor-backend-go/internal/config"
	appHTTP "github.com/fabtrack/shopfloor-backend-go/internal/handler/http"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/database"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/jwt"
	"github.com/fabtrack/shopfloor-backend-go/internal/repository/postgresql"
	authService "github.com/fabtrack/shopfloor-backend-go/internal/service/auth"
	inspectionService "github.com/fabtrack/shopfloor-backend-go/internal/service/inspection"
	machineryService "github.com/fabtrack/shopfloor-backend-go/internal/service/machinery"
	masterService "github.com/fabtrack/shopfloor-backend-go/internal/service/master"
	productService "github.com/fabtrack/shopfloor-backend-go/internal/service/product"
	productionService "github.com/fabtrack/shopfloor-backend-go/internal/service/production"
	shiftService "github.com/fabtrack/shopfloor-backend-go/internal/service/shift"
	tenantService "github.com/fabtrack/shopfloor-backend-go/internal/service/tenant"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	tenantRepo := postgresql.NewTenantRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	tenantShiftRepo := postgresql.NewTenantShiftRepository(db)
	shiftTimingRepo := postgresql.NewShiftTimingRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	operationRepo := postgresql.NewOperationRepository(db)
	defectRepo := postgresql.NewDefectRepository(db)
	downtimeRepo := postgresql.NewDowntimeRepository(db)
	productRepo := postgresql.NewProductRepository(db)
	drawingRepo := postgresql.NewDrawingRepository(db)
	inspectionRepo := postgresql.NewInspectionRepository(db)
	machineRepo := postgresql.NewMachineRepository(db)
	moldRepo := postgresql.NewMoldRepository(db)
	moldMachineRepo := postgresql.NewMoldMachineRepository(db)
	resultRepo := postgresql.NewResultRepository(db)
	logRepo := postgresql.NewLogRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, refreshTokenRepo)
	tenantSvc := tenantService.NewTenantService(db, tenantRepo, userRepo)
	shiftSvc := shiftService.NewShiftService(db, tenantShiftRepo, shiftTimingRepo)
	masterSvc := masterService.NewMasterService(db, departmentRepo, operationRepo, defectRepo, downtimeRepo)
	productSvc := productService.NewProductService(productRepo, drawingRepo, inspectionRepo)
	machinerySvc := machineryService.NewMachineryService(machineRepo, moldRepo, moldMachineRepo)
	inspectionSvc := inspectionService.NewInspectionService(resultRepo, inspectionRepo, shiftTimingRepo, userRepo)
	productionSvc := productionService.NewProductionService(db, logRepo, shiftTimingRepo, moldMachineRepo, userRepo)

	router := appHTTP.NewRouter(cfg, jwtSvc, appHTTP.RouterHandlers{
		Auth:       appHTTP.NewAuthHandler(jwtSvc, authSvc),
		Tenant:     appHTTP.NewTenantHandler(tenantSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
		Product:    appHTTP.NewProductHandler(productSvc),
		Machinery:  appHTTP.NewMachineryHandler(machinerySvc),
		Inspection: appHTTP.NewInspectionHandler(inspectionSvc),
		Production: appHTTP.NewProductionHandler(productionSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
