package main

import (
	"fmt"
	"net/http"

	"github.com/horariolabs/fichaje-backend-go/internal/config"
	appHTTP "github.com/horariolabs/fichaje-backend-go/internal/handler/http"
	"github.com/horariolabs/fichaje-backend-go/internal/pkg/database"
	"github.com/horariolabs/fichaje-backend-go/internal/pkg/jwt"
	"github.com/horariolabs/fichaje-backend-go/internal/repository/postgresql"
	adjustmentService "github.com/horariolabs/fichaje-backend-go/internal/service/adjustment"
	attendanceService "github.com/horariolabs/fichaje-backend-go/internal/service/attendance"
	clockService "github.com/horariolabs/fichaje-backend-go/internal/service/clock"
	noticeService "github.com/horariolabs/fichaje-backend-go/internal/service/notice"
	scheduleService "github.com/horariolabs/fichaje-backend-go/internal/service/schedule"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	scheduleRepo := postgresql.NewDepartmentScheduleRepository(db)
	shiftRepo := postgresql.NewDepartmentShiftRepository(db)
	assignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	noticeRepo := postgresql.NewNoticeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	catalogService := scheduleService.NewCatalogService(scheduleRepo, shiftRepo, assignmentRepo, employeeRepo)
	factsService := attendanceService.NewFactsService(
		employeeRepo,
		departmentRepo,
		scheduleRepo,
		shiftRepo,
		assignmentRepo,
		eventRepo,
	)
	eventService := clockService.NewEventService(eventRepo, employeeRepo, departmentRepo)
	workflowService := adjustmentService.NewWorkflowService(db, requestRepo, eventRepo)
	ledgerService := noticeService.NewLedgerService(noticeRepo, eventRepo, factsService)

	scheduleHandler := appHTTP.NewScheduleHandler(catalogService)
	clockHandler := appHTTP.NewClockHandler(eventService)
	attendanceHandler := appHTTP.NewAttendanceHandler(factsService)
	adjustmentHandler := appHTTP.NewAdjustmentHandler(workflowService)
	noticeHandler := appHTTP.NewNoticeHandler(ledgerService)

	router := appHTTP.NewRouter(
		jwtService,
		scheduleHandler,
		clockHandler,
		attendanceHandler,
		adjustmentHandler,
		noticeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
