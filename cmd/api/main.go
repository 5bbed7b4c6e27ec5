package main

import (
	"fmt"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	appHTTP "github.com/attendly/attendance-backend-go/internal/handler/http"
	"github.com/attendly/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	ingestService "github.com/attendly/attendance-backend-go/internal/service/ingest"
	reportService "github.com/attendly/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	policy := attendance.Policy{
		WeeklyOffDay:  cfg.Attendance.WeeklyOffDay,
		WeekdayHours:  cfg.Attendance.WeekdayHours,
		SaturdayHours: cfg.Attendance.SaturdayHours,
		LeavesAllowed: cfg.Attendance.LeavesAllowed,
	}

	ingestSvc := ingestService.NewIngestService(db, employeeRepo, attendanceRepo, policy)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, policy)

	attendanceHandler := appHTTP.NewAttendanceHandler(ingestSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window)

	router := appHTTP.NewRouter(
		attendanceHandler,
		reportHandler,
		rateLimiter,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
