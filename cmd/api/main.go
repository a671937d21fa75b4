package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/emsuite/ems-backend-go/internal/config"
	appHTTP "github.com/emsuite/ems-backend-go/internal/handler/http"
	"github.com/emsuite/ems-backend-go/internal/pkg/cron"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/emsuite/ems-backend-go/internal/pkg/jwt"
	"github.com/emsuite/ems-backend-go/internal/pkg/storage"
	"github.com/emsuite/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/emsuite/ems-backend-go/internal/service/attendance"
	authService "github.com/emsuite/ems-backend-go/internal/service/auth"
	employeeService "github.com/emsuite/ems-backend-go/internal/service/employee"
	faceService "github.com/emsuite/ems-backend-go/internal/service/face"
	"github.com/emsuite/ems-backend-go/internal/service/file"
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

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone:", err)
	}

	cutoffHour, cutoffMinute, err := cfg.Attendance.CutoffClock()
	if err != nil {
		log.Fatal("Failed to parse sign-out cutoff:", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	faceRepo := postgresql.NewFaceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}
	fileService := file.NewFileService(fileStorage)

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	faceSvc := faceService.NewFaceService(faceRepo, fileService, cfg.Face.MatchThreshold)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, leaveRepo, location, cutoffHour, cutoffMinute)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, faceRepo)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceSvc, cfg.Attendance.SweepInterval)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, faceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, faceSvc)

	router := appHTTP.NewRouter(cfg, jwtService, authHandler, attendanceHandler, employeeHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
