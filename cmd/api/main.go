package main

import (
	"fmt"
	"net/http"

	"github.com/worklogpay/settlement-backend-go/internal/config"
	appHTTP "github.com/worklogpay/settlement-backend-go/internal/handler/http"
	"github.com/worklogpay/settlement-backend-go/internal/pkg/database"
	"github.com/worklogpay/settlement-backend-go/internal/repository/postgresql"
	settlementService "github.com/worklogpay/settlement-backend-go/internal/service/settlement"
	worklogService "github.com/worklogpay/settlement-backend-go/internal/service/worklog"
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

	workLogRepo := postgresql.NewWorkLogRepository(db)
	timeSegmentRepo := postgresql.NewTimeSegmentRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	settlementRepo := postgresql.NewSettlementRepository(db)

	workLogSvc := worklogService.NewWorkLogService(db, workLogRepo, timeSegmentRepo, adjustmentRepo)
	settlementSvc := settlementService.NewSettlementService(db, settlementRepo, adjustmentRepo)

	workLogHandler := appHTTP.NewWorkLogHandler(workLogSvc)
	settlementHandler := appHTTP.NewSettlementHandler(settlementSvc)

	router := appHTTP.NewRouter(workLogHandler, settlementHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
