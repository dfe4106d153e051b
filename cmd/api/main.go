package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	advisoradp "koperasi-backend/internal/adapter/advisor"
	httpadp "koperasi-backend/internal/adapter/http"
	"koperasi-backend/internal/adapter/middleware"
	"koperasi-backend/internal/adapter/repository/mysql"
	"koperasi-backend/internal/config"
	advisordomain "koperasi-backend/internal/domain/advisor"
	"koperasi-backend/internal/infrastructure/cache"
	"koperasi-backend/internal/infrastructure/db"
	"koperasi-backend/internal/observability"
	advisoruc "koperasi-backend/internal/usecase/advisor"
	authuc "koperasi-backend/internal/usecase/auth"
	dashboarduc "koperasi-backend/internal/usecase/dashboard"
	installmentuc "koperasi-backend/internal/usecase/installment"
	loanuc "koperasi-backend/internal/usecase/loan"
	memberuc "koperasi-backend/internal/usecase/member"
	reportuc "koperasi-backend/internal/usecase/report"
	savinguc "koperasi-backend/internal/usecase/saving"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logger := observability.NewLogger(cfg.AppEnv)

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}
	if err := db.Seed(gdb); err != nil {
		log.Fatal(err)
	}

	// repositories
	memberRepo := mysql.NewMemberRepository(gdb)
	savingRepo := mysql.NewSavingRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	installmentRepo := mysql.NewInstallmentRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	// usecases
	memberUC := memberuc.NewUsecase(memberRepo)
	savingUC := savinguc.NewUsecase(savingRepo)
	loanUC := loanuc.NewUsecase(loanRepo, unit)
	installmentUC := installmentuc.NewUsecase(installmentRepo, unit)
	reportUC := reportuc.NewUsecase(memberRepo, savingRepo)
	dashboardUC := dashboarduc.NewUsecase(memberRepo, savingRepo, loanRepo)
	authUC := authuc.NewUsecase(cfg.JWTSecret, cfg.JWTTTL)

	var geminiClient advisordomain.Advisor
	if cfg.GeminiAPIKey != "" {
		geminiClient = advisoradp.NewGeminiClient(cfg.GeminiAPIKey)
	} else {
		logger.Warn("GEMINI_API_KEY not set, advisor will answer with the fallback reply")
	}
	advisorUC := advisoruc.NewUsecase(geminiClient, logger)

	// handlers
	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(authUC)
	memberH := httpadp.NewMemberHandler(memberUC)
	savingH := httpadp.NewSavingHandler(savingUC)
	loanH := httpadp.NewLoanHandler(loanUC, memberUC)
	installmentH := httpadp.NewInstallmentHandler(installmentUC)
	reportH := httpadp.NewReportHandler(reportUC)
	dashboardH := httpadp.NewDashboardHandler(dashboardUC)
	advisorH := httpadp.NewAdvisorHandler(advisorUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)
	e.POST("/auth/login", authH.Login)

	// authenticated routes
	api := e.Group("", middleware.Auth(authUC))
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatal(err)
		}
		api.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	api.GET("/me", authH.Me)
	api.GET("/dashboard", dashboardH.Summary)
	api.POST("/advisor", advisorH.Ask)
	api.GET("/savings", savingH.ListSavings)
	api.GET("/loans", loanH.ListLoans)
	api.POST("/loans", loanH.SubmitLoan)
	api.GET("/loans/:loan_id", loanH.GetLoan)
	api.GET("/loans/:loan_id/installments", installmentH.ListLoanInstallments)
	api.GET("/installments", installmentH.ListInstallments)

	// administrator-only routes
	admin := api.Group("", middleware.AdminOnly())
	admin.GET("/members", memberH.ListMembers)
	admin.GET("/members/:name", memberH.GetMember)
	admin.POST("/savings", savingH.RecordSaving)
	admin.POST("/loans/:loan_id/approve", loanH.ApproveLoan)
	admin.POST("/loans/:loan_id/reject", loanH.RejectLoan)
	admin.POST("/loans/:loan_id/negotiate", loanH.NegotiateLoan)
	admin.POST("/loans/:loan_id/payments", installmentH.RecordPayment)
	admin.GET("/reports/savings", reportH.ExportSavingsReport)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
