package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"hostdesk/internal/application/reminder/dto"
	"hostdesk/internal/application/reminder/usecases"
	"hostdesk/internal/infrastructure/config"
	"hostdesk/internal/infrastructure/database"
	"hostdesk/internal/infrastructure/repository"
	smsinfra "hostdesk/internal/infrastructure/sms"
	"hostdesk/internal/shared/biztime"
	"hostdesk/internal/shared/logger"
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting reminder worker", "environment", env, "schedule", cfg.Reminder.Schedule)

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		log.Errorw("failed to initialize business timezone", "error", err)
		os.Exit(1)
	}

	if err := database.Init(&cfg.Database); err != nil {
		log.Errorw("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	subscriptionRepo := repository.NewSubscriptionRepository(database.Get(), log)
	notificationRepo := repository.NewNotificationRepository(database.Get(), log)
	settingRepo := repository.NewSettingRepository(database.Get(), log)
	smsLogRepo := repository.NewSMSLogRepository(database.Get(), log)
	gateway := smsinfra.NewClient(cfg.SMS, log)

	runReminders := usecases.NewRunRemindersUseCase(
		subscriptionRepo, notificationRepo, settingRepo, gateway, smsLogRepo, nil, log,
	)

	runOnce := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		result, err := runReminders.Execute(ctx, dto.RunRemindersRequest{})
		if err != nil {
			log.Errorw("reminder run failed", "error", err)
			return
		}
		log.Infow("reminder run finished",
			"one_month", result.OneMonthReminders,
			"one_week", result.OneWeekReminders,
			"message", result.Message)
	}

	scheduler := cron.New(cron.WithLocation(biztime.Location()))
	if _, err := scheduler.AddFunc(cfg.Reminder.Schedule, runOnce); err != nil {
		log.Errorw("invalid reminder schedule", "error", err, "schedule", cfg.Reminder.Schedule)
		os.Exit(1)
	}
	scheduler.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	log.Infow("received signal, shutting down", "signal", sig)

	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(30 * time.Second):
		log.Warnw("timed out waiting for running jobs")
	}

	log.Infow("reminder worker stopped")
}
