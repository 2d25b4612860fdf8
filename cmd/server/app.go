package main

import (
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/schooldesk/ordering/internal/auth"
	"github.com/schooldesk/ordering/internal/config"
	"github.com/schooldesk/ordering/internal/mail"
	"github.com/schooldesk/ordering/internal/server"
	"github.com/schooldesk/ordering/internal/services"
)

// NewApp picks the session store and outbox from configuration and hands the
// whole dependency set to the router. REDIS_ADDR moves sessions to Redis;
// SMTP_HOST moves the outbox from in-memory to real delivery.
func NewApp(dbConn *gorm.DB, cfg config.Config, log *zap.Logger) http.Handler {
	var sessions auth.SessionStore = auth.NewMemorySessions()
	if cfg.RedisAddr != "" {
		sessions = auth.NewRedisSessions(cfg.RedisAddr)
		log.Info("sessions on redis", zap.String("addr", cfg.RedisAddr))
	}

	var outbox mail.Outbox = mail.NewMemory()
	if cfg.SMTPHost != "" {
		outbox = mail.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
		log.Info("outbox on smtp", zap.String("host", cfg.SMTPHost))
	} else {
		log.Warn("SMTP_HOST not set; invoice emails stay in memory")
	}

	return server.New(server.Deps{
		DB:        dbConn,
		Log:       log,
		Sessions:  sessions,
		Outbox:    outbox,
		Clock:     services.SystemClock{},
		Rates:     services.FixedRates{Tax: cfg.TaxRate, Shipping: cfg.ShippingRate},
		OrgDomain: cfg.OrgEmailDomain,
	})
}
