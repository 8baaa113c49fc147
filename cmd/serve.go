package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"recruitmail/internal/adapters/auth"
	"recruitmail/internal/adapters/email"
	httpdelivery "recruitmail/internal/delivery/http"
	"recruitmail/internal/delivery/http/controllers"
	"recruitmail/internal/domain"
	"recruitmail/internal/repository/memory"
	"recruitmail/internal/repository/postgres"
	"recruitmail/internal/services"
	"recruitmail/internal/templates"
)

func newServeCmd(a *app) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				a.cfg.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	reg, err := templates.Default()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	deliveries, db, err := a.deliveryRepository(ctx)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    a.cfg.Mail.Provider,
		FromAddress: a.cfg.Mail.FromAddress,
		FromName:    a.cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:             a.cfg.Mail.AWSRegion,
			AccessKeyID:        a.cfg.Mail.AWSAccessKeyID,
			SecretAccessKey:    a.cfg.Mail.AWSSecretAccessKey,
			InsecureSkipVerify: a.cfg.Mail.InsecureSkipVerify,
		},
	}, a.logger)
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}

	templateSvc := services.NewTemplateService(reg)
	emailSvc := services.NewEmailService(reg, mailer, email.NewHTMLLayout(), deliveries, a.logger)
	handler := httpdelivery.NewHandler(httpdelivery.RouterDeps{
		Templates: controllers.NewTemplateController(a.logger, templateSvc),
		Emails:    controllers.NewEmailController(a.logger, emailSvc),
		Health:    controllers.NewHealthController(reg.Len),
		Verifier:  auth.NewJWTVerifier(a.cfg.JWTSecret, auth.ScopeSendEmail),
		Logger:    a.logger,
	}, a.cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting", "addr", srv.Addr, "env", a.cfg.Environment, "templates", reg.Len(), "mail_provider", a.cfg.Mail.Provider)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down", "timeout", a.cfg.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// deliveryRepository returns the Postgres repository when DATABASE_URL is set and
// the in-memory one otherwise. The returned *sql.DB is nil for the in-memory case.
func (a *app) deliveryRepository(ctx context.Context) (domain.DeliveryRepository, *sql.DB, error) {
	if a.cfg.DBUrl == "" {
		a.logger.Warn("DATABASE_URL not set, delivery log is kept in memory")
		return memory.NewDeliveryRepository(), nil, nil
	}
	db, err := postgres.Open(ctx, a.cfg.DBUrl)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewDeliveryRepository(db), db, nil
}
