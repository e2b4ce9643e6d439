package mail_fx

import (
	"log"

	"go.uber.org/fx"

	"planner/internal/config"
	"planner/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg config.Config) (services.IMailService, error) {
	smtpCfg := services.SMTPConfig{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		Username:   cfg.SMTPUsername,
		Password:   cfg.SMTPPassword,
		From:       cfg.MailFrom,
		FromName:   cfg.MailFromName,
		RequireTLS: true,

		AppName: cfg.MailFromName,
	}

	mailService, err := services.NewSMTPMailService(smtpCfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
		return nil, err
	}

	return mailService, nil
}
