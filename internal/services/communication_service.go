package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"fotopanel/internal/models/db_models"
	"fotopanel/internal/models/request_models"
	"fotopanel/internal/models/response_models"
	"fotopanel/internal/repositories"
	"fotopanel/pkg/utils"
)

const communicationHistoryLimit = 50

type CommunicationServiceInterface interface {
	ListPhotographers(ctx context.Context, actor Actor) ([]db_models.Account, error)
	SendBulkEmail(ctx context.Context, actor Actor, req request_models.BulkEmailRequest) (*response_models.BulkEmailResult, error)
	History(ctx context.Context, actor Actor, kind string) ([]db_models.CommunicationLog, error)
}

type CommunicationService struct {
	accounts  repositories.AccountRepository
	logs      repositories.CommunicationLogRepository
	templates EmailTemplateServiceInterface
	mailer    IMailService
	log       *zap.Logger
	now       func() time.Time
}

func NewCommunicationService(
	accounts repositories.AccountRepository,
	logs repositories.CommunicationLogRepository,
	templates EmailTemplateServiceInterface,
	mailer IMailService,
	log *zap.Logger,
) CommunicationServiceInterface {
	return &CommunicationService{
		accounts:  accounts,
		logs:      logs,
		templates: templates,
		mailer:    mailer,
		log:       log,
		now:       time.Now,
	}
}

func (s *CommunicationService) ListPhotographers(ctx context.Context, actor Actor) ([]db_models.Account, error) {
	if !actor.IsSuperAdmin() {
		return nil, utils.ErrForbidden
	}
	photographers, err := s.accounts.ListPhotographers(ctx, repositories.PhotographerFilter{})
	if err != nil {
		return nil, dbErr(err)
	}
	if photographers == nil {
		photographers = []db_models.Account{}
	}
	return photographers, nil
}

func recipientFilter(filter string, now time.Time) repositories.PhotographerFilter {
	f := repositories.PhotographerFilter{Now: now}
	switch filter {
	case "", db_models.RecipientsAll:
	case db_models.RecipientsActive:
		f.Active = ptrTo(true)
	case db_models.RecipientsInactive:
		f.Active = ptrTo(false)
	default:
		f.PackageType = filter
	}
	return f
}

func ptrTo[T any](v T) *T { return &v }

// SendBulkEmail mails every photographer matching the filter. Each delivery is
// best-effort; the outcome per recipient is kept on the communication log.
func (s *CommunicationService) SendBulkEmail(ctx context.Context, actor Actor, req request_models.BulkEmailRequest) (*response_models.BulkEmailResult, error) {
	if !actor.IsSuperAdmin() {
		return nil, utils.ErrForbidden
	}

	subject := strings.TrimSpace(req.Subject)
	message := strings.TrimSpace(req.Message)
	verr := utils.NewValidationError()
	if subject == "" {
		verr.Add("subject", "Konu zorunludur")
	}
	if message == "" {
		verr.Add("message", "Mesaj zorunludur")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	filter := strings.TrimSpace(req.Filter)
	if filter == "" {
		filter = db_models.RecipientsAll
	}
	now := s.now()

	photographers, err := s.accounts.ListPhotographers(ctx, recipientFilter(filter, now))
	if err != nil {
		return nil, dbErr(err)
	}
	recipients := make([]db_models.CommunicationRecipient, 0, len(photographers))
	for _, p := range photographers {
		if email := strings.TrimSpace(p.Email); email != "" {
			recipients = append(recipients, db_models.CommunicationRecipient{
				PhotographerID: p.ID,
				Email:          email,
				Status:         db_models.DeliveryPending,
			})
		}
	}
	if len(recipients) == 0 {
		return nil, utils.ErrNoRecipients
	}

	mail, err := s.templates.ComposeAnnouncement(subject, message)
	if err != nil {
		return nil, err
	}
	if html := strings.TrimSpace(req.HTMLContent); html != "" {
		mail.HTML = html
	}

	entry := &db_models.CommunicationLog{
		Type:           db_models.CommunicationEmail,
		Subject:        subject,
		Message:        message,
		Filter:         filter,
		RecipientCount: len(recipients),
		Recipients:     recipients,
		SentBy:         actor.UserID,
		SentAt:         now,
		Status:         db_models.DeliverySending,
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		return nil, dbErr(err)
	}

	for i := range entry.Recipients {
		r := &entry.Recipients[i]
		m := mail
		m.To = r.Email
		if err := s.mailer.Send(ctx, m); err != nil {
			r.Status = db_models.DeliveryFailed
			s.log.Warn("bulk email delivery failed",
				zap.String("log_id", entry.ID.String()),
				zap.String("photographer_id", r.PhotographerID.String()),
				zap.Error(err))
			continue
		}
		r.Status = db_models.DeliverySent
	}

	sent, failed := entry.Settle()
	if err := s.logs.Save(ctx, entry); err != nil {
		s.log.Error("save communication log",
			zap.String("log_id", entry.ID.String()),
			zap.Error(err))
	}

	return &response_models.BulkEmailResult{
		LogID:  entry.ID,
		Sent:   sent,
		Failed: failed,
		Total:  len(entry.Recipients),
	}, nil
}

func (s *CommunicationService) History(ctx context.Context, actor Actor, kind string) ([]db_models.CommunicationLog, error) {
	if !actor.IsSuperAdmin() {
		return nil, utils.ErrForbidden
	}
	logs, err := s.logs.ListRecent(ctx, db_models.CommunicationType(strings.TrimSpace(kind)), communicationHistoryLimit)
	if err != nil {
		return nil, dbErr(err)
	}
	if logs == nil {
		logs = []db_models.CommunicationLog{}
	}
	return logs, nil
}
