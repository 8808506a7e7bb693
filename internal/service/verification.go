package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/coastal_verification_system/internal/config"
	"github.com/shenikar/coastal_verification_system/internal/models"
	"github.com/shenikar/coastal_verification_system/internal/notify"
	"github.com/shenikar/coastal_verification_system/internal/observability"
	"github.com/shenikar/coastal_verification_system/internal/ticket"
	"github.com/shenikar/coastal_verification_system/internal/verifier"
	"github.com/sirupsen/logrus"
)

const (
	// minReasonLength — минимальная длина причины решения аналитика;
	// более короткая причина заменяется канонической, действие не отклоняется
	minReasonLength = 10

	defaultApproveReason = "Approved by analyst after manual review of the evidence."
	defaultRejectReason  = "Rejected by analyst after manual review of the evidence."
)

// VerificationRepository определяет контракт для работы с бд верификации
type VerificationRepository interface {
	CreateReport(ctx context.Context, report *models.Report) error
	GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error)
	UpdateReportStatus(ctx context.Context, id uuid.UUID, state models.VerificationState) error
	SetReportTicket(ctx context.Context, id uuid.UUID, ticketID string) error
	SaveVerificationResult(ctx context.Context, result *models.VerificationResult) error
	LatestVerificationResult(ctx context.Context, reportID uuid.UUID) (*models.VerificationResult, error)
	NextAttemptNumber(ctx context.Context, reportID uuid.UUID) (int, error)
	SaveAnalystDecision(ctx context.Context, decision *models.AnalystDecision) error
	GetVerificationFromCache(ctx context.Context, reportID uuid.UUID) (*models.VerificationResult, error)
	SetVerificationCache(ctx context.Context, result *models.VerificationResult) error
	InvalidateVerificationCache(ctx context.Context, reportID uuid.UUID) error
}

// QueueManager определяет контракт очереди ручной проверки
type QueueManager interface {
	Enqueue(ctx context.Context, entry *models.QueueEntry) error
	Remove(ctx context.Context, reportID uuid.UUID) error
	List(ctx context.Context, limit int, minScore, maxScore *float64) ([]*models.QueueEntry, error)
	Claim(ctx context.Context, reportID uuid.UUID, analystID string) error
	Release(ctx context.Context, reportID uuid.UUID) error
}

// EvaluationCoordinator определяет контракт координатора оценки
type EvaluationCoordinator interface {
	Acquire(reportID uuid.UUID) (func(), error)
	Run(ctx context.Context, report *models.Report) ([]models.LayerResult, error)
	Health() map[models.LayerName]verifier.LayerHealth
}

// VerificationService определяет контракт бизнес-логики верификации отчетов
type VerificationService interface {
	SubmitReport(ctx context.Context, report *models.Report) (*models.VerificationResult, error)
	Rerun(ctx context.Context, reportID uuid.UUID) (*models.VerificationResult, error)
	GetReport(ctx context.Context, reportID uuid.UUID) (*models.Report, error)
	GetVerification(ctx context.Context, reportID uuid.UUID) (*models.VerificationResult, error)
	ListQueue(ctx context.Context, limit int, minScore, maxScore *float64) ([]*models.QueueEntry, error)
	ClaimEntry(ctx context.Context, reportID uuid.UUID, analystID string) error
	ReleaseEntry(ctx context.Context, reportID uuid.UUID) error
	Approve(ctx context.Context, reportID uuid.UUID, analystID, reason string) (string, error)
	Reject(ctx context.Context, reportID uuid.UUID, analystID, reason string) error
	MarkInvestigating(ctx context.Context, reportID uuid.UUID, analystID string) error
	LayerHealth() map[models.LayerName]verifier.LayerHealth
}

type verificationService struct {
	repo        VerificationRepository
	queue       QueueManager
	coordinator EvaluationCoordinator
	tickets     ticket.Creator
	notifier    notify.Publisher
	weights     map[models.LayerName]float64
	bands       verifier.Bands
	metrics     *observability.Metrics
	logger      *logrus.Logger
	cfg         *config.Config
}

// NewVerificationService создает сервис верификации
func NewVerificationService(
	repo VerificationRepository,
	queue QueueManager,
	coordinator EvaluationCoordinator,
	tickets ticket.Creator,
	notifier notify.Publisher,
	metrics *observability.Metrics,
	logger *logrus.Logger,
	cfg *config.Config,
) VerificationService {
	return &verificationService{
		repo:        repo,
		queue:       queue,
		coordinator: coordinator,
		tickets:     tickets,
		notifier:    notifier,
		weights:     cfg.LayerWeights,
		bands:       verifier.Bands{ApproveAt: cfg.ApproveThreshold, ReviewAt: cfg.ReviewThreshold},
		metrics:     metrics,
		logger:      logger,
		cfg:         cfg,
	}
}

// stateForDecision отображает автоматический вердикт в статус отчета
func stateForDecision(d models.Decision) models.VerificationState {
	switch d {
	case models.DecisionAutoApproved:
		return models.StateAutoApproved
	case models.DecisionAutoRejected:
		return models.StateAutoRejected
	default:
		return models.StateNeedsManualReview
	}
}

// normalizeReason подставляет каноническую причину вместо слишком короткой,
// чтобы журнал аудита никогда не был пустым
func normalizeReason(action models.AnalystAction, reason string) string {
	if len([]rune(strings.TrimSpace(reason))) >= minReasonLength {
		return reason
	}
	if action == models.ActionApprove {
		return defaultApproveReason
	}
	return defaultRejectReason
}

func invalidTransition(report *models.Report, action string) error {
	return fmt.Errorf("report %s in state %q does not permit %q: %w", report.ID, report.Status, action, verifier.ErrInvalidTransition)
}

// SubmitReport сохраняет новый отчет в статусе pending и запускает первую оценку
func (s *verificationService) SubmitReport(ctx context.Context, report *models.Report) (*models.VerificationResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "verification",
		"method":  "SubmitReport",
		"hazard":  report.HazardType,
	})
	log.Info("Submitting a new hazard report")

	report.Status = models.StatePending
	if report.SubmittedAt.IsZero() {
		report.SubmittedAt = time.Now().UTC()
	}
	if err := s.repo.CreateReport(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return nil, fmt.Errorf("service: could not create report: %w", err)
	}

	release, err := s.coordinator.Acquire(report.ID)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	defer release()

	return s.evaluate(ctx, report)
}

// Rerun запускает новую попытку оценки. Разрешен из любого статуса, включая
// терминальные, но всегда сначала возвращает отчет в pending. История попыток
// и решений аналитиков сохраняется.
func (s *verificationService) Rerun(ctx context.Context, reportID uuid.UUID) (*models.VerificationResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "verification",
		"method":    "Rerun",
		"report_id": reportID,
	})
	log.Info("Rerunning verification")

	report, err := s.repo.GetReport(ctx, reportID)
	if err != nil {
		log.WithError(err).Warn("Report not found for rerun")
		return nil, fmt.Errorf("service: could not load report for rerun: %w", err)
	}

	release, err := s.coordinator.Acquire(report.ID)
	if err != nil {
		// Оценка уже идет: статус отчета не трогаем
		return nil, fmt.Errorf("service: %w", err)
	}
	defer release()

	if report.Status != models.StatePending {
		if err := s.repo.UpdateReportStatus(ctx, report.ID, models.StatePending); err != nil {
			return nil, fmt.Errorf("service: could not reset report to pending: %w", err)
		}
		report.Status = models.StatePending
		if err := s.queue.Remove(ctx, report.ID); err != nil {
			log.WithError(err).Warn("Failed to remove queue entry before rerun")
		}
		if err := s.repo.InvalidateVerificationCache(ctx, report.ID); err != nil {
			log.WithError(err).Warn("Failed to invalidate verification cache before rerun")
		}
	}

	return s.evaluate(ctx, report)
}

// evaluate выполняет один проход: фан-аут по слоям, композитный score,
// классификация, переход статуса и постановка в очередь. Вызывается только
// под блокировкой координатора, отчет обязан быть в pending.
func (s *verificationService) evaluate(ctx context.Context, report *models.Report) (*models.VerificationResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "verification",
		"method":    "evaluate",
		"report_id": report.ID,
	})

	results, err := s.coordinator.Run(ctx, report)
	if err != nil {
		// InsufficientEvidence и отмена оставляют отчет в pending
		if s.metrics != nil {
			s.metrics.EvaluationsTotal.WithLabelValues("failed").Inc()
		}
		log.WithError(err).Warn("Evaluation did not produce a result")
		return nil, fmt.Errorf("service: evaluation failed: %w", err)
	}

	composite, weightsUsed, err := verifier.ComputeComposite(results, s.weights)
	if err != nil {
		return nil, fmt.Errorf("service: could not compute composite score: %w", err)
	}

	attempt, err := s.repo.NextAttemptNumber(ctx, report.ID)
	if err != nil {
		return nil, fmt.Errorf("service: could not allocate attempt number: %w", err)
	}

	result := &models.VerificationResult{
		ID:             uuid.New(),
		ReportID:       report.ID,
		AttemptNumber:  attempt,
		LayerResults:   results,
		WeightsUsed:    weightsUsed,
		CompositeScore: composite,
		Decision:       s.bands.Classify(composite),
		ComputedAt:     time.Now().UTC(),
	}

	if err := s.repo.SaveVerificationResult(ctx, result); err != nil {
		log.WithError(err).Error("Failed to save verification result")
		return nil, fmt.Errorf("service: could not save verification result: %w", err)
	}

	newState := stateForDecision(result.Decision)
	if err := s.repo.UpdateReportStatus(ctx, report.ID, newState); err != nil {
		log.WithError(err).Error("Failed to transition report state")
		return nil, fmt.Errorf("service: could not transition report: %w", err)
	}
	report.Status = newState

	if newState == models.StateNeedsManualReview {
		entry := &models.QueueEntry{
			ReportID:       report.ID,
			HazardType:     report.HazardType,
			Severity:       report.Severity,
			State:          newState,
			CompositeScore: composite,
			EnqueuedAt:     result.ComputedAt,
		}
		if err := s.queue.Enqueue(ctx, entry); err != nil {
			log.WithError(err).Error("Failed to enqueue report for manual review")
			return nil, fmt.Errorf("service: could not enqueue report: %w", err)
		}
	}

	if err := s.repo.SetVerificationCache(ctx, result); err != nil {
		log.WithError(err).Warn("Failed to cache verification result")
	}

	if s.metrics != nil {
		s.metrics.EvaluationsTotal.WithLabelValues(string(result.Decision)).Inc()
	}
	log.WithFields(logrus.Fields{
		"composite_score": composite,
		"decision":        result.Decision,
		"attempt":         attempt,
	}).Info("Evaluation completed")

	return result, nil
}

// GetReport возвращает отчет по ID
func (s *verificationService) GetReport(ctx context.Context, reportID uuid.UUID) (*models.Report, error) {
	report, err := s.repo.GetReport(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}
	return report, nil
}

// GetVerification возвращает последний результат верификации отчета
func (s *verificationService) GetVerification(ctx context.Context, reportID uuid.UUID) (*models.VerificationResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "verification",
		"method":    "GetVerification",
		"report_id": reportID,
	})

	cached, err := s.repo.GetVerificationFromCache(ctx, reportID)
	if err != nil {
		log.WithError(err).Warn("Verification cache lookup failed")
	}
	if cached != nil {
		return cached, nil
	}

	result, err := s.repo.LatestVerificationResult(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get verification result: %w", err)
	}

	if err := s.repo.SetVerificationCache(ctx, result); err != nil {
		log.WithError(err).Warn("Failed to cache verification result")
	}
	return result, nil
}

// ListQueue возвращает очередь ручной проверки: самые сомнительные отчеты первыми
func (s *verificationService) ListQueue(ctx context.Context, limit int, minScore, maxScore *float64) ([]*models.QueueEntry, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "verification",
		"method":  "ListQueue",
		"limit":   limit,
	})

	entries, err := s.queue.List(ctx, limit, minScore, maxScore)
	if err != nil {
		log.WithError(err).Error("Failed to list review queue")
		return nil, fmt.Errorf("service: could not list queue: %w", err)
	}

	// Сводка по слоям из последнего результата; отсутствие сводки не
	// блокирует выдачу очереди
	for _, entry := range entries {
		result, err := s.GetVerification(ctx, entry.ReportID)
		if err != nil {
			log.WithError(err).WithField("report_id", entry.ReportID).Warn("No layer summary for queue entry")
			continue
		}
		summary := make(map[models.LayerName]models.LayerStatus, len(result.LayerResults))
		for _, lr := range result.LayerResults {
			summary[lr.LayerName] = lr.Status
		}
		entry.LayerSummary = summary
	}

	return entries, nil
}

// ClaimEntry захватывает запись очереди за аналитиком
func (s *verificationService) ClaimEntry(ctx context.Context, reportID uuid.UUID, analystID string) error {
	if err := s.queue.Claim(ctx, reportID, analystID); err != nil {
		return fmt.Errorf("service: could not claim queue entry: %w", err)
	}
	return nil
}

// ReleaseEntry явно освобождает захват записи очереди
func (s *verificationService) ReleaseEntry(ctx context.Context, reportID uuid.UUID) error {
	if err := s.queue.Release(ctx, reportID); err != nil {
		return fmt.Errorf("service: could not release queue entry: %w", err)
	}
	return nil
}

// Approve — решение аналитика "подтвердить". Создает ровно один тикет;
// повторное подтверждение уже verified отчета возвращает существующий тикет.
func (s *verificationService) Approve(ctx context.Context, reportID uuid.UUID, analystID, reason string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "verification",
		"method":     "Approve",
		"report_id":  reportID,
		"analyst_id": analystID,
	})

	report, err := s.repo.GetReport(ctx, reportID)
	if err != nil {
		return "", fmt.Errorf("service: could not load report for approve: %w", err)
	}

	reason = normalizeReason(models.ActionApprove, reason)

	switch report.Status {
	case models.StateVerified:
		// Идемпотентность: тикет уже создан, дубликат не нужен
		log.Info("Report already verified, returning existing ticket")
		return report.TicketID, nil
	case models.StateNeedsManualReview, models.StateInvestigating, models.StateAutoRejected:
		// needs_manual_review/investigating — обычный путь,
		// auto_rejected — override аналитиком
	default:
		return "", invalidTransition(report, "approve")
	}

	// Ровно один тикет на отчет: тикет от прерванного approve (ссылка
	// сохранена, но последующие записи не прошли) переиспользуется
	ticketID := report.TicketID
	if ticketID == "" {
		ticketID, err = s.tickets.CreateTicket(ctx, reportID, reason)
		if err != nil {
			log.WithError(err).Error("Failed to create ticket")
			return "", fmt.Errorf("service: could not create ticket: %w", err)
		}
		if err := s.repo.SetReportTicket(ctx, reportID, ticketID); err != nil {
			return "", fmt.Errorf("service: could not store ticket reference: %w", err)
		}
		report.TicketID = ticketID
	}

	decision := &models.AnalystDecision{
		ID:        uuid.New(),
		ReportID:  reportID,
		AnalystID: analystID,
		Action:    models.ActionApprove,
		Reason:    reason,
		DecidedAt: time.Now().UTC(),
	}
	if err := s.repo.SaveAnalystDecision(ctx, decision); err != nil {
		log.WithError(err).Error("Failed to save analyst decision")
		return "", fmt.Errorf("service: could not save analyst decision: %w", err)
	}

	if err := s.repo.UpdateReportStatus(ctx, reportID, models.StateVerified); err != nil {
		return "", fmt.Errorf("service: could not transition report to verified: %w", err)
	}

	if err := s.queue.Remove(ctx, reportID); err != nil {
		log.WithError(err).Warn("Failed to remove queue entry after approve")
	}

	log.WithField("ticket_id", ticketID).Info("Report approved by analyst")
	return ticketID, nil
}

// Reject — решение аналитика "отклонить". Отправляет ровно одно уведомление
// репортеру; повторное отклонение уже rejected отчета — no-op.
func (s *verificationService) Reject(ctx context.Context, reportID uuid.UUID, analystID, reason string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "verification",
		"method":     "Reject",
		"report_id":  reportID,
		"analyst_id": analystID,
	})

	report, err := s.repo.GetReport(ctx, reportID)
	if err != nil {
		return fmt.Errorf("service: could not load report for reject: %w", err)
	}

	reason = normalizeReason(models.ActionReject, reason)

	switch report.Status {
	case models.StateRejected:
		// Уже отклонен: уведомление не дублируем
		log.Info("Report already rejected, nothing to do")
		return nil
	case models.StateNeedsManualReview, models.StateInvestigating, models.StateAutoApproved:
		// needs_manual_review/investigating — обычный путь,
		// auto_approved — override аналитиком
	default:
		return invalidTransition(report, "reject")
	}

	decision := &models.AnalystDecision{
		ID:        uuid.New(),
		ReportID:  reportID,
		AnalystID: analystID,
		Action:    models.ActionReject,
		Reason:    reason,
		DecidedAt: time.Now().UTC(),
	}
	if err := s.repo.SaveAnalystDecision(ctx, decision); err != nil {
		log.WithError(err).Error("Failed to save analyst decision")
		return fmt.Errorf("service: could not save analyst decision: %w", err)
	}

	if err := s.repo.UpdateReportStatus(ctx, reportID, models.StateRejected); err != nil {
		return fmt.Errorf("service: could not transition report to rejected: %w", err)
	}

	if err := s.queue.Remove(ctx, reportID); err != nil {
		log.WithError(err).Warn("Failed to remove queue entry after reject")
	}

	event := notify.Event{
		ReportID:  reportID,
		Outcome:   string(models.StateRejected),
		Reason:    reason,
		Timestamp: decision.DecidedAt,
	}
	if err := s.notifier.Publish(ctx, event); err != nil {
		// Доставка fire-and-forget: сбой публикации не откатывает решение
		log.WithError(err).Error("Failed to publish reporter notification")
	}

	log.Info("Report rejected by analyst")
	return nil
}

// MarkInvestigating переводит отчет из needs_manual_review в investigating;
// запись остается в очереди, захват аналитика сохраняется
func (s *verificationService) MarkInvestigating(ctx context.Context, reportID uuid.UUID, analystID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "verification",
		"method":     "MarkInvestigating",
		"report_id":  reportID,
		"analyst_id": analystID,
	})

	report, err := s.repo.GetReport(ctx, reportID)
	if err != nil {
		return fmt.Errorf("service: could not load report: %w", err)
	}

	if report.Status != models.StateNeedsManualReview {
		return invalidTransition(report, "investigate")
	}

	if err := s.repo.UpdateReportStatus(ctx, reportID, models.StateInvestigating); err != nil {
		return fmt.Errorf("service: could not transition report to investigating: %w", err)
	}

	result, err := s.GetVerification(ctx, reportID)
	if err != nil {
		return fmt.Errorf("service: could not load verification for queue update: %w", err)
	}
	entry := &models.QueueEntry{
		ReportID:       reportID,
		HazardType:     report.HazardType,
		Severity:       report.Severity,
		State:          models.StateInvestigating,
		CompositeScore: result.CompositeScore,
		EnqueuedAt:     result.ComputedAt,
	}
	if err := s.queue.Enqueue(ctx, entry); err != nil {
		log.WithError(err).Warn("Failed to update queue entry state")
	}

	log.Info("Report marked as investigating")
	return nil
}

// LayerHealth возвращает агрегированное здоровье слоев для /verification/health
func (s *verificationService) LayerHealth() map[models.LayerName]verifier.LayerHealth {
	return s.coordinator.Health()
}
