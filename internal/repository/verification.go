package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/coastal_verification_system/internal/models"
	"github.com/shenikar/coastal_verification_system/internal/service"
	"github.com/shenikar/coastal_verification_system/internal/verifier"
)

const verificationCacheTTL = 5 * time.Minute

type VerificationRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewVerificationRepository(db *pgxpool.Pool, redisClient *redis.Client) service.VerificationRepository {
	return &VerificationRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// CreateReport создает новую запись об отчете в бд
func (r *VerificationRepository) CreateReport(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (hazard_type, description, latitude, longitude, location_name, severity, reporter_id, images, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.HazardType,
		report.Description,
		report.Latitude,
		report.Longitude,
		report.LocationName,
		report.Severity,
		report.ReporterID,
		report.Images,
		report.Status,
		report.SubmittedAt,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetReport возвращает отчет по его UUID
func (r *VerificationRepository) GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	report := &models.Report{}
	query := `
		SELECT
			id,
			hazard_type,
			description,
			latitude,
			longitude,
			location_name,
			severity,
			reporter_id,
			images,
			status,
			COALESCE(ticket_id, ''),
			submitted_at,
			created_at,
			updated_at
		FROM reports
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.HazardType,
		&report.Description,
		&report.Latitude,
		&report.Longitude,
		&report.LocationName,
		&report.Severity,
		&report.ReporterID,
		&report.Images,
		&report.Status,
		&report.TicketID,
		&report.SubmittedAt,
		&report.CreatedAt,
		&report.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report %s: %w", id, verifier.ErrReportNotFound)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// UpdateReportStatus переводит отчет в новый статус верификации
func (r *VerificationRepository) UpdateReportStatus(ctx context.Context, id uuid.UUID, state models.VerificationState) error {
	query := `
		UPDATE reports SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, state, id)
	if err != nil {
		return fmt.Errorf("failed to update report status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report %s not found for status update: %w", id, verifier.ErrReportNotFound)
	}
	return nil
}

// SetReportTicket сохраняет ссылку на созданный тикет
func (r *VerificationRepository) SetReportTicket(ctx context.Context, id uuid.UUID, ticketID string) error {
	query := `
		UPDATE reports SET
			ticket_id = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, ticketID, id)
	if err != nil {
		return fmt.Errorf("failed to set report ticket: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report %s not found for ticket update: %w", id, verifier.ErrReportNotFound)
	}
	return nil
}

// SaveVerificationResult сохраняет попытку оценки; история append-only
func (r *VerificationRepository) SaveVerificationResult(ctx context.Context, result *models.VerificationResult) error {
	layerResults, err := json.Marshal(result.LayerResults)
	if err != nil {
		return fmt.Errorf("failed to marshal layer results: %w", err)
	}
	weightsUsed, err := json.Marshal(result.WeightsUsed)
	if err != nil {
		return fmt.Errorf("failed to marshal weights used: %w", err)
	}

	query := `
		INSERT INTO verification_attempts (id, report_id, attempt_number, layer_results, weights_used, composite_score, decision, computed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = r.db.Exec(ctx, query,
		result.ID,
		result.ReportID,
		result.AttemptNumber,
		layerResults,
		weightsUsed,
		result.CompositeScore,
		result.Decision,
		result.ComputedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save verification result: %w", err)
	}
	return nil
}

// LatestVerificationResult возвращает результат последней попытки оценки
func (r *VerificationRepository) LatestVerificationResult(ctx context.Context, reportID uuid.UUID) (*models.VerificationResult, error) {
	query := `
		SELECT id, report_id, attempt_number, layer_results, weights_used, composite_score, decision, computed_at
		FROM verification_attempts
		WHERE report_id = $1
		ORDER BY attempt_number DESC
		LIMIT 1;
	`
	result := &models.VerificationResult{}
	var layerResults, weightsUsed []byte
	err := r.db.QueryRow(ctx, query, reportID).Scan(
		&result.ID,
		&result.ReportID,
		&result.AttemptNumber,
		&layerResults,
		&weightsUsed,
		&result.CompositeScore,
		&result.Decision,
		&result.ComputedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report %s: %w", reportID, verifier.ErrNoVerification)
		}
		return nil, fmt.Errorf("failed to get latest verification result: %w", err)
	}

	if err := json.Unmarshal(layerResults, &result.LayerResults); err != nil {
		return nil, fmt.Errorf("failed to unmarshal layer results: %w", err)
	}
	if err := json.Unmarshal(weightsUsed, &result.WeightsUsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weights used: %w", err)
	}
	return result, nil
}

// NextAttemptNumber выдает номер следующей попытки для отчета
func (r *VerificationRepository) NextAttemptNumber(ctx context.Context, reportID uuid.UUID) (int, error) {
	query := `
		SELECT COALESCE(MAX(attempt_number), 0) + 1
		FROM verification_attempts
		WHERE report_id = $1;
	`
	var next int
	if err := r.db.QueryRow(ctx, query, reportID).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to get next attempt number: %w", err)
	}
	return next, nil
}

// SaveAnalystDecision сохраняет решение аналитика в журнал аудита
func (r *VerificationRepository) SaveAnalystDecision(ctx context.Context, decision *models.AnalystDecision) error {
	query := `
		INSERT INTO analyst_decisions (id, report_id, analyst_id, action, reason, decided_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query,
		decision.ID,
		decision.ReportID,
		decision.AnalystID,
		decision.Action,
		decision.Reason,
		decision.DecidedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save analyst decision: %w", err)
	}
	return nil
}

// GetVerificationFromCache пытается получить последний результат из Redis
func (r *VerificationRepository) GetVerificationFromCache(ctx context.Context, reportID uuid.UUID) (*models.VerificationResult, error) {
	key := fmt.Sprintf("verification:%s", reportID.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get verification result from cache: %w", err)
	}

	result := &models.VerificationResult{}
	if err := json.Unmarshal(val, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verification result from cache: %w", err)
	}
	return result, nil
}

// SetVerificationCache сохраняет последний результат в Redis
func (r *VerificationRepository) SetVerificationCache(ctx context.Context, result *models.VerificationResult) error {
	key := fmt.Sprintf("verification:%s", result.ReportID.String())
	val, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal verification result for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, verificationCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set verification result in cache: %w", err)
	}
	return nil
}

// InvalidateVerificationCache удаляет результат из Redis кэша
func (r *VerificationRepository) InvalidateVerificationCache(ctx context.Context, reportID uuid.UUID) error {
	key := fmt.Sprintf("verification:%s", reportID.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate verification cache: %w", err)
	}
	return nil
}
