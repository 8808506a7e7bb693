package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/coastal_verification_system/internal/config"
	"github.com/shenikar/coastal_verification_system/internal/models"
	"github.com/shenikar/coastal_verification_system/internal/observability"
	"github.com/shenikar/coastal_verification_system/internal/service"
	"github.com/shenikar/coastal_verification_system/internal/verifier"
	"github.com/sirupsen/logrus"
)

// Manager — очередь ручной проверки: записи в Postgres, захваты аналитиков —
// оптимистичные токены в Redis с TTL. Блокировка точечная, на отдельный отчет,
// а не на всю очередь.
type Manager struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	logger      *logrus.Logger
	metrics     *observability.Metrics
	cfg         *config.Config
}

// NewManager создает менеджер очереди
func NewManager(db *pgxpool.Pool, redisClient *redis.Client, logger *logrus.Logger, metrics *observability.Metrics, cfg *config.Config) service.QueueManager {
	return &Manager{
		db:          db,
		redisClient: redisClient,
		logger:      logger,
		metrics:     metrics,
		cfg:         cfg,
	}
}

func claimKey(reportID uuid.UUID) string {
	return fmt.Sprintf("queue_claim:%s", reportID.String())
}

// Enqueue добавляет или обновляет запись очереди. При обновлении время
// постановки сохраняется, чтобы tie-break по enqueued_at был стабильным.
func (m *Manager) Enqueue(ctx context.Context, entry *models.QueueEntry) error {
	query := `
		INSERT INTO review_queue (report_id, composite_score, state, enqueued_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (report_id) DO UPDATE SET
			composite_score = EXCLUDED.composite_score,
			state = EXCLUDED.state;
	`
	_, err := m.db.Exec(ctx, query,
		entry.ReportID,
		entry.CompositeScore,
		entry.State,
		entry.EnqueuedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue report for review: %w", err)
	}
	return nil
}

// Remove удаляет запись очереди и ее захват; вызывается на любом переходе
// из needs_manual_review/investigating
func (m *Manager) Remove(ctx context.Context, reportID uuid.UUID) error {
	if _, err := m.db.Exec(ctx, `DELETE FROM review_queue WHERE report_id = $1;`, reportID); err != nil {
		return fmt.Errorf("failed to remove queue entry: %w", err)
	}
	if err := m.redisClient.Del(ctx, claimKey(reportID)).Err(); err != nil {
		m.logger.WithError(err).WithField("report_id", reportID).Warn("Failed to drop claim on queue removal")
	}
	return nil
}

// List возвращает записи очереди: наименьший composite_score первым (самые
// сомнительные отчеты требуют внимания раньше), tie-break по времени постановки
func (m *Manager) List(ctx context.Context, limit int, minScore, maxScore *float64) ([]*models.QueueEntry, error) {
	query := `
		SELECT q.report_id, r.hazard_type, r.severity, q.state, q.composite_score, q.enqueued_at
		FROM review_queue q
		JOIN reports r ON r.id = q.report_id
		WHERE ($2::float8 IS NULL OR q.composite_score >= $2)
		  AND ($3::float8 IS NULL OR q.composite_score <= $3)
		ORDER BY q.composite_score ASC, q.enqueued_at ASC
		LIMIT $1;
	`
	rows, err := m.db.Query(ctx, query, limit, minScore, maxScore)
	if err != nil {
		return nil, fmt.Errorf("failed to list review queue: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.QueueEntry, 0)
	for rows.Next() {
		entry := &models.QueueEntry{}
		err := rows.Scan(
			&entry.ReportID,
			&entry.HazardType,
			&entry.Severity,
			&entry.State,
			&entry.CompositeScore,
			&entry.EnqueuedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan queue entry row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error queue list iteration: %w", err)
	}

	// Захваты точечные и живут в Redis; отсутствие ключа — запись свободна
	for _, entry := range entries {
		holder, err := m.redisClient.Get(ctx, claimKey(entry.ReportID)).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			m.logger.WithError(err).WithField("report_id", entry.ReportID).Warn("Failed to read claim holder")
			continue
		}
		entry.ClaimedBy = holder
	}

	return entries, nil
}

// refreshClaimScript продлевает захват, только пока он принадлежит этому
// аналитику. Сравнение и продление атомарны: истекший и перехваченный другим
// аналитиком захват продлить нельзя.
var refreshClaimScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// Claim захватывает запись за аналитиком через SET NX с TTL.
// Повторный захват тем же аналитиком продлевает TTL; чужой действующий захват
// дает ErrAlreadyClaimed. Истекший TTL освобождает запись автоматически.
func (m *Manager) Claim(ctx context.Context, reportID uuid.UUID, analystID string) error {
	var exists bool
	err := m.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM review_queue WHERE report_id = $1);`, reportID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check queue entry: %w", err)
	}
	if !exists {
		return fmt.Errorf("report %s is not in the review queue: %w", reportID, verifier.ErrReportNotFound)
	}

	return m.claimToken(ctx, reportID, analystID)
}

func (m *Manager) claimToken(ctx context.Context, reportID uuid.UUID, analystID string) error {
	ok, err := m.redisClient.SetNX(ctx, claimKey(reportID), analystID, m.cfg.ClaimTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to set claim token: %w", err)
	}
	if ok {
		if m.metrics != nil {
			m.metrics.QueueClaimsTotal.WithLabelValues("acquired").Inc()
		}
		return nil
	}

	extended, err := refreshClaimScript.Run(ctx, m.redisClient,
		[]string{claimKey(reportID)}, analystID, m.cfg.ClaimTTL.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("failed to refresh claim token: %w", err)
	}
	if extended == 1 {
		return nil
	}

	holder, err := m.redisClient.Get(ctx, claimKey(reportID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to read claim holder: %w", err)
	}

	if m.metrics != nil {
		m.metrics.QueueClaimsTotal.WithLabelValues("conflict").Inc()
	}
	return fmt.Errorf("report %s is claimed by %q: %w", reportID, holder, verifier.ErrAlreadyClaimed)
}

// Release явно освобождает захват (аналитик ушел со страницы)
func (m *Manager) Release(ctx context.Context, reportID uuid.UUID) error {
	if err := m.redisClient.Del(ctx, claimKey(reportID)).Err(); err != nil {
		return fmt.Errorf("failed to release claim token: %w", err)
	}
	if m.metrics != nil {
		m.metrics.QueueClaimsTotal.WithLabelValues("released").Inc()
	}
	return nil
}
