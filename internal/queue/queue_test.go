package queue

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/coastal_verification_system/internal/config"
	"github.com/shenikar/coastal_verification_system/internal/verifier"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClaimManager создает менеджер поверх miniredis; токены захвата
// живут только в Redis, Postgres для этих тестов не нужен
func newTestClaimManager(t *testing.T) (*Manager, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	manager := &Manager{
		redisClient: client,
		logger:      logger,
		cfg:         &config.Config{ClaimTTL: 10 * time.Minute},
	}
	return manager, mr
}

func TestClaimToken_AcquireAndRefresh(t *testing.T) {
	manager, mr := newTestClaimManager(t)
	ctx := context.Background()
	reportID := uuid.New()

	require.NoError(t, manager.claimToken(ctx, reportID, "analyst-1"))

	// Часть TTL прошла; повторный захват тем же аналитиком продлевает его
	mr.FastForward(5 * time.Minute)
	require.NoError(t, manager.claimToken(ctx, reportID, "analyst-1"))

	assert.Equal(t, 10*time.Minute, mr.TTL(claimKey(reportID)))
}

func TestClaimToken_ConflictWithOtherAnalyst(t *testing.T) {
	manager, _ := newTestClaimManager(t)
	ctx := context.Background()
	reportID := uuid.New()

	require.NoError(t, manager.claimToken(ctx, reportID, "analyst-1"))

	err := manager.claimToken(ctx, reportID, "analyst-2")

	require.Error(t, err)
	assert.ErrorIs(t, err, verifier.ErrAlreadyClaimed)
	assert.ErrorContains(t, err, `claimed by "analyst-1"`)
}

func TestClaimToken_ExpiredClaimIsFree(t *testing.T) {
	manager, mr := newTestClaimManager(t)
	ctx := context.Background()
	reportID := uuid.New()

	require.NoError(t, manager.claimToken(ctx, reportID, "analyst-1"))
	mr.FastForward(11 * time.Minute)

	require.NoError(t, manager.claimToken(ctx, reportID, "analyst-2"))
}

func TestClaimToken_RefreshDoesNotStealReassignedClaim(t *testing.T) {
	// Захват analyst-1 истек, и запись успел взять analyst-2; попытка
	// analyst-1 продлить свой бывший захват не должна его перезаписать
	manager, mr := newTestClaimManager(t)
	ctx := context.Background()
	reportID := uuid.New()

	require.NoError(t, manager.claimToken(ctx, reportID, "analyst-1"))
	mr.FastForward(11 * time.Minute)
	require.NoError(t, manager.claimToken(ctx, reportID, "analyst-2"))

	err := manager.claimToken(ctx, reportID, "analyst-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, verifier.ErrAlreadyClaimed)

	holder, getErr := mr.Get(claimKey(reportID))
	require.NoError(t, getErr)
	assert.Equal(t, "analyst-2", holder)
}

func TestRelease_FreesClaimForOtherAnalyst(t *testing.T) {
	manager, _ := newTestClaimManager(t)
	ctx := context.Background()
	reportID := uuid.New()

	require.NoError(t, manager.claimToken(ctx, reportID, "analyst-1"))
	require.NoError(t, manager.Release(ctx, reportID))

	require.NoError(t, manager.claimToken(ctx, reportID, "analyst-2"))
}
