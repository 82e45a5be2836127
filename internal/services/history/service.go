package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	container "github.com/thehyperflames/dicontainer-go"

	"github.com/ivan0796/swaplaunch-sub000/internal/adapters/persistence"
	"github.com/ivan0796/swaplaunch-sub000/internal/common"
	"github.com/ivan0796/swaplaunch-sub000/internal/config"
	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
	"github.com/ivan0796/swaplaunch-sub000/internal/metrics"
)

const HISTORY_SERVICE = "history-service"

// Service records executed swaps and serves the recent-history listing.
// History is an optional convenience; when disabled the service accepts
// writes as no-ops so callers need no special casing.
type Service struct {
	container.BaseDIInstance
	logger *common.ServiceLogger

	conf    *config.HistoryConfig
	storage *persistence.Storage
}

func (svc *Service) ID() string {
	return HISTORY_SERVICE
}

func (svc *Service) Configure(c container.IContainer) error {
	svc.logger = common.NewServiceLogger(svc)
	svc.conf = c.GetConfig(config.HISTORY_CONFIG_KEY).(*config.HistoryConfig)
	return nil
}

func (svc *Service) Start() error {
	if !svc.conf.Enabled {
		return nil
	}
	storage, err := persistence.NewStorage(svc.conf.DBPath)
	if err != nil {
		return err
	}
	svc.storage = storage
	return nil
}

func (svc *Service) Stop() error {
	if svc.storage != nil {
		return svc.storage.Close()
	}
	return nil
}

// LogSwap validates and persists one executed swap. The ID and timestamp are
// assigned here; callers send only the trade facts.
func (svc *Service) LogSwap(record *domain.SwapRecord) error {
	if record.WalletAddress == "" || record.TokenIn == "" || record.TokenOut == "" {
		return fmt.Errorf("%w: wallet and token addresses are required", common.ErrValidation)
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	if svc.storage == nil {
		return nil
	}
	if err := svc.storage.SaveSwap(record); err != nil {
		svc.logger.Error(err, "failed to persist swap", "LogSwap")
		return err
	}
	metrics.SwapsLogged.Inc()
	return nil
}

// ListSwaps returns recent swaps newest first, capped by the configured
// listing limit.
func (svc *Service) ListSwaps(walletAddress string) ([]*domain.SwapRecord, error) {
	if svc.storage == nil {
		return []*domain.SwapRecord{}, nil
	}
	return svc.storage.ListSwaps(walletAddress, svc.conf.ListLimit)
}
