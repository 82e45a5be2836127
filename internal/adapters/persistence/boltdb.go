package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	boltdb "github.com/andrew-solarstorm/bolt-db"
	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
)

const (
	SwapsBucket = "swaps"

	DefaultDBPath = "./data/swaplaunch.db"
)

// Storage persists executed swap records. Records are append-only; the only
// read path is the recent-history listing.
type Storage struct {
	db     *boltdb.BoltDatabase
	dbPath string
}

func NewStorage(dbPath string) (*Storage, error) {
	if dbPath == "" {
		dbPath = DefaultDBPath
	}
	os.MkdirAll(filepath.Dir(dbPath), 0755)

	db := boltdb.NewBoltDatabase(dbPath)
	if db == nil {
		return nil, fmt.Errorf("failed to open database at %s", dbPath)
	}

	log.Info().Str("path", dbPath).Msg("[swapStorage] opened database")

	return &Storage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSwap stores one executed swap keyed by its ID.
func (s *Storage) SaveSwap(record *domain.SwapRecord) error {
	data, err := sonic.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal swap record: %w", err)
	}
	return s.db.Set(SwapsBucket, []byte(record.ID), data)
}

// SaveSwapBatch writes several records in one transaction.
func (s *Storage) SaveSwapBatch(records []*domain.SwapRecord) error {
	if len(records) == 0 {
		return nil
	}

	batch := s.db.NewBatch()
	for _, record := range records {
		data, err := sonic.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal swap record %s: %w", record.ID, err)
		}

		value := data
		op := &boltdb.WriteOperation{
			Bucket: []byte(SwapsBucket),
			Key:    []byte(record.ID),
			Value:  &value,
			Op:     boltdb.OpSet,
		}
		if err := batch.Add(op); err != nil {
			return fmt.Errorf("failed to add swap %s to batch: %w", record.ID, err)
		}
	}

	if err := batch.Execute(); err != nil {
		log.Error().Err(err).Int("count", len(records)).Msg("[swapStorage] failed to execute batch")
		return err
	}
	return nil
}

// ListSwaps returns stored swaps newest first, optionally filtered by wallet,
// capped at limit. A zero limit means no cap.
func (s *Storage) ListSwaps(walletAddress string, limit int) ([]*domain.SwapRecord, error) {
	raw, err := s.db.List(SwapsBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to list swaps: %w", err)
	}

	records := make([]*domain.SwapRecord, 0, len(raw))
	for key, data := range raw {
		var record domain.SwapRecord
		if err := sonic.Unmarshal(data, &record); err != nil {
			log.Warn().Str("key", key).Err(err).Msg("[swapStorage] skipping corrupt swap record")
			continue
		}
		if walletAddress != "" && !strings.EqualFold(record.WalletAddress, walletAddress) {
			continue
		}
		records = append(records, &record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
