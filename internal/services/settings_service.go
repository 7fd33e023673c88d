package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/charlesng35/marketadmin/internal/models"
	apperrors "github.com/charlesng35/marketadmin/pkg/errors"
	"github.com/charlesng35/marketadmin/pkg/logger"
)

// FeeSettings are the platform fees charged on sales.
type FeeSettings struct {
	PlatformPercent float64 `json:"platform_percent"`
	TransactionFee  float64 `json:"transaction_fee"`
}

// Validate checks the fee bounds.
func (f FeeSettings) Validate() error {
	if f.PlatformPercent < 0 || f.PlatformPercent > 100 {
		return apperrors.NewValidation("platform fee percentage must be between 0 and 100")
	}
	if f.TransactionFee < 0 {
		return apperrors.NewValidation("transaction fee must not be negative")
	}
	return nil
}

// FeeFor returns the platform fee charged on a sale of amount.
func (f FeeSettings) FeeFor(amount float64) float64 {
	return amount*f.PlatformPercent/100 + f.TransactionFee
}

// Terms is the published terms and conditions document.
type Terms struct {
	Content   string    `json:"content"`
	Version   string    `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SettingsService owns operator-editable platform settings.
type SettingsService struct {
	mu       sync.Mutex
	db       *gorm.DB
	defaults FeeSettings
	log      *zap.Logger
}

// NewSettingsService constructs a SettingsService. defaults apply until fees are first saved.
func NewSettingsService(db *gorm.DB, defaults FeeSettings) (*SettingsService, error) {
	if db == nil {
		return nil, errors.New("settings service: db is required")
	}
	if err := defaults.Validate(); err != nil {
		return nil, fmt.Errorf("settings service: invalid default fees: %w", err)
	}
	return &SettingsService{db: db, defaults: defaults, log: logger.WithModule("settings")}, nil
}

// Fees returns the current fee settings.
func (s *SettingsService) Fees(ctx context.Context) (FeeSettings, error) {
	ctx = ensureContext(ctx)

	values, err := s.load(s.db.WithContext(ctx), models.SettingPlatformFeePercent, models.SettingTransactionFee)
	if err != nil {
		return FeeSettings{}, err
	}

	fees := s.defaults
	if raw, ok := values[models.SettingPlatformFeePercent]; ok {
		if fees.PlatformPercent, err = strconv.ParseFloat(raw.Value, 64); err != nil {
			return FeeSettings{}, fmt.Errorf("settings service: parse platform fee: %w", err)
		}
	}
	if raw, ok := values[models.SettingTransactionFee]; ok {
		if fees.TransactionFee, err = strconv.ParseFloat(raw.Value, 64); err != nil {
			return FeeSettings{}, fmt.Errorf("settings service: parse transaction fee: %w", err)
		}
	}
	return fees, nil
}

// UpdateFees validates and stores new fee settings.
func (s *SettingsService) UpdateFees(ctx context.Context, fees FeeSettings) (FeeSettings, error) {
	ctx = ensureContext(ctx)
	if err := fees.Validate(); err != nil {
		return FeeSettings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.save(tx,
			models.Setting{Key: models.SettingPlatformFeePercent, Value: strconv.FormatFloat(fees.PlatformPercent, 'f', -1, 64)},
			models.Setting{Key: models.SettingTransactionFee, Value: strconv.FormatFloat(fees.TransactionFee, 'f', -1, 64)},
		)
	})
	if err != nil {
		return FeeSettings{}, err
	}

	s.log.Info("fee settings updated",
		zap.Float64("platform_percent", fees.PlatformPercent),
		zap.Float64("transaction_fee", fees.TransactionFee),
	)
	return fees, nil
}

// Terms returns the current terms and conditions.
func (s *SettingsService) Terms(ctx context.Context) (*Terms, error) {
	ctx = ensureContext(ctx)
	return s.terms(s.db.WithContext(ctx))
}

// UpdateTerms replaces the terms content and bumps the minor version.
func (s *SettingsService) UpdateTerms(ctx context.Context, content string) (*Terms, error) {
	ctx = ensureContext(ctx)
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidation("terms content is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var updated *Terms
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.terms(tx)
		if err != nil {
			return err
		}
		version := nextMinorVersion(current.Version)
		if err := s.save(tx,
			models.Setting{Key: models.SettingTermsContent, Value: content},
			models.Setting{Key: models.SettingTermsVersion, Value: version},
		); err != nil {
			return err
		}
		updated, err = s.terms(tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("terms updated", zap.String("version", updated.Version))
	return updated, nil
}

func (s *SettingsService) terms(tx *gorm.DB) (*Terms, error) {
	values, err := s.load(tx, models.SettingTermsContent, models.SettingTermsVersion)
	if err != nil {
		return nil, err
	}

	terms := &Terms{}
	if content, ok := values[models.SettingTermsContent]; ok {
		terms.Content = content.Value
		terms.UpdatedAt = content.UpdatedAt
	}
	if version, ok := values[models.SettingTermsVersion]; ok {
		terms.Version = version.Value
	}
	return terms, nil
}

func (s *SettingsService) load(tx *gorm.DB, keys ...string) (map[string]models.Setting, error) {
	var rows []models.Setting
	if err := tx.Where("key IN ?", keys).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("settings service: load settings: %w", err)
	}
	out := make(map[string]models.Setting, len(rows))
	for _, row := range rows {
		out[row.Key] = row
	}
	return out, nil
}

func (s *SettingsService) save(tx *gorm.DB, settings ...models.Setting) error {
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&settings).Error; err != nil {
		return fmt.Errorf("settings service: save settings: %w", err)
	}
	return nil
}

// nextMinorVersion bumps "major.minor"; anything unparsable restarts at 1.0.
func nextMinorVersion(version string) string {
	major, minor, ok := strings.Cut(strings.TrimSpace(version), ".")
	majorN, errMajor := strconv.Atoi(major)
	minorN, errMinor := strconv.Atoi(minor)
	if !ok || errMajor != nil || errMinor != nil {
		return "1.0"
	}
	return fmt.Sprintf("%d.%d", majorN, minorN+1)
}
