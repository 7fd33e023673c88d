package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/marketadmin/internal/models"
)

func TestOpenYieldsPrivateDatabases(t *testing.T) {
	first, err := Open(Config{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(first) })

	second, err := Open(Config{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(second) })

	require.NoError(t, AutoMigrateAndSeed(first))
	require.NoError(t, AutoMigrate(second))

	var count int64
	require.NoError(t, second.Model(&models.Dispute{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestNamedDatabasesShareData(t *testing.T) {
	writer, err := Open(Config{Name: "shared-" + t.Name()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(writer) })
	require.NoError(t, AutoMigrateAndSeed(writer))

	reader, err := Open(Config{Name: "shared-" + t.Name()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(reader) })

	var count int64
	require.NoError(t, reader.Model(&models.Notification{}).Count(&count).Error)
	require.EqualValues(t, 3, count)
}

func TestSeedDataLoadsDashboardDataset(t *testing.T) {
	db, err := Open(Config{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, AutoMigrateAndSeed(db))

	counts := map[string]struct {
		model any
		want  int64
	}{
		"users":         {&models.User{}, 5},
		"history":       {&models.AccountActivity{}, 4},
		"listings":      {&models.Listing{}, 5},
		"transactions":  {&models.Transaction{}, 4},
		"affiliates":    {&models.Affiliate{}, 3},
		"payouts":       {&models.PayoutRequest{}, 6},
		"disputes":      {&models.Dispute{}, 3},
		"notifications": {&models.Notification{}, 3},
	}
	for name, tc := range counts {
		var count int64
		require.NoError(t, db.Model(tc.model).Count(&count).Error, name)
		require.Equal(t, tc.want, count, name)
	}

	var dispute models.Dispute
	require.NoError(t, db.Where("case_number = ?", "DISP-2024-002").First(&dispute).Error)
	require.Equal(t, models.DisputeResolved, dispute.Status)
	require.Equal(t, "Refund issued", dispute.Resolution)

	var version models.Setting
	require.NoError(t, db.First(&version, "key = ?", models.SettingTermsVersion).Error)
	require.Equal(t, DefaultTermsVersion, version.Value)
}

func TestSeedDataIsRepeatable(t *testing.T) {
	db, err := Open(Config{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, AutoMigrateAndSeed(db))
	require.NoError(t, SeedData(db))

	var count int64
	require.NoError(t, db.Model(&models.PayoutRequest{}).Count(&count).Error)
	require.EqualValues(t, 6, count)
}
