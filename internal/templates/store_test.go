package templates

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/marketadmin/internal/models"
	apperrors "github.com/charlesng35/marketadmin/pkg/errors"
)

func TestDefaultStoreGet(t *testing.T) {
	tpl, err := DefaultStore().Get("buyer_offer_accepted")
	require.NoError(t, err)
	require.Equal(t, "Your offer on ${itemName} was accepted", tpl.Message)
	require.Equal(t, models.NotificationBuyerMessage, tpl.Type)
	require.Equal(t, models.AudienceBuyers, tpl.Audience)
	require.Equal(t, []string{"itemName"}, tpl.Variables())
}

func TestDefaultStoreGetUnknownKey(t *testing.T) {
	_, err := DefaultStore().Get("seller_vacation_mode")
	require.Error(t, err)
	require.True(t, errors.Is(err, apperrors.ErrNotFound))
	require.True(t, errors.Is(err, ErrTemplateNotFound))
	require.Contains(t, err.Error(), "seller_vacation_mode")
}

func TestDefaultStoreCategories(t *testing.T) {
	store := DefaultStore()
	categories := store.Categories()

	require.Equal(t, []string{"account_registration", "password_change"}, categories[CategoryAccount])
	require.Len(t, categories[CategoryBuyerJourney], 6)
	require.Len(t, categories[CategorySellerJourney], 6)
	require.Len(t, store.List(), 14)
	require.Equal(t, "account_registration", store.List()[0].Key)
}

func TestDefaultStoreIsShared(t *testing.T) {
	require.Same(t, DefaultStore(), DefaultStore())
}

func TestNewStoreRejectsInvalidCatalogs(t *testing.T) {
	valid := Template{Key: "k", Type: models.NotificationSystemAlert, Audience: models.AudienceAll}

	_, err := NewStore(valid, valid)
	require.ErrorContains(t, err, "duplicate key")

	_, err = NewStore(Template{Key: " ", Type: models.NotificationSystemAlert, Audience: models.AudienceAll})
	require.ErrorContains(t, err, "key is required")

	_, err = NewStore(Template{Key: "x", Type: "sms", Audience: models.AudienceAll})
	require.ErrorContains(t, err, "unknown type")

	_, err = NewStore(Template{Key: "x", Type: models.NotificationSystemAlert, Audience: "admins"})
	require.ErrorContains(t, err, "unknown audience")
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "Buyer Offer Accepted", DisplayName("buyer_offer_accepted"))
	require.Equal(t, "Password Change", DisplayName("password_change"))
	require.Equal(t, "", DisplayName(""))
}
