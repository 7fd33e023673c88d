package templates

import "github.com/charlesng35/marketadmin/internal/models"

var catalog = []Template{
	{
		Key:      "account_registration",
		Category: CategoryAccount,
		Type:     models.NotificationSystemAlert,
		Title:    "Welcome to the Marketplace",
		Message:  "Hi ${userName}, your account has been created. Start exploring listings today!",
		Audience: models.AudienceAll,
	},
	{
		Key:      "password_change",
		Category: CategoryAccount,
		Type:     models.NotificationSystemAlert,
		Title:    "Password Changed",
		Message:  "Hi ${userName}, your password was changed on ${changeDate}. Contact support if this wasn't you.",
		Audience: models.AudienceAll,
	},
	{
		Key:      "buyer_offer_submitted",
		Category: CategoryBuyerJourney,
		Type:     models.NotificationBuyerMessage,
		Title:    "Offer Submitted",
		Message:  "Your offer of ${offerAmount} on ${itemName} has been sent to the seller",
		Audience: models.AudienceBuyers,
	},
	{
		Key:      "buyer_offer_accepted",
		Category: CategoryBuyerJourney,
		Type:     models.NotificationBuyerMessage,
		Title:    "Offer Accepted",
		Message:  "Your offer on ${itemName} was accepted",
		Audience: models.AudienceBuyers,
	},
	{
		Key:      "buyer_offer_rejected",
		Category: CategoryBuyerJourney,
		Type:     models.NotificationBuyerMessage,
		Title:    "Offer Declined",
		Message:  "Your offer on ${itemName} was declined by ${sellerName}",
		Audience: models.AudienceBuyers,
	},
	{
		Key:      "buyer_purchase_confirmation",
		Category: CategoryBuyerJourney,
		Type:     models.NotificationBuyerMessage,
		Title:    "Purchase Confirmed",
		Message:  "Thank you for purchasing ${itemName} for ${amount}. Order ${orderNumber} is being prepared.",
		Audience: models.AudienceBuyers,
	},
	{
		Key:      "buyer_item_shipped",
		Category: CategoryBuyerJourney,
		Type:     models.NotificationBuyerMessage,
		Title:    "Item Shipped",
		Message:  "${itemName} is on its way. Tracking number: ${trackingNumber}",
		Audience: models.AudienceBuyers,
	},
	{
		Key:      "buyer_feedback_reminder",
		Category: CategoryBuyerJourney,
		Type:     models.NotificationBuyerMessage,
		Title:    "How Was Your Purchase?",
		Message:  "Please leave feedback for ${sellerName} on ${itemName}",
		Audience: models.AudienceBuyers,
	},
	{
		Key:      "seller_offer_received",
		Category: CategorySellerJourney,
		Type:     models.NotificationSellerMessage,
		Title:    "New Offer Received",
		Message:  "${buyerName} offered ${offerAmount} for ${itemName}",
		Audience: models.AudienceSellers,
	},
	{
		Key:      "seller_offer_accepted",
		Category: CategorySellerJourney,
		Type:     models.NotificationSellerMessage,
		Title:    "Offer Accepted",
		Message:  "You accepted ${buyerName}'s offer on ${itemName}. Prepare the item for shipment.",
		Audience: models.AudienceSellers,
	},
	{
		Key:      "seller_offer_rejected",
		Category: CategorySellerJourney,
		Type:     models.NotificationSellerMessage,
		Title:    "Offer Rejected",
		Message:  "You declined ${buyerName}'s offer on ${itemName}",
		Audience: models.AudienceSellers,
	},
	{
		Key:      "seller_payment_received",
		Category: CategorySellerJourney,
		Type:     models.NotificationSellerMessage,
		Title:    "Payment Received",
		Message:  "Payment of ${amount} for ${itemName} has been received and added to your balance",
		Audience: models.AudienceSellers,
	},
	{
		Key:      "seller_shipment_reminder",
		Category: CategorySellerJourney,
		Type:     models.NotificationSellerMessage,
		Title:    "Shipment Reminder",
		Message:  "Please ship ${itemName} to ${buyerName} by ${shipByDate}",
		Audience: models.AudienceSellers,
	},
	{
		Key:      "seller_feedback_received",
		Category: CategorySellerJourney,
		Type:     models.NotificationSellerMessage,
		Title:    "New Feedback",
		Message:  "${buyerName} left ${rating}-star feedback on ${itemName}",
		Audience: models.AudienceSellers,
	},
}
