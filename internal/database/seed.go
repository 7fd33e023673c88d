package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/charlesng35/marketadmin/internal/models"
)

// DefaultTermsVersion is the version of the seeded terms and conditions document.
const DefaultTermsVersion = "2.1"

// DefaultTerms is the seeded terms and conditions document.
const DefaultTerms = `TERMS AND CONDITIONS

1. User Agreement
By using the marketplace, you agree to these terms and conditions.

2. User Responsibilities
Users are responsible for accurate listings and transactions.

3. Fees
The marketplace charges a transaction fee on all completed sales.

4. Prohibited Items
Counterfeit, illegal, or offensive items are strictly prohibited.

5. Dispute Resolution
All disputes will be reviewed by admin and resolved fairly.

6. Account Management
Accounts may be suspended or deactivated for violations.

7. Privacy
User data is protected according to our privacy policy.

8. Modifications
These terms may be updated at any time.`

// SeedData loads the demo marketplace dataset. Collections that already hold records are left
// untouched, so seeding is safe to repeat.
func SeedData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name  string
			model any
			rows  any
		}{
			{"users", &models.User{}, seedUsers()},
			{"listings", &models.Listing{}, seedListings()},
			{"transactions", &models.Transaction{}, seedTransactions()},
			{"affiliates", &models.Affiliate{}, seedAffiliates()},
			{"payouts", &models.PayoutRequest{}, seedPayouts()},
			{"disputes", &models.Dispute{}, seedDisputes()},
			{"notifications", &models.Notification{}, seedNotifications()},
		}

		for _, step := range steps {
			var count int64
			if err := tx.Model(step.model).Count(&count).Error; err != nil {
				return fmt.Errorf("count %s: %w", step.name, err)
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(step.rows).Error; err != nil {
				return fmt.Errorf("seed %s: %w", step.name, err)
			}
		}

		terms := []models.Setting{
			{Key: models.SettingTermsContent, Value: DefaultTerms},
			{Key: models.SettingTermsVersion, Value: DefaultTermsVersion},
		}
		for _, setting := range terms {
			if err := tx.Where(models.Setting{Key: setting.Key}).Attrs(setting).FirstOrCreate(&models.Setting{}).Error; err != nil {
				return fmt.Errorf("seed setting %s: %w", setting.Key, err)
			}
		}
		return nil
	})
}

func day(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(value string) *time.Time {
	t := day(value)
	return &t
}

func seedUsers() []models.User {
	return []models.User{
		{
			Name: "Ahmed Al-Saud", Email: "ahmed@example.com", Type: models.UserBuyer, Status: models.UserActive,
			JoinedAt: day("2024-01-15"), TotalPurchases: 23, TotalSpent: 45000,
			History: []models.AccountActivity{
				{OccurredAt: day("2024-11-01"), Action: "Purchase", Item: "Luxury Watch", Amount: 5000},
				{OccurredAt: day("2024-10-25"), Action: "Purchase", Item: "Electronics", Amount: 3000},
			},
		},
		{
			Name: "Fatima Hassan", Email: "fatima@example.com", Type: models.UserSeller, Status: models.UserActive,
			JoinedAt: day("2024-02-20"), TotalListings: 15, TotalSales: 89000,
			History: []models.AccountActivity{
				{OccurredAt: day("2024-11-05"), Action: "Sale", Item: "Jewelry Set", Amount: 12000},
				{OccurredAt: day("2024-10-30"), Action: "Listing", Item: "Artwork"},
			},
		},
		{
			Name: "Mohammed Ali", Email: "mohammed@example.com", Type: models.UserBuyer, Status: models.UserSuspended,
			JoinedAt: day("2024-03-10"), TotalPurchases: 5, TotalSpent: 8000,
		},
		{
			Name: "Sara Ibrahim", Email: "sara@example.com", Type: models.UserSeller, Status: models.UserDeactivated,
			JoinedAt: day("2023-12-05"), TotalListings: 8, TotalSales: 25000,
		},
		{
			Name: "Khalid Abdullah", Email: "khalid@example.com", Type: models.UserBuyer, Status: models.UserActive,
			JoinedAt: day("2024-04-18"), TotalPurchases: 12, TotalSpent: 18000,
		},
	}
}

func seedListings() []models.Listing {
	return []models.Listing{
		{Title: "Vintage Rolex Watch", Seller: "Fatima Hassan", Category: "Watches", Price: 15000, Status: models.ListingActive, Views: 234, Featured: true, Reviewed: true, Approved: true},
		{Title: "Designer Handbag Collection", Seller: "Sara Ibrahim", Category: "Fashion", Price: 8500, Status: models.ListingActive, Views: 156},
		{Title: "Luxury Car - Mercedes S-Class", Seller: "Ahmed Al-Saud", Category: "Vehicles", Price: 250000, Status: models.ListingSold, Views: 890, Featured: true, Reviewed: true, Approved: true},
		{Title: "Counterfeit Product - REMOVED", Seller: "Unknown", Category: "Electronics", Price: 500, Status: models.ListingRemoved, Views: 45, Reviewed: true, ViolationReason: "Counterfeit product"},
		{Title: "Art Collection", Seller: "Fatima Hassan", Category: "Art", Price: 35000, Status: models.ListingActive, Views: 67, Featured: true, Reviewed: true, Approved: true},
	}
}

func seedTransactions() []models.Transaction {
	return []models.Transaction{
		{Type: models.TransactionOffer, Buyer: "Ahmed Al-Saud", Seller: "Fatima Hassan", Item: "Vintage Rolex Watch", Amount: 14000, OriginalPrice: 15000, Status: models.TransactionPending, OccurredAt: day("2024-11-07"), PlatformFee: 700},
		{Type: models.TransactionAcceptedOffer, Buyer: "Khalid Abdullah", Seller: "Sara Ibrahim", Item: "Designer Handbag", Amount: 8000, OriginalPrice: 8500, Status: models.TransactionCompleted, OccurredAt: day("2024-11-05"), PlatformFee: 400},
		{Type: models.TransactionPurchase, Buyer: "Ahmed Al-Saud", Seller: "Fatima Hassan", Item: "Jewelry Set", Amount: 12000, Status: models.TransactionCompleted, OccurredAt: day("2024-11-03"), PlatformFee: 600},
		{Type: models.TransactionOffer, Buyer: "Mohammed Ali", Seller: "Fatima Hassan", Item: "Art Collection", Amount: 30000, OriginalPrice: 35000, Status: models.TransactionRejected, OccurredAt: day("2024-11-06")},
	}
}

func seedAffiliates() []models.Affiliate {
	return []models.Affiliate{
		{Name: "Omar Farouk", Email: "omar@partners.example.com", ReferralCode: "OMAR2024", CommissionRate: 10, Status: models.AffiliateActive, TotalReferrals: 45, TotalSales: 125000, TotalEarnings: 12500, PendingEarnings: 2500, PaidEarnings: 10000, LastActivity: dayPtr("2024-11-08")},
		{Name: "Layla Mansour", Email: "layla@partners.example.com", ReferralCode: "LAYLA15", CommissionRate: 15, Status: models.AffiliateActive, TotalReferrals: 32, TotalSales: 89000, TotalEarnings: 13350, PendingEarnings: 3350, PaidEarnings: 10000, LastActivity: dayPtr("2024-11-07")},
		{Name: "Yusuf Karim", Email: "yusuf@partners.example.com", ReferralCode: "YUSUF8", CommissionRate: 8, Status: models.AffiliateDeactivated, TotalReferrals: 12, TotalSales: 24000, TotalEarnings: 1920, PaidEarnings: 1920, LastActivity: dayPtr("2024-09-14")},
	}
}

func seedPayouts() []models.PayoutRequest {
	return []models.PayoutRequest{
		{PayeeKind: models.PayeeSeller, PayeeID: 2, PayeeName: "Fatima Hassan", Amount: 50000, RequestedAt: day("2024-11-08"), PaymentMethod: "Bank Transfer", AccountDetails: "Bank Account ****1234", Status: models.PayoutPending},
		{PayeeKind: models.PayeeSeller, PayeeID: 4, PayeeName: "Sara Ibrahim", Amount: 15000, RequestedAt: day("2024-11-07"), PaymentMethod: "Bank Transfer", AccountDetails: "Bank Account ****5678", Status: models.PayoutApproved, ApprovedAt: dayPtr("2024-11-08")},
		{PayeeKind: models.PayeeSeller, PayeeID: 1, PayeeName: "Ahmed Al-Saud", Amount: 25000, RequestedAt: day("2024-11-06"), PaymentMethod: "Bank Transfer", AccountDetails: "Bank Account ****9012", Status: models.PayoutPending},
		{PayeeKind: models.PayeeAffiliate, PayeeID: 1, PayeeName: "Omar Farouk", Amount: 2500, RequestedAt: day("2024-11-08"), PaymentMethod: "PayPal", AccountDetails: "omar@partners.example.com", Status: models.PayoutPending},
		{PayeeKind: models.PayeeAffiliate, PayeeID: 2, PayeeName: "Layla Mansour", Amount: 3350, RequestedAt: day("2024-11-05"), PaymentMethod: "Bank Transfer", AccountDetails: "Bank Account ****3456", Status: models.PayoutPending},
		{PayeeKind: models.PayeeAffiliate, PayeeID: 3, PayeeName: "Yusuf Karim", Amount: 600, RequestedAt: day("2024-09-10"), PaymentMethod: "PayPal", AccountDetails: "yusuf@partners.example.com", Status: models.PayoutRejected, RejectionReason: "Referral activity under review"},
	}
}

func seedDisputes() []models.Dispute {
	return []models.Dispute{
		{CaseNumber: "DISP-2024-001", Type: models.DisputeProductQuality, Buyer: "Ahmed Al-Saud", Seller: "Fatima Hassan", Item: "Vintage Rolex Watch", Description: "Product received does not match description. Watch is not authentic.", Status: models.DisputeOpen},
		{CaseNumber: "DISP-2024-002", Type: models.DisputeDeliveryIssue, Buyer: "Khalid Abdullah", Seller: "Sara Ibrahim", Item: "Designer Handbag", Description: "Item not delivered within promised timeframe.", Status: models.DisputeResolved, AdminNotes: "Resolved: Seller provided refund and buyer accepted.", Resolution: "Refund issued", ResolvedAt: dayPtr("2024-11-02")},
		{CaseNumber: "DISP-2024-003", Type: models.DisputePayment, Buyer: "Mohammed Ali", Seller: "Fatima Hassan", Item: "Art Collection", Description: "Payment processed but item not received.", Status: models.DisputeOpen, AdminNotes: "Investigating payment records."},
	}
}

func seedNotifications() []models.Notification {
	return []models.Notification{
		{Type: models.NotificationSystemAlert, Title: "New User Registration", Message: "124 new users registered this week", Audience: models.AudienceAll, Active: true},
		{Type: models.NotificationSellerMessage, Title: "Payment Reminder", Message: "Your payment for listing fees is due", Audience: models.AudienceSellers, Active: true},
		{Type: models.NotificationBuyerMessage, Title: "New Listings Available", Message: "Check out the latest items in your favorite categories", Audience: models.AudienceBuyers, Active: true},
	}
}
