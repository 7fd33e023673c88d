package templates

import (
	"slices"
	"strings"

	"github.com/charlesng35/marketadmin/internal/models"
)

// Category groups templates by the member journey they belong to.
type Category string

const (
	CategoryAccount       Category = "account"
	CategoryBuyerJourney  Category = "buyer_journey"
	CategorySellerJourney Category = "seller_journey"
)

// Template is an immutable notification skeleton.
type Template struct {
	Key      string                  `json:"key"`
	Category Category                `json:"category"`
	Type     models.NotificationType `json:"type"`
	Title    string                  `json:"title"`
	Message  string                  `json:"message"`
	Audience models.Audience         `json:"target_audience"`
}

// Variables lists the placeholder names the template's message expects.
func (t Template) Variables() []string {
	return ExtractPlaceholders(t.Message)
}

// DisplayName turns a template key into a title-cased label, e.g. buyer_offer_accepted
// becomes "Buyer Offer Accepted".
func DisplayName(key string) string {
	words := strings.Split(strings.TrimSpace(key), "_")
	out := words[:0]
	for _, word := range words {
		if word == "" {
			continue
		}
		out = append(out, strings.ToUpper(word[:1])+word[1:])
	}
	return strings.Join(out, " ")
}

func validType(t models.NotificationType) bool {
	return slices.Contains(models.NotificationTypes, t)
}

func validAudience(a models.Audience) bool {
	return slices.Contains(models.Audiences, a)
}
