// Package payments holds the subscription plan catalog and the checkout
// provider used to upgrade a user's tier.
package payments

import "github.com/anonto42/bluo/backend/internal/models"

var plans = []models.SubscriptionPlan{
	{
		ID:           models.PlanID(models.TierFree),
		Tier:         models.TierFree,
		Name:         "Free",
		Price:        0,
		Features:     []string{"Up to 10 posts/day", "Basic profile customization", "Standard feed"},
		AIFeatures:   []string{"5 AI text suggestions/day"},
		StorageLimit: "500 MB",
	},
	{
		ID:    models.PlanID(models.TierPro),
		Tier:  models.TierPro,
		Name:  "Pro",
		Price: 9.99,
		Features: []string{
			"Unlimited posts",
			"Advanced profile customization",
			"Priority feed placement",
			"Analytics dashboard",
		},
		AIFeatures: []string{
			"50 AI text suggestions/day",
			"AI image style suggestions",
			"Content optimization tips",
		},
		StorageLimit: "10 GB",
		Highlighted:  true,
	},
	{
		ID:    models.PlanID(models.TierPremium),
		Tier:  models.TierPremium,
		Name:  "Premium",
		Price: 24.99,
		Features: []string{
			"Unlimited posts",
			"Full profile customization",
			"Priority feed & discovery",
			"Advanced analytics",
			"Verified badge",
		},
		AIFeatures: []string{
			"Unlimited AI text suggestions",
			"AI image generation & editing",
			"Advanced content optimization",
			"Trend prediction",
			"Audience insights",
		},
		StorageLimit: "100 GB",
	},
}

// Plans returns the plan catalog, cheapest first.
func Plans() []models.SubscriptionPlan {
	out := make([]models.SubscriptionPlan, len(plans))
	for i, p := range plans {
		p.Features = append([]string(nil), p.Features...)
		p.AIFeatures = append([]string(nil), p.AIFeatures...)
		out[i] = p
	}
	return out
}

// Purchasable reports whether tier can be bought through checkout.
func Purchasable(tier models.SubscriptionTier) bool {
	return tier == models.TierPro || tier == models.TierPremium
}
