package models

// SubscriptionPlan describes one purchasable tier
type SubscriptionPlan struct {
	ID           string           `json:"id"`
	Tier         SubscriptionTier `json:"tier"`
	Name         string           `json:"name"`
	Price        float64          `json:"price"`
	Features     []string         `json:"features"`
	AIFeatures   []string         `json:"aiFeatures"`
	StorageLimit string           `json:"storageLimit"`
	Highlighted  bool             `json:"highlighted,omitempty"`
}

// CheckoutStatus is the simplified state of a checkout session
type CheckoutStatus string

const (
	CheckoutOpen     CheckoutStatus = "open"
	CheckoutComplete CheckoutStatus = "complete"
)

// CheckoutSession is returned by the payment endpoints
type CheckoutSession struct {
	ID     string           `json:"id"`
	URL    string           `json:"url"`
	PlanID string           `json:"planId"`
	Tier   SubscriptionTier `json:"tier"`
	Status CheckoutStatus   `json:"status"`
}

// CreateCheckoutRequest defines the request body for starting a checkout
type CreateCheckoutRequest struct {
	Tier SubscriptionTier `json:"tier"`
}

// PlanID returns the catalog id for a tier
func PlanID(tier SubscriptionTier) string {
	return "plan-" + string(tier)
}
