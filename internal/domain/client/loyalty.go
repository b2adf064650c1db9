package client

// StampsPerReward completed visits earn one free visit.
const StampsPerReward = 6

// LoyaltyCard is derived from the completed-visit count and never stored.
type LoyaltyCard struct {
	CompletedVisits int `json:"completed_visits"`
	Stamps          int `json:"stamps"`
	StampsPerReward int `json:"stamps_per_reward"`
	RewardsEarned   int `json:"rewards_earned"`
	ToNextReward    int `json:"to_next_reward"`
}

func NewLoyaltyCard(completedVisits int) LoyaltyCard {
	completedVisits = max(completedVisits, 0)
	stamps := completedVisits % StampsPerReward
	return LoyaltyCard{
		CompletedVisits: completedVisits,
		Stamps:          stamps,
		StampsPerReward: StampsPerReward,
		RewardsEarned:   completedVisits / StampsPerReward,
		ToNextReward:    StampsPerReward - stamps,
	}
}
