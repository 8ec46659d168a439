// Package access holds the gating rules derived from a profile's role
// and subscription status. Everything here is a pure function over
// stored state: decisions are re-evaluated on every request and never
// cached.
package access

import (
	"math"
	"time"

	"github.com/chatco/chatco-backend/internal/models"
)

// Tier is the admission level of a request subject.
type Tier int

const (
	// TierAnonymous means no identity is present; only public pages.
	TierAnonymous Tier = iota
	// TierMember is an authenticated non-privileged user.
	TierMember
	// TierAdmin additionally reaches the management surface.
	TierAdmin
)

// Decide maps a profile (or its absence) to an admission tier.
func Decide(profile *models.Profile) Tier {
	if profile == nil {
		return TierAnonymous
	}
	if profile.Role == models.RoleAdmin {
		return TierAdmin
	}
	return TierMember
}

// IsAdmin reports whether the role reaches the management surface.
func IsAdmin(role string) bool {
	return role == models.RoleAdmin
}

// CanUseChat reports whether the subscription status admits the chat
// surface. Only trial and active qualify; inactive users are pointed to
// plan selection by the caller.
func CanUseChat(subscriptionStatus string) bool {
	return subscriptionStatus == models.SubscriptionTrial ||
		subscriptionStatus == models.SubscriptionActive
}

// TrialDaysLeft returns the number of whole days remaining until the
// trial end, rounded up and clamped at zero. A nil end date means no
// trial is running.
func TrialDaysLeft(trialEnd *time.Time, now time.Time) int {
	if trialEnd == nil {
		return 0
	}
	left := trialEnd.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Hours() / 24))
}
