package registry

import "time"

const DefaultActiveDays = 30

// Service bundles the host and rule lifecycle engines with the authorization
// policy. All boundary layers (HTTP handlers, jobs) go through it.
type Service struct {
	store      Store
	policy     Policy
	activeDays int

	now func() time.Time
}

func NewService(store Store, policy Policy, activeDays int) *Service {
	if activeDays <= 0 {
		activeDays = DefaultActiveDays
	}
	return &Service{
		store:      store,
		policy:     policy,
		activeDays: activeDays,
		now:        time.Now,
	}
}

// SetClockForTests overrides the clock used for expiry computation. Tests
// only.
func (s *Service) SetClockForTests(now func() time.Time) {
	s.now = now
}

// today returns the current date at midnight UTC. active_until is a date,
// not a timestamp.
func (s *Service) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// activeUntil computes the rolling expiry for creations and renewals. This
// is always an absolute reset to today + N, never additive from the current
// expiry.
func (s *Service) activeUntil() time.Time {
	return s.today().AddDate(0, 0, s.activeDays)
}
