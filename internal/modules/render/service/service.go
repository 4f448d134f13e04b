package service

import (
	"time"
)

// Service renders archive messages into HTML node trees.
// All render methods are pure: they read only their arguments and the
// service configuration, and build fresh nodes on every call.
type Service struct {
	location *time.Location
}

// New creates a new render service. Short times of collapsed messages are
// shown in location; nil means UTC.
func New(location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		location: location,
	}
}

// Location returns the zone used for short times
func (s *Service) Location() *time.Location {
	return s.location
}
