package config

import (
	"time"
)

// RateLimitConfig describes one fixed-window counter: at most Max requests
// per client IP within Window. Each limited endpoint gets its own Prefix so
// the counters do not interfere.
type RateLimitConfig struct {
	Max     int
	Window  time.Duration
	Prefix  string
	Message string
}

// LoginRateLimit bounds admin login attempts: 10 per 15 minutes per IP,
// matching the limiter the public site always ran with.
func LoginRateLimit() RateLimitConfig {
	return RateLimitConfig{
		Max:     10,
		Window:  15 * time.Minute,
		Prefix:  "rl:login",
		Message: "Trop de tentatives de connexion. Réessayez dans 15 minutes.",
	}
}

// ContactRateLimit bounds contact-form submissions: 3 per hour per IP.
func ContactRateLimit() RateLimitConfig {
	return RateLimitConfig{
		Max:     3,
		Window:  time.Hour,
		Prefix:  "rl:contact",
		Message: "Trop de messages envoyés. Réessayez dans une heure.",
	}
}
