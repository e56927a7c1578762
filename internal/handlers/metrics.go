package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resultSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_result_submissions_total",
			Help: "Total number of result submissions",
		},
		[]string{"status"}, // accepted/rejected
	)

	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_login_attempts_total",
			Help: "Total number of admin login attempts",
		},
		[]string{"status"}, // success/failure
	)
)
