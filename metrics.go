package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricSessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quiz_sessions_started_total",
		Help: "Practice sessions started.",
	})
	metricAnswers = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiz_answers_total",
		Help: "Answers submitted, by result.",
	}, []string{"result"})
	metricPerfectSessions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quiz_perfect_sessions_total",
		Help: "Sessions finished with a 100% score.",
	})
)
