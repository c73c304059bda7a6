package bot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "signbot"

var (
	commandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "commands_total",
		Help:      "Slash commands handled, by command and outcome.",
	}, []string{"command", "outcome"})

	cooldownRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "cooldown_rejections_total",
		Help:      "Commands rejected because the user was on cooldown.",
	}, []string{"command"})

	interactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "interactions_total",
		Help:      "Interactions received, by type.",
	}, []string{"type"})
)
