package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/svmhdvn/private-channel-bot/domain/infra"
)

var (
	sweepChannelsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "private_channel_bot_sweep_channels_total",
		Help: "Channels seen by the expiry sweep by state",
	}, []string{"state"})

	sweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "private_channel_bot_sweep_duration_seconds",
		Help:    "Expiry sweep duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	})

	archiveFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "private_channel_bot_archive_failures_total",
		Help: "Expired channels that could not be archived",
	})

	actionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "private_channel_bot_actions_total",
		Help: "Interactive actions by callback and action",
	}, []string{"callback_id", "action"})

	platformErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "private_channel_bot_platform_errors_total",
		Help: "Slack API errors by error code",
	}, []string{"code"})
)

// コードのないエラーは unknown
func countPlatformError(err error) {
	code, ok := infra.PlatformErrorCode(err)
	if !ok {
		code = "unknown"
	}
	platformErrorsTotal.WithLabelValues(code).Inc()
}
