package casino

import (
	"context"
	"time"

	"go.uber.org/zap"

	"coin-casino/internal/logger"
)

// StatsJob periodically logs realized RTP per game.
type StatsJob struct {
	rtp      *RTPTracker
	interval time.Duration
}

func NewStatsJob(rtp *RTPTracker) *StatsJob {
	return &StatsJob{rtp: rtp, interval: time.Minute}
}

func (j *StatsJob) Name() string {
	return "rtp-stats"
}

func (j *StatsJob) Start(ctx context.Context) {
	t := time.NewTicker(j.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			for game, st := range j.rtp.Snapshot() {
				logger.Log.Info("rtp snapshot",
					zap.String("game", string(game)),
					zap.Int64("bets", st.Bets),
					zap.String("wagered", st.TotalBet.String()),
					zap.String("paid", st.TotalPayout.String()),
					zap.String("rtp", st.RTP.String()),
				)
			}
		}
	}
}
