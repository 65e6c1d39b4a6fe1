package stats

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusSink exposes the counters in Prometheus form. Metric names match
// the existing Grafana dashboards.
type PrometheusSink struct {
	posts prometheus.Counter
	games *prometheus.CounterVec
	hard  *prometheus.CounterVec
	dark  *prometheus.CounterVec
}

// NewPrometheusSink registers the counters on reg.
func NewPrometheusSink(reg prometheus.Registerer) (*PrometheusSink, error) {
	p := &PrometheusSink{
		posts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_stats_tweet_count",
			Help: "Total amount of posts the service has received.",
		}),
		games: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_stats_games",
			Help: "Wordle Game Statistics.",
		}, []string{"game", "score"}),
		hard: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_stats_hard_mode",
			Help: "Total amount of hard mode games parsed.",
		}, []string{"game"}),
		dark: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_stats_dark_mode",
			Help: "Total amount of dark mode games parsed.",
		}, []string{"game"}),
	}
	for _, c := range []prometheus.Collector{p.posts, p.games, p.hard, p.dark} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *PrometheusSink) IncPosts(ctx context.Context) error {
	p.posts.Inc()
	return nil
}

func (p *PrometheusSink) IncGame(ctx context.Context, day uint32, score uint8) error {
	p.games.WithLabelValues(dayLabel(day), strconv.Itoa(int(score))).Inc()
	return nil
}

func (p *PrometheusSink) IncHardMode(ctx context.Context, day uint32) error {
	p.hard.WithLabelValues(dayLabel(day)).Inc()
	return nil
}

func (p *PrometheusSink) IncDarkMode(ctx context.Context, day uint32) error {
	p.dark.WithLabelValues(dayLabel(day)).Inc()
	return nil
}

func dayLabel(day uint32) string { return strconv.FormatUint(uint64(day), 10) }
