// Package rollout plays batches of random-policy episodes across a
// pool of workers, each owning a private environment instance. It
// exists to exercise the environments the way a training driver would:
// many independent copies, no shared state, reproducible seeds.
package rollout

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tinygym/tinygym/internal/env"
)

// Factory builds a fresh environment instance for one worker. Each
// worker owns its instance exclusively for the lifetime of the run;
// instances never cross goroutines.
type Factory func() (env.Env, error)

// Runner plays episodes with a uniform random policy.
type Runner struct {
	name     string
	factory  Factory
	episodes int
	workers  int
	baseSeed int64
	runID    string
	logger   zerolog.Logger
}

// NewRunner configures a rollout batch. Episode i resets its
// environment with baseSeed+i, so a batch is reproducible independent
// of worker scheduling.
func NewRunner(name string, factory Factory, episodes, workers int, baseSeed int64, logger zerolog.Logger) *Runner {
	if workers > episodes {
		workers = episodes
	}
	runID := uuid.NewString()
	return &Runner{
		name:     name,
		factory:  factory,
		episodes: episodes,
		workers:  workers,
		baseSeed: baseSeed,
		runID:    runID,
		logger:   logger.With().Str("component", "rollout").Str("run_id", runID).Logger(),
	}
}

// RunID identifies this batch in logs and output files.
func (r *Runner) RunID() string { return r.runID }

// Run plays the configured number of episodes across the worker pool
// and returns one record per episode, indexed by episode number.
func (r *Runner) Run() ([]EpisodeRecord, error) {
	envs := make([]env.Env, r.workers)
	for w := range envs {
		e, err := r.factory()
		if err != nil {
			return nil, fmt.Errorf("building env for worker %d: %w", w, err)
		}
		defer e.Close()
		envs[w] = e
	}

	r.logger.Info().
		Str("env", r.name).
		Int("episodes", r.episodes).
		Int("workers", r.workers).
		Int64("base_seed", r.baseSeed).
		Msg("starting rollout")

	records := make([]EpisodeRecord, r.episodes)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			// Per-worker policy source, separate from the envs' own
			// per-episode sources.
			policy := rand.New(rand.NewSource(r.baseSeed + int64(worker)))
			for i := range jobs {
				records[i] = r.playEpisode(envs[worker], policy, worker, i)
			}
		}(w)
	}

	for i := 0; i < r.episodes; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return records, nil
}

func (r *Runner) playEpisode(e env.Env, policy *rand.Rand, worker, episode int) EpisodeRecord {
	seed := r.baseSeed + int64(episode)
	_, info := e.Reset(seed)

	var ret float64
	steps := 0
	terminated, truncated := false, false

	for !terminated && !truncated {
		res := e.Step(env.Action(policy.Intn(2)))
		ret += res.Reward
		steps++
		info = res.Info
		terminated, truncated = res.Terminated, res.Truncated
	}

	r.logger.Debug().
		Int("episode", episode).
		Int("worker", worker).
		Int("steps", steps).
		Int("score", info.Score).
		Float64("return", ret).
		Msg("episode done")

	return EpisodeRecord{
		RunID:      r.runID,
		Env:        r.name,
		Worker:     worker,
		Episode:    episode,
		Seed:       seed,
		Steps:      steps,
		Score:      info.Score,
		Return:     ret,
		Terminated: terminated,
		Truncated:  truncated,
	}
}
