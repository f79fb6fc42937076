package sessions

import (
	"context"
	"errors"

	"github.com/reusee/fash/logs"
	"github.com/reusee/fash/metrics"
	"github.com/reusee/fash/storages"
)

// Run drives a new session for task until the model ends it
type Run func(ctx context.Context, task string) error

func (Module) Run(
	newSession NewSession,
	openRecorder storages.OpenRecorder,
	maxRounds MaxRounds,
	writeMetrics metrics.WriteFile,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Run {
	return func(ctx context.Context, task string) (err error) {
		session, err := newSession(task)
		if err != nil {
			return err
		}
		ctx, _ = newSpan(ctx, "session "+session.ID)
		logger.InfoContext(ctx, "session",
			"id", session.ID,
			"task", task,
			"model", session.generator.Args().Model,
			"protocol", session.protocol,
		)

		recorder, err := openRecorder()
		if err != nil {
			return err
		}
		defer func() {
			status := storages.StatusEnded
			if err != nil {
				status = storages.StatusFailed
			}
			// the context may be cancelled already
			err = errors.Join(err,
				recorder.EndSession(context.WithoutCancel(ctx), session.ID, status),
				recorder.Close(),
			)
		}()
		if err := recorder.BeginSession(ctx, session.ID, task); err != nil {
			return err
		}
		session.recorder = recorder
		if err := session.record(ctx, 0); err != nil {
			return err
		}

		defer func() {
			if writeErr := writeMetrics(); writeErr != nil {
				logger.WarnContext(ctx, "metrics", "error", writeErr)
			}
		}()

		for !session.terminal {
			if maxRounds > 0 && session.rounds >= int(maxRounds) {
				return ErrMaxRounds
			}
			if err := session.Round(ctx); err != nil {
				return err
			}
		}

		logger.InfoContext(ctx, "session end",
			"id", session.ID,
			"rounds", session.rounds,
		)
		return nil
	}
}
