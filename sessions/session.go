package sessions

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reusee/fash/debugs"
	"github.com/reusee/fash/directives"
	"github.com/reusee/fash/executors"
	"github.com/reusee/fash/generators"
	"github.com/reusee/fash/logs"
	"github.com/reusee/fash/metrics"
	"github.com/reusee/fash/prompts"
	"github.com/reusee/fash/storages"
)

var ErrMaxRounds = errors.New("exceeded maximum rounds")

// SessionID identifies the session of a scope
type SessionID string

func (Module) SessionID() SessionID {
	return SessionID(uuid.NewString())
}

// Session is one task driven to completion through rounds with the model
type Session struct {
	ID   string
	Task string

	transcript    []generators.Content
	terminal      bool
	rounds        int
	parseFailures int
	recorded      int

	generator    generators.Generator
	systemPrompt string
	protocol     directives.Protocol
	parseRetries int
	execute      executors.Execute
	recorder     storages.Recorder
	metrics      *metrics.Metrics
	newSpan      logs.NewSpan
	tap          debugs.Tap
	tapEnabled   bool
	logger       logs.Logger
}

type NewSession func(task string) (*Session, error)

func (Module) NewSession(
	id SessionID,
	getGenerator generators.GetDefaultGenerator,
	getSystemPrompt prompts.GetSystemPrompt,
	protocol directives.Protocol,
	parseRetries ParseRetries,
	execute executors.Execute,
	m *metrics.Metrics,
	newSpan logs.NewSpan,
	tap debugs.Tap,
	tapEnabled TapEnabled,
	logger logs.Logger,
) NewSession {
	return func(task string) (*Session, error) {
		generator, err := getGenerator()
		if err != nil {
			return nil, fmt.Errorf("get generator: %w", err)
		}
		systemPrompt, err := getSystemPrompt()
		if err != nil {
			return nil, fmt.Errorf("build system prompt: %w", err)
		}
		return &Session{
			ID:   string(id),
			Task: task,
			transcript: []generators.Content{
				generators.UserContent(taskTurn(task)),
			},
			generator:    generator,
			systemPrompt: systemPrompt,
			protocol:     protocol,
			parseRetries: int(parseRetries),
			execute:      execute,
			recorder:     storages.NoopRecorder,
			metrics:      m,
			newSpan:      newSpan,
			tap:          tap,
			tapEnabled:   bool(tapEnabled),
			logger: logger.With(
				"session", string(id),
			),
		}, nil
	}
}

// Transcript returns a copy of the conversation so far
func (s *Session) Transcript() []generators.Content {
	return slices.Clone(s.transcript)
}

// Terminal reports whether the model ended the session
func (s *Session) Terminal() bool {
	return s.terminal
}

func (s *Session) Rounds() int {
	return s.rounds
}

func (s *Session) SystemPrompt() string {
	return s.systemPrompt
}

// Round asks the model for one response and executes its directives in order
func (s *Session) Round(ctx context.Context) (err error) {
	s.rounds++
	s.metrics.IncRound()
	round := s.rounds
	ctx, _ = s.newSpan(ctx, fmt.Sprintf("round %d", round))
	defer func() {
		err = logs.WrapSpan(ctx, err)
	}()
	s.logger.InfoContext(ctx, "round", "n", round)
	defer func() {
		if recordErr := s.record(ctx, round); recordErr != nil && err == nil {
			err = recordErr
		}
	}()

	// generate
	model := s.generator.Args().Model
	t0 := time.Now()
	text, err := s.generator.Generate(ctx, s.systemPrompt, s.Transcript(), &generators.GenerateOptions{
		JSON: s.protocol == directives.ProtocolJSON,
	})
	s.metrics.ObserveGenerate(model, time.Since(t0), err)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	text = directives.StripFences(text)
	s.logger.DebugContext(ctx, "response", "text", text)
	s.transcript = append(s.transcript, generators.ModelContent(text))

	// parse
	parsed, err := directives.Parse(s.protocol, text)
	if err != nil {
		s.metrics.IncParseFailure()
		s.parseFailures++
		if s.parseFailures > s.parseRetries {
			return fmt.Errorf("parse response: %w", err)
		}
		s.logger.WarnContext(ctx, "unparsable response",
			"error", err,
			"failures", s.parseFailures,
		)
		s.transcript = append(s.transcript, generators.UserContent(correctionTurn(err)))
		return nil
	}
	s.parseFailures = 0

	// execute
	var feedback []string
	for _, directive := range parsed {
		s.metrics.IncDirective(string(directive.Kind()))
		result, err := s.execute(ctx, directive)
		if err != nil {
			return fmt.Errorf("execute %s: %w", directive.Kind(), err)
		}
		if result.Feedback != "" {
			feedback = append(feedback, result.Feedback)
		}
		if result.Terminal {
			s.terminal = true
		}
	}

	reply := Nudge
	if len(feedback) > 0 {
		reply = strings.Join(feedback, "\n\n")
	}
	s.transcript = append(s.transcript, generators.UserContent(reply))

	if s.tapEnabled {
		s.tap(ctx, fmt.Sprintf("round %d", round), map[string]any{
			"session":    s.ID,
			"task":       s.Task,
			"round":      round,
			"directives": parsed,
			"transcript": s.Transcript(),
			"terminal":   s.terminal,
		})
	}

	return nil
}

func (s *Session) record(ctx context.Context, round int) error {
	entries := make([]storages.Entry, 0, len(s.transcript)-s.recorded)
	for _, content := range s.transcript[s.recorded:] {
		entries = append(entries, storages.Entry{
			Round: round,
			Role:  string(content.Role),
			Text:  content.Text,
		})
	}
	if err := s.recorder.Record(ctx, s.ID, round, entries); err != nil {
		return err
	}
	s.recorded = len(s.transcript)
	return nil
}
