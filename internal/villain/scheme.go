package villain

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Recorder receives one entry per completed scheme step. A nil Recorder is
// allowed; steps then go unrecorded.
type Recorder interface {
	Record(missionID, step, detail string) error
}

// Scheme runs the full staged domination protocol end to end: the loyalty
// check, both domination stages, and the secure relay, with plan synthesis
// running concurrently. Each completed step is journaled under a shared
// mission ID.
type Scheme struct {
	villain  *SuperVillain
	henchman Henchman
	gadget   Gadget
	cipher   Cipher
	recorder Recorder
	logger   *zap.Logger
}

// SchemeConfig wires a Scheme's collaborators. Villain, Henchman and Cipher
// are required; Gadget, Recorder and Logger are optional.
type SchemeConfig struct {
	Villain  *SuperVillain
	Henchman Henchman
	Gadget   Gadget
	Cipher   Cipher
	Recorder Recorder
	Logger   *zap.Logger
}

// NewScheme validates the config and builds a Scheme.
func NewScheme(cfg SchemeConfig) (*Scheme, error) {
	if cfg.Villain == nil {
		return nil, fmt.Errorf("scheme: villain is required")
	}
	if cfg.Henchman == nil {
		return nil, fmt.Errorf("scheme: henchman is required")
	}
	if cfg.Cipher == nil {
		return nil, fmt.Errorf("scheme: cipher is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheme{
		villain:  cfg.Villain,
		henchman: cfg.Henchman,
		gadget:   cfg.Gadget,
		cipher:   cfg.Cipher,
		recorder: cfg.Recorder,
		logger:   logger,
	}, nil
}

// SchemeReport summarizes one scheme run.
type SchemeReport struct {
	MissionID        string
	Plan             string
	Steps            []string
	SidekickRetained bool
}

// Run executes the staged protocol. Plan synthesis is kicked off first and
// proceeds concurrently with the staged calls; Run returns once both have
// finished. The staged calls themselves stay strictly ordered.
func (s *Scheme) Run(ctx context.Context, secret string) (SchemeReport, error) {
	report := SchemeReport{MissionID: uuid.NewString()}
	s.logger.Info("scheme started",
		zap.String("mission_id", report.MissionID),
		zap.String("villain", s.villain.FullName()))

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		plan, err := s.villain.ComeUpWithPlan(ctx)
		if err != nil {
			return fmt.Errorf("come up with plan: %w", err)
		}
		report.Plan = plan
		return nil
	})

	s.villain.Conspire()
	s.step(&report, "conspire", fmt.Sprintf("sidekick retained: %t", s.villain.Sidekick != nil))

	s.villain.StartDominationStage1(s.henchman, s.gadget)
	s.step(&report, "stage1", "weak-target HQ evaluation complete")

	s.villain.StartDominationStage2(s.henchman)
	s.step(&report, "stage2", "enemies fought, hard things done")

	s.villain.TellPlans(secret, s.cipher)
	s.step(&report, "tell_plans", "ciphered relay attempted")

	if err := eg.Wait(); err != nil {
		return SchemeReport{}, err
	}
	s.step(&report, "plan", report.Plan)

	report.SidekickRetained = s.villain.Sidekick != nil
	s.logger.Info("scheme finished",
		zap.String("mission_id", report.MissionID),
		zap.Bool("sidekick_retained", report.SidekickRetained))
	return report, nil
}

// step records a completed step with the recorder and in the report. A
// recorder failure is logged, not escalated; the scheme itself succeeded.
func (s *Scheme) step(report *SchemeReport, name, detail string) {
	report.Steps = append(report.Steps, name)
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(report.MissionID, name, detail); err != nil {
		s.logger.Warn("failed to record step",
			zap.String("step", name), zap.Error(err))
	}
}
