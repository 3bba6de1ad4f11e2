// Package app implements the pre-flight run: an ordered chain of named
// gates, executed front to back, halting at the first failure.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"go.ledgerline.dev/preflight/internal/core/domain"
	"go.ledgerline.dev/preflight/internal/core/ports"
	"go.trai.ch/zerr"
)

// App wires the gate chain to its collaborators.
type App struct {
	logger        ports.Logger
	tracer        ports.Tracer
	discoverer    ports.Discoverer
	prober        ports.LockProber
	installer     ports.DependencyInstaller
	checker       ports.SyntaxChecker
	pipeline      ports.PipelineRunner
	verifier      ports.Verifier
	fingerprinter ports.Fingerprinter
	store         ports.RunRecordStore
}

// New creates a new App instance.
func New(
	logger ports.Logger,
	tracer ports.Tracer,
	discoverer ports.Discoverer,
	prober ports.LockProber,
	installer ports.DependencyInstaller,
	checker ports.SyntaxChecker,
	pipeline ports.PipelineRunner,
	verifier ports.Verifier,
	fingerprinter ports.Fingerprinter,
	store ports.RunRecordStore,
) *App {
	return &App{
		logger:        logger,
		tracer:        tracer,
		discoverer:    discoverer,
		prober:        prober,
		installer:     installer,
		checker:       checker,
		pipeline:      pipeline,
		verifier:      verifier,
		fingerprinter: fingerprinter,
		store:         store,
	}
}

// RunOptions carries per-run settings.
type RunOptions struct {
	// Debug is exported to the pipeline process as PIPE_DEBUG.
	Debug bool

	// CheckOnly stops after the syntax gate: no lock probe, no dependency
	// install, no pipeline invocation.
	CheckOnly bool
}

// gate is one named validation step. The chain is a plain ordered slice so
// the sequence stays data-driven and each step testable on its own. Each
// step receives its span as a writer for child process output.
type gate struct {
	name  string
	state domain.GateState
	run   func(ctx context.Context, out io.Writer) error
}

// runState accumulates what the gates learn as the chain advances. The
// layout itself is immutable; only derived values live here.
type runState struct {
	layout      *domain.Layout
	scripts     []string
	fingerprint string
}

// Run executes the gate chain for the given configuration. The first failing
// gate halts the run and its error is returned as-is; every gate error wraps
// one of the domain sentinels so callers can identify the gate with
// errors.Is.
func (a *App) Run(ctx context.Context, cfg *domain.Config, opts RunOptions) error {
	layout, err := domain.NewLayout(cfg)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve path set")
	}
	a.logger.Info("resolved layout rooted at " + layout.Root)

	st := &runState{layout: layout}
	reached := domain.StatePathResolved
	var failure error

	for _, g := range a.gates(st, opts) {
		gctx, span := a.tracer.Start(ctx, g.name)
		if err := g.run(gctx, span); err != nil {
			span.RecordError(err)
			span.End()
			failure = err
			break
		}
		span.End()
		reached = g.state
	}

	if !opts.CheckOnly {
		a.record(reached, st, failure)
	}

	if failure != nil {
		return failure
	}

	if opts.CheckOnly {
		a.logger.Info("all scripts compiled cleanly")
	} else {
		a.logger.Info("output verified: " + layout.OutputArtifact)
	}
	return nil
}

// gates assembles the ordered chain for this run. CheckOnly trims it to the
// steps a syntax-only pass needs.
func (a *App) gates(st *runState, opts RunOptions) []gate {
	chain := []gate{
		{"validate paths", domain.StateValidated, func(ctx context.Context, _ io.Writer) error {
			return a.validatePaths(st.layout)
		}},
		{"discover extractors", domain.StateDiscovered, func(ctx context.Context, _ io.Writer) error {
			return a.discoverExtractors(st)
		}},
	}

	if !opts.CheckOnly {
		chain = append(chain, gate{"probe output lock", domain.StateUnlocked, func(ctx context.Context, _ io.Writer) error {
			return a.probeOutputLock(st.layout)
		}})
	}

	chain = append(chain, gate{"activate environment", domain.StateActivated, func(ctx context.Context, _ io.Writer) error {
		return a.activateEnvironment(st.layout)
	}})

	if !opts.CheckOnly {
		chain = append(chain, gate{"install dependencies", domain.StateDepsInstalled, func(ctx context.Context, out io.Writer) error {
			return a.installDependencies(ctx, st.layout, out)
		}})
	}

	chain = append(chain, gate{"check syntax", domain.StateSyntaxOk, func(ctx context.Context, out io.Writer) error {
		return a.checkSyntax(ctx, st, out)
	}})

	if !opts.CheckOnly {
		chain = append(chain,
			gate{"run pipeline", domain.StatePipelineRan, func(ctx context.Context, out io.Writer) error {
				return a.runPipeline(ctx, st.layout, opts.Debug, out)
			}},
			gate{"verify output", domain.StateOutputVerified, func(ctx context.Context, _ io.Writer) error {
				return a.verifyOutput(st.layout)
			}},
		)
	}

	return chain
}

// validatePaths fails on the first required path that does not exist.
func (a *App) validatePaths(layout *domain.Layout) error {
	for _, p := range []string{
		layout.ActivateScript,
		layout.Manifest,
		layout.PipelineScript,
		layout.ExtractorDir,
	} {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return zerr.With(domain.ErrMissingDependency, "path", p)
			}
			return zerr.With(zerr.Wrap(err, "failed to stat required path"), "path", p)
		}
	}
	return nil
}

// discoverExtractors enumerates the extractor set, reports it, fingerprints
// it, and warns when the set drifted since the previous run.
func (a *App) discoverExtractors(st *runState) error {
	scripts, err := a.discoverer.Discover(st.layout.ExtractorDir)
	if err != nil {
		return err
	}
	if len(scripts) == 0 {
		return zerr.With(domain.ErrNoExtractorsFound, "dir", st.layout.ExtractorDir)
	}
	st.scripts = scripts

	a.logger.Info(fmt.Sprintf("discovered %d extractor script(s)", len(scripts)))
	for _, s := range scripts {
		a.logger.Info("  " + s)
	}

	fp, err := a.fingerprinter.Fingerprint(scripts)
	if err != nil {
		return zerr.Wrap(err, "failed to fingerprint extractor set")
	}
	st.fingerprint = fp
	a.logger.Info("extractor fingerprint " + fp)

	if last, err := a.store.Last(); err == nil && last != nil &&
		last.ExtractorFingerprint != "" && last.ExtractorFingerprint != fp {
		a.logger.Warn("extractor set changed since last run")
	}

	return nil
}

// probeOutputLock runs before any write-capable step so a held spreadsheet
// fails the run immediately instead of after the slow OCR work.
func (a *App) probeOutputLock(layout *domain.Layout) error {
	locked, err := a.prober.Probe(layout.OutputArtifact)
	if err != nil {
		return zerr.Wrap(err, "lock probe failed")
	}
	if locked {
		e := zerr.With(domain.ErrOutputLocked, "path", layout.OutputArtifact)
		return zerr.With(e, "hint", "close the application that has the spreadsheet open and retry")
	}
	return nil
}

// activateEnvironment resolves the virtualenv interpreter next to the
// activation script. Child processes are invoked through that interpreter
// directly, which is what sourcing the activation script would give them.
func (a *App) activateEnvironment(layout *domain.Layout) error {
	interpreter := layout.Interpreter()
	if _, err := os.Stat(interpreter); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			e := zerr.With(domain.ErrMissingDependency, "path", interpreter)
			return zerr.With(e, "hint", "create the virtualenv before running")
		}
		return zerr.With(zerr.Wrap(err, "failed to stat interpreter"), "path", interpreter)
	}
	a.logger.Info("using interpreter " + interpreter)
	return nil
}

func (a *App) installDependencies(ctx context.Context, layout *domain.Layout, w io.Writer) error {
	a.logger.Info("installing dependencies from " + layout.Manifest)
	out, err := a.installer.Install(ctx, layout.Interpreter(), layout.Manifest)
	if err != nil {
		return zerr.With(domain.ErrDependencyInstallFailed, "cause", err.Error())
	}
	spanOutput(w, out)
	if !out.Ok() {
		return outcomeError(domain.ErrDependencyInstallFailed, out)
	}
	return nil
}

// checkSyntax batch-compiles the pipeline entry point and every discovered
// extractor, failing fast before any slow OCR or PDF work can begin.
func (a *App) checkSyntax(ctx context.Context, st *runState, w io.Writer) error {
	batch := append([]string{st.layout.PipelineScript}, st.scripts...)
	a.logger.Info(fmt.Sprintf("compile-checking %d script(s)", len(batch)))

	out, err := a.checker.Check(ctx, st.layout.Interpreter(), batch)
	if err != nil {
		return zerr.With(domain.ErrSyntaxCheckFailed, "cause", err.Error())
	}
	spanOutput(w, out)
	if !out.Ok() {
		return outcomeError(domain.ErrSyntaxCheckFailed, out)
	}
	return nil
}

func (a *App) runPipeline(ctx context.Context, layout *domain.Layout, debug bool, w io.Writer) error {
	a.logger.Info("starting pipeline " + layout.PipelineScript)
	out, err := a.pipeline.Run(ctx, layout.Interpreter(), layout.PipelineScript, debug)
	if err != nil {
		return zerr.With(domain.ErrPipelineCrashed, "cause", err.Error())
	}
	spanOutput(w, out)
	if !out.Ok() {
		return outcomeError(domain.ErrPipelineCrashed, out)
	}
	return nil
}

// verifyOutput distinguishes "ran but produced nothing" from a crash: the
// pipeline exited zero, so a missing artifact points at a silent logical
// failure rather than a stack trace.
func (a *App) verifyOutput(layout *domain.Layout) error {
	exists, err := a.verifier.Verify(layout.OutputArtifact)
	if err != nil {
		return zerr.Wrap(err, "failed to verify output artifact")
	}
	if !exists {
		return zerr.With(domain.ErrOutputNotProduced, "path", layout.OutputArtifact)
	}
	return nil
}

// record persists the run summary. Best effort: a store failure must not
// mask the run's own result.
func (a *App) record(reached domain.GateState, st *runState, failure error) {
	record := domain.RunRecord{
		Timestamp:            time.Now(),
		ExtractorFingerprint: st.fingerprint,
		State:                reached,
		Success:              failure == nil && reached == domain.StateOutputVerified,
	}
	if failure != nil {
		record.Error = failure.Error()
	}
	if err := a.store.Put(record); err != nil {
		a.logger.Warn("failed to persist run record: " + err.Error())
	}
}

// spanOutput forwards the child process output to the gate's span so the
// progress renderer shows it vertex by vertex.
func spanOutput(w io.Writer, out domain.ProcessOutcome) {
	if out.Output == "" {
		return
	}
	_, _ = io.WriteString(w, out.Output)
}

// outcomeError wraps a gate sentinel with the child process's exit code and
// its verbatim output, the only debugging signal the operator has.
func outcomeError(sentinel error, out domain.ProcessOutcome) error {
	e := zerr.With(sentinel, "command", out.Command)
	e = zerr.With(e, "exit_code", out.ExitCode)
	if text := strings.TrimSpace(out.Output); text != "" {
		e = zerr.With(e, "output", text)
	}
	return e
}
