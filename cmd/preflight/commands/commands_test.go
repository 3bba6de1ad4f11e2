package commands_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.ledgerline.dev/preflight/cmd/preflight/commands"
	"go.ledgerline.dev/preflight/internal/adapters/telemetry"
	"go.ledgerline.dev/preflight/internal/app"
	"go.ledgerline.dev/preflight/internal/core/domain"
	"go.ledgerline.dev/preflight/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	cli    *commands.CLI
	loader *mocks.MockConfigLoader

	discoverer    *mocks.MockDiscoverer
	prober        *mocks.MockLockProber
	installer     *mocks.MockDependencyInstaller
	checker       *mocks.MockSyntaxChecker
	pipeline      *mocks.MockPipelineRunner
	verifier      *mocks.MockVerifier
	fingerprinter *mocks.MockFingerprinter
	store         *mocks.MockRunRecordStore
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	h := &harness{
		loader:        mocks.NewMockConfigLoader(ctrl),
		discoverer:    mocks.NewMockDiscoverer(ctrl),
		prober:        mocks.NewMockLockProber(ctrl),
		installer:     mocks.NewMockDependencyInstaller(ctrl),
		checker:       mocks.NewMockSyntaxChecker(ctrl),
		pipeline:      mocks.NewMockPipelineRunner(ctrl),
		verifier:      mocks.NewMockVerifier(ctrl),
		fingerprinter: mocks.NewMockFingerprinter(ctrl),
		store:         mocks.NewMockRunRecordStore(ctrl),
	}

	a := app.New(log, telemetry.NewNoOpTracer(), h.discoverer, h.prober, h.installer,
		h.checker, h.pipeline, h.verifier, h.fingerprinter, h.store)
	h.cli = commands.New(a, h.loader)
	return h
}

// pipelineDir creates a complete on-disk layout and returns its config.
func pipelineDir(t *testing.T) *domain.Config {
	t.Helper()
	root := t.TempDir()

	binDir := filepath.Join(root, ".venv", "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "activate"), []byte("# activate"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "python"), []byte("#!/bin/sh\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "requirements.txt"), []byte("pandas\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "finances_pipeline.py"), []byte("print('ok')\n"), 0o600))
	extractorDir := filepath.Join(root, "scripts", "image-scripts")
	require.NoError(t, os.MkdirAll(extractorDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(extractorDir, "amount_extractor.py"), []byte("x = 1\n"), 0o600))

	return domain.DefaultConfig(root)
}

func (h *harness) expectFullRun(cfg *domain.Config, debug bool) {
	scripts := []string{filepath.Join(cfg.Root, "scripts", "image-scripts", "amount_extractor.py")}
	h.discoverer.EXPECT().Discover(gomock.Any()).Return(scripts, nil)
	h.fingerprinter.EXPECT().Fingerprint(scripts).Return("0123456789abcdef", nil)
	h.store.EXPECT().Last().Return(nil, nil)
	h.prober.EXPECT().Probe(gomock.Any()).Return(false, nil)
	h.installer.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ProcessOutcome{ExitCode: 0}, nil)
	h.checker.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ProcessOutcome{ExitCode: 0}, nil)
	h.pipeline.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), debug).
		Return(domain.ProcessOutcome{ExitCode: 0}, nil)
	h.verifier.EXPECT().Verify(gomock.Any()).Return(true, nil)
	h.store.EXPECT().Put(gomock.Any()).Return(nil)
}

func TestRoot_ZeroArgumentsRunsChain(t *testing.T) {
	h := newHarness(t)
	cfg := pipelineDir(t)

	h.loader.EXPECT().Load("preflight.yaml").Return(cfg, nil)
	h.expectFullRun(cfg, false)

	h.cli.SetArgs([]string{})
	require.NoError(t, h.cli.Execute(context.Background()))
}

func TestRun_ConfigFlagSelectsFile(t *testing.T) {
	h := newHarness(t)
	cfg := pipelineDir(t)

	h.loader.EXPECT().Load("custom.yaml").Return(cfg, nil)
	h.expectFullRun(cfg, false)

	h.cli.SetArgs([]string{"run", "-c", "custom.yaml"})
	require.NoError(t, h.cli.Execute(context.Background()))
}

func TestRun_DebugFlagOverridesConfig(t *testing.T) {
	h := newHarness(t)
	cfg := pipelineDir(t)
	cfg.Debug = false

	h.loader.EXPECT().Load("preflight.yaml").Return(cfg, nil)
	h.expectFullRun(cfg, true)

	h.cli.SetArgs([]string{"run", "--debug"})
	require.NoError(t, h.cli.Execute(context.Background()))
}

func TestRun_ConfigDebugIsDefault(t *testing.T) {
	h := newHarness(t)
	cfg := pipelineDir(t)
	cfg.Debug = true

	h.loader.EXPECT().Load("preflight.yaml").Return(cfg, nil)
	h.expectFullRun(cfg, true)

	h.cli.SetArgs([]string{"run"})
	require.NoError(t, h.cli.Execute(context.Background()))
}

func TestCheck_RunsCompileGateOnly(t *testing.T) {
	h := newHarness(t)
	cfg := pipelineDir(t)
	scripts := []string{filepath.Join(cfg.Root, "scripts", "image-scripts", "amount_extractor.py")}

	h.loader.EXPECT().Load("preflight.yaml").Return(cfg, nil)
	h.discoverer.EXPECT().Discover(gomock.Any()).Return(scripts, nil)
	h.fingerprinter.EXPECT().Fingerprint(scripts).Return("0123456789abcdef", nil)
	h.store.EXPECT().Last().Return(nil, nil)
	h.checker.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ProcessOutcome{ExitCode: 0}, nil)

	h.cli.SetArgs([]string{"check"})
	require.NoError(t, h.cli.Execute(context.Background()))
}

func TestRun_GateFailurePropagates(t *testing.T) {
	h := newHarness(t)
	cfg := pipelineDir(t)
	require.NoError(t, os.RemoveAll(filepath.Join(cfg.Root, "scripts")))

	h.loader.EXPECT().Load("preflight.yaml").Return(cfg, nil)
	h.store.EXPECT().Put(gomock.Any()).Return(nil)

	h.cli.SetArgs([]string{"run"})
	err := h.cli.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingDependency))
}

func TestRoot_Help(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"--help"})
	require.NoError(t, h.cli.Execute(context.Background()))
}

func TestVersion(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"version"})
	require.NoError(t, h.cli.Execute(context.Background()))
}
