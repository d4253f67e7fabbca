package screen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Profiler captures a CPU profile and an execution trace when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	log             zerolog.Logger
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, logger zerolog.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profiles dir: %w", err)
	}
	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		log:             logger.With().Str("component", "profiler").Logger(),
	}, nil
}

// CaptureProfile starts a background capture unless one is running or the
// cooldown has not passed
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return errors.New("already profiling")
	}
	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", since)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	base := filepath.Join(p.profilesDir, fmt.Sprintf("fps-drop-%s-%s", p.lastCaptureTime.Format("20060102-150405"), reason))

	go func() {
		err := p.capture(base+".cpu.prof", base+".trace")

		p.mu.Lock()
		p.isProfiling = false
		p.mu.Unlock()

		if err != nil {
			p.log.Error().Err(err).Str("reason", reason).Msg("capture failed")
			return
		}
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		p.log.Info().
			Str("cpu", base+".cpu.prof").
			Str("trace", base+".trace").
			Uint64("heap_kb", m.HeapAlloc/1024).
			Uint32("num_gc", m.NumGC).
			Msg("capture saved")
	}()

	return nil
}

// capture records a CPU profile and an execution trace over the same window
func (p *Profiler) capture(cpuPath, tracePath string) error {
	cpuFile, err := os.Create(cpuPath)
	if err != nil {
		return fmt.Errorf("create cpu profile: %w", err)
	}
	defer cpuFile.Close()

	traceFile, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("create trace: %w", err)
	}
	defer traceFile.Close()

	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	defer pprof.StopCPUProfile()

	if err := trace.Start(traceFile); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	defer trace.Stop()

	time.Sleep(p.captureDuration)
	return nil
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// FPSMonitor samples the frame rate and asks the profiler for a capture on drops
type FPSMonitor struct {
	profiler  *Profiler
	threshold float64
	warmup    time.Duration
	started   time.Time
	fps       float64
	log       zerolog.Logger
}

// NewFPSMonitor creates a monitor. A nil profiler only tracks the frame rate.
func NewFPSMonitor(profiler *Profiler, threshold float64, logger zerolog.Logger) *FPSMonitor {
	return &FPSMonitor{
		profiler:  profiler,
		threshold: threshold,
		warmup:    3 * time.Second,
		started:   time.Now(),
		fps:       60,
		log:       logger,
	}
}

// Sample records the current frame rate. entities describes the load for the capture name.
func (m *FPSMonitor) Sample(fps float64, entities int) {
	m.fps = fps
	if m.profiler == nil || fps <= 0 || fps >= m.threshold {
		return
	}
	if time.Since(m.started) < m.warmup {
		return
	}

	reason := fmt.Sprintf("fps%.0f-entities%d", fps, entities)
	if err := m.profiler.CaptureProfile(reason); err == nil {
		m.log.Warn().Float64("fps", fps).Int("entities", entities).Msg("fps drop, capturing profile")
	}
}

// FPS returns the last sampled frame rate
func (m *FPSMonitor) FPS() float64 {
	return m.fps
}
