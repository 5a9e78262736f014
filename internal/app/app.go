// Package app implements the application layer for sonos.
package app

import (
	"context"
	"errors"
	"io"
	"net/netip"
	"os"
	"strings"

	"go.trai.ch/sonos/internal/adapters/detector"
	"go.trai.ch/sonos/internal/adapters/prompt"
	"go.trai.ch/sonos/internal/adapters/telemetry"
	"go.trai.ch/sonos/internal/core/domain"
	"go.trai.ch/sonos/internal/core/ports"
	"go.trai.ch/sonos/internal/engine/discovery"
	"go.trai.ch/sonos/internal/engine/resolver"
	"go.trai.ch/sonos/internal/ui/output"
	"go.trai.ch/sonos/internal/ui/present"
	"go.trai.ch/zerr"
)

// Options are the global flags shared by every command.
type Options struct {
	// Controller is an IP address or an approximate room name.
	Controller string
	// JSON switches results and logs to JSON.
	JSON bool
	// AssumeYes accepts suggested speakers without asking.
	AssumeYes bool
	// Verbose logs every traced operation.
	Verbose bool
}

// App represents the main application logic.
type App struct {
	enumerator *discovery.Enumerator
	client     ports.DeviceClient
	transport  ports.Transport
	cache      ports.SpeakerCache
	logger     ports.Logger
	tracer     ports.Tracer

	in     io.Reader
	out    io.Writer
	errOut io.Writer
	mode   func() detector.OutputMode
}

// New creates a new App instance.
func New(
	enumerator *discovery.Enumerator,
	client ports.DeviceClient,
	transport ports.Transport,
	cache ports.SpeakerCache,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		enumerator: enumerator,
		client:     client,
		transport:  transport,
		cache:      cache,
		logger:     log,
		tracer:     tracer,
		in:         os.Stdin,
		out:        os.Stdout,
		errOut:     os.Stderr,
		mode:       detector.DetectEnvironment,
	}
}

// WithIO replaces the streams used for results, prompts and the confirmation keystroke.
func (a *App) WithIO(in io.Reader, out io.Writer) *App {
	a.in = in
	a.out = out
	return a
}

// WithErrorOutput replaces the stream that takes prompts while results are JSON.
func (a *App) WithErrorOutput(w io.Writer) *App {
	a.errOut = w
	return a
}

// WithOutputMode fixes the output mode instead of detecting it from the terminal.
func (a *App) WithOutputMode(mode detector.OutputMode) *App {
	a.mode = func() detector.OutputMode { return mode }
	return a
}

// jsonSwitcher is implemented by loggers that can emit JSON.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// begin applies the global flags and returns a function that undoes them.
func (a *App) begin(opts Options) func() {
	if s, ok := a.logger.(jsonSwitcher); ok {
		s.SetJSON(opts.JSON)
	}
	if !opts.Verbose {
		return func() {}
	}
	shutdown := telemetry.Install(a.logger)
	return func() {
		_ = shutdown(context.Background())
	}
}

func (a *App) outputMode(opts Options) detector.OutputMode {
	return detector.ResolveMode(a.mode(), opts.JSON)
}

func (a *App) presenter(opts Options) *present.Presenter {
	styled := a.mode() == detector.ModeInteractive
	return present.New(a.out, output.ResultProfile(styled), opts.JSON)
}

// confirmer keeps prompts off stdout under --json so it carries only the document.
func (a *App) confirmer(opts Options) ports.Confirmer {
	w := a.out
	if opts.JSON {
		w = a.errOut
	}
	if opts.AssumeYes {
		return prompt.Auto(true, w)
	}
	return prompt.NewTerminal(a.in, w)
}

// ResolveController turns an IP address or room name into a connected speaker.
//
// IP addresses are connected to directly. Names are matched against the enumerated
// speakers, using the cache when one exists.
func (a *App) ResolveController(ctx context.Context, input string, opts Options) (domain.Speaker, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return domain.Speaker{}, domain.ErrNoControllerSpecified
	}

	if addr, err := netip.ParseAddr(input); err == nil {
		speaker, err := a.client.Connect(ctx, addr.Unmap())
		if err != nil {
			return domain.Speaker{}, errors.Join(domain.ErrAddressConnect, zerr.With(err, "address", addr.String()))
		}
		return speaker, nil
	}

	speakers, err := a.enumerator.Enumerate(ctx, true, a.outputMode(opts).ShowProgress())
	if err != nil {
		return domain.Speaker{}, err
	}

	out, err := resolver.New(a.confirmer(opts), a.tracer).Resolve(ctx, input, speakers)
	if err != nil {
		return domain.Speaker{}, err
	}
	return out.Speaker, nil
}

// Discover lists every speaker, rescanning the network when invalidate is set.
func (a *App) Discover(ctx context.Context, showProgress, invalidate bool) ([]domain.Speaker, error) {
	return a.enumerator.Enumerate(ctx, !invalidate, showProgress)
}

// Track prints the track playing on the controller.
func (a *App) Track(ctx context.Context, opts Options) error {
	defer a.begin(opts)()

	speaker, err := a.ResolveController(ctx, opts.Controller, opts)
	if err != nil {
		return err
	}
	track, err := a.transport.Track(ctx, speaker)
	if err != nil {
		return err
	}
	return a.presenter(opts).Track(track)
}

// Next skips to the next track.
func (a *App) Next(ctx context.Context, opts Options) error {
	defer a.begin(opts)()

	speaker, err := a.ResolveController(ctx, opts.Controller, opts)
	if err != nil {
		return err
	}
	return a.transport.Next(ctx, speaker)
}

// Previous goes back to the previous track.
func (a *App) Previous(ctx context.Context, opts Options) error {
	defer a.begin(opts)()

	speaker, err := a.ResolveController(ctx, opts.Controller, opts)
	if err != nil {
		return err
	}
	return a.transport.Previous(ctx, speaker)
}

// Seek moves playback to timestamp, given as hh:mm:ss, mm:ss or ss.
func (a *App) Seek(ctx context.Context, opts Options, timestamp string) error {
	defer a.begin(opts)()

	position, err := domain.ParseTimestamp(timestamp)
	if err != nil {
		return err
	}
	speaker, err := a.ResolveController(ctx, opts.Controller, opts)
	if err != nil {
		return err
	}
	return a.transport.Seek(ctx, speaker, position)
}

// Info prints the identity of the controller.
func (a *App) Info(ctx context.Context, opts Options) error {
	defer a.begin(opts)()

	speaker, err := a.ResolveController(ctx, opts.Controller, opts)
	if err != nil {
		return err
	}
	return a.presenter(opts).Info(speaker)
}

// Volume prints the controller's volume.
func (a *App) Volume(ctx context.Context, opts Options) error {
	defer a.begin(opts)()

	speaker, err := a.ResolveController(ctx, opts.Controller, opts)
	if err != nil {
		return err
	}
	volume, err := a.transport.Volume(ctx, speaker)
	if err != nil {
		return err
	}
	return a.presenter(opts).Volume(volume)
}

// SetVolume sets the controller's volume to level, a percentage.
func (a *App) SetVolume(ctx context.Context, opts Options, level string) error {
	defer a.begin(opts)()

	v, err := domain.ParseVolume(level)
	if err != nil {
		return err
	}
	speaker, err := a.ResolveController(ctx, opts.Controller, opts)
	if err != nil {
		return err
	}
	return a.transport.SetVolume(ctx, speaker, v)
}

// Rooms prints every speaker on the network.
func (a *App) Rooms(ctx context.Context, opts Options, invalidate bool) error {
	defer a.begin(opts)()

	speakers, err := a.Discover(ctx, a.outputMode(opts).ShowProgress(), invalidate)
	if err != nil {
		return err
	}
	return a.presenter(opts).Rooms(speakers)
}

// Clean removes the speaker cache.
func (a *App) Clean(_ context.Context, opts Options) error {
	defer a.begin(opts)()

	a.logger.Info("removing speaker cache...")
	if err := a.cache.Remove(); err != nil {
		return err
	}
	a.logger.Info("removed speaker cache")
	return nil
}
