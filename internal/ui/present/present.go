// Package present renders command results as text or JSON.
package present

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/sonos/internal/core/domain"
	"go.trai.ch/sonos/internal/ui/output"
	"go.trai.ch/sonos/internal/ui/style"
	"go.trai.ch/zerr"
)

// Presenter writes command results to the user-facing output.
type Presenter struct {
	out      *termenv.Output
	jsonMode bool
}

// New creates a Presenter writing to w with the given colour profile.
// With jsonMode set every result is written as a single JSON document.
func New(w io.Writer, profile termenv.Profile, jsonMode bool) *Presenter {
	return &Presenter{
		out:      output.NewWithProfile(w, profile),
		jsonMode: jsonMode,
	}
}

type trackJSON struct {
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	Album         string `json:"album,omitempty"`
	QueuePosition uint32 `json:"queue_position"`
	URI           string `json:"uri"`
	RunningTime   int64  `json:"running_time"`
	Duration      int64  `json:"duration"`
}

type volumeJSON struct {
	Volume uint8 `json:"volume"`
	Muted  bool  `json:"muted"`
}

type infoJSON struct {
	Name            string `json:"name"`
	IP              string `json:"ip"`
	Model           string `json:"model"`
	ModelNumber     string `json:"model_number"`
	SoftwareVersion string `json:"software_version"`
	HardwareVersion string `json:"hardware_version"`
	SerialNumber    string `json:"serial_number"`
	UUID            string `json:"uuid"`
}

type roomJSON struct {
	Name  string `json:"name"`
	IP    string `json:"ip"`
	Model string `json:"model"`
	UUID  string `json:"uuid"`
}

// Track prints what is playing with a progress bar.
func (p *Presenter) Track(t domain.Track) error {
	if p.jsonMode {
		return p.encode(trackJSON{
			Title:         t.Title,
			Artist:        t.Artist,
			Album:         t.Album,
			QueuePosition: t.QueuePosition,
			URI:           t.URI,
			RunningTime:   seconds(t.Position),
			Duration:      seconds(t.Duration),
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", style.Artist, t.Artist)
	fmt.Fprintf(&b, "%s  %s\n", style.Title, t.Title)
	if t.Album != "" {
		fmt.Fprintf(&b, "%s  %s\n", style.Album, t.Album)
	}
	fmt.Fprintf(&b, "%s  %s/%s [%s]\n",
		style.Clock, domain.FormatHMS(t.Position), domain.FormatHMS(t.Duration), trackBar(t.Position, t.Duration))
	return p.write(b.String())
}

// Volume prints the master volume with a level bar.
func (p *Presenter) Volume(v domain.Volume) error {
	if p.jsonMode {
		return p.encode(volumeJSON{Volume: v.Level, Muted: v.Muted})
	}

	icon := style.Loud
	if v.Muted {
		icon = style.Muted
	}
	filled := int(v.Level) * style.BarWidth / domain.MaxVolume
	return p.write(fmt.Sprintf("%s %d/%d [%s]\n", icon, v.Level, domain.MaxVolume, bar(filled)))
}

// Info prints the identity of one speaker.
func (p *Presenter) Info(s domain.Speaker) error {
	if p.jsonMode {
		return p.encode(infoJSON{
			Name:            s.Name,
			IP:              s.Address.String(),
			Model:           s.Model,
			ModelNumber:     s.ModelNumber,
			SoftwareVersion: s.SoftwareVersion,
			HardwareVersion: s.HardwareVersion,
			SerialNumber:    s.SerialNumber,
			UUID:            s.UUID,
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", style.Speaker, p.heading(s.Name))
	b.WriteString(strings.Repeat(style.Underline, len(s.Name)+3))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Model: %s (%s)\n", s.Model, s.ModelNumber)
	fmt.Fprintf(&b, "Versions: Software %s, Hardware %s\n", s.SoftwareVersion, s.HardwareVersion)
	fmt.Fprintf(&b, "Serial number: %s\n", s.SerialNumber)
	fmt.Fprintf(&b, "UUID: %s\n", s.UUID)
	return p.write(b.String())
}

// Rooms prints one line per speaker.
func (p *Presenter) Rooms(speakers []domain.Speaker) error {
	if p.jsonMode {
		rooms := make([]roomJSON, 0, len(speakers))
		for _, s := range speakers {
			rooms = append(rooms, roomJSON{Name: s.Name, IP: s.Address.String(), Model: s.Model, UUID: s.UUID})
		}
		return p.encode(rooms)
	}

	var b strings.Builder
	for _, s := range speakers {
		fmt.Fprintf(&b, "%s  %s (%s)\n", style.Speaker, p.heading(s.Name), s.Address)
	}
	return p.write(b.String())
}

func (p *Presenter) heading(s string) string {
	return p.out.String(s).Foreground(p.out.Color(string(style.Accent))).Bold().String()
}

func (p *Presenter) write(s string) error {
	if _, err := io.WriteString(p.out, s); err != nil {
		return zerr.Wrap(err, "failed to write output")
	}
	return nil
}

func (p *Presenter) encode(v any) error {
	if err := json.NewEncoder(p.out).Encode(v); err != nil {
		return zerr.Wrap(err, "failed to write JSON output")
	}
	return nil
}

// trackBar fills floor(pos/dur * width) cells.
func trackBar(pos, dur time.Duration) string {
	total := seconds(dur)
	if total <= 0 {
		return bar(0)
	}
	return bar(int(seconds(pos) * style.BarWidth / total))
}

func bar(filled int) string {
	filled = max(0, min(filled, style.BarWidth))
	return strings.Repeat(style.BarFilled, filled) + strings.Repeat(style.BarEmpty, style.BarWidth-filled)
}

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
