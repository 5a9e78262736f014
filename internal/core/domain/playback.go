package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// MaxVolume is the upper bound of a speaker's volume scale.
const MaxVolume = 100

// maxTimestampSeconds is the longest timestamp a time.Duration can hold.
const maxTimestampSeconds = math.MaxInt64 / int64(time.Second)

// Track describes what a speaker is currently playing.
type Track struct {
	Title         string
	Artist        string
	Album         string
	QueuePosition uint32
	URI           string
	Position      time.Duration
	Duration      time.Duration
}

// Volume is a speaker's master volume and mute state.
type Volume struct {
	Level uint8
	Muted bool
}

// ParseVolume parses a percent volume between 0 and MaxVolume.
func ParseVolume(s string) (uint8, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 || v > MaxVolume {
		return 0, zerr.With(zerr.Wrap(ErrInvalidVolume, fmt.Sprintf("cannot use %q as a volume", s)), "volume", s)
	}
	return uint8(v), nil
}

// ParseTimestamp parses hh:mm:ss, mm:ss or ss into a duration.
// Sections are read right to left, each one worth sixty times the previous.
func ParseTimestamp(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) > 3 {
		return 0, invalidTimestamp(s)
	}

	var secs uint64
	multiplier := uint64(1)
	for i := len(parts) - 1; i >= 0; i-- {
		v, err := strconv.ParseUint(parts[i], 10, 32)
		if err != nil {
			return 0, invalidTimestamp(s)
		}
		secs += v * multiplier
		multiplier *= 60
	}
	if secs > uint64(maxTimestampSeconds) {
		return 0, invalidTimestamp(s)
	}

	return time.Duration(secs) * time.Second, nil
}

func invalidTimestamp(s string) error {
	return zerr.With(zerr.Wrap(ErrInvalidTimestamp, fmt.Sprintf("cannot seek to %q", s)), "timestamp", s)
}

// ParseClock parses the H:MM:SS form speakers report for positions and durations.
// Fractional seconds and unknown values such as NOT_IMPLEMENTED yield zero.
func ParseClock(s string) time.Duration {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	d, err := ParseTimestamp(s)
	if err != nil {
		return 0
	}
	return d
}

// FormatClock renders d as hh:mm:ss for seek requests.
func FormatClock(d time.Duration) string {
	secs := int64(d / time.Second)
	return pad2(secs/3600) + ":" + pad2(secs%3600/60) + ":" + pad2(secs%60)
}

// FormatHMS renders d as mm:ss, prefixed with hh: only when it spans an hour or more.
func FormatHMS(d time.Duration) string {
	secs := int64(d / time.Second)

	var b strings.Builder
	if hours := secs / 3600; hours > 0 {
		b.WriteString(pad2(hours))
		b.WriteByte(':')
	}
	b.WriteString(pad2(secs % 3600 / 60))
	b.WriteByte(':')
	b.WriteString(pad2(secs % 60))
	return b.String()
}

func pad2(v int64) string {
	if v < 10 {
		return "0" + strconv.FormatInt(v, 10)
	}
	return strconv.FormatInt(v, 10)
}
