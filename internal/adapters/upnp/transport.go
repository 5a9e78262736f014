package upnp

import (
	"context"
	"errors"
	"net/netip"
	"time"

	"github.com/huin/goupnp/dcps/av1"
	"go.trai.ch/sonos/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	instanceID    = 0
	masterChannel = "Master"
	seekUnit      = "REL_TIME"
)

// Track reports the current track, its metadata and the playback position.
func (c *Client) Track(ctx context.Context, sp domain.Speaker) (domain.Track, error) {
	avt, err := c.avTransport(ctx, sp.Address)
	if err != nil {
		return domain.Track{}, err
	}

	queuePos, duration, metadata, uri, relTime, _, _, _, err := avt.GetPositionInfoCtx(ctx, instanceID)
	if err != nil {
		return domain.Track{}, controlError("GetPositionInfo", sp.Address, err)
	}

	meta, err := parseTrackMetadata(metadata)
	if err != nil {
		return domain.Track{}, controlError("GetPositionInfo", sp.Address, zerr.Wrap(err, "failed to parse track metadata"))
	}

	return domain.Track{
		Title:         meta.Title,
		Artist:        meta.Creator,
		Album:         meta.Album,
		QueuePosition: queuePos,
		URI:           uri,
		Position:      domain.ParseClock(relTime),
		Duration:      domain.ParseClock(duration),
	}, nil
}

// Next skips to the next track.
func (c *Client) Next(ctx context.Context, sp domain.Speaker) error {
	avt, err := c.avTransport(ctx, sp.Address)
	if err != nil {
		return err
	}
	if err := avt.NextCtx(ctx, instanceID); err != nil {
		return controlError("Next", sp.Address, err)
	}
	return nil
}

// Previous goes back to the previous track.
func (c *Client) Previous(ctx context.Context, sp domain.Speaker) error {
	avt, err := c.avTransport(ctx, sp.Address)
	if err != nil {
		return err
	}
	if err := avt.PreviousCtx(ctx, instanceID); err != nil {
		return controlError("Previous", sp.Address, err)
	}
	return nil
}

// Seek moves playback of the current track to position.
func (c *Client) Seek(ctx context.Context, sp domain.Speaker, position time.Duration) error {
	avt, err := c.avTransport(ctx, sp.Address)
	if err != nil {
		return err
	}
	if err := avt.SeekCtx(ctx, instanceID, seekUnit, domain.FormatClock(position)); err != nil {
		return controlError("Seek", sp.Address, err)
	}
	return nil
}

// Volume reports the master volume and mute state.
func (c *Client) Volume(ctx context.Context, sp domain.Speaker) (domain.Volume, error) {
	rc, err := c.renderingControl(ctx, sp.Address)
	if err != nil {
		return domain.Volume{}, err
	}

	level, err := rc.GetVolumeCtx(ctx, instanceID, masterChannel)
	if err != nil {
		return domain.Volume{}, controlError("GetVolume", sp.Address, err)
	}
	muted, err := rc.GetMuteCtx(ctx, instanceID, masterChannel)
	if err != nil {
		return domain.Volume{}, controlError("GetMute", sp.Address, err)
	}

	return domain.Volume{Level: uint8(min(level, domain.MaxVolume)), Muted: muted}, nil
}

// SetVolume sets the master volume.
func (c *Client) SetVolume(ctx context.Context, sp domain.Speaker, level uint8) error {
	rc, err := c.renderingControl(ctx, sp.Address)
	if err != nil {
		return err
	}
	if err := rc.SetVolumeCtx(ctx, instanceID, masterChannel, uint16(level)); err != nil {
		return controlError("SetVolume", sp.Address, err)
	}
	return nil
}

func (c *Client) avTransport(ctx context.Context, addr netip.Addr) (*av1.AVTransport1, error) {
	d, err := c.device(ctx, addr)
	if err != nil {
		return nil, err
	}
	clients, err := av1.NewAVTransport1ClientsFromRootDevice(d.root, d.loc)
	if err != nil {
		return nil, controlError("AVTransport", addr, err)
	}
	return clients[0], nil
}

func (c *Client) renderingControl(ctx context.Context, addr netip.Addr) (*av1.RenderingControl1, error) {
	d, err := c.device(ctx, addr)
	if err != nil {
		return nil, err
	}
	clients, err := av1.NewRenderingControl1ClientsFromRootDevice(d.root, d.loc)
	if err != nil {
		return nil, controlError("RenderingControl", addr, err)
	}
	return clients[0], nil
}

func controlError(action string, addr netip.Addr, err error) error {
	return errors.Join(
		domain.ErrDeviceControl,
		zerr.With(zerr.With(err, "action", action), "address", addr.String()),
	)
}
