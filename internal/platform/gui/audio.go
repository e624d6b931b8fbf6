package gui

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"

	"github.com/vovakirdan/bubblepop/internal/config"
)

const sampleRate = 44100

// Synthesized pop: a short downward chirp with an exponential decay.
const (
	popDuration  = 0.09 // seconds
	popStartFreq = 1200.0
	popEndFreq   = 250.0
	popDecay     = 45.0
)

// popSound plays the pop cue. Each pop restarts the clip from the beginning.
type popSound struct {
	player *audio.Player
	logger *log.Logger
}

// newPopSound loads the configured MP3 or synthesizes a pop.
func newPopSound(ctx *audio.Context, cfg config.AudioConfig, logger *log.Logger) (*popSound, error) {
	pcm := synthPop(ctx.SampleRate())
	if cfg.PopSound != "" {
		decoded, err := loadMP3(cfg.PopSound, ctx.SampleRate())
		if err != nil {
			return nil, err
		}
		pcm = decoded
	}

	player := ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(cfg.Volume)
	return &popSound{player: player, logger: logger}, nil
}

// PlayPop rewinds and plays the clip.
func (p *popSound) PlayPop() {
	if err := p.player.Rewind(); err != nil {
		p.logger.Warn("failed to rewind pop sound", "err", err)
	}
	p.player.Play()
}

// loadMP3 decodes an MP3 file into 16-bit stereo PCM at the given rate.
func loadMP3(path string, rate int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gui: failed to read pop sound: %w", err)
	}
	stream, err := mp3.DecodeWithSampleRate(rate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gui: failed to decode MP3 %s: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("gui: failed to decode MP3 %s: %w", path, err)
	}
	return pcm, nil
}

// synthPop renders the pop as 16-bit little-endian stereo PCM.
func synthPop(rate int) []byte {
	n := int(popDuration * float64(rate))
	buf := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(rate)
		progress := float64(i) / float64(n)
		freq := popStartFreq + (popEndFreq-popStartFreq)*progress
		phase += 2 * math.Pi * freq / float64(rate)

		v := int16(math.Sin(phase) * math.Exp(-popDecay*t) * 0.8 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
