// SPDX-License-Identifier: MIT

package draw

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "draw")

// sink owns the files of one image drawer.
type sink struct {
	root       string
	format     Format
	scale      int
	animate    bool
	flushEvery int
	archive    bool

	pending []*image.RGBA
	frame   int
	arcFile *os.File
	arc     *zstd.Encoder
	closed  bool
}

func newSink(root string, o options) *sink {
	return &sink{
		root:       root,
		format:     o.format,
		scale:      o.scale,
		animate:    o.animate,
		flushEvery: o.flushEvery,
		archive:    o.archive,
	}
}

// frames returns the number of frames written or buffered so far.
func (s *sink) frames() int { return s.frame + len(s.pending) }

// add accepts one rendered frame.
func (s *sink) add(img *image.RGBA) error {
	if s.closed {
		return ErrClosed
	}
	img = scale(img, s.scale)
	if !s.animate {
		if err := s.archiveFrame(img); err != nil {
			return err
		}
		return s.writeFile(s.root+s.format.ext(), img)
	}
	s.pending = append(s.pending, img)
	if s.flushEvery > 0 && len(s.pending) >= s.flushEvery {
		return s.flush()
	}
	return nil
}

// flush writes all pending frames. On error the frames not yet written
// stay pending.
func (s *sink) flush() error {
	for len(s.pending) > 0 {
		img := s.pending[0]
		name := fmt.Sprintf("%s_%06d%s", s.root, s.frame, s.format.ext())
		if err := s.writeFile(name, img); err != nil {
			return err
		}
		if err := s.archiveFrame(img); err != nil {
			return err
		}
		s.pending = s.pending[1:]
		s.frame++
	}
	return nil
}

func (s *sink) writeFile(name string, img *image.RGBA) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	if err := encode(f, img, s.format); err != nil {
		f.Close()
		return fmt.Errorf("draw: encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	log.WithFields(logrus.Fields{
		"file":   name,
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
	}).Debug("image written")
	return nil
}

// archiveFrame appends img to the zstd PPM stream, opening it on first use.
func (s *sink) archiveFrame(img *image.RGBA) error {
	if !s.archive {
		return nil
	}
	if s.arc == nil {
		f, err := os.Create(s.root + ".ppm.zst")
		if err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		enc, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return fmt.Errorf("draw: %w", err)
		}
		s.arcFile, s.arc = f, enc
	}
	if err := WritePPM(s.arc, img); err != nil {
		return fmt.Errorf("draw: archive: %w", err)
	}
	return nil
}

// close flushes pending frames and releases the archive. It is idempotent.
func (s *sink) close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.flush()
	if s.arc != nil {
		err = errors.Join(err, s.arc.Close(), s.arcFile.Close())
	}
	if err == nil {
		log.WithFields(logrus.Fields{
			"root":   s.root,
			"frames": s.frame,
		}).Debug("drawer closed")
	}
	return err
}
