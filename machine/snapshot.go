// SPDX-License-Identifier: MIT

package machine

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

const snapshotVersion = 1

// snapshot is the gob form of a Machine.
type snapshot struct {
	Version int
	Memory  []int64
	Counts  map[int64]*Counts
	IP      int64
	RB      int64
	State   State
	Fault   *Fault
	Input   []int64
	Output  []int64
	Steps   int64
}

// Save writes the complete machine state to w as a zstd-compressed gob.
func (m *Machine) Save(w io.Writer) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("machine: save: %w", err)
	}
	s := snapshot{
		Version: snapshotVersion,
		Memory:  m.mem,
		Counts:  m.counts,
		IP:      m.ip,
		RB:      m.rb,
		State:   m.state,
		Fault:   m.fault,
		Input:   m.input,
		Output:  m.output,
		Steps:   m.steps,
	}
	if err := gob.NewEncoder(enc).Encode(&s); err != nil {
		enc.Close()
		return fmt.Errorf("machine: save: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("machine: save: %w", err)
	}
	return nil
}

// Load reads a machine previously written by Save.
func Load(r io.Reader) (*Machine, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	defer dec.Close()

	var s snapshot
	if err := gob.NewDecoder(dec).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: version %d", ErrSnapshot, s.Version)
	}
	if s.State < Running || s.State > Faulted || (s.State == Faulted) != (s.Fault != nil) {
		return nil, fmt.Errorf("%w: inconsistent state %v", ErrSnapshot, s.State)
	}
	return &Machine{
		mem:    s.Memory,
		counts: s.Counts,
		ip:     s.IP,
		rb:     s.RB,
		state:  s.State,
		fault:  s.Fault,
		input:  s.Input,
		output: s.Output,
		steps:  s.Steps,
	}, nil
}
