//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vole

import (
	"fmt"
	"time"

	"github.com/markkurossi/text/superscript"
	"github.com/markkurossi/text/symbols"
	"golang.org/x/sync/errgroup"

	"github.com/markkurossi/voleith/env"
	"github.com/markkurossi/voleith/gf128"
	"github.com/markkurossi/voleith/gf2"
	"github.com/markkurossi/voleith/veccom"
	"github.com/markkurossi/voleith/xof"
)

// SecurityParameter is the computational security parameter in
// bits.
const SecurityParameter = 128

// State defines the sender protocol states.
type State int

// Sender states.
const (
	New State = iota
	Committed
	RespondedToConsistencyChallenge
	Ready
)

var stateNames = map[State]string{
	New:                             "New",
	Committed:                       "Committed",
	RespondedToConsistencyChallenge: "RespondedToConsistencyChallenge",
	Ready:                           "Ready",
}

func (s State) String() string {
	name, ok := stateNames[s]
	if ok {
		return name
	}
	return fmt.Sprintf("{State %d}", s)
}

// Sender implements the prover side of the VOLE-in-the-head
// protocol.
type Sender struct {
	config         *env.Config
	vc             veccom.VecCom
	field          gf128.SmallField
	voleLength     int
	numRepetitions int
	logQ           int
	state          State
	u              gf2.Vector
	v              gf128.Matrix
	keys           []veccom.DecommitmentKey

	// Timing records the duration and message size of each
	// protocol stage.
	Timing *Timing
}

// NewSender creates a new sender that produces voleLength VOLE
// correlations with numRepetitions repetitions over the small field
// field. The function panics if the lengths are not positive.
func NewSender(config *env.Config, vc veccom.VecCom, field gf128.SmallField,
	voleLength, numRepetitions int) *Sender {

	if voleLength <= 0 {
		panic(fmt.Sprintf("vole: invalid VOLE length %d", voleLength))
	}
	if numRepetitions <= 0 {
		panic(fmt.Sprintf("vole: invalid number of repetitions %d",
			numRepetitions))
	}
	if config == nil {
		config = new(env.Config)
	}
	return &Sender{
		config:         config,
		vc:             vc,
		field:          field,
		voleLength:     voleLength,
		numRepetitions: numRepetitions,
		logQ:           field.Bits(),
		state:          New,
		Timing:         NewTiming(),
	}
}

// Debugf prints debugging message if Verbose debugging is enabled for
// this Sender.
func (s *Sender) Debugf(format string, a ...interface{}) {
	if !s.config.Verbose {
		return
	}
	fmt.Printf(format, a...)
}

// State returns the current protocol state.
func (s *Sender) State() State {
	return s.state
}

func (s *Sender) expectState(op string, state State) {
	if s.state != state {
		panic(fmt.Sprintf("vole: %s in state %v, expected %v",
			op, s.state, state))
	}
}

func (s *Sender) ellHat() int {
	return s.voleLength + s.numRepetitions
}

// CommitRandom commits to a uniformly random VOLE vector u.
func (s *Sender) CommitRandom() (*Commitment, error) {
	return s.Commit(nil)
}

// CommitMessage commits to a VOLE vector u whose first voleLength
// bits are the message m.
func (s *Sender) CommitMessage(m gf2.Vector) (*Commitment, error) {
	return s.Commit(&m)
}

// Commit runs the commit stage. If message is non-nil, it fixes the
// first voleLength bits of u. The function panics if the sender is
// not in the New state or if the message length is not voleLength.
// Errors from the vector commitment's randomness are returned and
// leave the sender in the New state.
func (s *Sender) Commit(message *gf2.Vector) (*Commitment, error) {
	s.expectState("Commit", New)
	if message != nil && message.Len() != s.voleLength {
		panic(fmt.Sprintf("vole: message length %d, expected %d",
			message.Len(), s.voleLength))
	}
	s.Timing = NewTiming()

	ellHat := s.ellHat()
	tau := s.numRepetitions

	s.Debugf("%c=%d: commit: %s=%d, ell=%d, tau=%d\n",
		symbols.Lambda, SecurityParameter, s.field, s.logQ, s.voleLength, tau)

	// Draw the commitments in repetition order so that the consumed
	// randomness is independent of scheduling.
	digests := make([][]byte, tau)
	keys := make([]veccom.DecommitmentKey, tau)
	streams := make([][]xof.XOF, tau)
	for i := 0; i < tau; i++ {
		digest, key, leaves, err := s.vc.Commit(s.logQ)
		if err != nil {
			return nil, fmt.Errorf("vole: repetition %d: %w", i, err)
		}
		digests[i] = digest
		keys[i] = key
		streams[i] = leaves
	}
	s.Timing.Sample("Commit", nil)

	vt := gf128.NewMatrix(tau, ellHat)
	us := make([]gf2.Vector, tau)
	durations := make([]time.Duration, tau)

	var g errgroup.Group
	g.SetLimit(s.config.GetWorkers())
	for i := 0; i < tau; i++ {
		i := i // per-iteration copy (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			start := time.Now()
			u, err := expandRepetition(streams[i], s.field, ellHat, vt.Row(i))
			if err != nil {
				return fmt.Errorf("vole: repetition %d: %w", i, err)
			}
			us[i] = u
			durations[i] = time.Since(start)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sample := s.Timing.Sample("Expand", nil)
	for i, d := range durations {
		sample.AbsSubSample("rep"+superscript.Itoa(i), d)
	}

	commitment := new(Commitment)

	u := us[0].Clone()
	if message != nil {
		c0 := u.Prefix(s.voleLength)
		c0.Xor(*message)
		u.XorPrefix(c0)
		commitment.Corrections = append(commitment.Corrections, c0)
	}
	for i := 1; i < tau; i++ {
		c := u.Clone()
		c.Xor(us[i])
		commitment.Corrections = append(commitment.Corrections, c)
		s.Debugf("c%s: %d bits set\n", superscript.Itoa(i), c.Count())
	}

	h := s.config.GetHash()
	for _, d := range digests {
		h.Write(d)
	}
	commitment.Digest = h.Sum(nil)

	s.u = u
	s.v = vt.Transpose()
	s.keys = keys
	s.state = Committed

	sample = s.Timing.Sample("Correct", nil)
	sample.Size = FileSize(commitment.Size())
	sample.Cols = []string{sample.Size.String()}

	return commitment, nil
}

// ConsistencyCheckRespond answers the consistency challenge points,
// one point per repetition. After the response, u holds voleLength
// bits. The function panics if the sender is not in the Committed
// state or if the number of points is not numRepetitions.
func (s *Sender) ConsistencyCheckRespond(points []gf128.Element) *Response {
	s.expectState("ConsistencyCheckRespond", Committed)
	if len(points) != s.numRepetitions {
		panic(fmt.Sprintf("vole: %d challenge points, expected %d",
			len(points), s.numRepetitions))
	}

	fold := NewFold(points, s.voleLength)
	vector := fold.Bits(s.u)
	folded := fold.Matrix(s.v)
	foldEnd := time.Now()

	response := &Response{
		Vector: vector,
		Digest: HashMatrix(s.config.GetHash(), folded),
	}
	hashEnd := time.Now()

	s.u = s.u.Prefix(s.voleLength)
	s.state = RespondedToConsistencyChallenge

	s.Debugf("check: digest=%x\n", response.Digest)

	sample := s.Timing.Sample("Check", nil)
	sample.SubSample("Fold", foldEnd)
	sample.SubSample("Hash", hashEnd)
	sample.Size = FileSize(response.Size())
	sample.Cols = []string{sample.Size.String()}

	return response
}

// Decommit opens every repetition's commitment at all leaves except
// the one selected by its challenge Delta. The function panics if
// the sender is not in the RespondedToConsistencyChallenge state, if
// the number of challenges is not numRepetitions, or if a challenge
// is not in the embedded small field.
func (s *Sender) Decommit(deltas []gf128.Element) *Decommitment {
	s.expectState("Decommit", RespondedToConsistencyChallenge)
	if len(deltas) != s.numRepetitions {
		panic(fmt.Sprintf("vole: %d challenges, expected %d",
			len(deltas), s.numRepetitions))
	}

	result := &Decommitment{
		Openings: make([]*veccom.Opening, len(deltas)),
	}
	for i, delta := range deltas {
		index, ok := s.field.Extract(delta)
		if !ok {
			panic(fmt.Sprintf("vole: challenge %d not in %s: %v",
				i, s.field, delta))
		}
		s.Debugf("Δ%s=%d\n", superscript.Itoa(i), index)
		result.Openings[i] = s.vc.Decommit(s.logQ, s.keys[i], index)
	}
	s.state = Ready

	sample := s.Timing.Sample("Decommit", nil)
	sample.Size = FileSize(result.Size())
	sample.Cols = []string{sample.Size.String()}

	return result
}

// Output returns the VOLE correlation: the bit vector u and the
// (voleLength, numRepetitions) matrix v. The results are copies of
// the sender state. The function panics if the sender has not
// committed.
func (s *Sender) Output() (gf2.Vector, gf128.Matrix) {
	if s.state == New {
		panic("vole: Output in state New")
	}
	rows, cols := s.v.Shape()
	if rows != s.ellHat() || cols != s.numRepetitions {
		panic(fmt.Sprintf("vole: invalid V %s", s.v))
	}
	v := gf128.NewMatrix(s.voleLength, s.numRepetitions)
	copy(v.Data, s.v.Slice(s.voleLength).Data)

	return s.u.Prefix(s.voleLength), v
}
