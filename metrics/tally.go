package metrics

import (
	"errors"
	"fmt"
)

// Sentinel errors for metric computation.
var (
	// ErrMalformedTally indicates a ragged vote table or negative votes.
	ErrMalformedTally = errors.New("metrics: malformed tally")

	// ErrUnknownParty indicates a party name absent from the tally.
	ErrUnknownParty = errors.New("metrics: unknown party")

	// ErrNoVotes indicates that no district carries any vote.
	ErrNoVotes = errors.New("metrics: tally has no votes")
)

// Tally is a districts × parties vote table. Votes[d][j] is the number of
// votes party Parties[j] received in district d.
type Tally struct {
	Parties []string
	Votes   [][]int64
}

// NewTally validates and returns a Tally. Every row must have one entry per
// party and no entry may be negative.
func NewTally(parties []string, votes [][]int64) (Tally, error) {
	t := Tally{Parties: parties, Votes: votes}
	if err := t.Validate(); err != nil {
		return Tally{}, err
	}

	return t, nil
}

// Validate checks the table shape and vote signs.
func (t Tally) Validate() error {
	if len(t.Parties) == 0 {
		return fmt.Errorf("no parties: %w", ErrMalformedTally)
	}
	for d, row := range t.Votes {
		if len(row) != len(t.Parties) {
			return fmt.Errorf("district %d has %d columns, want %d: %w", d, len(row), len(t.Parties), ErrMalformedTally)
		}
		for j, v := range row {
			if v < 0 {
				return fmt.Errorf("district %d party %s: negative votes: %w", d, t.Parties[j], ErrMalformedTally)
			}
		}
	}

	return nil
}

// Districts returns the number of districts in the table.
func (t Tally) Districts() int { return len(t.Votes) }

// PartyIndex returns the column of party.
func (t Tally) PartyIndex(party string) (int, error) {
	for j, p := range t.Parties {
		if p == party {
			return j, nil
		}
	}

	return -1, fmt.Errorf("%q: %w", party, ErrUnknownParty)
}

// Total returns the number of votes cast in district d.
func (t Tally) Total(d int) int64 {
	var sum int64
	for _, v := range t.Votes[d] {
		sum += v
	}

	return sum
}

// leaders returns the columns sharing the maximum vote in district d.
func (t Tally) leaders(d int) []int {
	var (
		best int64 = -1
		out  []int
	)
	for j, v := range t.Votes[d] {
		switch {
		case v > best:
			best = v
			out = append(out[:0], j)
		case v == best:
			out = append(out, j)
		}
	}

	return out
}
