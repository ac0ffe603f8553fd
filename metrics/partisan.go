package metrics

import (
	"fmt"
	"sort"
)

// Wins counts the districts in which party receives strictly more votes than
// every other party. A tied district is won by nobody.
func Wins(t Tally, party string) (int, error) {
	j, err := t.PartyIndex(party)
	if err != nil {
		return 0, err
	}
	wins := 0
	for d := range t.Votes {
		if l := t.leaders(d); len(l) == 1 && l[0] == j {
			wins++
		}
	}

	return wins, nil
}

// Ties counts the districts without a strict winner, including districts
// where nobody voted.
func Ties(t Tally) int {
	ties := 0
	for d := range t.Votes {
		if len(t.leaders(d)) > 1 {
			ties++
		}
	}

	return ties
}

// SeatsWithTies returns the expected seat count of party when every tied
// district is split evenly among the parties sharing its lead. With two
// parties this is wins + ties/2.
func SeatsWithTies(t Tally, party string) (float64, error) {
	j, err := t.PartyIndex(party)
	if err != nil {
		return 0, err
	}
	var seats float64
	for d := range t.Votes {
		l := t.leaders(d)
		for _, c := range l {
			if c == j {
				seats += 1 / float64(len(l))
				break
			}
		}
	}

	return seats, nil
}

// VoteShares returns party's share of the vote in every district that has
// at least one vote, in district order.
func VoteShares(t Tally, party string) ([]float64, error) {
	j, err := t.PartyIndex(party)
	if err != nil {
		return nil, err
	}
	shares := make([]float64, 0, len(t.Votes))
	for d := range t.Votes {
		total := t.Total(d)
		if total == 0 {
			continue
		}
		shares = append(shares, float64(t.Votes[d][j])/float64(total))
	}

	return shares, nil
}

// MeanMedian returns the mean minus the median of party's district vote
// shares. A positive value means the party's typical district share sits
// below its average, the signature of packed districts.
func MeanMedian(t Tally, party string) (float64, error) {
	shares, err := VoteShares(t, party)
	if err != nil {
		return 0, err
	}
	if len(shares) == 0 {
		return 0, ErrNoVotes
	}

	var sum float64
	for _, s := range shares {
		sum += s
	}
	mean := sum / float64(len(shares))

	sort.Float64s(shares)
	n := len(shares)
	median := shares[n/2]
	if n%2 == 0 {
		median = (shares[n/2-1] + shares[n/2]) / 2
	}

	return mean - median, nil
}

// WastedVotes returns the wasted votes of parties x and y over the two-party
// vote. In each district the loser wastes every vote and the winner wastes
// the votes above the ⌊(vx+vy)/2⌋+1 threshold; in a tie both waste all.
func WastedVotes(t Tally, x, y string) (wx, wy int64, err error) {
	ix, err := t.PartyIndex(x)
	if err != nil {
		return 0, 0, err
	}
	iy, err := t.PartyIndex(y)
	if err != nil {
		return 0, 0, err
	}
	if ix == iy {
		return 0, 0, fmt.Errorf("x and y are both %q: %w", x, ErrUnknownParty)
	}

	for d := range t.Votes {
		vx, vy := t.Votes[d][ix], t.Votes[d][iy]
		threshold := (vx+vy)/2 + 1
		switch {
		case vx > vy:
			wx += vx - threshold
			wy += vy
		case vy > vx:
			wy += vy - threshold
			wx += vx
		default:
			wx += vx
			wy += vy
		}
	}

	return wx, wy, nil
}

// EfficiencyGap returns (wasted_x − wasted_y) / total two-party votes.
// Positive values mean x wastes more votes than y.
func EfficiencyGap(t Tally, x, y string) (float64, error) {
	wx, wy, err := WastedVotes(t, x, y)
	if err != nil {
		return 0, err
	}
	ix, _ := t.PartyIndex(x)
	iy, _ := t.PartyIndex(y)
	var total int64
	for d := range t.Votes {
		total += t.Votes[d][ix] + t.Votes[d][iy]
	}
	if total == 0 {
		return 0, ErrNoVotes
	}

	return float64(wx-wy) / float64(total), nil
}
