// Package metrics provides partisan summary statistics over per-district
// vote tallies.
//
// Every function is pure: it reads a Tally and returns a number, so the
// metrics can be tested and reused independently of any chain.
//
//   - Wins(t, party): districts where party strictly beats every other party.
//   - Ties(t): districts without a strict winner.
//   - SeatsWithTies(t, party): wins plus an even share of every tie the party
//     leads in (the expected-seat convention; half a seat per two-way tie).
//   - MeanMedian(t, party): mean minus median of the party's vote share.
//   - WastedVotes(t, x, y), EfficiencyGap(t, x, y): two-party wasted-vote
//     accounting with the ⌊total/2⌋+1 winning threshold.
//
// Districts with no votes at all are skipped by the share and wasted-vote
// metrics; they count as ties for Ties and SeatsWithTies.
package metrics
