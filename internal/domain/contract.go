package domain

import (
	"fmt"
	"strings"
)

// Contract is the meld composition a seat must lay down in a given round.
type Contract struct {
	Round    int
	Groups   int
	Runs     int
	HandSize int
}

// RoundCount is the number of rounds in a full game.
const RoundCount = 7

var contracts = [RoundCount]Contract{
	{Round: 1, Groups: 2, Runs: 0, HandSize: 10},
	{Round: 2, Groups: 1, Runs: 1, HandSize: 10},
	{Round: 3, Groups: 0, Runs: 2, HandSize: 10},
	{Round: 4, Groups: 3, Runs: 0, HandSize: 10},
	{Round: 5, Groups: 2, Runs: 1, HandSize: 12},
	{Round: 6, Groups: 1, Runs: 2, HandSize: 12},
	{Round: 7, Groups: 0, Runs: 3, HandSize: 12},
}

// ContractForRound returns the contract for rounds 1..7.
func ContractForRound(round int) (Contract, error) {
	if round < 1 || round > RoundCount {
		return Contract{}, fmt.Errorf("no contract for round %d", round)
	}
	return contracts[round-1], nil
}

// String renders the contract in letter form, e.g. "GGR".
func (c Contract) String() string {
	return strings.Repeat("G", c.Groups) + strings.Repeat("R", c.Runs)
}
