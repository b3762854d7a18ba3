package models

import "time"

// ConsensusTick is one realtime consensus update from the push channel.
// Ticks adjust the lightweight display values already on screen; they never
// feed the ranking or classification layer, which only consumes fetched
// OpportunityRecords.
type ConsensusTick struct {
	SignalID       string    `json:"signal_id"`
	Market         string    `json:"market"`
	ConsensusLine  *float64  `json:"consensus_line"`
	ConsensusPrice *int      `json:"consensus_price"`
	Timestamp      time.Time `json:"timestamp"`
}
