package domain

import "context"

//go:generate mockgen -source=gateway.go -destination=mock_gateway.go -package=domain

// FlightSearcher produces flight candidates for a set of search criteria.
//
// Implementations are total: any transport, parse, or schema failure is
// absorbed internally and replaced with a fixed fallback flight, so the
// returned slice is never empty and never accompanied by an error. The UI
// must never be left with zero results after a search attempt.
type FlightSearcher interface {
	Search(ctx context.Context, criteria SearchCriteria) []Flight
}

// Concierge answers a running conversation, optionally suggesting flights.
//
// Implementations are total in the same sense as FlightSearcher: a failed
// call yields a fixed apologetic reply with no suggestions, which the caller
// appends to the conversation exactly like any other turn.
type Concierge interface {
	Chat(ctx context.Context, history []ChatTurn) ChatReply
}
