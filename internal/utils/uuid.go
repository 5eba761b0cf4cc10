package utils

import "github.com/google/uuid"

// TraceIDHeader carries the id correlating a client request with the server
// log entries it produced.
const TraceIDHeader = "X-Trace-ID"

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time ordered v7 UUID, or a random one if the clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
