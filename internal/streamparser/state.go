package streamparser

// parseState is the parser's lexical position. Method starts every fresh
// Parser; every other state is reached only by consuming bytes through Feed.
type parseState uint8

const (
	stateMethod parseState = iota
	stateURL
	stateProtocol
	stateProtocolEOL
	stateKeyStart
	stateKey
	stateValueStart
	stateValue
	stateValueEOL
	stateWrappedValueStart
	stateWrappedValue
	stateWrappedValueEOL
	stateFinalEOL
)
