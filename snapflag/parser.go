package snapflag

import (
	"strings"

	"github.com/dzonerzy/go-snapflag/internal/fuzzy"
	"github.com/dzonerzy/go-snapflag/internal/pool"
)

// FlagMarker is the prefix that identifies a flag-name token
const FlagMarker = '-'

// ParseState represents the current state of the parser state machine
type ParseState int

const (
	StateExpectFlagName ParseState = iota
	StateExpectFlagValue
	StateDone
	StateFailed
)

func (s ParseState) String() string {
	switch s {
	case StateExpectFlagName:
		return "expect-flag-name"
	case StateExpectFlagValue:
		return "expect-flag-value"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// terminal reports whether the machine stops in s
func (s ParseState) terminal() bool {
	return s == StateDone || s == StateFailed
}

// Transition describes one step of the state machine, as seen by a trace hook.
// Token is empty when the step hit the end of input.
type Transition struct {
	From  ParseState
	To    ParseState
	Token string
	Flag  string
}

// Option configures a Parser
type Option func(*Parser)

// maxSuggestions bounds ParseError.Suggestions
const maxSuggestions = 3

// WithSuggestions attaches the declared flag names within maxDistance edits
// to unknown-flag errors, closest first.
func WithSuggestions(maxDistance int) Option {
	return func(p *Parser) {
		p.suggest = true
		p.maxDistance = maxDistance
	}
}

// WithTrace registers fn to observe every state transition
func WithTrace(fn func(Transition)) Option {
	return func(p *Parser) {
		p.trace = fn
	}
}

// Parser parses argument text against a fixed Schema.
// A Parser holds no per-call state and is safe for concurrent use.
type Parser struct {
	schema      *Schema
	suggest     bool
	maxDistance int
	trace       func(Transition)
}

// NewParser creates a parser bound to schema
func NewParser(schema *Schema, opts ...Option) *Parser {
	p := &Parser{schema: schema, maxDistance: 2}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Schema returns the schema the parser validates against
func (p *Parser) Schema() *Schema {
	return p.schema
}

// pendingFlag is the schema-validated flag awaiting its value token.
// Only meaningful while the machine is in StateExpectFlagValue.
type pendingFlag struct {
	name string
	typ  FlagType
}

// machine is the per-call scratch state of one Parse
type machine struct {
	tokens  Tokenizer
	state   ParseState
	pending pendingFlag
	values  *FlagValues
	err     *ParseError
}

var machines = pool.NewWithReset(
	func() *machine { return &machine{} },
	func(m *machine) { *m = machine{} },
)

// Parse parses text against schema with default options
func Parse(schema *Schema, text string) (*FlagValues, error) {
	return NewParser(schema).Parse(text)
}

// ParseArgs joins an argv-style slice with single spaces and parses the
// result. Arguments that contain whitespace are split like any other text.
func ParseArgs(schema *Schema, args []string) (*FlagValues, error) {
	return NewParser(schema).ParseArgs(args)
}

// ParseArgs is the method form of the package-level ParseArgs
func (p *Parser) ParseArgs(args []string) (*FlagValues, error) {
	return p.Parse(strings.Join(args, " "))
}

// Parse runs the state machine over text. On success every declared flag has
// an entry; on failure the returned error is a *ParseError and no values are
// returned.
func (p *Parser) Parse(text string) (*FlagValues, error) {
	m := machines.Get()
	defer machines.Put(m)

	m.tokens.reset(text)
	m.values = p.schema.defaults()
	m.state = StateExpectFlagName

	for !m.state.terminal() {
		from := m.state
		var token, flag string
		switch m.state {
		case StateExpectFlagName:
			token, flag = p.readFlagName(m)
		case StateExpectFlagValue:
			token, flag = p.readFlagValue(m)
		case StateDone, StateFailed:
		}
		if p.trace != nil {
			p.trace(Transition{From: from, To: m.state, Token: token, Flag: flag})
		}
	}

	if m.state == StateFailed {
		err := m.err
		if p.suggest && err.Type == ErrorTypeUnknownFlag {
			err.Suggestions = fuzzy.FindSuggestions(err.Flag, p.schema.Names(), p.maxDistance, maxSuggestions)
			if len(err.Suggestions) > 0 {
				err.Suggestion = err.Suggestions[0]
			}
		}
		return nil, err
	}

	values := m.values
	m.values = nil
	return values, nil
}

// readFlagName handles StateExpectFlagName. It returns the consumed token and
// the flag name it carried, if any.
func (p *Parser) readFlagName(m *machine) (string, string) {
	token, ok := m.tokens.Next()
	if !ok {
		m.state = StateDone
		return "", ""
	}
	pos := m.tokens.Index()

	// A lone marker or a token without one can never name a flag
	if len(token) <= 1 || token[0] != FlagMarker {
		m.fail(malformedFlagError(token, pos))
		return token, ""
	}

	name := token[1:]
	typ, found := p.schema.Lookup(name)
	if !found {
		m.fail(unknownFlagError(name, token, pos))
		return token, name
	}

	if !typ.RequiresValue() {
		m.values.set(name, BoolValue(true))
		return token, name
	}

	m.pending = pendingFlag{name: name, typ: typ}
	m.state = StateExpectFlagValue
	return token, name
}

// readFlagValue handles StateExpectFlagValue. The next token is the value
// unconditionally, even when it starts with the flag marker.
func (p *Parser) readFlagValue(m *machine) (string, string) {
	flag := m.pending
	token, ok := m.tokens.Next()
	if !ok {
		m.fail(missingValueError(flag.name, flag.typ))
		return "", flag.name
	}

	coerce := coercers[flag.typ]
	v, err := coerce(token)
	if err != nil {
		m.fail(invalidValueError(flag.name, flag.typ, token, m.tokens.Index(), err))
		return token, flag.name
	}

	m.values.set(flag.name, v)
	m.pending = pendingFlag{}
	m.state = StateExpectFlagName
	return token, flag.name
}

// fail moves the machine to StateFailed and drops everything parsed so far
func (m *machine) fail(err *ParseError) {
	m.err = err
	m.values = nil
	m.pending = pendingFlag{}
	m.state = StateFailed
}
