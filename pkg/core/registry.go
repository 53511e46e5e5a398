package core

import (
	"fmt"
	"sort"
	"sync"

	"github.com/nodewee/bizcard/pkg/constants"
	"github.com/nodewee/bizcard/pkg/interfaces"
	"github.com/nodewee/bizcard/pkg/logger"
	"github.com/nodewee/bizcard/pkg/nlp"
	"github.com/nodewee/bizcard/pkg/parser"
	"github.com/nodewee/bizcard/pkg/phone"
	"github.com/nodewee/bizcard/pkg/utils"
)

// ParserConstructor builds a parser bundle
type ParserConstructor func(log *logger.Logger) (interfaces.BusinessCardParser, error)

// ParserFactory maps parser identifiers to constructors. Each parser is
// built once and shared; unknown identifiers fall back to the default.
type ParserFactory struct {
	mu           sync.Mutex
	constructors map[string]ParserConstructor
	instances    map[string]interfaces.BusinessCardParser
	logger       *logger.Logger
}

// NewParserFactory creates a registry holding the built-in parsers
func NewParserFactory(log *logger.Logger) *ParserFactory {
	f := &ParserFactory{
		constructors: make(map[string]ParserConstructor),
		instances:    make(map[string]interfaces.BusinessCardParser),
		logger:       log,
	}

	f.Register(constants.DefaultParserName, func(log *logger.Logger) (interfaces.BusinessCardParser, error) {
		tagger, err := nlp.NewProseTagger()
		if err != nil {
			return nil, err
		}
		return parser.New(constants.DefaultParserName, tagger, phone.NewMatcher(), log), nil
	})
	f.Register(constants.RulesParserName, func(log *logger.Logger) (interfaces.BusinessCardParser, error) {
		return parser.New(constants.RulesParserName, nlp.NewRuleTagger(), phone.NewMatcher(), log), nil
	})

	return f
}

// Register adds or replaces a parser constructor
func (f *ParserFactory) Register(name string, constructor ParserConstructor) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.constructors[name] = constructor
	delete(f.instances, name)
}

// List returns the registered parser identifiers, sorted
func (f *ParserFactory) List() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.namesLocked()
}

// Create returns the parser registered under name. An empty name selects the
// default. When name is unknown or its constructor fails, the error is
// logged and the default parser is returned instead. An error is returned
// only if the default parser cannot be built either.
func (f *ParserFactory) Create(name string) (interfaces.BusinessCardParser, error) {
	if name == "" {
		name = constants.DefaultParserName
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	p, err := f.build(name)
	if err == nil {
		return p, nil
	}
	if name == constants.DefaultParserName {
		return nil, err
	}

	f.logger.Error("%v; falling back to %q parser", err, constants.DefaultParserName)
	return f.build(constants.DefaultParserName)
}

// build returns the memoised instance for name. f.mu must be held.
func (f *ParserFactory) build(name string) (interfaces.BusinessCardParser, error) {
	if p, ok := f.instances[name]; ok {
		return p, nil
	}

	constructor, ok := f.constructors[name]
	if !ok {
		return nil, utils.NewConfigurationError(fmt.Sprintf("unknown parser type %q", name), nil).
			WithContext("registered", f.namesLocked())
	}

	p, err := constructor(f.logger)
	if err != nil {
		return nil, utils.NewConfigurationError(fmt.Sprintf("cannot create parser %q", name), err)
	}

	f.instances[name] = p
	return p, nil
}

func (f *ParserFactory) namesLocked() []string {
	names := make([]string, 0, len(f.constructors))
	for name := range f.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
