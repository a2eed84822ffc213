package treesitter

import (
	"fmt"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/logging"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/model"
)

// Registry is the Grammar Registry (§4.1): it maps a Language to a
// reusable, thread-safe parser handle, pooled per language so concurrent
// extraction calls never share a single *tree_sitter.Parser (grammar
// parsers are not reentrant).
type Registry struct {
	mu        sync.RWMutex
	grammars  map[model.Language]*tree_sitter.Language
	pools     map[model.Language]chan *tree_sitter.Parser
	poolSize  int
	logger    interface {
		Debug(msg string, args ...interface{})
	}
}

// NewRegistry constructs a Registry with a parser-handle pool of poolSize
// per language (sized to the Directory Driver's worker count; a poolSize of
// 1 is valid and gives fully serialized parsing). Handles are created
// lazily on the first acquire call for a given language, per §3's lifecycle
// rule ("created lazily on first use, reused for the process lifetime").
func NewRegistry(poolSize int) *Registry {
	if poolSize < 1 {
		poolSize = 1
	}
	return &Registry{
		grammars: builtinGrammars(),
		pools:    make(map[model.Language]chan *tree_sitter.Parser),
		poolSize: poolSize,
		logger:   logging.New("treesitter.registry"),
	}
}

// SupportsLanguage reports whether the registry has a compiled-in grammar
// for lang.
func (r *Registry) SupportsLanguage(lang model.Language) bool {
	_, ok := r.grammars[lang]
	return ok
}

// acquire returns a parser handle for lang, initializing the language's pool
// on first use. Blocks if every pooled handle is currently checked out.
// Callers must call release when done.
func (r *Registry) acquire(lang model.Language) (*tree_sitter.Parser, error) {
	grammar, ok := r.grammars[lang]
	if !ok {
		return nil, fmt.Errorf("treesitter: %w", &model.ParseError{
			Kind: model.ErrLanguageUnavailable,
			Path: string(lang),
		})
	}

	r.mu.RLock()
	pool, ok := r.pools[lang]
	r.mu.RUnlock()

	if !ok {
		r.mu.Lock()
		// Re-check under write lock: another goroutine may have created it
		// between the RUnlock above and this Lock (serialized creation, §4.1).
		pool, ok = r.pools[lang]
		if !ok {
			pool = make(chan *tree_sitter.Parser, r.poolSize)
			for i := 0; i < r.poolSize; i++ {
				p := tree_sitter.NewParser()
				_ = p.SetLanguage(grammar)
				pool <- p
			}
			r.pools[lang] = pool
			r.logger.Debug("initialized parser pool", "language", string(lang), "size", r.poolSize)
		}
		r.mu.Unlock()
	}

	return <-pool, nil
}

func (r *Registry) release(lang model.Language, p *tree_sitter.Parser) {
	r.mu.RLock()
	pool := r.pools[lang]
	r.mu.RUnlock()
	if pool != nil {
		pool <- p
	}
}

// Close releases every pooled parser. After Close, the registry must not be
// used again — this is the registry's teardown per §5 ("The registry's
// teardown releases all grammar resources").
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for lang, pool := range r.pools {
		close(pool)
		for p := range pool {
			p.Close()
		}
		delete(r.pools, lang)
	}
}
