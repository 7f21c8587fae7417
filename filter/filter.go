// Package filter compiles boolean expressions into predicates over fetched
// content entries, so CLI callers can narrow collections client-side after
// the upstream query parameters have done their part.
package filter

import (
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/wpbridge/wpbridge/wordpress"
)

// PostFilter is a compiled predicate over post projections.
type PostFilter struct {
	expression string
	program    *vm.Program
}

// Compiler compiles and caches filter expressions.
type Compiler struct {
	mu    sync.Mutex
	cache map[string]*PostFilter
}

// NewCompiler creates a filter compiler with expression caching.
func NewCompiler() *Compiler {
	return &Compiler{
		cache: make(map[string]*PostFilter),
	}
}

// Compile turns an expression into an executable filter. Compiled programs
// are cached by expression text.
func (c *Compiler) Compile(expression string) (*PostFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	c.mu.Lock()
	cached, ok := c.cache[expression]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(createHelperFunctions()),
		expr.AllowUndefinedVariables(), // Allow entry properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &PostFilter{
		expression: expression,
		program:    program,
	}

	c.mu.Lock()
	c.cache[expression] = f
	c.mu.Unlock()

	return f, nil
}

// Compile compiles a single expression without a shared cache.
func Compile(expression string) (*PostFilter, error) {
	return NewCompiler().Compile(expression)
}

// Expression returns the original expression
func (f *PostFilter) Expression() string {
	return f.expression
}

// Evaluate evaluates the filter against a post projection.
func (f *PostFilter) Evaluate(info wordpress.PostInfo) bool {
	env := createRuntimeEnvironment(info)

	result, err := expr.Run(f.program, env)
	if err != nil {
		// Entries the expression cannot evaluate against are skipped rather
		// than failing the whole listing.
		return false
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool)
}

// Apply returns the posts the filter accepts, preserving order.
func (f *PostFilter) Apply(infos []wordpress.PostInfo) []wordpress.PostInfo {
	matched := make([]wordpress.PostInfo, 0, len(infos))
	for _, info := range infos {
		if f.Evaluate(info) {
			matched = append(matched, info)
		}
	}
	return matched
}
