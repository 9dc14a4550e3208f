package filter

import (
	"fmt"
	"maps"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultCacheSize is the number of compiled programs kept by the default compiler.
const DefaultCacheSize = 64

// Filter is a compiled boolean expression evaluated against response records.
type Filter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
	envPool    *sync.Pool
}

// Option configures a Compiler
type Option func(*Compiler)

// WithCache sets the size of the compiled program cache. Zero disables it.
func WithCache(size int) Option {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		} else {
			c.cache = nil
		}
	}
}

// WithCustomFunctions adds helper functions callable from expressions.
func WithCustomFunctions(funcs map[string]any) Option {
	return func(c *Compiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// Compiler compiles and caches filter expressions.
type Compiler struct {
	helperFuncs map[string]any
	cache       *lruCache
	envPool     *sync.Pool
}

// NewCompiler creates a Compiler with the standard helper functions.
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		helperFuncs: helperFunctions(),
		cache:       newLRUCache(DefaultCacheSize),
		envPool:     &sync.Pool{},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.envPool.New = func() any {
		return make(map[string]any, 32)
	}
	return c
}

var defaultCompiler = NewCompiler()

// Compile compiles expression with the default compiler.
func Compile(expression string) (*Filter, error) {
	return defaultCompiler.Compile(expression)
}

// Compile compiles expression, reusing a cached program when possible.
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached.(*Filter), nil
		}
	}

	env := make(map[string]any, len(c.helperFuncs))
	maps.Copy(env, c.helperFuncs)

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: "failed to compile filter expression", Err: err}
	}

	f := &Filter{expression: expression, program: program, helpers: c.helperFuncs, envPool: c.envPool}
	if c.cache != nil {
		c.cache.Put(expression, f)
	}
	return f, nil
}

// Match evaluates the filter against one record. Map records expose their
// fields as variables; any other value is exposed as "value".
func (f *Filter) Match(record any) (bool, error) {
	env := f.envPool.Get().(map[string]any)
	defer func() {
		clear(env)
		f.envPool.Put(env)
	}()

	maps.Copy(env, f.helpers)
	if fields, ok := record.(map[string]any); ok {
		maps.Copy(env, fields)
		env["record"] = fields
	} else {
		env["value"] = record
	}

	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Reason: "evaluation failed", Err: err}
	}
	matched, ok := out.(bool)
	if !ok {
		return false, &EvaluationError{Expression: f.expression, Reason: fmt.Sprintf("result is %T, not bool", out)}
	}
	return matched, nil
}

// Apply returns the records that match, in their original order.
func (f *Filter) Apply(records []any) ([]any, error) {
	matched := make([]any, 0, len(records))
	for _, record := range records {
		ok, err := f.Match(record)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// String returns the original expression
func (f *Filter) String() string {
	return f.expression
}
