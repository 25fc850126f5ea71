package query

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultCacheSize is the number of compiled expressions a Compiler keeps.
const DefaultCacheSize = 100

// Query is a compiled expression ready to run against response documents.
// It is safe for concurrent use.
type Query struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCache sets the size of the compiled-expression cache. Zero disables it.
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newProgramCache(size)
		} else {
			c.cache = nil
		}
	}
}

// WithFunctions adds helper functions available to every expression
func WithFunctions(funcs map[string]any) CompilerOption {
	return func(c *Compiler) {
		maps.Copy(c.helpers, funcs)
	}
}

// Compiler turns expressions into Queries.
type Compiler struct {
	helpers map[string]any
	cache   *programCache
}

// NewCompiler creates a Compiler with the built-in helpers and a cache of
// DefaultCacheSize entries.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		helpers: helperFunctions(),
		cache:   newProgramCache(DefaultCacheSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles expression. Top-level document keys are variables, and
// the whole document is available as doc.
func (c *Compiler) Compile(expression string) (*Query, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if q, ok := c.cache.get(expression); ok {
			return q, nil
		}
	}

	env := make(map[string]any, len(c.helpers)+1)
	maps.Copy(env, c.helpers)
	env["doc"] = map[string]any{}

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	q := &Query{
		expression: expression,
		program:    program,
		helpers:    c.helpers,
	}
	if c.cache != nil {
		c.cache.put(expression, q)
	}
	return q, nil
}

// Clear removes all cached queries
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache.clear()
	}
}

// Size returns the number of cached queries
func (c *Compiler) Size() int {
	if c.cache != nil {
		return c.cache.len()
	}
	return 0
}

// Expression returns the source expression
func (q *Query) Expression() string {
	return q.expression
}

// Run evaluates the query against doc and returns its result.
func (q *Query) Run(doc map[string]any) (any, error) {
	out, err := expr.Run(q.program, q.environment(doc))
	if err != nil {
		return nil, &EvaluationError{
			Expression: q.expression,
			Reason:     "failed to run expression",
			Err:        err,
		}
	}
	return out, nil
}

// Match evaluates the query as a predicate. A non-boolean result is an error.
func (q *Query) Match(doc map[string]any) (bool, error) {
	out, err := q.Run(doc)
	if err != nil {
		return false, err
	}
	matched, ok := out.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: q.expression,
			Reason:     "result is not a boolean",
			Err:        fmt.Errorf("got %T", out),
		}
	}
	return matched, nil
}

func (q *Query) environment(doc map[string]any) map[string]any {
	env := make(map[string]any, len(doc)+len(q.helpers)+1)
	maps.Copy(env, doc)
	maps.Copy(env, q.helpers)
	env["doc"] = doc
	return env
}

// helperFunctions returns the functions every expression can call. Names
// avoid the expr builtins.
func helperFunctions() map[string]any {
	return map[string]any{
		"field":        field,
		"parseTime":    parseTime,
		"daysSince":    daysSince,
		"containsFold": containsFold,
	}
}

// field walks a dotted path through nested maps and lists, e.g.
// field(doc, "sport_event.competitors.0.name"). Missing keys yield nil.
func field(v any, path string) any {
	for _, key := range strings.Split(path, ".") {
		switch node := v.(type) {
		case map[string]any:
			v = node[key]
		case []any:
			i, err := strconv.Atoi(key)
			if err != nil || i < 0 || i >= len(node) {
				return nil
			}
			v = node[i]
		default:
			return nil
		}
	}
	return v
}

// parseTime parses the RFC 3339 timestamps the API returns. Invalid input
// yields the zero time.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, _ = time.Parse(time.DateOnly, s)
	}
	return t
}

func daysSince(t time.Time) int {
	return int(time.Since(t).Hours() / 24)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
