// Package filter selects achievements with user-supplied boolean
// expressions, compiled with the expr language.
//
// An expression sees one achievement at a time: its definition fields
// (Name, Type, Flags, PointCap, ...), the account's progress on it
// (Current, Max, Done, Repeated) and a handful of helper functions.
//
// Examples:
//
//	Done == false && Max > 0
//	hasFlag("Daily") || contains(Name, "fractal")
//	percentDone() >= 50
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/tyriadev/tyria/gw2"
)

// Achievement is the evaluation subject: one achievement definition joined
// with the account's progress on it. Progress is zero-valued for
// achievements the account has never touched.
type Achievement struct {
	gw2.Achievement
	Progress gw2.AccountAchievement
}

// Filter is a compiled filter expression, safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCacheSize sets how many compiled expressions are kept
func WithCacheSize(size int) CompilerOption {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newProgramCache(size)
		}
	}
}

// Compiler compiles filter expressions, caching compiled programs.
type Compiler struct {
	cache *programCache
}

// NewCompiler creates a filter compiler with a default cache
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		cache: newProgramCache(32),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile parses and compiles a filter expression
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.get(expression); ok {
			return cached, nil
		}
	}

	// Compile against the helper environment; achievement fields are
	// resolved dynamically at evaluation time
	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &Filter{
		expression: expression,
		program:    program,
	}

	if c.cache != nil {
		c.cache.put(expression, f)
	}

	return f, nil
}

// CacheSize returns the number of cached filters
func (c *Compiler) CacheSize() int {
	if c.cache != nil {
		return c.cache.len()
	}
	return 0
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single achievement
func (f *Filter) Match(achievement Achievement) (bool, error) {
	env := runtimeEnvironment(achievement)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression:      f.expression,
			AchievementName: achievement.Name,
			Err:             err,
		}
	}

	// AsBool() during compilation guarantees the assertion
	return result.(bool), nil
}

// Apply returns the achievements matching the filter. The first evaluation
// failure aborts the pass; a filter that errors on one achievement will
// error on most of them.
func (f *Filter) Apply(achievements []Achievement) ([]Achievement, error) {
	var matched []Achievement
	for _, a := range achievements {
		ok, err := f.Match(a)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

// helperFunctions creates the static helper environment used during
// compilation
func helperFunctions() map[string]any {
	env := make(map[string]any, 8)
	addHelperFunctions(env)
	return env
}

func addHelperFunctions(env map[string]any) {
	// String helpers, all case-insensitive
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
}

// runtimeEnvironment builds the evaluation environment for one achievement
func runtimeEnvironment(achievement Achievement) map[string]any {
	env := make(map[string]any, 24)

	addHelperFunctions(env)

	// Definition fields
	env["ID"] = achievement.ID
	env["Name"] = achievement.Name
	env["Description"] = achievement.Description
	env["Requirement"] = achievement.Requirement
	env["Type"] = achievement.Type
	env["Flags"] = achievement.Flags
	env["Tiers"] = achievement.Tiers
	env["Rewards"] = achievement.Rewards
	env["PointCap"] = achievement.PointCap

	// Progress fields
	env["Current"] = achievement.Progress.Current
	env["Max"] = achievement.Progress.Max
	env["Done"] = achievement.Progress.Done
	env["Repeated"] = achievement.Progress.Repeated

	flags := achievement.Flags
	env["hasFlag"] = func(flag string) bool {
		for _, f := range flags {
			if strings.EqualFold(f, flag) {
				return true
			}
		}
		return false
	}

	progress := achievement.Progress
	env["percentDone"] = func() float64 {
		if progress.Done {
			return 100
		}
		// WvW achievements report max as -1
		if progress.Max <= 0 {
			return 0
		}
		return float64(progress.Current) / float64(progress.Max) * 100
	}

	return env
}
