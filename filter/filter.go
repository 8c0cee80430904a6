// Package filter provides client-side expression filtering of folder
// listing entries using the expr language. The Dropbox API has no
// server-side filter on list_folder, so callers that only want a subset of
// a listing compile an expression once and apply it to each page:
//
//	f, err := filter.Compile(`IsFile and Size > 1024*1024 and ext(Name) == ".mp4"`)
//	if err != nil {
//	    return err
//	}
//	page, _ := client.ListFolder(ctx, files.ListFolderArg{Path: "/videos"})
//	large := f.Apply(page.Entries)
package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/dropboxkit/files"
)

// Filter is a compiled, reusable entry predicate. Compiled filters are
// safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into a Filter. The expression must
// evaluate to a boolean.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompileError{Expression: expression, Reason: "empty expression"}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // entry fields are injected at run time
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompileError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Match evaluates the filter against one entry. Entries that cause an
// evaluation error are treated as non-matching.
func (f *Filter) Match(entry files.Metadata) bool {
	result, err := expr.Run(f.program, runtimeEnvironment(entry))
	if err != nil {
		return false
	}
	// Guaranteed bool by the AsBool compile option.
	return result.(bool)
}

// Apply returns the entries that match the filter, preserving order.
func (f *Filter) Apply(entries []files.Metadata) []files.Metadata {
	var matched []files.Metadata
	for _, entry := range entries {
		if f.Match(entry) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// Expression returns the original expression.
func (f *Filter) Expression() string {
	return f.expression
}

// helperFunctions is the static environment used for compile-time
// validation.
func helperFunctions() map[string]any {
	env := make(map[string]any, 16)
	addHelperFunctions(env)
	return env
}

func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	env["now"] = time.Now
	// String helpers
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
	env["ext"] = func(name string) string {
		if i := strings.LastIndex(name, "."); i >= 0 {
			return strings.ToLower(name[i:])
		}
		return ""
	}
}

// runtimeEnvironment exposes one entry's fields plus the helpers to the
// expression.
func runtimeEnvironment(entry files.Metadata) map[string]any {
	env := make(map[string]any, 32)
	addHelperFunctions(env)

	env["Tag"] = entry.Tag
	env["Name"] = entry.Name
	env["ID"] = entry.ID
	env["Path"] = entry.PathDisplay
	env["PathLower"] = entry.PathLower
	env["Size"] = int64(entry.Size)
	env["Rev"] = entry.Rev
	env["ContentHash"] = entry.ContentHash
	env["ClientModified"] = entry.ClientModified
	env["ServerModified"] = entry.ServerModified
	env["IsFile"] = entry.IsFile()
	env["IsFolder"] = entry.IsFolder()
	env["IsDeleted"] = entry.IsDeleted()

	return env
}
