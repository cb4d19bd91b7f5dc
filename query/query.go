// Package query evaluates expr-lang expressions against ir trees. The
// expression environment is the plain-Go projection of the document, plus a
// get(path) helper bound to the document root.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/pathstore/pathstore/codec"
	"github.com/pathstore/pathstore/debug"
	"github.com/pathstore/pathstore/ir"
	"github.com/pathstore/pathstore/store"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			path := params[0].(string)
			s, err := store.New(doc.Root())
			if err != nil {
				return nil, err
			}
			res, err := s.Get(path)
			if err != nil {
				return nil, err
			}
			if res == nil {
				return nil, nil
			}
			return codec.ToAny(res), nil
		},
			new(func(string) any)),
	}
}

// Eval evaluates src with doc's fields as the environment and returns the
// result as an ir tree.
func Eval(doc *ir.Node, src string) (*ir.Node, error) {
	out, err := evalAny(doc, src)
	if err != nil {
		return nil, err
	}
	return codec.FromAny(out)
}

// Filter returns the array elements of list for which src evaluates to a
// truthy value: true, non-zero numbers, non-empty strings and containers.
func Filter(list *ir.Node, src string) (*ir.Node, error) {
	if list.Type != ir.ArrayType {
		return nil, fmt.Errorf("filter applies to arrays, got %s", list.Type)
	}
	res := ir.Array()
	for _, elt := range list.Values {
		out, err := evalAny(elt, src)
		if err != nil {
			return nil, err
		}
		keep, err := codec.FromAny(out)
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", src, err)
		}
		if ir.Truth(keep) {
			res.SetIndex(len(res.Values), elt.Clone())
		}
	}
	return res, nil
}

func evalAny(doc *ir.Node, src string) (any, error) {
	env := map[string]any{}
	if doc.Type == ir.ObjectType {
		for k, v := range ir.ToMap(doc) {
			env[k] = codec.ToAny(v)
		}
	}
	if debug.Query() {
		debug.Logf("query %q on %q env %s\n", src, doc.KPath(), debug.JSON(env))
	}
	opts := append(exprOpts(doc), expr.Env(env), expr.AllowUndefinedVariables())
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("eval %q: %w", src, err)
	}
	return out, nil
}
