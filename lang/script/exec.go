package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dolthub/swiss"
	"github.com/jhamby/sharray/lang/array"
	"github.com/jhamby/sharray/lang/token"
	"github.com/jhamby/sharray/lang/words"
)

// Env is the execution environment of scripts. It holds the named arrays
// and the writers where results are printed.
type Env struct {
	// Stdout receives the output of the commands.
	Stdout io.Writer
	// Trace, if non-nil, receives each statement before it is executed.
	Trace io.Writer

	newArray func() *array.Array
	vars     *swiss.Map[string, *array.Array]
}

// NewEnv returns an empty environment that prints to stdout. Arrays are
// created on first use by calling newArray, or as linked arrays if newArray
// is nil.
func NewEnv(newArray func() *array.Array, stdout io.Writer) *Env {
	if newArray == nil {
		newArray = func() *array.Array { return array.New(array.Linked) }
	}
	return &Env{
		Stdout:   stdout,
		newArray: newArray,
		vars:     swiss.NewMap[string, *array.Array](8),
	}
}

// Lookup returns the array with the specified name, if it exists.
func (e *Env) Lookup(name string) (*array.Array, bool) {
	return e.vars.Get(name)
}

// Len returns the number of arrays defined in e.
func (e *Env) Len() int {
	return e.vars.Count()
}

func (e *Env) array(name string) *array.Array {
	a, ok := e.vars.Get(name)
	if !ok {
		a = e.newArray()
		e.vars.Put(name, a)
	}
	return a
}

// Exec executes the statements in order. A failing statement does not stop
// the execution, all errors are returned joined, each prefixed with the
// position of its statement. The error, if non-nil, is guaranteed to
// implement Unwrap() []error.
func (e *Env) Exec(ctx context.Context, stmts []*Stmt) error {
	var errs []error
	for _, stmt := range stmts {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if e.Trace != nil {
			fmt.Fprintf(e.Trace, "+ %s\n", stmt)
		}
		if err := e.exec(stmt); err != nil {
			errs = append(errs, fmt.Errorf("%s: %s: %w", stmt.Pos, stmt.Cmd, err))
		}
	}
	return errors.Join(errs...)
}

func (e *Env) exec(stmt *Stmt) error {
	cmd, ok := commands[stmt.Cmd]
	if !ok {
		return errors.New("unknown command")
	}
	if n := len(stmt.Args); n < cmd.minArgs || (cmd.maxArgs >= 0 && n > cmd.maxArgs) {
		return fmt.Errorf("wrong number of arguments, usage: %s %s", stmt.Cmd, cmd.usage)
	}
	if cmd.minArgs > 0 && strings.HasPrefix(cmd.usage, "NAME") {
		if _, err := nameArg(stmt.Args[0]); err != nil {
			return err
		}
	}
	return cmd.run(e, stmt.Args)
}

type command struct {
	minArgs int
	maxArgs int // < 0 if variadic
	usage   string
	run     func(*Env, []Arg) error
}

var commands = map[string]command{
	"insert":    {3, 3, "NAME INDEX VALUE", (*Env).insert},
	"get":       {2, 2, "NAME INDEX", (*Env).get},
	"remove":    {2, 2, "NAME INDEX", (*Env).remove},
	"flush":     {1, 1, "NAME", (*Env).flush},
	"unset":     {1, 1, "NAME", (*Env).unset},
	"copy":      {2, 2, "NAME SOURCE", (*Env).copy},
	"slice":     {4, 4, "NAME SOURCE START END", (*Env).slice},
	"shift":     {2, 2, "NAME COUNT", (*Env).shift},
	"shiftkeep": {2, 2, "NAME COUNT", (*Env).shiftKeep},
	"rshift":    {2, 3, "NAME COUNT [VALUE]", (*Env).rshift},
	"push":      {2, 2, "NAME VALUE", (*Env).push},
	"pop":       {1, 1, "NAME", (*Env).pop},
	"assign":    {1, -1, "NAME [VALUE...]", (*Env).assign},
	"split":     {3, 3, "NAME STRING SEPARATOR", (*Env).split},
	"declare":   {1, 1, "NAME", (*Env).declare},
	"kvpairs":   {1, 1, "NAME", (*Env).kvpairs},
	"values":    {1, 1, "NAME", (*Env).values},
	"keys":      {1, 1, "NAME", (*Env).keys},
	"kv":        {1, 1, "NAME", (*Env).kv},
	"size":      {1, 1, "NAME", (*Env).size},
	"max":       {1, 1, "NAME", (*Env).max},
	"min":       {1, 1, "NAME", (*Env).min},
	"kind":      {1, 1, "NAME", (*Env).kind},
	"sub":       {3, 3, "NAME START COUNT", (*Env).sub},
	"upper":     {1, 1, "NAME", (*Env).upper},
	"lower":     {1, 1, "NAME", (*Env).lower},
	"argv":      {1, 1, "NAME", (*Env).argv},
	"join":      {2, 2, "NAME SEPARATOR", (*Env).join},
	"echo":      {0, -1, "[VALUE...]", (*Env).echo},
}

func nameArg(arg Arg) (string, error) {
	if arg.Tok != token.WORD {
		return "", fmt.Errorf("invalid array name: %s", arg.Tok.Literal(arg.Val))
	}
	return arg.Val.Raw, nil
}

func intArg(arg Arg) (int64, error) {
	if arg.Tok != token.INT {
		return 0, fmt.Errorf("invalid integer: %s", arg.Tok.Literal(arg.Val))
	}
	return arg.Val.Int, nil
}

func intArgs(args ...Arg) ([]int64, error) {
	res := make([]int64, len(args))
	for i, arg := range args {
		n, err := intArg(arg)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}

func texts(args []Arg) words.List {
	l := make(words.List, len(args))
	for i, arg := range args {
		l[i] = arg.Text()
	}
	return l
}

func spaced(vals []string) string { return strings.Join(vals, " ") }

func (e *Env) println(s string) error {
	_, err := fmt.Fprintln(e.Stdout, s)
	return err
}

func (e *Env) insert(args []Arg) error {
	i, err := intArg(args[1])
	if err != nil {
		return err
	}
	return e.array(args[0].Val.Raw).Insert(i, args[2].Text())
}

func (e *Env) get(args []Arg) error {
	i, err := intArg(args[1])
	if err != nil {
		return err
	}
	v, _ := e.array(args[0].Val.Raw).Reference(i)
	return e.println(v)
}

func (e *Env) remove(args []Arg) error {
	i, err := intArg(args[1])
	if err != nil {
		return err
	}
	e.array(args[0].Val.Raw).Remove(i)
	return nil
}

func (e *Env) flush(args []Arg) error {
	e.array(args[0].Val.Raw).Flush()
	return nil
}

func (e *Env) unset(args []Arg) error {
	e.vars.Delete(args[0].Val.Raw)
	return nil
}

func (e *Env) copy(args []Arg) error {
	src, err := nameArg(args[1])
	if err != nil {
		return err
	}
	e.vars.Put(args[0].Val.Raw, e.array(src).Copy())
	return nil
}

func (e *Env) slice(args []Arg) error {
	src, err := nameArg(args[1])
	if err != nil {
		return err
	}
	bounds, err := intArgs(args[2:]...)
	if err != nil {
		return err
	}
	e.vars.Put(args[0].Val.Raw, e.array(src).Slice(bounds[0], bounds[1]))
	return nil
}

func (e *Env) shift(args []Arg) error {
	n, err := intArg(args[1])
	if err != nil {
		return err
	}
	_, err = e.array(args[0].Val.Raw).ShiftLeft(n, true)
	return err
}

func (e *Env) shiftKeep(args []Arg) error {
	n, err := intArg(args[1])
	if err != nil {
		return err
	}
	removed, err := e.array(args[0].Val.Raw).ShiftLeft(n, false)
	if err != nil {
		return err
	}
	vals := make([]string, len(removed))
	for i, el := range removed {
		vals[i] = el.String()
	}
	return e.println(spaced(vals))
}

func (e *Env) rshift(args []Arg) error {
	n, err := intArg(args[1])
	if err != nil {
		return err
	}
	a := e.array(args[0].Val.Raw)
	if len(args) == 3 {
		_, err = a.ShiftRightWith(n, args[2].Text())
	} else {
		_, err = a.ShiftRight(n)
	}
	return err
}

func (e *Env) push(args []Arg) error {
	return e.array(args[0].Val.Raw).Push(args[1].Text())
}

func (e *Env) pop(args []Arg) error {
	el, _ := e.array(args[0].Val.Raw).Pop()
	return e.println(el.Value)
}

func (e *Env) assign(args []Arg) error {
	return words.AssignList(e.array(args[0].Val.Raw), texts(args[1:]))
}

func (e *Env) split(args []Arg) error {
	return words.Split(e.array(args[0].Val.Raw), args[1].Text(), args[2].Text())
}

func (e *Env) declare(args []Arg) error {
	name := args[0].Val.Raw
	return e.println("declare -a " + name + "=" + words.Assignment(e.array(name), DoubleQuote, nil))
}

func (e *Env) kvpairs(args []Arg) error {
	return e.println(words.KeyValuePairs(e.array(args[0].Val.Raw), DoubleQuote, nil))
}

func (e *Env) values(args []Arg) error {
	return e.println(spaced(words.Values(e.array(args[0].Val.Raw))))
}

func (e *Env) keys(args []Arg) error {
	return e.println(spaced(words.Indices(e.array(args[0].Val.Raw))))
}

func (e *Env) kv(args []Arg) error {
	return e.println(spaced(words.KeyValues(e.array(args[0].Val.Raw))))
}

func (e *Env) size(args []Arg) error {
	return e.println(strconv.Itoa(e.array(args[0].Val.Raw).Len()))
}

func (e *Env) max(args []Arg) error {
	return e.println(strconv.FormatInt(e.array(args[0].Val.Raw).MaxIndex(), 10))
}

func (e *Env) min(args []Arg) error {
	return e.println(strconv.FormatInt(e.array(args[0].Val.Raw).MinIndex(), 10))
}

func (e *Env) kind(args []Arg) error {
	return e.println(e.array(args[0].Val.Raw).Kind().String())
}

func (e *Env) sub(args []Arg) error {
	rng, err := intArgs(args[1:]...)
	if err != nil {
		return err
	}
	return e.println(words.Subrange(e.array(args[0].Val.Raw), rng[0], rng[1], spaced))
}

func (e *Env) upper(args []Arg) error {
	return e.println(words.MapValues(e.array(args[0].Val.Raw), strings.ToUpper, spaced))
}

func (e *Env) lower(args []Arg) error {
	return e.println(words.MapValues(e.array(args[0].Val.Raw), strings.ToLower, spaced))
}

func (e *Env) argv(args []Arg) error {
	argv := words.Argv(e.array(args[0].Val.Raw))
	for i, arg := range argv {
		argv[i] = DoubleQuote(arg)
	}
	return e.println(spaced(argv))
}

func (e *Env) join(args []Arg) error {
	return e.println(words.Join(e.array(args[0].Val.Raw), args[1].Text()))
}

func (e *Env) echo(args []Arg) error {
	return e.println(spaced(texts(args)))
}
