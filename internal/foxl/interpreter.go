// interpreter.go is the tree-walking evaluator: it turns an Expr into a
// Value and a Stmt into a side effect plus an optional control signal. A
// `return` does not propagate as a Go error — it is carried explicitly as
// a control value, matching spec §9's instruction to replace the source's
// "throw the return value as an exception" trick with an explicit
// three-way result.
package foxl

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// SourceLoader is the host-provided contract for `include`: given a path
// string, return the source text or an error if it cannot be found.
type SourceLoader interface {
	Load(path string) (string, error)
}

// Interpreter walks an AST against a top-level Environment, printing to
// Out and reading lines from In.
type Interpreter struct {
	Env    *Environment
	Out    io.Writer
	In     *lineReader
	Loader SourceLoader

	includeStack map[string]bool
}

// NewInterpreter builds an Interpreter with a fresh top-level environment.
func NewInterpreter(out io.Writer, in io.Reader, loader SourceLoader) *Interpreter {
	return &Interpreter{
		Env:          NewEnvironment(),
		Out:          out,
		In:           newLineReader(in),
		Loader:       loader,
		includeStack: make(map[string]bool),
	}
}

// controlKind distinguishes the two non-error outcomes of statement
// execution; the third outcome, an error, travels as the separate error
// result.
type controlKind int

const (
	controlNone controlKind = iota
	controlReturn
)

// control carries a non-error outcome out of statement execution: either
// nothing unusual, or an in-flight `return`.
type control struct {
	Kind  controlKind
	Value Value
}

var noControl = control{Kind: controlNone}

// Run lexes, parses and evaluates src against the interpreter's top-level
// environment. A lex or parse error stops the run before any statement
// executes and is returned alone. Otherwise the top-level statements run in
// order: with strict false (tolerant mode) a failing statement's error is
// collected and Run continues with the next statement; with strict true Run
// stops at the first error. The returned slice holds every error, in order.
func (ip *Interpreter) Run(src string, strict bool) []error {
	toks, err := Tokenize(src)
	if err != nil {
		return []error{err}
	}
	parser := NewParser(toks)
	stmts, err := parser.ParseProgram()
	if err != nil {
		return []error{err}
	}

	var errs []error
	for _, s := range stmts {
		if _, err := ip.execStmt(s); err != nil {
			errs = append(errs, err)
			if strict {
				return errs
			}
		}
	}
	return errs
}

// execBlock runs a block's statements in order within env, returning
// either a controlReturn to unwind to the caller, or an error.
func (ip *Interpreter) execBlock(block *BlockStmt, env *Environment) (control, error) {
	for _, s := range block.Stmts {
		c, err := ip.execStmtIn(s, env)
		if err != nil {
			return noControl, err
		}
		if c.Kind == controlReturn {
			return c, nil
		}
	}
	return noControl, nil
}

// execStmt runs s against the interpreter's top-level environment.
func (ip *Interpreter) execStmt(s Stmt) (control, error) {
	return ip.execStmtIn(s, ip.Env)
}

func (ip *Interpreter) execStmtIn(s Stmt, env *Environment) (control, error) {
	switch n := s.(type) {
	case *VarDeclStmt:
		return noControl, ip.execVarDecl(n, env)
	case *ReassignStmt:
		return noControl, ip.execReassign(n, env)
	case *IndexAssignStmt:
		return noControl, ip.execIndexAssign(n, env)
	case *IfStmt:
		return ip.execIf(n, env)
	case *WhileStmt:
		return ip.execWhile(n, env)
	case *ForStmt:
		return ip.execFor(n, env)
	case *ForEachStmt:
		return ip.execForEach(n, env)
	case *BlockStmt:
		return ip.execBlock(n, env)
	case *WriteStmt:
		return noControl, ip.execWrite(n, env)
	case *ReadStmt:
		return noControl, ip.execReadStmt(n, env)
	case *FuncDeclStmt:
		env.DeclareFunction(&Function{Name: n.Name, Params: n.Params, Body: n.Body, Line: n.Line})
		return noControl, nil
	case *ClassDeclStmt:
		return noControl, newEvalError(NotImplemented, StmtLine(n), "class %q is parsed but not executable", n.Name)
	case *ReturnStmt:
		return ip.execReturn(n, env)
	case *IncludeStmt:
		return noControl, ip.execInclude(n, env)
	case *ExpressionStmt:
		_, err := ip.eval(n.Expr, env)
		return noControl, err
	default:
		return noControl, fmt.Errorf("unhandled statement node %T", n)
	}
}

func (ip *Interpreter) execVarDecl(n *VarDeclStmt, env *Environment) error {
	var value Value = Null
	if n.Init != nil {
		v, err := ip.eval(n.Init, env)
		if err != nil {
			return err
		}
		value = v.CloneArrayElements()
	}
	return env.Declare(StmtLine(n), n.Name, value, n.Kind == VarConst)
}

func (ip *Interpreter) execReassign(n *ReassignStmt, env *Environment) error {
	line := StmtLine(n)
	rhs, err := ip.eval(n.Value, env)
	if err != nil {
		return err
	}
	if n.Op == "=" {
		return env.Set(line, n.Name, rhs.CloneArrayElements())
	}

	current, err := env.Get(line, n.Name)
	if err != nil {
		return err
	}
	// env.Get does not distinguish const from mutable; Set below rejects a
	// const target before committing any new value.
	newValue, err := applyCompoundOp(line, n.Op, current, rhs)
	if err != nil {
		return err
	}
	return env.Set(line, n.Name, newValue)
}

func applyCompoundOp(line int, op string, current, rhs Value) (Value, error) {
	switch op {
	case "??=":
		if current.Kind == KindNull {
			return rhs, nil
		}
		return current, nil
	case "&&=":
		return BoolVal(current.Truthy() && rhs.Truthy()), nil
	case "||=":
		return BoolVal(current.Truthy() || rhs.Truthy()), nil
	case "~=":
		i, ok := asInt(current)
		if !ok {
			return Value{}, newEvalError(TypeError, line, "'~=' requires an integer")
		}
		return IntVal(^i), nil
	}
	baseOp, ok := strings.CutSuffix(op, "=")
	if !ok {
		return Value{}, newEvalError(TypeError, line, "unsupported assignment operator %q", op)
	}
	return evalBinaryOp(line, baseOp, current, rhs)
}

// execIndexAssign implements `name[index] op value;`. The bounds-checked
// write lands directly in the binding's own backing slice — since every
// binding owns a private copy of its array (see CloneArrayElements, used
// on VarDecl, call parameters, for-each loop variables, Snapshot and plain
// assignment), this cannot alias a
// different variable's array, satisfying spec §3's copy-on-write rule.
func (ip *Interpreter) execIndexAssign(n *IndexAssignStmt, env *Environment) error {
	line := StmtLine(n)
	current, err := env.Get(line, n.Name)
	if err != nil {
		return err
	}
	if current.Kind != KindArray {
		return newEvalError(TypeError, line, "cannot index-assign into a non-array value")
	}
	idxVal, err := ip.eval(n.Index, env)
	if err != nil {
		return err
	}
	idx, ok := asInt(idxVal)
	if !ok {
		return newEvalError(TypeError, line, "array index must be an integer")
	}
	if idx < 0 || idx >= int64(len(current.Array)) {
		return newEvalError(BoundsError, line, "index %d out of range for array of length %d", idx, len(current.Array))
	}

	rhs, err := ip.eval(n.Value, env)
	if err != nil {
		return err
	}
	newElem := rhs
	if n.Op != "=" {
		newElem, err = applyCompoundOp(line, n.Op, current.Array[idx], rhs)
		if err != nil {
			return err
		}
	}
	current.Array[idx] = newElem
	return env.Set(line, n.Name, current)
}

func (ip *Interpreter) execIf(n *IfStmt, env *Environment) (control, error) {
	cond, err := ip.eval(n.Cond, env)
	if err != nil {
		return noControl, err
	}
	if cond.Kind != KindBool {
		return noControl, newEvalError(TypeError, StmtLine(n), "if condition must be a boolean")
	}
	if cond.Bool {
		return ip.execBlock(n.Then, env)
	}
	if n.Else != nil {
		return ip.execBlock(n.Else, env)
	}
	return noControl, nil
}

func (ip *Interpreter) execWhile(n *WhileStmt, env *Environment) (control, error) {
	for {
		cond, err := ip.eval(n.Cond, env)
		if err != nil {
			return noControl, err
		}
		if cond.Kind != KindBool {
			return noControl, newEvalError(TypeError, StmtLine(n), "while condition must be a boolean")
		}
		if !cond.Bool {
			return noControl, nil
		}
		c, err := ip.execBlock(n.Body, env)
		if err != nil {
			return noControl, err
		}
		if c.Kind == controlReturn {
			return c, nil
		}
	}
}

func (ip *Interpreter) execFor(n *ForStmt, env *Environment) (control, error) {
	if n.Init != nil {
		if _, err := ip.execStmtIn(n.Init, env); err != nil {
			return noControl, err
		}
	}
	for {
		if n.Cond != nil {
			cond, err := ip.eval(n.Cond, env)
			if err != nil {
				return noControl, err
			}
			if cond.Kind != KindBool {
				return noControl, newEvalError(TypeError, StmtLine(n), "for condition must be a boolean")
			}
			if !cond.Bool {
				return noControl, nil
			}
		}
		c, err := ip.execBlock(n.Body, env)
		if err != nil {
			return noControl, err
		}
		if c.Kind == controlReturn {
			return c, nil
		}
		if n.Step != nil {
			if _, err := ip.execStmtIn(n.Step, env); err != nil {
				return noControl, err
			}
		}
	}
}

func (ip *Interpreter) execForEach(n *ForEachStmt, env *Environment) (control, error) {
	iterable, err := ip.eval(n.Iterable, env)
	if err != nil {
		return noControl, err
	}
	if iterable.Kind != KindArray {
		return noControl, newEvalError(TypeError, StmtLine(n), "for-each iterable must be an array")
	}
	for _, elem := range iterable.Array {
		env.BindParam(n.Name, elem.CloneArrayElements())
		c, err := ip.execBlock(n.Body, env)
		if err != nil {
			return noControl, err
		}
		if c.Kind == controlReturn {
			return c, nil
		}
	}
	return noControl, nil
}

func (ip *Interpreter) execWrite(n *WriteStmt, env *Environment) error {
	v, err := ip.eval(n.Expr, env)
	if err != nil {
		return err
	}
	fmt.Fprintln(ip.Out, Stringify(v, false))
	return nil
}

func (ip *Interpreter) execReadStmt(n *ReadStmt, env *Environment) error {
	v, err := ip.readLine(n.Prompt, env)
	if err != nil {
		return err
	}
	line := StmtLine(n)
	if env.Exists(n.Target) {
		return env.Set(line, n.Target, v)
	}
	// First use of the target in a read statement declares it.
	return env.Declare(line, n.Target, v, false)
}

func (ip *Interpreter) execReturn(n *ReturnStmt, env *Environment) (control, error) {
	value := Null
	if n.Value != nil {
		v, err := ip.eval(n.Value, env)
		if err != nil {
			return noControl, err
		}
		value = v
	}
	return control{Kind: controlReturn, Value: value}, nil
}

func (ip *Interpreter) execInclude(n *IncludeStmt, env *Environment) error {
	line := StmtLine(n)
	if ip.Loader == nil {
		return newEvalError(IncludeError, line, "no source loader configured")
	}
	if ip.includeStack[n.Path] {
		return newEvalError(IncludeError, line, "include cycle detected at %q", n.Path)
	}
	src, err := ip.Loader.Load(n.Path)
	if err != nil {
		return newEvalError(IncludeError, line, "could not load %q: %v", n.Path, err)
	}

	ip.includeStack[n.Path] = true
	defer delete(ip.includeStack, n.Path)

	toks, err := Tokenize(src)
	if err != nil {
		return newEvalError(IncludeError, line, "error in included file: %v", err)
	}
	stmts, err := NewParser(toks).ParseProgram()
	if err != nil {
		return newEvalError(IncludeError, line, "error in included file: %v", err)
	}
	for _, s := range stmts {
		if _, err := ip.execStmtIn(s, env); err != nil {
			return newEvalError(IncludeError, line, "error in included file: %v", err)
		}
	}
	return nil
}

// --- expressions ---

func (ip *Interpreter) eval(e Expr, env *Environment) (Value, error) {
	switch n := e.(type) {
	case *NumberExpr:
		return numberExprValue(n.Value), nil
	case *StringExpr:
		return StrVal(n.Value), nil
	case *BoolExpr:
		return BoolVal(n.Value), nil
	case *ArrayExpr:
		elems := make([]Value, len(n.Elements))
		for i, el := range n.Elements {
			v, err := ip.eval(el, env)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return ArrayVal(elems), nil
	case *VariableExpr:
		return env.Get(ExprLine(n), n.Name)
	case *IndexExpr:
		return ip.evalIndex(n, env)
	case *UnaryExpr:
		return ip.evalUnary(n, env)
	case *BinaryExpr:
		return ip.evalBinary(n, env)
	case *CallExpr:
		return ip.evalCall(n, env)
	case *ReadExpr:
		return ip.readLine(n.Prompt, env)
	default:
		return Value{}, fmt.Errorf("unhandled expression node %T", n)
	}
}

// numberExprValue narrows a parsed literal to Int when it has no
// fractional part, matching the data model's "numeric values carry their
// integer-vs-float kind" rule for literals.
func numberExprValue(f float64) Value {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return IntVal(int64(f))
	}
	return FloatVal(f)
}

func (ip *Interpreter) evalIndex(n *IndexExpr, env *Environment) (Value, error) {
	arr, err := ip.eval(n.Array, env)
	if err != nil {
		return Value{}, err
	}
	if arr.Kind != KindArray {
		return Value{}, newEvalError(TypeError, ExprLine(n), "cannot index a non-array value")
	}
	idxVal, err := ip.eval(n.Index, env)
	if err != nil {
		return Value{}, err
	}
	idx, ok := asInt(idxVal)
	if !ok {
		return Value{}, newEvalError(TypeError, ExprLine(n), "array index must be an integer")
	}
	if idx < 0 || idx >= int64(len(arr.Array)) {
		return Value{}, newEvalError(BoundsError, ExprLine(n), "index %d out of range for array of length %d", idx, len(arr.Array))
	}
	return arr.Array[idx], nil
}

func asInt(v Value) (int64, bool) {
	switch v.Kind {
	case KindInt:
		return v.Int, true
	case KindFloat:
		if v.Float == math.Trunc(v.Float) {
			return int64(v.Float), true
		}
	}
	return 0, false
}

func (ip *Interpreter) evalUnary(n *UnaryExpr, env *Environment) (Value, error) {
	line := ExprLine(n)
	if n.Op == "++" || n.Op == "--" {
		target, ok := n.Operand.(*VariableExpr)
		if !ok {
			return Value{}, newEvalError(TypeError, line, "%s requires a variable operand", n.Op)
		}
		current, err := env.Get(line, target.Name)
		if err != nil {
			return Value{}, err
		}
		delta := int64(1)
		if n.Op == "--" {
			delta = -1
		}
		updated, err := addInt(line, current, delta)
		if err != nil {
			return Value{}, err
		}
		if err := env.Set(line, target.Name, updated); err != nil {
			return Value{}, err
		}
		if n.Postfix {
			return current, nil
		}
		return updated, nil
	}

	operand, err := ip.eval(n.Operand, env)
	if err != nil {
		return Value{}, err
	}
	switch n.Op {
	case "-":
		if !operand.IsNumeric() {
			return Value{}, newEvalError(TypeError, line, "unary '-' requires a number")
		}
		if operand.Kind == KindInt {
			return IntVal(-operand.Int), nil
		}
		return FloatVal(-operand.Float), nil
	case "!":
		if operand.Kind != KindBool {
			return Value{}, newEvalError(TypeError, line, "unary '!' requires a boolean")
		}
		return BoolVal(!operand.Bool), nil
	case "~":
		i, ok := asInt(operand)
		if !ok {
			return Value{}, newEvalError(TypeError, line, "unary '~' requires an integer")
		}
		return IntVal(^i), nil
	default:
		return Value{}, newEvalError(TypeError, line, "unsupported unary operator %q", n.Op)
	}
}

func addInt(line int, v Value, delta int64) (Value, error) {
	switch v.Kind {
	case KindInt:
		return IntVal(v.Int + delta), nil
	case KindFloat:
		return FloatVal(v.Float + float64(delta)), nil
	default:
		return Value{}, newEvalError(TypeError, line, "++/-- requires a number")
	}
}

func (ip *Interpreter) evalBinary(n *BinaryExpr, env *Environment) (Value, error) {
	line := ExprLine(n)
	switch n.Op {
	case "&&":
		left, err := ip.eval(n.Left, env)
		if err != nil {
			return Value{}, err
		}
		if !left.Truthy() {
			return BoolVal(false), nil
		}
		right, err := ip.eval(n.Right, env)
		if err != nil {
			return Value{}, err
		}
		return BoolVal(right.Truthy()), nil
	case "||":
		left, err := ip.eval(n.Left, env)
		if err != nil {
			return Value{}, err
		}
		if left.Truthy() {
			return BoolVal(true), nil
		}
		right, err := ip.eval(n.Right, env)
		if err != nil {
			return Value{}, err
		}
		return BoolVal(right.Truthy()), nil
	case "??":
		left, err := ip.eval(n.Left, env)
		if err != nil {
			return Value{}, err
		}
		if left.Kind != KindNull {
			return left, nil
		}
		return ip.eval(n.Right, env)
	case "?:":
		cond, err := ip.eval(n.Left, env)
		if err != nil {
			return Value{}, err
		}
		if cond.Kind != KindBool {
			return Value{}, newEvalError(TypeError, line, "ternary condition must be a boolean")
		}
		if cond.Bool {
			return ip.eval(n.Right, env)
		}
		return ip.eval(n.Else, env)
	case "in":
		left, err := ip.eval(n.Left, env)
		if err != nil {
			return Value{}, err
		}
		right, err := ip.eval(n.Right, env)
		if err != nil {
			return Value{}, err
		}
		if right.Kind != KindArray {
			return Value{}, newEvalError(TypeError, line, "right side of 'in' must be an array")
		}
		for _, elem := range right.Array {
			if Equal(left, elem) {
				return BoolVal(true), nil
			}
		}
		return BoolVal(false), nil
	}

	left, err := ip.eval(n.Left, env)
	if err != nil {
		return Value{}, err
	}
	right, err := ip.eval(n.Right, env)
	if err != nil {
		return Value{}, err
	}
	return evalBinaryOp(line, n.Op, left, right)
}

// evalBinaryOp implements the non-short-circuit binary operators; it is
// shared between BinaryExpr evaluation and compound-assignment reassigns.
func evalBinaryOp(line int, op string, left, right Value) (Value, error) {
	switch op {
	case "==":
		return BoolVal(Equal(left, right)), nil
	case "!=":
		return BoolVal(!Equal(left, right)), nil
	case "<", "<=", ">", ">=":
		return evalComparison(line, op, left, right)
	case "+":
		return evalAdd(line, left, right)
	case "-", "*", "/", "%", "^", "^/":
		return evalArith(line, op, left, right)
	case "^^", "&", "|", "<<", ">>", "<<<", ">>>":
		return evalBitwise(line, op, left, right)
	default:
		return Value{}, newEvalError(TypeError, line, "unsupported binary operator %q", op)
	}
}

func evalComparison(line int, op string, left, right Value) (Value, error) {
	if !left.IsNumeric() || !right.IsNumeric() {
		return Value{}, newEvalError(TypeError, line, "comparison operator %q requires two numbers", op)
	}
	a, b := left.AsFloat(), right.AsFloat()
	switch op {
	case "<":
		return BoolVal(a < b), nil
	case "<=":
		return BoolVal(a <= b), nil
	case ">":
		return BoolVal(a > b), nil
	default:
		return BoolVal(a >= b), nil
	}
}

func evalAdd(line int, left, right Value) (Value, error) {
	if left.Kind == KindStr || right.Kind == KindStr {
		return StrVal(Stringify(left, false) + Stringify(right, false)), nil
	}
	return evalArith(line, "+", left, right)
}

func evalArith(line int, op string, left, right Value) (Value, error) {
	if !left.IsNumeric() || !right.IsNumeric() {
		return Value{}, newEvalError(TypeError, line, "arithmetic operator %q requires two numbers", op)
	}
	bothInt := left.Kind == KindInt && right.Kind == KindInt

	switch op {
	case "+":
		if bothInt {
			return IntVal(left.Int + right.Int), nil
		}
		return FloatVal(left.AsFloat() + right.AsFloat()), nil
	case "-":
		if bothInt {
			return IntVal(left.Int - right.Int), nil
		}
		return FloatVal(left.AsFloat() - right.AsFloat()), nil
	case "*":
		if bothInt {
			return IntVal(left.Int * right.Int), nil
		}
		return FloatVal(left.AsFloat() * right.AsFloat()), nil
	case "/":
		if right.AsFloat() == 0 {
			return Value{}, newEvalError(ArithError, line, "division by zero")
		}
		if bothInt && right.Int != 0 && left.Int%right.Int == 0 {
			return IntVal(left.Int / right.Int), nil
		}
		return FloatVal(left.AsFloat() / right.AsFloat()), nil
	case "%":
		if right.AsFloat() == 0 {
			return Value{}, newEvalError(ArithError, line, "modulo by zero")
		}
		if bothInt {
			return IntVal(left.Int % right.Int), nil
		}
		return FloatVal(math.Mod(left.AsFloat(), right.AsFloat())), nil
	case "^":
		result := math.Pow(left.AsFloat(), right.AsFloat())
		if bothInt && result == math.Trunc(result) && !math.IsInf(result, 0) {
			return IntVal(int64(result)), nil
		}
		return FloatVal(result), nil
	case "^/":
		if right.AsFloat() == 0 {
			return Value{}, newEvalError(ArithError, line, "root by zero")
		}
		result := math.Pow(left.AsFloat(), 1/right.AsFloat())
		return FloatVal(result), nil
	default:
		return Value{}, newEvalError(TypeError, line, "unsupported arithmetic operator %q", op)
	}
}

func evalBitwise(line int, op string, left, right Value) (Value, error) {
	a, ok1 := asInt(left)
	b, ok2 := asInt(right)
	if !ok1 || !ok2 {
		return Value{}, newEvalError(TypeError, line, "bitwise operator %q requires two integers", op)
	}
	switch op {
	case "^^":
		return IntVal(a ^ b), nil
	case "&":
		return IntVal(a & b), nil
	case "|":
		return IntVal(a | b), nil
	case "<<":
		return IntVal(a << uint(b)), nil
	case ">>":
		return IntVal(a >> uint(b)), nil
	case "<<<":
		return IntVal(int64(uint64(a) << uint(b))), nil
	case ">>>":
		return IntVal(int64(uint64(a) >> uint(b))), nil
	default:
		return Value{}, newEvalError(TypeError, line, "unsupported bitwise operator %q", op)
	}
}

func (ip *Interpreter) evalCall(n *CallExpr, env *Environment) (Value, error) {
	line := ExprLine(n)

	if builtin, ok := builtins[n.Name]; ok {
		args := make([]Value, len(n.Args))
		for i, a := range n.Args {
			v, err := ip.eval(a, env)
			if err != nil {
				return Value{}, err
			}
			args[i] = v
		}
		return builtin(ip, line, args)
	}

	fn, ok := env.LookupFunction(n.Name)
	if !ok {
		return Value{}, newEvalError(NameError, line, "undefined function %q", n.Name)
	}
	if len(n.Args) != len(fn.Params) {
		return Value{}, newEvalError(ArityError, line, "function %q expects %d argument(s), got %d", n.Name, len(fn.Params), len(n.Args))
	}

	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, err := ip.eval(a, env)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}

	call := env.Snapshot()
	for i, p := range fn.Params {
		call.BindParam(p, args[i].CloneArrayElements())
	}

	c, err := ip.execBlock(fn.Body, call)
	if err != nil {
		return Value{}, err
	}
	if c.Kind == controlReturn {
		return c.Value, nil
	}
	return Null, nil
}

// readLine evaluates an optional prompt, prints it without a trailing
// newline, reads one line from the configured input, and returns it
// parsed as an integer when possible, otherwise as a string.
func (ip *Interpreter) readLine(promptExpr Expr, env *Environment) (Value, error) {
	if promptExpr != nil {
		prompt, err := ip.eval(promptExpr, env)
		if err != nil {
			return Value{}, err
		}
		fmt.Fprint(ip.Out, Stringify(prompt, false))
	}
	line, err := ip.In.ReadLine()
	if err != nil {
		return Value{}, fmt.Errorf("read: %w", err)
	}
	if i, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64); err == nil {
		return IntVal(i), nil
	}
	return StrVal(line), nil
}
