// builtins.go registers call-syntax builtins. Per spec §1's non-goals
// ("standard library beyond built-in read/write"), FoxL has none today:
// `read` is lexed as a keyword (see token.go) and has its own AST nodes
// (ReadExpr/ReadStmt) rather than going through CallExpr, and `write` is
// a statement form, not a call. This registry exists so a future builtin
// — exposed as an ordinary call `name(args...)` — has a single place to
// land without touching evalCall.
package foxl

type builtinFunc func(ip *Interpreter, line int, args []Value) (Value, error)

var builtins = map[string]builtinFunc{}
