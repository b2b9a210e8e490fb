package foxl

import "testing"

func parseProgram(t *testing.T, src string) []Stmt {
	t.Helper()
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	stmts, err := NewParser(toks).ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return stmts
}

func TestParseVarDecl(t *testing.T) {
	stmts := parseProgram(t, "let x = 5; const y = 10;")
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(stmts))
	}
	v, ok := stmts[0].(*VarDeclStmt)
	if !ok || v.Kind != VarMutable || v.Name != "x" {
		t.Errorf("stmt 0 = %+v", stmts[0])
	}
	c, ok := stmts[1].(*VarDeclStmt)
	if !ok || c.Kind != VarConst || c.Name != "y" {
		t.Errorf("stmt 1 = %+v", stmts[1])
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	stmts := parseProgram(t, "let x = 1 + 2 * 3;")
	decl := stmts[0].(*VarDeclStmt)
	bin, ok := decl.Init.(*BinaryExpr)
	if !ok || bin.Op != "+" {
		t.Fatalf("expected top-level '+', got %+v", decl.Init)
	}
	rightMul, ok := bin.Right.(*BinaryExpr)
	if !ok || rightMul.Op != "*" {
		t.Fatalf("expected '*' nested on the right, got %+v", bin.Right)
	}
}

func TestParseTernary(t *testing.T) {
	stmts := parseProgram(t, "let x = a ? 1 : 2;")
	decl := stmts[0].(*VarDeclStmt)
	bin, ok := decl.Init.(*BinaryExpr)
	if !ok || bin.Op != "?:" || bin.Else == nil {
		t.Fatalf("expected ternary, got %+v", decl.Init)
	}
}

func TestParseIfElse(t *testing.T) {
	stmts := parseProgram(t, "if (x < 1) { write(1); } else { write(2); }")
	ifs, ok := stmts[0].(*IfStmt)
	if !ok {
		t.Fatalf("expected IfStmt, got %T", stmts[0])
	}
	if ifs.Else == nil || len(ifs.Then.Stmts) != 1 || len(ifs.Else.Stmts) != 1 {
		t.Errorf("if/else not parsed correctly: %+v", ifs)
	}
}

func TestParseSingleStatementBlockWrapping(t *testing.T) {
	stmts := parseProgram(t, "if (x) write(1);")
	ifs := stmts[0].(*IfStmt)
	if len(ifs.Then.Stmts) != 1 {
		t.Fatalf("expected single statement wrapped as block, got %d stmts", len(ifs.Then.Stmts))
	}
}

func TestParseFunctionDecl(t *testing.T) {
	stmts := parseProgram(t, "function add(a, b) { return a + b; }")
	fn, ok := stmts[0].(*FuncDeclStmt)
	if !ok || fn.Name != "add" || len(fn.Params) != 2 {
		t.Fatalf("got %+v", stmts[0])
	}
}

func TestParseCallAndIndex(t *testing.T) {
	stmts := parseProgram(t, "write(f(1, 2)[0]);")
	ws := stmts[0].(*WriteStmt)
	idx, ok := ws.Expr.(*IndexExpr)
	if !ok {
		t.Fatalf("expected IndexExpr, got %T", ws.Expr)
	}
	call, ok := idx.Array.(*CallExpr)
	if !ok || call.Name != "f" || len(call.Args) != 2 {
		t.Fatalf("expected call f(1,2), got %+v", idx.Array)
	}
}

func TestParseIndexAssign(t *testing.T) {
	stmts := parseProgram(t, "a[1] = 20;")
	assign, ok := stmts[0].(*IndexAssignStmt)
	if !ok || assign.Name != "a" || assign.Op != "=" {
		t.Fatalf("got %+v", stmts[0])
	}
}

func TestParseForClassic(t *testing.T) {
	stmts := parseProgram(t, "for (let i = 0; i < 3; i = i + 1) { write(i); }")
	f, ok := stmts[0].(*ForStmt)
	if !ok {
		t.Fatalf("expected ForStmt, got %T", stmts[0])
	}
	if f.Init == nil || f.Cond == nil || f.Step == nil {
		t.Errorf("for header not fully parsed: %+v", f)
	}
}

func TestParseForEach(t *testing.T) {
	stmts := parseProgram(t, "for (x in [1, 2, 3]) { write(x); }")
	fe, ok := stmts[0].(*ForEachStmt)
	if !ok || fe.Name != "x" {
		t.Fatalf("expected ForEachStmt, got %+v", stmts[0])
	}
}

func TestParseInclude(t *testing.T) {
	stmts := parseProgram(t, `include util from "util.foxl";`)
	inc, ok := stmts[0].(*IncludeStmt)
	if !ok || inc.Target != "util" || inc.Path != "util.foxl" {
		t.Fatalf("got %+v", stmts[0])
	}
}

func TestParseIncludeWithoutTarget(t *testing.T) {
	stmts := parseProgram(t, `include "util.foxl";`)
	inc, ok := stmts[0].(*IncludeStmt)
	if !ok || inc.Target != "" || inc.Path != "util.foxl" {
		t.Fatalf("got %+v", stmts[0])
	}
}

func TestParseMissingSemicolonIsError(t *testing.T) {
	toks, err := Tokenize("let x = 5")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	_, err = NewParser(toks).ParseProgram()
	if err == nil {
		t.Fatal("expected a parse error for missing ';'")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func TestParseCompoundAssignOperators(t *testing.T) {
	stmts := parseProgram(t, "x += 1; y ??= 2; z &&= true;")
	for i, op := range []string{"+=", "??=", "&&="} {
		r, ok := stmts[i].(*ReassignStmt)
		if !ok || r.Op != op {
			t.Errorf("stmt %d: got %+v, want op %q", i, stmts[i], op)
		}
	}
}

func TestParsePostfixIncrement(t *testing.T) {
	stmts := parseProgram(t, "i++;")
	es, ok := stmts[0].(*ExpressionStmt)
	if !ok {
		t.Fatalf("expected ExpressionStmt, got %T", stmts[0])
	}
	u, ok := es.Expr.(*UnaryExpr)
	if !ok || u.Op != "++" || !u.Postfix {
		t.Fatalf("expected postfix ++, got %+v", es.Expr)
	}
}

func TestParseReadStatementAndExpression(t *testing.T) {
	stmts := parseProgram(t, `read(x, "name: "); let y = read("age: ");`)
	rs, ok := stmts[0].(*ReadStmt)
	if !ok || rs.Target != "x" || rs.Prompt == nil {
		t.Fatalf("got %+v", stmts[0])
	}
	v := stmts[1].(*VarDeclStmt)
	re, ok := v.Init.(*ReadExpr)
	if !ok || re.Prompt == nil {
		t.Fatalf("got %+v", v.Init)
	}
}

func TestParseNullishCoalescing(t *testing.T) {
	stmts := parseProgram(t, "let x = a ?? b;")
	decl := stmts[0].(*VarDeclStmt)
	bin, ok := decl.Init.(*BinaryExpr)
	if !ok || bin.Op != "??" {
		t.Fatalf("expected '??' binary expression, got %+v", decl.Init)
	}
}

func TestParseClassDecl(t *testing.T) {
	stmts := parseProgram(t, `class Point { public: x; y; function sum() { return x + y; } }`)
	c, ok := stmts[0].(*ClassDeclStmt)
	if !ok || c.Name != "Point" || len(c.Members) != 3 {
		t.Fatalf("got %+v", stmts[0])
	}
}
