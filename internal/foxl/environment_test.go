package foxl

import "testing"

func TestEnvironmentDeclareAndGet(t *testing.T) {
	env := NewEnvironment()
	if err := env.Declare(1, "x", IntVal(5), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := env.Get(1, "x")
	if err != nil || v.Int != 5 {
		t.Fatalf("got %+v, %v", v, err)
	}
}

func TestEnvironmentRedeclareIsError(t *testing.T) {
	env := NewEnvironment()
	_ = env.Declare(1, "x", IntVal(1), false)
	err := env.Declare(2, "x", IntVal(2), false)
	if err == nil {
		t.Fatal("expected a RedeclareError")
	}
	ee, ok := err.(*EvalError)
	if !ok || ee.Kind != RedeclareError {
		t.Fatalf("got %v", err)
	}
}

func TestEnvironmentSetConstIsError(t *testing.T) {
	env := NewEnvironment()
	_ = env.Declare(1, "c", IntVal(7), true)
	err := env.Set(2, "c", IntVal(8))
	if err == nil {
		t.Fatal("expected a ConstError")
	}
	ee, ok := err.(*EvalError)
	if !ok || ee.Kind != ConstError {
		t.Fatalf("got %v", err)
	}
}

func TestEnvironmentSnapshotIsIndependentOfCaller(t *testing.T) {
	env := NewEnvironment()
	_ = env.Declare(1, "x", IntVal(1), false)
	snap := env.Snapshot()
	if err := snap.Set(1, "x", IntVal(99)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := env.Get(1, "x")
	if v.Int != 1 {
		t.Errorf("expected the caller's binding untouched, got %+v", v)
	}
}

func TestEnvironmentSnapshotSharesFunctionRegistry(t *testing.T) {
	env := NewEnvironment()
	snap := env.Snapshot()
	snap.DeclareFunction(&Function{Name: "f", Params: nil, Body: &BlockStmt{}})
	if _, ok := env.LookupFunction("f"); !ok {
		t.Error("expected a function declared via a snapshot to be visible on the original environment")
	}
}

func TestEnvironmentBindParamOverwritesCopiedBinding(t *testing.T) {
	env := NewEnvironment()
	_ = env.Declare(1, "n", IntVal(10), false)
	call := env.Snapshot()
	call.BindParam("n", IntVal(1))
	v, err := call.Get(1, "n")
	if err != nil || v.Int != 1 {
		t.Fatalf("expected parameter binding to overwrite the snapshot copy, got %+v, %v", v, err)
	}
}

func TestEnvironmentGetUndefinedIsNameError(t *testing.T) {
	env := NewEnvironment()
	_, err := env.Get(1, "missing")
	if err == nil {
		t.Fatal("expected a NameError")
	}
	ee, ok := err.(*EvalError)
	if !ok || ee.Kind != NameError {
		t.Fatalf("got %v", err)
	}
}

func TestEnvironmentExportMutableVarsExcludesConst(t *testing.T) {
	env := NewEnvironment()
	_ = env.Declare(1, "x", IntVal(1), false)
	_ = env.Declare(1, "c", IntVal(2), true)
	exported := env.ExportMutableVars()
	if _, ok := exported["c"]; ok {
		t.Error("expected const binding excluded from exported vars")
	}
	if v, ok := exported["x"]; !ok || v.Int != 1 {
		t.Error("expected mutable binding included in exported vars")
	}
}
