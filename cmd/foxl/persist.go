// persist.go implements the opt-in side-file variable persistence spec §9
// flags as an unreliable experiment in the original and recommends making
// opt-in behind a CLI flag: a flat `name=value` snapshot of the top-level
// environment's mutable bindings, written after a run and re-loaded before
// the next one when --persist is given. Only scalar values round-trip;
// arrays are skipped, since the original's persistence never handled
// nested structures either.
package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/FoxH2010/FoxL/internal/foxl"
)

func savePersisted(env *foxl.Environment, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for name, v := range env.ExportMutableVars() {
		if v.Kind == foxl.KindArray {
			continue
		}
		if _, err := w.WriteString(name + "=" + foxl.Stringify(v, true) + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

func loadPersisted(env *foxl.Environment, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, raw, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		env.ImportVar(name, parsePersistedValue(raw))
	}
	return nil
}

func parsePersistedValue(raw string) foxl.Value {
	switch {
	case raw == "null":
		return foxl.Null
	case raw == "true":
		return foxl.BoolVal(true)
	case raw == "false":
		return foxl.BoolVal(false)
	case strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) && len(raw) >= 2:
		return foxl.StrVal(raw[1 : len(raw)-1])
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return foxl.IntVal(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return foxl.FloatVal(f)
	}
	return foxl.StrVal(raw)
}
