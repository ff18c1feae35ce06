package schemavalidation

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"inputtap/internal/config"
	"inputtap/internal/store"
	"inputtap/pkg/input"
)

func TestRecordingFixtureMatchesSchema(t *testing.T) {
	root := repoRoot(t)
	validateInstance(t,
		filepath.Join(root, "docs", "schema", "recording-v1.schema.json"),
		filepath.Join(root, "docs", "spec", "fixtures", "recording-v1.json"),
	)
}

func TestDefaultConfigMatchesSchema(t *testing.T) {
	root := repoRoot(t)
	schemaPath := filepath.Join(root, "docs", "schema", "config-v2.schema.json")

	data, err := json.Marshal(config.DefaultConfig())
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		t.Fatalf("unmarshal config: %v", err)
	}

	schema := compileSchema(t, schemaPath)
	if err := schema.Validate(instance); err != nil {
		t.Fatalf("default config does not match schema: %v", err)
	}
}

func TestJournalExportMatchesSchema(t *testing.T) {
	root := repoRoot(t)
	schemaPath := filepath.Join(root, "docs", "schema", "recording-v1.schema.json")

	j, err := store.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	defer j.Close()

	id, err := j.BeginRecording("schema check")
	if err != nil {
		t.Fatalf("begin recording: %v", err)
	}

	when := time.Unix(0, 1700000000000000000)
	events := []input.Event{
		{Kind: input.HookEnabled, When: when},
		{
			Kind: input.KeyPressed,
			When: when.Add(time.Millisecond),
			Mask: input.MaskShiftL,
			Key:  input.Key{Code: input.VcA, Raw: 30, Char: input.CharUndefined},
		},
		{
			Kind:  input.MouseWheel,
			When:  when.Add(2 * time.Millisecond),
			Wheel: input.Wheel{Clicks: 1, X: 10, Y: 20, Type: input.UnitScroll, Amount: 3, Rotation: 1, Direction: input.VerticalDirection},
		},
		{Kind: input.HookDisabled, When: when.Add(3 * time.Millisecond)},
	}
	if err := j.AppendBatch(id, 0, events); err != nil {
		t.Fatalf("append batch: %v", err)
	}
	if err := j.EndRecording(id); err != nil {
		t.Fatalf("end recording: %v", err)
	}

	var buf bytes.Buffer
	if err := j.Export(id, &buf); err != nil {
		t.Fatalf("export recording: %v", err)
	}

	var instance any
	if err := json.Unmarshal(buf.Bytes(), &instance); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}

	schema := compileSchema(t, schemaPath)
	if err := schema.Validate(instance); err != nil {
		t.Fatalf("export does not match schema: %v", err)
	}
}

func validateInstance(t *testing.T, schemaPath, instancePath string) {
	t.Helper()

	instanceData, err := os.ReadFile(instancePath)
	if err != nil {
		t.Fatalf("read instance: %v", err)
	}

	var instance any
	if err := json.Unmarshal(instanceData, &instance); err != nil {
		t.Fatalf("unmarshal instance: %v", err)
	}

	schema := compileSchema(t, schemaPath)
	if err := schema.Validate(instance); err != nil {
		t.Fatalf("schema validation failed for %s: %v", filepath.Base(instancePath), err)
	}
}

func compileSchema(t *testing.T, schemaPath string) *jsonschema.Schema {
	t.Helper()

	schemaData, err := os.ReadFile(schemaPath)
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaPath, bytes.NewReader(schemaData)); err != nil {
		t.Fatalf("add schema resource: %v", err)
	}
	schema, err := compiler.Compile(schemaPath)
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	return schema
}

func repoRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to resolve caller path")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
