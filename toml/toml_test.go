package toml

import (
	"testing"
	"time"
)

// TestUnmarshal_MazebotConfig exercises the exact shape of
// platform.Config: scalar fields at the root plus two single-level
// [section] tables.
func TestUnmarshal_MazebotConfig(t *testing.T) {
	input := []byte(`
debug = true
log_dir = "/var/log/mazebot"

[maze]
rows = 8
cols = 6
seed = 42
braiding = 0.2

[link]
enabled = true
role = "client"
address = "127.0.0.1:9001"
connect_timeout = "5s"
`)

	type MazeConfig struct {
		Rows     int     `toml:"rows"`
		Cols     int     `toml:"cols"`
		Seed     int64   `toml:"seed"`
		Braiding float64 `toml:"braiding"`
	}
	type LinkConfig struct {
		Enabled        bool          `toml:"enabled"`
		Role           string        `toml:"role"`
		Address        string        `toml:"address"`
		ConnectTimeout time.Duration `toml:"connect_timeout"`
	}
	type Config struct {
		Debug  bool       `toml:"debug"`
		LogDir string     `toml:"log_dir"`
		Maze   MazeConfig `toml:"maze"`
		Link   LinkConfig `toml:"link"`
	}

	var cfg Config
	if err := Unmarshal(input, &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !cfg.Debug {
		t.Error("Debug should be true")
	}
	if cfg.LogDir != "/var/log/mazebot" {
		t.Errorf("LogDir mismatch: got %q", cfg.LogDir)
	}
	if cfg.Maze.Rows != 8 || cfg.Maze.Cols != 6 {
		t.Errorf("Maze size mismatch: %+v", cfg.Maze)
	}
	if cfg.Maze.Seed != 42 {
		t.Errorf("Maze.Seed mismatch: got %d", cfg.Maze.Seed)
	}
	if cfg.Maze.Braiding != 0.2 {
		t.Errorf("Maze.Braiding mismatch: got %f", cfg.Maze.Braiding)
	}
	if !cfg.Link.Enabled || cfg.Link.Role != "client" {
		t.Errorf("Link mismatch: %+v", cfg.Link)
	}
	if cfg.Link.ConnectTimeout != 5*time.Second {
		t.Errorf("ConnectTimeout mismatch: got %v", cfg.Link.ConnectTimeout)
	}
}

// TestDecode_DurationFromNanoseconds covers the bare-integer form of a
// time.Duration field, which platform.Config also accepts.
func TestDecode_DurationFromNanoseconds(t *testing.T) {
	data := map[string]any{"timeout": 2000000000}
	type T struct {
		Timeout time.Duration `toml:"timeout"`
	}
	var tgt T
	if err := Decode(data, &tgt); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if tgt.Timeout != 2*time.Second {
		t.Errorf("Timeout mismatch: got %v", tgt.Timeout)
	}
}

func TestDecode_DurationInvalidString(t *testing.T) {
	data := map[string]any{"timeout": "not-a-duration"}
	type T struct {
		Timeout time.Duration `toml:"timeout"`
	}
	var tgt T
	if err := Decode(data, &tgt); err == nil {
		t.Error("expected error decoding an invalid duration string")
	}
}

// TestDecode_RawPrimitives validates the reflection logic in decode.go
// for scalar type coercion (int -> int64, float64 -> float32, etc.)
func TestDecode_RawPrimitives(t *testing.T) {
	data := map[string]any{
		"int_val":   100,
		"float_val": 123.45,
		"bool_val":  true,
		"str_val":   "hello",
		"any_val":   "dynamic",
	}

	type Target struct {
		Int   int64   `toml:"int_val"`
		Float float32 `toml:"float_val"`
		Bool  bool    `toml:"bool_val"`
		Str   string  `toml:"str_val"`
		Any   any     `toml:"any_val"`
	}

	var tgt Target
	if err := Decode(data, &tgt); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if tgt.Int != 100 {
		t.Errorf("Int64 coercion failed: got %d", tgt.Int)
	}
	if tgt.Float < 123.44 || tgt.Float > 123.46 {
		t.Errorf("Float32 coercion failed: got %f", tgt.Float)
	}
	if !tgt.Bool {
		t.Error("Bool failed")
	}
	if tgt.Str != "hello" {
		t.Error("String failed")
	}
	if tgt.Any != "dynamic" {
		t.Error("Any interface assignment failed")
	}
}

// TestDecode_NestedStructs tests direct Decode usage without Parser,
// mirroring how Config.Maze/Config.Link nest one level deep.
func TestDecode_NestedStructs(t *testing.T) {
	data := map[string]any{
		"parent": map[string]any{
			"child": map[string]any{
				"val": 99,
			},
		},
	}

	type Child struct {
		Val int `toml:"val"`
	}
	type Parent struct {
		Child Child `toml:"child"`
	}
	type Top struct {
		Parent Parent `toml:"parent"`
	}

	var tgt Top
	if err := Decode(data, &tgt); err != nil {
		t.Fatalf("Decode nested failed: %v", err)
	}

	if tgt.Parent.Child.Val != 99 {
		t.Errorf("Nested decoding failed: got %d", tgt.Parent.Child.Val)
	}
}

// TestDecode_TargetValidation ensures non-pointer targets fail
func TestDecode_TargetValidation(t *testing.T) {
	var tgt struct{}
	if err := Decode(map[string]any{}, tgt); err == nil {
		t.Error("Expected error when passing non-pointer to Decode")
	}

	var ptr *struct{}
	if err := Decode(map[string]any{}, ptr); err == nil {
		t.Error("Expected error when passing nil pointer to Decode")
	}
}

func TestDecode_TypeMismatch(t *testing.T) {
	data := map[string]any{
		"val": "not a number",
	}
	type T struct {
		Val int `toml:"val"`
	}
	var tgt T
	if err := Decode(data, &tgt); err == nil {
		t.Error("Expected error decoding string to int")
	}
}
