package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultCursorConfig 测试默认配置的关键默认值
func TestDefaultCursorConfig(t *testing.T) {
	cfg := DefaultCursorConfig()

	if cfg.PaddingAttr != "padding" {
		t.Errorf("PaddingAttr = %q, want %q", cfg.PaddingAttr, "padding")
	}
	if cfg.PressScaleAttr != "press-scale" {
		t.Errorf("PressScaleAttr = %q, want %q", cfg.PressScaleAttr, "press-scale")
	}
	if cfg.ParallaxAttr != "parallax" {
		t.Errorf("ParallaxAttr = %q, want %q", cfg.ParallaxAttr, "parallax")
	}
	if cfg.DefaultSize <= 0 {
		t.Errorf("DefaultSize = %v, 应为正值", cfg.DefaultSize)
	}
	if cfg.FollowerRate <= 0 || cfg.TransitionRate <= 0 {
		t.Errorf("速率默认值应为正: follower=%v transition=%v", cfg.FollowerRate, cfg.TransitionRate)
	}
	if cfg.DefaultPressScale <= 0 || cfg.DefaultPressScale >= 1 {
		t.Errorf("DefaultPressScale = %v, 应在 (0, 1) 内", cfg.DefaultPressScale)
	}
}

// TestApplyOverrides 测试覆盖项叠加：只覆盖给出的字段
func TestApplyOverrides(t *testing.T) {
	size := 24.0
	rate := 9.0
	attr := "data-pad"

	cfg := DefaultCursorConfig().Apply(&CursorOverrides{
		DefaultSize:  &size,
		FollowerRate: &rate,
		PaddingAttr:  &attr,
	})

	if cfg.DefaultSize != 24 {
		t.Errorf("DefaultSize = %v, want 24", cfg.DefaultSize)
	}
	if cfg.FollowerRate != 9 {
		t.Errorf("FollowerRate = %v, want 9", cfg.FollowerRate)
	}
	if cfg.PaddingAttr != "data-pad" {
		t.Errorf("PaddingAttr = %q, want %q", cfg.PaddingAttr, "data-pad")
	}

	// 未覆盖的字段保持默认
	def := DefaultCursorConfig()
	if cfg.TransitionRate != def.TransitionRate {
		t.Errorf("TransitionRate 不应被修改: got %v", cfg.TransitionRate)
	}
	if cfg.HoverPressScale != def.HoverPressScale {
		t.Errorf("HoverPressScale 不应被修改: got %v", cfg.HoverPressScale)
	}
}

// TestApplyNil 测试 nil 覆盖项原样返回
func TestApplyNil(t *testing.T) {
	cfg := DefaultCursorConfig().Apply(nil)
	if cfg != DefaultCursorConfig() {
		t.Error("Apply(nil) 应返回未修改的配置")
	}
}

// TestApplyClampsRates 测试负速率被收紧为 0，保证插值系数落在 [0, 1]
func TestApplyClampsRates(t *testing.T) {
	bad := -5.0
	cfg := DefaultCursorConfig().Apply(&CursorOverrides{
		FollowerRate:   &bad,
		TransitionRate: &bad,
		LeaveThreshold: &bad,
	})

	if cfg.FollowerRate != 0 {
		t.Errorf("FollowerRate = %v, want 0", cfg.FollowerRate)
	}
	if cfg.TransitionRate != 0 {
		t.Errorf("TransitionRate = %v, want 0", cfg.TransitionRate)
	}
	if cfg.LeaveThreshold != 0 {
		t.Errorf("LeaveThreshold = %v, want 0", cfg.LeaveThreshold)
	}
}

// TestLoadCursorOverrides 测试从 YAML 文件加载覆盖项
func TestLoadCursorOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cursor.yaml")

	content := []byte("defaultSize: 32\nfollowerRate: 8.5\npaddingAttr: pad\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("写入测试文件失败: %v", err)
	}

	overrides, err := LoadCursorOverrides(path)
	if err != nil {
		t.Fatalf("LoadCursorOverrides() error: %v", err)
	}
	if overrides == nil {
		t.Fatal("LoadCursorOverrides() 返回 nil")
	}

	if overrides.DefaultSize == nil || *overrides.DefaultSize != 32 {
		t.Errorf("DefaultSize 覆盖项解析错误: %v", overrides.DefaultSize)
	}
	if overrides.FollowerRate == nil || *overrides.FollowerRate != 8.5 {
		t.Errorf("FollowerRate 覆盖项解析错误: %v", overrides.FollowerRate)
	}
	if overrides.PaddingAttr == nil || *overrides.PaddingAttr != "pad" {
		t.Errorf("PaddingAttr 覆盖项解析错误: %v", overrides.PaddingAttr)
	}
	// 未出现的键保持 nil
	if overrides.TransitionRate != nil {
		t.Errorf("TransitionRate 应为 nil: %v", *overrides.TransitionRate)
	}
}

// TestLoadCursorOverridesMissingFile 测试文件不存在时返回 (nil, nil)
func TestLoadCursorOverridesMissingFile(t *testing.T) {
	overrides, err := LoadCursorOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Errorf("文件不存在不应报错: %v", err)
	}
	if overrides != nil {
		t.Errorf("文件不存在应返回 nil 覆盖项: %v", overrides)
	}
}

// TestLoadCursorOverridesBadYAML 测试解析失败返回错误
func TestLoadCursorOverridesBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("defaultSize: [not a number"), 0o644); err != nil {
		t.Fatalf("写入测试文件失败: %v", err)
	}

	if _, err := LoadCursorOverrides(path); err == nil {
		t.Error("非法 YAML 应返回错误")
	}
}
