package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// 窗口逻辑尺寸
const (
	WindowWidth  = 800
	WindowHeight = 600
)

// CursorConfig 软光标配置
//
// 在构造时解析一次，之后不再修改。
// FollowerRate / TransitionRate 是每秒衰减速率，每帧的插值系数按
// lag = 1 - e^(-rate·dt) 换算（见 utils.DecayLag），与帧率无关。
// 移植旧的固定 lag 常量时按 lag@60fps ≈ 1 - e^(-rate/60) 折算。
type CursorConfig struct {
	// 目标元素上读取覆盖值的属性名
	PaddingAttr    string // 光标盒外扩边距覆盖
	PressScaleAttr string // 按压缩放覆盖
	ParallaxAttr   string // 视差强度覆盖

	// DefaultSize 空闲状态下光标盒的边长（像素），命中检测也以它为准
	DefaultSize float64
	// DefaultPadding 悬停目标未指定时，光标盒在目标宽高上各外扩的像素数
	DefaultPadding float64
	// DefaultPressScale 空白处按压时的缩放
	DefaultPressScale float64
	// HoverPressScale 悬停目标未指定时按压的缩放
	HoverPressScale float64

	// FollowerRate 跟随点逼近指针的每秒衰减速率
	FollowerRate float64
	// TransitionRate 光标盒形变（位置/尺寸/圆角）的每秒衰减速率
	TransitionRate float64
	// LeaveThreshold 离开目标后，宽高都收敛到空闲盒该距离以内即视为完成（像素）
	LeaveThreshold float64

	// FillColor 光标盒填充色
	FillColor color.RGBA
}

// DefaultCursorConfig 返回默认配置
func DefaultCursorConfig() CursorConfig {
	return CursorConfig{
		PaddingAttr:       "padding",
		PressScaleAttr:    "press-scale",
		ParallaxAttr:      "parallax",
		DefaultSize:       40.0,
		DefaultPadding:    16.0,
		DefaultPressScale: 0.8,
		HoverPressScale:   0.9,
		FollowerRate:      6.0,  // ≈ 每帧 lag 0.095 @60fps
		TransitionRate:    13.0, // ≈ 每帧 lag 0.195 @60fps
		LeaveThreshold:    1.0,
		FillColor:         color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0x58},
	}
}

// CursorOverrides 调用方或配置文件提供的可选覆盖项
// 指针字段为 nil 表示不覆盖对应默认值
type CursorOverrides struct {
	PaddingAttr       *string  `yaml:"paddingAttr"`
	PressScaleAttr    *string  `yaml:"pressScaleAttr"`
	ParallaxAttr      *string  `yaml:"parallaxAttr"`
	DefaultSize       *float64 `yaml:"defaultSize"`
	DefaultPadding    *float64 `yaml:"defaultPadding"`
	DefaultPressScale *float64 `yaml:"defaultPressScale"`
	HoverPressScale   *float64 `yaml:"hoverPressScale"`
	FollowerRate      *float64 `yaml:"followerRate"`
	TransitionRate    *float64 `yaml:"transitionRate"`
	LeaveThreshold    *float64 `yaml:"leaveThreshold"`
}

// Apply 把覆盖项叠加到配置上，返回叠加后的副本
//
// 速率和阈值会被收紧到非负，保证换算出的插值系数落在 [0, 1] 内。
// o 为 nil 时原样返回。
func (c CursorConfig) Apply(o *CursorOverrides) CursorConfig {
	if o == nil {
		return c
	}
	if o.PaddingAttr != nil {
		c.PaddingAttr = *o.PaddingAttr
	}
	if o.PressScaleAttr != nil {
		c.PressScaleAttr = *o.PressScaleAttr
	}
	if o.ParallaxAttr != nil {
		c.ParallaxAttr = *o.ParallaxAttr
	}
	if o.DefaultSize != nil {
		c.DefaultSize = *o.DefaultSize
	}
	if o.DefaultPadding != nil {
		c.DefaultPadding = *o.DefaultPadding
	}
	if o.DefaultPressScale != nil {
		c.DefaultPressScale = *o.DefaultPressScale
	}
	if o.HoverPressScale != nil {
		c.HoverPressScale = *o.HoverPressScale
	}
	if o.FollowerRate != nil {
		c.FollowerRate = *o.FollowerRate
	}
	if o.TransitionRate != nil {
		c.TransitionRate = *o.TransitionRate
	}
	if o.LeaveThreshold != nil {
		c.LeaveThreshold = *o.LeaveThreshold
	}

	if c.FollowerRate < 0 {
		c.FollowerRate = 0
	}
	if c.TransitionRate < 0 {
		c.TransitionRate = 0
	}
	if c.LeaveThreshold < 0 {
		c.LeaveThreshold = 0
	}
	return c
}

// LoadCursorOverrides 从 YAML 文件加载覆盖项
//
// 文件不存在返回 (nil, nil)，调用方直接使用默认配置；
// 解析失败返回错误。
func LoadCursorOverrides(path string) (*CursorOverrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("读取光标配置失败: %w", err)
	}

	var overrides CursorOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("解析光标配置失败: %w", err)
	}
	return &overrides, nil
}
