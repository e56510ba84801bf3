package config

// 布局配置常量
// 本文件定义了桌面场景中的布局参数，包括窗口尺寸、牌堆锚点、控制面板位置等
// 所有坐标使用"世界坐标系"（相对于逻辑屏幕左上角），卡牌坐标指卡牌中心

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600
)

// 卡牌尺寸
const (
	// CardWidth 卡牌宽度（像素）
	CardWidth = 80.0

	// CardHeight 卡牌高度（像素）
	CardHeight = 112.0
)

// 牌堆布局
const (
	// LeftPileAnchorX 左牌堆锚点X坐标（堆底卡牌中心）
	LeftPileAnchorX = 250.0

	// RightPileAnchorX 右牌堆锚点X坐标
	RightPileAnchorX = 550.0

	// PileAnchorY 两个牌堆共用的锚点Y坐标
	PileAnchorY = 330.0

	// PileStackOffsetY 相邻卡牌的堆叠偏移（像素，亚像素级，向上）
	// 偏移足够小使牌堆看起来是一个连续的块，又能通过堆顶Y区分堆高
	PileStackOffsetY = 0.4
)

// 投影布局
const (
	// FloorShadowY 地面投影的固定Y坐标（牌堆下方的"桌面"高度）
	FloorShadowY = 408.0
)

// 控制面板布局
const (
	// PanelTop 控制面板顶部Y坐标
	PanelTop = 470.0

	// PanelSliderX 滑动条列的X坐标
	PanelSliderX = 40.0

	// PanelSliderWidth 滑槽宽度
	PanelSliderWidth = 180.0

	// PanelSliderHeight 滑槽高度
	PanelSliderHeight = 12.0

	// PanelRowHeight 面板行高
	PanelRowHeight = 40.0

	// PanelCheckboxX 复选框列的X坐标
	PanelCheckboxX = 300.0

	// PanelCheckboxSize 复选框边长
	PanelCheckboxSize = 18.0

	// PanelButtonX 按钮列的X坐标
	PanelButtonX = 520.0

	// PanelButtonWidth 按钮宽度
	PanelButtonWidth = 220.0

	// PanelButtonHeight 按钮高度
	PanelButtonHeight = 28.0
)
