package theme

import "time"

// Spacing steps.
const (
	SpaceXS  float32 = 4
	SpaceSM  float32 = 8
	SpaceMD  float32 = 16
	SpaceLG  float32 = 24
	SpaceXL  float32 = 32
	SpaceXXL float32 = 48
)

// Font sizes in pixels.
const (
	FontXS   float32 = 12
	FontSM   float32 = 14
	FontMD   float32 = 16
	FontLG   float32 = 18
	FontXL   float32 = 24
	FontXXL  float32 = 32
	FontXXXL float32 = 48
)

// Component metrics.
const (
	ButtonHeight       float32 = 40
	ButtonHeightLarge  float32 = 48
	ButtonHeightSmall  float32 = 32
	ButtonWidth        float32 = 140
	ButtonPaddingX     float32 = 16
	ButtonBorderRadius float32 = 8

	InputWidth float32 = 200

	CardPadding      float32 = 16
	CardBorderRadius float32 = 12
	CardShadowBlur   float32 = 4
	CardShadowOffset float32 = 2

	SidebarWidth            float32 = 260
	SidebarPadding          float32 = 25
	SidebarItemHeight       float32 = 45
	SidebarItemBorderRadius float32 = 8

	StatCardWidth  float32 = 260
	StatCardHeight float32 = 120

	DividerHeight  float32 = 1
	DividerMarginY float32 = 15

	ScrollViewHeight   float32 = 200
	ScrollbarWidth     float32 = 8
	ScrollbarMinHeight float32 = 32

	// ScrollLinePixels converts one wheel notch into pixels.
	ScrollLinePixels float32 = 20
)

// Text alpha tiers.
const (
	AlphaPrimary   uint8 = 255
	AlphaSecondary uint8 = 180
	AlphaTertiary  uint8 = 140
	AlphaDisabled  uint8 = 100
)

// AnimationDuration is the default hover/focus transition length.
const AnimationDuration = 150 * time.Millisecond
