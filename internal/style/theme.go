package style

import "bioPress/internal/profile"

// Theme 是一套具名装饰主题的默认样式。
// Frame 指向内嵌的装饰边框矢量图，空表示该主题没有边框。
type Theme struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	PrimaryColor    string             `json:"primary_color"`
	BackgroundColor string             `json:"background_color"`
	TextColor       string             `json:"text_color"`
	FontFamily      profile.FontFamily `json:"font_family"`
	FontSize        int                `json:"font_size"`
	Frame           string             `json:"frame,omitempty"`
}

// DefaultThemeID 是未知 themeId 的回落目标。
const DefaultThemeID = "classic"

// 主题表是封闭的：新增主题在此注册，运行期只读。
var themes = map[string]Theme{
	"classic": {
		ID: "classic", Name: "Classic",
		PrimaryColor: "#8b2942", BackgroundColor: "#fffdf7", TextColor: "#2b2b2b",
		FontFamily: profile.FontSerif, FontSize: 14,
	},
	"royal": {
		ID: "royal", Name: "Royal",
		PrimaryColor: "#a37b2c", BackgroundColor: "#fdf6e3", TextColor: "#3a2c1a",
		FontFamily: profile.FontSerif, FontSize: 14,
		Frame: "frame-royal",
	},
	"floral": {
		ID: "floral", Name: "Floral",
		PrimaryColor: "#c2527a", BackgroundColor: "#fff7fa", TextColor: "#44303a",
		FontFamily: profile.FontSerif, FontSize: 14,
		Frame: "frame-floral",
	},
	"minimal": {
		ID: "minimal", Name: "Minimal",
		PrimaryColor: "#333333", BackgroundColor: "#ffffff", TextColor: "#222222",
		FontFamily: profile.FontSans, FontSize: 14,
	},
	"midnight": {
		ID: "midnight", Name: "Midnight",
		PrimaryColor: "#7aa2f7", BackgroundColor: "#16161e", TextColor: "#e6e6ef",
		FontFamily: profile.FontSans, FontSize: 14,
	},
	"emerald": {
		ID: "emerald", Name: "Emerald",
		PrimaryColor: "#1f7a5c", BackgroundColor: "#f4fbf8", TextColor: "#21312b",
		FontFamily: profile.FontSans, FontSize: 14,
	},
	"slate": {
		ID: "slate", Name: "Slate",
		PrimaryColor: "#475569", BackgroundColor: "#f8fafc", TextColor: "#1e293b",
		FontFamily: profile.FontMono, FontSize: 13,
	},
	"sunrise": {
		ID: "sunrise", Name: "Sunrise",
		PrimaryColor: "#d97706", BackgroundColor: "#fffbeb", TextColor: "#432e10",
		FontFamily: profile.FontSerif, FontSize: 14,
		Frame: "frame-arch",
	},
}

// 画廊展示顺序。
var themeOrder = []string{"classic", "royal", "floral", "minimal", "midnight", "emerald", "slate", "sunrise"}

// ThemeByID 返回主题；未知 ID 回落到默认主题，永不失败。
func ThemeByID(id string) Theme {
	if t, ok := themes[id]; ok {
		return t
	}
	return themes[DefaultThemeID]
}

// Themes 按画廊顺序返回全部主题。
func Themes() []Theme {
	out := make([]Theme, 0, len(themeOrder))
	for _, id := range themeOrder {
		out = append(out, themes[id])
	}
	return out
}
